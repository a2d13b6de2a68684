package constants

// NSQ topics
const (
	// Offline incident notifications drained by the notification service
	TopicOfflineNotification = "notification.offline"
)
