package gateway

import (
	"github.com/google/uuid"

	"github.com/safetrip/tripwatch/internal/pkg/constants"
	"github.com/safetrip/tripwatch/internal/pkg/models"
	nsqpkg "github.com/safetrip/tripwatch/internal/pkg/nsq"
	"github.com/safetrip/tripwatch/services/incident"
)

// OfflineNotification is the payload drained by the notification
// service for contacts that are not connected.
type OfflineNotification struct {
	IncidentID      uuid.UUID `json:"incident_id"`
	TripID          string    `json:"trip_id"`
	Title           string    `json:"title"`
	Severity        string    `json:"severity"`
	ContactPersonID uuid.UUID `json:"contact_person_id"`
}

type nsqNotifier struct {
	producer *nsqpkg.Producer
}

// NewNSQNotifier creates a notifier backed by an NSQ producer
func NewNSQNotifier(producer *nsqpkg.Producer) incident.Notifier {
	return &nsqNotifier{
		producer: producer,
	}
}

// NotifyOffline queues an offline notification for the incident's
// contact person.
func (n *nsqNotifier) NotifyOffline(inc *models.Incident) error {
	return n.producer.Publish(constants.TopicOfflineNotification, OfflineNotification{
		IncidentID:      inc.ID,
		TripID:          inc.TripID,
		Title:           inc.Title,
		Severity:        inc.Severity,
		ContactPersonID: inc.ContactPersonID,
	})
}
