package constants

// NATS Subjects
const (
	// Telemetry
	SubjectLocationReport = "telemetry.location.report"

	// Incidents
	SubjectIncidentCreated      = "incident.created"
	SubjectIncidentAcknowledged = "incident.acknowledged"
	SubjectIncidentUpdated      = "incident.updated"
)
