package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/safetrip/tripwatch/internal/pkg/constants"
	domainerr "github.com/safetrip/tripwatch/internal/pkg/errors"
	"github.com/safetrip/tripwatch/internal/pkg/logger"
	"github.com/safetrip/tripwatch/internal/pkg/models"
	"github.com/safetrip/tripwatch/internal/utils"
	"github.com/safetrip/tripwatch/services/access"
	"github.com/safetrip/tripwatch/services/incident"
)

// IncidentUCImpl implements the incident.IncidentUC interface
type IncidentUCImpl struct {
	repo        incident.IncidentRepo
	gw          incident.IncidentGW
	notifier    incident.Notifier
	broadcaster incident.Broadcaster
	resolver    access.Checker
	now         func() time.Time
}

// NewIncidentUC creates a new incident use case
func NewIncidentUC(
	repo incident.IncidentRepo,
	gw incident.IncidentGW,
	notifier incident.Notifier,
	broadcaster incident.Broadcaster,
	resolver access.Checker,
) *IncidentUCImpl {
	return &IncidentUCImpl{
		repo:        repo,
		gw:          gw,
		notifier:    notifier,
		broadcaster: broadcaster,
		resolver:    resolver,
		now:         time.Now,
	}
}

// Create opens a new incident in the active state and notifies the
// contact person out of band. Success is returned only after durable
// persistence; fan-out is best-effort.
func (uc *IncidentUCImpl) Create(ctx context.Context, userID uuid.UUID, tripID string, req *models.CreateAlertRequest) (*models.Incident, error) {
	message := strings.TrimSpace(req.Message)
	if message == "" {
		return nil, domainerr.ErrMissingMessage
	}
	if req.Latitude != nil && req.Longitude != nil &&
		!utils.ValidCoordinates(*req.Latitude, *req.Longitude) {
		return nil, domainerr.ErrInvalidCoordinates
	}

	severity := req.Severity
	if severity == "" {
		severity = models.SeverityMedium
	}
	if !models.ValidSeverity(severity) {
		return nil, domainerr.ErrInvalidSeverity
	}

	alertType := req.AlertType
	if alertType == "" {
		alertType = models.IncidentTypeOther
	}
	if !models.ValidIncidentType(alertType) {
		alertType = models.IncidentTypeOther
	}

	if !uc.resolver.CanAccess(ctx, userID, tripID) {
		return nil, domainerr.ErrAccessDenied
	}

	now := uc.now().UTC()
	inc := &models.Incident{
		ID:                  uuid.New(),
		TripID:              tripID,
		Title:               message,
		Description:         message,
		Type:                alertType,
		Severity:            severity,
		Status:              models.IncidentActive,
		Latitude:            req.Latitude,
		Longitude:           req.Longitude,
		LocationDescription: req.LocationDescription,
		PeopleAffected:      models.StringList(req.PeopleAffected),
		InjuriesReported:    req.InjuriesReported,
		ResponseActions: models.ResponseActions{
			{Action: "reported", Timestamp: now},
		},
		ReportedBy: userID,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if req.ReporterPhone != "" {
		inc.ReporterPhone = &req.ReporterPhone
	}
	if req.ContactPersonID != nil {
		inc.ContactPersonID = *req.ContactPersonID
	}

	if err := uc.repo.Create(ctx, inc); err != nil {
		return nil, err
	}

	go uc.dispatch(inc, constants.EventTripAlert, constants.SubjectIncidentCreated, true)

	inc.ComputeDuration(uc.now().UTC())
	return inc, nil
}

// GetByID loads one incident of a trip.
func (uc *IncidentUCImpl) GetByID(ctx context.Context, userID uuid.UUID, tripID string, id uuid.UUID) (*models.Incident, error) {
	if !uc.resolver.CanAccess(ctx, userID, tripID) {
		return nil, domainerr.ErrAccessDenied
	}

	inc, err := uc.loadForTrip(ctx, tripID, id)
	if err != nil {
		return nil, err
	}

	inc.ComputeDuration(uc.now().UTC())
	return inc, nil
}

// ListByTrip returns one page of a trip's incidents, newest first.
func (uc *IncidentUCImpl) ListByTrip(ctx context.Context, userID uuid.UUID, tripID string, page, perPage int) (*models.IncidentPage, error) {
	if !uc.resolver.CanAccess(ctx, userID, tripID) {
		return nil, domainerr.ErrAccessDenied
	}

	if page <= 0 {
		page = 1
	}
	if perPage <= 0 || perPage > 100 {
		perPage = 20
	}

	result, err := uc.repo.ListByTrip(ctx, tripID, page, perPage)
	if err != nil {
		return nil, err
	}

	now := uc.now().UTC()
	for _, inc := range result.Incidents {
		inc.ComputeDuration(now)
	}
	return result, nil
}

// Acknowledge records the one-shot acknowledgement of an active
// incident.
func (uc *IncidentUCImpl) Acknowledge(ctx context.Context, userID uuid.UUID, tripID string, id uuid.UUID) (*models.Incident, error) {
	return uc.mutate(ctx, userID, tripID, id, constants.EventAlertAcknowledged, constants.SubjectIncidentAcknowledged,
		func(inc *models.Incident, now time.Time) error {
			if inc.Acknowledged {
				return domainerr.ErrAlreadyAcknowledged
			}
			if inc.Status != models.IncidentActive {
				return domainerr.ErrInvalidTransition
			}
			inc.Acknowledged = true
			inc.AcknowledgedBy = &userID
			inc.ResponseActions = append(inc.ResponseActions,
				models.ResponseAction{Action: "acknowledged", Timestamp: now})
			return nil
		})
}

// StartResponse moves an active incident to responding.
func (uc *IncidentUCImpl) StartResponse(ctx context.Context, userID uuid.UUID, tripID string, id uuid.UUID, action string) (*models.Incident, error) {
	return uc.mutate(ctx, userID, tripID, id, constants.EventAlertUpdate, constants.SubjectIncidentUpdated,
		func(inc *models.Incident, now time.Time) error {
			if inc.Status != models.IncidentActive {
				return domainerr.ErrInvalidTransition
			}
			entry := strings.TrimSpace(action)
			if entry == "" {
				entry = "response started"
			}
			inc.Status = models.IncidentResponding
			inc.ResponseActions = append(inc.ResponseActions,
				models.ResponseAction{Action: entry, Timestamp: now})
			return nil
		})
}

// AddResponseAction appends an audit entry to an incident still being
// worked.
func (uc *IncidentUCImpl) AddResponseAction(ctx context.Context, userID uuid.UUID, tripID string, id uuid.UUID, action string) (*models.Incident, error) {
	entry := strings.TrimSpace(action)
	if entry == "" {
		return nil, domainerr.ErrMissingMessage
	}

	return uc.mutate(ctx, userID, tripID, id, constants.EventAlertUpdate, constants.SubjectIncidentUpdated,
		func(inc *models.Incident, now time.Time) error {
			if inc.Status != models.IncidentActive && inc.Status != models.IncidentResponding {
				return domainerr.ErrInvalidTransition
			}
			inc.ResponseActions = append(inc.ResponseActions,
				models.ResponseAction{Action: entry, Timestamp: now})
			return nil
		})
}

// Escalate raises the severity of an incident still being worked.
func (uc *IncidentUCImpl) Escalate(ctx context.Context, userID uuid.UUID, tripID string, id uuid.UUID, severity, reason string) (*models.Incident, error) {
	if !models.ValidSeverity(severity) {
		return nil, domainerr.ErrInvalidSeverity
	}

	return uc.mutate(ctx, userID, tripID, id, constants.EventAlertUpdate, constants.SubjectIncidentUpdated,
		func(inc *models.Incident, now time.Time) error {
			if inc.Status != models.IncidentActive && inc.Status != models.IncidentResponding {
				return domainerr.ErrInvalidTransition
			}
			entry := fmt.Sprintf("severity escalated: %s -> %s", inc.Severity, severity)
			if reason = strings.TrimSpace(reason); reason != "" {
				entry = entry + " (" + reason + ")"
			}
			inc.Severity = severity
			inc.ResponseActions = append(inc.ResponseActions,
				models.ResponseAction{Action: entry, Timestamp: now})
			return nil
		})
}

// Resolve closes out the response phase of an incident.
func (uc *IncidentUCImpl) Resolve(ctx context.Context, userID uuid.UUID, tripID string, id uuid.UUID, details string) (*models.Incident, error) {
	return uc.mutate(ctx, userID, tripID, id, constants.EventAlertUpdate, constants.SubjectIncidentUpdated,
		func(inc *models.Incident, now time.Time) error {
			if inc.Status != models.IncidentActive && inc.Status != models.IncidentResponding {
				return domainerr.ErrInvalidTransition
			}
			inc.Status = models.IncidentResolved
			inc.ResolvedAt = &now
			if details = strings.TrimSpace(details); details != "" {
				inc.ResolutionDetails = &details
			}
			inc.ResponseActions = append(inc.ResponseActions,
				models.ResponseAction{Action: "resolved", Timestamp: now})
			return nil
		})
}

// Close archives a resolved incident.
func (uc *IncidentUCImpl) Close(ctx context.Context, userID uuid.UUID, tripID string, id uuid.UUID) (*models.Incident, error) {
	return uc.mutate(ctx, userID, tripID, id, constants.EventAlertUpdate, constants.SubjectIncidentUpdated,
		func(inc *models.Incident, now time.Time) error {
			if inc.Status != models.IncidentResolved {
				return domainerr.ErrInvalidTransition
			}
			inc.Status = models.IncidentClosed
			inc.ResponseActions = append(inc.ResponseActions,
				models.ResponseAction{Action: "closed", Timestamp: now})
			return nil
		})
}

// mutate runs one state-machine step: authorize, load, apply, persist,
// then fan out asynchronously. apply sees the incident under no lock;
// last write wins on concurrent mutation, which the audit trail makes
// visible.
func (uc *IncidentUCImpl) mutate(
	ctx context.Context,
	userID uuid.UUID,
	tripID string,
	id uuid.UUID,
	event, subject string,
	apply func(inc *models.Incident, now time.Time) error,
) (*models.Incident, error) {
	if !uc.resolver.CanAccess(ctx, userID, tripID) {
		return nil, domainerr.ErrAccessDenied
	}

	inc, err := uc.loadForTrip(ctx, tripID, id)
	if err != nil {
		return nil, err
	}

	now := uc.now().UTC()
	if err := apply(inc, now); err != nil {
		return nil, err
	}
	inc.UpdatedAt = now

	if err := uc.repo.Update(ctx, inc); err != nil {
		return nil, err
	}

	go uc.dispatch(inc, event, subject, false)

	inc.ComputeDuration(now)
	return inc, nil
}

// loadForTrip treats an incident from another trip as absent so the
// trip id in the URL cannot be used to probe foreign incidents.
func (uc *IncidentUCImpl) loadForTrip(ctx context.Context, tripID string, id uuid.UUID) (*models.Incident, error) {
	inc, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if inc.TripID != tripID {
		return nil, domainerr.ErrNotFound
	}
	return inc, nil
}

func (uc *IncidentUCImpl) dispatch(inc *models.Incident, event, subject string, notify bool) {
	uc.broadcaster.Publish(inc.TripID, event, inc)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := uc.gw.PublishIncidentEvent(ctx, subject, inc); err != nil {
		logger.Warn("Failed to publish incident event",
			logger.String("incident_id", inc.ID.String()),
			logger.String("subject", subject),
			logger.Err(err))
	}

	if notify {
		if err := uc.notifier.NotifyOffline(inc); err != nil {
			logger.Warn("Failed to queue offline notification",
				logger.String("incident_id", inc.ID.String()),
				logger.Err(err))
		}
	}
}
