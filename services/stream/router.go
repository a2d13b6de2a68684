package stream

import (
	"context"

	"github.com/google/uuid"

	"github.com/safetrip/tripwatch/internal/pkg/constants"
	domainerr "github.com/safetrip/tripwatch/internal/pkg/errors"
	"github.com/safetrip/tripwatch/internal/pkg/logger"
	"github.com/safetrip/tripwatch/internal/pkg/models"
)

// Router owns the per-trip subscriber sets and fans events out to them.
// Authorization happens once at join time; a subscription is trusted
// for its lifetime.
type Router struct {
	registry  *registry
	resolver  AccessChecker
	locations LocationSource
	incidents IncidentSource
}

// NewRouter creates a new broadcast router
func NewRouter(resolver AccessChecker, locations LocationSource, incidents IncidentSource) *Router {
	return &Router{
		registry:  newRegistry(),
		resolver:  resolver,
		locations: locations,
		incidents: incidents,
	}
}

// Join subscribes a connection to a trip. The joined confirmation goes
// to the joining connection only.
func (r *Router) Join(ctx context.Context, sub *Subscriber, tripID string) error {
	if !r.resolver.CanAccess(ctx, sub.UserID, tripID) {
		return domainerr.ErrAccessDenied
	}

	r.registry.add(tripID, sub)

	if err := sub.Send(constants.EventJoined, models.WSTripRef{TripID: tripID}); err != nil {
		r.Leave(sub.ConnID, tripID)
		return err
	}

	logger.Debug("Subscriber joined trip",
		logger.String("trip_id", tripID),
		logger.String("conn_id", sub.ConnID.String()))
	return nil
}

// Leave unsubscribes a connection from a trip. Leaving a trip never
// joined is a no-op.
func (r *Router) Leave(connID uuid.UUID, tripID string) {
	ch := r.registry.peek(tripID)
	if ch == nil {
		return
	}
	if ch.remove(connID) {
		r.registry.cleanup(tripID)
	}
}

// LeaveAll unsubscribes a connection from every trip, used on
// disconnect.
func (r *Router) LeaveAll(connID uuid.UUID) {
	for _, tripID := range r.registry.removeEverywhere(connID) {
		r.registry.cleanup(tripID)
	}
}

// Publish fans an event out to the trip's current subscribers without
// blocking the caller. Dead connections are dropped silently.
func (r *Router) Publish(tripID string, event string, payload interface{}) {
	ch := r.registry.peek(tripID)
	if ch == nil {
		return
	}

	go func() {
		for _, sub := range ch.snapshot() {
			if err := sub.Send(event, payload); err != nil {
				logger.Debug("Dropping dead subscriber",
					logger.String("trip_id", tripID),
					logger.String("conn_id", sub.ConnID.String()),
					logger.Err(err))
				sub.Close()
				r.LeaveAll(sub.ConnID)
			}
		}
	}()
}

// Authorize reports whether the user may observe the trip.
func (r *Router) Authorize(ctx context.Context, userID uuid.UUID, tripID string) bool {
	return r.resolver.CanAccess(ctx, userID, tripID)
}

// Snapshot assembles the trip's current state from the stores.
func (r *Router) Snapshot(ctx context.Context, tripID string) (*Snapshot, error) {
	locations, err := r.locations.LatestForTrip(ctx, tripID, 50)
	if err != nil {
		return nil, err
	}

	incidents, err := r.incidents.ActiveByTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}

	return &Snapshot{
		TripID:          tripID,
		LatestLocations: locations,
		ActiveIncidents: incidents,
	}, nil
}
