package stream

import (
	"sync"

	"github.com/google/uuid"
)

// tripChannel holds the live subscriber set of one trip behind its own
// mutex so fan-out on one trip never contends with another.
type tripChannel struct {
	mu   sync.Mutex
	subs map[uuid.UUID]*Subscriber
}

func newTripChannel() *tripChannel {
	return &tripChannel{subs: make(map[uuid.UUID]*Subscriber)}
}

func (ch *tripChannel) add(sub *Subscriber) {
	ch.mu.Lock()
	defer ch.mu.Unlock()
	ch.subs[sub.ConnID] = sub
}

func (ch *tripChannel) remove(connID uuid.UUID) bool {
	ch.mu.Lock()
	defer ch.mu.Unlock()
	if _, ok := ch.subs[connID]; !ok {
		return false
	}
	delete(ch.subs, connID)
	return true
}

// snapshot copies the subscriber list so fan-out iterates without
// holding the channel lock.
func (ch *tripChannel) snapshot() []*Subscriber {
	ch.mu.Lock()
	defer ch.mu.Unlock()
	subs := make([]*Subscriber, 0, len(ch.subs))
	for _, sub := range ch.subs {
		subs = append(subs, sub)
	}
	return subs
}

func (ch *tripChannel) empty() bool {
	ch.mu.Lock()
	defer ch.mu.Unlock()
	return len(ch.subs) == 0
}

// registry maps trip ids to their subscriber channels.
type registry struct {
	mu       sync.RWMutex
	channels map[string]*tripChannel
}

func newRegistry() *registry {
	return &registry{channels: make(map[string]*tripChannel)}
}

// add subscribes the connection to the trip. Get-or-create and insert
// happen under the registry lock, so a cleanup racing the add can never
// discard the channel the subscriber lands in.
func (r *registry) add(tripID string, sub *Subscriber) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ch := r.channels[tripID]
	if ch == nil {
		ch = newTripChannel()
		r.channels[tripID] = ch
	}
	ch.add(sub)
}

// peek returns the channel without creating it.
func (r *registry) peek(tripID string) *tripChannel {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.channels[tripID]
}

// cleanup discards the trip's channel once its last subscriber left.
func (r *registry) cleanup(tripID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if ch := r.channels[tripID]; ch != nil && ch.empty() {
		delete(r.channels, tripID)
	}
}

// removeEverywhere drops one connection from every trip, returning the
// trips it was subscribed to.
func (r *registry) removeEverywhere(connID uuid.UUID) []string {
	r.mu.RLock()
	channels := make(map[string]*tripChannel, len(r.channels))
	for tripID, ch := range r.channels {
		channels[tripID] = ch
	}
	r.mu.RUnlock()

	var trips []string
	for tripID, ch := range channels {
		if ch.remove(connID) {
			trips = append(trips, tripID)
		}
	}
	return trips
}
