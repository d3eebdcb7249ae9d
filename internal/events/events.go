// Package events publishes best-effort notifications about changes.
//
// Publishing never fails the operation that caused the event. Errors are
// logged and dropped.
package events

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Event types
const (
	ReceiptCreated       = "receipt.created"
	HouseholdCreated     = "household.created"
	HouseholdJoined      = "household.joined"
	HouseholdLeft        = "household.left"
	InflationRateChanged = "inflation-rate.changed"
)

// Event is a notification about something that happened.
type Event struct {
	Type        string         `json:"type"`
	HouseholdID *uuid.UUID     `json:"householdId,omitempty"`
	UserID      *uuid.UUID     `json:"userId,omitempty"`
	ResourceID  uuid.UUID      `json:"resourceId"`
	Time        time.Time      `json:"time"`
	Data        map[string]any `json:"data,omitempty"`
}

// JSON returns the JSON encoding of the event.
func (e Event) JSON() ([]byte, error) {
	return json.Marshal(e)
}

// Publisher sends events to their destination.
type Publisher interface {
	Publish(ctx context.Context, e Event) error
	Close() error
}

var (
	mu        sync.RWMutex
	publisher Publisher = LogPublisher{}
)

// SetPublisher replaces the publisher used by Notify and returns the
// previous one.
func SetPublisher(p Publisher) Publisher {
	mu.Lock()
	defer mu.Unlock()

	previous := publisher
	publisher = p
	return previous
}

// Notify publishes the event. Failures are logged, never returned.
func Notify(ctx context.Context, e Event) {
	if e.Time.IsZero() {
		e.Time = time.Now().UTC()
	}

	mu.RLock()
	p := publisher
	mu.RUnlock()

	if p == nil {
		return
	}

	if err := p.Publish(ctx, e); err != nil {
		log.Warn().Err(err).Str("event", e.Type).Str("resource", e.ResourceID.String()).Msg("could not publish event")
	}
}

// LogPublisher writes events to the log.
type LogPublisher struct{}

func (LogPublisher) Publish(_ context.Context, e Event) error {
	log.Debug().Str("event", e.Type).Str("resource", e.ResourceID.String()).Time("time", e.Time).Msg("Event")
	return nil
}

func (LogPublisher) Close() error {
	return nil
}
