package testutil

import (
	"math/rand"
	"testing"

	"github.com/rs/zerolog"

	"github.com/mitchelldurbincs/minesweeper/internal/game/events"
)

// NewTestRNG creates a deterministic random number generator for tests
func NewTestRNG(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// NopLogger returns a no-op logger for tests
func NopLogger() zerolog.Logger {
	return zerolog.Nop()
}

// AssertPanic asserts that the given function panics
func AssertPanic(t *testing.T, f func(), msgAndArgs ...interface{}) {
	t.Helper()
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("Expected panic but none occurred: %v", msgAndArgs)
		}
	}()
	f()
}

// EventRecorder collects every event published on a bus
type EventRecorder struct {
	Events []events.Event
}

// RecordEvents subscribes a recorder to the given event types on bus
func RecordEvents(bus *events.EventBus, eventTypes ...string) *EventRecorder {
	rec := &EventRecorder{}
	for _, eventType := range eventTypes {
		bus.SubscribeFunc(eventType, func(e events.Event) {
			rec.Events = append(rec.Events, e)
		})
	}
	return rec
}

// Types returns the recorded event types in publish order
func (r *EventRecorder) Types() []string {
	types := make([]string, len(r.Events))
	for i, e := range r.Events {
		types[i] = e.Type()
	}
	return types
}

// Reset drops the recorded events
func (r *EventRecorder) Reset() {
	r.Events = r.Events[:0]
}
