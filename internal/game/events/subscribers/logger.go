package subscribers

import (
	"encoding/json"

	"github.com/mitchelldurbincs/minesweeper/internal/game/events"
	"github.com/rs/zerolog"
)

// LoggerSubscriber logs events to structured logs
type LoggerSubscriber struct {
	id              string
	logger          zerolog.Logger
	logLevel        zerolog.Level
	eventTypeFilter map[string]bool // If non-nil, only log these event types
	devMode         bool            // If true, log full event details
}

// NewLoggerSubscriber creates a new logger subscriber
func NewLoggerSubscriber(id string, logger zerolog.Logger, logLevel zerolog.Level) *LoggerSubscriber {
	return &LoggerSubscriber{
		id:       id,
		logger:   logger.With().Str("subscriber", "event_logger").Logger(),
		logLevel: logLevel,
	}
}

// ID returns the subscriber's unique identifier
func (ls *LoggerSubscriber) ID() string {
	return ls.id
}

// SetEventFilter sets which event types to log (nil means log all)
func (ls *LoggerSubscriber) SetEventFilter(eventTypes []string) {
	if len(eventTypes) == 0 {
		ls.eventTypeFilter = nil
		return
	}

	ls.eventTypeFilter = make(map[string]bool)
	for _, eventType := range eventTypes {
		ls.eventTypeFilter[eventType] = true
	}
}

// SetDevMode enables or disables development mode logging
func (ls *LoggerSubscriber) SetDevMode(enabled bool) {
	ls.devMode = enabled
}

// InterestedIn returns true if the subscriber wants to receive this event type
func (ls *LoggerSubscriber) InterestedIn(eventType string) bool {
	if ls.eventTypeFilter == nil {
		return true
	}
	return ls.eventTypeFilter[eventType]
}

// HandleEvent processes an event by logging it
func (ls *LoggerSubscriber) HandleEvent(event events.Event) {
	logEvent := ls.logger.WithLevel(ls.level()).
		Str("event_type", event.Type()).
		Str("game_id", event.GameID()).
		Time("timestamp", event.Timestamp())

	switch e := event.(type) {
	case *events.GameStartedEvent:
		logEvent.
			Int("width", e.Width).
			Int("height", e.Height).
			Int("mines", e.Mines)

	case *events.GameEndedEvent:
		logEvent.
			Bool("won", e.Won).
			Int("revealed", e.Revealed).
			Dur("duration", e.Duration)

	case *events.LayoutGeneratedEvent:
		logEvent.
			Int("excluded_x", e.Excluded.X).
			Int("excluded_y", e.Excluded.Y).
			Int("mines", e.Mines)

	case *events.CellRevealedEvent:
		logEvent.
			Int("x", e.Location.X).
			Int("y", e.Location.Y).
			Int("count", e.Count).
			Int("opened", e.Opened)

	case *events.CellFlaggedEvent:
		logEvent.
			Int("x", e.Location.X).
			Int("y", e.Location.Y).
			Bool("flagged", e.Flagged)

	case *events.MineHitEvent:
		logEvent.
			Int("x", e.Location.X).
			Int("y", e.Location.Y)

	case *events.StateTransitionEvent:
		logEvent.
			Str("from_phase", e.FromPhase).
			Str("to_phase", e.ToPhase).
			Str("reason", e.Reason)
	}

	if ls.devMode {
		if jsonData, err := json.Marshal(event); err == nil {
			logEvent.RawJSON("event_data", jsonData)
		}
	}

	logEvent.Msg("Game event")
}

func (ls *LoggerSubscriber) level() zerolog.Level {
	switch ls.logLevel {
	case zerolog.DebugLevel, zerolog.InfoLevel, zerolog.WarnLevel, zerolog.ErrorLevel:
		return ls.logLevel
	default:
		return zerolog.InfoLevel
	}
}
