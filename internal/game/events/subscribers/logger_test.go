package subscribers_test

import (
	"bytes"
	"encoding/json"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/minesweeper/internal/game/core"
	"github.com/mitchelldurbincs/minesweeper/internal/game/events"
	"github.com/mitchelldurbincs/minesweeper/internal/game/events/subscribers"
)

func TestLoggerSubscriber(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).With().Timestamp().Logger()

	logSub := subscribers.NewLoggerSubscriber("test-logger", logger, zerolog.InfoLevel)

	assert.Equal(t, "test-logger", logSub.ID())

	// Interested in all events by default
	assert.True(t, logSub.InterestedIn(events.TypeGameStarted))
	assert.True(t, logSub.InterestedIn(events.TypeCellRevealed))
	assert.True(t, logSub.InterestedIn("any.event.type"))
}

func TestLoggerSubscriberEventLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	logSub := subscribers.NewLoggerSubscriber("event-logger", logger, zerolog.InfoLevel)

	testCases := []struct {
		name  string
		event events.Event
		check func(t *testing.T, logLine map[string]interface{})
	}{
		{
			name:  "GameStartedEvent",
			event: events.NewGameStartedEvent("test-game-1", 9, 9, 10),
			check: func(t *testing.T, logLine map[string]interface{}) {
				assert.Equal(t, float64(9), logLine["width"])
				assert.Equal(t, float64(9), logLine["height"])
				assert.Equal(t, float64(10), logLine["mines"])
			},
		},
		{
			name:  "LayoutGeneratedEvent",
			event: events.NewLayoutGeneratedEvent("test-game-1", core.NewCoordinate(4, 4), 10),
			check: func(t *testing.T, logLine map[string]interface{}) {
				assert.Equal(t, float64(4), logLine["excluded_x"])
				assert.Equal(t, float64(4), logLine["excluded_y"])
				assert.Equal(t, float64(10), logLine["mines"])
			},
		},
		{
			name:  "CellRevealedEvent",
			event: events.NewCellRevealedEvent("test-game-1", core.NewCoordinate(2, 5), 0, 17),
			check: func(t *testing.T, logLine map[string]interface{}) {
				assert.Equal(t, float64(2), logLine["x"])
				assert.Equal(t, float64(5), logLine["y"])
				assert.Equal(t, float64(0), logLine["count"])
				assert.Equal(t, float64(17), logLine["opened"])
			},
		},
		{
			name:  "CellFlaggedEvent",
			event: events.NewCellFlaggedEvent("test-game-1", core.NewCoordinate(1, 0), true),
			check: func(t *testing.T, logLine map[string]interface{}) {
				assert.Equal(t, true, logLine["flagged"])
			},
		},
		{
			name:  "MineHitEvent",
			event: events.NewMineHitEvent("test-game-1", core.NewCoordinate(3, 3)),
			check: func(t *testing.T, logLine map[string]interface{}) {
				assert.Equal(t, float64(3), logLine["x"])
				assert.Equal(t, float64(3), logLine["y"])
			},
		},
		{
			name:  "GameEndedEvent",
			event: events.NewGameEndedEvent("test-game-1", false, 12, 5*time.Minute),
			check: func(t *testing.T, logLine map[string]interface{}) {
				assert.Equal(t, false, logLine["won"])
				assert.Equal(t, float64(12), logLine["revealed"])
				assert.Equal(t, float64(300000), logLine["duration"]) // 5 minutes in ms
			},
		},
		{
			name:  "StateTransitionEvent",
			event: events.NewStateTransitionEvent("test-game-1", "Configured", "Lost", "mine revealed"),
			check: func(t *testing.T, logLine map[string]interface{}) {
				assert.Equal(t, "Configured", logLine["from_phase"])
				assert.Equal(t, "Lost", logLine["to_phase"])
				assert.Equal(t, "mine revealed", logLine["reason"])
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			buf.Reset()
			logSub.HandleEvent(tc.event)

			logOutput := buf.String()
			require.NotEmpty(t, logOutput, "Log output should not be empty")

			var logLine map[string]interface{}
			err := json.Unmarshal([]byte(logOutput), &logLine)
			require.NoError(t, err, "Should be able to parse log output as JSON")

			assert.Equal(t, "Game event", logLine["message"])
			assert.Equal(t, "info", logLine["level"])
			assert.Equal(t, tc.event.Type(), logLine["event_type"])
			assert.Equal(t, "test-game-1", logLine["game_id"])

			tc.check(t, logLine)
		})
	}
}

func TestLoggerSubscriberWithFilter(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf)

	logSub := subscribers.NewLoggerSubscriber("filtered-logger", logger, zerolog.InfoLevel)
	logSub.SetEventFilter([]string{events.TypeGameStarted, events.TypeGameEnded})

	assert.True(t, logSub.InterestedIn(events.TypeGameStarted))
	assert.True(t, logSub.InterestedIn(events.TypeGameEnded))
	assert.False(t, logSub.InterestedIn(events.TypeCellRevealed))
	assert.False(t, logSub.InterestedIn(events.TypeCellFlagged))

	// Clearing the filter logs everything again
	logSub.SetEventFilter(nil)
	assert.True(t, logSub.InterestedIn(events.TypeCellFlagged))
}

func TestLoggerSubscriberLevels(t *testing.T) {
	tests := []struct {
		level    zerolog.Level
		expected string
	}{
		{zerolog.DebugLevel, "debug"},
		{zerolog.InfoLevel, "info"},
		{zerolog.WarnLevel, "warn"},
		{zerolog.ErrorLevel, "error"},
		{zerolog.TraceLevel, "info"},
	}

	for _, tt := range tests {
		t.Run(tt.expected+"_"+tt.level.String(), func(t *testing.T) {
			var buf bytes.Buffer
			logSub := subscribers.NewLoggerSubscriber("lvl", zerolog.New(&buf), tt.level)
			logSub.HandleEvent(events.NewGameStartedEvent("g", 3, 3, 1))

			var logLine map[string]interface{}
			require.NoError(t, json.Unmarshal(buf.Bytes(), &logLine))
			assert.Equal(t, tt.expected, logLine["level"])
		})
	}
}

func TestLoggerSubscriberDevMode(t *testing.T) {
	var buf bytes.Buffer
	logSub := subscribers.NewLoggerSubscriber("dev", zerolog.New(&buf), zerolog.InfoLevel)
	logSub.SetDevMode(true)

	logSub.HandleEvent(events.NewCellFlaggedEvent("g", core.NewCoordinate(1, 2), true))

	var logLine map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &logLine))

	data, ok := logLine["event_data"].(map[string]interface{})
	require.True(t, ok, "dev mode should attach the full event")
	assert.Equal(t, events.TypeCellFlagged, data["type"])
	assert.Equal(t, true, data["Flagged"])
}
