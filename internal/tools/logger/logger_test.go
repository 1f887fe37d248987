package logger

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name     string
		level    string
		expected zerolog.Level
	}{
		{"empty level falls back to info", "", zerolog.InfoLevel},
		{"unknown level falls back to info", "chatty", zerolog.InfoLevel},
		{"debug", "debug", zerolog.DebugLevel},
		{"upper case", "WARN", zerolog.WarnLevel},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			out := &bytes.Buffer{}
			log := NewWithWriter(out, test.level)

			assert.Equal(t, test.expected, log.GetLevel())
		})
	}

	t.Run("should write service name", func(t *testing.T) {
		out := &bytes.Buffer{}
		log := NewWithWriter(out, "info")
		log.Info().Msg("hello")

		assert.Contains(t, out.String(), `"service":"reservations-e2e"`)
		assert.Contains(t, out.String(), `"message":"hello"`)
	})
}
