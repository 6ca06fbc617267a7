package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestNew(t *testing.T) {
	tests := []struct {
		level  string
		expect zerolog.Level
	}{
		{level: "debug", expect: zerolog.DebugLevel},
		{level: "warn", expect: zerolog.WarnLevel},
		{level: "", expect: zerolog.InfoLevel},
		{level: "loud", expect: zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			if got := New(tt.level, &bytes.Buffer{}).GetLevel(); got != tt.expect {
				t.Errorf("expected %s, got %s", tt.expect, got)
			}
		})
	}
}

func TestNew_WritesJSON(t *testing.T) {
	var buf bytes.Buffer
	log := New("info", &buf)

	log.Debug().Msg("hidden")
	log.Info().Str("kg", "cskg").Msg("shown")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("debug entry should be filtered")
	}
	if !strings.Contains(out, `"kg":"cskg"`) || !strings.Contains(out, `"message":"shown"`) {
		t.Errorf("unexpected output %s", out)
	}
}
