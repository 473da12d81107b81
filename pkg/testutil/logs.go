package testutil

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// LogEntry is one decoded zerolog line
type LogEntry struct {
	Level     string `json:"level"`
	Message   string `json:"message"`
	Component string `json:"component"`
}

// LogCapture collects everything written to the global zerolog logger
// during a test
type LogCapture struct {
	buf bytes.Buffer
}

// CaptureLogs redirects the global logger into a LogCapture at the given
// level and restores it on cleanup
func CaptureLogs(t *testing.T, level zerolog.Level) *LogCapture {
	t.Helper()

	c := &LogCapture{}
	previous := log.Logger
	previousLevel := zerolog.GlobalLevel()

	log.Logger = zerolog.New(&c.buf)
	zerolog.SetGlobalLevel(level)

	t.Cleanup(func() {
		log.Logger = previous
		zerolog.SetGlobalLevel(previousLevel)
	})
	return c
}

// Entries decodes the captured lines
func (c *LogCapture) Entries(t *testing.T) []LogEntry {
	t.Helper()

	var entries []LogEntry
	for _, line := range strings.Split(strings.TrimSpace(c.buf.String()), "\n") {
		if line == "" {
			continue
		}
		var e LogEntry
		if err := json.Unmarshal([]byte(line), &e); err != nil {
			t.Fatalf("undecodable log line %q: %v", line, err)
		}
		entries = append(entries, e)
	}
	return entries
}

// Messages returns the captured messages at the given level, in order
func (c *LogCapture) Messages(t *testing.T, level zerolog.Level) []string {
	t.Helper()

	var messages []string
	for _, e := range c.Entries(t) {
		if e.Level == level.String() {
			messages = append(messages, e.Message)
		}
	}
	return messages
}
