package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestAdapterWritesComponentAndFields(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, zerolog.DebugLevel)

	log.Info("Bootstrap", "runtime starting", map[string]interface{}{"target": "desktop"})

	entry := decodeLine(t, &buf)
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "Bootstrap", entry["component"])
	assert.Equal(t, "runtime starting", entry["message"])
	assert.Equal(t, "desktop", entry["target"])
	assert.Equal(t, LaunchID, entry["launch_id"])
}

func TestAdapterError(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, zerolog.DebugLevel)

	log.Error("Runtime", errors.New("no display"), nil)

	entry := decodeLine(t, &buf)
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "no display", entry["error"])
}

func TestAdapterRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log := NewZerolog(&buf, zerolog.WarnLevel)

	log.Debug("Runtime", "hidden", nil)
	log.Info("Runtime", "hidden", nil)
	assert.Zero(t, buf.Len())

	log.Warning("Runtime", "shown", nil)
	assert.NotZero(t, buf.Len())
}

func TestNewCopiesToExtraWriter(t *testing.T) {
	var extra bytes.Buffer
	log := New(Options{Level: zerolog.InfoLevel, JSON: true, Extra: &extra})

	log.Info("Config", "loaded", nil)

	entry := decodeLine(t, &extra)
	assert.Equal(t, "Config", entry["component"])
}

func TestNewWritesConsoleToOut(t *testing.T) {
	var out bytes.Buffer
	log := New(Options{Level: zerolog.InfoLevel, Out: &out})

	log.Warning("Config", "log file unavailable", map[string]interface{}{"path": "/nope"})

	assert.Contains(t, out.String(), "log file unavailable")
	assert.Contains(t, out.String(), "/nope")
}

func TestNop(t *testing.T) {
	assert.NotPanics(t, func() {
		Nop().Error("Runtime", errors.New("ignored"), map[string]interface{}{"k": 1})
	})
}
