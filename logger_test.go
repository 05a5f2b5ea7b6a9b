package tween

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_Levels(t *testing.T) {
	log, closer, err := NewLogger(LogConfig{Level: "warn", Format: "json"})
	require.NoError(t, err)
	defer closer.Close()
	assert.Equal(t, zerolog.WarnLevel, log.GetLevel())

	assert.Equal(t, zerolog.InfoLevel, parseLevel(""))
	assert.Equal(t, zerolog.TraceLevel, parseLevel("TRACE"))
	assert.Equal(t, zerolog.Disabled, parseLevel("disabled"))
}

func TestNewLogger_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tween.log")
	log, closer, err := NewLogger(LogConfig{Level: "info", Format: "json", Output: path})
	require.NoError(t, err)
	log.Info().Msg("hello")
	assert.NoError(t, closer.Close())
}

func TestRegistry_DebugLogging(t *testing.T) {
	var buf bytes.Buffer
	log := zerolog.New(&buf).Level(zerolog.DebugLevel)
	reg, sched := newTestRegistry(WithLogger(log))

	Float(reg, 0, 1, 0.5).Run()
	sched.Advance(0.5)

	var msgs []string
	dec := json.NewDecoder(&buf)
	for dec.More() {
		var line map[string]any
		require.NoError(t, dec.Decode(&line))
		msgs = append(msgs, line["message"].(string))
		if line["component"] == "repository" {
			assert.Equal(t, "float64", line["type"])
		}
	}
	assert.Contains(t, msgs, "repository created")
	assert.Contains(t, msgs, "tween added")
	assert.Contains(t, msgs, "tick")
	assert.Contains(t, msgs, "tween removed")
	assert.Contains(t, msgs, "update task discarded")
}
