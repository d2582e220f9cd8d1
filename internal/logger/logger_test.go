package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &m))
		out = append(out, m)
	}
	return out
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(Config{Level: "warn", Output: &buf})

	l.Info("hidden").Send()
	l.Warn("shown").Send()

	entries := lines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "warn", entries[0]["level"])
	assert.Equal(t, "trakhound", entries[0]["service"])
}

func TestLogPublish(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(Config{Level: "debug", Output: &buf})

	l.LogPublish("objects/boolean", 3, 0, time.Millisecond, nil)
	l.LogPublish("objects/event", 1, 2, time.Millisecond, nil)
	l.LogPublish("objects/event", 0, 0, time.Millisecond, errors.New("boom"))

	entries := lines(t, &buf)
	require.Len(t, entries, 3)
	assert.Equal(t, "debug", entries[0]["level"])
	assert.Equal(t, float64(3), entries[0]["added"])
	assert.Equal(t, "warn", entries[1]["level"])
	assert.Equal(t, "error", entries[2]["level"])
	assert.Equal(t, "boom", entries[2]["error"])
}

func TestComponentLoggers(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(Config{Level: "info", Output: &buf})

	l.CollectionLogger("seed").Info("loading").Send()
	l.GrpcLogger("/trakhound.EntityService/Get").Info("call").Send()

	entries := lines(t, &buf)
	require.Len(t, entries, 2)
	assert.Equal(t, "collection", entries[0]["component"])
	assert.Equal(t, "seed", entries[0]["operation"])
	assert.Equal(t, "grpc", entries[1]["component"])
}

func TestLogGrpcRequest(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(Config{Level: "info", Output: &buf})

	l.LogGrpcRequest("/trakhound.EntityService/Get", time.Millisecond, nil)
	l.LogGrpcRequest("/trakhound.EntityService/Get", time.Millisecond, errors.New("not found"))

	entries := lines(t, &buf)
	require.Len(t, entries, 2)
	assert.Equal(t, "grpc", entries[0]["component"])
	assert.Equal(t, "/trakhound.EntityService/Get", entries[0]["method"])
	assert.Equal(t, "error", entries[1]["level"])
	assert.Equal(t, "not found", entries[1]["error"])
}

func TestWithFieldsAndDebug(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(Config{Level: "debug", Output: &buf}).
		WithFields(map[string]interface{}{"version": "1.2.3"})

	l.Debug("detail").Int("n", 2).Send()

	entries := lines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "debug", entries[0]["level"])
	assert.Equal(t, "1.2.3", entries[0]["version"])
	assert.Equal(t, "detail", entries[0]["msg"])
}

func TestInitGlobalLogger(t *testing.T) {
	previous := log.Logger
	t.Cleanup(func() { log.Logger = previous })

	var buf bytes.Buffer
	l := InitGlobalLogger(Config{Level: "warn", Output: &buf})
	require.NotNil(t, l)

	log.Info().Msg("hidden")
	log.Warn().Msg("shown")

	entries := lines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "trakhound", entries[0]["service"])
}

func TestNop(t *testing.T) {
	Nop().Error("nothing").Send()
}
