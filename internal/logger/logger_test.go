package logger

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductionLogsJSONAtInfo(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, EnvProd, nil)
	log.Debug("hidden")
	log.Info("request done", "status", 200)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "request done", entry["msg"])
	assert.EqualValues(t, 200, entry["status"])
}

func TestLocalLogsTextAtDebug(t *testing.T) {
	var buf bytes.Buffer
	New(&buf, EnvLocal, nil).Debug("cache miss", "key", "programs")
	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), "key=programs")
}

func TestLevelOverridesEnvDefault(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, EnvDev, slog.LevelWarn)
	log.Info("quiet")
	assert.Empty(t, buf.String())
	log.Warn("loud")
	assert.Contains(t, buf.String(), `"msg":"loud"`)
}
