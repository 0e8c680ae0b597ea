package logger

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"inventory-backend/internal/config"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitWritesJSONToFile(t *testing.T) {
	t.Cleanup(func() {
		logrus.SetOutput(os.Stderr)
		logrus.SetFormatter(&logrus.TextFormatter{})
		logrus.SetLevel(logrus.InfoLevel)
	})

	path := filepath.Join(t.TempDir(), "logs", "app.log")
	Init(config.LogConfig{Level: "debug", File: path, MaxSize: 1, MaxAge: 1, MaxBackups: 1})

	assert.Equal(t, logrus.DebugLevel, logrus.GetLevel())

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var entry map[string]interface{}
	require.NoError(t, json.NewDecoder(bytes.NewReader(data)).Decode(&entry))
	assert.Equal(t, "logger initialized", entry["msg"])
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "debug", entry["log_level"])
}

func TestInitFallsBackToInfo(t *testing.T) {
	t.Cleanup(func() {
		logrus.SetOutput(os.Stderr)
		logrus.SetFormatter(&logrus.TextFormatter{})
	})

	Init(config.LogConfig{Level: "verbose"})

	assert.Equal(t, logrus.InfoLevel, logrus.GetLevel())
}
