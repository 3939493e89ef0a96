package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_InvalidLevelFallsBackToInfo(t *testing.T) {
	log := New("not-a-level")
	assert.Equal(t, logrus.InfoLevel, log.GetLevel())
}

func TestWithComponent_WritesJSON(t *testing.T) {
	var buf bytes.Buffer
	log := NewWithOutput("debug", &buf)

	log.WithComponent("booking").Info("appointment booked")

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "booking", entry["component"])
	assert.Equal(t, "appointment booked", entry["message"])
	assert.Equal(t, "info", entry["level"])
	assert.Contains(t, entry, "timestamp")
}

func TestHTTPRequest_LevelByStatus(t *testing.T) {
	tests := []struct {
		status int
		level  string
	}{
		{200, "info"},
		{404, "warning"},
		{500, "error"},
	}

	for _, tt := range tests {
		var buf bytes.Buffer
		log := NewWithOutput("debug", &buf)
		log.HTTPRequest("req-1", "GET", "/health", "127.0.0.1", tt.status, 3)

		var entry map[string]interface{}
		require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
		assert.Equal(t, tt.level, entry["level"])
		assert.Equal(t, "req-1", entry["request_id"])
		assert.EqualValues(t, tt.status, entry["status_code"])
	}
}
