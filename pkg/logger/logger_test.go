package logger

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProductionWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	log := New(Opts{Env: "production", Writer: &buf})

	log.WithComponent("Pipeline").Info("Tweet published", "tweet_id", "42")
	log.Debug("dropped below info level")

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 1)

	var record map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &record))
	assert.Equal(t, "Tweet published", record["message"])
	assert.Equal(t, "Pipeline", record["component"])
	assert.Equal(t, "42", record["tweet_id"])
	assert.Equal(t, "info", record["level"])
}

func TestNewDevelopmentConsole(t *testing.T) {
	var buf bytes.Buffer
	log := New(Opts{Writer: &buf})

	log.Debug("Fetching latest Instagram post", "username", "bbcnews")

	assert.Contains(t, buf.String(), "Fetching latest Instagram post")
	assert.Contains(t, buf.String(), "bbcnews")
}
