package helpers

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogErrorStampsAppAndError(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger("task-api", "production")
	logger.SetOutput(&buf)

	LogError(logger, "create note failed", errors.New("boom"), logrus.Fields{"owner_id": 3})

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "task-api", line["app"])
	assert.Equal(t, "boom", line["error"])
	assert.Equal(t, "create note failed", line["msg"])
	assert.EqualValues(t, 3, line["owner_id"])
}

func TestNilLoggerIsNoop(t *testing.T) {
	assert.NotPanics(t, func() {
		LogError(nil, "x", errors.New("y"), nil)
		LogInfo(nil, "x", nil)
	})
}
