package logging

import (
	"bytes"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggerWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(nil)

	gin.SetMode(gin.TestMode)
	ctx, _ := gin.CreateTestContext(httptest.NewRecorder())
	ctx.Request = httptest.NewRequest("POST", "/api/v1/decode/image", nil)

	BuildLoggerFromCtx(ctx).WithError(errors.New("boom")).Error("decode failed")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "decode failed", entry["msg"])
	assert.Equal(t, "/api/v1/decode/image", entry["path"])
	assert.Equal(t, "POST", entry["method"])
	assert.Equal(t, "boom", entry["error"])
}

func TestSetLevel(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf)
	defer SetOutput(nil)
	defer SetLevel(slog.LevelDebug)

	SetLevel(slog.LevelWarn)
	BuildLogger().Info("hidden")
	assert.Zero(t, buf.Len())

	BuildLogger().Warn("shown")
	assert.Contains(t, buf.String(), "shown")
}
