package logger

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func TestLogHelpers(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf, zerolog.InfoLevel)
	ctx := context.Background()

	DebugLog(ctx, "hidden %d", 1)
	assert.Empty(t, buf.String())

	InfoLog(ctx, "added employee %d", 7)
	assert.Contains(t, buf.String(), `"level":"info"`)
	assert.Contains(t, buf.String(), "added employee 7")

	buf.Reset()
	ErrorLog(ctx, "failed to add", errors.New("boom"))
	assert.Contains(t, buf.String(), `"error":"boom"`)
	assert.Contains(t, buf.String(), `"message":"failed to add"`)
	assert.Equal(t, 1, strings.Count(buf.String(), "boom"))

	buf.Reset()
	ErrorLog(ctx, "rejected employee %d", 7)
	assert.Contains(t, buf.String(), "rejected employee 7")
}

func TestWithLogger(t *testing.T) {
	var buf bytes.Buffer
	SetOutput(&buf, zerolog.DebugLevel)

	ctx := WithLogger(context.Background(), map[string]interface{}{"request_id": "abc"})
	WarnLog(ctx, "capacity reached")

	assert.Contains(t, buf.String(), `"request_id":"abc"`)
	assert.Contains(t, buf.String(), `"level":"warn"`)
}
