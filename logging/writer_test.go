package logging

import (
	"bytes"
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetWriterFallsBackToConsole(t *testing.T) {
	var ctx context.Context
	assert.Same(t, consoleOutput, GetWriter(ctx))
	assert.Same(t, consoleOutput, GetWriter(context.Background()))

	var buf bytes.Buffer
	assert.Same(t, &buf, GetWriter(WithWriter(nil, &buf)))
}

func TestSetGlobalOutputRedirectsExistingLoggers(t *testing.T) {
	isolate(t)
	t.Cleanup(func() { SetGlobalOutput(os.Stderr) })

	Configure(Config{Format: FormatConfig{StructuredToStderr: StderrAlways}})
	logger := NewLogger("redirect")

	var first, second bytes.Buffer
	SetGlobalOutput(&first)
	logger.Info("one")
	SetGlobalOutput(&second)
	logger.Info("two")

	assert.Contains(t, first.String(), "one")
	assert.NotContains(t, first.String(), "two")
	assert.Contains(t, second.String(), "two")

	SetGlobalOutput(nil)
	n, err := GetGlobalOutput().Write([]byte("dropped"))
	assert.NoError(t, err)
	assert.Equal(t, len("dropped"), n)
}
