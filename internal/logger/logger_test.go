package logger

import (
	"bytes"
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func resetLogger() {
	SetVerbose(false)
	SetOutput(os.Stderr)
}

func TestSetVerbose(t *testing.T) {
	defer resetLogger()

	SetVerbose(false)
	assert.False(t, IsVerbose())

	SetVerbose(true)
	assert.True(t, IsVerbose())

	SetVerbose(false)
	assert.False(t, IsVerbose())
}

func TestDebug_WhenVerbose(t *testing.T) {
	defer resetLogger()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	Debug("strategy %s recovered %d bytes", "byte_run", 42)

	output := buf.String()
	assert.Contains(t, output, "DBG")
	assert.Contains(t, output, "strategy byte_run recovered 42 bytes")
}

func TestDebug_WhenNotVerbose(t *testing.T) {
	defer resetLogger()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(false)

	Debug("test message")
	Info("test message")
	Warn("test message")
	DebugFields("test message", map[string]any{"k": "v"})
	Section("Hidden")

	assert.Zero(t, buf.Len(), "expected no output when verbose is disabled")
}

func TestDebugFields(t *testing.T) {
	defer resetLogger()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	DebugFields("extraction finished", map[string]any{"strategy": "structure", "chars": 11})

	output := buf.String()
	assert.Contains(t, output, "extraction finished")
	assert.Contains(t, output, "strategy=structure")
	assert.Contains(t, output, "chars=11")
}

func TestSection(t *testing.T) {
	defer resetLogger()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	Section("Recovery")

	assert.Equal(t, "\n=== Recovery ===\n", buf.String())
}

func TestInfoAndWarn(t *testing.T) {
	defer resetLogger()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)

	Info("info message %d", 42)
	Warn("warning message")

	output := buf.String()
	assert.Contains(t, output, "INF")
	assert.Contains(t, output, "info message 42")
	assert.Contains(t, output, "WRN")
	assert.Contains(t, output, "warning message")
}

func TestConcurrentAccess(t *testing.T) {
	defer resetLogger()

	var buf bytes.Buffer
	SetOutput(&buf)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			SetVerbose(true)
			Debug("concurrent %d", i)
			IsVerbose()
			SetVerbose(false)
		}()
	}
	wg.Wait()
}
