package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docsift/internal/core/domain"
)

func TestExtractCmd_Use(t *testing.T) {
	assert.Equal(t, "extract FILE...", extractCmd.Use)
}

func TestExtractCmd_Flags(t *testing.T) {
	tests := []struct {
		name      string
		shorthand string
		defValue  string
	}{
		{"mime", "m", ""},
		{"max-length", "n", "0"},
		{"excerpt", "", "false"},
		{"json", "", "false"},
		{"jobs", "j", "4"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag := extractCmd.Flags().Lookup(tt.name)
			require.NotNil(t, flag)
			assert.Equal(t, tt.shorthand, flag.Shorthand)
			assert.Equal(t, tt.defValue, flag.DefValue)
		})
	}
}

func TestExtractCmd_RequiresArgs(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := runCommand("extract")

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "requires at least 1 arg(s)")
}

func TestExtractCmd_PlainText(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	path := writeTempFile(t, "notes.txt", []byte("Hello world.\n\n   Second    line.\n"))

	out, err := runCommand("extract", path)

	require.NoError(t, err)
	assert.Equal(t, "Hello world.\nSecond line.\n", out)
}

func TestExtractCmd_PDFPlaceholder(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	path := writeTempFile(t, "scan.pdf", bytes.Repeat([]byte{0x00, 0xFF}, 64))

	out, err := runCommand("extract", path)

	require.NoError(t, err)
	assert.Contains(t, out, "PDF text extraction failed")
}

func TestExtractCmd_MaxLength(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	path := writeTempFile(t, "long.txt", []byte(strings.Repeat("word ", 100)))

	out, err := runCommand("extract", "--max-length", "20", path)

	require.NoError(t, err)
	assert.LessOrEqual(t, len([]rune(strings.TrimSuffix(out, "\n"))), 20)
}

func TestExtractCmd_MultipleFilesKeepOrder(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	first := writeTempFile(t, "a.txt", []byte("alpha document"))
	second := writeTempFile(t, "b.txt", []byte("beta document"))

	out, err := runCommand("extract", "--jobs", "2", first, second)

	require.NoError(t, err)
	firstHeader := strings.Index(out, "==> "+first+" <==")
	secondHeader := strings.Index(out, "==> "+second+" <==")
	require.GreaterOrEqual(t, firstHeader, 0)
	require.Greater(t, secondHeader, firstHeader)
	assert.Contains(t, out[firstHeader:secondHeader], "alpha document")
	assert.Contains(t, out[secondHeader:], "beta document")
}

func TestExtractCmd_JSON(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	path := writeTempFile(t, "notes.txt", []byte("Readable text"))

	out, err := runCommand("extract", "--json", path)
	require.NoError(t, err)

	var res extractResult
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, path, res.URI)
	assert.Equal(t, domain.MIMETypePlainText, res.MIMEType)
	assert.Equal(t, "direct", res.Strategy)
	assert.False(t, res.Placeholder)
	assert.Equal(t, "Readable text", res.Text)
	assert.NotEmpty(t, res.ID)
	require.Len(t, res.Attempts, 1)
}

func TestExtractCmd_MIMEOverride(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	path := writeTempFile(t, "upload.bin", []byte("plain words"))

	out, err := runCommand("extract", "--mime", "text/plain", path)

	require.NoError(t, err)
	assert.Contains(t, out, "plain words")
}

func TestExtractCmd_UnsupportedType(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	path := writeTempFile(t, "image.png", []byte("\x89PNG\r\n\x1a\n"))

	_, err := runCommand("extract", path)

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrUnsupportedType)
}

func TestExtractCmd_MissingFile(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	_, err := runCommand("extract", "/nonexistent/docsift/file.txt")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "read /nonexistent/docsift/file.txt")
}

func TestExtractCmd_InvalidJobs(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	path := writeTempFile(t, "notes.txt", []byte("text"))

	_, err := runCommand("extract", "--jobs", "0", path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "--jobs")
}

func TestExtractCmd_Stdin(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	rootCmd.SetIn(strings.NewReader("from standard input"))
	defer rootCmd.SetIn(nil)

	out, err := runCommand("extract", "--mime", "text/plain", "-")

	require.NoError(t, err)
	assert.Contains(t, out, "from standard input")
}

func TestExtractCmd_StdinOnlyOnce(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	rootCmd.SetIn(strings.NewReader("from standard input"))
	defer rootCmd.SetIn(nil)

	_, err := runCommand("extract", "--mime", "text/plain", "-", "-")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "stdin (-) can be read only once")
}

func TestExtractCmd_NoService(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	extractionService = nil

	err := runExtract(extractCmd, []string{"x.txt"})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "extraction service not configured")
}
