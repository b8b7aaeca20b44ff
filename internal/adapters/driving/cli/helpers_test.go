package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/docsift/internal/adapters/driven/config/memory"
	"github.com/custodia-labs/docsift/internal/core/domain"
	"github.com/custodia-labs/docsift/internal/core/services"
)

// setupTestServices wires in-memory services and resets command flags.
// The returned function restores the previous state.
func setupTestServices() func() {
	prevStore, prevSettings, prevExtraction := configStore, settingsService, extractionService

	store := memory.NewConfigStore()
	configStore = store
	settingsService = services.NewSettingsService(store)

	svc, err := services.NewExtractionServiceFromSettings(domain.DefaultExtractionSettings())
	if err != nil {
		panic(err)
	}
	extractionService = svc

	resetFlags()

	return func() {
		configStore, settingsService, extractionService = prevStore, prevSettings, prevExtraction
		resetFlags()
	}
}

func resetFlags() {
	verbose = false
	configPath = ""
	extractMIME = ""
	extractMaxLength = 0
	extractExcerpt = false
	extractJSON = false
	extractJobs = 4
	inspectMIME = ""
	inspectRaw = false
	watchInterval = 250 * time.Millisecond
}

// runCommand executes rootCmd with args and returns its combined output.
func runCommand(args ...string) (string, error) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}

func writeTempFile(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, content, 0o600))
	return path
}
