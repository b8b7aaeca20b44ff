// Package cli provides the docsift command-line interface.
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/docsift/internal/adapters/driven/config/file"
	"github.com/custodia-labs/docsift/internal/core/ports/driven"
	"github.com/custodia-labs/docsift/internal/core/ports/driving"
	"github.com/custodia-labs/docsift/internal/core/services"
	"github.com/custodia-labs/docsift/internal/logger"
)

// skipServices marks commands that run without the extraction stack.
const skipServices = "skip-services"

// version is set at build time via ldflags.
var version = "dev"

var (
	verbose    bool
	configPath string
)

// Services used by commands. They are wired on first use unless a caller
// (typically a test) has injected them already.
var (
	configStore       driven.ConfigStore
	settingsService   driving.SettingsService
	extractionService driving.ExtractionService
)

var rootCmd = &cobra.Command{
	Use:   "docsift",
	Short: "Recover readable text from documents",
	Long: `docsift recovers best-effort readable text from PDF, Word and plain text
documents without a full parser. It strips encoding and layout artifacts and
bounds the result to a configured length.`,
	SilenceUsage:      true,
	PersistentPreRunE: initServices,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log recovery details to stderr")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "",
		"config file (.toml, .yaml or .yml; default ~/.docsift/config.toml)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion records the build version shown by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

func initServices(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)

	if cmd.Annotations[skipServices] == "true" {
		return nil
	}

	if configStore == nil {
		store, err := openConfigStore(configPath)
		if err != nil {
			return fmt.Errorf("open config: %w", err)
		}
		configStore = store
	}

	if settingsService == nil {
		settingsService = services.NewSettingsService(configStore)
	}

	if extractionService == nil {
		settings, err := settingsService.Get()
		if err != nil {
			return fmt.Errorf("load settings: %w", err)
		}
		svc, err := services.NewExtractionServiceFromSettings(*settings)
		if err != nil {
			return fmt.Errorf("configure extraction: %w", err)
		}
		extractionService = svc
	}

	return nil
}

func openConfigStore(path string) (*file.ConfigStore, error) {
	if path != "" {
		return file.NewConfigStoreFromFile(path)
	}
	return file.NewConfigStore("")
}
