package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"golang.org/x/time/rate"

	"github.com/custodia-labs/docsift/internal/core/ports/driving"
	"github.com/custodia-labs/docsift/internal/logger"
)

// sidecarSuffix names the text file written next to each processed document.
const sidecarSuffix = ".docsift.txt"

var watchInterval time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch DIR",
	Short: "Extract text from documents as they appear",
	Long: `Watch a directory and write the recovered text of every created or modified
document to a sidecar file named <name>.docsift.txt next to it.

Hidden files and sidecars are ignored. Extractions are throttled to one per
--interval. Stop with Ctrl+C.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	watchCmd.Flags().DurationVar(&watchInterval, "interval", 250*time.Millisecond,
		"minimum time between extractions")
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if extractionService == nil {
		return errors.New("extraction service not configured")
	}
	if watchInterval <= 0 {
		return fmt.Errorf("--interval must be positive, got %s", watchInterval)
	}

	dir := args[0]
	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("watch %s: not a directory", dir)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	limiter := rate.NewLimiter(rate.Every(watchInterval), 1)
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Watching %s (Ctrl+C to stop)\n", dir)

	for {
		select {
		case <-ctx.Done():
			return nil
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error: %v", err)
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !shouldProcess(event) {
				continue
			}
			if err := limiter.Wait(ctx); err != nil {
				return nil
			}
			sidecar, err := handleWatchEvent(ctx, extractionService, event)
			if err != nil {
				logger.Warn("%s: %v", event.Name, err)
				continue
			}
			if sidecar != "" {
				fmt.Fprintf(out, "%s -> %s\n", event.Name, sidecar)
			}
		}
	}
}

// shouldProcess reports whether an event names a document worth extracting.
func shouldProcess(event fsnotify.Event) bool {
	if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
		return false
	}
	base := filepath.Base(event.Name)
	if strings.HasPrefix(base, ".") || strings.HasSuffix(base, sidecarSuffix) {
		return false
	}
	return true
}

// handleWatchEvent extracts the document named by event and writes its
// sidecar. It returns the sidecar path, or "" when the path is no longer a
// regular file.
func handleWatchEvent(ctx context.Context, svc driving.ExtractionService, event fsnotify.Event) (string, error) {
	info, err := os.Stat(event.Name)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", err
	}
	if !info.Mode().IsRegular() {
		return "", nil
	}

	raw, err := readDocument(nil, event.Name, "")
	if err != nil {
		return "", err
	}

	ext, err := svc.Extract(ctx, raw)
	if err != nil {
		return "", err
	}

	sidecar := sidecarPath(event.Name)
	if err := os.WriteFile(sidecar, []byte(ext.Text+"\n"), 0o600); err != nil {
		return "", fmt.Errorf("write sidecar: %w", err)
	}

	logger.Debug("watch: %s extracted via %s (placeholder=%t)", event.Name, ext.Strategy, ext.Placeholder)
	return sidecar, nil
}

// sidecarPath returns the text file path for a document.
func sidecarPath(path string) string {
	return path + sidecarSuffix
}
