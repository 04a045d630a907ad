package cli

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/mojuniorlima-droid/sos-licitacoes/internal/logger"
)

// watchSettle is how long a PDF must stay quiet before it is indexed.
// Downloads and copies fire many write events for one file.
const watchSettle = 2 * time.Second

var watchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Watch a directory and index new PDFs automatically",
	Long: `Watches the given directory and indexes every PDF that is created or
modified in it. Indexing waits for the file to stop changing, so
in-progress downloads are picked up only once.

Runs until interrupted.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
}

func runWatch(cmd *cobra.Command, args []string) error {
	if catalogService == nil {
		return errors.New("catalog service not configured")
	}

	dir := args[0]
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}

	cmd.Printf("Watching %s for PDFs (Ctrl+C to stop)\n", dir)

	ctx := cmd.Context()
	var mu sync.Mutex
	timers := make(map[string]*time.Timer)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) {
				continue
			}
			if !strings.EqualFold(filepath.Ext(event.Name), ".pdf") {
				continue
			}

			// Restart the settle timer for this path.
			path := event.Name
			mu.Lock()
			if t, exists := timers[path]; exists {
				t.Stop()
			}
			timers[path] = time.AfterFunc(watchSettle, func() {
				mu.Lock()
				delete(timers, path)
				mu.Unlock()

				result, err := catalogService.IndexDocument(ctx, path)
				if err != nil {
					fmt.Fprintf(cmd.ErrOrStderr(), "index %s: %v\n", path, err)
					return
				}
				cmd.Printf("Indexed %s: %d pages, %d chunks\n", result.Name, result.PageCount, result.ChunkCount)
			})
			mu.Unlock()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error: %v", err)
		}
	}
}
