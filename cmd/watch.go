package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/styletree/styletree/internal/build"
	"github.com/styletree/styletree/internal/config"
	"github.com/styletree/styletree/internal/watcher"
)

var watchCmd = &cobra.Command{
	Use:     "watch",
	Aliases: []string{"w"},
	Short:   "Watch style sources and recompile on change",
	Long: `Compile all configured units, then watch every style source (including
partials pulled in with $use) and the config file itself, recompiling on
change. Rapid saves are debounced into one rebuild.

Examples:
  styletree watch                 # Watch with configured debounce
  styletree watch --verbose       # List changed files on each rebuild`,
	RunE: runWatch,
}

var watchVerbose bool

func init() {
	rootCmd.AddCommand(watchCmd)

	watchCmd.Flags().BoolVarP(&watchVerbose, "verbose", "v", false, "List changed files on each rebuild")
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := newLogger()

	// Initial compile so the outputs exist before the first change.
	result := build.New(cfg, logger).Run(cmd.Context())
	printResult(result)

	w, err := watcher.New(cfg.Watch.Debounce, logger)
	if err != nil {
		return fmt.Errorf("failed to create file watcher: %w", err)
	}
	defer w.Stop()

	if err := w.Track(trackedFiles(result)); err != nil {
		return fmt.Errorf("failed to watch style sources: %w", err)
	}

	w.AddHandler(func(events []watcher.Event) error {
		if watchVerbose {
			for _, event := range events {
				printDetail("%s: %s", event.Op, event.Path)
			}
		} else {
			printInfo("%d file(s) changed", len(events))
		}

		// The config file itself may have changed; re-read it so new or
		// removed units take effect without restarting.
		_ = viper.ReadInConfig()
		cfg, err := config.Load()
		if err != nil {
			printError("configuration error: %v", err)
			return nil
		}

		result := build.New(cfg, logger).Run(context.Background())
		printResult(result)

		if err := w.Track(trackedFiles(result)); err != nil {
			printError("failed to re-track style sources: %v", err)
		}
		return nil
	})

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	w.Start(ctx)

	printInfo("Watching %d file(s)... (Press Ctrl+C to stop)", len(trackedFiles(result)))

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan

	printInfo("Stopping watcher")
	return nil
}

// trackedFiles is the watch set for one build pass: every style source the
// units' import graphs reached, plus the config file when one was used.
func trackedFiles(result *build.Result) []string {
	files := result.Deps()
	if used := viper.ConfigFileUsed(); used != "" {
		files = append(files, used)
	}
	return files
}
