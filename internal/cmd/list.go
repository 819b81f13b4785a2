package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mqlforge/mqlforge/internal/config"
	"github.com/mqlforge/mqlforge/internal/library"
	"github.com/mqlforge/mqlforge/internal/tui/styles"
)

var listWatch bool

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List saved Expert Advisors",
	Long: `List the .mq5 files in the output directory, newest first.

With --watch, keep running and re-list whenever files are added,
removed, or rewritten. Useful alongside an open MetaEditor.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.FromViper()

		if err := printLibrary(cfg.OutputDir); err != nil {
			return err
		}
		if !listWatch {
			return nil
		}

		watcher, err := library.NewWatcher(cfg.OutputDir)
		if err != nil {
			return fmt.Errorf("watching %s: %w", cfg.OutputDir, err)
		}
		defer watcher.Close()

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		fmt.Println(styles.Dim("Watching for changes. Press ctrl+c to stop."))
		for range watcher.Watch(ctx) {
			fmt.Println()
			if err := printLibrary(cfg.OutputDir); err != nil {
				return err
			}
		}
		return nil
	},
}

func printLibrary(dir string) error {
	entries, err := library.Scan(dir)
	if err != nil {
		return fmt.Errorf("scanning %s: %w", dir, err)
	}

	fmt.Println(styles.Title.Render("Expert Advisors") + "  " + styles.Dim(dir))
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("  " + styles.Dim("No .mq5 files yet. Generate one with 'mqlforge studio'."))
		return nil
	}

	for _, e := range entries {
		fmt.Printf("  %s  %s  %s\n",
			styles.Value.Render(e.ModTime.Format("2006-01-02 15:04")),
			styles.Dim(fmt.Sprintf("%6d B", e.Size)),
			styles.Bold(e.Name),
		)
	}
	return nil
}

func init() {
	listCmd.Flags().BoolVarP(&listWatch, "watch", "w", false, "keep watching the output directory")
	rootCmd.AddCommand(listCmd)
}
