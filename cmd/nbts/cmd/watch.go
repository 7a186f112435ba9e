package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/koalazub/tree-sitter-notebook/internal/watch"
)

var watchDebounce time.Duration

var watchCmd = &cobra.Command{
	Use:   "watch [dir]",
	Short: "Keep the cell index current as notebook files change",
	Long:  "Builds the index, then watches the directory and reindexes changed notebook files until interrupted.",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runWatch,
}

func init() {
	watchCmd.Flags().DurationVar(&watchDebounce, "debounce", watch.DefaultDebounce,
		"Quiet period for coalescing editor write bursts")
}

func runWatch(cmd *cobra.Command, args []string) error {
	dir := resolveDir(args)

	lang, err := loadLanguage()
	if err != nil {
		return err
	}

	// Full pass first so the index is complete before we go live.
	if err := runIndex(cmd, args); err != nil {
		return err
	}

	store, err := openStore(dir)
	if err != nil {
		return err
	}
	defer store.Close()

	watcher, err := watch.NewWatcher([]string{indexExt}, watchDebounce)
	if err != nil {
		return err
	}
	defer watcher.Stop()

	out := cmd.OutOrStdout()
	err = watcher.Watch(dir, func(path string) {
		rel, rerr := filepath.Rel(dir, path)
		if rerr != nil {
			rel = path
		}
		if _, serr := os.Stat(path); serr != nil {
			if derr := store.DeleteDocument(rel); derr != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "drop %s: %v\n", rel, derr)
				return
			}
			fmt.Fprintf(out, "dropped %s\n", rel)
			return
		}
		if ierr := indexFile(store, lang, dir, path); ierr != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "reindex %s: %v\n", rel, ierr)
			return
		}
		fmt.Fprintf(out, "reindexed %s\n", rel)
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "watching %s (ctrl-c to stop)\n", dir)
	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig
	return nil
}
