package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/vcrobe/jsxc/diagnostics"
)

const (
	watchCmdUse   = "watch <dir>"
	watchCmdShort = "Recompile a project's JSX files as they change"

	watchDebounce = 100 * time.Millisecond
)

var watchExtensions = map[string]bool{
	".jsx": true,
	".tsx": true,
}

// NewWatchCommand builds the watch subcommand.
func NewWatchCommand() *cobra.Command {
	var flags commonFlags

	cmd := &cobra.Command{
		Use:   watchCmdUse,
		Short: watchCmdShort,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := resolveOptions(cmd, &flags)
			if err != nil {
				return err
			}
			return runWatch(cmd, args[0], opts)
		},
	}

	registerCommonFlags(cmd, &flags)

	return cmd
}

func runWatch(cmd *cobra.Command, dir string, opts options) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating file watcher: %w", err)
	}
	defer watcher.Close()

	if err := addWatchDirs(watcher, dir); err != nil {
		return fmt.Errorf("watching %s: %w", dir, err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "watching %s for changes (ctrl-c to stop)\n", dir)

	debounce := time.NewTimer(0)
	<-debounce.C
	pending := make(map[string]bool)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !isWatchedSource(event.Name) {
				continue
			}
			pending[event.Name] = true
			debounce.Reset(watchDebounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			diagnostics.PrintWarning(cmd.ErrOrStderr(), dir, err.Error())

		case <-debounce.C:
			if len(pending) == 0 {
				continue
			}
			files := make([]string, 0, len(pending))
			for f := range pending {
				files = append(files, f)
			}
			pending = make(map[string]bool)

			for _, o := range transformAll(files, opts) {
				if o.err != nil {
					diagnostics.PrintError(cmd.ErrOrStderr(), o.file, o.err)
					continue
				}
				if err := writeOutput(o.file, o.code); err != nil {
					diagnostics.PrintError(cmd.ErrOrStderr(), o.file, err)
					continue
				}
				diagnostics.PrintSuccess(cmd.OutOrStdout(), o.file)
			}
		}
	}
}

func addWatchDirs(watcher *fsnotify.Watcher, root string) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if strings.HasPrefix(info.Name(), ".") && path != root {
				return filepath.SkipDir
			}
			return watcher.Add(path)
		}
		return nil
	})
}

func isWatchedSource(path string) bool {
	return watchExtensions[strings.ToLower(filepath.Ext(path))]
}
