package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"github.com/vcrobe/jsxc"
	"github.com/vcrobe/jsxc/diagnostics"
)

const (
	transformCmdUse   = "transform <file|glob>..."
	transformCmdShort = "Compile one or more JSX source files"
)

// NewTransformCommand builds the transform subcommand.
func NewTransformCommand() *cobra.Command {
	var flags commonFlags
	var stdout, showStats bool

	cmd := &cobra.Command{
		Use:   transformCmdUse,
		Short: transformCmdShort,
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := resolveOptions(cmd, &flags)
			if err != nil {
				return err
			}

			files, err := expandPaths(args)
			if err != nil {
				return err
			}

			return runTransform(cmd, files, opts, stdout, showStats)
		},
	}

	registerCommonFlags(cmd, &flags)
	cmd.Flags().BoolVar(&stdout, flagStdout, false, flagStdoutUsage)
	cmd.Flags().BoolVar(&showStats, flagStats, false, flagStatsUsage)

	return cmd
}

type transformOutcome struct {
	file string
	code string
	stat diagnostics.FileStat
	err  error
}

func runTransform(cmd *cobra.Command, files []string, baseOpts options, toStdout, showStats bool) error {
	outcomes := transformAll(files, baseOpts)

	var firstErr error
	var stats []diagnostics.FileStat

	for _, o := range outcomes {
		if o.err != nil {
			diagnostics.PrintError(cmd.ErrOrStderr(), o.file, o.err)
			if firstErr == nil {
				firstErr = o.err
			}
			continue
		}

		if toStdout {
			fmt.Fprintln(cmd.OutOrStdout(), o.code)
		} else if err := writeOutput(o.file, o.code); err != nil {
			diagnostics.PrintError(cmd.ErrOrStderr(), o.file, err)
			if firstErr == nil {
				firstErr = err
			}
			continue
		}

		diagnostics.PrintSuccess(cmd.OutOrStdout(), o.file)
		stats = append(stats, o.stat)
	}

	if showStats {
		diagnostics.PrintStats(cmd.OutOrStdout(), stats)
	}

	if firstErr != nil {
		return fmt.Errorf("one or more files failed to compile")
	}
	return nil
}

// transformAll runs TransformJSX over files concurrently, one goroutine per
// CPU (runtime.GOMAXPROCS), since no mutable state is shared between calls.
func transformAll(files []string, baseOpts options) []transformOutcome {
	outcomes := make([]transformOutcome, len(files))

	workers := runtime.GOMAXPROCS(0)
	if workers > len(files) {
		workers = len(files)
	}
	if workers < 1 {
		workers = 1
	}

	jobs := make(chan int)
	var wg sync.WaitGroup

	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				outcomes[i] = transformOne(files[i], baseOpts)
			}
		}()
	}

	for i := range files {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	return outcomes
}

func transformOne(file string, baseOpts options) transformOutcome {
	source, err := os.ReadFile(file)
	if err != nil {
		return transformOutcome{file: file, err: fmt.Errorf("reading %s: %w", file, err)}
	}

	opts := baseOpts
	opts.Filename = file

	result, err := jsxc.TransformJSX(string(source), opts)
	if err != nil {
		return transformOutcome{file: file, err: err}
	}

	return transformOutcome{
		file: file,
		code: result.Code,
		stat: diagnostics.FileStat{
			Filename:   file,
			Mode:       opts.Generate,
			Hydratable: opts.Hydratable,
			Stats:      result.Stats,
		},
	}
}

// options is a local alias so this file doesn't need to import common just
// for the parameter type.
type options = jsxc.Options

func writeOutput(inputFile, code string) error {
	out := outputPath(inputFile)
	if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", filepath.Dir(out), err)
	}
	return os.WriteFile(out, []byte(code), 0o644)
}

// outputPath replaces a .jsx/.tsx/.js/.ts extension with .js, matching the
// framework's own compiled-output convention.
func outputPath(inputFile string) string {
	ext := filepath.Ext(inputFile)
	switch strings.ToLower(ext) {
	case ".jsx", ".tsx", ".ts", ".js":
		return inputFile[:len(inputFile)-len(ext)] + ".js"
	default:
		return inputFile + ".js"
	}
}
