package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/cobra"

	"github.com/vcrobe/jsxc/common"
	"github.com/vcrobe/jsxc/config"
)

const (
	flagGenerate       = "generate"
	flagModuleName     = "module-name"
	flagHydratable     = "hydratable"
	flagDelegateEvents = "delegate-events"
	flagSourceMap      = "source-map"
	flagStats          = "stats"
	flagStdout         = "stdout"
	flagConfig         = "config"

	flagGenerateUsage       = "lowering mode: dom, ssr, or universal"
	flagModuleNameUsage     = "module the emitted import pulls runtime helpers from"
	flagHydratableUsage     = "wire hydration keys instead of plain cloneNode"
	flagDelegateEventsUsage = "route bubbling event handlers through a single delegated listener"
	flagSourceMapUsage      = "populate Result.Map with a source map"
	flagStatsUsage          = "print a summary table after compiling"
	flagStdoutUsage         = "write compiled output to stdout instead of alongside each input file"
	flagConfigUsage         = "path to a jsxc.yaml project config (default: ./jsxc.yaml)"
)

// ErrUnknownGenerateMode is returned when --generate names a mode jsxc
// doesn't recognize.
var ErrUnknownGenerateMode = errors.New("unknown --generate mode (want dom, ssr, or universal)")

// commonFlags holds the subset of Options exposed on the command line,
// shared by transform and watch.
type commonFlags struct {
	generate       string
	moduleName     string
	hydratable     bool
	delegateEvents bool
	sourceMap      bool
	configPath     string
}

func registerCommonFlags(cmd *cobra.Command, f *commonFlags) {
	cmd.Flags().StringVar(&f.generate, flagGenerate, "", flagGenerateUsage)
	cmd.Flags().StringVar(&f.moduleName, flagModuleName, "", flagModuleNameUsage)
	cmd.Flags().BoolVar(&f.hydratable, flagHydratable, false, flagHydratableUsage)
	cmd.Flags().BoolVar(&f.delegateEvents, flagDelegateEvents, false, flagDelegateEventsUsage)
	cmd.Flags().BoolVar(&f.sourceMap, flagSourceMap, false, flagSourceMapUsage)
	cmd.Flags().StringVar(&f.configPath, flagConfig, "", flagConfigUsage)
}

// resolveOptions layers defaults, jsxc.yaml, and explicitly-set flags, in
// that order of increasing precedence. A flag only overrides the config
// file when cmd.Flags().Changed reports the user actually passed it —
// otherwise its cobra zero value would silently stomp a config value
// (the same ambiguity common.Options.Merge has, avoided here by checking
// Changed instead of relying on zero-value detection).
func resolveOptions(cmd *cobra.Command, f *commonFlags) (common.Options, error) {
	opts := common.DefaultOptions()

	dir := "."
	if f.configPath != "" {
		dir = filepath.Dir(f.configPath)
	}
	cfg, found, err := config.Load(dir)
	if err != nil {
		return opts, err
	}
	if found {
		opts = cfg.Apply(opts)
	}

	if cmd.Flags().Changed(flagGenerate) {
		mode, ok := common.ParseGenerateMode(f.generate)
		if !ok {
			return opts, fmt.Errorf("%w: %q", ErrUnknownGenerateMode, f.generate)
		}
		opts.Generate = mode
	}
	if cmd.Flags().Changed(flagModuleName) {
		opts.ModuleName = f.moduleName
	}
	if cmd.Flags().Changed(flagHydratable) {
		opts.Hydratable = f.hydratable
	}
	if cmd.Flags().Changed(flagDelegateEvents) {
		opts.DelegateEvents = f.delegateEvents
	}
	if cmd.Flags().Changed(flagSourceMap) {
		opts.SourceMap = f.sourceMap
	}

	return opts, nil
}

// expandPaths resolves CLI arguments (bare paths or globs) to a
// deduplicated, sorted list of regular files.
func expandPaths(args []string) ([]string, error) {
	seen := make(map[string]bool)
	var out []string

	for _, arg := range args {
		matches, err := filepath.Glob(arg)
		if err != nil {
			return nil, fmt.Errorf("expanding %q: %w", arg, err)
		}
		if len(matches) == 0 {
			matches = []string{arg}
		}
		for _, m := range matches {
			info, statErr := os.Stat(m)
			if statErr != nil {
				return nil, fmt.Errorf("stat %q: %w", m, statErr)
			}
			if info.IsDir() {
				continue
			}
			if !seen[m] {
				seen[m] = true
				out = append(out, m)
			}
		}
	}

	sort.Strings(out)
	return out, nil
}
