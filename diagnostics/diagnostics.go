// Package diagnostics renders TransformJSX results and errors for the CLI:
// colored error/warning text via fatih/color and a per-run summary table via
// go-pretty/table, both teacher dependencies reused for the same purpose
// they serve there (human-readable compiler output).
package diagnostics

import (
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/vcrobe/jsxc/common"
)

var (
	errColor  = color.New(color.FgRed, color.Bold)
	warnColor = color.New(color.FgYellow)
	okColor   = color.New(color.FgGreen)
)

// PrintError writes a one-line, colorized diagnostic for err, sourced from
// filename. Known compiler error types get their position woven in; any
// other error (I/O, internal) is printed as-is.
func PrintError(w io.Writer, filename string, err error) {
	var parseErr *common.ParseError
	var unsupportedErr *common.UnsupportedNodeError
	var optsErr *common.InvalidOptionsError

	switch {
	case errors.As(err, &parseErr):
		errColor.Fprintf(w, "%s:%d:%d: parse error: %s\n", filename, parseErr.Line, parseErr.Col, parseErr.Message)
	case errors.As(err, &unsupportedErr):
		errColor.Fprintf(w, "%s:%d:%d: unsupported: %s\n", filename, unsupportedErr.Span.Line, unsupportedErr.Span.Col, unsupportedErr.Kind)
	case errors.As(err, &optsErr):
		errColor.Fprintf(w, "invalid option %s: %s\n", optsErr.Field, optsErr.Reason)
	default:
		errColor.Fprintf(w, "%s: %v\n", filename, err)
	}
}

// PrintWarning writes a one-line, colorized warning not tied to a fatal
// error (e.g. a file-watcher error reported by the watch command).
func PrintWarning(w io.Writer, filename, message string) {
	warnColor.Fprintf(w, "%s: %s\n", filename, message)
}

// PrintSuccess writes a one-line, colorized confirmation for a single file.
func PrintSuccess(w io.Writer, filename string) {
	okColor.Fprintf(w, "%s\n", filename)
}

// FileStat is one row of the --stats summary: what a single TransformJSX
// call on a file produced.
type FileStat struct {
	Filename   string
	Mode       common.GenerateMode
	Hydratable bool
	Stats      common.Stats
}

// PrintStats renders a batch transform's per-file summary as a table,
// followed by a totals footer. Per-file hydration-key counts are not shown:
// getHydrationKey()/getNextElement() counters live in the runtime, not the
// compiler, so there is nothing to total here (see DESIGN.md).
func PrintStats(w io.Writer, stats []FileStat) {
	tbl := table.NewWriter()
	tbl.SetOutputMirror(w)
	tbl.SetStyle(table.StyleLight)
	tbl.AppendHeader(table.Row{"File", "Mode", "Hydratable", "Templates", "Helpers", "Delegated Events"})

	var totalTemplates, totalHelpers int
	for _, s := range stats {
		tbl.AppendRow(table.Row{s.Filename, s.Mode.String(), s.Hydratable, s.Stats.Templates, len(s.Stats.Helpers), delegateList(s.Stats.Delegates)})
		totalTemplates += s.Stats.Templates
		totalHelpers += len(s.Stats.Helpers)
	}

	tbl.AppendFooter(table.Row{fmt.Sprintf("%d files", len(stats)), "", "", totalTemplates, totalHelpers, ""})
	tbl.Render()
}

func delegateList(events []string) string {
	if len(events) == 0 {
		return "-"
	}
	out := events[0]
	for _, e := range events[1:] {
		out += ", " + e
	}
	return out
}
