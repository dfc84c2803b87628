// Package jsxc is the public entry point of the compiler: TransformJSX
// takes a source file's text and a set of Options and returns the same
// source with every JSX tree rewritten into the framework's runtime calls.
package jsxc

import (
	"fmt"

	"github.com/vcrobe/jsxc/common"
	"github.com/vcrobe/jsxc/emitter"
	"github.com/vcrobe/jsxc/parser"
)

// Re-exported so callers never need to import the internal packages
// directly to construct a call.
type (
	Options      = common.Options
	GenerateMode = common.GenerateMode
)

const (
	Dom       = common.GenerateDom
	Ssr       = common.GenerateSSR
	Universal = common.GenerateUniversal
)

// Result is the output of one TransformJSX call: the rewritten source, an
// optional source map when Options.SourceMap is set, and a summary of what
// the compilation produced (for --stats reporting).
type Result struct {
	Code  string
	Map   string
	Stats common.Stats
}

// TransformJSX parses source as JS/TSX, lowers every JSX tree it finds
// according to opts, and returns the rewritten source. Callers should build
// opts from common.DefaultOptions() and override only what they need. Parse
// failures and unsupported constructs are returned as *common.ParseError /
// *common.UnsupportedNodeError; invalid options are rejected up front as
// *common.InvalidOptionsError. No panic ever escapes this call — a
// recovered panic is reported as a generic error instead, since a crash in
// one file must not take down a CLI batch run or a host binding.
func TransformJSX(source string, opts Options) (result Result, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("jsxc: internal error: %v", r)
		}
	}()

	if verr := validate(opts); verr != nil {
		return Result{}, verr
	}

	p, perr := parser.New()
	if perr != nil {
		return Result{}, fmt.Errorf("jsxc: initializing parser: %w", perr)
	}

	program, perr := p.Parse([]byte(source), opts.Filename)
	if perr != nil {
		return Result{}, perr
	}

	code, stats, merr := emitter.Emit(program, opts)
	if merr != nil {
		return Result{}, merr
	}

	res := Result{Code: code, Stats: stats}
	if opts.SourceMap {
		res.Map = emitter.EmptySourceMap(opts.Filename)
	}
	return res, nil
}

func validate(opts Options) error {
	if opts.ModuleName == "" {
		return &common.InvalidOptionsError{Field: "ModuleName", Reason: "must not be empty"}
	}
	switch opts.Generate {
	case common.GenerateDom, common.GenerateSSR, common.GenerateUniversal:
	default:
		return &common.InvalidOptionsError{Field: "Generate", Reason: "must be Dom, Ssr, or Universal"}
	}
	return nil
}
