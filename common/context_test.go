package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContext_NextElementID(t *testing.T) {
	t.Parallel()

	ctx := NewContext(DefaultOptions())
	assert.Equal(t, "_el$", ctx.NextElementID())
	assert.Equal(t, "_el$2", ctx.NextElementID())
	assert.Equal(t, "_el$3", ctx.NextElementID())
}

func TestContext_InternTemplate_DedupesAndNumbersFromOne(t *testing.T) {
	t.Parallel()

	ctx := NewContext(DefaultOptions())

	first := ctx.InternTemplate("<div></div>", false)
	second := ctx.InternTemplate("<span></span>", false)
	dupeOfFirst := ctx.InternTemplate("<div></div>", false)

	assert.Equal(t, "_tmpl$", first)
	assert.Equal(t, "_tmpl$2", second)
	assert.Equal(t, first, dupeOfFirst, "identical template HTML must share one identifier")

	assert.Len(t, ctx.Templates(), 2, "deduped template must not add a new table entry")
	assert.True(t, ctx.Helpers()[0] == "template", "interning a template must register the template helper")
}

func TestContext_InternTemplate_SVGAndPlainAreDistinctEvenWithSameHTML(t *testing.T) {
	t.Parallel()

	ctx := NewContext(DefaultOptions())

	plain := ctx.InternTemplate("<g></g>", false)
	svg := ctx.InternTemplate("<g></g>", true)

	assert.NotEqual(t, plain, svg)
	assert.Len(t, ctx.Templates(), 2)
}

func TestContext_RegisterHelper_DedupesInFirstSeenOrder(t *testing.T) {
	t.Parallel()

	ctx := NewContext(DefaultOptions())
	ctx.RegisterHelper("insert")
	ctx.RegisterHelper("effect")
	ctx.RegisterHelper("insert")

	assert.Equal(t, []string{"insert", "effect"}, ctx.Helpers())
}

func TestContext_RegisterDelegate_DedupesInFirstSeenOrder(t *testing.T) {
	t.Parallel()

	ctx := NewContext(DefaultOptions())
	ctx.RegisterDelegate("click")
	ctx.RegisterDelegate("input")
	ctx.RegisterDelegate("click")

	assert.Equal(t, []string{"click", "input"}, ctx.Delegates())
}

func TestContext_Stats_SnapshotsCurrentState(t *testing.T) {
	t.Parallel()

	ctx := NewContext(DefaultOptions())
	ctx.InternTemplate("<div></div>", false)
	ctx.RegisterHelper("insert")
	ctx.RegisterDelegate("click")

	stats := ctx.Stats()
	assert.Equal(t, 1, stats.Templates)
	assert.ElementsMatch(t, []string{"template", "insert"}, stats.Helpers)
	assert.Equal(t, []string{"click"}, stats.Delegates)

	// Stats is a snapshot: mutating the context afterward must not retroactively
	// change a Stats value already returned.
	ctx.RegisterHelper("memo")
	assert.NotContains(t, stats.Helpers, "memo")
}
