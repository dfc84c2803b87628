package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsVoidElement(t *testing.T) {
	t.Parallel()

	assert.True(t, IsVoidElement("img"))
	assert.True(t, IsVoidElement("input"))
	assert.False(t, IsVoidElement("div"))
	assert.False(t, IsVoidElement(""))
}

func TestIsSVGElement(t *testing.T) {
	t.Parallel()

	assert.True(t, IsSVGElement("svg"))
	assert.True(t, IsSVGElement("circle"))
	assert.False(t, IsSVGElement("div"))
}

func TestIsBooleanAttribute(t *testing.T) {
	t.Parallel()

	assert.True(t, IsBooleanAttribute("disabled"))
	assert.True(t, IsBooleanAttribute("checked"))
	assert.False(t, IsBooleanAttribute("class"))
}

func TestIsDelegatableEvent(t *testing.T) {
	t.Parallel()

	assert.True(t, IsDelegatableEvent("click"))
	assert.True(t, IsDelegatableEvent("input"))
	assert.False(t, IsDelegatableEvent("custom"))
}

func TestResolveAttributeAlias(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "class", ResolveAttributeAlias("className"))
	assert.Equal(t, "for", ResolveAttributeAlias("htmlFor"))
	assert.Equal(t, "id", ResolveAttributeAlias("id"))
}
