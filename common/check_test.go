package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsComponentTag(t *testing.T) {
	t.Parallel()

	cases := []struct {
		tag  string
		want bool
	}{
		{"div", false},
		{"span", false},
		{"input", false},
		{"", false},
		{"For", true},
		{"Show", true},
		{"MyComponent", true},
		{"some.Thing", true},
		{"custom-element", false},
	}

	for _, c := range cases {
		assert.Equal(t, c.want, IsComponentTag(c.tag), "tag %q", c.tag)
	}
}
