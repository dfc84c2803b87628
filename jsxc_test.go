package jsxc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vcrobe/jsxc/common"
)

// Options are rejected up front, before any parsing is attempted, so a bad
// ModuleName never gets a chance to surface as a confusing parse failure.
func TestTransformJSX_EmptyModuleNameIsRejected(t *testing.T) {
	t.Parallel()

	opts := common.DefaultOptions()
	opts.ModuleName = ""

	_, err := TransformJSX("const x = 1;", opts)

	require.Error(t, err)
	var invalid *common.InvalidOptionsError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "ModuleName", invalid.Field)
}

func TestTransformJSX_InvalidGenerateModeIsRejected(t *testing.T) {
	t.Parallel()

	opts := common.DefaultOptions()
	opts.Generate = common.GenerateMode(99)

	_, err := TransformJSX("const x = 1;", opts)

	require.Error(t, err)
	var invalid *common.InvalidOptionsError
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "Generate", invalid.Field)
}

func TestTransformJSX_DomSsrUniversalAllPassValidation(t *testing.T) {
	t.Parallel()

	for _, mode := range []GenerateMode{Dom, Ssr, Universal} {
		opts := common.DefaultOptions()
		opts.Generate = mode

		err := validate(opts)
		assert.NoError(t, err, "mode %v must pass validation on its own", mode)
	}
}
