package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vcrobe/jsxc/common"
)

func writeConfig(t *testing.T, dir, contents string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte(contents), 0o644))
}

func TestLoad_MissingFileIsNotAnError(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	cfg, found, err := Load(dir)

	require.NoError(t, err)
	assert.False(t, found)
	assert.Equal(t, Config{}, cfg)
}

func TestLoad_ParsesYAML(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeConfig(t, dir, `
moduleName: my-runtime
generate: ssr
hydratable: true
delegateEvents: false
delegatedEvents:
  - myevent
`)

	cfg, found, err := Load(dir)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "my-runtime", cfg.ModuleName)
	assert.Equal(t, "ssr", cfg.Generate)
	require.NotNil(t, cfg.Hydratable)
	assert.True(t, *cfg.Hydratable)
	require.NotNil(t, cfg.DelegateEvents)
	assert.False(t, *cfg.DelegateEvents)
	assert.Equal(t, []string{"myevent"}, cfg.DelegatedEvents)
}

func TestLoad_InvalidYAMLReturnsError(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeConfig(t, dir, "moduleName: [unterminated")

	_, found, err := Load(dir)
	assert.False(t, found)
	assert.Error(t, err)
}

func TestConfig_Apply_OnlySetFieldsOverrideDefaults(t *testing.T) {
	t.Parallel()

	base := common.DefaultOptions()
	hydratable := true

	cfg := Config{
		ModuleName: "custom-runtime",
		Hydratable: &hydratable,
	}

	result := cfg.Apply(base)

	assert.Equal(t, "custom-runtime", result.ModuleName)
	assert.True(t, result.Hydratable)
	// Everything cfg left unset must fall through untouched.
	assert.Equal(t, base.DelegateEvents, result.DelegateEvents)
	assert.Equal(t, base.Generate, result.Generate)
	assert.Equal(t, base.BuiltIns, result.BuiltIns)
	assert.Equal(t, base.StaticMarker, result.StaticMarker)
}

func TestConfig_Apply_ExplicitFalseOverridesTrueDefault(t *testing.T) {
	t.Parallel()

	base := common.DefaultOptions()
	require.True(t, base.DelegateEvents, "precondition: default has DelegateEvents true")

	explicitFalse := false
	cfg := Config{DelegateEvents: &explicitFalse}

	result := cfg.Apply(base)
	assert.False(t, result.DelegateEvents)
}

func TestConfig_Apply_UnknownGenerateStringIsIgnored(t *testing.T) {
	t.Parallel()

	base := common.DefaultOptions()
	cfg := Config{Generate: "not-a-real-mode"}

	result := cfg.Apply(base)
	assert.Equal(t, base.Generate, result.Generate, "an unparseable mode must not corrupt Options.Generate")
}

func TestConfig_Apply_AllFields(t *testing.T) {
	t.Parallel()

	yes := true
	base := common.DefaultOptions()

	cfg := Config{
		ModuleName:              "rt",
		Generate:                "ssr",
		Hydratable:              &yes,
		DelegateEvents:          &yes,
		DelegatedEvents:         []string{"foo"},
		WrapConditionals:        &yes,
		ContextToCustomElements: &yes,
		BuiltIns:                []string{"Only"},
		EffectWrapper:           "myEffect",
		MemoWrapper:             "myMemo",
		StaticMarker:            "@frozen",
		SourceMap:               &yes,
	}

	result := cfg.Apply(base)

	assert.Equal(t, "rt", result.ModuleName)
	assert.Equal(t, common.GenerateSSR, result.Generate)
	assert.True(t, result.Hydratable)
	assert.True(t, result.DelegateEvents)
	assert.Equal(t, []string{"foo"}, result.DelegatedEvents)
	assert.True(t, result.WrapConditionals)
	assert.True(t, result.ContextToCustomElements)
	assert.Equal(t, []string{"Only"}, result.BuiltIns)
	assert.Equal(t, "myEffect", result.EffectWrapper)
	assert.Equal(t, "myMemo", result.MemoWrapper)
	assert.Equal(t, "@frozen", result.StaticMarker)
	assert.True(t, result.SourceMap)
}
