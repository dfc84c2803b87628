// Package config loads the optional jsxc.yaml project file that supplies
// Options defaults so individual CLI invocations don't need every flag
// repeated.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vcrobe/jsxc/common"
)

// FileName is the config file jsxc looks for in the project root.
const FileName = "jsxc.yaml"

// Config mirrors the subset of common.Options a project wants to pin in
// jsxc.yaml. Boolean fields are pointers so an absent key in the YAML is
// distinguishable from an explicit false — common.Options.Merge cannot make
// that distinction itself (see DESIGN.md), so config layering is done here
// field-by-field instead of routing through Merge.
type Config struct {
	ModuleName              string   `yaml:"moduleName"`
	Generate                string   `yaml:"generate"`
	Hydratable              *bool    `yaml:"hydratable"`
	DelegateEvents          *bool    `yaml:"delegateEvents"`
	DelegatedEvents         []string `yaml:"delegatedEvents"`
	WrapConditionals        *bool    `yaml:"wrapConditionals"`
	ContextToCustomElements *bool    `yaml:"contextToCustomElements"`
	BuiltIns                []string `yaml:"builtIns"`
	EffectWrapper           string   `yaml:"effectWrapper"`
	MemoWrapper             string   `yaml:"memoWrapper"`
	StaticMarker            string   `yaml:"staticMarker"`
	SourceMap               *bool    `yaml:"sourceMap"`
}

// Load reads jsxc.yaml from dir. A missing file is not an error: found is
// false and the zero Config is returned so callers fall back to
// common.DefaultOptions() untouched.
func Load(dir string) (cfg Config, found bool, err error) {
	path := filepath.Join(dir, FileName)

	data, readErr := os.ReadFile(path)
	if readErr != nil {
		if os.IsNotExist(readErr) {
			return Config{}, false, nil
		}
		return Config{}, false, fmt.Errorf("config: reading %s: %w", path, readErr)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, false, fmt.Errorf("config: parsing %s: %w", path, err)
	}
	return cfg, true, nil
}

// Apply overlays the fields this config sets onto base, leaving every
// unset field (zero string/slice, nil bool pointer) untouched.
func (c Config) Apply(base common.Options) common.Options {
	result := base

	if c.ModuleName != "" {
		result.ModuleName = c.ModuleName
	}
	if c.Generate != "" {
		if mode, ok := common.ParseGenerateMode(c.Generate); ok {
			result.Generate = mode
		}
	}
	if c.Hydratable != nil {
		result.Hydratable = *c.Hydratable
	}
	if c.DelegateEvents != nil {
		result.DelegateEvents = *c.DelegateEvents
	}
	if len(c.DelegatedEvents) > 0 {
		result.DelegatedEvents = c.DelegatedEvents
	}
	if c.WrapConditionals != nil {
		result.WrapConditionals = *c.WrapConditionals
	}
	if c.ContextToCustomElements != nil {
		result.ContextToCustomElements = *c.ContextToCustomElements
	}
	if len(c.BuiltIns) > 0 {
		result.BuiltIns = c.BuiltIns
	}
	if c.EffectWrapper != "" {
		result.EffectWrapper = c.EffectWrapper
	}
	if c.MemoWrapper != "" {
		result.MemoWrapper = c.MemoWrapper
	}
	if c.StaticMarker != "" {
		result.StaticMarker = c.StaticMarker
	}
	if c.SourceMap != nil {
		result.SourceMap = *c.SourceMap
	}
	return result
}
