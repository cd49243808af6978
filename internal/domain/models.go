package domain

import (
	"fmt"
	"strconv"
)

// Choice represents one selectable entry in the dropdown
type Choice struct {
	ID       string `json:"id" yaml:"id" toml:"id"`
	Text     string `json:"text" yaml:"text" toml:"text"`
	Value    string `json:"value,omitempty" yaml:"value,omitempty" toml:"value,omitempty"`
	Disabled bool   `json:"disabled,omitempty" yaml:"disabled,omitempty" toml:"disabled,omitempty"`
	Selected bool   `json:"selected,omitempty" yaml:"selected,omitempty" toml:"selected,omitempty"` // informational only, the store owns the selection
}

// Enabled reports whether the choice can be highlighted or selected
func (c Choice) Enabled() bool {
	return !c.Disabled
}

// WithPositionDefaults fills a missing id with "option-<index>" and a missing
// value with the index
func (c Choice) WithPositionDefaults(index int) Choice {
	if c.ID == "" {
		c.ID = fmt.Sprintf("option-%d", index)
	}
	if c.Value == "" {
		c.Value = strconv.Itoa(index)
	}
	return c
}

// SourceFormat identifies the encoding of an externally supplied choice list
type SourceFormat string

const (
	FormatJSON SourceFormat = "json"
	FormatYAML SourceFormat = "yaml"
	FormatTOML SourceFormat = "toml"
)
