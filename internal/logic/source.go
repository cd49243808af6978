package logic

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"dropdown/internal/domain"
)

// rawChoice mirrors domain.Choice but accepts a string or numeric value
type rawChoice struct {
	ID       string `json:"id" yaml:"id" toml:"id"`
	Text     string `json:"text" yaml:"text" toml:"text"`
	Value    any    `json:"value" yaml:"value" toml:"value"`
	Disabled bool   `json:"disabled" yaml:"disabled" toml:"disabled"`
	Selected bool   `json:"selected" yaml:"selected" toml:"selected"`
}

type rawEnvelope struct {
	Choices []rawChoice `json:"choices" yaml:"choices" toml:"choices"`
}

// FormatFromPath picks the source format from a file extension
func FormatFromPath(path string) (domain.SourceFormat, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return domain.FormatJSON, nil
	case ".yaml", ".yml":
		return domain.FormatYAML, nil
	case ".toml":
		return domain.FormatTOML, nil
	default:
		return "", fmt.Errorf("unsupported choices file extension: %q", filepath.Ext(path))
	}
}

// LoadChoicesFile reads and decodes a choices file
func LoadChoicesFile(path string) ([]domain.Choice, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read choices file: %w", err)
	}
	return DecodeChoices(data, format)
}

// DecodeChoices parses an externally supplied choice list. JSON and YAML
// accept either a bare list or an object with a "choices" key; TOML expects
// a [[choices]] table array. Entries without an id get "option-<index>" and
// entries without a value get their index, like a scan of <option> markup.
func DecodeChoices(data []byte, format domain.SourceFormat) ([]domain.Choice, error) {
	var raws []rawChoice
	var err error

	switch format {
	case domain.FormatJSON:
		raws, err = decodeJSON(data)
	case domain.FormatYAML:
		raws, err = decodeYAML(data)
	case domain.FormatTOML:
		var env rawEnvelope
		err = toml.Unmarshal(data, &env)
		raws = env.Choices
	default:
		err = fmt.Errorf("unknown format %q", format)
	}
	if err != nil {
		return nil, &domain.MalformedInputError{Format: format, Err: err}
	}

	choices := make([]domain.Choice, 0, len(raws))
	for i, r := range raws {
		c := domain.Choice{
			ID:       r.ID,
			Text:     r.Text,
			Value:    formatValue(r.Value),
			Disabled: r.Disabled,
			Selected: r.Selected,
		}
		choices = append(choices, c.WithPositionDefaults(i))
	}
	return choices, nil
}

func decodeJSON(data []byte) ([]rawChoice, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	trimmed := bytes.TrimSpace(data)
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var raws []rawChoice
		if err := dec.Decode(&raws); err != nil {
			return nil, err
		}
		return raws, expectEOF(dec)
	}

	var env rawEnvelope
	if err := dec.Decode(&env); err != nil {
		return nil, err
	}
	return env.Choices, expectEOF(dec)
}

// expectEOF rejects anything after the first JSON value
func expectEOF(dec *json.Decoder) error {
	var extra json.RawMessage
	err := dec.Decode(&extra)
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return err
	}
	return fmt.Errorf("unexpected data after top-level value at offset %d", dec.InputOffset())
}

func decodeYAML(data []byte) ([]rawChoice, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if len(doc.Content) == 0 {
		return nil, nil
	}

	root := doc.Content[0]
	if root.Kind == yaml.SequenceNode {
		var raws []rawChoice
		if err := root.Decode(&raws); err != nil {
			return nil, err
		}
		return raws, nil
	}

	var env rawEnvelope
	if err := root.Decode(&env); err != nil {
		return nil, err
	}
	return env.Choices, nil
}

func formatValue(v any) string {
	switch val := v.(type) {
	case nil:
		return ""
	case string:
		return val
	case json.Number:
		return val.String()
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprint(val)
	}
}
