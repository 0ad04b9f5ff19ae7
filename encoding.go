package teststate

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// MarshalJSON encodes the rendered text as a JSON string.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.String())
}

// MarshalYAML encodes the rendered text as a YAML string.
func (v Value) MarshalYAML() (any, error) {
	return stringNode(v.String(), 0), nil
}

// MarshalJSON encodes the rendered text as a JSON string.
func (p Property) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

// MarshalYAML encodes the rendered text as a YAML string.
func (p Property) MarshalYAML() (any, error) {
	return stringNode(p.String(), 0), nil
}

// MarshalJSON encodes the lines as a JSON array of strings.
func (o *Output) MarshalJSON() ([]byte, error) {
	lines := o.Lines()
	if lines == nil {
		lines = []string{}
	}
	return json.Marshal(lines)
}

// MarshalYAML encodes the text as a literal block scalar so every line stays
// on a line of its own.
func (o *Output) MarshalYAML() (any, error) {
	return stringNode(o.String(), yaml.LiteralStyle), nil
}

func stringNode(s string, style yaml.Style) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Style: style, Value: s}
}
