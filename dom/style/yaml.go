package style

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// ErrStyleFormat is returned for style documents which are not a mapping of
// tag names to flat property mappings.
var ErrStyleFormat = errors.New("malformed style table")

// UnmarshalYAML decodes a scalar YAML node. Integer and float scalars
// become numbers, all other scalars become strings.
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("%w: line %d: property value must be a scalar", ErrStyleFormat, node.Line)
	}
	switch node.ShortTag() {
	case "!!int", "!!float":
		var x float64
		if err := node.Decode(&x); err != nil {
			return fmt.Errorf("%w: line %d: %v", ErrStyleFormat, node.Line, err)
		}
		*v = Num(x)
	default:
		*v = Str(node.Value)
	}
	return nil
}

// MarshalYAML encodes numbers as YAML numbers and everything else as strings.
func (v Value) MarshalYAML() (interface{}, error) {
	return v.Interface(), nil
}

// LoadYAML reads a style table from a YAML document of the form
//
//     p:
//       marginTop: 4
//       color: red
//     a:
//       color: blue
//
// An empty document yields an empty table.
func LoadYAML(r io.Reader) (Table, error) {
	table := make(Table)
	err := yaml.NewDecoder(r).Decode(&table)
	if err != nil && !errors.Is(err, io.EOF) {
		if errors.Is(err, ErrStyleFormat) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", ErrStyleFormat, err)
	}
	tracer().Debugf("loaded styles for %d tags", len(table))
	return table, nil
}

// WriteYAML writes a style table in the format read by LoadYAML.
func WriteYAML(w io.Writer, table Table) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(table); err != nil {
		return err
	}
	return enc.Close()
}
