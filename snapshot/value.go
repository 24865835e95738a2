// SPDX-License-Identifier: MIT

package snapshot

import (
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/weir/weir"
)

// ValueDoc carries a weir.Value in its natural YAML form: a number, a bool, a string,
// or a flow sequence of numbers for a vector.
type ValueDoc struct {
	weir.Value
}

// MarshalYAML implements yaml.Marshaler.
func (d ValueDoc) MarshalYAML() (interface{}, error) {
	switch d.Kind() {
	case weir.KindNumber:
		n, _ := d.Number()
		return n, nil
	case weir.KindBool:
		b, _ := d.Bool()
		return b, nil
	case weir.KindText:
		s, _ := d.Text()
		return s, nil
	case weir.KindVector:
		c, _ := d.Vector()
		node := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
		if err := node.Encode(c); err != nil {
			return nil, err
		}
		node.Style = yaml.FlowStyle

		return node, nil
	}

	return nil, errors.New("snapshot: cannot encode an empty value")
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *ValueDoc) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		switch node.ShortTag() {
		case "!!int", "!!float":
			var n float64
			if err := node.Decode(&n); err != nil {
				return err
			}
			d.Value = weir.Number(n)
		case "!!bool":
			var b bool
			if err := node.Decode(&b); err != nil {
				return err
			}
			d.Value = weir.Bool(b)
		case "!!str":
			d.Value = weir.Text(node.Value)
		default:
			return errors.Errorf("snapshot: line %d: unsupported attribute %s", node.Line, node.ShortTag())
		}

		return nil

	case yaml.SequenceNode:
		var c []float64
		if err := node.Decode(&c); err != nil {
			return errors.Wrapf(err, "snapshot: line %d: vector attribute", node.Line)
		}
		d.Value = weir.Vector(c...)

		return nil
	}

	return errors.Errorf("snapshot: line %d: unsupported attribute node", node.Line)
}

func fromAttrs(a weir.Attrs) map[string]ValueDoc {
	if len(a) == 0 {
		return nil
	}
	out := make(map[string]ValueDoc, len(a))
	for k, v := range a {
		out[k] = ValueDoc{v}
	}

	return out
}

func toAttrs(m map[string]ValueDoc) weir.Attrs {
	if len(m) == 0 {
		return nil
	}
	out := make(weir.Attrs, len(m))
	for k, v := range m {
		out[k] = v.Value
	}

	return out
}
