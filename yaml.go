package planfind

import (
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// FromYAML reads a YAML document from r and builds the same tree model
// Parse produces for JSON. Mapping entries keep their document order.
// An empty stream yields a null node.
func FromYAML(r io.Reader) (*Node, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return &Node{kind: Null}, nil
		}
		return nil, errors.Wrap(err, "decode yaml")
	}
	return fromYAMLNode(&doc, nil)
}

func fromYAMLNode(y *yaml.Node, parent *Node) (*Node, error) {
	switch y.Kind {
	case yaml.DocumentNode:
		if len(y.Content) == 0 {
			return &Node{kind: Null, parent: parent}, nil
		}
		return fromYAMLNode(y.Content[0], parent)
	case yaml.AliasNode:
		return fromYAMLNode(y.Alias, parent)
	case yaml.ScalarNode:
		switch y.Tag {
		case "!!null":
			return &Node{kind: Null, parent: parent}, nil
		case "!!bool":
			var b bool
			if err := y.Decode(&b); err != nil {
				return nil, errors.Wrap(ErrInvalidInput, err.Error())
			}
			return &Node{kind: Bool, value: b, parent: parent}, nil
		case "!!int", "!!float":
			var f float64
			if err := y.Decode(&f); err != nil {
				return nil, errors.Wrap(ErrInvalidInput, err.Error())
			}
			return &Node{kind: Number, value: f, parent: parent}, nil
		default:
			return &Node{kind: String, value: escapeString(y.Value), parent: parent}, nil
		}
	case yaml.SequenceNode:
		n := &Node{kind: Array, parent: parent}
		nn := []*Node(nil)
		for _, c := range y.Content {
			m, err := fromYAMLNode(c, n)
			if err != nil {
				return nil, err
			}
			nn = append(nn, m)
		}
		n.value = nn
		return n, nil
	case yaml.MappingNode:
		n := &Node{kind: Object, parent: parent}
		kn := []Entry(nil)
		for i := 0; i+1 < len(y.Content); i += 2 {
			k := y.Content[i]
			if k.Kind != yaml.ScalarNode {
				return nil, errors.Wrapf(ErrInvalidInput,
					"non-scalar mapping key at line %d", k.Line)
			}
			for _, e := range kn {
				if e.Key == k.Value {
					return nil, errors.Wrapf(ErrInvalidInput,
						"duplicate key %q at line %d", k.Value, k.Line)
				}
			}
			m, err := fromYAMLNode(y.Content[i+1], n)
			if err != nil {
				return nil, err
			}
			kn = append(kn, Entry{Key: k.Value, Node: m})
		}
		n.value = kn
		return n, nil
	default:
		return nil, errors.Wrapf(ErrInvalidInput, "unsupported yaml node kind %d", y.Kind)
	}
}
