package tree

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

const mergeTag = "!!merge"

// Decode parses YAML into a Node. Empty input decodes to nil.
func Decode(data []byte) (Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Kind == 0 {
		return nil, nil
	}
	return FromYAML(&doc)
}

// Encode renders a Node as YAML, keeping mapping key order
func Encode(n Node) ([]byte, error) {
	yn, err := ToYAML(n)
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(yn)
}

// FromYAML converts a yaml.v3 node into a Node. Aliases are followed and
// merge keys are expanded without overriding keys set explicitly.
func FromYAML(n *yaml.Node) (Node, error) {
	switch n.Kind {
	case yaml.DocumentNode:
		if len(n.Content) == 0 {
			return nil, nil
		}
		return FromYAML(n.Content[0])
	case yaml.AliasNode:
		if n.Alias == nil {
			return nil, fmt.Errorf("line %d: dangling alias", n.Line)
		}
		return FromYAML(n.Alias)
	case yaml.SequenceNode:
		out := make([]Node, 0, len(n.Content))
		for _, child := range n.Content {
			v, err := FromYAML(child)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	case yaml.MappingNode:
		return mappingFromYAML(n)
	case yaml.ScalarNode:
		return scalarFromYAML(n)
	default:
		return nil, fmt.Errorf("line %d: unsupported yaml node kind %d", n.Line, n.Kind)
	}
}

func mappingFromYAML(n *yaml.Node) (*Map, error) {
	m := NewMap()
	var merged []*Map
	for i := 0; i+1 < len(n.Content); i += 2 {
		keyNode, valueNode := n.Content[i], n.Content[i+1]
		if keyNode.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: mapping keys must be scalars", keyNode.Line)
		}

		value, err := FromYAML(valueNode)
		if err != nil {
			return nil, err
		}

		if keyNode.Tag == mergeTag {
			switch v := value.(type) {
			case *Map:
				merged = append(merged, v)
			case []Node:
				for _, item := range v {
					if mm, ok := item.(*Map); ok {
						merged = append(merged, mm)
					}
				}
			}
			continue
		}

		m.Set(keyNode.Value, value)
	}

	for _, src := range merged {
		src.Each(func(k string, v Node) {
			if !m.Has(k) {
				m.Set(k, v)
			}
		})
	}
	return m, nil
}

func scalarFromYAML(n *yaml.Node) (Node, error) {
	var v any
	if err := n.Decode(&v); err != nil {
		return nil, fmt.Errorf("line %d: %w", n.Line, err)
	}
	switch t := v.(type) {
	case time.Time:
		return n.Value, nil
	case int64:
		return int(t), nil
	case uint64:
		return float64(t), nil
	default:
		return v, nil
	}
}

// ToYAML converts a Node into a yaml.v3 node
func ToYAML(n Node) (*yaml.Node, error) {
	switch v := n.(type) {
	case *Map:
		out := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
		var err error
		v.Each(func(k string, value Node) {
			if err != nil {
				return
			}
			var child *yaml.Node
			child, err = ToYAML(value)
			if err != nil {
				return
			}
			out.Content = append(out.Content,
				&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
				child,
			)
		})
		if err != nil {
			return nil, err
		}
		return out, nil
	case []Node:
		out := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq"}
		for _, item := range v {
			child, err := ToYAML(item)
			if err != nil {
				return nil, err
			}
			out.Content = append(out.Content, child)
		}
		return out, nil
	default:
		out := &yaml.Node{}
		if err := out.Encode(v); err != nil {
			return nil, err
		}
		return out, nil
	}
}

// MarshalYAML keeps key order when a Map is encoded directly
func (m *Map) MarshalYAML() (any, error) {
	return ToYAML(m)
}

// UnmarshalYAML decodes a YAML mapping into m
func (m *Map) UnmarshalYAML(value *yaml.Node) error {
	n, err := FromYAML(value)
	if err != nil {
		return err
	}
	decoded, ok := n.(*Map)
	if !ok {
		return fmt.Errorf("line %d: expected a mapping", value.Line)
	}
	*m = *decoded
	return nil
}
