package hydrate

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ParseYAML decodes a YAML mapping or sequence into an ordered Map.
// Mapping keys tagged !!int become indexes, every other key is a name.
func ParseYAML(data []byte) (*Map, error) {
	var node yaml.Node

	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, fmt.Errorf("failed to parse YAML source: %w", err)
	}

	m := NewMap()
	if node.Kind == 0 {
		return m, nil
	}

	if err := m.UnmarshalYAML(&node); err != nil {
		return nil, err
	}

	return m, nil
}

// UnmarshalYAML implements custom YAML unmarshaling for Map.
// Accepts a mapping or a sequence, entries keep document order.
func (m *Map) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.DocumentNode:
		if len(node.Content) == 0 {
			return nil
		}

		return m.UnmarshalYAML(node.Content[0])

	case yaml.AliasNode:
		return m.UnmarshalYAML(node.Alias)

	case yaml.MappingNode:
		for i := 0; i+1 < len(node.Content); i += 2 {
			keyNode, valueNode := node.Content[i], node.Content[i+1]

			value, err := yamlValue(valueNode)
			if err != nil {
				return err
			}

			key, err := yamlKey(keyNode)
			if err != nil {
				return err
			}

			m.Put(key, value)
		}

		return nil

	case yaml.SequenceNode:
		for _, item := range node.Content {
			value, err := yamlValue(item)
			if err != nil {
				return err
			}

			m.Append(value)
		}

		return nil

	default:
		return fmt.Errorf("%w: expected mapping or sequence, got %v", ErrInvalidArgument, node.Kind)
	}
}

func yamlKey(node *yaml.Node) (Key, error) {
	if node.Kind == yaml.ScalarNode && node.Tag == "!!int" {
		var i int
		if err := node.Decode(&i); err != nil {
			return Key{}, fmt.Errorf("line %d: %w", node.Line, err)
		}

		return Index(i), nil
	}

	if node.Kind != yaml.ScalarNode {
		return Key{}, fmt.Errorf("%w: line %d: mapping keys must be scalars", ErrInvalidArgument, node.Line)
	}

	return Name(node.Value), nil
}

func yamlValue(node *yaml.Node) (any, error) {
	switch node.Kind {
	case yaml.AliasNode:
		return yamlValue(node.Alias)

	case yaml.MappingNode:
		nested := NewMap()
		if err := nested.UnmarshalYAML(node); err != nil {
			return nil, err
		}

		return nested, nil

	case yaml.SequenceNode:
		list := make([]any, 0, len(node.Content))

		for _, item := range node.Content {
			v, err := yamlValue(item)
			if err != nil {
				return nil, err
			}

			list = append(list, v)
		}

		return list, nil

	default:
		var v any
		if err := node.Decode(&v); err != nil {
			return nil, fmt.Errorf("line %d: %w", node.Line, err)
		}

		return v, nil
	}
}
