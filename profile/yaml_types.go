package profile

import (
	"fmt"
	"slices"

	"gopkg.in/yaml.v3"

	"fillable/internal/common"
)

// UnmarshalYAML implements custom YAML unmarshaling for StringOrArray.
// Accepts either a single string or an array of strings.
func (s *StringOrArray) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			*s = StringOrArray{}
			return nil
		}

		if node.Tag != "!!str" {
			return fmt.Errorf("line %d: expected a key or a list of keys, got %s", node.Line, node.Tag)
		}

		if node.Value != "" {
			*s = StringOrArray{node.Value}
		} else {
			*s = StringOrArray{}
		}

		return nil

	case yaml.SequenceNode:
		arr := make([]string, 0, len(node.Content))

		for _, item := range node.Content {
			if item.Kind != yaml.ScalarNode || item.Tag != "!!str" {
				return fmt.Errorf("line %d: keys must be strings", item.Line)
			}

			arr = append(arr, item.Value)
		}

		*s = arr

		return nil

	default:
		return fmt.Errorf("line %d: expected string or array, got %v", node.Line, node.Kind)
	}
}

// MarshalYAML implements custom YAML marshaling for StringOrArray.
// Outputs a single string if length is 1, otherwise an array.
func (s StringOrArray) MarshalYAML() (any, error) {
	if common.IsSingle(s) {
		return s[0], nil
	}

	return []string(s), nil
}

// First returns the first element or empty string if empty.
func (s StringOrArray) First() string {
	if v, ok := common.First(s); ok {
		return v
	}

	return ""
}

func (s StringOrArray) IsEmpty() bool {
	return common.IsEmpty(s)
}

func (s StringOrArray) Contains(str string) bool {
	return slices.Contains(s, str)
}
