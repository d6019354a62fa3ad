package config

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/matzehuels/jobtimeline/pkg/timeline"
)

// GroupNum is a group_num setting. It decodes from integers and from
// integral floats such as 2.0.
type GroupNum int

func (g *GroupNum) set(v float64) error {
	n, err := timeline.ParseGroupNum(v)
	if err != nil {
		return err
	}
	*g = GroupNum(n)
	return nil
}

// UnmarshalTOML implements toml.Unmarshaler.
func (g *GroupNum) UnmarshalTOML(v any) error {
	switch x := v.(type) {
	case int64:
		return g.set(float64(x))
	case float64:
		return g.set(x)
	}
	return fmt.Errorf("group_num must be a number, got %T", v)
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (g *GroupNum) UnmarshalYAML(node *yaml.Node) error {
	var f float64
	if err := node.Decode(&f); err != nil {
		return fmt.Errorf("group_num must be a number: %w", err)
	}
	return g.set(f)
}

// UnmarshalJSON implements json.Unmarshaler.
func (g *GroupNum) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("group_num must be a number: %w", err)
	}
	return g.set(f)
}
