package profile

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

type entryDoc struct {
	Skill string   `yaml:"skill"`
	Level *float64 `yaml:"level,omitempty"`
}

// MarshalYAML encodes labels as scalars and structured items as
// skill/level mappings.
func (i Item) MarshalYAML() (interface{}, error) {
	if i.shape == Labels {
		return i.skill, nil
	}
	doc := entryDoc{Skill: i.skill}
	if i.hasLevel {
		level := i.level
		doc.Level = &level
	}
	return doc, nil
}

func (i *Item) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Tag == "!!null" || node.Value == "" {
			return fmt.Errorf("line %d: %w: empty skill", node.Line, ErrInvalidItem)
		}
		*i = Label(node.Value)
		return nil
	case yaml.MappingNode:
		for k := 0; k+1 < len(node.Content); k += 2 {
			switch key := node.Content[k].Value; key {
			case "skill", "level":
			default:
				return fmt.Errorf("line %d: %w: unknown key %q", node.Content[k].Line, ErrInvalidItem, key)
			}
		}
		var doc entryDoc
		if err := node.Decode(&doc); err != nil {
			return err
		}
		if doc.Skill == "" {
			return fmt.Errorf("line %d: %w: missing skill", node.Line, ErrInvalidItem)
		}
		if doc.Level == nil {
			*i = Unleveled(doc.Skill)
		} else {
			*i = Entry(doc.Skill, *doc.Level)
		}
		return nil
	default:
		return fmt.Errorf("line %d: skill must be a label or a skill/level mapping", node.Line)
	}
}

// MarshalYAML encodes the profile as a mapping in category order.
func (p *Profile) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, c := range p.Categories() {
		items := &yaml.Node{}
		if err := items.Encode(c.items); err != nil {
			return nil, fmt.Errorf("failed to encode category %s: %w", c.name, err)
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: c.name},
			items,
		)
	}
	return node, nil
}

// UnmarshalYAML decodes a category mapping. Categories named by
// DefaultSchema take their declared shape; any other category takes the
// shape of its first item.
func (p *Profile) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("line %d: skills must be a mapping of categories", node.Line)
	}

	schema := DefaultSchema()
	cats := make([]*Category, 0, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		name := node.Content[i].Value

		// The decoder drops null elements of a []Item instead of calling
		// UnmarshalYAML, so they are rejected here.
		for _, elem := range node.Content[i+1].Content {
			if elem.Kind == yaml.ScalarNode && elem.Tag == "!!null" {
				return fmt.Errorf("category %s: line %d: %w: empty skill", name, elem.Line, ErrInvalidItem)
			}
		}

		var items []Item
		if err := node.Content[i+1].Decode(&items); err != nil {
			return fmt.Errorf("category %s: %w", name, err)
		}

		shape, known := schema.Shape(name)
		if !known && len(items) > 0 {
			shape = items[0].shape
		}

		c, err := NewCategory(name, shape, items...)
		if err != nil {
			return err
		}
		cats = append(cats, c)
	}

	built, err := New(cats...)
	if err != nil {
		return err
	}
	*p = *built
	return nil
}
