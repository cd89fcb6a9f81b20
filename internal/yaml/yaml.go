package yaml

import (
	"bytes"
	"fmt"

	"gopkg.in/yaml.v3"
)

// UpdateYAML reads a YAML content, updates it with new data while preserving formatting,
// and returns the updated YAML content. Keys present in content but absent
// from newData are left as they are.
func UpdateYAML(content []byte, newData interface{}) ([]byte, error) {
	return UpdateYAMLIndent(content, newData, detectIndentation(string(content)))
}

// UpdateYAMLIndent is UpdateYAML with a fixed indentation width.
func UpdateYAMLIndent(content []byte, newData interface{}, indent int) ([]byte, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(content, &root); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	var src yaml.Node
	if err := src.Encode(newData); err != nil {
		return nil, fmt.Errorf("failed to encode new data: %w", err)
	}

	if err := updateDocument(&root, &src); err != nil {
		return nil, fmt.Errorf("failed to update YAML: %w", err)
	}

	root.Column = 0
	if len(root.Content) > 0 {
		root.Content[0].Column = 0
	}

	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(indent)
	if err := enc.Encode(&root); err != nil {
		return nil, fmt.Errorf("failed to encode YAML: %w", err)
	}
	if err := enc.Close(); err != nil {
		return nil, fmt.Errorf("failed to encode YAML: %w", err)
	}

	return buf.Bytes(), nil
}

func detectIndentation(content string) int {
	lines := bytes.Split([]byte(content), []byte("\n"))
	for _, line := range lines {
		if len(line) == 0 || line[0] != ' ' {
			continue
		}

		spaces := 0
		for _, ch := range line {
			if ch == ' ' {
				spaces++
			} else {
				break
			}
		}

		if spaces > 0 {
			return spaces
		}
	}

	return 2
}

func updateDocument(node, src *yaml.Node) error {
	if src.Kind != yaml.MappingNode {
		return fmt.Errorf("new data must encode to a mapping, got %s", kindName(src.Kind))
	}

	// An empty input parses to a zero node.
	if node.Kind == 0 {
		node.Kind = yaml.DocumentNode
	}

	mappingNode := node
	if node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			node.Content = []*yaml.Node{{}}
		}
		if len(node.Content) != 1 {
			return fmt.Errorf("invalid YAML structure: document node should have exactly one child")
		}
		mappingNode = node.Content[0]
		rootOffset := mappingNode.Column
		node.Column = 0
		mappingNode.Column = 0
		adjustNodeColumns(mappingNode, rootOffset)
	}

	return mergeMapping(mappingNode, src)
}

func adjustNodeColumns(node *yaml.Node, offset int) {
	if node.Column > offset {
		node.Column -= offset
	}
	for _, child := range node.Content {
		adjustNodeColumns(child, offset)
	}
}

func findNodes(mappingNode *yaml.Node, key string) (keyNode, valueNode *yaml.Node, found bool) {
	for i := 0; i+1 < len(mappingNode.Content); i += 2 {
		if mappingNode.Content[i].Value == key {
			return mappingNode.Content[i], mappingNode.Content[i+1], true
		}
	}
	return nil, nil, false
}

func updateNode(node, src *yaml.Node) error {
	originalStyle := node.Style
	originalColumn := node.Column

	switch src.Kind {
	case yaml.AliasNode:
		if src.Alias != nil {
			return updateNode(node, src.Alias)
		}
	case yaml.MappingNode:
		if err := mergeMapping(node, src); err != nil {
			return err
		}
	case yaml.SequenceNode:
		if err := updateSequence(node, src); err != nil {
			return err
		}
	default:
		node.Kind = yaml.ScalarNode
		node.Tag = src.Tag
		node.Value = src.Value
		node.Content = nil
		if src.Tag != "!!str" {
			originalStyle &^= yaml.SingleQuotedStyle | yaml.DoubleQuotedStyle | yaml.LiteralStyle | yaml.FoldedStyle
		}
	}

	node.Style = originalStyle
	node.Column = originalColumn
	return nil
}

// mergeMapping writes every key of src into node, reusing node's existing
// key/value pairs so comments and styles survive. New keys take the style
// and column of node's first pair.
func mergeMapping(node, src *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		node.Kind = yaml.MappingNode
		node.Tag = "!!map"
		node.Value = ""
		node.Content = nil
	}
	if node.Content == nil {
		node.Content = []*yaml.Node{}
	}

	for i := 0; i+1 < len(src.Content); i += 2 {
		key := src.Content[i].Value
		keyNode, valueNode, found := findNodes(node, key)
		if !found {
			keyNode = &yaml.Node{
				Kind:  yaml.ScalarNode,
				Tag:   "!!str",
				Value: key,
			}
			valueNode = &yaml.Node{}
			if len(node.Content) > 0 {
				keyNode.Style = node.Content[0].Style
				keyNode.Column = node.Content[0].Column
				valueNode.Style = node.Content[1].Style
				valueNode.Column = node.Content[1].Column
			} else {
				keyNode.Column = node.Column + 2
				valueNode.Column = node.Column + 2
			}
			node.Content = append(node.Content, keyNode, valueNode)
		}
		if err := updateNode(valueNode, src.Content[i+1]); err != nil {
			return fmt.Errorf("failed to update key %s: %w", key, err)
		}
	}

	return nil
}

func updateSequence(node, src *yaml.Node) error {
	originalStyle := node.Style
	originalColumn := node.Column
	var originalContent []*yaml.Node
	if node.Kind == yaml.SequenceNode {
		originalContent = node.Content
	}

	node.Kind = yaml.SequenceNode
	node.Tag = "!!seq"
	node.Value = ""

	baseIndent := 2
	if len(originalContent) > 0 {
		baseIndent = originalContent[0].Column - node.Column
	}

	newContent := make([]*yaml.Node, 0, len(src.Content))
	for i, elem := range src.Content {
		elemNode := createOrReuseNode(node, i, originalContent, baseIndent)
		if err := updateNode(elemNode, elem); err != nil {
			return fmt.Errorf("error updating sequence element %d: %w", i, err)
		}
		newContent = append(newContent, elemNode)
	}

	node.Content = newContent
	node.Style = originalStyle
	node.Column = originalColumn
	return nil
}

func createOrReuseNode(node *yaml.Node, index int, originalContent []*yaml.Node, baseIndent int) *yaml.Node {
	if index < len(originalContent) {
		return originalContent[index]
	}

	elemNode := &yaml.Node{}
	if len(originalContent) > 0 {
		lastNode := originalContent[len(originalContent)-1]
		elemNode.Style = lastNode.Style
		elemNode.Column = lastNode.Column
		elemNode.Line = lastNode.Line
	} else {
		elemNode.Column = node.Column + baseIndent
	}
	return elemNode
}

func kindName(k yaml.Kind) string {
	switch k {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "empty node"
	}
}
