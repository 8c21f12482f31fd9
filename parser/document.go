package parser

import (
	"errors"
	"strings"

	"go.yaml.in/yaml/v4"
)

// errEmptyDocument is returned for content without any YAML/JSON node.
var errEmptyDocument = errors.New("document is empty")

// errRootNotMapping is returned when the document root is a scalar or sequence.
var errRootNotMapping = errors.New("document root must be a mapping")

// decodeDocument parses YAML or JSON content into its root mapping node.
// The yaml.Node tree keeps source key order, which in turn fixes the order
// of endpoints, schemas and properties in the canonical model.
func decodeDocument(content string) (*yaml.Node, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal([]byte(content), &doc); err != nil {
		return nil, err
	}
	root := &doc
	if root.Kind == yaml.DocumentNode {
		if len(root.Content) == 0 {
			return nil, errEmptyDocument
		}
		root = root.Content[0]
	}
	root = deref(root)
	if root == nil || root.Kind == 0 {
		return nil, errEmptyDocument
	}
	if root.Kind != yaml.MappingNode {
		return nil, errRootNotMapping
	}
	return root, nil
}

// rawTree decodes a node into plain Go values for ApiSpec.Raw.
// A decode failure yields nil; Raw is never compared.
func rawTree(n *yaml.Node) any {
	if n == nil {
		return nil
	}
	var raw any
	if err := n.Decode(&raw); err != nil {
		return nil
	}
	return raw
}

// deref follows alias nodes to their anchors.
func deref(n *yaml.Node) *yaml.Node {
	for n != nil && n.Kind == yaml.AliasNode {
		n = n.Alias
	}
	return n
}

// mapGet returns the value node for key in a mapping node, or nil.
func mapGet(n *yaml.Node, key string) *yaml.Node {
	n = deref(n)
	if n == nil || n.Kind != yaml.MappingNode {
		return nil
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value == key {
			return deref(n.Content[i+1])
		}
	}
	return nil
}

// hasKey reports whether a mapping node contains key.
func hasKey(n *yaml.Node, key string) bool {
	return mapGet(n, key) != nil
}

// mapEach calls fn for every key/value pair of a mapping node in source order.
func mapEach(n *yaml.Node, fn func(key string, value *yaml.Node)) {
	n = deref(n)
	if n == nil || n.Kind != yaml.MappingNode {
		return
	}
	for i := 0; i+1 < len(n.Content); i += 2 {
		fn(n.Content[i].Value, deref(n.Content[i+1]))
	}
}

// mapKeys returns the keys of a mapping node in source order.
func mapKeys(n *yaml.Node) []string {
	var keys []string
	mapEach(n, func(key string, _ *yaml.Node) {
		keys = append(keys, key)
	})
	return keys
}

// seqItems returns the items of a sequence node, or nil.
func seqItems(n *yaml.Node) []*yaml.Node {
	n = deref(n)
	if n == nil || n.Kind != yaml.SequenceNode {
		return nil
	}
	items := make([]*yaml.Node, 0, len(n.Content))
	for _, item := range n.Content {
		items = append(items, deref(item))
	}
	return items
}

// scalar returns the value of a scalar node, or "" for anything else.
func scalar(n *yaml.Node) string {
	n = deref(n)
	if n == nil || n.Kind != yaml.ScalarNode {
		return ""
	}
	return n.Value
}

// mapString returns the scalar value stored under key.
func mapString(n *yaml.Node, key string) string {
	return scalar(mapGet(n, key))
}

// mapBool returns the boolean stored under key; anything but a true scalar is false.
func mapBool(n *yaml.Node, key string) bool {
	v := mapGet(n, key)
	if v == nil || v.Kind != yaml.ScalarNode {
		return false
	}
	var b bool
	if err := v.Decode(&b); err != nil {
		return false
	}
	return b
}

// mapStrings returns the scalar items of the sequence stored under key.
func mapStrings(n *yaml.Node, key string) []string {
	var out []string
	for _, item := range seqItems(mapGet(n, key)) {
		if s := scalar(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// mapValue decodes the node under key into a plain Go value, or nil.
func mapValue(n *yaml.Node, key string) any {
	return rawTree(mapGet(n, key))
}

// typeName reads a schema "type" keyword. OpenAPI 3.1 allows a list of
// types, which is joined with "|" so that it stays a single comparable token.
func typeName(n *yaml.Node) string {
	t := mapGet(n, "type")
	if t == nil {
		return ""
	}
	if t.Kind == yaml.SequenceNode {
		parts := make([]string, 0, len(t.Content))
		for _, item := range seqItems(t) {
			if s := scalar(item); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, "|")
	}
	return scalar(t)
}
