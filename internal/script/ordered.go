package script

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/mesh-intelligence/aether/pkg/types"
)

// Ordered is a string-keyed mapping that encodes its entries in Keys order.
// Session uses it for whole-store results so output follows insertion order.
type Ordered struct {
	Keys   []string
	Values map[string]any
}

// dataOf returns the data store of b in insertion order.
func dataOf(b *types.Bag) *Ordered {
	return &Ordered{Keys: b.Keys(), Values: b.Data()}
}

// flagsOf returns the flag store of b in insertion order.
func flagsOf(b *types.Bag) *Ordered {
	flags := b.Flags()
	values := make(map[string]any, len(flags))
	for k, v := range flags {
		values[k] = v
	}
	return &Ordered{Keys: b.FlagKeys(), Values: values}
}

// MarshalJSON writes a JSON object with keys in order.
func (o *Ordered) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range o.Keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(o.Values[k])
		if err != nil {
			return nil, fmt.Errorf("key %q: %w", k, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML returns a mapping node with keys in order.
func (o *Ordered) MarshalYAML() (any, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, k := range o.Keys {
		var val yaml.Node
		if err := val.Encode(o.Values[k]); err != nil {
			return nil, fmt.Errorf("key %q: %w", k, err)
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
			&val,
		)
	}
	return node, nil
}
