// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package option

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Serialization.
// An empty option encodes as null and a defined option as its value.
// Decoding is the inverse: null becomes None, anything else Some.
// A *Lazy is forced when encoded; a failed force is returned as the error.

var jsonNull = []byte("null")

func (o some[T]) MarshalJSON() ([]byte, error) { return json.Marshal(o.value) }

func (none[T]) MarshalJSON() ([]byte, error) { return jsonNull, nil }

func (l *Lazy[T]) MarshalJSON() ([]byte, error) {
	o, err := Try(l.eval)
	if err != nil {
		return nil, err
	}
	return json.Marshal(o)
}

func (o some[T]) MarshalYAML() (any, error) { return o.value, nil }

func (none[T]) MarshalYAML() (any, error) { return nil, nil }

func (l *Lazy[T]) MarshalYAML() (any, error) {
	o, err := Try(l.eval)
	if err != nil {
		return nil, err
	}
	return o, nil
}

// DecodeJSON decodes data into an option. JSON null decodes to None.
func DecodeJSON[T any](data []byte) (Option[T], error) {
	if bytes.Equal(bytes.TrimSpace(data), jsonNull) {
		return none[T]{}, nil
	}
	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		return nil, err
	}
	return some[T]{value: v}, nil
}

// DecodeYAML decodes a YAML node into an option. A null node decodes to None.
func DecodeYAML[T any](node *yaml.Node) (Option[T], error) {
	if node == nil {
		return none[T]{}, nil
	}
	if node.Kind == yaml.DocumentNode {
		if len(node.Content) == 0 {
			return none[T]{}, nil
		}
		node = node.Content[0]
	}
	if node.Kind == yaml.ScalarNode && node.Tag == "!!null" {
		return none[T]{}, nil
	}
	var v T
	if err := node.Decode(&v); err != nil {
		return nil, err
	}
	return some[T]{value: v}, nil
}

// UnmarshalYAML decodes a YAML document into an option.
// An empty document decodes to None.
func UnmarshalYAML[T any](data []byte) (Option[T], error) {
	var node yaml.Node
	if err := yaml.Unmarshal(data, &node); err != nil {
		return nil, err
	}
	if node.Kind == 0 {
		return none[T]{}, nil
	}
	return DecodeYAML[T](&node)
}
