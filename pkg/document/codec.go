package document

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/goccy/go-yaml"

	"github.com/fabric8-launcher/boosterconv/pkg/errors"
)

// Parse decodes a YAML document whose root is a mapping, keeping key order.
// An empty document yields an empty map.
func Parse(data []byte) (*Map, error) {
	var raw any
	if err := yaml.UnmarshalWithOptions(data, &raw, yaml.UseOrderedMap()); err != nil {
		return nil, errors.WrapParse("yaml", "", err)
	}
	if raw == nil {
		return NewMap(), nil
	}

	m, ok := normalize(raw).(*Map)
	if !ok {
		return nil, errors.NewParseError("yaml", "", fmt.Sprintf("document root is %T, not a mapping", raw), nil)
	}
	return m, nil
}

// Marshal encodes a document value as block-style YAML with 2-space
// indentation, sequences flush with their parent key and multi-line
// strings as literal blocks.
func Marshal(v any) ([]byte, error) {
	return yaml.MarshalWithOptions(toYAML(normalize(v)),
		yaml.Indent(2),
		yaml.IndentSequence(false),
		yaml.UseLiteralStyleIfMultiline(true),
	)
}

// MarshalYAML lets goccy/go-yaml encode a *Map in key order.
func (m *Map) MarshalYAML() (any, error) {
	return toYAML(m), nil
}

// MarshalJSON encodes the map as a JSON object in key order.
func (m *Map) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := writeJSON(&buf, m); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// normalize converts decoder and caller supplied containers into the
// document representation.
func normalize(v any) any {
	switch val := v.(type) {
	case yaml.MapSlice:
		m := NewMap()
		for _, item := range val {
			m.Set(fmt.Sprint(item.Key), item.Value)
		}
		return m
	case map[string]any:
		keys := make([]string, 0, len(val))
		for k := range val {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		m := NewMap()
		for _, k := range keys {
			m.Set(k, val[k])
		}
		return m
	case map[any]any:
		converted := make(map[string]any, len(val))
		for k, item := range val {
			converted[fmt.Sprint(k)] = item
		}
		return normalize(converted)
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = normalize(item)
		}
		return out
	case []string:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = item
		}
		return out
	case []*Map:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = item
		}
		return out
	default:
		return val
	}
}

func toYAML(v any) any {
	switch val := v.(type) {
	case *Map:
		if val == nil {
			return yaml.MapSlice{}
		}
		out := make(yaml.MapSlice, 0, val.Len())
		for _, key := range val.keys {
			out = append(out, yaml.MapItem{Key: key, Value: toYAML(val.values[key])})
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = toYAML(item)
		}
		return out
	default:
		return val
	}
}

func writeJSON(buf *bytes.Buffer, v any) error {
	switch val := v.(type) {
	case *Map:
		buf.WriteByte('{')
		for i, key := range val.Keys() {
			if i > 0 {
				buf.WriteByte(',')
			}
			k, err := json.Marshal(key)
			if err != nil {
				return err
			}
			buf.Write(k)
			buf.WriteByte(':')
			if err := writeJSON(buf, val.values[key]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
		return nil
	case []any:
		buf.WriteByte('[')
		for i, item := range val {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeJSON(buf, item); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
		return nil
	default:
		data, err := json.Marshal(val)
		if err != nil {
			return err
		}
		buf.Write(data)
		return nil
	}
}
