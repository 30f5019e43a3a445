package xmlutil

import (
	"encoding/json"
	"fmt"
)

// Value is one property value extracted from a payload element. The three
// concrete variants are Text, Sequence and Map; a nil Value stands for an
// empty element (present-with-null). Callers switch on the variant instead
// of probing arbitrary runtime types.
type Value interface {
	isValue()
}

// Text is the value of a leaf element with character content.
type Text string

func (Text) isValue() {}

// Sequence holds the values of a repeated element in document order.
type Sequence []Value

func (Sequence) isValue() {}

// Map holds the properties of one nesting level, keyed by element name.
// Key order carries no meaning; order only matters inside a Sequence.
type Map map[string]Value

func (Map) isValue() {}

// Text returns the value under key as a plain string. The second result is
// false when the key is absent, null, or not a Text value.
func (m Map) Text(key string) (string, bool) {
	text, ok := m[key].(Text)
	return string(text), ok
}

// FromJSON builds a property map from its JSON representation: strings,
// nulls, arrays and nested objects. Any other JSON shape (numbers,
// booleans) is rejected.
func FromJSON(data []byte) (Map, error) {
	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("decode property json: %w", err)
	}
	return mapFromJSON(raw)
}

func mapFromJSON(raw map[string]any) (Map, error) {
	props := make(Map, len(raw))
	for key, item := range raw {
		value, err := valueFromJSON(item)
		if err != nil {
			return nil, fmt.Errorf("property %q: %w", key, err)
		}
		props[key] = value
	}
	return props, nil
}

func valueFromJSON(item any) (Value, error) {
	switch val := item.(type) {
	case nil:
		return nil, nil
	case string:
		return Text(val), nil
	case []any:
		seq := make(Sequence, 0, len(val))
		for _, entry := range val {
			value, err := valueFromJSON(entry)
			if err != nil {
				return nil, err
			}
			seq = append(seq, value)
		}
		return seq, nil
	case map[string]any:
		return mapFromJSON(val)
	default:
		return nil, fmt.Errorf("unsupported JSON value of type %T", item)
	}
}
