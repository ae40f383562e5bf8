package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Tags is an immutable, insertion-ordered set of OSM tags.
// The zero value is an empty tag set.
type Tags struct {
	keys   []string
	values map[string]string
}

// NewTags builds tags from alternating key/value arguments. A trailing key without value is ignored.
// A repeated key keeps its first position and its last value.
func NewTags(pairs ...string) Tags {
	t := Tags{values: make(map[string]string, len(pairs)/2)}
	for i := 0; i+1 < len(pairs); i += 2 {
		t.set(pairs[i], pairs[i+1])
	}
	return t
}

func (t *Tags) set(key, value string) {
	if _, ok := t.values[key]; !ok {
		t.keys = append(t.keys, key)
	}
	t.values[key] = value
}

// Value returns the tag value and whether the key is present.
func (t Tags) Value(key string) (string, bool) {
	v, ok := t.values[key]
	return v, ok
}

// Get returns the tag value or "" when absent.
func (t Tags) Get(key string) string {
	return t.values[key]
}

// Keys returns the tag keys in their original order.
func (t Tags) Keys() []string {
	out := make([]string, len(t.keys))
	copy(out, t.keys)
	return out
}

func (t Tags) Len() int {
	return len(t.keys)
}

// UnmarshalJSON decodes a JSON object and keeps the order of its keys.
// Non-string values are kept as their raw JSON text.
func (t *Tags) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("models: failed to read tags: %w", err)
	}
	if tok == nil {
		*t = Tags{}
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("models: tags must be a JSON object")
	}

	out := Tags{values: make(map[string]string)}
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("models: failed to read tag key: %w", err)
		}
		key, _ := keyTok.(string)

		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("models: failed to read tag %q: %w", key, err)
		}
		var value string
		if err := json.Unmarshal(raw, &value); err != nil {
			value = string(raw)
		}
		out.set(key, value)
	}
	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("models: failed to close tags object: %w", err)
	}

	*t = out
	return nil
}

// MarshalJSON encodes the tags as a JSON object in their original order.
func (t Tags) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, key := range t.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(t.values[key])
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
