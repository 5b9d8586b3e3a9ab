package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Argument is one code of a pass.
type Argument struct {
	Name string
	Type string
}

// Arguments is an ordered code list encoded as a JSON object.
// Key order is kept on both encode and decode so values line up with codes.
type Arguments []Argument

// Names returns the argument names in order.
func (a Arguments) Names() []string {
	names := make([]string, len(a))
	for i, arg := range a {
		names[i] = arg.Name
	}
	return names
}

// MarshalJSON writes the arguments as an object in slice order.
func (a Arguments) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, arg := range a {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(arg.Name)
		if err != nil {
			return nil, err
		}
		val, err := json.Marshal(arg.Type)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(val)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads an object of name/type pairs in document order.
func (a *Arguments) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		*a = nil
		return nil
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return fmt.Errorf("arguments: expected object, got %v", tok)
	}

	var out Arguments
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := keyTok.(string)
		if !ok {
			return fmt.Errorf("arguments: expected key, got %v", keyTok)
		}
		var typ string
		if err := dec.Decode(&typ); err != nil {
			return fmt.Errorf("arguments: value for %q: %w", key, err)
		}
		out = append(out, Argument{Name: key, Type: typ})
	}
	if _, err := dec.Token(); err != nil {
		return err
	}
	*a = out
	return nil
}
