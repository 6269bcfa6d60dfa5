package view

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrUnknownKind is returned when decoding an element whose kind is not
// a known tag.
var ErrUnknownKind = errors.New("unknown element kind")

type elementJSON struct {
	Kind     string            `json:"kind"`
	Attrs    map[string]string `json:"attrs,omitempty"`
	Text     string            `json:"text,omitempty"`
	Children []*Element        `json:"children,omitempty"`
}

// MarshalJSON implements json.Marshaler.
func (e *Element) MarshalJSON() ([]byte, error) {
	if _, ok := kindTags[e.kind]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(e.kind))
	}
	return json.Marshal(elementJSON{
		Kind:     e.kind.Tag(),
		Attrs:    e.attrs,
		Text:     e.text,
		Children: e.children,
	})
}

// UnmarshalJSON implements json.Unmarshaler.
func (e *Element) UnmarshalJSON(data []byte) error {
	var raw elementJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	kind, ok := kindFromTag(raw.Kind)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownKind, raw.Kind)
	}
	*e = Element{kind: kind, text: raw.Text}
	if len(raw.Attrs) > 0 {
		e.attrs = raw.Attrs
	}
	e.AddChild(raw.Children...)
	return nil
}
