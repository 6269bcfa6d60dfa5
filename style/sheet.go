package style

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// Sheet maps class names to rules.
type Sheet map[string]Rule

type sheetFile struct {
	Classes Sheet `yaml:"classes"`
}

func ptr[T any](v T) *T { return &v }

// Default returns the built-in sheet for the parent/child components.
func Default() Sheet {
	return Sheet{
		"the-parent": {
			Foreground: "#e6edf3",
			Border:     "rounded",
			Padding:    []int{0, 1},
		},
		"child-1": {Foreground: "#58a6ff", Bold: ptr(true), Padding: []int{0, 1}},
		"child-2": {Foreground: "#3fb950", Padding: []int{0, 1}},
		"child-3": {Foreground: "#bc8cff", Italic: ptr(true), Padding: []int{0, 1}},
	}
}

// Style returns the lipgloss style for a whitespace-separated class list.
// Rules are layered in class order; unknown classes are ignored.
func (s Sheet) Style(classes string) lipgloss.Style {
	st := lipgloss.NewStyle()
	for _, class := range strings.Fields(classes) {
		if r, ok := s[class]; ok {
			st = r.Apply(st)
		}
	}
	return st
}

// Merge returns a new sheet holding s's rules overridden by other's.
func (s Sheet) Merge(other Sheet) Sheet {
	out := maps.Clone(s)
	if out == nil {
		out = Sheet{}
	}
	maps.Copy(out, other)
	return out
}

// Parse decodes a YAML sheet. Unknown fields are rejected.
func Parse(data []byte) (Sheet, error) {
	var f sheetFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decoding sheet: %w", err)
	}
	for class, r := range f.Classes {
		if err := r.Validate(); err != nil {
			return nil, fmt.Errorf("class %q: %w", class, err)
		}
	}
	if f.Classes == nil {
		f.Classes = Sheet{}
	}
	return f.Classes, nil
}

// Load reads and parses the sheet at path.
func Load(path string) (Sheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading sheet: %w", err)
	}
	sheet, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sheet, nil
}

// Marshal encodes the sheet as YAML in the format Parse accepts.
func (s Sheet) Marshal() ([]byte, error) {
	return yaml.Marshal(sheetFile{Classes: s})
}
