package view

import "maps"

// Kind returns the element kind.
func (e *Element) Kind() Kind {
	return e.kind
}

// Class returns the class attribute, or "" if unset.
func (e *Element) Class() string {
	return e.attrs[ClassAttr]
}

// Attr returns the named attribute and whether it was set.
func (e *Element) Attr(name string) (string, bool) {
	v, ok := e.attrs[name]
	return v, ok
}

// Attrs returns a copy of the element's attributes.
func (e *Element) Attrs() map[string]string {
	return maps.Clone(e.attrs)
}

// Text returns the text content.
func (e *Element) Text() string {
	return e.text
}
