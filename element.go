package view

import "fmt"

// Kind identifies what an Element represents when it is displayed.
type Kind int

const (
	// KindContainer is a block-level container (serialized as <div>).
	KindContainer Kind = iota
	// KindInline is an inline text container (serialized as <span>).
	KindInline
)

var kindTags = map[Kind]string{
	KindContainer: "div",
	KindInline:    "span",
}

// Tag returns the HTML tag name for the kind.
func (k Kind) Tag() string {
	if tag, ok := kindTags[k]; ok {
		return tag
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// String implements fmt.Stringer.
func (k Kind) String() string {
	return k.Tag()
}

// kindFromTag is the inverse of Kind.Tag.
func kindFromTag(tag string) (Kind, bool) {
	for k, t := range kindTags {
		if t == tag {
			return k, true
		}
	}
	return 0, false
}

// Element is one node of a view tree: a kind, a set of attributes, optional
// text content, and ordered children.
type Element struct {
	kind     Kind
	attrs    map[string]string
	text     string
	children []*Element
}

// New creates a new Element of the given kind with the given options.
// Options are applied in order, so a later option wins over an earlier one
// that sets the same field.
func New(kind Kind, opts ...Option) *Element {
	e := &Element{kind: kind}
	for _, opt := range opts {
		opt(e)
	}
	return e
}
