package view

// Option configures an Element.
type Option func(*Element)

// ClassAttr is the attribute name that holds an element's CSS class list.
const ClassAttr = "class"

// WithClass sets the class attribute.
func WithClass(class string) Option {
	return WithAttr(ClassAttr, class)
}

// WithAttr sets an arbitrary attribute.
func WithAttr(name, value string) Option {
	return func(e *Element) {
		if e.attrs == nil {
			e.attrs = make(map[string]string)
		}
		e.attrs[name] = value
	}
}

// WithText sets the text content. The text is stored verbatim.
func WithText(text string) Option {
	return func(e *Element) {
		e.text = text
	}
}

// WithChildren appends children. Nil children are skipped.
func WithChildren(children ...*Element) Option {
	return func(e *Element) {
		e.AddChild(children...)
	}
}
