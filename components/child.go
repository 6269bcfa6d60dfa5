package components

import view "github.com/grindlemire/go-view"

var _ view.Component = Child{}

// Child renders a single inline text element.
type Child struct {
	ClassName string
	Text      string
}

// Render returns a span with the child's class and text.
func (c Child) Render() *view.Element {
	return view.New(view.KindInline,
		view.WithClass(c.ClassName),
		view.WithText(c.Text),
	)
}
