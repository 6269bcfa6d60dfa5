package components

import view "github.com/grindlemire/go-view"

var _ view.Component = Parent{}

// ParentClass is the class of the Parent's container element.
const ParentClass = "the-parent"

// Parent renders a container wrapping three Child components.
type Parent struct{}

// Render returns the container with its children in fixed order.
func (Parent) Render() *view.Element {
	return view.New(view.KindContainer,
		view.WithClass(ParentClass),
		view.WithChildren(
			Child{ClassName: "child-1", Text: "First child"}.Render(),
			Child{ClassName: "child-2", Text: "Second child"}.Render(),
			Child{ClassName: "child-3", Text: "Third child"}.Render(),
		),
	)
}
