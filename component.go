package view

import "github.com/grindlemire/go-view/internal/debug"

// Component is the base interface for view components.
// Render returns a freshly built tree on every call; components hold no
// state between renders.
type Component interface {
	Render() *Element
}

// ComponentFunc adapts a plain function to the Component interface.
type ComponentFunc func() *Element

// Render calls f.
func (f ComponentFunc) Render() *Element {
	return f()
}

// Render evaluates c once and returns the resulting tree.
func Render(c Component) *Element {
	el := c.Render()
	if debug.Enabled() {
		count := 0
		Walk(el, func(*Element, int) bool {
			count++
			return true
		})
		debug.Log("render %T: %d element(s)", c, count)
	}
	return el
}
