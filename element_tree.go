package view

import "slices"

// AddChild appends children to this Element. Nil children are skipped.
func (e *Element) AddChild(children ...*Element) {
	for _, child := range children {
		if child == nil {
			continue
		}
		e.children = append(e.children, child)
	}
}

// Children returns the child elements in order. The slice is a copy;
// the elements themselves are shared.
func (e *Element) Children() []*Element {
	return slices.Clone(e.children)
}

// Walk visits e and its descendants depth-first in pre-order. depth is 0
// for e. If fn returns false the element's children are skipped.
func Walk(e *Element, fn func(el *Element, depth int) bool) {
	walk(e, 0, fn)
}

func walk(e *Element, depth int, fn func(*Element, int) bool) {
	if e == nil {
		return
	}
	if !fn(e, depth) {
		return
	}
	for _, child := range e.children {
		walk(child, depth+1, fn)
	}
}

// Equal reports whether a and b describe the same tree: same kind,
// attributes, and text, with pairwise equal children in the same order.
func Equal(a, b *Element) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.kind != b.kind || a.text != b.text {
		return false
	}
	if len(a.attrs) != len(b.attrs) {
		return false
	}
	for k, v := range a.attrs {
		if bv, ok := b.attrs[k]; !ok || bv != v {
			return false
		}
	}
	if len(a.children) != len(b.children) {
		return false
	}
	for i := range a.children {
		if !Equal(a.children[i], b.children[i]) {
			return false
		}
	}
	return true
}
