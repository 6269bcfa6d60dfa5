package view

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_WithOptions(t *testing.T) {
	type tc struct {
		opts    []Option
		check   func(*Element) bool
		message string
	}

	tests := map[string]tc{
		"WithClass": {
			opts:    []Option{WithClass("child-1")},
			check:   func(e *Element) bool { return e.Class() == "child-1" },
			message: "WithClass should set the class attribute",
		},
		"WithAttr": {
			opts: []Option{WithAttr("id", "root")},
			check: func(e *Element) bool {
				v, ok := e.Attr("id")
				return ok && v == "root"
			},
			message: "WithAttr should set the named attribute",
		},
		"WithText": {
			opts:    []Option{WithText("First child")},
			check:   func(e *Element) bool { return e.Text() == "First child" },
			message: "WithText should set text content",
		},
		"WithText verbatim": {
			opts:    []Option{WithText("  <b> & </b>  ")},
			check:   func(e *Element) bool { return e.Text() == "  <b> & </b>  " },
			message: "WithText should not transform text",
		},
		"empty class is set": {
			opts: []Option{WithClass("")},
			check: func(e *Element) bool {
				v, ok := e.Attr(ClassAttr)
				return ok && v == ""
			},
			message: "WithClass(\"\") should still set the attribute",
		},
		"later option wins": {
			opts:    []Option{WithClass("a"), WithClass("b")},
			check:   func(e *Element) bool { return e.Class() == "b" },
			message: "options should apply in order",
		},
		"WithChildren": {
			opts: []Option{WithChildren(New(KindInline), nil, New(KindInline))},
			check: func(e *Element) bool {
				return len(e.Children()) == 2
			},
			message: "WithChildren should append non-nil children",
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			e := New(KindContainer, tt.opts...)
			assert.True(t, tt.check(e), tt.message)
		})
	}
}
