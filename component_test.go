package view

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grindlemire/go-view/internal/debug"
)

type staticComponent struct{ class string }

func (s staticComponent) Render() *Element {
	return New(KindInline, WithClass(s.class))
}

func TestComponentFunc(t *testing.T) {
	var c Component = ComponentFunc(sampleTree)
	assert.True(t, Equal(sampleTree(), c.Render()))
}

func TestRender_LogsWhenDebugEnabled(t *testing.T) {
	var buf bytes.Buffer
	debug.SetOutput(&buf)
	t.Cleanup(func() { debug.SetOutput(nil) })

	el := Render(ComponentFunc(sampleTree))
	require.NotNil(t, el)

	assert.Contains(t, buf.String(), "render view.ComponentFunc: 4 element(s)")
}

func TestRender_StructComponent(t *testing.T) {
	debug.SetOutput(nil)
	el := Render(staticComponent{class: "x"})
	assert.Equal(t, "x", el.Class())
}
