package style

import (
	"github.com/charmbracelet/lipgloss"

	view "github.com/grindlemire/go-view"
)

// Render draws the tree rooted at el for the terminal. Runs of inline
// children sit side by side; container children start a new row. Each
// element is styled by its class. width <= 0 leaves the output
// unconstrained.
func Render(el *view.Element, sheet Sheet, width int) string {
	if el == nil {
		return ""
	}
	return render(el, sheet, width)
}

func render(el *view.Element, sheet Sheet, width int) string {
	st := sheet.Style(el.Class())

	inner := 0
	if width > 0 {
		inner = max(width-st.GetHorizontalFrameSize(), 1)
	}

	var rows, run []string
	if el.Text() != "" {
		run = append(run, el.Text())
	}
	flush := func() {
		if len(run) > 0 {
			rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, run...))
			run = nil
		}
	}
	for _, child := range el.Children() {
		out := render(child, sheet, inner)
		if child.Kind() == view.KindInline {
			run = append(run, out)
			continue
		}
		flush()
		rows = append(rows, out)
	}
	flush()

	if width > 0 {
		st = st.MaxWidth(width)
	}
	return st.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}
