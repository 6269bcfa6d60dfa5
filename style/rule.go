package style

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

// ErrUnknownBorder is returned for a border name that is not supported.
var ErrUnknownBorder = errors.New("unknown border")

// ErrBadPadding is returned when padding does not have 1, 2, or 4 values.
var ErrBadPadding = errors.New("padding takes 1, 2, or 4 values")

var borders = map[string]lipgloss.Border{
	"normal":  lipgloss.NormalBorder(),
	"rounded": lipgloss.RoundedBorder(),
	"thick":   lipgloss.ThickBorder(),
	"double":  lipgloss.DoubleBorder(),
	"hidden":  lipgloss.HiddenBorder(),
}

// Rule is the terminal styling for one class. Unset fields leave the
// style untouched, so rules for several classes can be layered.
type Rule struct {
	Foreground string `yaml:"foreground,omitempty"`
	Background string `yaml:"background,omitempty"`
	Bold       *bool  `yaml:"bold,omitempty"`
	Italic     *bool  `yaml:"italic,omitempty"`
	Underline  *bool  `yaml:"underline,omitempty"`
	Padding    []int  `yaml:"padding,omitempty"`
	// Border is one of none, normal, rounded, thick, double, hidden.
	Border string `yaml:"border,omitempty"`
}

// Validate checks the border name and padding shape.
func (r Rule) Validate() error {
	if r.Border != "" && r.Border != "none" {
		if _, ok := borders[r.Border]; !ok {
			return fmt.Errorf("%w: %q", ErrUnknownBorder, r.Border)
		}
	}
	switch len(r.Padding) {
	case 0, 1, 2, 4:
	default:
		return fmt.Errorf("%w, got %d", ErrBadPadding, len(r.Padding))
	}
	return nil
}

// Apply layers the rule onto s.
func (r Rule) Apply(s lipgloss.Style) lipgloss.Style {
	if r.Foreground != "" {
		s = s.Foreground(lipgloss.Color(r.Foreground))
	}
	if r.Background != "" {
		s = s.Background(lipgloss.Color(r.Background))
	}
	if r.Bold != nil {
		s = s.Bold(*r.Bold)
	}
	if r.Italic != nil {
		s = s.Italic(*r.Italic)
	}
	if r.Underline != nil {
		s = s.Underline(*r.Underline)
	}
	if len(r.Padding) > 0 {
		s = s.Padding(r.Padding...)
	}
	switch r.Border {
	case "":
	case "none":
		s = s.Border(lipgloss.Border{}, false)
	default:
		if b, ok := borders[r.Border]; ok {
			s = s.Border(b)
		}
	}
	return s
}
