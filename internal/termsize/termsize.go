// Package termsize reports the width of the controlling terminal.
package termsize

// DefaultWidth is returned when the width cannot be determined.
const DefaultWidth = 80

// Width returns the column count of the terminal on fd, or DefaultWidth
// if fd is not a terminal.
func Width(fd int) int {
	if w, ok := width(fd); ok && w > 0 {
		return w
	}
	return DefaultWidth
}
