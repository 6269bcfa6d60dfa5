package host

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownFormat is returned for an output format the host cannot produce.
var ErrUnknownFormat = errors.New("unknown format")

// Format is an output format for a rendered tree.
type Format string

const (
	// FormatHTML is server-side HTML markup.
	FormatHTML Format = "html"
	// FormatJSON is the JSON encoding of the view tree.
	FormatJSON Format = "json"
	// FormatText is styled terminal output.
	FormatText Format = "text"
	// FormatTree is an indented outline of the view tree.
	FormatTree Format = "tree"
)

// Formats lists every supported format.
var Formats = []Format{FormatHTML, FormatJSON, FormatText, FormatTree}

// ParseFormat converts a case-insensitive name to a Format.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Formats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
}
