package host

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	view "github.com/grindlemire/go-view"
	"github.com/grindlemire/go-view/internal/debug"
	"github.com/grindlemire/go-view/style"
)

// TracerName is the instrumentation name used for render spans.
const TracerName = "github.com/grindlemire/go-view/host"

// Host mounts a root component and produces its output.
type Host struct {
	root   view.Component
	sheet  style.Sheet
	width  int
	tracer trace.Tracer
}

// Option configures a Host.
type Option func(*Host)

// WithSheet sets the stylesheet used for FormatText.
func WithSheet(sheet style.Sheet) Option {
	return func(h *Host) {
		h.sheet = sheet
	}
}

// WithWidth sets the maximum width for FormatText. 0 means unconstrained.
func WithWidth(width int) Option {
	return func(h *Host) {
		h.width = width
	}
}

// WithTracer sets the tracer for render spans. Defaults to the global
// tracer provider.
func WithTracer(tracer trace.Tracer) Option {
	return func(h *Host) {
		h.tracer = tracer
	}
}

// New creates a Host for root.
func New(root view.Component, opts ...Option) *Host {
	h := &Host{
		root:  root,
		sheet: style.Default(),
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.tracer == nil {
		h.tracer = otel.Tracer(TracerName)
	}
	return h
}

// Tree runs one render pass of the root component.
func (h *Host) Tree() *view.Element {
	return view.Render(h.root)
}

// Render runs one render pass and encodes the result in format.
func (h *Host) Render(ctx context.Context, format Format) ([]byte, error) {
	_, span := h.tracer.Start(ctx, "view.render",
		trace.WithAttributes(attribute.String("view.format", string(format))),
	)
	defer span.End()

	out, err := h.encode(h.Tree(), format)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}
	span.SetAttributes(attribute.Int("view.bytes", len(out)))
	debug.Log("host: rendered %s (%d bytes)", format, len(out))
	return out, nil
}

func (h *Host) encode(el *view.Element, format Format) ([]byte, error) {
	switch format {
	case FormatHTML:
		s, err := view.RenderToString(el)
		if err != nil {
			return nil, err
		}
		return []byte(s), nil
	case FormatJSON:
		out, err := json.MarshalIndent(el, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encoding json: %w", err)
		}
		return out, nil
	case FormatText:
		return []byte(style.Render(el, h.sheet, h.width)), nil
	case FormatTree:
		return []byte(Outline(el)), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// RenderAll renders every format in targets and writes each result to its
// writer. Formats are rendered concurrently; the first error cancels the
// rest and is returned.
func (h *Host) RenderAll(ctx context.Context, targets map[Format]io.Writer) error {
	ctx, span := h.tracer.Start(ctx, "view.render_all",
		trace.WithAttributes(attribute.Int("view.targets", len(targets))),
	)
	defer span.End()

	g, ctx := errgroup.WithContext(ctx)
	for format, w := range targets {
		format, w := format, w
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			out, err := h.Render(ctx, format)
			if err != nil {
				return err
			}
			if _, err := w.Write(out); err != nil {
				return fmt.Errorf("writing %s: %w", format, err)
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}
	return nil
}

// Outline returns an indented one-line-per-element description of the tree.
func Outline(el *view.Element) string {
	var buf bytes.Buffer
	view.Walk(el, func(e *view.Element, depth int) bool {
		buf.WriteString(strings.Repeat("  ", depth))
		buf.WriteString(e.Kind().Tag())
		for _, class := range strings.Fields(e.Class()) {
			buf.WriteByte('.')
			buf.WriteString(class)
		}
		if e.Text() != "" {
			buf.WriteByte(' ')
			buf.WriteString(strconv.Quote(e.Text()))
		}
		buf.WriteByte('\n')
		return true
	})
	return buf.String()
}
