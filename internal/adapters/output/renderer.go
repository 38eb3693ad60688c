// Package output renders query reports as line-oriented text.
package output

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/crateq/internal/core/domain"
	"go.trai.ch/crateq/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Renderer = (*Renderer)(nil)

// Renderer implements ports.Renderer. Styling is only applied when the
// writer is a terminal.
type Renderer struct {
	w      io.Writer
	styles styles
}

// New creates a Renderer writing to stdout.
func New() *Renderer {
	return NewWithWriter(os.Stdout)
}

// NewWithWriter creates a Renderer writing to w.
// Colors are disabled when NO_COLOR is set.
func NewWithWriter(w io.Writer) *Renderer {
	lr := lipgloss.NewRenderer(w)
	if os.Getenv("NO_COLOR") != "" {
		lr.SetColorProfile(termenv.Ascii)
	}
	return &Renderer{
		w:      w,
		styles: newStyles(lr),
	}
}

// Render writes the report. The text is built in full before anything is written.
func (r *Renderer) Render(report *domain.Report) error {
	if report == nil {
		return nil
	}

	var b strings.Builder

	switch report.View {
	case domain.ViewDependencies:
		r.header(&b, report.Package+" "+report.Version+" dependencies:")
		for _, dep := range report.Dependencies {
			b.WriteString(dep.Name.String() + " " + dep.Requirement + "\n")
		}
	case domain.ViewFeatures:
		r.header(&b, report.Package+" "+report.Version+" features:")
		for _, feature := range report.Features {
			b.WriteString(feature + "\n")
		}
	case domain.ViewRustVersion:
		r.header(&b, report.Package+" "+report.Version+" rust version:")
		if report.HasRustVersion {
			b.WriteString("Minimum Rust Version: " + report.RustVersion + "\n")
		} else {
			b.WriteString(r.styles.none.Render("None") + "\n")
		}
	case domain.ViewVersions:
		r.header(&b, report.Package+" versions:")
		for _, v := range report.Versions {
			b.WriteString(v + "\n")
		}
	default:
		return zerr.With(zerr.Wrap(domain.ErrUnknownView, "cannot render report"), "view", int(report.View))
	}

	if _, err := io.WriteString(r.w, b.String()); err != nil {
		return zerr.Wrap(err, "failed to write report")
	}
	return nil
}

func (r *Renderer) header(b *strings.Builder, title string) {
	b.WriteString(r.styles.header.Render(title))
	b.WriteString("\n\n")
}
