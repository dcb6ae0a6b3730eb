package probe

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorSuccess   = lipgloss.Color("#00B785")
	colorFailed    = lipgloss.Color("#e1244c")
	colorException = lipgloss.Color("#e08dff")
	colorHighlight = lipgloss.Color("#407FF8")
)

// View writes probe blocks to a console. Styling is only emitted when w is
// a terminal; otherwise the output is plain text.
type View struct {
	w io.Writer

	styleHeader    lipgloss.Style
	styleSuccess   lipgloss.Style
	styleFailed    lipgloss.Style
	styleException lipgloss.Style
}

func NewView(w io.Writer) *View {
	r := lipgloss.NewRenderer(w)

	return &View{
		w:              w,
		styleHeader:    r.NewStyle().Foreground(colorHighlight).Bold(true),
		styleSuccess:   r.NewStyle().Foreground(colorSuccess).Bold(true),
		styleFailed:    r.NewStyle().Foreground(colorFailed).Bold(true),
		styleException: r.NewStyle().Foreground(colorException).Bold(true),
	}
}

func (v *View) Header(label string) {
	fmt.Fprintln(v.w, v.styleHeader.Render(fmt.Sprintf("--- Testing %s ---", label)))
}

// Outcome writes the outcome line followed by one blank line. The captured
// text is written as-is so multi-line output is not re-aligned.
func (v *View) Outcome(o Outcome) {
	fmt.Fprintf(v.w, "%s %s\n\n", v.keywordStyle(o.Kind).Render(o.Kind.String()+":"), o.Text)
}

func (v *View) keywordStyle(k OutcomeKind) lipgloss.Style {
	switch k {
	case Success:
		return v.styleSuccess
	case Failure:
		return v.styleFailed
	default:
		return v.styleException
	}
}
