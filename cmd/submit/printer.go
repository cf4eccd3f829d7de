package submit

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"

	"github.com/Alijeyrad/optima_web/internal/leadform"
)

type styles struct {
	ok    lipgloss.Style
	bad   lipgloss.Style
	muted lipgloss.Style
	field lipgloss.Style
}

func newStyles(noColor bool) styles {
	if noColor || os.Getenv("NO_COLOR") != "" {
		return styles{
			ok:    lipgloss.NewStyle(),
			bad:   lipgloss.NewStyle(),
			muted: lipgloss.NewStyle(),
			field: lipgloss.NewStyle(),
		}
	}
	return styles{
		ok:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true), // Green
		bad:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),  // Red
		muted: lipgloss.NewStyle().Foreground(lipgloss.Color("8")),             // Gray
		field: lipgloss.NewStyle().Foreground(lipgloss.Color("12")),            // Blue
	}
}

// printer is the terminal Notifier.
type printer struct {
	out io.Writer
	st  styles
}

func (p printer) Notify(n leadform.Notification) {
	title := p.st.ok.Render(n.Title)
	if n.Severity == leadform.SeverityDestructive {
		title = p.st.bad.Render(n.Title)
	}
	fmt.Fprintln(p.out, title)
	if n.Description != "" {
		fmt.Fprintln(p.out, "  "+p.st.muted.Render(n.Description))
	}
}

// fieldErrors prints errors in form order.
func (p printer) fieldErrors(errs leadform.FieldErrors) {
	for _, f := range leadform.Fields {
		if msg, ok := errs[f]; ok {
			fmt.Fprintf(p.out, "  %s: %s\n", p.st.field.Render(string(f)), msg)
		}
	}
}
