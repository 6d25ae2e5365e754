package asset

import (
	"fmt"
	"io"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

var successColor = lipgloss.Color("#5AF78E")

// reporter writes one status line per asset
// Lines from concurrent workers are serialized; styling degrades to plain text off a terminal
type reporter struct {
	mu        sync.Mutex
	out       io.Writer
	verbStyle lipgloss.Style
	nameStyle lipgloss.Style
}

func newReporter(out io.Writer) *reporter {
	if out == nil {
		out = io.Discard
	}
	r := lipgloss.NewRenderer(out)
	return &reporter{
		out:       out,
		verbStyle: r.NewStyle().Foreground(successColor),
		nameStyle: r.NewStyle().Bold(true),
	}
}

// wrote reports a finished asset file
func (r *reporter) wrote(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintf(r.out, "%s %s\n", r.verbStyle.Render("wrote"), r.nameStyle.Render(name))
}
