package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/aretw0/contagion/pkg/display"
	"github.com/aretw0/contagion/pkg/domain"
)

// GridRenderer turns grid snapshots into colored terminal frames.
// Each cell renders as a two-column block so frames keep a roughly square
// aspect ratio in typical terminal fonts.
type GridRenderer struct {
	profile termenv.Profile
	// styles are resolved once per state; rendering a frame is then pure
	// string assembly.
	styles [4]termenv.Style
}

// NewGridRenderer resolves the state palette against the active terminal
// color profile.
func NewGridRenderer() *GridRenderer {
	r := &GridRenderer{profile: termenv.ColorProfile()}
	for _, s := range domain.States {
		c, err := display.Color(s)
		if err != nil {
			// display.Color is total over domain.States.
			panic(err)
		}
		hex := fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
		r.styles[s] = termenv.String("██").Foreground(r.profile.Color(hex))
	}
	return r
}

// Frame renders one snapshot: the colored lattice followed by a census line.
func (r *GridRenderer) Frame(snap domain.Snapshot) string {
	var b strings.Builder
	g := snap.Grid
	for y := 0; y < g.Height(); y++ {
		for x := 0; x < g.Width(); x++ {
			b.WriteString(r.styles[g.At(x, y)].String())
		}
		b.WriteByte('\n')
	}
	b.WriteString(r.legend(snap))
	return b.String()
}

func (r *GridRenderer) legend(snap domain.Snapshot) string {
	census := snap.Grid.Census()
	parts := make([]string, 0, len(domain.States)+1)
	parts = append(parts, fmt.Sprintf("step %d", snap.Step))
	for _, s := range domain.States {
		parts = append(parts, fmt.Sprintf("%s %s=%d", r.styles[s].String(), s, census[s]))
	}
	return strings.Join(parts, "  ") + "\n"
}

// FitsTerminal reports whether a width x height grid fits the attached
// terminal, leaving one row for the census line. Non-terminal outputs
// always fit (frames just scroll).
func FitsTerminal(width, height int) bool {
	cols, rows, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil {
		return true
	}
	return width*2 <= cols && height+1 <= rows
}
