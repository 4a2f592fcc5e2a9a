package report

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Palette holds the colors a Console uses.
type Palette struct {
	Label   *color.Color // field names
	OK      *color.Color // message of successful integrations
	Failure *color.Color // message of failed integrations
}

// DefaultPalette returns blue labels, a green "OK" and red error messages.
func DefaultPalette() *Palette {
	return &Palette{
		Label:   color.New(color.FgBlue),
		OK:      color.New(color.FgGreen),
		Failure: color.New(color.FgRed, color.Bold),
	}
}

// Console prints summaries to a writer, colored if the writer is a terminal.
type Console struct {
	w       io.Writer
	palette *Palette
	colored bool
}

// NewConsole creates a console for w. If palette is nil, DefaultPalette is
// used. Colors are switched on if w is a file connected to a terminal.
func NewConsole(w io.Writer, palette *Palette) *Console {
	if w == nil {
		w = os.Stdout
	}
	if palette == nil {
		palette = DefaultPalette()
	}
	c := &Console{w: w, palette: palette}
	c.ForceColors(isTerminal(w))
	return c
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// ForceColors switches colored output on or off, regardless of the writer.
func (c *Console) ForceColors(on bool) {
	c.colored = on
	for _, col := range []*color.Color{c.palette.Label, c.palette.OK, c.palette.Failure} {
		if col == nil {
			continue
		}
		if on {
			col.EnableColor()
		} else {
			col.DisableColor()
		}
	}
	tracer().P("report", "console").Debugf("colored output: %v", on)
}

// Colored reports whether c prints colors.
func (c *Console) Colored() bool {
	return c.colored
}

// Print outputs a summary, one field per line:
//
//	value:        0.5
//	abs.error:    1.9e-05
//	subdivisions: 3
//	neval:        150
//	message:      OK
func (c *Console) Print(s Summary) error {
	p := printer{w: c.w}
	for _, f := range s.fields() {
		p.print(c.palette.Label, fmt.Sprintf("%-13s ", f.name+":"))
		if f.name == fieldMessage {
			col := c.palette.Failure
			if s.OK() {
				col = c.palette.OK
			}
			p.print(col, f.text)
		} else {
			p.print(nil, f.text)
		}
		p.print(nil, "\n")
	}
	return p.err
}

// PrintAll outputs summaries separated by blank lines.
func (c *Console) PrintAll(summaries []Summary) error {
	for i, s := range summaries {
		if i > 0 {
			if _, err := io.WriteString(c.w, "\n"); err != nil {
				return err
			}
		}
		if err := c.Print(s); err != nil {
			return err
		}
	}
	return nil
}

// printer remembers the first write error.
type printer struct {
	w   io.Writer
	err error
}

func (p *printer) print(col *color.Color, s string) {
	if p.err != nil {
		return
	}
	if col != nil {
		_, p.err = col.Fprint(p.w, s)
		return
	}
	_, p.err = io.WriteString(p.w, s)
}
