package gnuplot

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"os"
)

// Figure multiplexes one or more axes onto a single renderer script. It
// owns the terminal and output-file directives and wraps multiple axes
// in a multiplot block.
type Figure struct {
	axes     []*Axes
	terminal string
	output   string
}

// NewFigure creates an empty figure.
func NewFigure() *Figure {
	return &Figure{}
}

// SetTerminal selects the renderer terminal (e.g. "pngcairo", "svg")
// and, when output is non-empty, the file the terminal writes to. Empty
// strings leave the renderer defaults in place.
func (f *Figure) SetTerminal(terminal, output string) {
	f.terminal = terminal
	f.output = output
}

// NewAxes2D attaches a new set of 2D axes to the figure and returns it.
func (f *Figure) NewAxes2D() *Axes {
	a := newAxes(false)
	f.axes = append(f.axes, a)
	return a
}

// NewAxes3D attaches a new set of 3D axes to the figure and returns it.
func (f *Figure) NewAxes3D() *Axes {
	a := newAxes(true)
	f.axes = append(f.axes, a)
	return a
}

// Render writes the complete script (commands, plot directives and
// inline binary payloads) to w. The figure stays valid and can be
// rendered again.
func (f *Figure) Render(w io.Writer) error {
	var buf bytes.Buffer

	if f.terminal != "" {
		fmt.Fprintf(&buf, "set terminal %s\n", f.terminal)
	}
	if f.output != "" {
		fmt.Fprintf(&buf, "set output \"%s\"\n", f.output)
	}

	multiplot := len(f.axes) > 1
	if multiplot {
		buf.WriteString("set multiplot\n")
	}

	for _, a := range f.axes {
		if a.posMode == positionGrid {
			cellW := 1.0 / float64(a.gridCols)
			cellH := 1.0 / float64(a.gridRows)
			x := float64(a.gridPos%a.gridCols) * cellW
			y := 1.0 - (1.0+float64(a.gridPos/a.gridCols))*cellH
			fmt.Fprintf(&buf, "set origin %s,%s\n", formatFloat(x), formatFloat(y))
			fmt.Fprintf(&buf, "set size %s,%s\n", formatFloat(cellW), formatFloat(cellH))
		}
		a.writeOutCommands(&buf)
		a.writeOutElements(&buf)
	}

	if multiplot {
		buf.WriteString("unset multiplot\n")
	}

	_, err := w.Write(buf.Bytes())
	return err
}

// Save renders the figure into the named file.
func (f *Figure) Save(path string) (err error) {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()

	w := bufio.NewWriter(file)
	if err = f.Render(w); err != nil {
		return err
	}
	return w.Flush()
}
