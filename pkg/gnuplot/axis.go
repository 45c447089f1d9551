package gnuplot

import (
	"bytes"
	"fmt"
)

// tickAxis identifies one logical axis in renderer directives.
type tickAxis int

const (
	axisX tickAxis = iota
	axisY
	axisZ
	axisCB
)

func (a tickAxis) axisStr() string {
	switch a {
	case axisX:
		return "x"
	case axisY:
		return "y"
	case axisZ:
		return "z"
	}
	return "cb"
}

func (a tickAxis) tickStr() string {
	return a.axisStr() + "tics"
}

func (a tickAxis) rangeStr() string {
	return a.axisStr() + "range"
}

// axisData holds the tick, range and log-scale state of one axis. The
// tick buffer is regenerated from scratch by every tick setter; range
// and log state are orthogonal to it.
type axisData struct {
	ticksBuf bytes.Buffer
	logBase  *float64
	minor    uint
	axis     tickAxis
	min, max *float64
}

func newAxisData(axis tickAxis) axisData {
	return axisData{axis: axis}
}

// setRange fixes the axis bounds. A nil bound is chosen automatically by
// the renderer. No min < max validation is performed; the renderer is
// authoritative.
func (a *axisData) setRange(min, max *float64) {
	a.min = cloneValue(min)
	a.max = cloneValue(max)
}

// setLog enables log scaling with the given base, or disables it when
// base is nil. Base positivity is left to the renderer.
func (a *axisData) setLog(base *float64) {
	a.logBase = cloneValue(base)
}

// setTicks regenerates the tick directive. A nil placement hides the
// ticks entirely and resets the minor tick count.
func (a *axisData) setTicks(placement *TickPlacement, tickOptions []TickOption, labelOptions []LabelOption) error {
	if placement != nil && placement.Increment != nil && *placement.Increment <= 0 {
		return newArgumentError("SetTicks", fmt.Errorf("%w: got %v", ErrInvalidIncrement, *placement.Increment))
	}

	a.ticksBuf.Reset()
	if placement == nil {
		a.minor = 0
		fmt.Fprintf(&a.ticksBuf, "unset %s\n", a.axis.tickStr())
		return nil
	}

	fmt.Fprintf(&a.ticksBuf, "set %s", a.axis.tickStr())
	if placement.Increment == nil {
		a.ticksBuf.WriteString(" autofreq")
	} else {
		a.ticksBuf.WriteString(" " + formatFloat(*placement.Increment))
	}
	if err := a.writeTickOptions(tickOptions, labelOptions); err != nil {
		return err
	}
	a.minor = placement.Minor
	a.ticksBuf.WriteByte('\n')
	return nil
}

// setTicksCustom regenerates the tick directive from explicit tick
// positions. Custom ticks disable automatic minor tick generation.
func (a *axisData) setTicksCustom(ticks []Tick, tickOptions []TickOption, labelOptions []LabelOption) error {
	a.minor = 0
	a.ticksBuf.Reset()

	fmt.Fprintf(&a.ticksBuf, "set %s (", a.axis.tickStr())
	for i, tick := range ticks {
		if i > 0 {
			a.ticksBuf.WriteByte(',')
		}
		level := 0
		if tick.minor {
			level = 1
		}
		if tick.label != nil {
			a.ticksBuf.WriteString("\"" + *tick.label + "\" ")
		}
		fmt.Fprintf(&a.ticksBuf, "%s %d", formatFloat(tick.pos), level)
	}
	a.ticksBuf.WriteByte(')')

	if err := a.writeTickOptions(tickOptions, labelOptions); err != nil {
		return err
	}
	a.ticksBuf.WriteByte('\n')
	return nil
}

// writeTickOptions appends the tick decoration options to the tick
// buffer: label decorations first, then placement, mirroring, direction
// and length scales. Tick labels accept only offset, color, font and
// rotation.
func (a *axisData) writeTickOptions(tickOptions []TickOption, labelOptions []LabelOption) error {
	if err := writeLabelOptions(&a.ticksBuf, labelTarget{kind: ticksLabel}, labelOptions); err != nil {
		return err
	}

	if onAxis, ok := firstOption[OnAxis](tickOptions); ok {
		if onAxis {
			a.ticksBuf.WriteString(" axis")
		} else {
			a.ticksBuf.WriteString(" border")
		}
	}
	if mirror, ok := firstOption[Mirror](tickOptions); ok {
		if mirror {
			a.ticksBuf.WriteString(" mirror")
		} else {
			a.ticksBuf.WriteString(" nomirror")
		}
	}
	if inward, ok := firstOption[Inward](tickOptions); ok {
		if inward {
			a.ticksBuf.WriteString(" in")
		} else {
			a.ticksBuf.WriteString(" out")
		}
	}

	minorScale, majorScale := 0.5, 0.5
	if s, ok := firstOption[MinorScale](tickOptions); ok {
		minorScale = float64(s)
	}
	if s, ok := firstOption[MajorScale](tickOptions); ok {
		majorScale = float64(s)
	}
	fmt.Fprintf(&a.ticksBuf, " scale %s,%s", formatFloat(minorScale), formatFloat(majorScale))
	return nil
}

// writeCommands emits the axis state in deterministic order: log scale
// toggle, minor tick count, range, then the pre-rendered tick buffer.
func (a *axisData) writeCommands(w *bytes.Buffer) {
	if a.logBase != nil {
		fmt.Fprintf(w, "set logscale %s %s\n", a.axis.axisStr(), formatFloat(*a.logBase))
	} else {
		fmt.Fprintf(w, "unset logscale %s\n", a.axis.axisStr())
	}

	if a.minor > 0 {
		// Log axes place minor ticks at the renderer's default
		// positions rather than at an even count.
		if a.logBase != nil {
			fmt.Fprintf(w, "set m%s default\n", a.axis.tickStr())
		} else {
			fmt.Fprintf(w, "set m%s %d\n", a.axis.tickStr(), a.minor+1)
		}
	} else {
		fmt.Fprintf(w, "unset m%s\n", a.axis.tickStr())
	}

	w.WriteString("set " + a.axis.rangeStr() + " [")
	if a.min != nil {
		w.WriteString(formatFloat(*a.min))
	} else {
		w.WriteByte('*')
	}
	w.WriteByte(':')
	if a.max != nil {
		w.WriteString(formatFloat(*a.max))
	} else {
		w.WriteByte('*')
	}
	w.WriteString("]\n")

	w.Write(a.ticksBuf.Bytes())
}

// cloneValue copies an optional value so later caller mutations through
// the original pointer cannot alias axis state.
func cloneValue(v *float64) *float64 {
	if v == nil {
		return nil
	}
	c := *v
	return &c
}
