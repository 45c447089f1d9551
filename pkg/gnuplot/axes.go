package gnuplot

import (
	"bytes"
	"fmt"
	"math"
)

// plotElement is one plotted series or matrix: the directive fragment
// describing how the renderer parses and draws the data, and the inline
// binary payload itself. Elements are never mutated after the plot call
// that created them returns.
type plotElement struct {
	args bytes.Buffer
	data bytes.Buffer
}

// positionMode tracks which positioning directive is pending for the
// axes. The last position setter wins; the directive is rendered once at
// serialization time.
type positionMode int

const (
	positionUnset positionMode = iota
	positionGrid
	positionAbsolute
)

// sourceKind classifies how the renderer parses an element's payload.
type sourceKind int

const (
	// recordSource is a row-major variable-length series with a
	// "using" column selection.
	recordSource sourceKind = iota
	// arraySource is a fixed-size binary matrix with unit spacing.
	arraySource
	// sizedArraySource is a fixed-size binary matrix with an explicit
	// bounding box from which per-cell spacing is derived.
	sizedArraySource
)

// dataSource exists only while an element is constructed.
type dataSource struct {
	kind sourceKind
	box  BoundingBox
}

// BoundingBox gives the spatial extents of a matrix plot. Reversed
// bounds are normalized by swapping.
type BoundingBox struct {
	X1, Y1, X2, Y2 float64
}

// Axes accumulates the plot elements, axis state and free-form commands
// of one set of axes. It is not safe for concurrent use: construction is
// single-writer, and the serialized script may then be read freely.
type Axes struct {
	commands bytes.Buffer
	elems    []*plotElement

	posMode            positionMode
	gridRows, gridCols uint32
	gridPos            uint32
	originX, originY   float64

	threeD bool

	xAxis  axisData
	yAxis  axisData
	cbAxis axisData
}

func newAxes(threeD bool) *Axes {
	return &Axes{
		threeD: threeD,
		xAxis:  newAxisData(axisX),
		yAxis:  newAxisData(axisY),
		cbAxis: newAxisData(axisCB),
	}
}

// NewAxes2D creates standalone 2D axes. Axes rendered as part of a
// figure should be created through Figure.NewAxes2D instead.
func NewAxes2D() *Axes {
	return newAxes(false)
}

// NewAxes3D creates standalone 3D axes.
func NewAxes3D() *Axes {
	return newAxes(true)
}

// SetPosGrid places the axes in a grid cell on the figure. Cells are
// counted from the top-left corner, going right and then down, starting
// at 0. nrow and ncol must be positive and pos must lie inside the grid.
func (a *Axes) SetPosGrid(nrow, ncol, pos uint32) error {
	if nrow == 0 || ncol == 0 || pos >= nrow*ncol {
		return newArgumentError("SetPosGrid",
			fmt.Errorf("%w: cell %d in a %dx%d grid", ErrInvalidGridPosition, pos, nrow, ncol))
	}
	a.posMode = positionGrid
	a.gridRows, a.gridCols, a.gridPos = nrow, ncol, pos
	return nil
}

// SetPos places the bottom-left corner of the axes at the given screen
// coordinates, each ranging from 0 to 1. It replaces any earlier grid or
// absolute placement.
func (a *Axes) SetPos(x, y float64) {
	a.posMode = positionAbsolute
	a.originX, a.originY = x, y
}

// SetSize sets the width and height of the axes, each ranging from 0
// to 1.
func (a *Axes) SetSize(w, h float64) {
	fmt.Fprintf(&a.commands, "set size %s,%s\n", formatFloat(w), formatFloat(h))
}

// SetAspectRatio sets the aspect ratio of the axes. A nil ratio returns
// it to the renderer default.
func (a *Axes) SetAspectRatio(ratio *float64) {
	if ratio != nil {
		fmt.Fprintf(&a.commands, "set size ratio %s\n", formatFloat(*ratio))
	} else {
		a.commands.WriteString("set size noratio\n")
	}
}

// SetTitle sets the title of the axes. Pass an empty string to hide it.
func (a *Axes) SetTitle(text string, options ...LabelOption) error {
	return a.setLabelCommon(labelTarget{kind: titleLabel}, text, options)
}

// SetXLabel sets the label of the X axis.
func (a *Axes) SetXLabel(text string, options ...LabelOption) error {
	return a.setLabelCommon(labelTarget{kind: xLabel}, text, options)
}

// SetYLabel sets the label of the Y axis.
func (a *Axes) SetYLabel(text string, options ...LabelOption) error {
	return a.setLabelCommon(labelTarget{kind: yLabel}, text, options)
}

// SetZLabel sets the label of the Z axis of 3D axes.
func (a *Axes) SetZLabel(text string, options ...LabelOption) error {
	return a.setLabelCommon(labelTarget{kind: zLabel}, text, options)
}

// SetCBLabel sets the label of the color bar axis.
func (a *Axes) SetCBLabel(text string, options ...LabelOption) error {
	return a.setLabelCommon(labelTarget{kind: cbLabel}, text, options)
}

// Label adds a free-standing label at the given position, with an
// optional marker controlled by the Marker* options.
func (a *Axes) Label(text string, x, y Coordinate, options ...LabelOption) error {
	return a.setLabelCommon(labelTarget{kind: positionedLabel, x: x, y: y}, text, options)
}

// setLabelCommon renders one label directive into the command buffer.
// The fragment is built aside so a rejected option list leaves the
// buffer untouched.
func (a *Axes) setLabelCommon(target labelTarget, text string, options []LabelOption) error {
	keyword, err := target.keyword()
	if err != nil {
		return newArgumentError("SetLabel", err)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "set %s \"%s\"", keyword, text)
	if err := writeLabelOptions(&buf, target, options); err != nil {
		return err
	}
	buf.WriteByte('\n')

	a.commands.Write(buf.Bytes())
	return nil
}

// SetXTicks configures the ticks of the X axis. A nil placement hides
// the ticks. A fixed increment must be positive.
func (a *Axes) SetXTicks(placement *TickPlacement, tickOptions []TickOption, labelOptions []LabelOption) error {
	return a.xAxis.setTicks(placement, tickOptions, labelOptions)
}

// SetYTicks is SetXTicks for the Y axis.
func (a *Axes) SetYTicks(placement *TickPlacement, tickOptions []TickOption, labelOptions []LabelOption) error {
	return a.yAxis.setTicks(placement, tickOptions, labelOptions)
}

// SetCBTicks is SetXTicks for the color bar axis.
func (a *Axes) SetCBTicks(placement *TickPlacement, tickOptions []TickOption, labelOptions []LabelOption) error {
	return a.cbAxis.setTicks(placement, tickOptions, labelOptions)
}

// SetXTicksCustom places ticks on the X axis at explicit positions with
// optional labels, replacing any automatic placement.
func (a *Axes) SetXTicksCustom(ticks []Tick, tickOptions []TickOption, labelOptions []LabelOption) error {
	return a.xAxis.setTicksCustom(ticks, tickOptions, labelOptions)
}

// SetYTicksCustom is SetXTicksCustom for the Y axis.
func (a *Axes) SetYTicksCustom(ticks []Tick, tickOptions []TickOption, labelOptions []LabelOption) error {
	return a.yAxis.setTicksCustom(ticks, tickOptions, labelOptions)
}

// SetCBTicksCustom is SetXTicksCustom for the color bar axis.
func (a *Axes) SetCBTicksCustom(ticks []Tick, tickOptions []TickOption, labelOptions []LabelOption) error {
	return a.cbAxis.setTicksCustom(ticks, tickOptions, labelOptions)
}

// SetXRange sets the range of the X axis. A nil bound is chosen by the
// renderer.
func (a *Axes) SetXRange(min, max *float64) {
	a.xAxis.setRange(min, max)
}

// SetYRange sets the range of the Y axis.
func (a *Axes) SetYRange(min, max *float64) {
	a.yAxis.setRange(min, max)
}

// SetCBRange sets the range of the color bar axis.
func (a *Axes) SetCBRange(min, max *float64) {
	a.cbAxis.setRange(min, max)
}

// SetXLog makes the X axis logarithmic with the given base, or linear
// when base is nil. The range must be positive for the result to be
// valid; the renderer enforces that.
func (a *Axes) SetXLog(base *float64) {
	a.xAxis.setLog(base)
}

// SetYLog is SetXLog for the Y axis.
func (a *Axes) SetYLog(base *float64) {
	a.yAxis.setLog(base)
}

// SetCBLog is SetXLog for the color bar axis.
func (a *Axes) SetCBLog(base *float64) {
	a.cbAxis.setLog(base)
}

// SetPalette sets the palette used for surface and image plots.
func (a *Axes) SetPalette(palette PaletteType) error {
	switch p := palette.(type) {
	case GrayPalette:
		if p.Gamma <= 0 {
			return newArgumentError("SetPalette",
				fmt.Errorf("%w: gamma must be positive, got %v", ErrInvalidPalette, p.Gamma))
		}
		fmt.Fprintf(&a.commands, "set palette gray gamma %s\n", formatFloat(p.Gamma))
	case FormulaPalette:
		for _, c := range []int{p.R, p.G, p.B} {
			if c < -36 || c > 36 {
				return newArgumentError("SetPalette",
					fmt.Errorf("%w: formula %d outside [-36, 36]", ErrInvalidPalette, c))
			}
		}
		fmt.Fprintf(&a.commands, "set palette rgbformulae %d,%d,%d\n", p.R, p.G, p.B)
	case CubeHelixPalette:
		if p.Saturation < 0 {
			return newArgumentError("SetPalette",
				fmt.Errorf("%w: saturation must be non-negative, got %v", ErrInvalidPalette, p.Saturation))
		}
		if p.Gamma <= 0 {
			return newArgumentError("SetPalette",
				fmt.Errorf("%w: gamma must be positive, got %v", ErrInvalidPalette, p.Gamma))
		}
		fmt.Fprintf(&a.commands, "set palette cubehelix start %s cycles %s saturation %s gamma %s\n",
			formatFloat(p.Start), formatFloat(p.Cycles), formatFloat(p.Saturation), formatFloat(p.Gamma))
	default:
		return newArgumentError("SetPalette",
			fmt.Errorf("%w: unknown palette type %T", ErrInvalidPalette, palette))
	}
	return nil
}

// SetCustomPalette sets a palette from explicit control points. The
// sequence must be non-empty with non-decreasing gray levels; the first
// violation fails the call without touching the command buffer.
func (a *Axes) SetCustomPalette(colors []PaletteColor) error {
	if len(colors) == 0 {
		return newArgumentError("SetCustomPalette", ErrEmptyPalette)
	}

	var buf bytes.Buffer
	buf.WriteString("set palette defined (")
	prev := colors[0].Gray
	for i, c := range colors {
		if c.Gray < prev {
			return newArgumentError("SetCustomPalette",
				fmt.Errorf("%w: %v after %v", ErrNonMonotonic, c.Gray, prev))
		}
		prev = c.Gray
		if i > 0 {
			buf.WriteByte(',')
		}
		fmt.Fprintf(&buf, "%s %s %s %s",
			formatFloat(float64(c.Gray)), formatFloat(float64(c.R)),
			formatFloat(float64(c.G)), formatFloat(float64(c.B)))
	}
	buf.WriteString(")\n")

	a.commands.Write(buf.Bytes())
	return nil
}

// Plot2 plots two aligned series. The sequences are zipped positionally;
// the shorter one truncates the other.
func (a *Axes) Plot2(plotType PlotType, x, y []float64, options ...PlotOption) error {
	elem := &plotElement{}
	rows := min(len(x), len(y))
	for i := 0; i < rows; i++ {
		writeFloat64(&elem.data, x[i])
		writeFloat64(&elem.data, y[i])
	}
	return a.finishElement(elem, plotType, rows, 2, dataSource{kind: recordSource}, options)
}

// Plot3 plots three aligned series, e.g. x, y and an error column. The
// shortest sequence truncates the others.
func (a *Axes) Plot3(plotType PlotType, x, y, z []float64, options ...PlotOption) error {
	elem := &plotElement{}
	rows := min(len(x), min(len(y), len(z)))
	for i := 0; i < rows; i++ {
		writeFloat64(&elem.data, x[i])
		writeFloat64(&elem.data, y[i])
		writeFloat64(&elem.data, z[i])
	}
	return a.finishElement(elem, plotType, rows, 3, dataSource{kind: recordSource}, options)
}

// PlotMatrix plots a matrix given in row-major order. Missing trailing
// values are padded with NaN so the payload always holds rows*cols
// cells; short input never errors. A non-nil box selects sized-array
// output with spacing derived from the box extents.
func (a *Axes) PlotMatrix(plotType PlotType, mat []float64, rows, cols int, box *BoundingBox, options ...PlotOption) error {
	elem := &plotElement{}
	for _, v := range mat {
		writeFloat64(&elem.data, v)
	}
	for i := len(mat); i < rows*cols; i++ {
		writeFloat64(&elem.data, math.NaN())
	}

	source := dataSource{kind: arraySource}
	if box != nil {
		source = dataSource{kind: sizedArraySource, box: *box}
	}
	return a.finishElement(elem, plotType, rows, cols, source, options)
}

// finishElement builds the directive fragment and retains the element.
// A rejected option list drops the element entirely.
func (a *Axes) finishElement(elem *plotElement, plotType PlotType, rows, cols int, source dataSource, options []PlotOption) error {
	if err := writeElementArgs(&elem.args, plotType, rows, cols, source, a.threeD, options); err != nil {
		return err
	}
	a.elems = append(a.elems, elem)
	return nil
}

// writeElementArgs renders the directive fragment for one element:
// source clause, render mode, then the decoration clauses that the plot
// type's shape classification calls for.
func writeElementArgs(args *bytes.Buffer, plotType PlotType, rows, cols int, source dataSource, threeD bool, options []PlotOption) error {
	switch source.kind {
	case recordSource:
		fmt.Fprintf(args, " \"-\" binary endian=little record=%d format=\"%%float64\" using ", rows)
		for col := 1; col <= cols; col++ {
			if col > 1 {
				args.WriteByte(':')
			}
			fmt.Fprintf(args, "%d", col)
		}
	default:
		fmt.Fprintf(args, " \"-\" binary endian=little array=(%d,%d) format=\"%%float64\"", cols, rows)
		if source.kind == sizedArraySource {
			x1, x2 := source.box.X1, source.box.X2
			if x1 > x2 {
				x1, x2 = x2, x1
			}
			y1, y2 := source.box.Y1, source.box.Y2
			if y1 > y2 {
				y1, y2 = y2, y1
			}
			fmt.Fprintf(args, " origin=(%s,%s", formatFloat(x1), formatFloat(y1))
			if threeD {
				args.WriteString(",0")
			}
			args.WriteByte(')')
			// A single row or column has no spacing to derive.
			if cols > 1 {
				fmt.Fprintf(args, " dx=%s", formatFloat((x2-x1)/float64(cols-1)))
			} else {
				args.WriteString(" dx=1")
			}
			if rows > 1 {
				fmt.Fprintf(args, " dy=%s", formatFloat((y2-y1)/float64(rows-1)))
			} else {
				args.WriteString(" dy=1")
			}
		}
	}

	args.WriteString(" with ")
	args.WriteString(plotType.modeName())

	if plotType.isFill() {
		if plotType == FillBetween {
			region := Between
			if r, ok := firstOption[FillRegion](options); ok {
				region = FillRegionType(r)
			}
			switch region {
			case Above:
				args.WriteString(" above")
			case Below:
				args.WriteString(" below")
			default:
				args.WriteString(" closed")
			}
		}

		args.WriteString(" fill transparent solid")
		if alpha, ok := firstOption[FillAlpha](options); ok {
			args.WriteString(" " + formatFloat(float64(alpha)))
		}

		if plotType.isLine() {
			args.WriteString(" border")
			if color, ok := firstOption[BorderColor](options); ok {
				fmt.Fprintf(args, " rgb \"%s\"", string(color))
			}
		} else {
			args.WriteString(" noborder")
		}
	}

	if plotType.isLine() {
		writeLineOptions(args, options)
	}

	if plotType.isPoints() {
		if symbol, ok := firstOption[PointSymbol](options); ok {
			idx, err := charToSymbol(rune(symbol))
			if err != nil {
				return newArgumentError("Plot", err)
			}
			fmt.Fprintf(args, " pt %d", idx)
		}
		if size, ok := firstOption[PointSize](options); ok {
			args.WriteString(" ps " + formatFloat(float64(size)))
		}
	}

	writeColorOptions(args, options, "")

	caption, _ := firstOption[Caption](options)
	args.WriteString(" t \"" + string(caption) + "\"")
	return nil
}

// writeLineOptions emits line width and style, defaulting both to 1.
func writeLineOptions(args *bytes.Buffer, options []PlotOption) {
	args.WriteString(" lw ")
	if width, ok := firstOption[LineWidth](options); ok {
		args.WriteString(formatFloat(float64(width)))
	} else {
		args.WriteByte('1')
	}

	args.WriteString(" lt ")
	if style, ok := firstOption[LineStyle](options); ok {
		fmt.Fprintf(args, "%d", DashType(style).lineTypeIndex())
	} else {
		args.WriteByte('1')
	}
}

// writeColorOptions emits the color clause: an explicit Color option
// wins, otherwise the supplied default is used, otherwise the clause is
// omitted.
func writeColorOptions(args *bytes.Buffer, options []PlotOption, defaultColor string) {
	color := defaultColor
	if c, ok := firstOption[Color](options); ok {
		color = string(c)
	}
	if color != "" {
		fmt.Fprintf(args, " lc rgb \"%s\"", color)
	}
}

// writeOutCommands emits the free-form command buffer, the pending
// position directive, then the X, Y and color bar axis commands in that
// fixed order.
func (a *Axes) writeOutCommands(w *bytes.Buffer) {
	w.Write(a.commands.Bytes())
	if a.posMode == positionAbsolute {
		fmt.Fprintf(w, "set origin %s,%s\n", formatFloat(a.originX), formatFloat(a.originY))
	}
	a.xAxis.writeCommands(w)
	a.yAxis.writeCommands(w)
	a.cbAxis.writeCommands(w)
}

// writeOutElements emits the plot command with every element's directive
// fragment comma-joined, then every binary payload in the same order.
// The renderer pairs the Nth fragment with the Nth payload positionally.
func (a *Axes) writeOutElements(w *bytes.Buffer) {
	w.WriteString(a.plotCommand())
	for i, elem := range a.elems {
		if i > 0 {
			w.WriteByte(',')
		}
		w.Write(elem.args.Bytes())
	}
	w.WriteByte('\n')
	for _, elem := range a.elems {
		w.Write(elem.data.Bytes())
	}
}

func (a *Axes) plotCommand() string {
	if a.threeD {
		return "splot"
	}
	return "plot"
}
