// Package gnuplot compiles declarative plot descriptions into the
// command script and inline binary data consumed by the gnuplot engine.
//
// Callers attach data series and option lists to axes obtained from a
// Figure; rendering the figure produces the textual control script with
// each element's binary payload inlined after its plot directive.
package gnuplot

import "fmt"

// PlotType selects the rendering mode for a plotted element.
type PlotType int

const (
	// Lines connects consecutive data points with line segments.
	Lines PlotType = iota
	// Points draws a marker at each data point.
	Points
	// LinesPoints combines Lines and Points.
	LinesPoints
	// XErrorLines is Lines with horizontal error bars (x, y, x_error).
	XErrorLines
	// YErrorLines is Lines with vertical error bars (x, y, y_error).
	YErrorLines
	// FillBetween fills the region described by the data columns.
	FillBetween
	// Boxes draws a box centered on each x value.
	Boxes
	// Pm3D draws a 3D surface colored by the palette.
	Pm3D
	// Image draws a matrix as a pixel image colored by the palette.
	Image
)

// isLine reports whether the plot type draws a line.
func (p PlotType) isLine() bool {
	switch p {
	case Lines, LinesPoints, XErrorLines, YErrorLines, Boxes:
		return true
	}
	return false
}

// isPoints reports whether the plot type draws point markers.
func (p PlotType) isPoints() bool {
	switch p {
	case Points, LinesPoints, XErrorLines, YErrorLines:
		return true
	}
	return false
}

// isFill reports whether the plot type is a fill style.
func (p PlotType) isFill() bool {
	return p == Boxes || p == FillBetween
}

// modeName returns the renderer's name for the plot type.
func (p PlotType) modeName() string {
	switch p {
	case Lines:
		return "lines"
	case Points:
		return "points"
	case LinesPoints:
		return "linespoints"
	case XErrorLines:
		return "xerrorlines"
	case YErrorLines:
		return "yerrorlines"
	case FillBetween:
		return "filledcurves"
	case Boxes:
		return "boxes"
	case Pm3D:
		return "pm3d"
	case Image:
		return "image"
	}
	return ""
}

// DashType selects the dash pattern of a plotted line.
type DashType int

const (
	Solid DashType = iota
	SmallDot
	Dot
	Dash
	DotDash
	DotDotDash
)

// lineTypeIndex maps the dash type to the renderer's lt index.
func (d DashType) lineTypeIndex() int {
	switch d {
	case SmallDot:
		return 0
	case Dot:
		return 2
	case Dash:
		return 3
	case DotDash:
		return 4
	case DotDotDash:
		return 5
	}
	return 1 // Solid
}

// FillRegionType selects which region a FillBetween plot fills.
type FillRegionType int

const (
	Above FillRegionType = iota
	Below
	Between
)

// Alignment selects horizontal text alignment.
type Alignment int

const (
	AlignLeft Alignment = iota
	AlignCenter
	AlignRight
)

// PlotOption is one styling directive for a plotted element. Option
// lists are ordered: when the same kind appears more than once, only
// the first entry is honored, so callers overriding a style must
// prepend.
type PlotOption interface {
	plotOption()
}

// Caption sets the legend entry for the element.
type Caption string

// LineWidth sets the width of a line-drawing element (default 1).
type LineWidth float64

// LineStyle sets the dash pattern of a line-drawing element.
type LineStyle DashType

// Color sets the primary color of the element.
type Color string

// BorderColor sets the border color of a filled line element.
type BorderColor string

// PointSymbol sets the marker character of a point-drawing element.
// The supported characters are ". + x * s S o O t T d D r R".
type PointSymbol rune

// PointSize sets the marker size of a point-drawing element.
type PointSize float64

// FillAlpha sets the fill opacity of a fill-style element. When absent
// the renderer's default density applies.
type FillAlpha float64

// FillRegion selects the filled region of a FillBetween element
// (default Between).
type FillRegion FillRegionType

func (Caption) plotOption() {}
func (LineWidth) plotOption() {}
func (LineStyle) plotOption() {}
func (Color) plotOption() {}
func (BorderColor) plotOption() {}
func (PointSymbol) plotOption() {}
func (PointSize) plotOption() {}
func (FillAlpha) plotOption() {}
func (FillRegion) plotOption() {}

// LabelOption is one styling directive for a title, axis label,
// free-standing label, or tick label. The first-match rule of PlotOption
// applies here as well.
type LabelOption interface {
	labelOption()
}

// TextOffset shifts the label text by the given character units.
type TextOffset struct {
	X, Y float64
}

// TextColor sets the label text color.
type TextColor string

// Font sets the label font face and size.
type Font struct {
	Name string
	Size float64
}

// Rotate rotates the label text by the given angle in degrees.
type Rotate float64

// TextAlign aligns the label text. Only honored for free-standing
// labels.
type TextAlign Alignment

// MarkerSymbol adds a marker next to a free-standing label. Marker color
// and size are only consulted when a symbol is present.
type MarkerSymbol rune

// MarkerColor sets the color of a free-standing label's marker.
type MarkerColor string

// MarkerSize sets the size of a free-standing label's marker.
type MarkerSize float64

func (TextOffset) labelOption() {}
func (TextColor) labelOption() {}
func (Font) labelOption() {}
func (Rotate) labelOption() {}
func (TextAlign) labelOption() {}
func (MarkerSymbol) labelOption() {}
func (MarkerColor) labelOption() {}
func (MarkerSize) labelOption() {}

// TickOption is one styling directive for the ticks of an axis.
type TickOption interface {
	tickOption()
}

// OnAxis places ticks on the axis (true) or on the border (false).
type OnAxis bool

// Mirror mirrors ticks on the opposite border.
type Mirror bool

// Inward points ticks into the plot area (true) or outward (false).
type Inward bool

// MinorScale scales the length of minor ticks (default 0.5).
type MinorScale float64

// MajorScale scales the length of major ticks (default 0.5).
type MajorScale float64

func (OnAxis) tickOption() {}
func (Mirror) tickOption() {}
func (Inward) tickOption() {}
func (MinorScale) tickOption() {}
func (MajorScale) tickOption() {}

// firstOption scans opts in order and returns the payload of the first
// entry of kind T. Non-matching entries and any later duplicates are
// ignored.
func firstOption[T any, O any](opts []O) (T, bool) {
	for _, o := range opts {
		if v, ok := any(o).(T); ok {
			return v, true
		}
	}
	var zero T
	return zero, false
}

// charToSymbol maps a marker character to the renderer's point-type
// index.
func charToSymbol(c rune) (int, error) {
	switch c {
	case '.':
		return 0, nil
	case '+':
		return 1, nil
	case 'x':
		return 2, nil
	case '*':
		return 3, nil
	case 's':
		return 4, nil
	case 'S':
		return 5, nil
	case 'o':
		return 6, nil
	case 'O':
		return 7, nil
	case 't':
		return 8, nil
	case 'T':
		return 9, nil
	case 'd':
		return 10, nil
	case 'D':
		return 11, nil
	case 'r':
		return 12, nil
	case 'R':
		return 13, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidSymbol, c)
}

// Coordinate is a position in one of the renderer's coordinate systems.
type Coordinate struct {
	system string
	value  float64
}

// Graph positions relative to the plot area, ranging from 0 to 1.
func Graph(v float64) Coordinate {
	return Coordinate{system: "graph", value: v}
}

// Axis positions in axis units.
func Axis(v float64) Coordinate {
	return Coordinate{system: "first", value: v}
}

func (c Coordinate) String() string {
	return c.system + " " + formatFloat(c.value)
}

// PaletteType selects the palette used for surface and image plots.
type PaletteType interface {
	paletteType()
}

// GrayPalette is a grayscale palette with the given gamma. Gamma must be
// positive.
type GrayPalette struct {
	Gamma float64
}

// FormulaPalette maps gray to RGB through the renderer's numbered color
// formulae. Each coefficient must lie in [-36, 36].
type FormulaPalette struct {
	R, G, B int
}

// CubeHelixPalette is a cube-helix palette. Saturation must be
// non-negative and Gamma positive.
type CubeHelixPalette struct {
	Start, Cycles, Saturation, Gamma float64
}

func (GrayPalette) paletteType() {}
func (FormulaPalette) paletteType() {}
func (CubeHelixPalette) paletteType() {}

// PaletteColor is one control point of a custom palette: a gray level
// mapped to an RGB color. All values range from 0 to 1, and gray levels
// must be non-decreasing across the sequence.
type PaletteColor struct {
	Gray, R, G, B float32
}

// TickPlacement controls the spacing of the major ticks of an axis and
// the number of minor ticks between them. A nil Increment lets the
// renderer choose the spacing automatically.
type TickPlacement struct {
	Increment *float64
	Minor     uint
}

// Tick is a single custom tick: a minor gridline marker or a major
// marker with an optional label. The label may contain a single C printf
// style floating point specifier which the renderer substitutes with the
// tick position.
type Tick struct {
	pos   float64
	label *string
	minor bool
}

// MinorTick creates a minor tick at the given position.
func MinorTick(pos float64) Tick {
	return Tick{pos: pos, minor: true}
}

// MajorTick creates an unlabeled major tick at the given position.
func MajorTick(pos float64) Tick {
	return Tick{pos: pos}
}

// MajorTickLabel creates a labeled major tick at the given position.
func MajorTickLabel(pos float64, label string) Tick {
	return Tick{pos: pos, label: &label}
}

// Fixed returns a pointer to v for setters that take "fixed or
// automatic" values, where nil selects automatic.
func Fixed(v float64) *float64 {
	return &v
}
