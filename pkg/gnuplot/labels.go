package gnuplot

import (
	"bytes"
	"fmt"
)

// labelKind distinguishes the label surfaces sharing one decoration
// renderer.
type labelKind int

const (
	xLabel labelKind = iota
	yLabel
	zLabel
	cbLabel
	titleLabel
	positionedLabel
	ticksLabel
)

// labelTarget identifies what a set of label options decorates. The
// coordinates are only meaningful for positioned (free-standing) labels.
type labelTarget struct {
	kind labelKind
	x, y Coordinate
}

// keyword returns the directive keyword for the label kind. Ticks have
// no keyword of their own; their options decorate a tick directive.
func (t labelTarget) keyword() (string, error) {
	switch t.kind {
	case xLabel:
		return "xlabel", nil
	case yLabel:
		return "ylabel", nil
	case zLabel:
		return "zlabel", nil
	case cbLabel:
		return "cblabel", nil
	case titleLabel:
		return "title", nil
	case positionedLabel:
		return "label", nil
	}
	return "", fmt.Errorf("%w: %d", ErrInvalidLabelKind, t.kind)
}

// writeLabelOptions appends label decorations in fixed order:
// positional anchor (positioned labels only), text offset, text color,
// font, rotation, and for positioned labels the marker symbol (which
// gates marker color and size) and text alignment.
func writeLabelOptions(buf *bytes.Buffer, target labelTarget, options []LabelOption) error {
	if target.kind == positionedLabel {
		fmt.Fprintf(buf, " at %s,%s front", target.x, target.y)
	}

	if offset, ok := firstOption[TextOffset](options); ok {
		fmt.Fprintf(buf, " offset character %s,%s", formatFloat(offset.X), formatFloat(offset.Y))
	}
	if color, ok := firstOption[TextColor](options); ok {
		fmt.Fprintf(buf, " tc rgb \"%s\"", string(color))
	}
	if font, ok := firstOption[Font](options); ok {
		fmt.Fprintf(buf, " font \"%s,%s\"", font.Name, formatFloat(font.Size))
	}
	if angle, ok := firstOption[Rotate](options); ok {
		fmt.Fprintf(buf, " rotate by %s", formatFloat(float64(angle)))
	}

	if target.kind != positionedLabel {
		return nil
	}

	havePoint := false
	if symbol, ok := firstOption[MarkerSymbol](options); ok {
		idx, err := charToSymbol(rune(symbol))
		if err != nil {
			return newArgumentError("Label", err)
		}
		fmt.Fprintf(buf, " point pt %d", idx)
		havePoint = true
	}
	if havePoint {
		if color, ok := firstOption[MarkerColor](options); ok {
			fmt.Fprintf(buf, " lc rgb \"%s\"", string(color))
		}
		if size, ok := firstOption[MarkerSize](options); ok {
			fmt.Fprintf(buf, " ps %s", formatFloat(float64(size)))
		}
	}

	if align, ok := firstOption[TextAlign](options); ok {
		switch Alignment(align) {
		case AlignLeft:
			buf.WriteString(" left")
		case AlignRight:
			buf.WriteString(" right")
		default:
			buf.WriteString(" center")
		}
	}
	return nil
}
