package page

import "github.com/rivo/uniseg"

// Box is the horizontal geometry of a rendered element, in pixels.
type Box struct {
	Left  int
	Width int
}

// Measurer reports the rendered width of a navigation label.
type Measurer interface {
	Measure(label string) int
}

// TextMeasurer approximates label width from its terminal cell width, so
// wide (e.g. CJK) characters take two cells.
type TextMeasurer struct {
	CharWidth int
	Padding   int
}

// Measure implements Measurer.
func (m TextMeasurer) Measure(label string) int {
	return uniseg.StringWidth(label)*m.CharWidth + 2*m.Padding
}

// Layout places navigation entries left to right.
type Layout struct {
	Measurer Measurer
	Gap      int
}

// DefaultLayout matches the padding of the built-in shell's buttons.
func DefaultLayout() Layout {
	return Layout{Measurer: TextMeasurer{CharWidth: 9, Padding: 16}}
}

// Boxes returns one box per label, in order.
func (l Layout) Boxes(labels []string) []Box {
	boxes := make([]Box, len(labels))
	left := 0
	for i, label := range labels {
		width := l.Measurer.Measure(label)
		boxes[i] = Box{Left: left, Width: width}
		left += width + l.Gap
	}
	return boxes
}
