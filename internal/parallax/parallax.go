// Package parallax derives the decorative background offsets from the page's
// vertical scroll position.
//
// Every value is a pure function of the scroll offset: either linear
// (offset * coefficient) or periodic (amplitude * sin/cos(offset * coefficient
// + phase)). The same policy is published as a layer table so the browser
// script and the server agree on every coefficient.
package parallax

import (
	"fmt"
	"math"
	"strconv"
)

// Point is a two-dimensional translation in pixels.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Offsets is the full set of decorative translations for one scroll offset.
type Offsets struct {
	Background float64 `json:"background"`
	PanelA     float64 `json:"panel_a"`
	PanelB     float64 `json:"panel_b"`
	Orbit1     Point   `json:"orbit_1"`
	Orbit2     Point   `json:"orbit_2"`
	Particle1  float64 `json:"particle_1"`
	Particle2  float64 `json:"particle_2"`
	Grid       float64 `json:"grid"`
	LineA      float64 `json:"line_a"`
	LineB      float64 `json:"line_b"`
}

// ComputeOffsets evaluates every layer for the given scroll offset. It is
// defined for all reals, including negative offsets from elastic scrolling.
func ComputeOffsets(offset float64) Offsets {
	return Offsets{
		Background: offset * 0.2,
		PanelA:     offset * 0.1,
		PanelB:     offset * -0.05,
		Orbit1:     orbit(offset, 0.001, 0, 20),
		Orbit2:     orbit(offset, 0.002, 1, 15),
		Particle1:  math.Sin(offset*0.002) * 30,
		Particle2:  math.Sin(offset*0.001+2) * 40,
		Grid:       offset * 0.2,
		LineA:      offset * 0.1,
		LineB:      offset * -0.15,
	}
}

func orbit(offset, coefficient, phase, amplitude float64) Point {
	angle := offset*coefficient + phase
	return Point{
		X: math.Sin(angle) * amplitude,
		Y: math.Cos(angle) * amplitude,
	}
}

// Kind selects how a layer turns the scroll offset into a translation.
type Kind string

const (
	// KindLinear translates vertically by offset * Coefficient.
	KindLinear Kind = "linear"
	// KindOrbit circles around the resting position with radius Amplitude.
	KindOrbit Kind = "orbit"
	// KindFloat bobs vertically by sin(offset * Coefficient + Phase) * Amplitude.
	KindFloat Kind = "float"
)

// Layer describes one decorative element of the background.
type Layer struct {
	ID          string
	Kind        Kind
	Coefficient float64
	Phase       float64
	Amplitude   float64
	// Rotate is a fixed rotation in degrees applied after the translation.
	Rotate float64
}

// BackgroundLayer is the layer that carries the profile's background image.
const BackgroundLayer = "background"

var layers = []Layer{
	{ID: BackgroundLayer, Kind: KindLinear, Coefficient: 0.2},
	{ID: "panel-a", Kind: KindLinear, Coefficient: 0.1},
	{ID: "panel-b", Kind: KindLinear, Coefficient: -0.05},
	{ID: "orbit-1", Kind: KindOrbit, Coefficient: 0.001, Amplitude: 20},
	{ID: "orbit-2", Kind: KindOrbit, Coefficient: 0.002, Phase: 1, Amplitude: 15},
	{ID: "grid", Kind: KindLinear, Coefficient: 0.2},
	{ID: "particle-1", Kind: KindFloat, Coefficient: 0.002, Amplitude: 30},
	{ID: "particle-2", Kind: KindFloat, Coefficient: 0.001, Phase: 2, Amplitude: 40},
	{ID: "line-a", Kind: KindLinear, Coefficient: 0.1, Rotate: 30},
	{ID: "line-b", Kind: KindLinear, Coefficient: -0.15, Rotate: -20},
}

// Layers returns the background layers in paint order.
func Layers() []Layer {
	out := make([]Layer, len(layers))
	copy(out, layers)
	return out
}

// Translate returns the layer's translation for offset.
func (l Layer) Translate(offset float64) Point {
	switch l.Kind {
	case KindOrbit:
		return orbit(offset, l.Coefficient, l.Phase, l.Amplitude)
	case KindFloat:
		return Point{Y: math.Sin(offset*l.Coefficient+l.Phase) * l.Amplitude}
	default:
		return Point{Y: offset * l.Coefficient}
	}
}

// Transform renders the layer's CSS transform for offset.
func (l Layer) Transform(offset float64) string {
	p := l.Translate(offset)
	var t string
	switch l.Kind {
	case KindOrbit:
		t = fmt.Sprintf("translate(%spx, %spx)", formatPx(p.X), formatPx(p.Y))
	case KindFloat:
		t = fmt.Sprintf("translate3d(0, %spx, 0)", formatPx(p.Y))
	default:
		t = fmt.Sprintf("translateY(%spx)", formatPx(p.Y))
	}
	if l.Rotate != 0 {
		t += fmt.Sprintf(" rotate(%sdeg)", formatPx(l.Rotate))
	}
	return t
}

func formatPx(v float64) string {
	// -0 would otherwise print as "-0".
	if v == 0 {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
