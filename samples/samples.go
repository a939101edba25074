// Package samples fabricates the illustrative data series behind the site's
// charts. None of it is measured; shapes are chosen to explain an idea.
//
// Generators take an optional *rand.Rand for the jitter the charts use to
// look organic. A nil source pins every jitter term at its midpoint.
package samples

import (
	"math/rand/v2"
	"strings"
)

// Point is one sample of a series.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Series is a named, freshly allocated run of points.
type Series struct {
	Name   string  `json:"name"`
	Points []Point `json:"points"`
}

// Mode selects the SDR or HDR rendition of a chart.
type Mode string

const (
	SDR Mode = "SDR"
	HDR Mode = "HDR"
)

// ParseMode accepts "sdr"/"hdr" in any case and defaults to HDR.
func ParseMode(s string) Mode {
	if strings.EqualFold(s, string(SDR)) {
		return SDR
	}
	return HDR
}

// Slug is the lower-case form used in URLs.
func (m Mode) Slug() string { return strings.ToLower(string(m)) }

// MaxLevel is the top code value for the mode: 255 for 8-bit, 1023 for 10-bit.
func (m Mode) MaxLevel() int {
	if m == SDR {
		return 255
	}
	return 1023
}

// uniform returns a value in [0, 1), or the midpoint 0.5 when no noise
// source is set.
func uniform(r *rand.Rand) float64 {
	if r == nil {
		return 0.5
	}
	return r.Float64()
}

// Values returns the Y values of a series in order.
func (s Series) Values() []float64 {
	out := make([]float64, len(s.Points))
	for i, p := range s.Points {
		out[i] = p.Y
	}
	return out
}

// Xs returns the X values of a series in order.
func (s Series) Xs() []float64 {
	out := make([]float64, len(s.Points))
	for i, p := range s.Points {
		out[i] = p.X
	}
	return out
}
