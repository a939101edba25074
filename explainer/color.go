package explainer

import (
	"fmt"
	"math"
)

// Color is a linear RGB triple. Components may exceed 1 after a boost.
type Color struct {
	R float64 `json:"r"`
	G float64 `json:"g"`
	B float64 `json:"b"`
}

// Lerp moves c toward to by fraction k.
func (c Color) Lerp(to Color, k float64) Color {
	return Color{
		R: c.R + (to.R-c.R)*k,
		G: c.G + (to.G-c.G)*k,
		B: c.B + (to.B-c.B)*k,
	}
}

func (c Color) Scale(f float64) Color {
	return Color{R: c.R * f, G: c.G * f, B: c.B * f}
}

// OffsetHSL shifts hue, saturation and lightness. Hue wraps; saturation and
// lightness are clamped to [0, 1].
func (c Color) OffsetHSL(dh, ds, dl float64) Color {
	h, s, l := c.hsl()
	return fromHSL(h+dh, s+ds, l+dl)
}

// Hex renders the color as #rrggbb with components clamped to [0, 1].
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", to8(c.R), to8(c.G), to8(c.B))
}

func to8(v float64) uint8 {
	return uint8(math.Round(clamp01(v) * 255))
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func (c Color) hsl() (h, s, l float64) {
	max := math.Max(c.R, math.Max(c.G, c.B))
	min := math.Min(c.R, math.Min(c.G, c.B))
	l = (min + max) / 2
	if min == max {
		return 0, 0, l
	}
	delta := max - min
	if l <= 0.5 {
		s = delta / (max + min)
	} else {
		s = delta / (2 - max - min)
	}
	switch max {
	case c.R:
		h = (c.G - c.B) / delta
		if c.G < c.B {
			h += 6
		}
	case c.G:
		h = (c.B-c.R)/delta + 2
	default:
		h = (c.R-c.G)/delta + 4
	}
	return h / 6, s, l
}

func fromHSL(h, s, l float64) Color {
	h = math.Mod(h, 1)
	if h < 0 {
		h++
	}
	s = clamp01(s)
	l = clamp01(l)
	if s == 0 {
		return Color{R: l, G: l, B: l}
	}
	var p, q float64
	if l <= 0.5 {
		p = l * (1 + s)
	} else {
		p = l + s - l*s
	}
	q = 2*l - p
	return Color{
		R: hueToRGB(q, p, h+1.0/3),
		G: hueToRGB(q, p, h),
		B: hueToRGB(q, p, h-1.0/3),
	}
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*6*(2.0/3-t)
	}
	return p
}
