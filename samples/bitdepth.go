package samples

import (
	"math"
	"strconv"
)

const (
	sdrSteps = 256
	hdrSteps = 1024

	MinZoom = 1.0
	MaxZoom = 8.0
)

// Band is one flat-coloured run of a quantised gradient. Start and Width are
// fractions of the gradient's width; Level is the grey value in 0..255.
type Band struct {
	Start float64 `json:"start"`
	Width float64 `json:"width"`
	Level uint8   `json:"level"`
}

// Gradient is a black-to-white ramp as a display of the given bit depth
// would draw it.
type Gradient struct {
	Mode   Mode    `json:"mode"`
	Zoom   float64 `json:"zoom"`
	Steps  int     `json:"steps"`
	Smooth bool    `json:"smooth"`
	Bands  []Band  `json:"bands,omitempty"`
	Label  string  `json:"label"`
}

// ClampZoom keeps the contrast-stretch factor within [MinZoom, MaxZoom].
func ClampZoom(z float64) float64 {
	if math.IsNaN(z) || z < MinZoom {
		return MinZoom
	}
	if z > MaxZoom {
		return MaxZoom
	}
	return z
}

// BitDepthSteps is the number of distinct grey steps visible across the
// ramp. Stretching an 8-bit ramp by zoom leaves 256/(zoom*4) visible steps,
// which exaggerates the banding enough to see on an 8-bit screen; 10-bit
// keeps all 1024.
func BitDepthSteps(mode Mode, zoom float64) int {
	if mode != SDR {
		return hdrSteps
	}
	return int(sdrSteps / (ClampZoom(zoom) * 4))
}

// BitDepthBands builds the ramp. SDR ramps come back as discrete bands; HDR
// ramps are marked smooth and left to the browser's gradient fill.
func BitDepthBands(mode Mode, zoom float64) Gradient {
	zoom = ClampZoom(zoom)
	steps := BitDepthSteps(mode, zoom)
	g := Gradient{Mode: mode, Zoom: zoom, Steps: steps}
	if mode != SDR {
		g.Smooth = true
		g.Label = "10-Bit (HDR) - Smooth Transition"
		return g
	}

	g.Label = "8-Bit (Rec.709) - ~" + strconv.Itoa(steps) + " steps visible"
	g.Bands = make([]Band, steps)
	w := 1 / float64(steps)
	for i := range g.Bands {
		g.Bands[i] = Band{
			Start: float64(i) * w,
			Width: w,
			Level: uint8(math.Floor(float64(i) / float64(steps) * 255)),
		}
	}
	return g
}
