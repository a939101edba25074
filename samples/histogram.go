package samples

import (
	"math"
	"math/rand/v2"
)

// HistogramLevels is the 10-bit domain of the luminance histogram.
const HistogramLevels = 1024

// Histogram is a two-peak Gaussian mixture over 0..1023 that reads like a
// photo's luminance histogram: a bump in the shadows near 300 and a smaller
// one in the highlights near 700, with a little jitter, floored at zero.
func Histogram(noise *rand.Rand) Series {
	pts := make([]Point, HistogramLevels)
	for i := range pts {
		x := float64(i)
		y1 := math.Exp(-math.Pow(x-300, 2) / 20000)
		y2 := math.Exp(-math.Pow(x-700, 2)/15000) * 0.7
		jitter := (uniform(noise) - 0.5) * 0.05
		pts[i] = Point{X: x, Y: math.Max(0, y1+y2+jitter) * 100}
	}
	return Series{Name: "luminance", Points: pts}
}

// HistogramFor renders the histogram for a display mode. HDR keeps all 1024
// levels; SDR averages each run of four into 256 bins, which is what 8-bit
// quantisation does to the same scene.
func HistogramFor(mode Mode, noise *rand.Rand) Series {
	full := Histogram(noise)
	if mode != SDR {
		full.Name = "10-bit"
		return full
	}
	return Series{Name: "8-bit", Points: Downsample(full.Points, 4)}
}

// Downsample averages consecutive groups of n points. The X of each output
// point is its bin index.
func Downsample(pts []Point, n int) []Point {
	if n <= 1 {
		return append([]Point(nil), pts...)
	}
	bins := len(pts) / n
	out := make([]Point, bins)
	for i := range out {
		var sum float64
		for j := 0; j < n; j++ {
			sum += pts[i*n+j].Y
		}
		out[i] = Point{X: float64(i), Y: sum / float64(n)}
	}
	return out
}

// Peak returns the point with the highest Y. It returns the zero Point for
// an empty series.
func Peak(pts []Point) Point {
	var best Point
	for i, p := range pts {
		if i == 0 || p.Y > best.Y {
			best = p
		}
	}
	return best
}
