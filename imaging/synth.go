package imaging

import (
	"image"
	"image/color"
	"math"
)

// Synthesize paints a stand-in hero photo: a dusk sky with a bright sun
// over layered hills. It has deep shadows and a near-clipping highlight so
// the two looks differ visibly.
func Synthesize(w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	sunX, sunY := float64(w)*0.68, float64(h)*0.38
	sunR := float64(h) * 0.09

	for y := 0; y < h; y++ {
		fy := float64(y) / float64(h)
		for x := 0; x < w; x++ {
			fx := float64(x) / float64(w)

			// sky: deep blue at the top warming to orange at the horizon
			r := 0.10 + 0.85*fy
			g := 0.15 + 0.45*fy
			b := 0.45 - 0.25*fy

			dx, dy := float64(x)-sunX, float64(y)-sunY
			d := math.Hypot(dx, dy)
			if d < sunR {
				r, g, b = 1, 0.97, 0.85
			} else {
				glow := math.Exp(-(d - sunR) / (sunR * 1.5))
				r += glow * 0.6
				g += glow * 0.45
				b += glow * 0.2
			}

			far := 0.62 + 0.05*math.Sin(fx*9)
			near := 0.75 + 0.08*math.Sin(fx*5+1.3)
			switch {
			case fy > near:
				r, g, b = 0.05, 0.09+0.05*(1-fy), 0.06
			case fy > far:
				r, g, b = 0.18, 0.22, 0.30
			}

			img.SetRGBA(x, y, color.RGBA{R: to8(r), G: to8(g), B: to8(b), A: 255})
		}
	}
	return img
}

func to8(v float64) uint8 {
	return uint8(clamp01(v)*255 + 0.5)
}
