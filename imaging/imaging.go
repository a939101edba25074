// Package imaging produces the before/after renditions of the hero photo:
// a flat SDR look and a vivid HDR look, scaled for the requesting client.
package imaging

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	_ "image/png"
	"io"
	"os"
	"strings"

	"github.com/nfnt/resize"
)

// Look is one of the two hero renditions.
type Look string

const (
	SDRFlat  Look = "sdr"
	HDRVivid Look = "hdr"
)

// ErrUnknownLook is returned by ParseLook for anything but sdr or hdr.
var ErrUnknownLook = errors.New("unknown look")

const (
	MinWidth     = 64
	MaxWidth     = 1920
	DefaultWidth = 1280
	JPEGQuality  = 85
)

// ParseLook accepts "sdr" or "hdr", case-insensitively.
func ParseLook(s string) (Look, error) {
	switch Look(strings.ToLower(s)) {
	case SDRFlat:
		return SDRFlat, nil
	case HDRVivid:
		return HDRVivid, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownLook, s)
}

// Label is the caption shown over the rendition.
func (l Look) Label() string {
	if l == SDRFlat {
		return "Linear RAW (SDR)"
	}
	return "HDR Magic (2000 nits)"
}

// Filter is a chain of CSS-style colour filters, applied in field order:
// grayscale, saturate, contrast, brightness.
type Filter struct {
	Grayscale  float64
	Saturate   float64
	Contrast   float64
	Brightness float64
}

// FilterFor returns the filter chain of a look. The flat look mutes and
// darkens; the vivid look lifts contrast, colour and light.
func FilterFor(l Look) Filter {
	if l == SDRFlat {
		return Filter{Grayscale: 0.3, Saturate: 1, Contrast: 0.8, Brightness: 0.7}
	}
	return Filter{Grayscale: 0, Saturate: 1.2, Contrast: 1.1, Brightness: 1.1}
}

// Apply maps one colour through the filter chain. Channels are in [0,1].
func (f Filter) Apply(r, g, b float64) (float64, float64, float64) {
	r, g, b = saturate(r, g, b, 1-f.Grayscale)
	r, g, b = saturate(r, g, b, f.Saturate)
	r, g, b = contrast(r, f.Contrast), contrast(g, f.Contrast), contrast(b, f.Contrast)
	return clamp01(r * f.Brightness), clamp01(g * f.Brightness), clamp01(b * f.Brightness)
}

// saturate uses the filter-effects luminance matrix; s=0 is fully grey.
func saturate(r, g, b, s float64) (float64, float64, float64) {
	if s == 1 {
		return r, g, b
	}
	return clamp01((0.213+0.787*s)*r + (0.715-0.715*s)*g + (0.072-0.072*s)*b),
		clamp01((0.213-0.213*s)*r + (0.715+0.285*s)*g + (0.072-0.072*s)*b),
		clamp01((0.213-0.213*s)*r + (0.715-0.715*s)*g + (0.072+0.928*s)*b)
}

func contrast(v, c float64) float64 {
	return clamp01((v-0.5)*c + 0.5)
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

// ClampWidth keeps a requested width within [MinWidth, MaxWidth]; zero or
// negative asks for DefaultWidth.
func ClampWidth(w int) int {
	switch {
	case w <= 0:
		return DefaultWidth
	case w < MinWidth:
		return MinWidth
	case w > MaxWidth:
		return MaxWidth
	}
	return w
}

// Render scales src to width (keeping aspect) and applies the look.
func Render(src image.Image, l Look, width int) *image.RGBA {
	width = ClampWidth(width)
	scaled := src
	if src.Bounds().Dx() != width {
		scaled = resize.Resize(uint(width), 0, src, resize.Lanczos3)
	}

	f := FilterFor(l)
	b := scaled.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.RGBAModel.Convert(scaled.At(x, y)).(color.RGBA)
			r, g, bl := f.Apply(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255)
			out.SetRGBA(x-b.Min.X, y-b.Min.Y, color.RGBA{
				R: uint8(r*255 + 0.5),
				G: uint8(g*255 + 0.5),
				B: uint8(bl*255 + 0.5),
				A: 255,
			})
		}
	}
	return out
}

// Encode writes the rendition as JPEG.
func Encode(w io.Writer, src image.Image, l Look, width int) error {
	if err := jpeg.Encode(w, Render(src, l, width), &jpeg.Options{Quality: JPEGQuality}); err != nil {
		return fmt.Errorf("encode %s hero: %w", l, err)
	}
	return nil
}

// Load decodes a JPEG or PNG from disk.
func Load(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open hero: %w", err)
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode hero %s: %w", path, err)
	}
	return img, nil
}
