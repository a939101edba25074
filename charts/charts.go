// Package charts draws the synthetic sample series as PNG or SVG images, for
// clients without JavaScript and for the chart command.
package charts

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"sort"
	"strconv"
	"strings"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/LianHaeming/raw2hdr-site/explainer"
	"github.com/LianHaeming/raw2hdr-site/samples"
)

// ErrUnknownChart is returned for a chart name that has no renderer.
var ErrUnknownChart = errors.New("unknown chart")

// Format is an output image format.
type Format string

const (
	PNG Format = "png"
	SVG Format = "svg"
)

// ParseFormat accepts "png" or "svg".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "png":
		return PNG, nil
	case "svg":
		return SVG, nil
	}
	return "", fmt.Errorf("unsupported chart format %q", s)
}

// ContentType is the MIME type of the format.
func (f Format) ContentType() string {
	if f == SVG {
		return "image/svg+xml"
	}
	return "image/png"
}

func (f Format) provider() chart.RendererProvider {
	if f == SVG {
		return chart.SVG
	}
	return chart.PNG
}

var (
	sdrColor  = drawing.ColorFromHex("fbbf24")
	hdrColor  = drawing.ColorFromHex("38bdf8")
	gridColor = drawing.ColorFromHex("334155")
)

const (
	width  = 800
	height = 300
)

type renderFunc func(w io.Writer, f Format, noise *rand.Rand) error

var renderers = map[string]renderFunc{
	"histogram-sdr": func(w io.Writer, f Format, noise *rand.Rand) error {
		return histogram(w, f, samples.SDR, noise)
	},
	"histogram-hdr": func(w io.Writer, f Format, noise *rand.Rand) error {
		return histogram(w, f, samples.HDR, noise)
	},
	"transfer": func(w io.Writer, f Format, _ *rand.Rand) error { return transfer(w, f) },
	"nits":     func(w io.Writer, f Format, _ *rand.Rand) error { return nits(w, f) },
	"gamut":    func(w io.Writer, f Format, _ *rand.Rand) error { return gamut(w, f) },
}

func init() {
	for s := 0; s < explainer.StageCount; s++ {
		stage := s
		renderers["stage-"+strconv.Itoa(stage)] = func(w io.Writer, f Format, noise *rand.Rand) error {
			return stageBars(w, f, stage, noise)
		}
	}
}

// Names lists every chart that Render accepts, sorted.
func Names() []string {
	out := make([]string, 0, len(renderers))
	for name := range renderers {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Render draws the named chart to w.
func Render(w io.Writer, name string, f Format, noise *rand.Rand) error {
	fn, ok := renderers[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownChart, name)
	}
	if err := fn(w, f, noise); err != nil {
		return fmt.Errorf("render %s: %w", name, err)
	}
	return nil
}

func lineStyle(c drawing.Color, fill bool) chart.Style {
	st := chart.Style{
		StrokeColor: c,
		StrokeWidth: 2,
	}
	if fill {
		st.FillColor = c.WithAlpha(64)
	}
	return st
}

func histogram(w io.Writer, f Format, mode samples.Mode, noise *rand.Rand) error {
	s := samples.HistogramFor(mode, noise)
	c := hdrColor
	if mode == samples.SDR {
		c = sdrColor
	}
	ch := chart.Chart{
		Width:      width,
		Height:     height,
		Background: chart.Style{Padding: chart.Box{Top: 20, Left: 20, Right: 20, Bottom: 20}},
		XAxis: chart.XAxis{
			Name:  fmt.Sprintf("Luminance Level (0-%d)", mode.MaxLevel()),
			Range: &chart.ContinuousRange{Min: 0, Max: float64(mode.MaxLevel())},
		},
		YAxis: chart.YAxis{Name: "Frequency"},
		Series: []chart.Series{
			chart.ContinuousSeries{Name: s.Name, XValues: s.Xs(), YValues: s.Values(), Style: lineStyle(c, true)},
		},
	}
	return ch.Render(f.provider(), w)
}

func transfer(w io.Writer, f Format) error {
	sdr, hdr := samples.TransferCurves(samples.DefaultTransferSteps)
	ch := chart.Chart{
		Width:      width,
		Height:     height,
		Background: chart.Style{Padding: chart.Box{Top: 20, Left: 20, Right: 20, Bottom: 20}},
		XAxis:      chart.XAxis{Name: "Signal", Range: &chart.ContinuousRange{Min: 0, Max: 1}},
		YAxis:      chart.YAxis{Name: "Nits", Range: &chart.ContinuousRange{Min: 0, Max: samples.HDRPeakNits}},
		Series: []chart.Series{
			chart.ContinuousSeries{Name: "SDR (Gamma 2.4)", XValues: sdr.Xs(), YValues: sdr.Values(), Style: lineStyle(sdrColor, false)},
			chart.ContinuousSeries{Name: "HDR (PQ, illustrative)", XValues: hdr.Xs(), YValues: hdr.Values(), Style: lineStyle(hdrColor, false)},
		},
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	return ch.Render(f.provider(), w)
}

func nits(w io.Writer, f Format) error {
	sdr, hdr := samples.NitDistribution()
	ch := chart.Chart{
		Width:      width,
		Height:     height,
		Background: chart.Style{Padding: chart.Box{Top: 20, Left: 20, Right: 20, Bottom: 20}},
		XAxis:      chart.XAxis{Name: "Brightness"},
		YAxis:      chart.YAxis{Name: "Pixels"},
		Series: []chart.Series{
			chart.ContinuousSeries{Name: "SDR", XValues: sdr.Xs(), YValues: sdr.Values(), Style: lineStyle(sdrColor, true)},
			chart.ContinuousSeries{Name: "HDR", XValues: hdr.Xs(), YValues: hdr.Values(), Style: lineStyle(hdrColor, true)},
		},
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	return ch.Render(f.provider(), w)
}

// gamut draws the sRGB and Rec.2020 triangles on the CIE xy plane.
func gamut(w io.Writer, f Format) error {
	srgb, rec := samples.Gamut()
	white := samples.WhitePointD65
	ch := chart.Chart{
		Width:      height * 2,
		Height:     height * 2,
		Background: chart.Style{Padding: chart.Box{Top: 20, Left: 20, Right: 20, Bottom: 20}},
		XAxis:      chart.XAxis{Name: "x", Range: &chart.ContinuousRange{Min: 0, Max: 0.8}},
		YAxis:      chart.YAxis{Name: "y", Range: &chart.ContinuousRange{Min: 0, Max: 0.9}},
		Series: []chart.Series{
			chart.ContinuousSeries{Name: rec.Name, XValues: rec.Xs(), YValues: rec.Values(), Style: lineStyle(hdrColor, true)},
			chart.ContinuousSeries{Name: srgb.Name, XValues: srgb.Xs(), YValues: srgb.Values(), Style: lineStyle(sdrColor, true)},
			chart.ContinuousSeries{
				Name:    "D65",
				XValues: []float64{white.X},
				YValues: []float64{white.Y},
				Style:   chart.Style{StrokeWidth: chart.Disabled, DotWidth: 4, DotColor: drawing.ColorWhite},
			},
		},
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	return ch.Render(f.provider(), w)
}

func stageBars(w io.Writer, f Format, stage int, noise *rand.Rand) error {
	s := samples.StageBars(stage, noise)
	bars := make([]chart.Value, len(s.Points))
	for i, p := range s.Points {
		bars[i] = chart.Value{
			Value: p.Y,
			Style: chart.Style{FillColor: hdrColor, StrokeColor: gridColor, StrokeWidth: 1},
		}
	}
	bc := chart.BarChart{
		Title:      explainer.Descriptor(stage).HistogramLabel,
		Width:      width,
		Height:     height,
		BarWidth:   14,
		BarSpacing: 6,
		YAxis:      chart.YAxis{Range: &chart.ContinuousRange{Min: 0, Max: 100}},
		Bars:       bars,
	}
	return bc.Render(f.provider(), w)
}
