package samples

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seeded() *rand.Rand {
	return rand.New(rand.NewPCG(1, 2))
}

func TestHistogram_Shape(t *testing.T) {
	h := Histogram(nil)
	require.Len(t, h.Points, HistogramLevels)

	peak := Peak(h.Points)
	assert.InDelta(t, 300, peak.X, 5)

	// Highlight bump is smaller than the shadow bump.
	assert.Less(t, h.Points[700].Y, h.Points[300].Y)
	assert.Greater(t, h.Points[700].Y, h.Points[500].Y)

	for _, p := range Histogram(seeded()).Points {
		assert.GreaterOrEqual(t, p.Y, 0.0)
	}
}

func TestHistogram_FreshSeriesEachCall(t *testing.T) {
	a := Histogram(nil)
	b := Histogram(nil)
	a.Points[0].Y = -1
	assert.NotEqual(t, a.Points[0].Y, b.Points[0].Y)
}

func TestHistogramFor(t *testing.T) {
	hdr := HistogramFor(HDR, nil)
	assert.Len(t, hdr.Points, 1024)

	sdr := HistogramFor(SDR, nil)
	require.Len(t, sdr.Points, 256)
	full := Histogram(nil)
	want := (full.Points[4].Y + full.Points[5].Y + full.Points[6].Y + full.Points[7].Y) / 4
	assert.InDelta(t, want, sdr.Points[1].Y, 1e-9)
	assert.Equal(t, 1.0, sdr.Points[1].X)
}

func TestDownsample(t *testing.T) {
	pts := []Point{{0, 1}, {1, 3}, {2, 5}, {3, 7}, {4, 100}}
	out := Downsample(pts, 2)
	assert.Equal(t, []Point{{0, 2}, {1, 6}}, out)
	assert.Equal(t, pts, Downsample(pts, 1))
}

func TestTransferCurves(t *testing.T) {
	sdr, hdr := TransferCurves(DefaultTransferSteps)
	require.Len(t, sdr.Points, 101)
	require.Len(t, hdr.Points, 101)

	assert.Equal(t, 0.0, sdr.Points[0].Y)
	assert.InDelta(t, 100, sdr.Points[100].Y, 1e-9)
	assert.InDelta(t, 1000, hdr.Points[100].Y, 1e-9)
	assert.InDelta(t, 0.5, sdr.Points[50].X, 1e-12)

	// x^4 sits below x^2.4 relative to its own peak: PQ spends its codes
	// on the shadows and saves the top for highlights.
	assert.Less(t, hdr.Points[50].Y/1000, sdr.Points[50].Y/100)

	s2, _ := TransferCurves(0)
	assert.Len(t, s2.Points, DefaultTransferSteps+1)
}

func TestStageBars_HardClip(t *testing.T) {
	for _, noise := range []*rand.Rand{nil, seeded()} {
		bars := StageBars(5, noise)
		require.Len(t, bars.Points, StageBarCount)
		for i, p := range bars.Points {
			if float64(i) > 0.9*StageBarCount {
				assert.Less(t, p.Y, 5.0, "bar %d should be clipped", i)
			} else {
				assert.GreaterOrEqual(t, p.Y, 50.0, "bar %d", i)
				assert.LessOrEqual(t, p.Y, 70.0, "bar %d", i)
			}
		}
	}
}

func TestStageBars_Shapes(t *testing.T) {
	flat := StageBars(0, seeded())
	for _, p := range flat.Points {
		assert.GreaterOrEqual(t, p.Y, 2.0)
		assert.Less(t, p.Y, 7.0)
	}
	assert.Equal(t, StageBars(1, nil), StageBars(0, nil))

	linear := StageBars(2, nil)
	assert.Greater(t, linear.Points[0].Y, linear.Points[10].Y)
	assert.Equal(t, 5.0, linear.Points[31].Y)

	log := StageBars(3, nil)
	assert.Greater(t, log.Points[16].Y, log.Points[0].Y)
	assert.Greater(t, log.Points[16].Y, log.Points[31].Y)

	// HDR has no jitter, so it is identical with or without noise.
	assert.Equal(t, StageBars(4, nil), StageBars(4, seeded()))
	assert.InDelta(t, 0.7*60+5, StageBars(4, nil).Points[0].Y, 1e-9)
}

func TestNitDistribution(t *testing.T) {
	sdr, hdr := NitDistribution()
	require.Len(t, sdr.Points, 10)
	require.Len(t, hdr.Points, 10)
	assert.Equal(t, 80.0, Peak(sdr.Points).Y)
	assert.Equal(t, 100.0, Peak(hdr.Points).X)
	for _, p := range sdr.Points {
		if p.X > 80 {
			assert.Zero(t, p.Y)
		}
	}
}

func TestBitDepth(t *testing.T) {
	assert.Equal(t, 64, BitDepthSteps(SDR, 1))
	assert.Equal(t, 8, BitDepthSteps(SDR, 8))
	assert.Equal(t, 8, BitDepthSteps(SDR, 50))
	assert.Equal(t, 64, BitDepthSteps(SDR, 0))
	assert.Equal(t, 1024, BitDepthSteps(HDR, 3))

	g := BitDepthBands(SDR, 2)
	require.Len(t, g.Bands, 32)
	assert.False(t, g.Smooth)
	assert.Equal(t, uint8(0), g.Bands[0].Level)
	assert.Equal(t, uint8(247), g.Bands[31].Level)
	assert.Equal(t, "8-Bit (Rec.709) - ~32 steps visible", g.Label)

	h := BitDepthBands(HDR, 2)
	assert.True(t, h.Smooth)
	assert.Empty(t, h.Bands)
}

func TestParseMode(t *testing.T) {
	assert.Equal(t, SDR, ParseMode("sdr"))
	assert.Equal(t, SDR, ParseMode("SDR"))
	assert.Equal(t, HDR, ParseMode("hdr"))
	assert.Equal(t, HDR, ParseMode(""))
	assert.Equal(t, 255, SDR.MaxLevel())
	assert.Equal(t, 1023, HDR.MaxLevel())
	assert.Equal(t, "sdr", SDR.Slug())
}

func TestGamut(t *testing.T) {
	srgb, rec := Gamut()
	require.Len(t, srgb.Points, 4)
	require.Len(t, rec.Points, 4)
	assert.Equal(t, srgb.Points[0], srgb.Points[3], "outline is closed")
	assert.Equal(t, "Rec.2020", rec.Name)

	// Rec.2020 covers well over half again the area of sRGB.
	assert.Greater(t, TriangleArea(rec), 1.5*TriangleArea(srgb))

	for _, p := range SRGBPrimaries {
		assert.True(t, Contains(rec, p), "sRGB primary %v outside Rec.2020", p)
	}
	assert.True(t, Contains(srgb, WhitePointD65))
	assert.False(t, Contains(srgb, Rec2020Primaries[1]))

	// Fresh series each call.
	srgb.Points[0].X = 0
	again, _ := Gamut()
	assert.Equal(t, 0.64, again.Points[0].X)
}
