package explainer

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func settledFrame(stage int) Frame {
	f := InitialFrame()
	for i := 0; i < 600; i++ {
		f = ComputeFrame(stage, f, 16*time.Millisecond)
	}
	return f
}

func TestBuildScene_LayerShape(t *testing.T) {
	sc := BuildScene(4, settledFrame(4))
	require.Len(t, sc.Layers, 3)
	for _, l := range sc.Layers {
		assert.Len(t, l.Instances, GridSize*GridSize)
		assert.Empty(t, l.Label)
	}
	assert.False(t, sc.Photons)
	assert.False(t, sc.BeamVisible)
}

func TestBuildScene_DemosaicSplitsChannels(t *testing.T) {
	f := settledFrame(1)
	sc := BuildScene(1, f)

	sep := f.Visual.LayerSeparation
	assert.InDelta(t, 2.5, sep, 1e-3)
	assert.Equal(t, "R-Layer", sc.Layers[0].Label)

	red, green, blue := sc.Layers[0].Instances[7], sc.Layers[1].Instances[7], sc.Layers[2].Instances[7]
	assert.Equal(t, sep, red.Position.Y)
	assert.Equal(t, 0.0, green.Position.Y)
	assert.Equal(t, -sep, blue.Position.Y)

	assert.Zero(t, red.Color.G)
	assert.Zero(t, red.Color.B)
	assert.Zero(t, green.Color.R)
	assert.InDelta(t, f.Pixels[7].G*0.8+0.1, green.Color.G, 1e-12)
	assert.Zero(t, blue.Color.R)
}

func TestBuildScene_HeightsFollowMultiplier(t *testing.T) {
	f := settledFrame(4)
	sc := BuildScene(4, f)
	for i, inst := range sc.Layers[0].Instances {
		assert.InDelta(t, pattern[i].Height*f.Visual.HeightMultiplier, inst.Scale.Y, 1e-12)
	}
}

func TestBuildScene_GridIsCentred(t *testing.T) {
	sc := BuildScene(0, InitialFrame())
	first := sc.Layers[1].Instances[0].Position
	last := sc.Layers[1].Instances[GridSize*GridSize-1].Position
	assert.InDelta(t, -GridSize*Spacing/2, first.X, 1e-12)
	assert.InDelta(t, (GridSize-1)*Spacing-GridSize*Spacing/2, last.Z, 1e-12)
	assert.True(t, sc.Photons)
}

func TestHUDFor(t *testing.T) {
	want := []HUD{
		{Label: "SENSOR NOISE", CurvePath: "M 0 100 L 100 100", Spectrum: "linear-gradient(to right, #000, #333)", ColorSpace: "N/A", DynamicRange: "LINEAR"},
		{Label: "RAW DATA (LINEAR)", CurvePath: "M 0 100 L 100 100", Spectrum: "linear-gradient(to right, #000, #333)", ColorSpace: "N/A", DynamicRange: "LINEAR"},
		{Label: "LINEAR RESPONSE", CurvePath: "M 0 100 L 100 0", Spectrum: "linear-gradient(to right, #000, #500, #050, #005)", ColorSpace: "REC.2020", DynamicRange: "LINEAR"},
		{Label: "LOG PROFILE", CurvePath: "M 0 100 Q 10 20 100 30", Spectrum: "linear-gradient(to right, #333, #866, #686, #668, #aaa)", ColorSpace: "REC.2020", DynamicRange: "14+ STOPS"},
		{Label: "HDR (REC.2020)", CurvePath: "M 0 100 C 40 100 40 0 100 0", Spectrum: "linear-gradient(to right, #000, #f00, #0f0, #00f, #fff)", ColorSpace: "REC.2020", DynamicRange: "10 STOPS"},
		{Label: "SDR (sRGB)", CurvePath: "M 0 100 L 80 20 L 100 20", Spectrum: "linear-gradient(to right, #000, #a00, #0a0, #00a, #ddd)", ColorSpace: "sRGB", DynamicRange: "8 STOPS"},
	}
	got := make([]HUD, StageCount)
	for i := range got {
		got[i] = HUDFor(i)
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("HUDFor mismatch (-want +got):\n%s", diff)
	}
}

func TestColor(t *testing.T) {
	grey := Color{R: 0.5, G: 0.5, B: 0.5}
	assert.Equal(t, grey, grey.OffsetHSL(0, 0, 0))
	assert.Equal(t, Color{R: 1, G: 1, B: 1}, grey.OffsetHSL(0, 0, 0.9))

	red := Color{R: 1}
	h, s, l := red.hsl()
	assert.InDelta(t, 0, h, 1e-12)
	assert.InDelta(t, 1, s, 1e-12)
	assert.InDelta(t, 0.5, l, 1e-12)

	back := fromHSL(h, s, l)
	assert.InDelta(t, 1, back.R, 1e-12)
	assert.InDelta(t, 0, back.G, 1e-12)

	assert.Equal(t, "#ff0000", red.Hex())
	assert.Equal(t, "#ffffff", Color{R: 2, G: 2, B: 2}.Hex())
	assert.Equal(t, "#000000", Color{R: -1}.Hex())
}

func TestExplainer_ViewAndTick(t *testing.T) {
	e := New(Overlay)
	v := e.View()
	assert.Equal(t, Overlay, v.Presentation)
	assert.Equal(t, 0, v.Stage)
	assert.True(t, v.IsFirst)

	e.Advance()
	e.Advance()
	f := e.Tick(50 * time.Millisecond)
	assert.Equal(t, f, e.Frame())
	assert.Equal(t, 2, e.Scene().Stage)

	e.Retreat()
	assert.Equal(t, 1, e.View().Stage)
	e.Reset()
	assert.Equal(t, 0, e.Stage())
}
