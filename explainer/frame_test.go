package explainer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const frame60 = 16 * time.Millisecond

func TestComputeFrame_SingleTick(t *testing.T) {
	prev := InitialFrame()
	dt := 100 * time.Millisecond

	next := ComputeFrame(1, prev, dt)

	tgt := Target(1)
	k := DampRate * dt.Seconds()
	assert.InDelta(t, prev.Visual.LayerSeparation+(tgt.LayerSeparation-prev.Visual.LayerSeparation)*k, next.Visual.LayerSeparation, 1e-12)
	assert.InDelta(t, prev.Visual.Brightness+(tgt.Brightness-prev.Visual.Brightness)*k, next.Visual.Brightness, 1e-12)
	assert.InDelta(t, prev.Visual.Saturation+(tgt.Saturation-prev.Visual.Saturation)*k, next.Visual.Saturation, 1e-12)
	assert.InDelta(t, prev.Visual.HeightMultiplier+(tgt.HeightMultiplier-prev.Visual.HeightMultiplier)*k, next.Visual.HeightMultiplier, 1e-12)
	assert.InDelta(t, 1.0, next.Visual.LayerSeparation, 1e-12)
	assert.InDelta(t, 0.1, next.Clock, 1e-12)
}

func TestComputeFrame_ConvergesWithoutSnapping(t *testing.T) {
	f := InitialFrame()
	for i := 0; i < 10; i++ {
		f = ComputeFrame(4, f, frame60)
	}
	assert.False(t, f.Settled(4, 1e-3), "should still be easing after 10 frames")
	assert.Less(t, f.Visual.HeightMultiplier, Target(4).HeightMultiplier)

	for i := 0; i < 400; i++ {
		f = ComputeFrame(4, f, frame60)
	}
	assert.True(t, f.Settled(4, 1e-3))
}

func TestComputeFrame_LongFrameDoesNotOvershoot(t *testing.T) {
	next := ComputeFrame(4, InitialFrame(), 2*time.Second)
	assert.Equal(t, Target(4), next.Visual)
}

func TestComputeFrame_NegativeElapsedHolds(t *testing.T) {
	prev := ComputeFrame(3, InitialFrame(), 50*time.Millisecond)
	next := ComputeFrame(3, prev, -time.Second)
	assert.Equal(t, prev.Visual, next.Visual)
	assert.Equal(t, prev.Clock, next.Clock)
}

func TestComputeFrame_DoesNotMutatePrev(t *testing.T) {
	prev := ComputeFrame(2, InitialFrame(), 100*time.Millisecond)
	snapshot := append([]Color(nil), prev.Pixels...)
	visual := prev.Visual

	_ = ComputeFrame(4, prev, 100*time.Millisecond)

	assert.Equal(t, snapshot, prev.Pixels)
	assert.Equal(t, visual, prev.Visual)
}

func TestComputeFrame_StageChangeRedirectsSmoothly(t *testing.T) {
	f := InitialFrame()
	for i := 0; i < 20; i++ {
		f = ComputeFrame(1, f, frame60)
	}
	mid := f.Visual.LayerSeparation
	require.Greater(t, mid, 0.0)
	require.Less(t, mid, Target(1).LayerSeparation)

	// Back to stage 0: separation heads to 0 from where it was.
	f = ComputeFrame(0, f, frame60)
	assert.Less(t, f.Visual.LayerSeparation, mid)
	assert.Greater(t, f.Visual.LayerSeparation, 0.0)
}

func TestComputeFrame_ZeroFrame(t *testing.T) {
	next := ComputeFrame(0, Frame{}, frame60)
	assert.Len(t, next.Pixels, GridSize*GridSize)
}

func TestComputeFrame_LensAndBeam(t *testing.T) {
	f := InitialFrame()
	for i := 0; i < 300; i++ {
		f = ComputeFrame(2, f, frame60)
	}
	assert.InDelta(t, 15, f.LensY, 1e-3)
	assert.InDelta(t, 0, f.LensScale, 1e-3)
	assert.InDelta(t, 0, f.BeamOpacity, 1e-3)

	for i := 0; i < 300; i++ {
		f = ComputeFrame(0, f, frame60)
	}
	assert.InDelta(t, 8, f.LensY, 1e-3)
	assert.InDelta(t, 1, f.LensScale, 1e-3)
	assert.InDelta(t, 0.2, f.BeamOpacity, 0.06)
}

func TestComputeFrame_PixelsApproachStageColor(t *testing.T) {
	f := InitialFrame()
	for i := 0; i < 500; i++ {
		f = ComputeFrame(2, f, frame60)
	}
	want := pattern[0].Color.Scale(0.3)
	assert.InDelta(t, want.R, f.Pixels[0].R, 1e-3)
	assert.InDelta(t, want.G, f.Pixels[0].G, 1e-3)
	assert.InDelta(t, want.B, f.Pixels[0].B, 1e-3)
}

func TestStep(t *testing.T) {
	assert.InDelta(t, 0.4, Step(0, 1, 4, 0.1), 1e-12)
	assert.Equal(t, 1.0, Step(0, 1, 4, 10))
	assert.Equal(t, 0.5, Step(0.5, 1, 4, -1))

	v := 0.0
	for i := 0; i < 1000; i++ {
		v = Step(v, 3, DampRate, 0.016)
	}
	assert.True(t, Converged(v, 3, 1e-6))
}
