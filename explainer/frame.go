package explainer

import (
	"math"
	"time"
)

// Easing rates, per second, for the displayed scene values.
const (
	DampRate = 4.0
	LensRate = 2.0
	BeamRate = 5.0
)

// VisualState is the tuple of scalars that drive the sensor scene.
type VisualState struct {
	LayerSeparation  float64 `json:"layerSeparation"`
	Brightness       float64 `json:"brightness"`
	Saturation       float64 `json:"saturation"`
	HeightMultiplier float64 `json:"heightMultiplier"`
}

var targets = [StageCount]VisualState{
	{LayerSeparation: 0, Brightness: 0.2, Saturation: 0, HeightMultiplier: 0.1},   // light hits a flat sensor
	{LayerSeparation: 2.5, Brightness: 0.8, Saturation: 0, HeightMultiplier: 0.6}, // RGB layers split apart
	{LayerSeparation: 0, Brightness: 0.4, Saturation: 0.9, HeightMultiplier: 0.6},
	{LayerSeparation: 0, Brightness: 1.2, Saturation: 0.3, HeightMultiplier: 0.6},
	{LayerSeparation: 0, Brightness: 1.1, Saturation: 1.3, HeightMultiplier: 1.8},
	{LayerSeparation: 0, Brightness: 1.0, Saturation: 1.0, HeightMultiplier: 0.5},
}

// Target returns the visual state the scene eases toward on the given stage.
func Target(stage int) VisualState {
	return targets[ClampStage(stage)]
}

// Frame is the displayed state of the scene after some number of ticks.
type Frame struct {
	Visual      VisualState `json:"visual"`
	LensY       float64     `json:"lensY"`
	LensScale   float64     `json:"lensScale"`
	BeamOpacity float64     `json:"beamOpacity"`
	// Clock is the total animated time in seconds; it drives the beam pulse.
	Clock  float64 `json:"clock"`
	Pixels []Color `json:"pixels"`
}

// InitialFrame is the scene as it looks when an explainer is first mounted.
func InitialFrame() Frame {
	return Frame{
		Visual:    VisualState{HeightMultiplier: 0.1},
		LensY:     8,
		LensScale: 1,
		Pixels:    make([]Color, GridSize*GridSize),
	}
}

// ComputeFrame advances prev by elapsed toward the targets of stage. It never
// mutates prev and never snaps: every value moves a fraction of its remaining
// distance, so a stage change mid-transition only redirects the motion.
func ComputeFrame(stage int, prev Frame, elapsed time.Duration) Frame {
	stage = ClampStage(stage)
	dt := elapsed.Seconds()
	if dt < 0 {
		dt = 0
	}
	k := easeFactor(DampRate, dt)

	next := Frame{
		Clock: prev.Clock + dt,
	}

	t := targets[stage]
	next.Visual = VisualState{
		LayerSeparation:  approach(prev.Visual.LayerSeparation, t.LayerSeparation, k),
		Brightness:       approach(prev.Visual.Brightness, t.Brightness, k),
		Saturation:       approach(prev.Visual.Saturation, t.Saturation, k),
		HeightMultiplier: approach(prev.Visual.HeightMultiplier, t.HeightMultiplier, k),
	}

	lensY, lensScale := 15.0, 0.0
	if stage == 0 {
		lensY, lensScale = 8, 1
	}
	kl := easeFactor(LensRate, dt)
	next.LensY = approach(prev.LensY, lensY, kl)
	next.LensScale = approach(prev.LensScale, lensScale, kl)

	beam := 0.0
	if stage == 0 {
		beam = 0.2 + math.Sin(next.Clock*3)*0.05
	}
	next.BeamOpacity = approach(prev.BeamOpacity, beam, easeFactor(BeamRate, dt))

	pattern := basePattern()
	next.Pixels = make([]Color, len(pattern))
	for i, px := range pattern {
		var cur Color
		if i < len(prev.Pixels) {
			cur = prev.Pixels[i]
		}
		next.Pixels[i] = cur.Lerp(pixelTarget(stage, px.Color), k)
	}
	return next
}

// Settled reports whether the visual scalars are within eps of the stage's
// targets. Displayed values approach their targets asymptotically, so exact
// equality is never the arrival test.
func (f Frame) Settled(stage int, eps float64) bool {
	t := Target(stage)
	return Converged(f.Visual.LayerSeparation, t.LayerSeparation, eps) &&
		Converged(f.Visual.Brightness, t.Brightness, eps) &&
		Converged(f.Visual.Saturation, t.Saturation, eps) &&
		Converged(f.Visual.HeightMultiplier, t.HeightMultiplier, eps)
}

// Converged reports whether v is within eps of target.
func Converged(v, target, eps float64) bool {
	return math.Abs(target-v) <= eps
}

// Step moves v toward target by rate*dt of the remaining distance.
func Step(v, target, rate, dt float64) float64 {
	if dt < 0 {
		dt = 0
	}
	return approach(v, target, easeFactor(rate, dt))
}

// easeFactor caps rate*dt at 1 so a long frame lands on the target instead
// of overshooting it.
func easeFactor(rate, dt float64) float64 {
	k := rate * dt
	if k > 1 {
		return 1
	}
	if k < 0 {
		return 0
	}
	return k
}

func approach(v, target, k float64) float64 {
	if k >= 1 {
		return target
	}
	return v + (target-v)*k
}

func pixelTarget(stage int, base Color) Color {
	switch stage {
	case 2:
		return base.Scale(0.3)
	case 3:
		return base.OffsetHSL(0, -0.6, 0.25)
	case 4:
		return base.Scale(1.2).OffsetHSL(0, 0.1, 0)
	default:
		return base
	}
}
