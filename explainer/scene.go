package explainer

import "math"

// Sensor grid geometry.
const (
	GridSize = 14
	Spacing  = 0.5
)

// Vec3 is a position or scale in scene units.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Instance is one box of an instanced layer.
type Instance struct {
	Position Vec3  `json:"position"`
	Scale    Vec3  `json:"scale"`
	Color    Color `json:"color"`
}

// Layer is one instanced mesh: every sensor pixel for one channel.
type Layer struct {
	Name      string     `json:"name"`
	Label     string     `json:"label,omitempty"`
	Instances []Instance `json:"instances"`
}

// Scene is the description handed to the browser's scene graph each tick.
type Scene struct {
	Stage       int     `json:"stage"`
	Layers      []Layer `json:"layers"`
	LensY       float64 `json:"lensY"`
	LensScale   float64 `json:"lensScale"`
	BeamOpacity float64 `json:"beamOpacity"`
	BeamVisible bool    `json:"beamVisible"`
	Photons     bool    `json:"photons"`
}

type pixel struct {
	Color  Color
	Height float64
}

var pattern = buildPattern(GridSize)

func basePattern() []pixel { return pattern }

// buildPattern lays out a radial falloff with a colour gradient across the
// grid so every pipeline stage has something recognisable to act on.
func buildPattern(size int) []pixel {
	out := make([]pixel, size*size)
	c := float64(size) / 2
	for i := range out {
		x := float64(i % size)
		y := float64(i / size)
		d := math.Hypot(x-c, y-c) / (float64(size) / 1.5)
		out[i] = pixel{
			Color: Color{
				R: math.Max(0, 0.8-d*0.5),
				G: math.Max(0, 0.2+x/float64(size)*0.5),
				B: math.Max(0, 0.3+y/float64(size)*0.6),
			},
			Height: 0.3 + math.Max(0, 1-d)*2,
		}
	}
	return out
}

// BuildScene turns a frame into three instanced layers. On the demosaicing
// stage each layer carries only its own channel and is labelled.
func BuildScene(stage int, f Frame) Scene {
	stage = ClampStage(stage)
	sep := f.Visual.LayerSeparation
	offset := GridSize * Spacing / 2

	layers := []Layer{
		{Name: "red", Instances: make([]Instance, 0, GridSize*GridSize)},
		{Name: "green", Instances: make([]Instance, 0, GridSize*GridSize)},
		{Name: "blue", Instances: make([]Instance, 0, GridSize*GridSize)},
	}
	if stage == 1 {
		layers[0].Label = "R-Layer"
		layers[1].Label = "G-Layer"
		layers[2].Label = "B-Layer"
	}
	ys := [3]float64{sep, 0, -sep}

	idx := 0
	for x := 0; x < GridSize; x++ {
		for z := 0; z < GridSize; z++ {
			var display Color
			if idx < len(f.Pixels) {
				display = f.Pixels[idx]
			}
			h := pattern[idx].Height * f.Visual.HeightMultiplier
			colors := [3]Color{display, display, display}
			if stage == 1 {
				colors[0] = Color{R: display.R}
				colors[1] = Color{G: display.G*0.8 + 0.1}
				colors[2] = Color{B: display.B}
			}
			for l := range layers {
				layers[l].Instances = append(layers[l].Instances, Instance{
					Position: Vec3{X: float64(x)*Spacing - offset, Y: ys[l], Z: float64(z)*Spacing - offset},
					Scale:    Vec3{X: 1, Y: h, Z: 1},
					Color:    colors[l],
				})
			}
			idx++
		}
	}

	return Scene{
		Stage:       stage,
		Layers:      layers,
		LensY:       f.LensY,
		LensScale:   f.LensScale,
		BeamOpacity: f.BeamOpacity,
		BeamVisible: f.BeamOpacity > 0.01,
		Photons:     stage == 0,
	}
}
