package samples

import (
	"math"
	"math/rand/v2"
)

// StageBarCount is the number of bars in the signal monitor.
const StageBarCount = 32

// StageBars returns the signal-monitor histogram for a pipeline stage. Each
// stage has its own shape; there is no shared formula.
//
//	0-1  sensor noise, flat and low
//	2    linear: exponential decay, piled into the shadows
//	3    log: wide bell lifted off the floor
//	4    HDR: sinusoidal spread across the whole range
//	5    SDR: flat plateau hard-clipped in the top tenth
func StageBars(stage int, noise *rand.Rand) Series {
	n := StageBarCount
	pts := make([]Point, n)
	for i := range pts {
		x := float64(i) / float64(n)
		var y float64
		switch {
		case stage < 2:
			y = uniform(noise)*5 + 2
		case stage == 2:
			y = math.Max(5, math.Exp(-x*6)*90+uniform(noise)*5)
		case stage == 3:
			c := (float64(i) - float64(n)/2) / (float64(n) / 4)
			y = 40*math.Exp(-c*c*0.5) + 15 + uniform(noise)*10
		case stage == 4:
			y = (math.Sin(x*math.Pi*4)*0.3+0.7)*60 + 5
		default:
			if float64(i) > float64(n)*0.9 {
				y = 2
			} else {
				y = 50 + uniform(noise)*20
			}
		}
		pts[i] = Point{X: float64(i), Y: y}
	}
	return Series{Name: "signal", Points: pts}
}
