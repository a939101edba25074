package samples

import "math"

// DefaultTransferSteps is the sampling resolution of the transfer curves.
const DefaultTransferSteps = 100

// Peak luminances the curves are scaled to, in nits.
const (
	SDRPeakNits = 100
	HDRPeakNits = 1000
)

// SDRNits is a gamma 2.4 display response scaled to a 100-nit reference.
func SDRNits(x float64) float64 {
	return math.Pow(x, 2.4) * SDRPeakNits
}

// HDRNits sketches the headroom of a PQ-style curve as x^4 scaled to 1000
// nits. It is a teaching shape, not SMPTE ST 2084.
func HDRNits(x float64) float64 {
	return math.Pow(x, 4) * HDRPeakNits
}

// TransferCurves samples both curves at steps+1 evenly spaced signal values
// in [0, 1]. Steps below 1 fall back to DefaultTransferSteps.
func TransferCurves(steps int) (sdr, hdr Series) {
	if steps < 1 {
		steps = DefaultTransferSteps
	}
	sdr = Series{Name: "SDR", Points: make([]Point, steps+1)}
	hdr = Series{Name: "HDR", Points: make([]Point, steps+1)}
	for i := 0; i <= steps; i++ {
		x := float64(i) / float64(steps)
		sdr.Points[i] = Point{X: x, Y: SDRNits(x)}
		hdr.Points[i] = Point{X: x, Y: HDRNits(x)}
	}
	return sdr, hdr
}
