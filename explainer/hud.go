package explainer

// HUD is the signal monitor panel shown beside the scene.
type HUD struct {
	Label        string `json:"label"`
	CurvePath    string `json:"curvePath"`
	Spectrum     string `json:"spectrum"`
	ColorSpace   string `json:"colorSpace"`
	DynamicRange string `json:"dynamicRange"`
}

// HUDFor returns the monitor readout for a stage. Curve paths are drawn in a
// 100x100 SVG viewBox with the origin at the bottom-left.
func HUDFor(stage int) HUD {
	stage = ClampStage(stage)
	h := HUD{Label: stages[stage].HistogramLabel}

	switch {
	case stage < 2:
		h.CurvePath = "M 0 100 L 100 100"
		h.Spectrum = "linear-gradient(to right, #000, #333)"
	case stage == 2:
		h.CurvePath = "M 0 100 L 100 0"
		h.Spectrum = "linear-gradient(to right, #000, #500, #050, #005)"
	case stage == 3:
		h.CurvePath = "M 0 100 Q 10 20 100 30"
		h.Spectrum = "linear-gradient(to right, #333, #866, #686, #668, #aaa)"
	case stage == 4:
		h.CurvePath = "M 0 100 C 40 100 40 0 100 0"
		h.Spectrum = "linear-gradient(to right, #000, #f00, #0f0, #00f, #fff)"
	default:
		h.CurvePath = "M 0 100 L 80 20 L 100 20" // knee clip
		h.Spectrum = "linear-gradient(to right, #000, #a00, #0a0, #00a, #ddd)"
	}

	switch {
	case stage < 2:
		h.ColorSpace = "N/A"
	case stage == 5:
		h.ColorSpace = "sRGB"
	default:
		h.ColorSpace = "REC.2020"
	}

	switch {
	case stage < 3:
		h.DynamicRange = "LINEAR"
	case stage == 3:
		h.DynamicRange = "14+ STOPS"
	case stage == 5:
		h.DynamicRange = "8 STOPS"
	default:
		h.DynamicRange = "10 STOPS"
	}
	return h
}
