// Package explainer holds the six-stage imaging pipeline walkthrough: the stage
// table, the cursor that moves through it, and the per-frame interpolation of
// the sensor scene toward each stage's look.
package explainer

// StageCount is the number of pipeline stages.
const StageCount = 6

// StageDescriptor describes one pipeline stage. Values are built once from
// the literal table below and never mutated.
type StageDescriptor struct {
	Index          int    `json:"index"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	Icon           string `json:"icon"`
	HistogramLabel string `json:"histogramLabel"`
}

var stages = [StageCount]StageDescriptor{
	{
		Index:          0,
		Title:          "1. Light & Bayer Filter",
		Description:    "Light photons pass through the camera lens and strike the sensor's Bayer Color Filter Array (CFA). Each pixel captures only Red, Green, or Blue light intensity.",
		Icon:           "sun",
		HistogramLabel: "SENSOR NOISE",
	},
	{
		Index:          1,
		Title:          "2. RAW & Demosaicing",
		Description:    "The Image Processor reads the voltage from the pixels. The 'Demosaicing' algorithm interpolates the mosaic pattern into 3 distinct RGB layers for every pixel.",
		Icon:           "cpu",
		HistogramLabel: "RAW DATA (LINEAR)",
	},
	{
		Index:          2,
		Title:          "3. Linear Space (Gamma 1.0)",
		Description:    "The raw data is 'Linear'. Brightness correlates directly to photon count. It looks very dark to the human eye because our vision is logarithmic, not linear.",
		Icon:           "file-digit",
		HistogramLabel: "LINEAR RESPONSE",
	},
	{
		Index:          3,
		Title:          "4. Logarithmic Encoding",
		Description:    "To fit 14-16 stops of dynamic range into a file, a 'Log' curve lifts the shadows and flattens the highlights. The image looks washed out but retains maximum detail.",
		Icon:           "aperture",
		HistogramLabel: "LOG PROFILE",
	},
	{
		Index:          4,
		Title:          "5. HDR Color Grading",
		Description:    "A Tone Map and Color Matrix (LUT) expand the Log data into the Rec.2020 color space. This restores contrast and saturation, producing a 10-bit HDR image.",
		Icon:           "monitor",
		HistogramLabel: "HDR (REC.2020)",
	},
	{
		Index:          5,
		Title:          "6. SDR Tone Mapping",
		Description:    "For standard displays, the 10-bit HDR signal is compressed (tone-mapped) down to the 8-bit sRGB space. Peak brightness is clipped, and color range is reduced.",
		Icon:           "scan-line",
		HistogramLabel: "SDR (sRGB)",
	},
}

// Stages returns a copy of the stage table in pipeline order.
func Stages() []StageDescriptor {
	out := make([]StageDescriptor, StageCount)
	copy(out, stages[:])
	return out
}

// Descriptor returns the descriptor for stage i, clamping out-of-range
// indexes to the nearest valid stage.
func Descriptor(i int) StageDescriptor {
	return stages[ClampStage(i)]
}

// ClampStage clamps i into [0, StageCount-1].
func ClampStage(i int) int {
	if i < 0 {
		return 0
	}
	if i > StageCount-1 {
		return StageCount - 1
	}
	return i
}
