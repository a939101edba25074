package models

// StageColors maps pipeline stage (0-5) to its accent hex color.
var StageColors = map[int]string{
	0: "#94a3b8", // Slate: raw sensor
	1: "#ef4444", // Red: demosaic
	2: "#f97316", // Orange: linear
	3: "#a855f7", // Purple: log
	4: "#22d3ee", // Cyan: HDR
	5: "#eab308", // Amber: SDR
}

// StageColor returns the color for a stage, with a fallback.
func StageColor(stage int) string {
	if c, ok := StageColors[stage]; ok {
		return c
	}
	return "#9ca3af"
}
