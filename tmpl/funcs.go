package tmpl

import (
	"fmt"
	"html/template"
	"strconv"
	"strings"

	"github.com/LianHaeming/raw2hdr-site/models"
)

func (t *Templates) funcMap(content map[string]template.HTML) template.FuncMap {
	assetVer := t.assetVer
	return template.FuncMap{
		// Cache-busting version string for static assets
		"assetVer": func() string { return assetVer },

		// Markdown copy blocks from the content directory
		"markdown": func(name string) (template.HTML, error) {
			h, ok := content[name]
			if !ok {
				return "", fmt.Errorf("content %q not found", name)
			}
			return h, nil
		},

		// Math / formatting
		"mul":  func(a, b float64) float64 { return a * b },
		"pct":  func(f float64) string { return fmt.Sprintf("%.0f%%", f*100) },
		"add":  func(a, b int) int { return a + b },
		"fmt1": func(f float64) string { return strconv.FormatFloat(f, 'f', 1, 64) },

		// ticks spreads n stops evenly over 0..100
		"ticks": func(n int) []int {
			if n < 2 {
				return []int{0}
			}
			s := make([]int, n)
			for i := range s {
				s[i] = i * 100 / (n - 1)
			}
			return s
		},

		// Colors
		"stageColor":  models.StageColor,
		"stageTint":   func(stage int) template.CSS { return template.CSS(hexToRGBA(models.StageColor(stage), 0.18)) },
		"stageBorder": func(stage int) template.CSS { return template.CSS(hexToRGBA(models.StageColor(stage), 0.7)) },
		"grey":        func(level uint8) template.CSS { return template.CSS(fmt.Sprintf("rgb(%d,%d,%d)", level, level, level)) },

		// Icons and slider geometry
		"icon":     iconPath,
		"revealAt": revealPolygon,

		// Trusted CSS built from the stage tables
		"safeCSS": func(s string) template.CSS { return template.CSS(s) },
	}
}

func hexToRGBA(hex string, alpha float64) string {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) != 6 {
		return fmt.Sprintf("rgba(156, 163, 175, %.2f)", alpha)
	}
	r, _ := strconv.ParseInt(hex[0:2], 16, 64)
	g, _ := strconv.ParseInt(hex[2:4], 16, 64)
	b, _ := strconv.ParseInt(hex[4:6], 16, 64)
	return fmt.Sprintf("rgba(%d, %d, %d, %.2f)", r, g, b, alpha)
}

// revealPolygon is the clip-path that shows the left pct of the HDR image.
func revealPolygon(pct float64) template.CSS {
	p := strconv.FormatFloat(pct, 'f', 2, 64)
	return template.CSS("clip-path: polygon(0 0, " + p + "% 0, " + p + "% 100%, 0 100%)")
}
