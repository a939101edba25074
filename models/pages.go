package models

import (
	"github.com/LianHaeming/raw2hdr-site/explainer"
	"github.com/LianHaeming/raw2hdr-site/samples"
)

// Shell is the layout state every page carries.
type Shell struct {
	Scrolled bool
	Nav      []NavLink
	Active   string
}

// HomePageData is the template data for the landing page.
type HomePageData struct {
	Shell        Shell
	Slider       float64
	Features     []Feature
	ScienceSteps []ScienceStep
	BetaNotes    []BetaNote
	Requirements string
	// Overlay is set when the explainer modal is open.
	Overlay *ExplainerData
}

// ExplainerData renders one explainer, inline or in the overlay.
type ExplainerData struct {
	SessionID string
	View      explainer.View
	Bars      samples.Series
}

// ExplainerPageData is the template data for the full-page explainer.
type ExplainerPageData struct {
	Shell     Shell
	Explainer ExplainerData
}

// DeepDivePageData is the template data for the bit-depth deep dive.
type DeepDivePageData struct {
	Shell     Shell
	Mode      samples.Mode
	Zoom      float64
	MinZoom   float64
	MaxZoom   float64
	Gradient  samples.Gradient
	Histogram samples.Series
}

// ErrorPageData is the template data for not-found and error pages.
type ErrorPageData struct {
	Shell   Shell
	Status  int
	Title   string
	Message string
}
