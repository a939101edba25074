// Package shell holds the page-level UI state of the landing page: whether
// the header has scrolled, whether the explainer overlay is open, and where
// the before/after slider sits.
package shell

import (
	"math"
	"net/url"
	"strconv"
	"time"

	"github.com/LianHaeming/raw2hdr-site/explainer"
)

// ScrollThreshold is the scroll offset past which the header compacts.
const ScrollThreshold = 50

// DefaultSlider is the slider position on first load.
const DefaultSlider = 50.0

// State is owned by one page view. The overlay explainer exists only while
// the modal is open.
type State struct {
	Scrolled bool
	Slider   float64

	modal *explainer.Explainer
}

// New returns the state of a freshly loaded page.
func New() *State {
	return &State{Slider: DefaultSlider}
}

// SetScroll records the window scroll offset.
func (s *State) SetScroll(scrollY float64) {
	s.Scrolled = scrollY > ScrollThreshold
}

// SetSlider moves the slider, clamped to [0,100].
func (s *State) SetSlider(pct float64) {
	s.Slider = clampPercent(pct)
}

// DragSlider moves the slider from a pointer position over the comparison
// image.
func (s *State) DragSlider(clientX, left, width float64) {
	s.Slider = SliderPercent(clientX, left, width)
}

// ModalOpen reports whether the overlay is showing.
func (s *State) ModalOpen() bool { return s.modal != nil }

// OpenModal mounts a fresh overlay explainer at stage 0. Opening an already
// open modal keeps the mounted one.
func (s *State) OpenModal() *explainer.Explainer {
	if s.modal == nil {
		s.modal = explainer.New(explainer.Overlay)
	}
	return s.modal
}

// CloseModal unmounts the overlay explainer. Its stage and frame are gone.
func (s *State) CloseModal() {
	s.modal = nil
}

// Modal returns the mounted overlay explainer, or nil when closed.
func (s *State) Modal() *explainer.Explainer { return s.modal }

// Tick advances the overlay's frame. A closed modal does nothing and
// reports false.
func (s *State) Tick(elapsed time.Duration) (explainer.Frame, bool) {
	if s.modal == nil {
		return explainer.Frame{}, false
	}
	return s.modal.Tick(elapsed), true
}

// SliderPercent maps a pointer x coordinate onto the slider, clamped into
// [0,100]. A zero or negative width gives 0.
func SliderPercent(clientX, left, width float64) float64 {
	if width <= 0 || math.IsNaN(width) {
		return 0
	}
	return clampPercent((clientX - left) / width * 100)
}

// FromQuery rebuilds page state from query parameters for clients without
// JavaScript: explain=1 opens the overlay, reveal=N places the slider.
func FromQuery(q url.Values) *State {
	s := New()
	if v := q.Get("reveal"); v != "" {
		if pct, err := strconv.ParseFloat(v, 64); err == nil {
			s.SetSlider(pct)
		}
	}
	if v := q.Get("scroll"); v != "" {
		if y, err := strconv.ParseFloat(v, 64); err == nil {
			s.SetScroll(y)
		}
	}
	if b, _ := strconv.ParseBool(q.Get("explain")); b {
		s.OpenModal()
	}
	return s
}

func clampPercent(v float64) float64 {
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 100:
		return 100
	}
	return v
}
