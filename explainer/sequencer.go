package explainer

import "fmt"

// Presentation is where an explainer is mounted.
type Presentation string

const (
	// Inline is the full-page explainer.
	Inline Presentation = "inline"
	// Overlay is the modal explainer opened from the home page.
	Overlay Presentation = "overlay"
)

// ParsePresentation maps a query value to a Presentation, defaulting to Inline.
func ParsePresentation(s string) Presentation {
	if Presentation(s) == Overlay {
		return Overlay
	}
	return Inline
}

// Sequencer is the stage cursor. The zero value is at stage 0.
type Sequencer struct {
	stage int
}

// NewSequencer returns a sequencer at stage 0.
func NewSequencer() *Sequencer {
	return &Sequencer{}
}

// Advance moves to the next stage. It is a no-op on the last stage.
func (s *Sequencer) Advance() {
	if s.stage < StageCount-1 {
		s.stage++
	}
}

// Retreat moves to the previous stage. It is a no-op on stage 0.
func (s *Sequencer) Retreat() {
	if s.stage > 0 {
		s.stage--
	}
}

// Reset returns to stage 0.
func (s *Sequencer) Reset() {
	s.stage = 0
}

// Stage returns the current stage index.
func (s *Sequencer) Stage() int { return s.stage }

// Descriptor returns the current stage's descriptor.
func (s *Sequencer) Descriptor() StageDescriptor { return stages[s.stage] }

func (s *Sequencer) IsFirst() bool { return s.stage == 0 }

func (s *Sequencer) IsLast() bool { return s.stage == StageCount-1 }

// Progress is the fraction of the walkthrough completed, in [0, 1].
func (s *Sequencer) Progress() float64 {
	return float64(s.stage) / float64(StageCount-1)
}

// Step is the "Step n / N" label shown above the stage title.
func (s *Sequencer) Step() string {
	return fmt.Sprintf("Step %d / %d", s.stage+1, StageCount)
}
