package explainer

import "time"

// Explainer is one mounted walkthrough: a cursor, the displayed frame, and
// where it is presented. The full page and the modal both use it.
type Explainer struct {
	Presentation Presentation
	seq          Sequencer
	frame        Frame
}

// New mounts an explainer at stage 0.
func New(p Presentation) *Explainer {
	return &Explainer{Presentation: p, frame: InitialFrame()}
}

func (e *Explainer) Advance() { e.seq.Advance() }

func (e *Explainer) Retreat() { e.seq.Retreat() }

func (e *Explainer) Reset() { e.seq.Reset() }

func (e *Explainer) Stage() int { return e.seq.Stage() }

func (e *Explainer) Sequencer() *Sequencer { return &e.seq }

// Tick advances the displayed frame by elapsed and returns it.
func (e *Explainer) Tick(elapsed time.Duration) Frame {
	e.frame = ComputeFrame(e.seq.Stage(), e.frame, elapsed)
	return e.frame
}

// Frame returns the displayed frame without advancing it.
func (e *Explainer) Frame() Frame { return e.frame }

// Scene builds the scene description for the displayed frame.
func (e *Explainer) Scene() Scene { return BuildScene(e.seq.Stage(), e.frame) }

// View is the serialisable snapshot of an explainer used by templates and
// the JSON API.
type View struct {
	Presentation Presentation      `json:"presentation"`
	Stage        int               `json:"stage"`
	StageCount   int               `json:"stageCount"`
	Step         string            `json:"step"`
	Progress     float64           `json:"progress"`
	IsFirst      bool              `json:"isFirst"`
	IsLast       bool              `json:"isLast"`
	Descriptor   StageDescriptor   `json:"descriptor"`
	Stages       []StageDescriptor `json:"stages"`
	HUD          HUD               `json:"hud"`
	Target       VisualState       `json:"target"`
}

func (e *Explainer) View() View {
	s := &e.seq
	return View{
		Presentation: e.Presentation,
		Stage:        s.Stage(),
		StageCount:   StageCount,
		Step:         s.Step(),
		Progress:     s.Progress(),
		IsFirst:      s.IsFirst(),
		IsLast:       s.IsLast(),
		Descriptor:   s.Descriptor(),
		Stages:       Stages(),
		HUD:          HUDFor(s.Stage()),
		Target:       Target(s.Stage()),
	}
}
