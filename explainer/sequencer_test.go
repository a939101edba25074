package explainer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seqAt(stage int) *Sequencer {
	s := NewSequencer()
	for i := 0; i < stage; i++ {
		s.Advance()
	}
	return s
}

func TestSequencer_TransitionsFromEveryStage(t *testing.T) {
	for s := 0; s < StageCount; s++ {
		adv := seqAt(s)
		adv.Advance()
		assert.Equal(t, min(s+1, StageCount-1), adv.Stage(), "advance from %d", s)

		ret := seqAt(s)
		ret.Retreat()
		assert.Equal(t, max(s-1, 0), ret.Stage(), "retreat from %d", s)

		rst := seqAt(s)
		rst.Reset()
		assert.Equal(t, 0, rst.Stage(), "reset from %d", s)
	}
}

func TestSequencer_ClampsAtCeiling(t *testing.T) {
	s := NewSequencer()
	for i := 0; i < 4; i++ {
		s.Advance()
	}
	require.Equal(t, 4, s.Stage())

	s.Advance()
	require.Equal(t, 5, s.Stage())
	assert.True(t, s.IsLast())

	s.Advance()
	assert.Equal(t, 5, s.Stage())
}

func TestSequencer_ClampsAtFloor(t *testing.T) {
	s := NewSequencer()
	assert.True(t, s.IsFirst())
	s.Retreat()
	s.Retreat()
	assert.Equal(t, 0, s.Stage())
}

func TestSequencer_LastStageIsLeaveable(t *testing.T) {
	s := seqAt(StageCount - 1)
	s.Retreat()
	assert.Equal(t, StageCount-2, s.Stage())
}

func TestSequencer_Labels(t *testing.T) {
	s := NewSequencer()
	assert.Equal(t, "Step 1 / 6", s.Step())
	assert.Equal(t, 0.0, s.Progress())
	assert.Equal(t, "SENSOR NOISE", s.Descriptor().HistogramLabel)

	s = seqAt(5)
	assert.Equal(t, "Step 6 / 6", s.Step())
	assert.Equal(t, 1.0, s.Progress())
	assert.Equal(t, "6. SDR Tone Mapping", s.Descriptor().Title)
}

func TestStagesTableMatchesTargets(t *testing.T) {
	all := Stages()
	require.Len(t, all, StageCount)
	require.Len(t, targets, len(all))
	for i, d := range all {
		assert.Equal(t, i, d.Index)
		assert.NotEmpty(t, d.Title)
		assert.NotEmpty(t, d.HistogramLabel)
	}

	// Stages hands out a copy.
	all[0].Title = "changed"
	assert.Equal(t, "1. Light & Bayer Filter", Descriptor(0).Title)
}

func TestDescriptorClampsIndex(t *testing.T) {
	assert.Equal(t, 0, Descriptor(-3).Index)
	assert.Equal(t, StageCount-1, Descriptor(42).Index)
}

func TestParsePresentation(t *testing.T) {
	assert.Equal(t, Overlay, ParsePresentation("overlay"))
	assert.Equal(t, Inline, ParsePresentation("inline"))
	assert.Equal(t, Inline, ParsePresentation(""))
	assert.Equal(t, Inline, ParsePresentation("sideways"))
}
