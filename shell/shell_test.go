package shell

import (
	"math"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LianHaeming/raw2hdr-site/explainer"
)

func TestSliderPercent(t *testing.T) {
	tests := []struct {
		name                 string
		clientX, left, width float64
		want                 float64
	}{
		{"middle", 150, 100, 100, 50},
		{"left edge", 100, 100, 100, 0},
		{"past left", 20, 100, 100, 0},
		{"past right", 500, 100, 100, 100},
		{"zero width", 150, 100, 0, 0},
		{"negative width", 150, 100, -10, 0},
		{"nan width", 150, 100, math.NaN(), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SliderPercent(tt.clientX, tt.left, tt.width)
			assert.InDelta(t, tt.want, got, 1e-9)
			assert.GreaterOrEqual(t, got, 0.0)
			assert.LessOrEqual(t, got, 100.0)
		})
	}
}

func TestState_Scroll(t *testing.T) {
	s := New()
	assert.False(t, s.Scrolled)
	s.SetScroll(50)
	assert.False(t, s.Scrolled)
	s.SetScroll(51)
	assert.True(t, s.Scrolled)
	s.SetScroll(0)
	assert.False(t, s.Scrolled)
}

func TestState_SliderClamped(t *testing.T) {
	s := New()
	assert.Equal(t, DefaultSlider, s.Slider)
	s.SetSlider(140)
	assert.Equal(t, 100.0, s.Slider)
	s.SetSlider(-3)
	assert.Equal(t, 0.0, s.Slider)
	s.DragSlider(175, 100, 100)
	assert.Equal(t, 75.0, s.Slider)
}

func TestState_ModalMountsFreshExplainer(t *testing.T) {
	s := New()
	require.False(t, s.ModalOpen())
	assert.Nil(t, s.Modal())

	_, ticked := s.Tick(100 * time.Millisecond)
	assert.False(t, ticked, "closed modal must not tick")

	e := s.OpenModal()
	require.True(t, s.ModalOpen())
	assert.Equal(t, 0, e.Stage())
	assert.Equal(t, explainer.Overlay, e.Presentation)

	e.Advance()
	e.Advance()
	assert.Same(t, e, s.OpenModal())
	assert.Equal(t, 2, s.Modal().Stage())

	f, ticked := s.Tick(100 * time.Millisecond)
	assert.True(t, ticked)
	assert.Greater(t, f.Visual.Brightness, 0.0)

	s.CloseModal()
	assert.False(t, s.ModalOpen())

	reopened := s.OpenModal()
	assert.NotSame(t, e, reopened)
	assert.Equal(t, 0, reopened.Stage())
	assert.Equal(t, explainer.InitialFrame().Visual, reopened.Frame().Visual)
}

func TestFromQuery(t *testing.T) {
	s := FromQuery(url.Values{"reveal": {"20"}, "explain": {"1"}, "scroll": {"120"}})
	assert.Equal(t, 20.0, s.Slider)
	assert.True(t, s.ModalOpen())
	assert.True(t, s.Scrolled)

	s = FromQuery(url.Values{"reveal": {"abc"}, "explain": {"nope"}})
	assert.Equal(t, DefaultSlider, s.Slider)
	assert.False(t, s.ModalOpen())

	s = FromQuery(url.Values{"reveal": {"900"}})
	assert.Equal(t, 100.0, s.Slider)
}
