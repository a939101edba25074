// Package tui is the pipeline walkthrough as a terminal overlay. It drives
// the same explainer as the web pages: key presses move the stage cursor and
// a 30 fps tick eases the displayed frame toward the stage's targets.
package tui

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
	"github.com/charmbracelet/lipgloss"

	"github.com/LianHaeming/raw2hdr-site/explainer"
	"github.com/LianHaeming/raw2hdr-site/models"
	"github.com/LianHaeming/raw2hdr-site/samples"
	"github.com/LianHaeming/raw2hdr-site/shell"
)

const (
	fps          = 30
	defaultWidth = 72
	barWidth     = 40
)

type tickMsg struct{ ts time.Time }

func tick() tea.Cmd {
	return tea.Tick(time.Second/fps, func(ts time.Time) tea.Msg { return tickMsg{ts: ts} })
}

// Model is the bubbletea model of the terminal explainer.
type Model struct {
	shell  *shell.State
	keys   keyMap
	help   help.Model
	styles styles
	noise  *rand.Rand

	spring      harmonica.Spring
	progress    float64
	progressVel float64
	last        time.Time

	bars  samples.Series
	frame explainer.Frame
	width int
}

// New opens the overlay at stage 0. noise seeds the signal bars; nil draws
// them without jitter.
func New(noise *rand.Rand) Model {
	st := shell.New()
	ex := st.OpenModal()
	return Model{
		shell:  st,
		keys:   defaultKeys(),
		help:   help.New(),
		styles: defaultStyles(),
		noise:  noise,
		spring: harmonica.NewSpring(harmonica.FPS(fps), 6.0, 1.0),
		bars:   samples.StageBars(ex.Stage(), noise),
		frame:  ex.Frame(),
		width:  defaultWidth,
	}
}

// Stage returns the current stage, or -1 once the overlay is closed.
func (m Model) Stage() int {
	if ex := m.shell.Modal(); ex != nil {
		return ex.Stage()
	}
	return -1
}

// Closed reports whether the overlay has been dismissed.
func (m Model) Closed() bool { return !m.shell.ModalOpen() }

func (m Model) Init() tea.Cmd { return tick() }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		ex := m.shell.Modal()
		if ex == nil {
			return m, tea.Quit
		}
		before := ex.Stage()
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.shell.CloseModal()
			return m, tea.Quit
		case key.Matches(msg, m.keys.Next):
			ex.Advance()
		case key.Matches(msg, m.keys.Prev):
			ex.Retreat()
		case key.Matches(msg, m.keys.Reset):
			ex.Reset()
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
		if ex.Stage() != before {
			m.bars = samples.StageBars(ex.Stage(), m.noise)
		}
		return m, nil

	case tickMsg:
		var elapsed time.Duration
		if !m.last.IsZero() {
			elapsed = msg.ts.Sub(m.last)
		}
		m.last = msg.ts
		f, ok := m.shell.Tick(elapsed)
		if !ok {
			return m, nil
		}
		m.frame = f
		target := m.shell.Modal().Sequencer().Progress()
		m.progress, m.progressVel = m.spring.Update(m.progress, m.progressVel, target)
		return m, tick()
	}
	return m, nil
}

func (m Model) View() string {
	ex := m.shell.Modal()
	if ex == nil {
		return ""
	}
	v := ex.View()
	accent := lipgloss.Color(models.StageColor(v.Stage))
	width := max(m.width-4, 20)

	var b strings.Builder
	b.WriteString(m.styles.step.Render(v.Step))
	b.WriteString("\n")
	b.WriteString(m.styles.title.Foreground(accent).Render(v.Descriptor.Title))
	b.WriteString("\n\n")
	b.WriteString(m.styles.body.Width(width).Render(v.Descriptor.Description))
	b.WriteString("\n\n")
	b.WriteString(m.progressBar(accent))
	b.WriteString("\n\n")

	hud := lipgloss.JoinHorizontal(lipgloss.Top,
		m.pixels(),
		"  ",
		lipgloss.JoinVertical(lipgloss.Left,
			lipgloss.NewStyle().Foreground(accent).Render(v.HUD.Label),
			sparkline(m.bars, accent),
			m.styles.dim.Render("Color space   ")+v.HUD.ColorSpace,
			m.styles.dim.Render("Dynamic range ")+v.HUD.DynamicRange,
		),
	)
	b.WriteString(m.styles.panel.Render(hud))
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

// progressBar draws the spring-smoothed progress through the stages.
func (m Model) progressBar(accent lipgloss.Color) string {
	p := min(max(m.progress, 0), 1)
	filled := int(p*barWidth + 0.5)
	return lipgloss.NewStyle().Foreground(accent).Render(strings.Repeat("━", filled)) +
		m.styles.track.Render(strings.Repeat("━", barWidth-filled)) +
		m.styles.dim.Render(fmt.Sprintf(" %3.0f%%", p*100))
}

// pixels draws the sensor grid as two half-height cells per character.
func (m Model) pixels() string {
	px := m.frame.Pixels
	n := explainer.GridSize
	if len(px) < n*n {
		return ""
	}
	var b strings.Builder
	for y := 0; y < n; y += 2 {
		for x := 0; x < n; x++ {
			top := px[y*n+x].Scale(0.5 + m.frame.Visual.Brightness/2)
			bottom := top
			if y+1 < n {
				bottom = px[(y+1)*n+x].Scale(0.5 + m.frame.Visual.Brightness/2)
			}
			b.WriteString(lipgloss.NewStyle().
				Foreground(lipgloss.Color(top.Hex())).
				Background(lipgloss.Color(bottom.Hex())).
				Render("▀"))
		}
		if y+2 < n {
			b.WriteString("\n")
		}
	}
	return b.String()
}

var blocks = []rune("▁▂▃▄▅▆▇█")

// sparkline renders bar heights on the 0..100 scale as block characters.
func sparkline(s samples.Series, accent lipgloss.Color) string {
	var b strings.Builder
	for _, p := range s.Points {
		i := int(p.Y / 100 * float64(len(blocks)-1))
		b.WriteRune(blocks[min(max(i, 0), len(blocks)-1)])
	}
	return lipgloss.NewStyle().Foreground(accent).Render(b.String())
}

// Run shows the overlay until it is closed.
func Run(noise *rand.Rand, opts ...tea.ProgramOption) error {
	_, err := tea.NewProgram(New(noise), opts...).Run()
	return err
}
