package viz

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/rbhatt/numlab/internal/numeric"
	"github.com/rbhatt/numlab/internal/steppers"
)

const (
	liveWidth       = 80
	liveHeight      = 14
	historyCapacity = 600
	stepsPerFrame   = 5
)

type TickMsg time.Time

// LiveModel steps an ODE forward on every tick and plots a scrolling view
// of the leading state component.
type LiveModel struct {
	sys      numeric.System
	method   steppers.Method
	name     string
	y        numeric.State
	y0       numeric.State
	t, dt    float64
	step     int
	maxSteps int
	history  []float64
	paused   bool
	done     bool
	fps      int
}

func NewLive(name string, sys numeric.System, method steppers.Method, y0 numeric.State, dt float64, maxSteps, fps int) LiveModel {
	if fps <= 0 {
		fps = 30
	}
	return LiveModel{
		sys:      sys,
		method:   method,
		name:     name,
		y:        y0.Clone(),
		y0:       y0.Clone(),
		dt:       dt,
		maxSteps: maxSteps,
		history:  make([]float64, 0, historyCapacity),
		fps:      fps,
	}
}

func (m LiveModel) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.fps), func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

func (m LiveModel) Init() tea.Cmd {
	return m.tick()
}

func (m LiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ", "p":
			m.paused = !m.paused
		case "r":
			m.step = 0
			m.t = 0
			m.y = m.y0.Clone()
			m.history = m.history[:0]
			m.done = false
		}
		return m, nil

	case TickMsg:
		if !m.paused && !m.done {
			for i := 0; i < stepsPerFrame && m.step < m.maxSteps; i++ {
				m.y = m.method.Step(m.sys, m.t, m.y, m.dt)
				m.t += m.dt
				m.step++
				m.history = append(m.history, m.y[0])
				if len(m.history) > historyCapacity {
					m.history = m.history[1:]
				}
				if !m.y.IsValid() {
					m.done = true
					break
				}
			}
			if m.step >= m.maxSteps {
				m.done = true
			}
		}
		return m, m.tick()
	}
	return m, nil
}

func (m LiveModel) View() string {
	header := HeaderStyle.Render(fmt.Sprintf("numlab live: %s (%s)", m.name, m.method.Name()))

	var graph string
	if len(m.history) > 1 {
		data := m.history
		if len(data) > liveWidth*2 {
			data = data[len(data)-liveWidth*2:]
		}
		graph = GraphStyle.Render(asciigraph.Plot(data,
			asciigraph.Height(liveHeight),
			asciigraph.Width(liveWidth),
			asciigraph.Caption("y0"),
		))
	} else {
		graph = SubtleStyle.Render("collecting samples...")
	}

	var stats strings.Builder
	stats.WriteString(LabelStyle.Render("t") + ValueStyle.Render(fmt.Sprintf("%.4f", m.t)) + "\n")
	stats.WriteString(LabelStyle.Render("step") + ValueStyle.Render(fmt.Sprintf("%d / %d", m.step, m.maxSteps)) + "\n")
	for i, v := range m.y {
		stats.WriteString(LabelStyle.Render(fmt.Sprintf("y%d", i)) + ValueStyle.Render(fmt.Sprintf("%+.6f", v)) + "\n")
	}
	status := "running"
	if m.paused {
		status = "paused"
	}
	if m.done {
		status = "finished"
	}
	stats.WriteString(LabelStyle.Render("status") + ValueStyle.Render(status))

	body := lipgloss.JoinHorizontal(lipgloss.Top, graph, StatsStyle.Render(stats.String()))
	help := SubtleStyle.Render("space: pause  r: restart  q: quit")

	return header + "\n" + body + "\n" + help + "\n"
}

// RunLive drives a LiveModel until quit or completion.
func RunLive(m LiveModel) error {
	p := tea.NewProgram(m)
	_, err := p.Run()
	return err
}
