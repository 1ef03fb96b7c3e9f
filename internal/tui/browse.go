// Package tui is the terminal catalog browser: the record list and detail
// panel of the showcase overlay, plus a live wireframe of the wheel.
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/dimas-aryo/ornawheel/internal/catalog"
	"github.com/dimas-aryo/ornawheel/internal/config"
	"github.com/dimas-aryo/ornawheel/internal/viz"
	"github.com/dimas-aryo/ornawheel/internal/wheel"
)

var (
	white  = lipgloss.NewStyle().Foreground(lipgloss.Color("255"))
	cyan   = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	dim    = lipgloss.NewStyle().Foreground(lipgloss.Color("242"))
	dimmer = lipgloss.NewStyle().Foreground(lipgloss.Color("238"))
	green  = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))

	panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("238")).
		Padding(0, 2)
)

type model struct {
	records []catalog.Record
	cfg     *config.Config
	cursor  int

	ctrl      *wheel.Controller
	layout    wheel.LayoutConfig
	spinning  bool
	lastFrame time.Time

	width  int
	height int
}

// NewBrowser builds the browser model over a catalog.
func NewBrowser(records []catalog.Record, cfg *config.Config) tea.Model {
	layout := cfg.LayoutConfig()
	layout.Count = len(records)
	return model{
		records:  records,
		cfg:      cfg,
		ctrl:     wheel.NewController(cfg.MotionParams()),
		layout:   layout,
		spinning: true,
		width:    80,
		height:   24,
	}
}

// Run starts the browser and blocks until it exits.
func Run(records []catalog.Record, cfg *config.Config) error {
	p := tea.NewProgram(NewBrowser(records, cfg))
	_, err := p.Run()
	return err
}

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(33*time.Millisecond, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m model) Init() tea.Cmd { return tick() }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.records)-1 {
				m.cursor++
			}
		case " ":
			m.spinning = !m.spinning
			m.ctrl.SetAutoPlay(m.spinning)
		}
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tickMsg:
		now := time.Time(msg)
		if !m.lastFrame.IsZero() {
			m.ctrl.Step(now.Sub(m.lastFrame).Seconds())
		}
		m.lastFrame = now
		return m, tick()
	}
	return m, nil
}

func (m model) View() string {
	var b strings.Builder

	b.WriteString(white.Render("ornawheel") + dim.Render("  :: catalog") + "\n\n")

	list := m.renderList()
	detail := m.renderDetail()
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, list, "  ", detail))
	b.WriteString("\n")

	frame, err := wheel.Layout(m.ctrl.Angle(), m.layout)
	if err == nil {
		opts := viz.DefaultPreviewOptions()
		if m.width > 20 && m.width-4 < opts.Width {
			opts.Width = m.width - 4
		}
		b.WriteString(dimmer.Render(viz.Preview(frame, m.cfg.RigConfig(), m.layout.Axis, opts)))
	}

	status := green.Render("SPINNING")
	if !m.spinning {
		status = dim.Render("PAUSED")
	}
	b.WriteString(status + "  " + dimmer.Render("j/k: navigate  space: spin  q: quit") + "\n")
	return b.String()
}

func (m model) renderList() string {
	var b strings.Builder
	for i, r := range m.records {
		line := fmt.Sprintf("  %s", r.DisplayName)
		if i == m.cursor {
			line = cyan.Render(fmt.Sprintf("> %s", r.DisplayName))
		} else {
			line = dim.Render(line)
		}
		b.WriteString(line + "\n")
	}
	return b.String()
}

func (m model) renderDetail() string {
	if m.cursor >= len(m.records) {
		return ""
	}
	r := m.records[m.cursor]

	var b strings.Builder
	b.WriteString(white.Render(r.DisplayName) + "\n")
	b.WriteString(dim.Render(r.Description) + "\n\n")
	for _, key := range catalog.SpecOrder() {
		val := r.Spec(key)
		if val == "" {
			val = "-"
		}
		b.WriteString(fmt.Sprintf("%s %s\n",
			dimmer.Render(fmt.Sprintf("%-10s", catalog.Label(key))),
			dim.Render(val)))
	}
	return panel.Render(b.String())
}
