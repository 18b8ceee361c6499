package viz

import (
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/sortviz/internal/engine"
	"github.com/san-kum/sortviz/internal/input"
	"github.com/san-kum/sortviz/internal/metrics"
	"github.com/san-kum/sortviz/internal/sorts"
)

// Options configures the interactive application.
type Options struct {
	// Algorithm is preselected in the menu.
	Algorithm sorts.Algorithm
	// Input seeds the digit field. Empty means a random permutation.
	Input  string
	Length int
	Engine engine.Config
	Theme  string
	// Delay overrides the pause between frames.
	Delay func(sorts.Algorithm) time.Duration
	// OnRun sees every recorded run, before playback begins.
	OnRun  func(*engine.Result)
	Logger *slog.Logger

	runner *engine.Runner
	rng    *rand.Rand
}

const (
	screenMenu = iota
	screenPlayer
)

type model struct {
	screen     int
	cursor     int
	algorithms []sorts.Algorithm
	opts       Options
	player     player
	keys       menuKeyMap
	help       help.Model
	width      int
	height     int
}

func NewApp(opts Options) *model {
	if opts.Length <= 0 {
		opts.Length = input.DefaultLength
	}
	if opts.Delay == nil {
		opts.Delay = sorts.Algorithm.FrameDelay
	}
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Theme != "" {
		SetTheme(opts.Theme)
	}
	opts.Engine.Length = opts.Length
	opts.rng = rand.New(rand.NewSource(opts.Engine.Seed))
	if opts.Input == "" {
		opts.Input = input.RandomN(opts.rng, opts.Length)
	}

	runner := engine.New(opts.Engine)
	runner.SetLogger(opts.Logger)
	for _, m := range metrics.Defaults() {
		runner.AddMetric(m)
	}
	opts.runner = runner

	algs := sorts.All()
	cursor := 0
	for i, a := range algs {
		if a == opts.Algorithm {
			cursor = i
		}
	}

	return &model{
		screen:     screenMenu,
		cursor:     cursor,
		algorithms: algs,
		opts:       opts,
		keys:       defaultMenuKeys,
		help:       help.New(),
		width:      80,
		height:     24,
	}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	}

	switch m.screen {
	case screenMenu:
		if msg, ok := msg.(tea.KeyMsg); ok {
			return m.menuKey(msg)
		}
	case screenPlayer:
		if msg, ok := msg.(tea.KeyMsg); ok {
			switch {
			case key.Matches(msg, m.player.keys.Quit):
				m.player.stop()
				return m, tea.Quit
			case key.Matches(msg, m.player.keys.Back):
				m.player.stop()
				m.opts.Input = m.player.digits.Value()
				m.screen = screenMenu
				return m, nil
			}
		}
		var cmd tea.Cmd
		m.player, cmd = m.player.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) menuKey(msg tea.KeyMsg) (model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.algorithms)-1 {
			m.cursor++
		}
	case key.Matches(msg, m.keys.Theme):
		NextTheme()
	case key.Matches(msg, m.keys.Select):
		m.player = newPlayer(m.algorithms[m.cursor], m.opts)
		m.screen = screenPlayer
	}
	return m, nil
}

func (m model) View() string {
	switch m.screen {
	case screenPlayer:
		return m.player.View()
	default:
		return m.viewMenu()
	}
}

func (m model) viewMenu() string {
	var b strings.Builder
	b.WriteString("\n    " + titleStyle().Render("SORTVIZ") + "\n")
	b.WriteString("    " + subtleStyle.Render("step-by-step sorting playback") + "\n")
	b.WriteString("    " + Separator(30) + "\n\n")

	for i, alg := range m.algorithms {
		name := fmt.Sprintf("%-16s", alg.Title())
		if i == m.cursor {
			b.WriteString("    " + cursorStyle().Render("▸ "+name) + "\n")
		} else {
			b.WriteString("    " + subtleStyle.Render("  "+name) + "\n")
		}
	}

	selected := m.algorithms[m.cursor]
	b.WriteString("\n    " + labelStyle.Render(selected.Description()) + "\n")
	b.WriteString("    " + subtleStyle.Render("theme: "+CurrentTheme.Name) + "\n\n")
	b.WriteString("    " + m.help.View(m.keys) + "\n")
	return b.String()
}

// RunInteractive opens the full-screen application and blocks until it quits.
func RunInteractive(opts Options) error {
	_, err := tea.NewProgram(NewApp(opts), tea.WithAltScreen()).Run()
	return err
}
