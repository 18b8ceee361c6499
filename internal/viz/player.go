package viz

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/sortviz/internal/engine"
	"github.com/san-kum/sortviz/internal/input"
	"github.com/san-kum/sortviz/internal/metrics"
	"github.com/san-kum/sortviz/internal/sorts"
	"github.com/san-kum/sortviz/internal/trace"
)

const (
	barHeight = 12
	barWidth  = 3
)

type frameMsg struct{ gen int }

func frameTick(gen int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return frameMsg{gen: gen} })
}

// player runs one algorithm over the typed digits and replays its trace.
//
// Every start or stop bumps gen; ticks carry the gen they were scheduled
// under, so a tick from a superseded playback is dropped.
type player struct {
	alg    sorts.Algorithm
	length int
	runner *engine.Runner
	rng    *rand.Rand
	delay  func(sorts.Algorithm) time.Duration
	onRun  func(*engine.Result)
	logger *slog.Logger

	digits textinput.Model
	keys   playerKeyMap
	help   help.Model

	result     *engine.Result
	trace      trace.Trace
	inversions []float64
	pos        int
	playing    bool
	gen        int
	deco       decoration
	err        error
	note       string
}

func newPlayer(alg sorts.Algorithm, opts Options) player {
	ti := textinput.New()
	ti.Placeholder = strings.Repeat("0", opts.Length)
	ti.CharLimit = opts.Length
	ti.Width = opts.Length + 1
	ti.Prompt = "digits › "
	ti.SetValue(opts.Input)
	ti.Focus()

	return player{
		alg:    alg,
		length: opts.Length,
		runner: opts.runner,
		rng:    opts.rng,
		delay:  opts.Delay,
		onRun:  opts.OnRun,
		logger: opts.Logger,
		digits: ti,
		keys:   defaultPlayerKeys,
		help:   help.New(),
	}
}

func (p player) Update(msg tea.Msg) (player, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		return p, p.advance(msg.gen)
	case decorationMsg:
		if msg.gen != p.gen || !p.deco.running {
			return p, nil
		}
		p.deco.advance()
		return p, decorationTick(p.gen)
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, p.keys.Randomize):
			p.randomize()
			return p, nil
		case key.Matches(msg, p.keys.Start):
			return p, p.start()
		case key.Matches(msg, p.keys.Stop):
			p.stop()
			return p, nil
		case key.Matches(msg, p.keys.Theme):
			NextTheme()
			return p, nil
		}
		if !editKey(msg) {
			return p, nil
		}
	}

	var cmd tea.Cmd
	p.digits, cmd = p.digits.Update(msg)
	return p, cmd
}

// editKey accepts digits and cursor movement; everything else is a command.
func editKey(msg tea.KeyMsg) bool {
	switch msg.Type {
	case tea.KeyBackspace, tea.KeyDelete, tea.KeyLeft, tea.KeyRight, tea.KeyHome, tea.KeyEnd:
		return true
	case tea.KeyRunes:
		for _, r := range msg.Runes {
			if r < '0' || r > '9' {
				return false
			}
		}
		return true
	}
	return false
}

// start validates the digits before touching anything, so a bad entry leaves
// the current trace and playback as they were.
func (p *player) start() tea.Cmd {
	values, err := input.ParseN(p.digits.Value(), p.length)
	if err != nil {
		p.err = err
		return nil
	}

	p.stop()
	p.err, p.note = nil, ""

	result, err := p.runner.Run(context.Background(), p.alg, values)
	if result == nil {
		p.err = err
		return nil
	}
	if err != nil {
		p.note = err.Error()
	}
	if p.onRun != nil {
		p.onRun(result)
	}

	p.result = result
	p.trace = result.Trace
	p.inversions = metrics.Series(result.Trace)
	p.pos = 0
	if len(p.trace) < 2 {
		return nil
	}

	p.playing = true
	p.deco.Start(p.alg.Decoration())
	p.logger.Debug("playback started", "algorithm", p.alg.String(), "steps", len(p.trace))

	cmds := []tea.Cmd{frameTick(p.gen, p.delay(p.alg))}
	if p.deco.running {
		cmds = append(cmds, decorationTick(p.gen))
	}
	return tea.Batch(cmds...)
}

func (p *player) advance(gen int) tea.Cmd {
	if gen != p.gen || !p.playing {
		return nil
	}
	p.pos++
	if p.pos >= len(p.trace)-1 {
		p.pos = len(p.trace) - 1
		p.playing = false
		p.deco.Reset()
		return nil
	}
	return frameTick(p.gen, p.delay(p.alg))
}

// stop is safe to call at any time, including with nothing playing.
func (p *player) stop() {
	p.gen++
	p.playing = false
	p.deco.Reset()
}

func (p *player) randomize() {
	p.stop()
	p.err = nil
	p.digits.SetValue(input.RandomN(p.rng, p.length))
}

func (p player) current() (trace.Step, bool) {
	if len(p.trace) == 0 {
		return trace.Step{}, false
	}
	return p.trace[p.pos], true
}

func (p player) status() string {
	switch {
	case p.playing:
		return statusPlaying.Render("PLAYING")
	case len(p.trace) > 0 && p.pos == len(p.trace)-1:
		return statusDone.Render("DONE")
	case len(p.trace) > 0:
		return statusStopped.Render("STOPPED")
	default:
		return statusStopped.Render("READY")
	}
}

func (p player) View() string {
	var b strings.Builder

	header := titleStyle().Render(strings.ToUpper(p.alg.Title()))
	if deco := p.deco.View(); deco != "" {
		header += "  " + cursorStyle().Render(deco)
	}
	b.WriteString(header + "\n")
	b.WriteString(subtleStyle.Render(p.alg.Description()) + "\n")
	b.WriteString(Separator(p.length*(barWidth+1)+4) + "\n\n")

	if step, ok := p.current(); ok {
		b.WriteString(RenderBars(step, barHeight, barWidth, CurrentTheme) + "\n\n")
		progress := float64(p.pos+1) / float64(len(p.trace))
		b.WriteString(fmt.Sprintf("%s  step %d/%d  %s\n", p.status(), p.pos+1, len(p.trace), ProgressBar(progress, 20)))
		b.WriteString(metric("inversions", p.inversions[p.pos]) + "  ")
		if p.alg == sorts.Stalin {
			b.WriteString(metric("eliminated", float64(len(step.Eliminated))))
		} else {
			b.WriteString(metric("comparisons", p.result.Metrics["comparisons"]))
		}
		b.WriteString("\n")
		if series := p.inversions[:p.pos+1]; len(series) > 1 {
			chart := asciigraph.Plot(series, asciigraph.Height(4), asciigraph.Width(40), asciigraph.Caption("inversions"))
			b.WriteString(graphStyle.Render(chart) + "\n")
		}
	} else {
		b.WriteString(subtleStyle.Render("enter eight digits and press enter") + "\n")
		b.WriteString(p.status() + "\n")
	}

	b.WriteString("\n" + p.digits.View() + "\n")
	if p.err != nil {
		b.WriteString(errorStyle().Render(p.err.Error()) + "\n")
	} else if p.note != "" {
		b.WriteString(statusStopped.Render(p.note) + "\n")
	}
	b.WriteString("\n" + p.help.View(p.keys))
	return panelStyle.Render(b.String())
}
