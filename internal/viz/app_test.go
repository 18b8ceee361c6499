package viz

import (
	"errors"
	"reflect"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/sortviz/internal/engine"
	"github.com/san-kum/sortviz/internal/input"
	"github.com/san-kum/sortviz/internal/sorts"
	"github.com/san-kum/sortviz/internal/trace"
)

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func newTestApp(t *testing.T, alg sorts.Algorithm, digits string) model {
	t.Helper()
	app := NewApp(Options{
		Algorithm: alg,
		Input:     digits,
		Engine:    engine.Config{Seed: 1, MaxShuffles: 1000},
		Delay:     func(sorts.Algorithm) time.Duration { return time.Millisecond },
	})
	return *app
}

func update(t *testing.T, m model, msg tea.Msg) (model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(model)
	if !ok {
		t.Fatalf("unexpected model type %T", next)
	}
	return out, cmd
}

func openPlayer(t *testing.T, alg sorts.Algorithm, digits string) model {
	t.Helper()
	m := newTestApp(t, alg, digits)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenPlayer {
		t.Fatalf("expected player screen, got %d", m.screen)
	}
	if m.player.alg != alg {
		t.Fatalf("expected %s, got %s", alg, m.player.alg)
	}
	return m
}

func TestMenuNavigation(t *testing.T) {
	m := newTestApp(t, sorts.Bubble, "31415926")
	m, _ = update(t, m, runes("j"))
	m, _ = update(t, m, runes("j"))
	m, _ = update(t, m, runes("k"))
	if got := m.algorithms[m.cursor]; got != sorts.Selection {
		t.Fatalf("expected selection under cursor, got %s", got)
	}

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.screen != screenPlayer || m.player.alg != sorts.Selection {
		t.Fatalf("expected selection player, got screen %d alg %s", m.screen, m.player.alg)
	}
}

func TestMenuPreselectsAlgorithm(t *testing.T) {
	m := newTestApp(t, sorts.Stalin, "31415926")
	if got := m.algorithms[m.cursor]; got != sorts.Stalin {
		t.Errorf("expected stalin preselected, got %s", got)
	}
}

func TestPlayerStart(t *testing.T) {
	m := openPlayer(t, sorts.Bubble, "31415926")
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.player.err != nil {
		t.Fatalf("unexpected error: %v", m.player.err)
	}
	if cmd == nil {
		t.Fatal("expected a frame tick")
	}
	if len(m.player.trace) != 38 {
		t.Errorf("expected 38 steps, got %d", len(m.player.trace))
	}
	if !m.player.playing || m.player.pos != 0 {
		t.Errorf("expected playback from step 0, playing=%v pos=%d", m.player.playing, m.player.pos)
	}
}

func TestPlayerInvalidInputKeepsPlayback(t *testing.T) {
	m := openPlayer(t, sorts.Quick, "31415926")
	m, _ = update(t, m, runes("s"))
	m, _ = update(t, m, frameMsg{gen: m.player.gen})

	before := m.player.trace
	gen, pos := m.player.gen, m.player.pos

	m.player.digits.SetValue("1234")
	m, cmd := update(t, m, runes("s"))

	if !errors.Is(m.player.err, input.ErrInvalidInput) {
		t.Fatalf("expected invalid input error, got %v", m.player.err)
	}
	if cmd != nil {
		t.Error("expected no command for rejected input")
	}
	if !m.player.playing || m.player.gen != gen || m.player.pos != pos {
		t.Error("rejected input disturbed the running playback")
	}
	if len(m.player.trace) != len(before) || &m.player.trace[0] != &before[0] {
		t.Error("rejected input replaced the trace")
	}
}

func TestPlayerPlaysToEnd(t *testing.T) {
	m := openPlayer(t, sorts.Wave, "12345678")
	m, _ = update(t, m, runes("s"))
	if m.player.deco.kind != sorts.DecorationWave || !m.player.deco.running {
		t.Fatal("expected wave decoration to run")
	}

	steps := len(m.player.trace)
	for i := 0; i < steps+5 && m.player.playing; i++ {
		m, _ = update(t, m, frameMsg{gen: m.player.gen})
	}

	if m.player.playing {
		t.Fatal("playback did not finish")
	}
	if m.player.pos != steps-1 {
		t.Errorf("expected final step %d, got %d", steps-1, m.player.pos)
	}
	last, _ := m.player.current()
	if !reflect.DeepEqual(last, trace.NewStep([]int{1, 2, 3, 4, 5, 6, 7, 8}, nil, nil)) {
		t.Errorf("unexpected final step %+v", last)
	}
	if m.player.deco.running || m.player.deco.frame != 0 {
		t.Error("decoration not reset after playback")
	}
}

func TestPlayerStopIgnoresStaleTicks(t *testing.T) {
	m := openPlayer(t, sorts.Bogo, "21345678")
	m, _ = update(t, m, runes("s"))
	stale := m.player.gen

	m, _ = update(t, m, decorationMsg{gen: stale})
	if m.player.deco.frame != 1 {
		t.Fatalf("expected decoration to advance, got frame %d", m.player.deco.frame)
	}

	m, _ = update(t, m, runes("x"))
	m, _ = update(t, m, runes("x"))
	if m.player.playing {
		t.Fatal("expected playback stopped")
	}
	if m.player.deco.running || m.player.deco.frame != 0 {
		t.Error("decoration not reset by stop")
	}

	m, cmd := update(t, m, frameMsg{gen: stale})
	if cmd != nil || m.player.pos != 0 {
		t.Errorf("stale tick advanced playback to %d", m.player.pos)
	}
	m, cmd = update(t, m, decorationMsg{gen: stale})
	if cmd != nil || m.player.deco.frame != 0 {
		t.Error("stale decoration tick was applied")
	}
}

func TestPlayerRandomize(t *testing.T) {
	m := openPlayer(t, sorts.Merge, "31415926")
	m, _ = update(t, m, runes("s"))
	m, _ = update(t, m, runes("r"))

	if m.player.playing {
		t.Error("randomize should stop playback")
	}
	values, err := input.Parse(m.player.digits.Value())
	if err != nil {
		t.Fatalf("randomized digits invalid: %v", err)
	}
	if !trace.IsPermutation(values, []int{1, 2, 3, 4, 5, 6, 7, 8}) {
		t.Errorf("expected permutation of 1..8, got %v", values)
	}
}

func TestPlayerTyping(t *testing.T) {
	m := openPlayer(t, sorts.Insertion, "")
	m.player.digits.SetValue("")
	for _, r := range "8765a4321" {
		m, _ = update(t, m, runes(string(r)))
	}
	if got := m.player.digits.Value(); got != "87654321" {
		t.Errorf("expected only digits to be typed, got %q", got)
	}
}

func TestEscReturnsToMenu(t *testing.T) {
	m := openPlayer(t, sorts.Bubble, "31415926")
	m, _ = update(t, m, runes("s"))
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	if m.screen != screenMenu {
		t.Fatalf("expected menu, got screen %d", m.screen)
	}
	if m.player.playing {
		t.Error("leaving the player should stop playback")
	}
}

func TestOnRunCallback(t *testing.T) {
	var got *engine.Result
	app := NewApp(Options{
		Algorithm: sorts.Stalin,
		Input:     "31415926",
		Engine:    engine.Config{Seed: 1},
		OnRun:     func(r *engine.Result) { got = r },
	})
	m, _ := update(t, *app, tea.KeyMsg{Type: tea.KeyEnter})
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if got == nil {
		t.Fatal("expected OnRun to be called")
	}
	if got.Algorithm != sorts.Stalin || got.Steps() != 13 {
		t.Errorf("unexpected result %s with %d steps", got.Algorithm, got.Steps())
	}
	if m.View() == "" {
		t.Error("expected player view")
	}
}
