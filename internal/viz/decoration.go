package viz

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/san-kum/sortviz/internal/playback"
	"github.com/san-kum/sortviz/internal/sorts"
)

const decorationInterval = 80 * time.Millisecond

var _ playback.Decorator = (*decoration)(nil)

// decoration is the looping header animation shown while bogo and wave play.
type decoration struct {
	kind    sorts.Decoration
	frame   int
	running bool
}

func (d *decoration) Start(kind sorts.Decoration) {
	d.kind = kind
	d.frame = 0
	d.running = kind != sorts.DecorationNone
}

func (d *decoration) Reset() {
	d.frame = 0
	d.running = false
}

func (d *decoration) advance() { d.frame++ }

func (d decoration) View() string { return DecorationView(d.kind, d.frame) }

type decorationMsg struct{ gen int }

func decorationTick(gen int) tea.Cmd {
	return tea.Tick(decorationInterval, func(time.Time) tea.Msg { return decorationMsg{gen: gen} })
}
