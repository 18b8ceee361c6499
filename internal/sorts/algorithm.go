package sorts

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrUnknownAlgorithm is returned for a selector that names no variant.
	ErrUnknownAlgorithm = errors.New("sorts: unknown algorithm")

	// ErrShuffleLimit is returned when bogo sort hits Options.MaxShuffles.
	ErrShuffleLimit = errors.New("sorts: shuffle limit reached")
)

// Algorithm selects one of the recorded variants.
type Algorithm int

const (
	Bubble Algorithm = iota
	Selection
	Insertion
	Merge
	Quick
	Bogo
	Stalin
	Wave
)

// Decoration is the looping animation that accompanies a variant's playback.
type Decoration int

const (
	DecorationNone Decoration = iota
	DecorationSpin
	DecorationWave
)

func (d Decoration) String() string {
	switch d {
	case DecorationSpin:
		return "spin"
	case DecorationWave:
		return "wave"
	default:
		return "none"
	}
}

const (
	fastFrame    = 50 * time.Millisecond
	defaultFrame = 300 * time.Millisecond
)

type info struct {
	name        string
	title       string
	description string
}

var algorithms = [...]info{
	Bubble: {"bubble", "Bubble Sort",
		"Compares neighbouring elements and swaps them when they are out of order, repeating until nothing moves. One of the simplest algorithms there is."},
	Selection: {"selection", "Selection Sort",
		"Finds the smallest value in the unsorted part and appends it to the end of the sorted part."},
	Insertion: {"insertion", "Insertion Sort",
		"Takes elements from the unsorted part one at a time and inserts each at its place in the sorted part."},
	Merge: {"merge", "Merge Sort",
		"Splits the data in two until single elements remain, then merges the sorted halves back into one."},
	Quick: {"quick", "Quick Sort",
		"Picks a pivot, moves smaller elements before it and larger ones after it, then sorts each side recursively."},
	Bogo: {"bogo", "Bogo Sort",
		"Shuffles at random until the array happens to come out sorted. Leaves everything to fate."},
	Stalin: {"stalin", "Stalin Sort",
		"Walks the array from the front and purges every element smaller than the largest one seen so far."},
	Wave: {"wave", "Wave",
		"Not a sort. Rotates the elements around the array five full times so the bars ripple like a wave."},
}

// All returns every variant in selector order.
func All() []Algorithm {
	return []Algorithm{Bubble, Selection, Insertion, Merge, Quick, Bogo, Stalin, Wave}
}

// Names returns the selector names of every variant.
func Names() []string {
	all := All()
	names := make([]string, len(all))
	for i, a := range all {
		names[i] = a.String()
	}
	return names
}

// Parse maps a selector name to its Algorithm.
func Parse(name string) (Algorithm, error) {
	for _, a := range All() {
		if algorithms[a].name == name {
			return a, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

func (a Algorithm) valid() bool { return a >= Bubble && a <= Wave }

func (a Algorithm) String() string {
	if !a.valid() {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
	return algorithms[a].name
}

func (a Algorithm) Title() string {
	if !a.valid() {
		return a.String()
	}
	return algorithms[a].title
}

func (a Algorithm) Description() string {
	if !a.valid() {
		return "No description available."
	}
	return algorithms[a].description
}

// FrameDelay is the playback cadence for the variant.
func (a Algorithm) FrameDelay() time.Duration {
	if a == Bogo || a == Wave {
		return fastFrame
	}
	return defaultFrame
}

// IsSort reports whether the variant's final array is ascending.
func (a Algorithm) IsSort() bool {
	return a.valid() && a != Stalin && a != Wave
}

func (a Algorithm) Decoration() Decoration {
	switch a {
	case Bogo:
		return DecorationSpin
	case Wave:
		return DecorationWave
	default:
		return DecorationNone
	}
}

func (a Algorithm) MarshalText() ([]byte, error) {
	if !a.valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownAlgorithm, int(a))
	}
	return []byte(a.String()), nil
}

func (a *Algorithm) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}
