package sorts

import (
	"errors"
	"math/rand"
	"slices"
	"testing"

	"github.com/san-kum/sortviz/internal/trace"
)

func digits(s string) []int {
	out := make([]int, len(s))
	for i, c := range s {
		out[i] = int(c - '0')
	}
	return out
}

func run(t *testing.T, alg Algorithm, input []int) (trace.Trace, []int) {
	t.Helper()
	tr, out, err := Run(alg, input, Options{Rand: rand.New(rand.NewSource(1))})
	if err != nil {
		t.Fatalf("%s: run failed: %v", alg, err)
	}
	return tr, out
}

func TestComparisonSortsProduceAscendingPermutation(t *testing.T) {
	inputs := []string{"31415926", "12345678", "87654321", "11111111", "90909090"}
	for _, alg := range []Algorithm{Bubble, Selection, Insertion, Merge, Quick} {
		for _, in := range inputs {
			t.Run(alg.String()+"/"+in, func(t *testing.T) {
				input := digits(in)
				tr, out := run(t, alg, input)

				if err := tr.Validate(len(input)); err != nil {
					t.Fatalf("invalid trace: %v", err)
				}
				last := tr.Last().Array
				if !trace.IsAscending(last) {
					t.Errorf("final array not ascending: %v", last)
				}
				if !trace.IsPermutation(last, input) {
					t.Errorf("final array %v is not a permutation of %v", last, input)
				}
				if !slices.Equal(out, last) {
					t.Errorf("returned array %v differs from last step %v", out, last)
				}
				if len(tr.Last().Active) != 0 {
					t.Errorf("terminal step has active indices: %v", tr.Last().Active)
				}
			})
		}
	}
}

func TestFirstStepIsInput(t *testing.T) {
	input := digits("31415926")
	for _, alg := range All() {
		t.Run(alg.String(), func(t *testing.T) {
			tr, _, err := Run(alg, input, Options{Rand: rand.New(rand.NewSource(7)), MaxShuffles: 100000})
			if err != nil && !errors.Is(err, ErrShuffleLimit) {
				t.Fatalf("run failed: %v", err)
			}
			first := tr.First()
			if !slices.Equal(first.Array, input) {
				t.Errorf("expected first array %v, got %v", input, first.Array)
			}
			if len(first.Active) != 0 || len(first.Eliminated) != 0 {
				t.Errorf("expected empty sets on first step, got %v / %v", first.Active, first.Eliminated)
			}
		})
	}
}

func TestRunDoesNotMutateInput(t *testing.T) {
	input := digits("87654321")
	for _, alg := range All() {
		if alg == Bogo {
			continue
		}
		Run(alg, input, Options{})
		if !slices.Equal(input, digits("87654321")) {
			t.Fatalf("%s mutated its input: %v", alg, input)
		}
	}
}

func TestTraceLengths(t *testing.T) {
	tests := []struct {
		alg      Algorithm
		input    string
		expected int
	}{
		{Bubble, "31415926", 38},
		{Bubble, "12345678", 30},
		{Bubble, "87654321", 58},
		{Selection, "31415926", 37},
		{Insertion, "31415926", 24},
		{Insertion, "12345678", 16},
		{Insertion, "87654321", 44},
		{Merge, "31415926", 41},
		{Merge, "12345678", 38},
		{Quick, "31415926", 30},
		{Quick, "12345678", 65},
		{Quick, "87654321", 49},
		{Stalin, "31415926", 13},
		{Stalin, "87654321", 16},
		{Wave, "31415926", 42},
	}

	for _, tt := range tests {
		tr, _ := run(t, tt.alg, digits(tt.input))
		if len(tr) != tt.expected {
			t.Errorf("%s(%s): expected %d steps, got %d", tt.alg, tt.input, tt.expected, len(tr))
		}
	}
}

func TestBubbleScenario(t *testing.T) {
	tr, _ := run(t, Bubble, digits("31415926"))
	want := []int{1, 1, 2, 3, 4, 5, 6, 9}
	if got := tr.Last().Array; !slices.Equal(got, want) {
		t.Errorf("expected %v, got %v", want, got)
	}

	// second step compares the first pair before any swap
	if got := tr[1]; !slices.Equal(got.Active, []int{0, 1}) || !slices.Equal(got.Array, digits("31415926")) {
		t.Errorf("unexpected first comparison step: %+v", got)
	}
	if got := tr[2]; !slices.Equal(got.Array, digits("13415926")) {
		t.Errorf("expected swap step 13415926, got %v", got.Array)
	}
}

func TestSelectionActiveIndices(t *testing.T) {
	tr, _ := run(t, Selection, digits("31415926"))
	// i=0, j=1, min=0
	if !slices.Equal(tr[1].Active, []int{0, 1, 0}) {
		t.Errorf("expected [0 1 0], got %v", tr[1].Active)
	}
	// min moves to 1 after the first comparison
	if !slices.Equal(tr[2].Active, []int{0, 2, 1}) {
		t.Errorf("expected [0 2 1], got %v", tr[2].Active)
	}
	// swap step after 7 comparisons
	if !slices.Equal(tr[8].Active, []int{0, 1}) || !slices.Equal(tr[8].Array, digits("13415926")) {
		t.Errorf("unexpected swap step: %+v", tr[8])
	}
}

func TestQuickPivotPlacement(t *testing.T) {
	tr, _ := run(t, Quick, digits("31415926"))
	// pivot 6 is compared against every other element of the first partition
	for i := 0; i < 7; i++ {
		found := false
		for _, s := range tr {
			if slices.Equal(s.Active, []int{i, 7}) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("missing comparison of index %d against pivot", i)
		}
	}
}

func TestStalinScenario(t *testing.T) {
	tr, out := run(t, Stalin, digits("31415926"))
	if err := tr.Validate(8); err != nil {
		t.Fatalf("invalid trace: %v", err)
	}
	if !slices.Equal(out, digits("31415926")) {
		t.Errorf("stalin must not reorder the array, got %v", out)
	}

	values, positions := Survivors(tr.Last())
	if !slices.Equal(values, []int{3, 4, 5, 9}) {
		t.Errorf("expected survivors [3 4 5 9], got %v", values)
	}
	if !slices.Equal(positions, []int{0, 2, 4, 5}) {
		t.Errorf("expected positions [0 2 4 5], got %v", positions)
	}
}

func TestStalinSurvivorsAreRunningMaximum(t *testing.T) {
	r := rand.New(rand.NewSource(42))
	for n := 0; n < 50; n++ {
		input := make([]int, 8)
		for i := range input {
			input[i] = r.Intn(10)
		}
		tr, _ := run(t, Stalin, input)

		values, _ := Survivors(tr.Last())
		maxSeen := -1
		var want []int
		for _, v := range input {
			if v >= maxSeen {
				want = append(want, v)
				maxSeen = v
			}
		}
		if !slices.Equal(values, want) {
			t.Errorf("input %v: expected survivors %v, got %v", input, want, values)
		}

		prev := 0
		for i, s := range tr {
			if len(s.Eliminated) < prev {
				t.Errorf("input %v: eliminated set shrank at step %d", input, i)
			}
			prev = len(s.Eliminated)
		}
	}
}

func TestStalinEmpty(t *testing.T) {
	tr, _ := run(t, Stalin, []int{})
	if len(tr) != 1 {
		t.Errorf("expected a single step for empty input, got %d", len(tr))
	}
}

func TestWaveReturnsToStart(t *testing.T) {
	input := digits("12345678")
	tr, out := run(t, Wave, input)

	if len(tr) != 5*len(input)+2 {
		t.Errorf("expected %d steps, got %d", 5*len(input)+2, len(tr))
	}
	if !slices.Equal(out, input) || !slices.Equal(tr.Last().Array, input) {
		t.Errorf("expected final array %v, got %v", input, tr.Last().Array)
	}
	if !slices.Equal(tr[1].Array, digits("23456781")) {
		t.Errorf("expected first rotation 23456781, got %v", tr[1].Array)
	}
	for i := 1; i < len(tr)-1; i++ {
		if !slices.Equal(tr[i].Active, []int{len(input) - 1}) {
			t.Fatalf("step %d: expected last index active, got %v", i, tr[i].Active)
		}
	}
}

func TestWaveEmpty(t *testing.T) {
	tr, _ := run(t, Wave, nil)
	if len(tr) != 0 {
		t.Errorf("expected no steps for empty input, got %d", len(tr))
	}
}

func TestBogoSort(t *testing.T) {
	input := digits("3142")
	tr, out, err := Run(Bogo, input, Options{Rand: rand.New(rand.NewSource(3))})
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}
	if !trace.IsAscending(out) || !trace.IsAscending(tr.Last().Array) {
		t.Errorf("expected ascending result, got %v", out)
	}
	for i, s := range tr {
		if !trace.IsPermutation(s.Array, input) {
			t.Errorf("step %d is not a permutation: %v", i, s.Array)
		}
		if i == 0 || i == len(tr)-1 {
			continue
		}
		if len(s.Active) != len(input) {
			t.Errorf("step %d: expected all indices active, got %v", i, s.Active)
		}
	}
}

func TestBogoShuffleLimit(t *testing.T) {
	input := digits("87654321")
	tr, out, err := Run(Bogo, input, Options{Rand: rand.New(rand.NewSource(1)), MaxShuffles: 3})
	if !errors.Is(err, ErrShuffleLimit) {
		t.Fatalf("expected ErrShuffleLimit, got %v", err)
	}
	// initial + 3 shuffles + terminal
	if len(tr) != 5 {
		t.Errorf("expected 5 steps, got %d", len(tr))
	}
	if !slices.Equal(out, tr.Last().Array) {
		t.Errorf("returned array %v differs from last step %v", out, tr.Last().Array)
	}
}

func TestBogoAlreadySorted(t *testing.T) {
	tr, _ := run(t, Bogo, digits("12345678"))
	if len(tr) != 2 {
		t.Errorf("expected initial and terminal step only, got %d", len(tr))
	}
}

func TestRunUnknown(t *testing.T) {
	if _, _, err := Run(Algorithm(99), []int{1}, Options{}); !errors.Is(err, ErrUnknownAlgorithm) {
		t.Errorf("expected ErrUnknownAlgorithm, got %v", err)
	}
}
