package sorts

import (
	"errors"
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	for _, alg := range All() {
		got, err := Parse(alg.String())
		if err != nil {
			t.Fatalf("parse %s: %v", alg, err)
		}
		if got != alg {
			t.Errorf("expected %v, got %v", alg, got)
		}
	}

	if _, err := Parse("heap"); !errors.Is(err, ErrUnknownAlgorithm) {
		t.Errorf("expected ErrUnknownAlgorithm, got %v", err)
	}
}

func TestFrameDelay(t *testing.T) {
	tests := []struct {
		alg      Algorithm
		expected time.Duration
	}{
		{Bubble, 300 * time.Millisecond},
		{Selection, 300 * time.Millisecond},
		{Insertion, 300 * time.Millisecond},
		{Merge, 300 * time.Millisecond},
		{Quick, 300 * time.Millisecond},
		{Stalin, 300 * time.Millisecond},
		{Bogo, 50 * time.Millisecond},
		{Wave, 50 * time.Millisecond},
	}

	for _, tt := range tests {
		if got := tt.alg.FrameDelay(); got != tt.expected {
			t.Errorf("%s: expected %v, got %v", tt.alg, tt.expected, got)
		}
	}
}

func TestDecoration(t *testing.T) {
	if Bogo.Decoration() != DecorationSpin {
		t.Error("bogo should spin")
	}
	if Wave.Decoration() != DecorationWave {
		t.Error("wave should wave")
	}
	if Bubble.Decoration() != DecorationNone {
		t.Error("bubble has no decoration")
	}
}

func TestDescriptions(t *testing.T) {
	seen := make(map[string]bool)
	for _, alg := range All() {
		d := alg.Description()
		if d == "" {
			t.Errorf("%s: empty description", alg)
		}
		if seen[d] {
			t.Errorf("%s: duplicate description", alg)
		}
		seen[d] = true
	}
}

func TestTextMarshalling(t *testing.T) {
	b, err := Quick.MarshalText()
	if err != nil || string(b) != "quick" {
		t.Fatalf("expected quick, got %q (%v)", b, err)
	}

	var a Algorithm
	if err := a.UnmarshalText([]byte("stalin")); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if a != Stalin {
		t.Errorf("expected stalin, got %v", a)
	}
	if err := a.UnmarshalText([]byte("nope")); err == nil {
		t.Error("expected error for unknown name")
	}
}

func TestIsSort(t *testing.T) {
	for _, alg := range All() {
		want := alg != Stalin && alg != Wave
		if alg.IsSort() != want {
			t.Errorf("%s: IsSort() = %v, want %v", alg, alg.IsSort(), want)
		}
	}
}
