// Package input validates the digit strings a run starts from.
package input

import (
	"errors"
	"fmt"
	"math/rand"
	"strings"
)

// DefaultLength is the number of digits a run sorts.
const DefaultLength = 8

// MaxLength is the longest input a random permutation of distinct digits
// 1..n can fill.
const MaxLength = 9

// ErrInvalidInput is wrapped by every ValidationError.
var ErrInvalidInput = errors.New("input: invalid digits")

// ValidationError describes why a digit string was rejected.
type ValidationError struct {
	Input  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid input %q: %s", e.Input, e.Reason)
}

func (e *ValidationError) Unwrap() error { return ErrInvalidInput }

// Parse accepts exactly DefaultLength ASCII digits.
func Parse(s string) ([]int, error) {
	return ParseN(s, DefaultLength)
}

// ParseN accepts exactly n ASCII digits, ignoring surrounding whitespace.
func ParseN(s string, n int) ([]int, error) {
	trimmed := strings.TrimSpace(s)
	if len(trimmed) != n {
		return nil, &ValidationError{Input: s, Reason: fmt.Sprintf("enter exactly %d digits", n)}
	}
	out := make([]int, n)
	for i := 0; i < n; i++ {
		c := trimmed[i]
		if c < '0' || c > '9' {
			return nil, &ValidationError{Input: s, Reason: fmt.Sprintf("%q at position %d is not a digit", c, i+1)}
		}
		out[i] = int(c - '0')
	}
	return out, nil
}

// Random returns the digits 1..DefaultLength in random order.
func Random(r *rand.Rand) string {
	return RandomN(r, DefaultLength)
}

// RandomN returns a random permutation of 1..n, capped at MaxLength digits.
func RandomN(r *rand.Rand, n int) string {
	if n > MaxLength {
		n = MaxLength
	}
	digits := make([]int, n)
	for i := range digits {
		digits[i] = i + 1
	}
	r.Shuffle(len(digits), func(i, j int) { digits[i], digits[j] = digits[j], digits[i] })
	return Format(digits)
}

// Format renders values as a digit string. Values outside 0..9 are clamped.
func Format(values []int) string {
	var b strings.Builder
	for _, v := range values {
		if v < 0 {
			v = 0
		} else if v > 9 {
			v = 9
		}
		b.WriteByte(byte('0' + v))
	}
	return b.String()
}
