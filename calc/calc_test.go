package calc

import (
	"errors"
	"math"
	"testing"

	"github.com/dhamidi/parsec/combinator"
)

func TestEval(t *testing.T) {
	tests := []struct {
		input string
		want  float64
	}{
		{"1", 1},
		{"1 + 2", 3},
		{"2-3", -1},
		{"10 - 4 - 3", 3},
		{"2 * 3 + 4", 10},
		{"2 + 3 * 4", 14},
		{"(2 + 3) * 4", 20},
		{"8 / 4 / 2", 1},
		{"2*-3", -6},
		{"- (1 + 2)", -3},
		{"+4", 4},
		{" 1.5e1 ", 15},
		{"((((1))))", 1},
		{"1 / 0", math.Inf(1)},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := Eval(tt.input)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestEvalErrors(t *testing.T) {
	tests := []struct {
		input string
		err   error
	}{
		{"", combinator.ErrNoMatch},
		{"*", combinator.ErrNoMatch},
		{"1 +", combinator.ErrTrailingInput},
		{"(1 + 2", combinator.ErrNoMatch},
		{"1 2", combinator.ErrTrailingInput},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := Eval(tt.input)
			if !errors.Is(err, tt.err) {
				t.Errorf("got %v, want %v", err, tt.err)
			}
		})
	}
}
