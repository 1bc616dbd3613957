package combinator

import (
	"math"
	"testing"
)

func TestReal(t *testing.T) {
	e := New[float64]()
	p := e.Real()

	tests := []struct {
		input string
		want  float64
		fail  bool
	}{
		{input: "765", want: 765},
		{input: "76.5", want: 76.5},
		{input: "0.765", want: 0.765},
		{input: ".765", want: 0.765},
		{input: "765e2", want: 76500},
		{input: "765E2", want: 76500},
		{input: "765e+2", want: 76500},
		{input: "765e-2", want: 7.65},
		{input: "765e+346", want: math.Inf(1)},
		{input: "765e-346", want: 0},
		{input: "a961", fail: true},
		{input: "+765", want: 765},
		{input: "+.765", want: 0.765},
		{input: "+765e-2", want: 7.65},
		{input: "+765e+346", want: math.Inf(1)},
		{input: "+765e-346", want: 0},
		{input: "+a961", fail: true},
		{input: "-765", want: -765},
		{input: "-76.5", want: -76.5},
		{input: "-.765", want: -0.765},
		{input: "-765E2", want: -76500},
		{input: "-765e+346", want: math.Inf(-1)},
		{input: "-765e-346", want: 0},
		{input: "-a961", fail: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			r, ok := p.Match(tt.input, 0)
			if tt.fail {
				if ok {
					t.Fatalf("got match %q, want failure", r.Match)
				}
				return
			}
			if !ok {
				t.Fatal("got failure, want match")
			}
			if r.Attr != tt.want {
				t.Errorf("got %v, want %v", r.Attr, tt.want)
			}
			if r.Next != len(tt.input) {
				t.Errorf("next: got %d, want %d", r.Next, len(tt.input))
			}
		})
	}
}

func TestRealPartialInput(t *testing.T) {
	e := New[float64]()
	r, ok := e.Real().Match("12.x", 0)
	if !ok {
		t.Fatal("got failure, want match")
	}
	if r.Match != "12" || r.Attr != 12 {
		t.Errorf("got %q = %v, want \"12\" = 12", r.Match, r.Attr)
	}
}

func TestRealOtherAttributeTypes(t *testing.T) {
	t.Run("any", func(t *testing.T) {
		r, ok := New[any]().Real().Match("2.5", nil)
		if !ok || r.Attr != 2.5 {
			t.Errorf("got %#v, %v, want 2.5", r.Attr, ok)
		}
	})
	t.Run("int passes through", func(t *testing.T) {
		r, ok := New[int]().Real().Match("2.5", 7)
		if !ok || r.Attr != 7 {
			t.Errorf("got %d, %v, want 7", r.Attr, ok)
		}
	})
	t.Run("RealWith", func(t *testing.T) {
		p := New[[]float64]().RealWith(func(v float64, inh []float64) []float64 { return append(inh, v) })
		r, ok := p.Match("-4", []float64{1})
		if !ok || len(r.Attr) != 2 || r.Attr[1] != -4 {
			t.Errorf("got %v, %v, want [1 -4]", r.Attr, ok)
		}
	})
}

func TestBr(t *testing.T) {
	e := New[int]()
	runCases(t, e.Br(), 0, []matchCase{
		{input: "\r\n", match: "\r\n", next: 2},
		{input: "\r", match: "\r", next: 1},
		{input: "\n", match: "\n", next: 1},
		{input: "\n\n", match: "\n", next: 1},
		{input: "x", fail: true},
	})
}

func TestEnd(t *testing.T) {
	e := New[int]()
	runCases(t, e.End(), 0, []matchCase{
		{input: "", match: "", next: 0},
		{input: "961", fail: true},
	})

	r, ok := e.End().MatchAt("961", 3, 0)
	if !ok || r.Next != 3 {
		t.Errorf("at end: got %+v, %v", r, ok)
	}
}
