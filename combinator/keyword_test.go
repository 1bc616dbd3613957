package combinator

import "testing"

func TestTrieLongest(t *testing.T) {
	tr := newTrie([]string{"+", "+++", "--", "≠"})
	tests := []struct {
		text string
		want string
	}{
		{"++++", "+++"},
		{"+++", "+++"},
		{"++", "+"},
		{"+", "+"},
		{"-", ""},
		{"--", "--"},
		{"≠x", "≠"},
		{"", ""},
		{"a+", ""},
	}
	for _, tt := range tests {
		if got := tr.longest(tt.text); got != tt.want {
			t.Errorf("longest(%q) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestKey(t *testing.T) {
	e := New[int](WithKeywords("+", "+++"))
	runCases(t, e.Key("+++"), 0, []matchCase{
		{input: "++++", match: "+++", next: 3},
	})
	runCases(t, e.Key("+"), 0, []matchCase{
		{input: "+", match: "+", next: 1},
		{input: "++", match: "+", next: 1},
		{input: "+++", fail: true},
	})
}

func TestKeyWithoutKeywords(t *testing.T) {
	e := New[int]()
	runCases(t, e.Key("+"), 0, []matchCase{{input: "+", fail: true}})
}

func TestNotKey(t *testing.T) {
	e := New[int](WithKeywords("+", "+++", "--"))
	runCases(t, e.NotKey(), 0, []matchCase{
		{input: "-", match: "", next: 0},
		{input: "", match: "", next: 0},
		{input: "+", fail: true},
		{input: "++", fail: true},
		{input: "+++", fail: true},
		{input: "--", fail: true},
	})
}

func TestEqualsID(t *testing.T) {
	t.Run("no ignore or keywords", func(t *testing.T) {
		e := New[int]()
		runCases(t, e.EqualsID("key"), 0, []matchCase{
			{input: "key", match: "key", next: 3},
			{input: "keys", match: "key", next: 3},
			{input: "key 1", match: "key", next: 3},
			{input: "key+", match: "key", next: 3},
			{input: "key++", match: "key", next: 3},
		})
	})
	t.Run("ignore", func(t *testing.T) {
		e := New[int](WithIgnore(" "))
		runCases(t, e.EqualsID("key"), 0, []matchCase{
			{input: "key", match: "key", next: 3},
			{input: "keys", fail: true},
			{input: "key 1", match: "key", next: 4},
			{input: "key+", fail: true},
			{input: "key++", fail: true},
		})
	})
	t.Run("ignore and keywords", func(t *testing.T) {
		e := New[int](WithIgnore(" "), WithKeywords("++"))
		runCases(t, e.EqualsID("key"), 0, []matchCase{
			{input: "key", match: "key", next: 3},
			{input: "keys", fail: true},
			{input: "key 1", match: "key", next: 4},
			{input: "key+", fail: true},
			{input: "key++", match: "key", next: 3},
		})
	})
	t.Run("keywords only", func(t *testing.T) {
		e := New[int](WithKeywords("("))
		runCases(t, e.EqualsID(e.Regex(`[a-z]+`)), 0, []matchCase{
			{input: "f(", match: "f", next: 1},
			{input: "f ", fail: true},
			{input: "1", fail: true},
		})
	})
}
