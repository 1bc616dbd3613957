package combinator

import "testing"

func TestInput(t *testing.T) {
	in := NewInput("aé日b")
	if in.Len() != 4 {
		t.Fatalf("Len: got %d, want 4", in.Len())
	}

	offsets := []int{0, 1, 3, 6, 7}
	for pos, want := range offsets {
		if got := in.ByteOffset(pos); got != want {
			t.Errorf("ByteOffset(%d) = %d, want %d", pos, got, want)
		}
	}
	if got := in.ByteOffset(10); got != 7 {
		t.Errorf("ByteOffset past end = %d, want 7", got)
	}

	if got := in.Slice(1, 3); got != "é日" {
		t.Errorf("Slice(1, 3) = %q", got)
	}
	if got := in.Slice(3, 1); got != "" {
		t.Errorf("Slice(3, 1) = %q", got)
	}
	if !in.HasPrefixAt(2, "日b") || in.HasPrefixAt(2, "b") || in.HasPrefixAt(5, "") {
		t.Error("HasPrefixAt mismatch")
	}
}

func TestInputLineCol(t *testing.T) {
	in := NewInput("ab\r\ncd\ré\nf")
	tests := []struct {
		pos, line, col int
	}{
		{0, 1, 1},
		{2, 1, 3},
		{4, 2, 1},
		{6, 2, 3},
		{7, 3, 1},
		{8, 3, 2},
		{9, 4, 1},
	}
	for _, tt := range tests {
		line, col := in.LineCol(tt.pos)
		if line != tt.line || col != tt.col {
			t.Errorf("LineCol(%d) = %d:%d, want %d:%d", tt.pos, line, col, tt.line, tt.col)
		}
	}
}
