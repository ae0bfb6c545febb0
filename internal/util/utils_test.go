package util

import "testing"

func TestGetLineAndColumn(t *testing.T) {
	src := "(+ 1 2)\n(def {x}\n  10)"
	tests := []struct {
		pos       int
		line, col int
	}{
		{0, 1, 1},
		{3, 1, 4},
		{8, 2, 1},
		{19, 3, 3},
	}

	for _, tt := range tests {
		line, col := GetLineAndColumn(src, tt.pos)
		if line != tt.line || col != tt.col {
			t.Errorf("pos %d: expected %d:%d, got %d:%d", tt.pos, tt.line, tt.col, line, col)
		}
	}
}
