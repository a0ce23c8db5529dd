package util

import "testing"

func TestNormalizeAnswer(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"Victory", "victory"},
		{"  victory  ", "victory"},
		{"\tVICTORY\n", "victory"},
		{"victory", "victory"},
		{"Two Words", "two words"},
		{"", ""},
		{"   ", ""},
		{"1984", "1984"},
	}

	for _, tt := range tests {
		if got := NormalizeAnswer(tt.raw); got != tt.want {
			t.Errorf("NormalizeAnswer(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}
