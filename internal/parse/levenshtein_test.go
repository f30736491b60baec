package parse

import "testing"

func TestDistance(t *testing.T) {
	tests := []struct {
		name     string
		a, b     string
		expected int
	}{
		{name: "both empty", a: "", b: "", expected: 0},
		{name: "empty left", a: "", b: "abc", expected: 3},
		{name: "empty right", a: "abc", b: "", expected: 3},
		{name: "identical", a: "samson", b: "samson", expected: 0},
		{name: "classic kitten sitting", a: "kitten", b: "sitting", expected: 3},
		{name: "single substitution", a: "john", b: "joan", expected: 1},
		{name: "insertion", a: "sam", b: "sams", expected: 1},
		{name: "unrelated", a: "alice", b: "bob", expected: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Distance(tt.a, tt.b); got != tt.expected {
				t.Errorf("Distance(%q, %q) = %d, want %d", tt.a, tt.b, got, tt.expected)
			}
		})
	}
}

func TestDistance_Symmetry(t *testing.T) {
	pairs := [][2]string{
		{"kitten", "sitting"},
		{"sarah", "sara"},
		{"", "xyz"},
		{"mike", "michael"},
	}
	for _, p := range pairs {
		if Distance(p[0], p[1]) != Distance(p[1], p[0]) {
			t.Errorf("Distance(%q, %q) not symmetric", p[0], p[1])
		}
	}
}
