package utils

import "testing"

func TestMin(t *testing.T) {
	tests := []struct {
		name string
		a, b int
		want int
	}{
		{"a less than b", 1, 2, 1},
		{"b less than a", 5, 3, 3},
		{"equal values", 7, 7, 7},
		{"negative a", -5, 3, -5},
		{"zero and positive", 0, 5, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Min(tt.a, tt.b); got != tt.want {
				t.Errorf("Min(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestMax(t *testing.T) {
	tests := []struct {
		name string
		a, b int
		want int
	}{
		{"a less than b", 1, 2, 2},
		{"b less than a", 5, 3, 5},
		{"equal values", 7, 7, 7},
		{"both negative", -5, -3, -3},
		{"zero floor", -4, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Max(tt.a, tt.b); got != tt.want {
				t.Errorf("Max(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestAbsDiff(t *testing.T) {
	tests := []struct {
		name string
		a, b int
		want int
	}{
		{"both zero", 0, 0, 0},
		{"a larger", 6, 0, 6},
		{"b larger", 1, 4, 3},
		{"equal", 2, 2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AbsDiff(tt.a, tt.b); got != tt.want {
				t.Errorf("AbsDiff(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
			if got := AbsDiff(tt.b, tt.a); got != tt.want {
				t.Errorf("AbsDiff(%d, %d) = %d, want %d", tt.b, tt.a, got, tt.want)
			}
		})
	}
}

func BenchmarkAbsDiff(b *testing.B) {
	for i := 0; i < b.N; i++ {
		AbsDiff(i, i+1)
	}
}
