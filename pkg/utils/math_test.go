package utils

import "testing"

func TestMean(t *testing.T) {
	tests := []struct {
		name   string
		values []float64
		want   float64
	}{
		{"Empty", nil, 0},
		{"Single", []float64{4}, 4},
		{"Several", []float64{1, 2, 3}, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Mean(tt.values); got != tt.want {
				t.Errorf("Mean(%v) = %v, want %v", tt.values, got, tt.want)
			}
		})
	}
}

func TestSum(t *testing.T) {
	if got := Sum([]float64{1.5, 2.5}); got != 4 {
		t.Errorf("Sum = %v, want 4", got)
	}
	if got := Sum(nil); got != 0 {
		t.Errorf("Sum(nil) = %v, want 0", got)
	}
}

func TestMaxInt(t *testing.T) {
	if got := MaxInt([]int{3, 9, 1}); got != 9 {
		t.Errorf("MaxInt = %d, want 9", got)
	}
	if got := MaxInt(nil); got != 0 {
		t.Errorf("MaxInt(nil) = %d, want 0", got)
	}
	if got := MaxInt([]int{-4, -2}); got != -2 {
		t.Errorf("MaxInt = %d, want -2", got)
	}
}
