package utils

// Mean calculates the mean of a slice of float64 values
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	return Sum(values) / float64(len(values))
}

// Sum calculates the sum of a slice of float64 values
func Sum(values []float64) float64 {
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum
}

// MaxInt returns the largest value in a slice of ints, or 0 for an empty slice
func MaxInt(values []int) int {
	max := 0
	for i, v := range values {
		if i == 0 || v > max {
			max = v
		}
	}
	return max
}
