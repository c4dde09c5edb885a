package aggregate

import "math"

// Mean computes the arithmetic mean. Returns 0 for empty input.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// StdDev computes the sample standard deviation (n-1 denominator,
// MATLAB/NumPy default). Returns 0 for fewer than two values.
func StdDev(values []float64) float64 {
	n := len(values)
	if n < 2 {
		return 0
	}
	m := Mean(values)
	sumSq := 0.0
	for _, v := range values {
		d := v - m
		sumSq += d * d
	}
	return math.Sqrt(sumSq / float64(n-1))
}

// meanStdPresent computes mean and sample std over the non-NaN entries,
// returning how many were present. NaN entries (missing ranks) are
// excluded entirely rather than propagated.
func meanStdPresent(values []float64) (mean, std float64, n int) {
	present := make([]float64, 0, len(values))
	for _, v := range values {
		if !math.IsNaN(v) {
			present = append(present, v)
		}
	}
	if len(present) == 0 {
		return 0, 0, 0
	}
	return Mean(present), StdDev(present), len(present)
}
