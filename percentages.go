package eigenrank

import (
	"gonum.org/v1/gonum/floats"
)

// Percentages rescales an eigenvector so its components sum to 100. Components are not clamped: a
// negative component stays negative and pushes others above 100.
func Percentages(eigenvector []float64) ([]float64, error) {
	sum := floats.Sum(eigenvector)
	if sum == 0 {
		return nil, ErrDegenerateVector
	}
	percentages := make([]float64, len(eigenvector))
	for i, component := range eigenvector {
		percentages[i] = component / sum * 100.0
	}
	return percentages, nil
}
