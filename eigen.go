package eigenrank

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Eigenpair is an approximation of a matrix's dominant eigenvalue and eigenvector.
type Eigenpair struct {
	Value  float64
	Vector []float64

	// Iterations is the number of power iteration steps that were run.
	Iterations int

	// Converged is false when the iteration cap was reached before successive eigenvalue estimates agreed
	// to within epsilon. The values are still the last ones computed.
	Converged bool
}

// PowerIteration approximates the dominant eigenpair of a non-negative square matrix.
type PowerIteration struct {
	Epsilon       float64
	MaxIterations int
}

// DefaultPowerIteration stops when the eigenvalue estimate moves by less than 1e-10, or after 1000 steps.
func DefaultPowerIteration() PowerIteration {
	return PowerIteration{Epsilon: 1.0e-10, MaxIterations: 1000}
}

// Solve starts from the all-ones vector and repeatedly multiplies by matrix, normalizing to unit length
// and estimating the eigenvalue as v·(Av). Hitting the iteration cap is not an error.
//
// There is no shift or deflation, so the result is only meaningful when the matrix has a unique dominant
// real eigenvalue, which holds for the non-negative matrices built from match results.
func (p PowerIteration) Solve(matrix mat.Matrix) (*Eigenpair, error) {
	r, c := matrix.Dims()
	if r != c {
		return nil, ErrNotSquare
	}

	ones := make([]float64, r)
	for i := range ones {
		ones[i] = 1
	}
	v := mat.NewVecDense(r, ones)
	next := mat.NewVecDense(r, nil)
	av := mat.NewVecDense(r, nil)

	var lambda float64
	result := &Eigenpair{}
	for result.Iterations < p.MaxIterations {
		result.Iterations++

		next.MulVec(matrix, v)
		magnitude := mat.Norm(next, 2)
		if magnitude == 0 {
			return nil, ErrDegenerateVector
		}
		v.ScaleVec(1/magnitude, next)

		av.MulVec(matrix, v)
		lambdaNext := mat.Dot(v, av)

		if math.Abs(lambdaNext-lambda) < p.Epsilon {
			lambda = lambdaNext
			result.Converged = true
			break
		}
		lambda = lambdaNext
	}

	result.Value = lambda
	result.Vector = mat.Col(nil, 0, v)
	return result, nil
}
