package eigenrank

import (
	"errors"
	"math"
	"math/cmplx"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

var _ = Describe("PowerIteration", func() {

	var solver PowerIteration

	// Lions, Bears, Eagles and Wolves from fixtures/round_robin.txt.
	roundRobin := func() *mat.Dense {
		return mat.NewDense(4, 4, []float64{
			0, 3, 0, 1,
			0, 0, 3, 0,
			3, 0, 0, 1,
			1, 3, 1, 0,
		})
	}

	BeforeEach(func() {
		solver = DefaultPowerIteration()
	})

	Describe("#Solve", func() {

		It("converges on a connected schedule", func() {
			eigen, err := solver.Solve(roundRobin())
			Expect(err).To(Succeed())
			Expect(eigen.Converged).To(BeTrue())
			Expect(eigen.Iterations).To(BeNumerically("<", 200))
			Expect(eigen.Value).To(BeNumerically("~", 3.8272449586, 1e-8))
			Expect(floats.Norm(eigen.Vector, 2)).To(BeNumerically("~", 1, 1e-12))
		})

		It("agrees with a full eigen decomposition", func() {
			var decomposition mat.Eigen
			Expect(decomposition.Factorize(roundRobin(), mat.EigenNone)).To(BeTrue())

			dominant := 0.0
			for _, value := range decomposition.Values(nil) {
				if cmplx.Abs(value) > math.Abs(dominant) {
					dominant = real(value)
				}
			}

			eigen, err := solver.Solve(roundRobin())
			Expect(err).To(Succeed())
			Expect(eigen.Value).To(BeNumerically("~", dominant, 1e-6))

			// Av = λv for the returned vector.
			var av mat.VecDense
			av.MulVec(roundRobin(), mat.NewVecDense(4, eigen.Vector))
			for i, component := range eigen.Vector {
				Expect(av.AtVec(i)).To(BeNumerically("~", eigen.Value*component, 1e-6))
			}
		})

		It("is deterministic", func() {
			first, err := solver.Solve(roundRobin())
			Expect(err).To(Succeed())
			second, err := solver.Solve(roundRobin())
			Expect(err).To(Succeed())
			Expect(second).To(Equal(first))
		})

		It("converges immediately on a single dominant result", func() {
			matrix := mat.NewDense(4, 4, nil)
			matrix.Set(0, 1, 9)

			eigen, err := solver.Solve(matrix)
			Expect(err).To(Succeed())
			Expect(eigen.Converged).To(BeTrue())
			Expect(eigen.Iterations).To(Equal(1))
			Expect(eigen.Value).To(BeZero())
			Expect(eigen.Vector).To(Equal([]float64{1, 0, 0, 0}))
		})

		It("returns its last estimate without an error when the cap is reached", func() {
			// The draw between C and D makes the estimate alternate forever.
			matrix := mat.NewDense(4, 4, []float64{
				0, 3, 3, 0,
				0, 0, 0, 0,
				0, 0, 0, 1,
				0, 3, 1, 0,
			})

			eigen, err := solver.Solve(matrix)
			Expect(err).To(Succeed())
			Expect(eigen.Converged).To(BeFalse())
			Expect(eigen.Iterations).To(Equal(1000))
			Expect(eigen.Value).To(BeNumerically("~", 44.0/26.0, 1e-9))

			solver.MaxIterations = 7
			eigen, err = solver.Solve(matrix)
			Expect(err).To(Succeed())
			Expect(eigen.Converged).To(BeFalse())
			Expect(eigen.Iterations).To(Equal(7))
			Expect(eigen.Value).To(BeNumerically("~", 44.0/161.0, 1e-9))
		})

		It("fails on a matrix without a dominant mode", func() {
			eigen, err := solver.Solve(mat.NewDense(4, 4, nil))
			Expect(eigen).To(BeNil())
			Expect(errors.Is(err, ErrDegenerateVector)).To(BeTrue())
		})

		It("fails when repeated multiplication reaches the zero vector", func() {
			// Nilpotent: A·A = 0, and the estimates differ after the first step.
			matrix := mat.NewDense(2, 2, []float64{
				0, 1,
				0, 0,
			})
			solver.Epsilon = -1
			_, err := solver.Solve(matrix)
			Expect(errors.Is(err, ErrDegenerateVector)).To(BeTrue())
		})

		It("rejects non-square matrices", func() {
			_, err := solver.Solve(mat.NewDense(2, 3, nil))
			Expect(err).To(MatchError(ErrNotSquare))
		})

		It("does not share its vector with the caller", func() {
			eigen, err := solver.Solve(roundRobin())
			Expect(err).To(Succeed())
			eigen.Vector[0] = 100

			again, err := solver.Solve(roundRobin())
			Expect(err).To(Succeed())
			Expect(again.Vector[0]).NotTo(Equal(100.0))
		})

	})

})
