// Package kernels implements the kernel functions used to turn molecular
// feature vectors into Gram matrices, plus kernel principal component
// analysis.
//
// Two surfaces are provided. The whole-matrix functions (Gaussian,
// Laplacian, Linear, Matern, Sargan, Wasserstein) evaluate one kernel over
// two sets of global representations and return a dense Gram matrix. The
// Kernel variants (GaussianKernel, MaternKernel, ...) carry parameter lists
// and pairwise evaluation rules; the aggregation engine sweeps them over
// atomic representations, producing one Gram matrix per parameter value.
package kernels

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/molkern/molkern/core/parallel"
	"github.com/molkern/molkern/pkg/errors"
)

// parallelThreshold is the row count below which Gram matrices are filled
// sequentially.
const parallelThreshold = 64

// pairwise fills an n x m Gram matrix with f applied to every row pair.
func pairwise(x, y *mat.Dense, op string, f func(u, v []float64) float64) (*mat.Dense, error) {
	n, d := x.Dims()
	m, d2 := y.Dims()
	if n == 0 || m == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, op)
	}
	if d != d2 {
		return nil, errors.NewDimensionError(op, d, d2, 1)
	}

	k := mat.NewDense(n, m, nil)
	parallel.ParallelizeWithThreshold(n, parallelThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			u := x.RawRowView(i)
			for j := 0; j < m; j++ {
				k.Set(i, j, f(u, y.RawRowView(j)))
			}
		}
	})
	return k, nil
}

// pairwiseSymmetric fills an n x n Gram matrix from a single set, computing
// only the upper triangle and mirroring it. The result must match the
// two-set form called with identical inputs on both sides; only the work is
// halved, not the formula.
func pairwiseSymmetric(x *mat.Dense, op string, f func(u, v []float64) float64) (*mat.Dense, error) {
	n, _ := x.Dims()
	if n == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, op)
	}

	k := mat.NewDense(n, n, nil)
	parallel.ParallelizeWithThreshold(n, parallelThreshold, func(start, end int) {
		for i := start; i < end; i++ {
			u := x.RawRowView(i)
			for j := i; j < n; j++ {
				v := f(u, x.RawRowView(j))
				k.Set(i, j, v)
				k.Set(j, i, v)
			}
		}
	})
	return k, nil
}

// Gaussian computes the Gram matrix K[i][j] = exp(-||x_i-y_j||^2/(2 sigma^2)).
func Gaussian(x, y *mat.Dense, sigma float64) (*mat.Dense, error) {
	if err := checkSigma(sigma); err != nil {
		return nil, err
	}
	inv := -1.0 / (2 * sigma * sigma)
	return pairwise(x, y, "gaussian_kernel", func(u, v []float64) float64 {
		return math.Exp(l2DistanceSq(u, v) * inv)
	})
}

// GaussianSymmetric computes Gaussian(x, x, sigma) using only the upper
// triangle.
func GaussianSymmetric(x *mat.Dense, sigma float64) (*mat.Dense, error) {
	if err := checkSigma(sigma); err != nil {
		return nil, err
	}
	inv := -1.0 / (2 * sigma * sigma)
	return pairwiseSymmetric(x, "gaussian_kernel_symmetric", func(u, v []float64) float64 {
		return math.Exp(l2DistanceSq(u, v) * inv)
	})
}

// Laplacian computes the Gram matrix K[i][j] = exp(-|x_i-y_j|_1/sigma).
func Laplacian(x, y *mat.Dense, sigma float64) (*mat.Dense, error) {
	if err := checkSigma(sigma); err != nil {
		return nil, err
	}
	inv := -1.0 / sigma
	return pairwise(x, y, "laplacian_kernel", func(u, v []float64) float64 {
		return math.Exp(l1Distance(u, v) * inv)
	})
}

// LaplacianSymmetric computes Laplacian(x, x, sigma) using only the upper
// triangle.
func LaplacianSymmetric(x *mat.Dense, sigma float64) (*mat.Dense, error) {
	if err := checkSigma(sigma); err != nil {
		return nil, err
	}
	inv := -1.0 / sigma
	return pairwiseSymmetric(x, "laplacian_kernel_symmetric", func(u, v []float64) float64 {
		return math.Exp(l1Distance(u, v) * inv)
	})
}

// Linear computes the Gram matrix of pairwise dot products.
func Linear(x, y *mat.Dense) (*mat.Dense, error) {
	return pairwise(x, y, "linear_kernel", dot)
}

// Metric selects the distance underlying the Matern kernel.
type Metric string

// Supported Matern metrics.
const (
	MetricL1 Metric = "l1"
	MetricL2 Metric = "l2"
)

// Matern computes the half-integer-order Matern kernel of order 0, 1 or 2
// over the selected metric:
//
//	order 0: exp(-d/sigma)
//	order 1: exp(-sqrt(3) d/sigma) (1 + sqrt(3) d/sigma)
//	order 2: exp(-sqrt(5) d/sigma) (1 + sqrt(5) d/sigma + 5 d^2/(3 sigma^2))
func Matern(x, y *mat.Dense, sigma float64, order int, metric Metric) (*mat.Dense, error) {
	if err := checkSigma(sigma); err != nil {
		return nil, err
	}
	if order < 0 || order > 2 {
		return nil, errors.NewValidationError("order", "must be 0, 1 or 2", order)
	}
	distance, err := metricDistance(metric)
	if err != nil {
		return nil, err
	}
	return pairwise(x, y, "matern_kernel", func(u, v []float64) float64 {
		return maternClosed(distance(u, v), sigma, order)
	})
}

func metricDistance(metric Metric) (func(u, v []float64) float64, error) {
	switch metric {
	case MetricL1:
		return l1Distance, nil
	case MetricL2:
		return func(u, v []float64) float64 {
			return math.Sqrt(l2DistanceSq(u, v))
		}, nil
	default:
		return nil, errors.NewValidationError("metric", `must be "l1" or "l2"`, string(metric))
	}
}

func maternClosed(d, sigma float64, order int) float64 {
	switch order {
	case 0:
		return math.Exp(-d / sigma)
	case 1:
		r := math.Sqrt(3) * d / sigma
		return math.Exp(-r) * (1 + r)
	default:
		r := math.Sqrt(5) * d / sigma
		return math.Exp(-r) * (1 + r + 5.0/3.0*d*d/(sigma*sigma))
	}
}

// Sargan computes the Gram matrix of the Sargan kernel
// exp(-d1/sigma) (1 + sum_k gamma_k/sigma^k d1^k) with d1 the L1 distance.
// An empty gamma list reduces to the Laplacian kernel.
func Sargan(x, y *mat.Dense, sigma float64, gammas []float64) (*mat.Dense, error) {
	if err := checkSigma(sigma); err != nil {
		return nil, err
	}
	return pairwise(x, y, "sargan_kernel", func(u, v []float64) float64 {
		return sarganValue(l1Distance(u, v), sigma, gammas)
	})
}

func sarganValue(d1, sigma float64, gammas []float64) float64 {
	factor := 1.0
	term := 1.0
	for _, gamma := range gammas {
		term *= d1 / sigma
		factor += gamma * term
	}
	return math.Exp(-d1/sigma) * factor
}

// Wasserstein computes the Gram matrix K[i][j] = exp(-W1(x_i, y_j)/sigma)
// where W1 is the 1D earth-mover distance between the vectors treated as
// empirical distributions.
func Wasserstein(x, y *mat.Dense, sigma float64) (*mat.Dense, error) {
	if err := checkSigma(sigma); err != nil {
		return nil, err
	}
	inv := -1.0 / sigma
	return pairwise(x, y, "wasserstein_kernel", func(u, v []float64) float64 {
		return math.Exp(wasserstein1D(u, v) * inv)
	})
}

func checkSigma(sigma float64) error {
	if sigma <= 0 || math.IsNaN(sigma) || math.IsInf(sigma, 0) {
		return errors.NewValidationError("sigma", "must be a positive finite number", sigma)
	}
	return nil
}
