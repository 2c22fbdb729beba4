package kernels

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/molkern/molkern/pkg/errors"
	"github.com/molkern/molkern/pkg/log"
)

// varianceFloor is the smallest eigenvalue treated as carrying signal.
// Components below it are zero-filled and reported through the warning
// handler rather than scaled by a near-zero square root.
const varianceFloor = 1e-12

// KPCA projects the samples behind a precomputed kernel matrix onto their
// top n principal components in feature space. The kernel matrix is
// double-centered, diagonalized, and each selected eigenvector is scaled
// by the square root of its eigenvalue. The result has one row per
// component, ordered by decreasing eigenvalue, and one column per sample.
func KPCA(k mat.Matrix, n int) (*mat.Dense, error) {
	r, c := k.Dims()
	if r != c {
		return nil, errors.NewDimensionError("kpca", r, c, 1)
	}
	if r == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, "kpca: empty kernel matrix")
	}
	if n < 1 || n > r {
		return nil, errors.NewValueError("kpca", "component count must be between 1 and the number of samples")
	}

	logger := log.GetLoggerWithName("kpca")
	logger.Debug("projecting kernel matrix",
		log.MoleculesKey, r,
		log.ComponentsKey, n,
	)

	centered := centerKernel(k)

	var eig mat.EigenSym
	if !eig.Factorize(centered, true) {
		return nil, errors.NewValueError("kpca", "eigendecomposition failed to converge")
	}
	values := eig.Values(nil)
	var vectors mat.Dense
	eig.VectorsTo(&vectors)

	// Eigenvalues come back in ascending order; the projection wants the
	// largest first.
	out := mat.NewDense(n, r, nil)
	zeroed := 0
	for comp := 0; comp < n; comp++ {
		idx := r - 1 - comp
		lambda := values[idx]
		if lambda < varianceFloor {
			zeroed++
			continue
		}
		scale := math.Sqrt(lambda)
		for j := 0; j < r; j++ {
			out.Set(comp, j, vectors.At(j, idx)*scale)
		}
	}
	if zeroed > 0 {
		errors.Warn(errors.NewZeroVarianceWarning("kpca", zeroed, varianceFloor))
	}
	return out, nil
}

// centerKernel applies the double-centering transform
// K' = K - 1K/n - K1/n + 1K1/n^2 with 1 the all-ones matrix.
func centerKernel(k mat.Matrix) *mat.SymDense {
	n, _ := k.Dims()

	rowMean := make([]float64, n)
	var total float64
	for i := 0; i < n; i++ {
		var sum float64
		for j := 0; j < n; j++ {
			sum += k.At(i, j)
		}
		rowMean[i] = sum / float64(n)
		total += sum
	}
	grandMean := total / float64(n*n)

	centered := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			centered.SetSym(i, j, k.At(i, j)-rowMean[i]-rowMean[j]+grandMean)
		}
	}
	return centered
}
