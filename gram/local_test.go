package gram

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/molkern/molkern/alchemy"
	"github.com/molkern/molkern/kernels"
	"github.com/molkern/molkern/pkg/errors"
)

func TestLocalSymmetricMatchesAsymmetric(t *testing.T) {
	rng := rand.New(rand.NewSource(31))
	natoms := []int{3, 5, 2, 4, 5, 1}
	x := randomMolecules(rng, natoms, 5, 7, 99.0)
	cfg := Config{Kernel: kernels.GaussianKernel{Sigma: []float64{0.5, 2.0, 8.0}}}

	sym, err := LocalSymmetricKernels(x, natoms, cfg, LocalOptions{})
	require.NoError(t, err)
	asym, err := LocalKernels(x, x, natoms, natoms, cfg, LocalOptions{})
	require.NoError(t, err)

	require.Len(t, sym, 3)
	requireEqualMatrices(t, asym, sym, 1e-12)
	requireNoNaN(t, sym)
}

func TestLocalExcludesPadding(t *testing.T) {
	rng := rand.New(rand.NewSource(32))
	natoms := []int{2, 3, 4}
	x := randomMolecules(rng, natoms, 4, 5, 0.0)

	// Same valid atoms, wildly different padding.
	polluted := make([][][]float64, len(x))
	for a := range x {
		polluted[a] = make([][]float64, len(x[a]))
		for i := range x[a] {
			row := make([]float64, len(x[a][i]))
			copy(row, x[a][i])
			if i >= natoms[a] {
				for j := range row {
					row[j] = 1e6
				}
			}
			polluted[a][i] = row
		}
	}

	cfg := Config{Kernel: kernels.LaplacianKernel{Sigma: []float64{1.3}}}
	clean, err := LocalSymmetricKernels(x, natoms, cfg, LocalOptions{})
	require.NoError(t, err)
	dirty, err := LocalSymmetricKernels(polluted, natoms, cfg, LocalOptions{})
	require.NoError(t, err)

	requireEqualMatrices(t, clean, dirty, 1e-12)
}

func TestLocalEqualsAtomicSubBlockSums(t *testing.T) {
	rng := rand.New(rand.NewSource(33))
	natoms := []int{3, 4, 2}
	x := randomMolecules(rng, natoms, 4, 6, 7.0)
	cfg := Config{Kernel: kernels.GaussianKernel{Sigma: []float64{1.7}}}

	local, err := LocalSymmetricKernels(x, natoms, cfg, LocalOptions{})
	require.NoError(t, err)

	for a := range x {
		for b := range x {
			atomic, err := AtomicKernels(x[a][:natoms[a]], x[b][:natoms[b]], cfg, AtomicOptions{})
			require.NoError(t, err)

			var sum float64
			r, c := atomic[0].Dims()
			for i := 0; i < r; i++ {
				for j := 0; j < c; j++ {
					sum += atomic[0].At(i, j)
				}
			}
			assert.InDelta(t, sum, local[0].At(a, b), 1e-10, "pair (%d,%d)", a, b)
		}
	}
}

// Five molecules through the order-2 Matern kernel, checked against the
// closed-form series summed per atom pair.
func TestLocalMaternEndToEnd(t *testing.T) {
	rng := rand.New(rand.NewSource(34))
	natoms := []int{4, 2, 5, 3, 4}
	x := randomMolecules(rng, natoms, 5, 8, 42.0)

	const sigma = 5.0
	cfg := Config{Kernel: kernels.MaternKernel{
		Sigma:  []float64{sigma},
		Order:  []int{2},
		Metric: kernels.MetricL2,
	}}

	local, err := LocalSymmetricKernels(x, natoms, cfg, LocalOptions{})
	require.NoError(t, err)

	for a := range x {
		for b := range x {
			var want float64
			for i := 0; i < natoms[a]; i++ {
				for j := 0; j < natoms[b]; j++ {
					var d2 float64
					for f := range x[a][i] {
						d := x[a][i][f] - x[b][j][f]
						d2 += d * d
					}
					d := math.Sqrt(d2)
					r := math.Sqrt(5) * d / sigma
					want += math.Exp(-r) * (1 + r + 5.0/3.0*d2/(sigma*sigma))
				}
			}
			assert.InDelta(t, want, local[0].At(a, b), 1e-8, "pair (%d,%d)", a, b)
		}
	}
}

func TestLocalWithWeighting(t *testing.T) {
	rng := rand.New(rand.NewSource(35))
	natoms := []int{3, 4}
	x := randomMolecules(rng, natoms, 4, 5, 11.0)
	charges := [][]int{{1, 6, 8, 0}, {6, 6, 1, 8}}
	dists := [][]float64{{0.4, 1.1, 2.0, 0}, {0.2, 0.9, 1.5, 2.8}}

	pt, err := alchemy.PeriodicTable(1.6, 2.5)
	require.NoError(t, err)
	cfg := Config{
		Kernel:      kernels.GaussianKernel{Sigma: []float64{1.2}},
		Alchemy:     pt,
		CutDistance: 3.0,
		CutStart:    0.3,
	}
	opts := LocalOptions{Charges1: charges, Dists1: dists}

	sym, err := LocalSymmetricKernels(x, natoms, cfg, opts)
	require.NoError(t, err)
	asym, err := LocalKernels(x, x, natoms, natoms, cfg, LocalOptions{
		Charges1: charges, Charges2: charges,
		Dists1: dists, Dists2: dists,
	})
	require.NoError(t, err)

	requireEqualMatrices(t, asym, sym, 1e-12)

	// The charge entry on a padding row is never read, even when invalid.
	table, err := alchemy.SimilarityMatrix(pt, alchemy.DefaultEMax)
	require.NoError(t, err)
	var want float64
	for i := 0; i < natoms[0]; i++ {
		for j := 0; j < natoms[1]; j++ {
			var d2 float64
			for f := range x[0][i] {
				d := x[0][i][f] - x[1][j][f]
				d2 += d * d
			}
			w := table.At(charges[0][i]-1, charges[1][j]-1) *
				cutoffWeight(dists[0][i], 3.0, 0.3) *
				cutoffWeight(dists[1][j], 3.0, 0.3)
			want += w * math.Exp(-d2/(2*1.2*1.2))
		}
	}
	assert.InDelta(t, want, sym[0].At(0, 1), 1e-10)
}

func TestLocalValidation(t *testing.T) {
	rng := rand.New(rand.NewSource(36))
	x := randomMolecules(rng, []int{2, 3}, 3, 4, 0.0)

	t.Run("Atom count exceeds padded axis", func(t *testing.T) {
		_, err := LocalSymmetricKernels(x, []int{2, 4}, Config{}, LocalOptions{})
		require.Error(t, err)
		var shapeErr *errors.InputShapeError
		assert.True(t, errors.As(err, &shapeErr))
	})

	t.Run("Negative atom count", func(t *testing.T) {
		_, err := LocalSymmetricKernels(x, []int{2, -1}, Config{}, LocalOptions{})
		require.Error(t, err)
	})

	t.Run("Atom count array length mismatch", func(t *testing.T) {
		_, err := LocalSymmetricKernels(x, []int{2}, Config{}, LocalOptions{})
		require.Error(t, err)
	})

	t.Run("Feature length mismatch between sets", func(t *testing.T) {
		other := randomMolecules(rng, []int{2, 3}, 3, 6, 0.0)
		_, err := LocalKernels(x, other, []int{2, 3}, []int{2, 3}, Config{}, LocalOptions{})
		require.Error(t, err)
	})

	t.Run("Charges too short for valid atoms", func(t *testing.T) {
		_, err := LocalSymmetricKernels(x, []int{2, 3}, Config{}, LocalOptions{
			Charges1: [][]int{{1, 1}, {1, 1}},
		})
		require.Error(t, err)
	})
}
