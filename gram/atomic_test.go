package gram

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/molkern/molkern/alchemy"
	"github.com/molkern/molkern/kernels"
)

func TestAtomicKernels(t *testing.T) {
	rng := rand.New(rand.NewSource(21))
	x1 := randomAtoms(rng, 12, 6)
	x2 := randomAtoms(rng, 9, 6)
	cfg := Config{Kernel: kernels.GaussianKernel{Sigma: []float64{1.0, 2.5}}}

	ks, err := AtomicKernels(x1, x2, cfg, AtomicOptions{})
	require.NoError(t, err)
	require.Len(t, ks, 2)
	requireNoNaN(t, ks)

	for p, sigma := range []float64{1.0, 2.5} {
		r, c := ks[p].Dims()
		require.Equal(t, 12, r)
		require.Equal(t, 9, c)
		for i := 0; i < r; i++ {
			for j := 0; j < c; j++ {
				var d2 float64
				for f := range x1[i] {
					d := x1[i][f] - x2[j][f]
					d2 += d * d
				}
				want := math.Exp(-d2 / (2 * sigma * sigma))
				assert.InDelta(t, want, ks[p].At(i, j), 1e-12)
			}
		}
	}
}

func TestAtomicSymmetricMatchesAsymmetric(t *testing.T) {
	rng := rand.New(rand.NewSource(22))
	x := randomAtoms(rng, 40, 8)
	charges := make([]int, 40)
	dists := make([]float64, 40)
	for i := range charges {
		charges[i] = []int{1, 6, 7, 8}[rng.Intn(4)]
		dists[i] = rng.Float64() * 6
	}

	pt, err := alchemy.PeriodicTable(1.6, 2.5)
	require.NoError(t, err)
	cfg := Config{
		Kernel:      kernels.LaplacianKernel{Sigma: []float64{1.5}},
		Alchemy:     pt,
		CutDistance: 5.0,
		CutStart:    0.4,
	}
	opts := AtomicOptions{Charges1: charges, Dists1: dists}

	sym, err := AtomicSymmetricKernels(x, cfg, opts)
	require.NoError(t, err)
	asym, err := AtomicKernels(x, x, cfg, AtomicOptions{
		Charges1: charges, Charges2: charges,
		Dists1: dists, Dists2: dists,
	})
	require.NoError(t, err)

	requireEqualMatrices(t, asym, sym, 1e-12)
	requireNoNaN(t, sym)
}

func TestAtomicAlchemicalWeighting(t *testing.T) {
	rng := rand.New(rand.NewSource(23))
	x := randomAtoms(rng, 6, 4)

	t.Run("Off mode zeroes cross-element pairs", func(t *testing.T) {
		charges := []int{1, 1, 1, 8, 8, 8}
		cfg := Config{Kernel: kernels.GaussianKernel{Sigma: []float64{1}}}

		ks, err := AtomicSymmetricKernels(x, cfg, AtomicOptions{Charges1: charges})
		require.NoError(t, err)
		plain, err := AtomicSymmetricKernels(x, cfg, AtomicOptions{})
		require.NoError(t, err)

		for i := 0; i < 6; i++ {
			for j := 0; j < 6; j++ {
				if charges[i] == charges[j] {
					assert.InDelta(t, plain[0].At(i, j), ks[0].At(i, j), 1e-12)
				} else {
					assert.Equal(t, 0.0, ks[0].At(i, j))
				}
			}
		}
	})

	t.Run("Raw identity equals built-in off", func(t *testing.T) {
		charges := []int{1, 6, 8, 1, 6, 8}
		offK, err := AtomicSymmetricKernels(x, Config{}, AtomicOptions{Charges1: charges})
		require.NoError(t, err)

		identity, err := alchemy.Off().Matrix(alchemy.DefaultEMax)
		require.NoError(t, err)
		raw, err := alchemy.Raw(identity)
		require.NoError(t, err)
		rawK, err := AtomicSymmetricKernels(x, Config{Alchemy: raw}, AtomicOptions{Charges1: charges})
		require.NoError(t, err)

		requireEqualMatrices(t, offK, rawK, 1e-12)
	})

	t.Run("Periodic table equals raw copy of itself", func(t *testing.T) {
		charges := []int{1, 6, 8, 1, 6, 8}
		pt, err := alchemy.PeriodicTable(1.6, 2.5)
		require.NoError(t, err)

		built, err := AtomicSymmetricKernels(x, Config{Alchemy: pt}, AtomicOptions{Charges1: charges})
		require.NoError(t, err)

		table, err := pt.Matrix(alchemy.DefaultEMax)
		require.NoError(t, err)
		raw, err := alchemy.Raw(table)
		require.NoError(t, err)
		copied, err := AtomicSymmetricKernels(x, Config{Alchemy: raw}, AtomicOptions{Charges1: charges})
		require.NoError(t, err)

		requireEqualMatrices(t, built, copied, 1e-12)
	})
}

func TestAtomicCutoff(t *testing.T) {
	rng := rand.New(rand.NewSource(24))
	x := randomAtoms(rng, 4, 3)
	cfg := Config{
		Kernel:      kernels.GaussianKernel{Sigma: []float64{1}},
		CutDistance: 3.0,
		CutStart:    0.5,
	}

	// Atom 3 sits beyond the cutoff, so its row and column vanish.
	dists := []float64{0.5, 1.0, 1.2, 10.0}
	ks, err := AtomicSymmetricKernels(x, cfg, AtomicOptions{Dists1: dists})
	require.NoError(t, err)

	for i := 0; i < 4; i++ {
		assert.Equal(t, 0.0, ks[0].At(i, 3))
		assert.Equal(t, 0.0, ks[0].At(3, i))
	}
	// Atoms inside the plateau are unweighted.
	plain, err := AtomicSymmetricKernels(x, Config{Kernel: cfg.Kernel}, AtomicOptions{})
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			assert.InDelta(t, plain[0].At(i, j), ks[0].At(i, j), 1e-12)
		}
	}
}

func TestAtomicValidation(t *testing.T) {
	rng := rand.New(rand.NewSource(25))
	x := randomAtoms(rng, 5, 4)

	t.Run("Ragged feature rows", func(t *testing.T) {
		bad := randomAtoms(rng, 5, 4)
		bad[2] = bad[2][:3]
		_, err := AtomicSymmetricKernels(bad, Config{}, AtomicOptions{})
		require.Error(t, err)
	})

	t.Run("Feature dimension mismatch between sets", func(t *testing.T) {
		other := randomAtoms(rng, 5, 6)
		_, err := AtomicKernels(x, other, Config{}, AtomicOptions{})
		require.Error(t, err)
	})

	t.Run("Charges on one side only", func(t *testing.T) {
		_, err := AtomicKernels(x, x, Config{}, AtomicOptions{Charges1: []int{1, 1, 1, 1, 1}})
		require.Error(t, err)
	})

	t.Run("Charge count mismatch", func(t *testing.T) {
		_, err := AtomicSymmetricKernels(x, Config{}, AtomicOptions{Charges1: []int{1, 1}})
		require.Error(t, err)
	})

	t.Run("Charge outside similarity table", func(t *testing.T) {
		_, err := AtomicSymmetricKernels(x, Config{}, AtomicOptions{Charges1: []int{1, 1, 1, 1, 999}})
		require.Error(t, err)
	})

	t.Run("Distances without cutoff distance", func(t *testing.T) {
		_, err := AtomicSymmetricKernels(x, Config{}, AtomicOptions{Dists1: []float64{1, 1, 1, 1, 1}})
		require.Error(t, err)
	})

	t.Run("Second-side options on the symmetric form", func(t *testing.T) {
		_, err := AtomicSymmetricKernels(x, Config{}, AtomicOptions{Charges2: []int{1, 1, 1, 1, 1}})
		require.Error(t, err)
	})

	t.Run("Invalid kernel parameters", func(t *testing.T) {
		cfg := Config{Kernel: kernels.GaussianKernel{Sigma: []float64{-1}}}
		_, err := AtomicSymmetricKernels(x, cfg, AtomicOptions{})
		require.Error(t, err)
	})
}
