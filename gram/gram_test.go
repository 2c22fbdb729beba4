package gram

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

// randomAtoms builds one molecule's per-atom feature rows.
func randomAtoms(rng *rand.Rand, atoms, d int) [][]float64 {
	x := make([][]float64, atoms)
	for i := range x {
		x[i] = make([]float64, d)
		for j := range x[i] {
			x[i][j] = rng.Float64()*2 - 1
		}
	}
	return x
}

// randomMolecules builds a padded per-atom representation set with the
// given valid atom counts. Padding rows are filled with garbage so tests
// catch any entry point that fails to exclude them.
func randomMolecules(rng *rand.Rand, natoms []int, maxAtoms, d int, garbage float64) [][][]float64 {
	x := make([][][]float64, len(natoms))
	for a, n := range natoms {
		x[a] = randomAtoms(rng, maxAtoms, d)
		for i := n; i < maxAtoms; i++ {
			for j := range x[a][i] {
				x[a][i][j] = garbage
			}
		}
	}
	return x
}

func requireEqualMatrices(t *testing.T, want, got []*mat.Dense, tol float64) {
	t.Helper()
	require.Equal(t, len(want), len(got))
	for p := range want {
		require.True(t, mat.EqualApprox(want[p], got[p], tol),
			"matrices differ at parameter index %d", p)
	}
}

func requireNoNaN(t *testing.T, ms []*mat.Dense) {
	t.Helper()
	for p, m := range ms {
		r, c := m.Dims()
		for i := 0; i < r; i++ {
			for j := 0; j < c; j++ {
				require.False(t, math.IsNaN(m.At(i, j)),
					"NaN at (%d,%d) in matrix %d", i, j, p)
			}
		}
	}
}
