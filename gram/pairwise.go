package gram

import (
	"gonum.org/v1/gonum/mat"

	"github.com/molkern/molkern/alchemy"
	"github.com/molkern/molkern/core/parallel"
	"github.com/molkern/molkern/kernels"
	"github.com/molkern/molkern/pkg/errors"
)

func parallelRows(n int, fn func(start, end int)) {
	parallel.ParallelizeWithThreshold(n, parallelThreshold, fn)
}

// parallelThreshold is the row count below which pairwise loops run on the
// calling goroutine.
const parallelThreshold = 32

// pairWeights multiplies every atom-pair kernel score by the element
// similarity of the pair's nuclear charges and by the cutoff weight of each
// atom's radial distance. Absent inputs contribute a factor of 1.
type pairWeights struct {
	sim        *mat.Dense
	z1, z2     []int
	cut1, cut2 []float64
}

func (w *pairWeights) at(i, j int) float64 {
	if w == nil {
		return 1
	}
	weight := 1.0
	if w.sim != nil {
		weight = w.sim.At(w.z1[i]-1, w.z2[j]-1)
	}
	if w.cut1 != nil {
		weight *= w.cut1[i]
	}
	if w.cut2 != nil {
		weight *= w.cut2[j]
	}
	return weight
}

func buildPairWeights(cfg Config, charges1, charges2 []int, dists1, dists2 []float64, n1, n2 int) (*pairWeights, error) {
	if charges1 == nil && charges2 == nil && dists1 == nil && dists2 == nil {
		return nil, nil
	}
	w := &pairWeights{}

	if (charges1 == nil) != (charges2 == nil) {
		return nil, errors.NewValidationError("charges", "nuclear charges must be supplied for both inputs or neither", nil)
	}
	if charges1 != nil {
		if len(charges1) != n1 {
			return nil, errors.NewDimensionError("gram.charges", n1, len(charges1), 0)
		}
		if len(charges2) != n2 {
			return nil, errors.NewDimensionError("gram.charges", n2, len(charges2), 0)
		}
		emax := cfg.emax()
		for _, z := range charges1 {
			if z < 1 || z > emax {
				return nil, errors.NewValidationError("charges", "nuclear charge outside element-similarity table", z)
			}
		}
		for _, z := range charges2 {
			if z < 1 || z > emax {
				return nil, errors.NewValidationError("charges", "nuclear charge outside element-similarity table", z)
			}
		}
		sim, err := alchemy.SimilarityMatrix(cfg.mode(), emax)
		if err != nil {
			return nil, err
		}
		w.sim = sim
		w.z1 = charges1
		w.z2 = charges2
	}

	if dists1 != nil || dists2 != nil {
		if cfg.CutDistance <= 0 {
			return nil, errors.NewValidationError("cut_distance", "must be positive when radial distances are supplied", cfg.CutDistance)
		}
		if dists1 != nil && len(dists1) != n1 {
			return nil, errors.NewDimensionError("gram.distances", n1, len(dists1), 0)
		}
		if dists2 != nil && len(dists2) != n2 {
			return nil, errors.NewDimensionError("gram.distances", n2, len(dists2), 0)
		}
		w.cut1 = cutoffWeights(dists1, cfg.CutDistance, cfg.CutStart)
		w.cut2 = cutoffWeights(dists2, cfg.CutDistance, cfg.CutStart)
	}
	return w, nil
}

// checkAtomRows verifies that every feature row has width d. d < 0 means
// take the width from the first row.
func checkAtomRows(op string, x [][]float64, d int) (int, error) {
	if len(x) == 0 {
		return 0, errors.Wrap(errors.ErrEmptyData, op+": empty representation")
	}
	if d < 0 {
		d = len(x[0])
	}
	for _, row := range x {
		if len(row) != d {
			return 0, errors.NewDimensionError(op, d, len(row), 1)
		}
	}
	return d, nil
}

// atomicPairwise is the single pairwise routine behind the atomic entry
// points. The symmetric path computes the upper triangle and mirrors it;
// both paths share the same evaluation so the two can never drift apart.
func atomicPairwise(x1, x2 [][]float64, kern kernels.Kernel, w *pairWeights, symmetric bool) []*mat.Dense {
	n1, n2 := len(x1), len(x2)
	need := kern.Terms()
	nparams := kern.NumParams()

	out := make([]*mat.Dense, nparams)
	for p := range out {
		out[p] = mat.NewDense(n1, n2, nil)
	}

	parallelRows(n1, func(start, end int) {
		for i := start; i < end; i++ {
			j0 := 0
			if symmetric {
				j0 = i
			}
			for j := j0; j < n2; j++ {
				t := kernels.TermsFromVectors(x1[i], x2[j], need)
				weight := w.at(i, j)
				for p := 0; p < nparams; p++ {
					v := weight * kern.Evaluate(t, p)
					out[p].Set(i, j, v)
					if symmetric && i != j {
						out[p].Set(j, i, v)
					}
				}
			}
		}
	})
	return out
}
