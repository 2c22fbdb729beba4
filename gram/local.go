package gram

import (
	"gonum.org/v1/gonum/mat"

	"github.com/molkern/molkern/alchemy"
	"github.com/molkern/molkern/kernels"
	"github.com/molkern/molkern/pkg/errors"
	"github.com/molkern/molkern/pkg/log"
)

// LocalOptions carries the optional per-atom weighting inputs for the local
// entry points, one slice per molecule. Slices must cover at least each
// molecule's valid atom count.
type LocalOptions struct {
	Charges1, Charges2 [][]int
	Dists1, Dists2     [][]float64
}

// localSide is one validated input set for the local entry points: padded
// per-atom representations, valid atom counts, and optional per-molecule
// weighting columns.
type localSide struct {
	x      [][][]float64
	natoms []int
	z      [][]int
	cut    [][]float64
}

// LocalKernels sums atom-pair kernel scores over the valid atom ranges of
// every molecule pair and returns one n1 x n2 matrix per kernel parameter
// value. Padding rows beyond each molecule's atom count never participate.
func LocalKernels(x1, x2 [][][]float64, n1, n2 []int, cfg Config, opts LocalOptions) ([]*mat.Dense, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	s1, d, err := prepareLocalSide(x1, n1, opts.Charges1, opts.Dists1, cfg, -1)
	if err != nil {
		return nil, err
	}
	s2, _, err := prepareLocalSide(x2, n2, opts.Charges2, opts.Dists2, cfg, d)
	if err != nil {
		return nil, err
	}
	if (s1.z == nil) != (s2.z == nil) {
		return nil, errors.NewValidationError("charges", "nuclear charges must be supplied for both inputs or neither", nil)
	}
	sim, err := localSimilarity(cfg, s1.z != nil)
	if err != nil {
		return nil, err
	}

	kern := cfg.kernel()
	logLocal(kern, len(x1), d)
	return localPairwise(s1, s2, kern, sim, false), nil
}

// LocalSymmetricKernels is the single-set form of LocalKernels. Only the
// molecule-level upper triangle is evaluated and mirrored; the result
// equals LocalKernels(x, x, natoms, natoms, ...) elementwise.
func LocalSymmetricKernels(x [][][]float64, natoms []int, cfg Config, opts LocalOptions) ([]*mat.Dense, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if opts.Charges2 != nil || opts.Dists2 != nil {
		return nil, errors.NewValidationError("options", "symmetric form takes weighting inputs on the first side only", opts)
	}
	s, d, err := prepareLocalSide(x, natoms, opts.Charges1, opts.Dists1, cfg, -1)
	if err != nil {
		return nil, err
	}
	sim, err := localSimilarity(cfg, s.z != nil)
	if err != nil {
		return nil, err
	}

	kern := cfg.kernel()
	logLocal(kern, len(x), d)
	return localPairwise(s, s, kern, sim, true), nil
}

func prepareLocalSide(x [][][]float64, natoms []int, charges [][]int, dists [][]float64, cfg Config, d int) (localSide, int, error) {
	var s localSide
	if len(x) == 0 {
		return s, 0, errors.Wrap(errors.ErrEmptyData, "gram.local: empty representation")
	}
	if len(natoms) != len(x) {
		return s, 0, errors.NewDimensionError("gram.local", len(x), len(natoms), 0)
	}
	if charges != nil && len(charges) != len(x) {
		return s, 0, errors.NewDimensionError("gram.charges", len(x), len(charges), 0)
	}
	if dists != nil && len(dists) != len(x) {
		return s, 0, errors.NewDimensionError("gram.distances", len(x), len(dists), 0)
	}
	if dists != nil && cfg.CutDistance <= 0 {
		return s, 0, errors.NewValidationError("cut_distance", "must be positive when radial distances are supplied", cfg.CutDistance)
	}

	emax := cfg.emax()
	for a := range x {
		n := natoms[a]
		if n < 0 || n > len(x[a]) {
			return s, 0, errors.NewInputShapeError("gram.local", []int{len(x[a])}, []int{n})
		}
		for i := 0; i < n; i++ {
			if d < 0 {
				d = len(x[a][i])
			}
			if len(x[a][i]) != d {
				return s, 0, errors.NewDimensionError("gram.local", d, len(x[a][i]), 1)
			}
		}
		if charges != nil {
			if len(charges[a]) < n {
				return s, 0, errors.NewDimensionError("gram.charges", n, len(charges[a]), 1)
			}
			for i := 0; i < n; i++ {
				if z := charges[a][i]; z < 1 || z > emax {
					return s, 0, errors.NewValidationError("charges", "nuclear charge outside element-similarity table", z)
				}
			}
		}
		if dists != nil && len(dists[a]) < n {
			return s, 0, errors.NewDimensionError("gram.distances", n, len(dists[a]), 1)
		}
	}

	s.x = x
	s.natoms = natoms
	s.z = charges
	if dists != nil {
		s.cut = make([][]float64, len(dists))
		for a := range dists {
			s.cut[a] = cutoffWeights(dists[a], cfg.CutDistance, cfg.CutStart)
		}
	}
	return s, d, nil
}

func localSimilarity(cfg Config, withCharges bool) (*mat.Dense, error) {
	if !withCharges {
		return nil, nil
	}
	return alchemy.SimilarityMatrix(cfg.mode(), cfg.emax())
}

// localPairwise sums atomic kernel scores per molecule pair. The symmetric
// path evaluates only pairs with b >= a and mirrors them; both paths share
// the per-pair summation.
func localPairwise(s1, s2 localSide, kern kernels.Kernel, sim *mat.Dense, symmetric bool) []*mat.Dense {
	m1, m2 := len(s1.x), len(s2.x)
	need := kern.Terms()
	nparams := kern.NumParams()

	out := make([]*mat.Dense, nparams)
	for p := range out {
		out[p] = mat.NewDense(m1, m2, nil)
	}

	parallelRows(m1, func(start, end int) {
		sums := make([]float64, nparams)
		for a := start; a < end; a++ {
			b0 := 0
			if symmetric {
				b0 = a
			}
			for b := b0; b < m2; b++ {
				for p := range sums {
					sums[p] = 0
				}
				for i := 0; i < s1.natoms[a]; i++ {
					for j := 0; j < s2.natoms[b]; j++ {
						t := kernels.TermsFromVectors(s1.x[a][i], s2.x[b][j], need)
						weight := 1.0
						if sim != nil {
							weight = sim.At(s1.z[a][i]-1, s2.z[b][j]-1)
						}
						if s1.cut != nil {
							weight *= s1.cut[a][i]
						}
						if s2.cut != nil {
							weight *= s2.cut[b][j]
						}
						for p := 0; p < nparams; p++ {
							sums[p] += weight * kern.Evaluate(t, p)
						}
					}
				}
				for p := 0; p < nparams; p++ {
					out[p].Set(a, b, sums[p])
					if symmetric && a != b {
						out[p].Set(b, a, sums[p])
					}
				}
			}
		}
	})
	return out
}

func logLocal(kern kernels.Kernel, molecules, d int) {
	logger := log.GetLoggerWithName("gram.local")
	logger.Debug("computing local kernels",
		log.KernelKey, kern.Name(),
		log.MoleculesKey, molecules,
		log.FeaturesKey, d,
		log.ParametersKey, kern.NumParams(),
	)
}
