package gram

import (
	"gonum.org/v1/gonum/mat"

	"github.com/molkern/molkern/kernels"
	"github.com/molkern/molkern/pkg/errors"
	"github.com/molkern/molkern/pkg/log"
)

// GlobalKernels scores whole-molecule representations directly, one row per
// molecule, and returns one n1 x n2 Gram matrix per kernel parameter value.
// No alchemical or cutoff weighting applies at this granularity.
func GlobalKernels(x1, x2 *mat.Dense, cfg Config) ([]*mat.Dense, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	r1, r2, err := checkGlobal(x1, x2)
	if err != nil {
		return nil, err
	}
	kern := cfg.kernel()
	logGlobal(kern, r1, x1.RawMatrix().Cols)
	return globalPairwise(x1, x2, r1, r2, kern, false), nil
}

// GlobalSymmetricKernels is the single-set form of GlobalKernels, computing
// the upper triangle and mirroring it.
func GlobalSymmetricKernels(x *mat.Dense, cfg Config) ([]*mat.Dense, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	r, _, err := checkGlobal(x, x)
	if err != nil {
		return nil, err
	}
	kern := cfg.kernel()
	logGlobal(kern, r, x.RawMatrix().Cols)
	return globalPairwise(x, x, r, r, kern, true), nil
}

func checkGlobal(x1, x2 *mat.Dense) (int, int, error) {
	if x1 == nil || x2 == nil {
		return 0, 0, errors.Wrap(errors.ErrEmptyData, "gram.global: nil representation")
	}
	r1, c1 := x1.Dims()
	r2, c2 := x2.Dims()
	if r1 == 0 || r2 == 0 {
		return 0, 0, errors.Wrap(errors.ErrEmptyData, "gram.global: empty representation")
	}
	if c1 != c2 {
		return 0, 0, errors.NewDimensionError("gram.global", c1, c2, 1)
	}
	return r1, r2, nil
}

func globalPairwise(x1, x2 *mat.Dense, n1, n2 int, kern kernels.Kernel, symmetric bool) []*mat.Dense {
	need := kern.Terms()
	nparams := kern.NumParams()

	out := make([]*mat.Dense, nparams)
	for p := range out {
		out[p] = mat.NewDense(n1, n2, nil)
	}

	parallelRows(n1, func(start, end int) {
		for i := start; i < end; i++ {
			u := x1.RawRowView(i)
			j0 := 0
			if symmetric {
				j0 = i
			}
			for j := j0; j < n2; j++ {
				t := kernels.TermsFromVectors(u, x2.RawRowView(j), need)
				for p := 0; p < nparams; p++ {
					v := kern.Evaluate(t, p)
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

func logGlobal(kern kernels.Kernel, molecules, d int) {
	logger := log.GetLoggerWithName("gram.global")
	logger.Debug("computing global kernels",
		log.KernelKey, kern.Name(),
		log.MoleculesKey, molecules,
		log.FeaturesKey, d,
		log.ParametersKey, kern.NumParams(),
	)
}
