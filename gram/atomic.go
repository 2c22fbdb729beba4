package gram

import (
	"gonum.org/v1/gonum/mat"

	"github.com/molkern/molkern/pkg/errors"
	"github.com/molkern/molkern/pkg/log"
)

// AtomicOptions carries the optional per-atom weighting inputs for the
// atomic entry points. Representations must already be truncated to each
// molecule's real atom count; every slice here parallels the atom axis.
type AtomicOptions struct {
	// Charges1 and Charges2 are nuclear charges routed through the
	// element-similarity table. Supply both or neither.
	Charges1, Charges2 []int

	// Dists1 and Dists2 are per-atom radial distances routed through the
	// smooth cutoff. Either side may be nil.
	Dists1, Dists2 []float64
}

// AtomicKernels scores every atom of x1 against every atom of x2 and
// returns one atoms1 x atoms2 Gram matrix per kernel parameter value. Each
// score is optionally pre-weighted by the element similarity of the pair
// and the cutoff weight of both atoms.
func AtomicKernels(x1, x2 [][]float64, cfg Config, opts AtomicOptions) ([]*mat.Dense, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	d, err := checkAtomRows("gram.atomic", x1, -1)
	if err != nil {
		return nil, err
	}
	if _, err := checkAtomRows("gram.atomic", x2, d); err != nil {
		return nil, err
	}
	w, err := buildPairWeights(cfg, opts.Charges1, opts.Charges2, opts.Dists1, opts.Dists2, len(x1), len(x2))
	if err != nil {
		return nil, err
	}

	kern := cfg.kernel()
	logger := log.GetLoggerWithName("gram.atomic")
	logger.Debug("computing atomic kernels",
		log.KernelKey, kern.Name(),
		log.AtomsKey, len(x1),
		log.FeaturesKey, d,
		log.ParametersKey, kern.NumParams(),
	)
	return atomicPairwise(x1, x2, kern, w, false), nil
}

// AtomicSymmetricKernels is the single-set form of AtomicKernels. Only the
// upper triangle is evaluated and mirrored; the result equals
// AtomicKernels(x, x, ...) elementwise.
func AtomicSymmetricKernels(x [][]float64, cfg Config, opts AtomicOptions) ([]*mat.Dense, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	if opts.Charges2 != nil || opts.Dists2 != nil {
		return nil, errors.NewValidationError("options", "symmetric form takes weighting inputs on the first side only", opts)
	}
	d, err := checkAtomRows("gram.atomic", x, -1)
	if err != nil {
		return nil, err
	}
	w, err := buildPairWeights(cfg, opts.Charges1, opts.Charges1, opts.Dists1, opts.Dists1, len(x), len(x))
	if err != nil {
		return nil, err
	}

	kern := cfg.kernel()
	logger := log.GetLoggerWithName("gram.atomic")
	logger.Debug("computing symmetric atomic kernels",
		log.KernelKey, kern.Name(),
		log.AtomsKey, len(x),
		log.FeaturesKey, d,
		log.ParametersKey, kern.NumParams(),
	)
	return atomicPairwise(x, x, kern, w, true), nil
}
