// Package gram lifts atom-pair kernel scores into molecule-level similarity
// matrices at three granularities: atomic (atom x atom), local (per-molecule
// sums over valid atom ranges) and global (one vector per molecule). Scores
// can be weighted by an element-similarity table and a smooth radial cutoff.
// Every entry point returns one Gram matrix per kernel parameter value,
// preserving parameter order.
package gram

import (
	"github.com/molkern/molkern/alchemy"
	"github.com/molkern/molkern/kernels"
	"github.com/molkern/molkern/pkg/errors"
)

// Config selects the kernel and the optional weighting applied to every
// atom-pair score. The zero value means a unit-bandwidth gaussian kernel
// with no alchemical mixing and no radial cutoff.
type Config struct {
	// Kernel scores one pair of feature vectors per parameter index.
	// Nil defaults to GaussianKernel with sigma 1.
	Kernel kernels.Kernel

	// Alchemy supplies the element-similarity table used when nuclear
	// charges accompany the representations. Nil defaults to Off.
	Alchemy alchemy.Mode

	// EMax is the element-similarity table size. Zero defaults to
	// alchemy.DefaultEMax.
	EMax int

	// CutDistance is the radial distance at which atom contributions
	// vanish. Zero disables the cutoff.
	CutDistance float64

	// CutStart is the fraction of CutDistance where the fade begins.
	// Must lie in [0, 1).
	CutStart float64
}

func (c Config) kernel() kernels.Kernel {
	if c.Kernel == nil {
		return kernels.GaussianKernel{Sigma: []float64{1}}
	}
	return c.Kernel
}

func (c Config) mode() alchemy.Mode {
	if c.Alchemy == nil {
		return alchemy.Off()
	}
	return c.Alchemy
}

func (c Config) emax() int {
	if c.EMax == 0 {
		return alchemy.DefaultEMax
	}
	return c.EMax
}

func (c Config) validate() error {
	if err := c.kernel().Validate(); err != nil {
		return err
	}
	if c.CutDistance < 0 {
		return errors.NewValidationError("cut_distance", "must be non-negative", c.CutDistance)
	}
	if c.CutStart < 0 || c.CutStart >= 1 {
		return errors.NewValidationError("cut_start", "must lie in [0, 1)", c.CutStart)
	}
	return nil
}
