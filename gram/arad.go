package gram

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/molkern/molkern/kernels"
	"github.com/molkern/molkern/pkg/errors"
)

// The ARAD entry points take padded per-atom descriptor tensors where an
// all-zero row marks padding, so valid atom counts are recovered from the
// data instead of a companion array. Atom pairs are scored with the
// gaussian kernel, one Gram matrix per sigma.

// LocalKernelsARAD sums gaussian atom-pair scores over the valid atoms of
// every molecule pair.
func LocalKernelsARAD(x1, x2 [][][]float64, sigmas []float64) ([]*mat.Dense, error) {
	cfg := aradConfig(sigmas)
	out, err := LocalKernels(x1, x2, recoverAtomCounts(x1), recoverAtomCounts(x2), cfg, LocalOptions{})
	if err != nil {
		return nil, err
	}
	return out, checkARAD("gram.arad.local", out)
}

// LocalSymmetricKernelsARAD is the single-set form of LocalKernelsARAD.
func LocalSymmetricKernelsARAD(x [][][]float64, sigmas []float64) ([]*mat.Dense, error) {
	cfg := aradConfig(sigmas)
	out, err := LocalSymmetricKernels(x, recoverAtomCounts(x), cfg, LocalOptions{})
	if err != nil {
		return nil, err
	}
	return out, checkARAD("gram.arad.local", out)
}

// GlobalKernelsARAD normalizes the summed local kernel by each molecule's
// self similarity, K(A,B) / sqrt(K(A,A) K(B,B)), so every diagonal entry of
// the symmetric form is 1 regardless of molecule size.
func GlobalKernelsARAD(x1, x2 [][][]float64, sigmas []float64) ([]*mat.Dense, error) {
	cfg := aradConfig(sigmas)
	n1, n2 := recoverAtomCounts(x1), recoverAtomCounts(x2)
	out, err := LocalKernels(x1, x2, n1, n2, cfg, LocalOptions{})
	if err != nil {
		return nil, err
	}
	normalizeARAD(out, aradSelfSums(x1, n1, cfg), aradSelfSums(x2, n2, cfg))
	return out, checkARAD("gram.arad.global", out)
}

// GlobalSymmetricKernelsARAD is the single-set form of GlobalKernelsARAD.
func GlobalSymmetricKernelsARAD(x [][][]float64, sigmas []float64) ([]*mat.Dense, error) {
	cfg := aradConfig(sigmas)
	n := recoverAtomCounts(x)
	out, err := LocalSymmetricKernels(x, n, cfg, LocalOptions{})
	if err != nil {
		return nil, err
	}
	self := aradSelfSums(x, n, cfg)
	normalizeARAD(out, self, self)
	return out, checkARAD("gram.arad.global", out)
}

// AtomicKernelsARAD scores two sets of single-atom descriptors with the
// gaussian kernel per sigma.
func AtomicKernelsARAD(x1, x2 [][]float64, sigmas []float64) ([]*mat.Dense, error) {
	out, err := AtomicKernels(x1, x2, aradConfig(sigmas), AtomicOptions{})
	if err != nil {
		return nil, err
	}
	return out, checkARAD("gram.arad.atomic", out)
}

// AtomicSymmetricKernelsARAD is the single-set form of AtomicKernelsARAD.
func AtomicSymmetricKernelsARAD(x [][]float64, sigmas []float64) ([]*mat.Dense, error) {
	out, err := AtomicSymmetricKernels(x, aradConfig(sigmas), AtomicOptions{})
	if err != nil {
		return nil, err
	}
	return out, checkARAD("gram.arad.atomic", out)
}

func aradConfig(sigmas []float64) Config {
	return Config{Kernel: kernels.GaussianKernel{Sigma: sigmas}}
}

// recoverAtomCounts treats trailing all-zero descriptor rows as padding and
// returns the index just past the last real atom of each molecule.
func recoverAtomCounts(x [][][]float64) []int {
	natoms := make([]int, len(x))
	for a, mol := range x {
		n := len(mol)
		for n > 0 && isZeroRow(mol[n-1]) {
			n--
		}
		natoms[a] = n
	}
	return natoms
}

func isZeroRow(row []float64) bool {
	for _, v := range row {
		if v != 0 {
			return false
		}
	}
	return true
}

// aradSelfSums computes each molecule's summed self kernel per sigma.
func aradSelfSums(x [][][]float64, natoms []int, cfg Config) [][]float64 {
	kern := cfg.kernel()
	need := kern.Terms()
	nparams := kern.NumParams()

	self := make([][]float64, nparams)
	for p := range self {
		self[p] = make([]float64, len(x))
	}
	for a := range x {
		for i := 0; i < natoms[a]; i++ {
			for j := 0; j < natoms[a]; j++ {
				t := kernels.TermsFromVectors(x[a][i], x[a][j], need)
				for p := 0; p < nparams; p++ {
					self[p][a] += kern.Evaluate(t, p)
				}
			}
		}
	}
	return self
}

func normalizeARAD(out []*mat.Dense, self1, self2 [][]float64) {
	for p, k := range out {
		r, c := k.Dims()
		for a := 0; a < r; a++ {
			for b := 0; b < c; b++ {
				k.Set(a, b, errors.SafeDivide(k.At(a, b), math.Sqrt(self1[p][a]*self2[p][b])))
			}
		}
	}
}

func checkARAD(op string, out []*mat.Dense) error {
	for p, k := range out {
		r, c := k.Dims()
		if err := errors.CheckMatrix(op, k, r, c, p); err != nil {
			return err
		}
	}
	return nil
}
