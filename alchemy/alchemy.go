// Package alchemy builds element-similarity matrices that quantify how
// interchangeable two chemical elements are. The matrix weights atom-pair
// contributions during kernel aggregation, softening strict same-element
// matching.
//
// The construction mode is a closed set of variants resolved once at
// configuration time: Off (identity), PeriodicTable (Gaussian decay in
// period and group distance), QuantumNumbers (product of four Gaussian
// decays over aufbau quantum numbers), Custom (Gram matrix of caller
// vectors) and Raw (precomputed matrix used verbatim).
package alchemy

import (
	"math"
	"strconv"

	"gonum.org/v1/gonum/mat"

	"github.com/molkern/molkern/elements"
	"github.com/molkern/molkern/pkg/errors"
	"github.com/molkern/molkern/pkg/log"
)

// DefaultEMax is the default size of the similarity matrix. Entry (i,j)
// holds the similarity of the 1-indexed elements i+1 and j+1.
const DefaultEMax = 100

// DefaultWidth is the default Gaussian bandwidth. It is small enough that
// the matrix is near-identity: only exact element matches survive.
const DefaultWidth = 0.001

// Mode selects one element-similarity construction. Implementations are
// the closed set of variants in this package.
type Mode interface {
	// Name returns the configuration-surface name of the mode.
	Name() string

	// Matrix builds the emax x emax similarity matrix. The result is
	// symmetric by construction in every mode.
	Matrix(emax int) (*mat.Dense, error)

	isMode()
}

// Off returns the identity mode: no alchemical mixing, atoms only match
// atoms of the same element.
func Off() Mode {
	return offMode{}
}

type offMode struct{}

func (offMode) Name() string { return "off" }
func (offMode) isMode()      {}

func (offMode) Matrix(emax int) (*mat.Dense, error) {
	if err := checkEMax(emax); err != nil {
		return nil, err
	}
	p := mat.NewDense(emax, emax, nil)
	for i := 0; i < emax; i++ {
		p.Set(i, i, 1.0)
	}
	return p, nil
}

// PeriodicTable returns a mode with Gaussian decay in periodic-table row
// and column distance. Both widths must be positive.
func PeriodicTable(periodWidth, groupWidth float64) (Mode, error) {
	if err := checkWidth("period_width", periodWidth); err != nil {
		return nil, err
	}
	if err := checkWidth("group_width", groupWidth); err != nil {
		return nil, err
	}
	return periodicTableMode{periodWidth: periodWidth, groupWidth: groupWidth}, nil
}

type periodicTableMode struct {
	periodWidth float64
	groupWidth  float64
}

func (periodicTableMode) Name() string { return "periodic-table" }
func (periodicTableMode) isMode()      {}

func (m periodicTableMode) Matrix(emax int) (*mat.Dense, error) {
	if err := checkEMax(emax); err != nil {
		return nil, err
	}
	pos := make([]elements.Position, emax)
	for z := 1; z <= emax; z++ {
		p, ok := elements.PeriodicPosition(z)
		if !ok {
			return nil, errors.NewValueError("alchemy.periodic-table",
				"no periodic-table position for element "+strconv.Itoa(z))
		}
		pos[z-1] = p
	}

	pd := mat.NewDense(emax, emax, nil)
	rw := 4 * m.periodWidth * m.periodWidth
	cw := 4 * m.groupWidth * m.groupWidth
	for i := 0; i < emax; i++ {
		// Upper triangle only; the matrix is symmetric by definition.
		for j := i; j < emax; j++ {
			dr := float64(pos[i].Period - pos[j].Period)
			dc := float64(pos[i].Group - pos[j].Group)
			v := math.Exp(-dr*dr/rw - dc*dc/cw)
			pd.Set(i, j, v)
			pd.Set(j, i, v)
		}
	}
	return pd, nil
}

// QuantumNumbers returns a mode with one Gaussian decay per quantum-number
// coordinate: principal level, signed sublevel offset, sublevel count and
// spin-like tag. All four widths must be positive.
func QuantumNumbers(nWidth, mWidth, lWidth, sWidth float64) (Mode, error) {
	for _, w := range []struct {
		name  string
		value float64
	}{
		{"n_width", nWidth},
		{"m_width", mWidth},
		{"l_width", lWidth},
		{"s_width", sWidth},
	} {
		if err := checkWidth(w.name, w.value); err != nil {
			return nil, err
		}
	}
	return quantumNumbersMode{nWidth: nWidth, mWidth: mWidth, lWidth: lWidth, sWidth: sWidth}, nil
}

type quantumNumbersMode struct {
	nWidth float64
	mWidth float64
	lWidth float64
	sWidth float64
}

func (quantumNumbersMode) Name() string { return "quantum-numbers" }
func (quantumNumbersMode) isMode()      {}

func (m quantumNumbersMode) Matrix(emax int) (*mat.Dense, error) {
	if err := checkEMax(emax); err != nil {
		return nil, err
	}
	orb := make([]elements.Orbital, emax)
	for z := 1; z <= emax; z++ {
		o, ok := elements.QuantumNumbers(z)
		if !ok {
			return nil, errors.NewValueError("alchemy.quantum-numbers",
				"no quantum numbers for element "+strconv.Itoa(z))
		}
		orb[z-1] = o
	}

	pd := mat.NewDense(emax, emax, nil)
	nw := 4 * m.nWidth * m.nWidth
	mw := 4 * m.mWidth * m.mWidth
	lw := 4 * m.lWidth * m.lWidth
	sw := 4 * m.sWidth * m.sWidth
	for i := 0; i < emax; i++ {
		for j := i; j < emax; j++ {
			dn := float64(orb[i].N - orb[j].N)
			dm := float64(orb[i].M - orb[j].M)
			dl := float64(orb[i].L - orb[j].L)
			ds := orb[i].S - orb[j].S
			v := math.Exp(-dn*dn/nw - dm*dm/mw - dl*dl/lw - ds*ds/sw)
			pd.Set(i, j, v)
			pd.Set(j, i, v)
		}
	}
	return pd, nil
}

// Custom returns a mode whose similarity matrix is the Gram matrix of the
// supplied per-element vectors: entry (i,j) is the dot product of the
// vectors for elements i+1 and j+1. Elements without a vector implicitly
// get a zero vector. All vectors must share the same length.
func Custom(vectors map[int][]float64) (Mode, error) {
	if len(vectors) == 0 {
		return nil, errors.NewValidationError("elemental_vectors", "must not be empty", vectors)
	}
	dim := -1
	for z, v := range vectors {
		if z < 1 {
			return nil, errors.NewValidationError("elemental_vectors",
				"keys must be positive nuclear charges", z)
		}
		if dim < 0 {
			dim = len(v)
			continue
		}
		if len(v) != dim {
			return nil, errors.NewDimensionError("alchemy.custom", dim, len(v), 1)
		}
	}
	// Copy so later caller mutation cannot leak into the mode.
	copied := make(map[int][]float64, len(vectors))
	for z, v := range vectors {
		c := make([]float64, len(v))
		copy(c, v)
		copied[z] = c
	}
	return customMode{vectors: copied, dim: dim}, nil
}

type customMode struct {
	vectors map[int][]float64
	dim     int
}

func (customMode) Name() string { return "custom" }
func (customMode) isMode()      {}

func (m customMode) Matrix(emax int) (*mat.Dense, error) {
	if err := checkEMax(emax); err != nil {
		return nil, err
	}
	tmp := mat.NewDense(emax, m.dim, nil)
	for z, v := range m.vectors {
		if z > emax {
			continue
		}
		tmp.SetRow(z-1, v)
	}
	pd := mat.NewDense(emax, emax, nil)
	pd.Mul(tmp, tmp.T())
	return pd, nil
}

// Raw returns a mode that uses a precomputed square similarity matrix
// verbatim. Beyond squareness no validation is performed; the caller owns
// the semantics of the matrix.
func Raw(matrix mat.Matrix) (Mode, error) {
	r, c := matrix.Dims()
	if r != c {
		return nil, errors.NewDimensionError("alchemy.raw", r, c, 1)
	}
	return rawMode{matrix: matrix}, nil
}

type rawMode struct {
	matrix mat.Matrix
}

func (rawMode) Name() string { return "raw" }
func (rawMode) isMode()      {}

func (m rawMode) Matrix(emax int) (*mat.Dense, error) {
	r, _ := m.matrix.Dims()
	if r != emax {
		return nil, errors.NewDimensionError("alchemy.raw", emax, r, 0)
	}
	pd := mat.NewDense(emax, emax, nil)
	pd.Copy(m.matrix)
	return pd, nil
}

// Options carries the mode-specific parameters for ParseMode. Zero-valued
// widths fall back to DefaultWidth.
type Options struct {
	PeriodWidth float64
	GroupWidth  float64

	NWidth float64
	MWidth float64
	LWidth float64
	SWidth float64

	Vectors map[int][]float64
}

// ParseMode resolves a configuration-surface mode name into a Mode.
// Unknown names are a fatal configuration error, never silently defaulted.
func ParseMode(name string, opts Options) (Mode, error) {
	switch name {
	case "off":
		return Off(), nil
	case "periodic-table":
		return PeriodicTable(orDefault(opts.PeriodWidth), orDefault(opts.GroupWidth))
	case "quantum-numbers":
		return QuantumNumbers(orDefault(opts.NWidth), orDefault(opts.MWidth),
			orDefault(opts.LWidth), orDefault(opts.SWidth))
	case "custom":
		return Custom(opts.Vectors)
	default:
		return nil, errors.NewValidationError("alchemy", "unknown alchemical method", name)
	}
}

// SimilarityMatrix builds the matrix for a mode at the given size and logs
// the request. It is the main entry point used by the aggregation engine.
func SimilarityMatrix(mode Mode, emax int) (*mat.Dense, error) {
	pd, err := mode.Matrix(emax)
	if err != nil {
		return nil, err
	}
	log.GetLoggerWithName("alchemy").Debug("Built element-similarity matrix",
		log.AlchemyKey, mode.Name(),
		"emax", emax,
	)
	return pd, nil
}

func orDefault(w float64) float64 {
	if w == 0 {
		return DefaultWidth
	}
	return w
}

func checkEMax(emax int) error {
	if emax <= 0 {
		return errors.NewValidationError("emax", "must be a positive integer", emax)
	}
	if emax > elements.MaxAtomicNumber {
		return errors.NewValidationError("emax", "exceeds the largest tabulated element", emax)
	}
	return nil
}

func checkWidth(name string, w float64) error {
	if w <= 0 || math.IsNaN(w) || math.IsInf(w, 0) {
		return errors.NewValidationError(name, "must be a positive finite number", w)
	}
	return nil
}

