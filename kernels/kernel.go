package kernels

import (
	"math"

	"gonum.org/v1/gonum/stat/combin"

	"github.com/molkern/molkern/pkg/errors"
)

// PairTerms carries the scalar quantities derived from one vector pair that
// the kernel variants consume. The dot-product family (linear, polynomial,
// sigmoid, bessel, polynomial2) reads Dot alone; the distance family
// derives the squared Euclidean distance as XX + YY - 2 Dot; L1 and W1 are
// filled only when the kernel declares it needs them.
type PairTerms struct {
	Dot float64 // <u,v>
	XX  float64 // <u,u>
	YY  float64 // <v,v>
	L1  float64 // sum_i |u_i - v_i|
	W1  float64 // 1D Wasserstein distance between u and v
}

// TermsFromVectors fills PairTerms directly from two vectors, honoring the
// kernel's term requirements.
func TermsFromVectors(u, v []float64, need Terms) PairTerms {
	t := PairTerms{
		Dot: dot(u, v),
		XX:  dot(u, u),
		YY:  dot(v, v),
	}
	if need.L1 {
		t.L1 = l1Distance(u, v)
	}
	if need.W1 {
		t.W1 = wasserstein1D(u, v)
	}
	return t
}

// L2Sq returns the squared Euclidean distance implied by the dot products.
// Tiny negative values from floating-point cancellation clamp to zero.
func (t PairTerms) L2Sq() float64 {
	d := t.XX + t.YY - 2*t.Dot
	if d < 0 {
		return 0
	}
	return d
}

// Terms flags which expensive PairTerms fields a kernel needs. The
// aggregation engine skips computing the ones it does not.
type Terms struct {
	L1 bool
	W1 bool
}

// Kernel is one member of the closed set of pairwise kernel functions, with
// its parameter lists resolved at configuration time. NumParams is the
// number of swept parameter values; Evaluate(t, k) scores one vector pair
// under parameter index k. Every entry point producing Gram matrices
// returns one matrix per parameter index, preserving list order.
type Kernel interface {
	// Name returns the configuration-surface name of the kernel.
	Name() string

	// NumParams returns the number of parameter values swept.
	NumParams() int

	// Validate checks parameter arity and positivity constraints.
	Validate() error

	// Terms declares which pairwise quantities Evaluate reads.
	Terms() Terms

	// Evaluate scores one vector pair under parameter index k.
	Evaluate(t PairTerms, k int) float64
}

// GaussianKernel is exp(-d2^2/(2 sigma^2)).
type GaussianKernel struct {
	Sigma []float64
}

func (GaussianKernel) Name() string      { return "gaussian" }
func (k GaussianKernel) NumParams() int  { return len(k.Sigma) }
func (GaussianKernel) Terms() Terms      { return Terms{} }

func (k GaussianKernel) Validate() error {
	return checkSigmaList(k.Sigma)
}

func (k GaussianKernel) Evaluate(t PairTerms, i int) float64 {
	s := k.Sigma[i]
	return math.Exp(-t.L2Sq() / (2 * s * s))
}

// LaplacianKernel is exp(-d1/sigma).
type LaplacianKernel struct {
	Sigma []float64
}

func (LaplacianKernel) Name() string     { return "laplacian" }
func (k LaplacianKernel) NumParams() int { return len(k.Sigma) }
func (LaplacianKernel) Terms() Terms     { return Terms{L1: true} }

func (k LaplacianKernel) Validate() error {
	return checkSigmaList(k.Sigma)
}

func (k LaplacianKernel) Evaluate(t PairTerms, i int) float64 {
	return math.Exp(-t.L1 / k.Sigma[i])
}

// LinearKernel is <u,v> + c.
type LinearKernel struct {
	C []float64
}

func (LinearKernel) Name() string     { return "linear" }
func (k LinearKernel) NumParams() int { return len(k.C) }
func (LinearKernel) Terms() Terms     { return Terms{} }

func (k LinearKernel) Validate() error {
	if len(k.C) == 0 {
		return errors.NewValidationError("c", "must contain at least one value", k.C)
	}
	return nil
}

func (k LinearKernel) Evaluate(t PairTerms, i int) float64 {
	return t.Dot + k.C[i]
}

// PolynomialKernel is (alpha <u,v> + c)^d.
type PolynomialKernel struct {
	Alpha []float64
	C     []float64
	D     []float64
}

func (PolynomialKernel) Name() string     { return "polynomial" }
func (k PolynomialKernel) NumParams() int { return len(k.Alpha) }
func (PolynomialKernel) Terms() Terms     { return Terms{} }

func (k PolynomialKernel) Validate() error {
	if len(k.Alpha) == 0 {
		return errors.NewValidationError("alpha", "must contain at least one value", k.Alpha)
	}
	if len(k.C) != len(k.Alpha) || len(k.D) != len(k.Alpha) {
		return errors.NewValidationError("c/d", "parameter lists must have equal length", k)
	}
	return nil
}

func (k PolynomialKernel) Evaluate(t PairTerms, i int) float64 {
	return math.Pow(k.Alpha[i]*t.Dot+k.C[i], k.D[i])
}

// SigmoidKernel is tanh(alpha <u,v> + c).
type SigmoidKernel struct {
	Alpha []float64
	C     []float64
}

func (SigmoidKernel) Name() string     { return "sigmoid" }
func (k SigmoidKernel) NumParams() int { return len(k.Alpha) }
func (SigmoidKernel) Terms() Terms     { return Terms{} }

func (k SigmoidKernel) Validate() error {
	if len(k.Alpha) == 0 {
		return errors.NewValidationError("alpha", "must contain at least one value", k.Alpha)
	}
	if len(k.C) != len(k.Alpha) {
		return errors.NewValidationError("c", "parameter lists must have equal length", k)
	}
	return nil
}

func (k SigmoidKernel) Evaluate(t PairTerms, i int) float64 {
	return math.Tanh(k.Alpha[i]*t.Dot + k.C[i])
}

// MultiquadraticKernel is sqrt(d2^2 + c^2).
type MultiquadraticKernel struct {
	C []float64
}

func (MultiquadraticKernel) Name() string     { return "multiquadratic" }
func (k MultiquadraticKernel) NumParams() int { return len(k.C) }
func (MultiquadraticKernel) Terms() Terms     { return Terms{} }

func (k MultiquadraticKernel) Validate() error {
	if len(k.C) == 0 {
		return errors.NewValidationError("c", "must contain at least one value", k.C)
	}
	return nil
}

func (k MultiquadraticKernel) Evaluate(t PairTerms, i int) float64 {
	c := k.C[i]
	return math.Sqrt(t.L2Sq() + c*c)
}

// InverseMultiquadraticKernel is 1/sqrt(d2^2 + c^2). c must be nonzero so
// the zero-distance case has a finite value.
type InverseMultiquadraticKernel struct {
	C []float64
}

func (InverseMultiquadraticKernel) Name() string     { return "inverse-multiquadratic" }
func (k InverseMultiquadraticKernel) NumParams() int { return len(k.C) }
func (InverseMultiquadraticKernel) Terms() Terms     { return Terms{} }

func (k InverseMultiquadraticKernel) Validate() error {
	if len(k.C) == 0 {
		return errors.NewValidationError("c", "must contain at least one value", k.C)
	}
	for _, c := range k.C {
		if c == 0 {
			return errors.NewValidationError("c", "must be nonzero", c)
		}
	}
	return nil
}

func (k InverseMultiquadraticKernel) Evaluate(t PairTerms, i int) float64 {
	c := k.C[i]
	return 1.0 / math.Sqrt(t.L2Sq()+c*c)
}

// BesselKernel is J_v(sigma <u,v>) / <u,v>^(-n(v+1)) with J_v the Bessel
// function of the first kind of integer order v. The exact-zero dot-product
// case takes the limiting value 0 rather than dividing by zero.
type BesselKernel struct {
	Sigma []float64
	V     []int
	N     []int
}

func (BesselKernel) Name() string     { return "bessel" }
func (k BesselKernel) NumParams() int { return len(k.Sigma) }
func (BesselKernel) Terms() Terms     { return Terms{} }

func (k BesselKernel) Validate() error {
	if err := checkSigmaList(k.Sigma); err != nil {
		return err
	}
	if len(k.V) != len(k.Sigma) || len(k.N) != len(k.Sigma) {
		return errors.NewValidationError("v/n", "parameter lists must have equal length", k)
	}
	for _, n := range k.N {
		if n < 1 {
			return errors.NewValidationError("n", "must be a positive integer", n)
		}
	}
	return nil
}

func (k BesselKernel) Evaluate(t PairTerms, i int) float64 {
	if t.Dot == 0 {
		return 0
	}
	v := k.V[i]
	exponent := k.N[i] * (v + 1)
	return math.Jn(v, k.Sigma[i]*t.Dot) * intPow(t.Dot, exponent)
}

// L2Kernel returns the raw squared Euclidean distance, scaled and shifted:
// alpha d2^2 + c. It is not exponentiated; callers compose it into other
// kernels.
type L2Kernel struct {
	Alpha []float64
	C     []float64
}

func (L2Kernel) Name() string     { return "l2" }
func (k L2Kernel) NumParams() int { return len(k.Alpha) }
func (L2Kernel) Terms() Terms     { return Terms{} }

func (k L2Kernel) Validate() error {
	if len(k.Alpha) == 0 {
		return errors.NewValidationError("alpha", "must contain at least one value", k.Alpha)
	}
	if len(k.C) != len(k.Alpha) {
		return errors.NewValidationError("c", "parameter lists must have equal length", k)
	}
	return nil
}

func (k L2Kernel) Evaluate(t PairTerms, i int) float64 {
	return k.Alpha[i]*t.L2Sq() + k.C[i]
}

// MaternKernel is the half-integer-order Matern covariance of order
// n in {0, 1, 2} over the selected metric, written as the series
//
//	sum_{k=0}^{n} (n+k)!/(2n)! C(n,k) exp(-rho/2) rho^(n-k)
//
// with rho = 2 sqrt(2 nu) d / sigma and nu = n + 1/2. The zero-distance
// case evaluates through rho^0 = 1, never through a division.
type MaternKernel struct {
	Sigma  []float64
	Order  []int
	Metric Metric
}

func (MaternKernel) Name() string     { return "matern" }
func (k MaternKernel) NumParams() int { return len(k.Sigma) }

func (k MaternKernel) Terms() Terms {
	return Terms{L1: k.Metric == MetricL1}
}

func (k MaternKernel) Validate() error {
	if err := checkSigmaList(k.Sigma); err != nil {
		return err
	}
	if len(k.Order) != len(k.Sigma) {
		return errors.NewValidationError("n", "parameter lists must have equal length", k)
	}
	for _, n := range k.Order {
		if n < 0 || n > 2 {
			return errors.NewValidationError("n", "must be 0, 1 or 2", n)
		}
	}
	switch k.Metric {
	case MetricL1, MetricL2:
		return nil
	default:
		return errors.NewValidationError("metric", `must be "l1" or "l2"`, string(k.Metric))
	}
}

func (k MaternKernel) Evaluate(t PairTerms, i int) float64 {
	var d float64
	if k.Metric == MetricL1 {
		d = t.L1
	} else {
		d = math.Sqrt(t.L2Sq())
	}
	return maternSeries(d, k.Sigma[i], k.Order[i])
}

func maternSeries(d, sigma float64, n int) float64 {
	nu := float64(n) + 0.5
	rho := 2 * math.Sqrt(2*nu) * d / sigma
	decay := math.Exp(-0.5 * rho)

	var sum float64
	fact2n := math.Gamma(float64(2*n) + 1)
	for k := 0; k <= n; k++ {
		coeff := math.Gamma(float64(n+k)+1) / fact2n * float64(combin.Binomial(n, k))
		sum += decay * coeff * intPow(rho, n-k)
	}
	return sum
}

// CauchyKernel is 1/(1 + d2^2/sigma^2).
type CauchyKernel struct {
	Sigma []float64
}

func (CauchyKernel) Name() string     { return "cauchy" }
func (k CauchyKernel) NumParams() int { return len(k.Sigma) }
func (CauchyKernel) Terms() Terms     { return Terms{} }

func (k CauchyKernel) Validate() error {
	return checkSigmaList(k.Sigma)
}

func (k CauchyKernel) Evaluate(t PairTerms, i int) float64 {
	s := k.Sigma[i]
	return 1.0 / (1.0 + t.L2Sq()/(s*s))
}

// SarganKernel is exp(-d1/sigma) (1 + sum_k gamma_k/sigma^k d1^k). Gamma
// holds one coefficient list per parameter index; an empty list reduces to
// the Laplacian kernel.
type SarganKernel struct {
	Sigma []float64
	Gamma [][]float64
}

func (SarganKernel) Name() string     { return "sargan" }
func (k SarganKernel) NumParams() int { return len(k.Sigma) }
func (SarganKernel) Terms() Terms     { return Terms{L1: true} }

func (k SarganKernel) Validate() error {
	if err := checkSigmaList(k.Sigma); err != nil {
		return err
	}
	if len(k.Gamma) != len(k.Sigma) {
		return errors.NewValidationError("gamma", "one coefficient list per sigma required", k)
	}
	return nil
}

func (k SarganKernel) Evaluate(t PairTerms, i int) float64 {
	return sarganValue(t.L1, k.Sigma[i], k.Gamma[i])
}

// Polynomial2Kernel is the explicit polynomial sum_j coeff_j <u,v>^j with
// one coefficient list per parameter index.
type Polynomial2Kernel struct {
	Coeff [][]float64
}

func (Polynomial2Kernel) Name() string     { return "polynomial2" }
func (k Polynomial2Kernel) NumParams() int { return len(k.Coeff) }
func (Polynomial2Kernel) Terms() Terms     { return Terms{} }

func (k Polynomial2Kernel) Validate() error {
	if len(k.Coeff) == 0 {
		return errors.NewValidationError("coeff", "must contain at least one coefficient list", k.Coeff)
	}
	for _, c := range k.Coeff {
		if len(c) == 0 {
			return errors.NewValidationError("coeff", "coefficient lists must not be empty", c)
		}
	}
	return nil
}

func (k Polynomial2Kernel) Evaluate(t PairTerms, i int) float64 {
	// Horner evaluation of sum_j coeff_j x^j.
	coeff := k.Coeff[i]
	sum := coeff[len(coeff)-1]
	for j := len(coeff) - 2; j >= 0; j-- {
		sum = sum*t.Dot + coeff[j]
	}
	return sum
}

// WassersteinKernel is exp(-W1(u,v)/sigma).
type WassersteinKernel struct {
	Sigma []float64
}

func (WassersteinKernel) Name() string     { return "wasserstein" }
func (k WassersteinKernel) NumParams() int { return len(k.Sigma) }
func (WassersteinKernel) Terms() Terms     { return Terms{W1: true} }

func (k WassersteinKernel) Validate() error {
	return checkSigmaList(k.Sigma)
}

func (k WassersteinKernel) Evaluate(t PairTerms, i int) float64 {
	return math.Exp(-t.W1 / k.Sigma[i])
}

func checkSigmaList(sigma []float64) error {
	if len(sigma) == 0 {
		return errors.NewValidationError("sigma", "must contain at least one value", sigma)
	}
	for _, s := range sigma {
		if s <= 0 || math.IsNaN(s) || math.IsInf(s, 0) {
			return errors.NewValidationError("sigma", "must be a positive finite number", s)
		}
	}
	return nil
}

// intPow raises x to a non-negative integer power by repeated squaring.
func intPow(x float64, n int) float64 {
	result := 1.0
	for n > 0 {
		if n&1 == 1 {
			result *= x
		}
		x *= x
		n >>= 1
	}
	return result
}
