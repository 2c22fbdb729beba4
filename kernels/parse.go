package kernels

import (
	"fmt"

	"github.com/molkern/molkern/pkg/errors"
)

// Args holds kernel options by name. Scalar options accept a single value
// or a list of values to sweep; sargan's "gamma" and polynomial2's "coeff"
// take one list per swept parameter index.
type Args map[string]any

// ParseKernel resolves a kernel name and its option map into a validated
// Kernel. Unknown names and unrecognized options are rejected. Scalar
// option lists are zipped positionally, so all lists for a kernel must
// have equal length; Validate enforces that after defaults are applied.
func ParseKernel(name string, args Args) (Kernel, error) {
	seen := make(map[string]bool, len(args))
	get := func(key string, def []float64) ([]float64, error) {
		v, ok := args[key]
		if !ok {
			return def, nil
		}
		seen[key] = true
		return floatList(key, v)
	}

	var (
		k   Kernel
		err error
	)
	switch name {
	case "gaussian":
		var sigma []float64
		sigma, err = get("sigma", []float64{1})
		k = GaussianKernel{Sigma: sigma}

	case "laplacian":
		var sigma []float64
		sigma, err = get("sigma", []float64{1})
		k = LaplacianKernel{Sigma: sigma}

	case "linear":
		var c []float64
		c, err = get("c", []float64{0})
		k = LinearKernel{C: c}

	case "polynomial":
		var alpha, c, d []float64
		alpha, err = get("alpha", []float64{1})
		if err == nil {
			c, err = get("c", repeat(0, len(alpha)))
		}
		if err == nil {
			d, err = get("d", repeat(2, len(alpha)))
		}
		k = PolynomialKernel{Alpha: alpha, C: c, D: d}

	case "sigmoid":
		var alpha, c []float64
		alpha, err = get("alpha", []float64{1})
		if err == nil {
			c, err = get("c", repeat(0, len(alpha)))
		}
		k = SigmoidKernel{Alpha: alpha, C: c}

	case "multiquadratic":
		var c []float64
		c, err = get("c", []float64{1})
		k = MultiquadraticKernel{C: c}

	case "inverse-multiquadratic":
		var c []float64
		c, err = get("c", []float64{1})
		k = InverseMultiquadraticKernel{C: c}

	case "bessel":
		var sigma []float64
		var v, n []int
		sigma, err = get("sigma", []float64{1})
		if err == nil {
			v, err = getIntList(args, seen, "v", repeatInt(1, len(sigma)))
		}
		if err == nil {
			n, err = getIntList(args, seen, "n", repeatInt(1, len(sigma)))
		}
		k = BesselKernel{Sigma: sigma, V: v, N: n}

	case "l2":
		var alpha, c []float64
		alpha, err = get("alpha", []float64{1})
		if err == nil {
			c, err = get("c", repeat(0, len(alpha)))
		}
		k = L2Kernel{Alpha: alpha, C: c}

	case "matern":
		var sigma []float64
		var order []int
		sigma, err = get("sigma", []float64{1})
		if err == nil {
			order, err = getIntList(args, seen, "n", repeatInt(0, len(sigma)))
		}
		metric := MetricL2
		if v, ok := args["metric"]; ok {
			seen["metric"] = true
			s, sok := v.(string)
			if !sok {
				err = errors.NewValidationError("metric", "must be a string", v)
			} else {
				metric = Metric(s)
			}
		}
		k = MaternKernel{Sigma: sigma, Order: order, Metric: metric}

	case "cauchy":
		var sigma []float64
		sigma, err = get("sigma", []float64{1})
		k = CauchyKernel{Sigma: sigma}

	case "sargan":
		var sigma []float64
		var gamma [][]float64
		sigma, err = get("sigma", []float64{1})
		if err == nil {
			gamma, err = getFloatLists(args, seen, "gamma", make([][]float64, len(sigma)))
		}
		k = SarganKernel{Sigma: sigma, Gamma: gamma}

	case "polynomial2":
		var coeff [][]float64
		coeff, err = getFloatLists(args, seen, "coeff", [][]float64{{1, 1}})
		k = Polynomial2Kernel{Coeff: coeff}

	case "wasserstein":
		var sigma []float64
		sigma, err = get("sigma", []float64{1})
		k = WassersteinKernel{Sigma: sigma}

	default:
		return nil, errors.NewValidationError("kernel", "unknown kernel name", name)
	}
	if err != nil {
		return nil, err
	}

	for key := range args {
		if !seen[key] {
			return nil, errors.NewValidationError(key,
				fmt.Sprintf("unrecognized option for kernel %q", name), args[key])
		}
	}

	if err := k.Validate(); err != nil {
		return nil, err
	}
	return k, nil
}

func floatList(key string, v any) ([]float64, error) {
	switch x := v.(type) {
	case float64:
		return []float64{x}, nil
	case int:
		return []float64{float64(x)}, nil
	case []float64:
		if len(x) == 0 {
			return nil, errors.NewValidationError(key, "must contain at least one value", x)
		}
		out := make([]float64, len(x))
		copy(out, x)
		return out, nil
	case []int:
		out := make([]float64, len(x))
		for i, n := range x {
			out[i] = float64(n)
		}
		if len(out) == 0 {
			return nil, errors.NewValidationError(key, "must contain at least one value", x)
		}
		return out, nil
	default:
		return nil, errors.NewValidationError(key, "must be a number or a list of numbers", v)
	}
}

func getIntList(args Args, seen map[string]bool, key string, def []int) ([]int, error) {
	v, ok := args[key]
	if !ok {
		return def, nil
	}
	seen[key] = true
	switch x := v.(type) {
	case int:
		return []int{x}, nil
	case []int:
		if len(x) == 0 {
			return nil, errors.NewValidationError(key, "must contain at least one value", x)
		}
		out := make([]int, len(x))
		copy(out, x)
		return out, nil
	default:
		return nil, errors.NewValidationError(key, "must be an integer or a list of integers", v)
	}
}

func getFloatLists(args Args, seen map[string]bool, key string, def [][]float64) ([][]float64, error) {
	v, ok := args[key]
	if !ok {
		return def, nil
	}
	seen[key] = true
	switch x := v.(type) {
	case []float64:
		return [][]float64{append([]float64(nil), x...)}, nil
	case [][]float64:
		out := make([][]float64, len(x))
		for i, row := range x {
			out[i] = append([]float64(nil), row...)
		}
		return out, nil
	default:
		return nil, errors.NewValidationError(key, "must be a list or a list of lists", v)
	}
}

func repeat(v float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

func repeatInt(v, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = v
	}
	return out
}
