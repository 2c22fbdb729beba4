package gram

import "math"

// cutoffWeight fades an atom's contribution with its radial distance r.
// The weight is 1 up to start*rcut, 0 from rcut onward, and follows a
// half-cosine in between, so the first derivative is continuous at both
// boundaries. rcut <= 0 disables the cutoff.
func cutoffWeight(r, rcut, start float64) float64 {
	if rcut <= 0 {
		return 1
	}
	inner := start * rcut
	switch {
	case r <= inner:
		return 1
	case r >= rcut:
		return 0
	default:
		return 0.5 * (math.Cos(math.Pi*(r-inner)/(rcut-inner)) + 1)
	}
}

// cutoffWeights maps per-atom radial distances to cutoff weights. A nil
// distance slice yields nil, meaning unit weight everywhere.
func cutoffWeights(dists []float64, rcut, start float64) []float64 {
	if dists == nil {
		return nil
	}
	out := make([]float64, len(dists))
	for i, r := range dists {
		out[i] = cutoffWeight(r, rcut, start)
	}
	return out
}
