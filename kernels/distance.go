package kernels

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
)

// l1Distance returns the Manhattan distance between two equal-length
// vectors.
func l1Distance(u, v []float64) float64 {
	var sum float64
	for i := range u {
		sum += math.Abs(u[i] - v[i])
	}
	return sum
}

// l2DistanceSq returns the squared Euclidean distance between two
// equal-length vectors.
func l2DistanceSq(u, v []float64) float64 {
	var sum float64
	for i := range u {
		d := u[i] - v[i]
		sum += d * d
	}
	return sum
}

// wasserstein1D returns the first Wasserstein (earth-mover) distance
// between two equal-length vectors treated as empirical distributions with
// uniform weights: the mean absolute difference of the sorted samples.
func wasserstein1D(u, v []float64) float64 {
	us := append([]float64(nil), u...)
	vs := append([]float64(nil), v...)
	sort.Float64s(us)
	sort.Float64s(vs)
	var sum float64
	for i := range us {
		sum += math.Abs(us[i] - vs[i])
	}
	return sum / float64(len(us))
}

// dot returns the inner product of two equal-length vectors.
func dot(u, v []float64) float64 {
	return floats.Dot(u, v)
}
