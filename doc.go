// Package molkern computes similarity (kernel) matrices between molecular
// representations for kernel-ridge-regression based property prediction.
//
// The library consumes already-built representation tensors and nuclear
// charge arrays and produces dense Gram matrices. It does not parse
// geometry files, generate representations, or fit regression models.
//
// # Packages
//
//   - elements: constant periodic-table and quantum-number lookup tables
//   - alchemy: element-similarity (alchemical) matrix construction
//   - kernels: pairwise kernel functions and kernel PCA
//   - gram: atomic, local and global Gram-matrix aggregation
//   - visualize: plots of kernel-PCA projections and Gram matrices
//
// # Quick Start
//
// Computing a gaussian Gram matrix over whole-molecule representations:
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/molkern/molkern/kernels"
//	    "gonum.org/v1/gonum/mat"
//	)
//
//	func main() {
//	    x := mat.NewDense(3, 2, []float64{1, 0, 0, 1, 1, 1})
//
//	    k, err := kernels.GaussianSymmetric(x, 2.5)
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Println(mat.Formatted(k))
//	}
//
// Per-atom representations aggregate through the gram package, optionally
// weighted by an element-similarity matrix from the alchemy package.
package molkern
