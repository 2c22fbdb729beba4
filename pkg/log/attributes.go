package log

// Standard attribute keys for kernel-matrix operations. Using these keys
// consistently enables structured filtering of logs across the
// element-similarity, kernel, aggregation and PCA components.

// Component and operation context.
const (
	// ComponentKey identifies which package is performing the operation.
	// Examples: "alchemy", "kernels", "gram", "visualize"
	ComponentKey = "component"

	// OperationKey specifies the operation being performed.
	// Examples: "atomic_kernels", "local_symmetric_kernels", "kpca"
	OperationKey = "operation"

	// KernelKey names the kernel function in use.
	// Examples: "gaussian", "laplacian", "matern"
	KernelKey = "kernel.name"

	// AlchemyKey names the element-similarity mode in use.
	// Examples: "off", "periodic-table", "quantum-numbers", "custom", "raw"
	AlchemyKey = "alchemy.mode"
)

// Data shape and characteristics.
const (
	// MoleculesKey indicates the number of molecules (samples) processed.
	MoleculesKey = "data.molecules"

	// AtomsKey indicates the padded atom-axis size of a local representation.
	AtomsKey = "data.atoms"

	// FeaturesKey indicates the length of the feature vectors.
	FeaturesKey = "data.features"

	// ParametersKey indicates how many kernel-parameter values are swept,
	// i.e. how many Gram matrices a call produces.
	ParametersKey = "kernel.parameters"

	// ComponentsKey indicates the number of requested PCA components.
	ComponentsKey = "kpca.components"
)

// Performance metrics.
const (
	// DurationMsKey records the execution time of an operation in
	// milliseconds.
	DurationMsKey = "perf.duration_ms"
)
