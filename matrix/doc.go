// Package matrix offers the dense linear algebra used by the predictive-coding
// solver.
//
// The matrix package provides:
//
//   - Dense: a row-major float64 matrix (rows, cols ≥ 0) with safe accessors.
//   - Vector: a size-tagged row used as a broadcast bias and as a reduction result.
//   - Factories: New, NewDense/Zeros, Ones, Identity, Random, Normal, KaimingNormal.
//   - Kernels: Add, Sub, Neg, Hadamard, Mul, Transpose, Scale, AddScalar,
//     AddVector, Apply, SumAxis and the in-place AddInPlace/SubInPlace/AddScaledInPlace.
//   - Equality within machine epsilon (Equal) or a caller tolerance (EqualApprox).
//
// Every shape violation is reported as a wrapped sentinel (ErrDimensionMismatch,
// ErrBadAxis, ...) that names the operation and the shapes involved. Kernels
// allocate a fresh result and never mutate their operands.
//
// See the examples in this package for usage patterns.
package matrix
