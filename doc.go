// Package numa is a small, pure-Go numeric kernel for scalars, vectors and
// matrices, where rank is inferred from structure at every call and never
// stored on values.
//
// 🚀 What is numa?
//
//	A deterministic, dependency-light linear-algebra library that brings together:
//		• Rank-polymorphic broadcasting: one dispatch for Scalar/Vector/Matrix
//		• Generators: zeros, ones, sequences, uniform randoms, identity, eye, diag
//		• Structural transforms: transpose, row/column/cell access and deletion
//		• Reductions: sum, Euclidean/Frobenius norm, dot/inner/outer products
//		• Matrix multiplication, Laplace determinants, adjugate inverses, solve
//		• Factorizations: Householder QR, Jacobi SVD, Doolittle LU
//		• Polynomial real-root finding (Durand-Kerner)
//
// ✨ Why choose numa?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Predictable numerics – explicit noise floor, sentinel errors, no panics
//   - Pure Go – no cgo, no hidden deps
//   - Immutable values – every operation returns a fresh result, safe to
//     call concurrently from independent goroutines
//
// Everything is organized under three subpackages:
//
//	array/  — core kernel: value model, broadcasting, transforms, reductions,
//	          matmul and the determinant/inverse/solve subsystem
//	decomp/ — O(n³) factorizations: QR, SVD, LU + triangular solver
//	poly/   — polynomial real-root finding over array vectors
//
// Quick taste:
//
//	m, _ := array.NewMatrix([][]float64{{1, 2}, {3, 4}})
//	d, _ := array.Det(m)        // -2
//	inv, _ := array.Inv(m)      // [[-2, 1], [1.5, -0.5]]
//
// Dive into the per-package docs for the numeric policy knobs (WithEpsilon,
// WithTruncate, WithMaxLaplace, WithUniform) and the error taxonomy.
//
//	go get github.com/katalvlaran/numa
package numa
