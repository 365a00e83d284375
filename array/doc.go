// SPDX-License-Identifier: MIT

// Package array is a small rank-polymorphic linear-algebra kernel over
// scalars, vectors and matrices.
//
// Values carry no stored rank: the three concrete types Scalar, Vector and
// *Matrix implement the Value interface and every kernel re-derives shape
// from structure at the call site. The package provides:
//
//   - Shape model: ShapeOf and the derived Shape descriptor.
//   - Generators: Zeros/Ones/Sequential/Random in vector and matrix forms,
//     plus Identity, Eye and the bidirectional Diag.
//   - Broadcast engine: Apply1/Apply2 with the arithmetic facades
//     Add, Sub, Mul, Divide, Pow, Exp, Log, Sqrt and EpsilonClamp.
//   - Structural transforms: Transpose, Row/Col/Cell accessors and the
//     WithoutRow/WithoutColumn deletion operations.
//   - Reductions: Sum, Norm (Euclidean/Frobenius), Dot, Inner, Outer.
//   - MatMul, and the determinant subsystem: Det (Laplace expansion),
//     Minors, Cofactors, Inv (adjugate) and Solve.
//
// Numeric policy is configured per call with functional options: WithEpsilon
// tunes the noise floor used by Divide, the singularity checks and
// EpsilonClamp; WithTruncate opts into legacy shape-mismatch truncation in
// broadcasting; WithMaxLaplace bounds the exponential cofactor expansion;
// WithUniform injects the random source for the Random generators.
//
// Every operation is a pure function over immutable inputs producing a fresh
// output, so all kernels are safe to call concurrently from independent
// goroutines. Division by a near-zero denominator yields the NA marker
// (IEEE NaN, see IsNA) rather than an error; a singular matrix in Inv/Solve
// yields ErrSingular. For O(n^3) factorizations see the decomp package.
package array
