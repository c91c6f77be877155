// Package matrix provides the dense storage and product kernels that the
// rest of linmap builds on.
//
// The matrix package provides:
//
//   - Dense: a row-major float64 matrix backed by a single flat slice,
//     with bounds-checked At/Set and deep Clone.
//   - Mul: the standard matrix product C = A×B with strict fail-fast
//     shape validation.
//   - VecMat: a row vector applied to a matrix (y = xᵀ·M) — the
//     "function application" reading of the product, returning a plain
//     slice with the singleton row dimension dropped.
//   - Transpose and Scale as pure companions.
//
// Every operation is deterministic and pure: operands are never mutated,
// results are freshly allocated, and loop orders are fixed. Shape
// violations surface as sentinel errors (ErrDimensionMismatch and
// friends) that callers match via errors.Is; the wrapped message names
// the incompatible shapes.
//
// See the examples in this package and rowfunc for usage patterns.
package matrix
