// Package rowfunc: application and batching kernels.
//
// Purpose:
//   - Apply delegates the heavy lifting to matrix.VecMat so the numeric
//     policy (fixed loop order, zero-skip, fresh result) lives in exactly
//     one place.
//   - Stack and ApplyAll realize the batching story: several functions
//     stacked into a matrix are applied together by a single product.

package rowfunc

import "github.com/katalvlaran/linmap/matrix"

// Apply evaluates f(X) = fᵀ·X and returns one value per column of X.
// Implementation:
//   - Stage 1: Delegate to matrix.VecMat (validates f and X shapes).
//
// Behavior highlights:
//   - Pure: X is never mutated; the result is freshly allocated.
//   - A one-hot f returns exactly one row of X; a constant-c f returns
//     c times each column sum.
//
// Inputs:
//   - m: matrix with Rows() == f.Len().
//
// Returns:
//   - []float64: f(X), length m.Cols().
//
// Errors:
//   - matrix.ErrNilMatrix (nil f or m), matrix.ErrDimensionMismatch
//     (f.Len() != m.Rows(); the message names both sizes).
//
// Complexity:
//   - Time O(n*c), Space O(c).
func (f RowFunc) Apply(m matrix.Matrix) ([]float64, error) {
	// VecMat carries the full validation and kernel policy.
	return matrix.VecMat(f, m)
}

// Stack packs several equal-length functions into one matrix, row i
// holding fs[i]. Multiplying the result against X applies every
// function at once.
// Implementation:
//   - Stage 1: Require at least one function.
//   - Stage 2: Reinterpret the functions as row literals and delegate to
//     matrix.NewDenseFromRows (copies; enforces rectangularity).
//
// Errors:
//   - ErrBadLength              (no functions given).
//   - matrix.ErrRaggedRows      (functions of unequal length).
//   - matrix.ErrInvalidDimensions (a zero-length function slipped in).
//
// Determinism:
//   - Fixed i order; fs[i] becomes row i.
//
// Complexity:
//   - Time O(len(fs)*n), Space O(len(fs)*n).
func Stack(fs ...RowFunc) (*matrix.Dense, error) {
	// An empty stack has no shape.
	if len(fs) == 0 {
		return nil, ErrBadLength
	}
	// Reuse the matrix constructor: it copies rows and rejects ragged input.
	rows := make([][]float64, len(fs))
	for i, f := range fs {
		rows[i] = f
	}

	return matrix.NewDenseFromRows(rows)
}

// ApplyAll applies every function in fs to m with a single matrix
// product: row i of the result equals fs[i].Apply(m) computed
// independently (batch consistency).
// Implementation:
//   - Stage 1: Stack(fs...) into a len(fs)×n matrix F.
//   - Stage 2: matrix.Mul(F, m).
//
// Errors:
//   - ErrBadLength / matrix.ErrRaggedRows    (from Stack).
//   - matrix.ErrNilMatrix / matrix.ErrDimensionMismatch (from Mul).
//
// Complexity:
//   - Time O(len(fs)*n*c), Space O(len(fs)*c).
func ApplyAll(fs []RowFunc, m matrix.Matrix) (matrix.Matrix, error) {
	// Batch the functions into a single left operand.
	F, err := Stack(fs...)
	if err != nil {
		return nil, err
	}

	// One product applies them all.
	return matrix.Mul(F, m)
}
