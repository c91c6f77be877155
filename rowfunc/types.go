// Package rowfunc defines the RowFunc type and its constructors.
package rowfunc

import "errors"

// RowFunc is a row vector interpreted as a linear function on matrices:
// applying f to an n×c matrix X yields one value per column of X,
// f(X)[k] = Σ_j f[j]·X[j,k].
//
// The zero value (nil) is not a valid function; build instances with
// Of, Select or Weighted, all of which allocate fresh storage.
type RowFunc []float64

var (
	// ErrBadLength is returned by constructors when the requested function
	// length is non-positive, and by Stack when called with no functions.
	ErrBadLength = errors.New("rowfunc: length must be > 0")

	// ErrBadIndex is returned by Select when the one-hot position lies
	// outside [0, n).
	ErrBadIndex = errors.New("rowfunc: index out of range")
)

// Of builds a RowFunc from literal weights.
// The variadic arguments are copied, so later mutation of the caller's
// backing slice never leaks into the function.
// Errors: ErrBadLength when no weights are given.
// Complexity: O(n).
func Of(weights ...float64) (RowFunc, error) {
	// A function of length zero has no domain to act on.
	if len(weights) == 0 {
		return nil, ErrBadLength
	}
	// Copy defensively; RowFunc owns its storage.
	f := make(RowFunc, len(weights))
	copy(f, weights)

	return f, nil
}

// Select returns the one-hot function of length n with a single 1 at
// position i: applied to a matrix, it picks out row i exactly.
// Errors: ErrBadLength (n <= 0), ErrBadIndex (i outside [0, n)).
// Complexity: O(n).
func Select(n, i int) (RowFunc, error) {
	// Validate the domain size first, then the hot position.
	if n <= 0 {
		return nil, ErrBadLength
	}
	if i < 0 || i >= n {
		return nil, ErrBadIndex
	}
	// Zero-initialized by the runtime; one deterministic write.
	f := make(RowFunc, n)
	f[i] = 1

	return f, nil
}

// Weighted returns the constant function of length n with every weight
// equal to c: applied to a matrix, it yields c times each column sum.
// Errors: ErrBadLength (n <= 0).
// Complexity: O(n).
func Weighted(n int, c float64) (RowFunc, error) {
	if n <= 0 {
		return nil, ErrBadLength
	}
	f := make(RowFunc, n)
	for j := range f {
		f[j] = c
	}

	return f, nil
}

// Len reports the length of the function's domain (the number of matrix
// rows it can be applied to).
// Complexity: O(1).
func (f RowFunc) Len() int { return len(f) }
