// Package rowfunc treats a row vector as a linear function that can be
// applied to a matrix — the reading of the matrix product that this
// module exists to teach.
//
// 🚀 What is a row function?
//
//	A row vector f of length n, multiplied against an n×c matrix X,
//	produces one output per column: f(X) = fᵀ·X.  Depending on the
//	weights, the same mechanism:
//	  • selects a single row        (one-hot f — Select)
//	  • sums the columns, scaled    (constant f — Weighted)
//	  • blends rows arbitrarily     (any literal f — Of)
//
// ✨ Key features:
//   - Select / Weighted / Of constructors with fail-fast validation
//   - Apply: f(X) as a plain slice (the singleton row dimension drops)
//   - Stack: pack several functions into one matrix
//   - ApplyAll: batch application — row i of the result equals
//     fs[i].Apply(X) computed independently
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/linmap/rowfunc"
//
//	f1, _ := rowfunc.Select(3, 0)      // [1 0 0] — pick row 0
//	f3, _ := rowfunc.Weighted(3, 2)    // [2 2 2] — 2 × column sums
//
//	y, err := f1.Apply(X)              // y == row 0 of X
//	B, err := rowfunc.ApplyAll([]rowfunc.RowFunc{f1, f3}, X)
//
// Performance:
//
//   - Apply:    O(n·c) (one-hot functions cost a single row pass)
//   - ApplyAll: O(len(fs)·n·c)
//
// See example_test.go and the runnable programs in examples/ for a
// detailed walkthrough.
package rowfunc
