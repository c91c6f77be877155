// Package linmap is a small playground for seeing matrix multiplication
// as function application: a row vector is a linear "function" that you
// apply to a matrix, and stacking several row vectors batches those
// functions into a single matrix product.
//
// 🚀 What is linmap?
//
//	A compact, zero-dependency library that brings together:
//		• matrix/  — Dense row-major storage, strict validators, and the
//		             product kernels (Mul, VecMat, Transpose, Scale)
//		• rowfunc/ — row vectors as applicable functions: one-hot selectors,
//		             constant-weight functionals, Stack and batch application
//
// ✨ Why choose linmap?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Fail-fast guarantees – every kernel validates shapes and returns
//     sentinel errors (errors.Is friendly), never panics on user input
//   - Pure Go – no cgo, no hidden deps
//   - Deterministic – fixed loop orders, no mutation of operands
//
// Quick ASCII example:
//
//	            ⎡4 9 3⎤
//	[1 0 0]  ·  ⎢0 3 9⎥  =  [4 9 3]      (a one-hot row vector *selects* row 0)
//	            ⎣7 3 7⎦
//
//	[2 2 2]  ·  X        =  [22 30 38]   (constant weights *sum* the columns, ×2)
//
// Stack the two functions into a matrix and one multiplication applies
// both at once — that is the whole story this module tells.
//
// Dive into examples/ for runnable walkthroughs and each package's
// doc.go for details.
//
//	go get github.com/katalvlaran/linmap
package linmap
