// SPDX-License-Identifier: MIT
// Package dispatch validates shape preconditions for a selected linear-algebra
// operation, invokes the numeric routine, and returns a tagged Result.
//
// Operations (closed set):
//
//	Add, Subtract, Multiply      binary, operands Left and Right
//	Transpose, Inverse, Rank,    unary, operand Left
//	Determinant, Eigenvalues
//
// Failure taxonomy (Result.Kind == KindFailure, Result.Err() != nil):
//
//	ShapeMismatch     precondition violated; the routine is NOT invoked
//	Singular          the matrix is not invertible, or holds NaN/±Inf for Rank/Eigenvalues
//	ComputationError  any other backend error, recovered panics included
//	UnknownOperand    an operand ID is missing from the Operands
//	UnknownOp         the Op is outside the closed set
//
// Every failure matches its sentinel (ErrShapeMismatch, ErrSingular, ...) via
// errors.Is. Nothing escapes Dispatch as a panic; the caller stays usable.
//
// Results never alias operands: matrices are fresh allocations and the
// heatmap source of Rank/Determinant/Eigenvalues is a copy of the operand.
package dispatch
