// SPDX-License-Identifier: MIT
// Package: matcalc/dispatch
//
// errors.go — sentinels and the Failure error type.
//
// Error policy:
//   • Each FailureKind has exactly one sentinel; *Failure unwraps to it.
//   • The backend error (if any) is kept as the second unwrap target, so
//     errors.Is(err, matrix.ErrSingular) (or matrix.ErrNonFinite) also holds.
//   • Reason is the single human-readable message shown to the user.

package dispatch

import "errors"

var (
	// ErrShapeMismatch marks a violated shape precondition.
	ErrShapeMismatch = errors.New("dispatch: shape mismatch")
	// ErrSingular marks a matrix the backend reports as not invertible, or one
	// holding NaN/±Inf where the solver needs finite input.
	ErrSingular = errors.New("dispatch: singular matrix")
	// ErrComputation marks any other backend failure.
	ErrComputation = errors.New("dispatch: computation error")
	// ErrUnknownOperand marks an operand ID that the Operands do not hold.
	ErrUnknownOperand = errors.New("dispatch: unknown operand")
	// ErrUnknownOp marks an Op outside the closed set.
	ErrUnknownOp = errors.New("dispatch: unknown operation")
)

// FailureKind classifies a Failure.
type FailureKind int

// Failure kinds.
const (
	ShapeMismatch FailureKind = iota + 1
	Singular
	ComputationError
	UnknownOperand
	UnknownOp
)

var failureNames = map[FailureKind]string{
	ShapeMismatch:    "ShapeMismatch",
	Singular:         "Singular",
	ComputationError: "ComputationError",
	UnknownOperand:   "UnknownOperand",
	UnknownOp:        "UnknownOp",
}

var failureSentinels = map[FailureKind]error{
	ShapeMismatch:    ErrShapeMismatch,
	Singular:         ErrSingular,
	ComputationError: ErrComputation,
	UnknownOperand:   ErrUnknownOperand,
	UnknownOp:        ErrUnknownOp,
}

// String returns the kind name.
func (k FailureKind) String() string {
	if n, ok := failureNames[k]; ok {
		return n
	}

	return "FailureKind(?)"
}

// Failure is the structured error carried by a KindFailure Result.
type Failure struct {
	Kind   FailureKind
	Op     Op
	Reason string // user-facing message
	Err    error  // backend cause; nil for precondition failures
}

// Error returns the user-facing reason.
func (f *Failure) Error() string { return f.Reason }

// Unwrap exposes the kind sentinel and the backend cause to errors.Is/As.
func (f *Failure) Unwrap() []error {
	errs := make([]error, 0, 2)
	if s, ok := failureSentinels[f.Kind]; ok {
		errs = append(errs, s)
	}
	if f.Err != nil {
		errs = append(errs, f.Err)
	}

	return errs
}
