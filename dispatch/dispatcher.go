// SPDX-License-Identifier: MIT
// Package: matcalc/dispatch
//
// dispatcher.go — validate, invoke, shape the Result.
//
// Implementation:
//   - Stage 1: reject an Op outside the closed set (UnknownOp).
//   - Stage 2: resolve operand IDs (UnknownOperand).
//   - Stage 3: check the shape precondition with the matrix validators;
//     on violation return ShapeMismatch WITHOUT calling the kernel.
//   - Stage 4: call the kernel under recover; classify backend errors.
//   - Stage 5: assemble the tagged Result with its heatmap source and title.
//
// Concurrency:
//   - A Dispatcher is immutable after New and safe for concurrent use.

package dispatch

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/matcalc/matrix"
)

// Messages shown for failures.
const (
	reasonSingular = "Matrix is singular or invalid for this operation."
	reasonNoMatrix = "No matrix selected."
)

// shapeReasons holds the distinct ShapeMismatch message of each operation.
var shapeReasons = map[Op]string{
	OpAdd:         "Addition requires same shapes.",
	OpSubtract:    "Subtraction requires same shapes.",
	OpMultiply:    "Multiplication requires A.cols == B.rows.",
	OpInverse:     "Inverse requires square matrix.",
	OpDeterminant: "Determinant requires square matrix.",
	OpEigenvalues: "Eigenvalue calculation requires square matrix.",
}

// Operands resolves matrix IDs to read-only snapshots.
// *builder.Set satisfies it.
type Operands interface {
	Lookup(id string) (*matrix.Dense, bool)
}

// Request selects an operation and its operand IDs.
// Right is ignored for unary operations.
type Request struct {
	Op          Op
	Left, Right string
}

// Dispatcher runs Requests against Operands.
type Dispatcher struct {
	cfg     config
	kernels map[Op]kernel
}

// New returns a Dispatcher configured by opts.
func New(opts ...Option) *Dispatcher {
	return &Dispatcher{cfg: gatherOptions(opts...), kernels: defaultKernels()}
}

// Dispatch validates req, runs it against ops and returns the tagged Result.
// It never panics; every problem is reported as a KindFailure Result and
// logged once.
//
// Complexity:
//   - dominated by the kernel: O(r*c) elementwise, O(n^3) for
//     Multiply/Inverse/Determinant/Eigenvalues, SVD for Rank.
func (d *Dispatcher) Dispatch(req Request, ops Operands) Result {
	res := d.dispatch(req, ops)
	res.Op = req.Op
	res.places = d.cfg.places
	if f := res.Failure; f != nil {
		if f.Err != nil {
			d.cfg.logger.Printf("dispatch: %s(%s): %s: %s: %v", req.Op, operandList(req), f.Kind, f.Reason, f.Err)
		} else {
			d.cfg.logger.Printf("dispatch: %s(%s): %s: %s", req.Op, operandList(req), f.Kind, f.Reason)
		}
	}

	return res
}

func (d *Dispatcher) dispatch(req Request, ops Operands) Result {
	op := req.Op
	if !op.Valid() {
		return failed(&Failure{Kind: UnknownOp, Op: op, Reason: fmt.Sprintf("Unknown operation %s.", op)})
	}

	left, f := lookup(op, req.Left, ops)
	if f != nil {
		return failed(f)
	}
	var right *matrix.Dense
	if op.Arity() == 2 {
		if right, f = lookup(op, req.Right, ops); f != nil {
			return failed(f)
		}
	}

	if f = precondition(op, left, right); f != nil {
		return failed(f)
	}

	v, err := d.invoke(op, left, right)
	if err != nil {
		return failed(backendFailure(op, err))
	}

	return assemble(req, left, v)
}

// invoke runs the kernel, turning a backend panic into an error.
func (d *Dispatcher) invoke(op Op, left, right *matrix.Dense) (v value, err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("%s: %v", op, p)
		}
	}()

	return d.kernels[op](left, right)
}

func failed(f *Failure) Result {
	return Result{Kind: KindFailure, Failure: f}
}

// lookup resolves one operand ID.
func lookup(op Op, id string, ops Operands) (*matrix.Dense, *Failure) {
	if id == "" {
		return nil, &Failure{Kind: UnknownOperand, Op: op, Reason: reasonNoMatrix}
	}
	if ops != nil {
		if m, ok := ops.Lookup(id); ok && m != nil {
			return m, nil
		}
	}

	return nil, &Failure{Kind: UnknownOperand, Op: op, Reason: fmt.Sprintf("Matrix %q not found.", id)}
}

// precondition checks the shape rule of op; nil means the kernel may run.
func precondition(op Op, left, right *matrix.Dense) *Failure {
	var err error
	switch op {
	case OpAdd, OpSubtract:
		err = matrix.ValidateSameShape(left, right)
	case OpMultiply:
		err = matrix.ValidateMulCompatible(left, right)
	case OpInverse, OpDeterminant, OpEigenvalues:
		err = matrix.ValidateSquare(left)
	}
	if err == nil {
		return nil
	}

	return &Failure{Kind: ShapeMismatch, Op: op, Reason: shapeReasons[op], Err: err}
}

// backendFailure classifies an error raised after the precondition passed.
// Singular and non-finite operands share the Singular kind.
func backendFailure(op Op, err error) *Failure {
	if errors.Is(err, matrix.ErrSingular) || errors.Is(err, matrix.ErrNonFinite) {
		return &Failure{Kind: Singular, Op: op, Reason: reasonSingular, Err: err}
	}

	return &Failure{Kind: ComputationError, Op: op, Reason: "Error: " + err.Error(), Err: err}
}

// assemble shapes a kernel value into the Result for req.
func assemble(req Request, left *matrix.Dense, v value) Result {
	switch req.Op {
	case OpAdd, OpSubtract, OpMultiply:
		return Result{Kind: KindMatrix, Matrix: v.m, Heatmap: v.m, Title: TitleResult}
	case OpTranspose:
		return Result{Kind: KindMatrix, Matrix: v.m, Heatmap: v.m, Title: titleTransposePrefix + req.Left}
	case OpInverse:
		return Result{Kind: KindMatrix, Matrix: v.m, Heatmap: v.m, Title: titleInversePrefix + req.Left}
	case OpRank, OpDeterminant:
		return Result{Kind: KindScalar, Scalar: v.s, Heatmap: left.CloneDense(), Title: titleMatrixPrefix + req.Left}
	}

	eig := &EigenResult{Values: v.eig.Values, Vectors: v.eig.Vectors}
	if left.Rows() == 2 && left.Cols() == 2 {
		var arrows [2][2]float64
		for k := range arrows {
			arrows[k], _ = v.eig.Real2D(k)
		}
		eig.Arrows = &arrows
	} else {
		eig.Notice = NoticeVisualizationUnsupported
	}

	return Result{Kind: KindEigen, Eigen: eig, Heatmap: left.CloneDense(), Title: titleMatrixPrefix + req.Left}
}

func operandList(req Request) string {
	if req.Op.Arity() == 2 {
		return req.Left + ", " + req.Right
	}

	return req.Left
}
