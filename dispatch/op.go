// SPDX-License-Identifier: MIT

package dispatch

import (
	"fmt"
	"strings"
)

// Op names one operation of the closed set. The zero value is invalid.
type Op int

// The operations, in presentation order.
const (
	OpAdd Op = iota + 1
	OpSubtract
	OpMultiply
	OpTranspose
	OpInverse
	OpRank
	OpDeterminant
	OpEigenvalues
)

var opNames = [...]string{
	OpAdd:         "Add",
	OpSubtract:    "Subtract",
	OpMultiply:    "Multiply",
	OpTranspose:   "Transpose",
	OpInverse:     "Inverse",
	OpRank:        "Rank",
	OpDeterminant: "Determinant",
	OpEigenvalues: "Eigenvalues",
}

// Ops returns every valid Op in presentation order.
func Ops() []Op {
	return []Op{OpAdd, OpSubtract, OpMultiply, OpTranspose, OpInverse, OpRank, OpDeterminant, OpEigenvalues}
}

// Valid reports whether o belongs to the closed set.
func (o Op) Valid() bool { return o >= OpAdd && o <= OpEigenvalues }

// String returns the display name, or "Op(n)" for invalid values.
func (o Op) String() string {
	if !o.Valid() {
		return fmt.Sprintf("Op(%d)", int(o))
	}

	return opNames[o]
}

// Arity returns 2 for binary operations, 1 for unary ones and 0 when invalid.
func (o Op) Arity() int {
	switch {
	case o >= OpAdd && o <= OpMultiply:
		return 2
	case o.Valid():
		return 1
	}

	return 0
}

// ParseOp maps a display name to its Op, ignoring case and surrounding space.
// Errors: ErrUnknownOp.
func ParseOp(s string) (Op, error) {
	name := strings.TrimSpace(s)
	for _, o := range Ops() {
		if strings.EqualFold(name, opNames[o]) {
			return o, nil
		}
	}

	return 0, fmt.Errorf("ParseOp(%q): %w", s, ErrUnknownOp)
}
