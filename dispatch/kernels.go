// SPDX-License-Identifier: MIT

package dispatch

import "github.com/katalvlaran/matcalc/matrix"

// value is the raw outcome of a kernel before it is shaped into a Result.
type value struct {
	m   *matrix.Dense
	s   float64
	eig *matrix.EigenDecomposition
}

// kernel runs one operation on already validated operands.
// Unary kernels ignore right.
type kernel func(left, right *matrix.Dense) (value, error)

// defaultKernels binds every Op to its matrix routine.
// Each Dispatcher owns its table.
func defaultKernels() map[Op]kernel {
	return map[Op]kernel{
		OpAdd:       binaryKernel(matrix.Add),
		OpSubtract:  binaryKernel(matrix.Sub),
		OpMultiply:  binaryKernel(matrix.Mul),
		OpTranspose: unaryKernel(matrix.Transpose),
		OpInverse:   unaryKernel(matrix.Inverse),
		OpRank: func(l, _ *matrix.Dense) (value, error) {
			n, err := matrix.Rank(l)
			return value{s: float64(n)}, err
		},
		OpDeterminant: func(l, _ *matrix.Dense) (value, error) {
			d, err := matrix.Det(l)
			return value{s: d}, err
		},
		OpEigenvalues: func(l, _ *matrix.Dense) (value, error) {
			e, err := matrix.Eigen(l)
			return value{eig: e}, err
		},
	}
}

func binaryKernel(f func(a, b matrix.Matrix) (*matrix.Dense, error)) kernel {
	return func(l, r *matrix.Dense) (value, error) {
		m, err := f(l, r)
		return value{m: m}, err
	}
}

func unaryKernel(f func(m matrix.Matrix) (*matrix.Dense, error)) kernel {
	return func(l, _ *matrix.Dense) (value, error) {
		m, err := f(l)
		return value{m: m}, err
	}
}
