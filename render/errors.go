// SPDX-License-Identifier: MIT

package render

import (
	"errors"
	"fmt"
)

// ErrNilMatrix indicates a nil *matrix.Dense was passed to a renderer.
var ErrNilMatrix = errors.New("render: nil matrix")

// renderErrorf wraps err with a renderer tag. Use only when err != nil.
func renderErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
