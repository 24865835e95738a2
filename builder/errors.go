// SPDX-License-Identifier: MIT

package builder

import "github.com/pkg/errors"

// ErrTooFewVertices is returned when a size parameter is below the shape's minimum.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrConstructFailed is returned for a nil constructor.
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrOptionViolation is returned when an option carries an unusable value.
var ErrOptionViolation = errors.New("builder: invalid option value")

// ErrBadSpec is returned by Parse for a malformed shape spec.
var ErrBadSpec = errors.New("builder: bad shape spec")
