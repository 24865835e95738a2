// SPDX-License-Identifier: MIT

package builder

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/katalvlaran/weir/vec"
)

// Parse reads a shape spec of the form kind:args, e.g. "cycle:6" or "grid:3x4".
// Parameter ranges are checked when the constructor runs.
func Parse[P vec.Vector[P]](spec string) (Constructor[P], error) {
	kind, args, _ := strings.Cut(spec, ":")
	parts := strings.Split(args, ":")
	n, err := strconv.Atoi(parts[0])
	if kind == "grid" {
		r, c, ok := strings.Cut(args, "x")
		rows, err1 := strconv.Atoi(r)
		cols, err2 := strconv.Atoi(c)
		if !ok || err1 != nil || err2 != nil {
			return nil, errors.Wrapf(ErrBadSpec, "%q: want grid:<rows>x<cols>", spec)
		}
		return Grid[P](rows, cols), nil
	}

	if err != nil || len(parts) != 1 {
		return nil, errors.Wrapf(ErrBadSpec, "%q: want %s:<n>", spec, kind)
	}
	switch kind {
	case "path":
		return Path[P](n), nil
	case "cycle":
		return Cycle[P](n), nil
	case "star":
		return Star[P](n), nil
	case "wheel":
		return Wheel[P](n), nil
	case "complete":
		return Complete[P](n), nil
	}

	return nil, errors.Wrapf(ErrBadSpec, "unknown shape %q", kind)
}
