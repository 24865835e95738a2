// SPDX-License-Identifier: MIT

package builder

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/weir/vec"
	"github.com/katalvlaran/weir/weir"
)

// Option customizes layout and tagging of generated shapes.
type Option func(*builderConfig)

// builderConfig is shared by every constructor in one Build call.
type builderConfig struct {
	origin [2]float64
	scale  float64
	attrs  weir.Attrs
	err    error
}

func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{scale: 1}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithOrigin offsets every shape by (x, y).
func WithOrigin(x, y float64) Option {
	return func(c *builderConfig) {
		c.origin = [2]float64{x, y}
	}
}

// WithScale multiplies every unit length by s, which must be positive.
func WithScale(s float64) Option {
	return func(c *builderConfig) {
		if s <= 0 {
			c.err = errors.Wrapf(ErrOptionViolation, "scale must be > 0, got %g", s)
			return
		}
		c.scale = s
	}
}

// WithAttr sets key to val on every generated vertex.
func WithAttr(key string, val weir.Value) Option {
	return func(c *builderConfig) {
		if key == "" {
			c.err = errors.Wrap(ErrOptionViolation, "empty attribute key")
			return
		}
		if c.attrs == nil {
			c.attrs = weir.Attrs{}
		}
		c.attrs[key] = val
	}
}

// at maps unit layout coordinates to a position.
func at[P vec.Vector[P]](cfg builderConfig, x, y float64) P {
	comps := make([]float64, vec.DimOf[P]())
	comps[0] = cfg.origin[0] + cfg.scale*x
	comps[1] = cfg.origin[1] + cfg.scale*y
	p, _ := vec.FromComponents[P](comps) // the length always matches

	return p
}
