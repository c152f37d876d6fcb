package cobra

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig is wrapped by RenderConfig.Validate.
var ErrInvalidConfig = errors.New("cobra: invalid render config")

// RenderConfig is the configuration threaded through renderer
// construction. The zero value is not valid; start from
// DefaultRenderConfig.
type RenderConfig struct {
	// ColorspaceGamma is the display gamma used when UseColorspaceGamma
	// is set.
	ColorspaceGamma float32

	// UseColorspaceGamma enables gamma encoding on output.
	UseColorspaceGamma bool

	// Level is the draft decimation factor. 1 renders at full resolution.
	Level int

	// Workers is the number of goroutines used for leaf tasks.
	// Values below 2 keep execution on the calling goroutine.
	Workers int
}

// DefaultRenderConfig returns full-resolution, single-threaded rendering
// with gamma disabled.
func DefaultRenderConfig() RenderConfig {
	return RenderConfig{
		ColorspaceGamma: DefaultColorspaceGamma,
		Level:           1,
		Workers:         1,
	}
}

// Validate reports the first invalid field.
func (c RenderConfig) Validate() error {
	if c.Level < 1 {
		return fmt.Errorf("%w: level %d < 1", ErrInvalidConfig, c.Level)
	}
	if c.UseColorspaceGamma && !(c.ColorspaceGamma > 0) {
		return fmt.Errorf("%w: colorspace gamma %v must be positive", ErrInvalidConfig, c.ColorspaceGamma)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers %d < 0", ErrInvalidConfig, c.Workers)
	}
	return nil
}

// Gamma returns the output quantizer: the colorspace gamma when enabled,
// otherwise the identity.
func (c RenderConfig) Gamma() *Gamma {
	if !c.UseColorspaceGamma {
		return IdentityGamma()
	}
	return NewGamma(c.ColorspaceGamma)
}
