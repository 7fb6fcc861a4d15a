package fixedpoint

import "fmt"

const (
	defaultRounding = RoundHalfAway
	defaultOverflow = OverflowError
)

type config struct {
	rounding Rounding
	overflow Overflow
}

func defaultConfig() config {
	return config{
		rounding: defaultRounding,
		overflow: defaultOverflow,
	}
}

// Option configures a [Quantizer].
type Option func(*config) error

// WithRounding sets the rounding mode (default [RoundHalfAway]).
func WithRounding(r Rounding) Option {
	return func(cfg *config) error {
		if !r.Valid() {
			return fmt.Errorf("fixedpoint: invalid rounding mode: %d", r)
		}

		cfg.rounding = r

		return nil
	}
}

// WithOverflow sets the overflow policy (default [OverflowError]).
func WithOverflow(o Overflow) Option {
	return func(cfg *config) error {
		if !o.Valid() {
			return fmt.Errorf("fixedpoint: invalid overflow policy: %d", o)
		}

		cfg.overflow = o

		return nil
	}
}
