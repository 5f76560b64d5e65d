package registry

import (
	"github.com/katalvlaran/shanks/accel"
	"github.com/katalvlaran/shanks/aitken"
	"github.com/katalvlaran/shanks/changwynn"
	"github.com/katalvlaran/shanks/epsilon"
	"github.com/katalvlaran/shanks/fordsidi"
	"github.com/katalvlaran/shanks/levin"
	"github.com/katalvlaran/shanks/rho"
	"github.com/katalvlaran/shanks/series"
	"github.com/katalvlaran/shanks/theta"
)

// Build validates cfg and returns the accelerator it describes over s.
func Build[T accel.Float](cfg Config, s series.Series[T]) (accel.Accelerator[T], error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	switch cfg.Method {
	case MethodEpsilon:
		return epsilon.New(s, epsilonOptions(cfg)...), nil
	case MethodEpsilonCompact:
		return epsilon.NewCompact(s, epsilonOptions(cfg)...), nil
	case MethodAitken:
		opts := []aitken.Option{aitken.WithLogger(cfg.Logger)}
		if cfg.Alternating {
			opts = append(opts, aitken.WithAlternating())
		}

		return aitken.New(s, opts...), nil
	case MethodRho:
		return rho.New(s, rhoOptions(cfg)...), nil
	case MethodTheta:
		return theta.New(s, theta.WithLogger(cfg.Logger)), nil
	case MethodChangWynn:
		return changwynn.New(s, changwynn.WithLogger(cfg.Logger)), nil
	case MethodFordSidi:
		return fordsidi.New(s, fordSidiOptions(cfg)...), nil
	default: // MethodLevin; Validate rejected everything else
		return levin.New(s, levinOptions(cfg)...), nil
	}
}

// The Parse errors below were already ruled out by Validate.

func epsilonOptions(cfg Config) []epsilon.Option {
	opts := []epsilon.Option{epsilon.WithLogger(cfg.Logger)}
	if cfg.Memory != "" {
		m, _ := epsilon.ParseMemoryMode(cfg.Memory)
		opts = append(opts, epsilon.WithMemoryMode(m))
	}
	if cfg.Window != "" {
		w, _ := epsilon.ParseWindow(cfg.Window)
		opts = append(opts, epsilon.WithWindow(w))
	}
	if cfg.Threshold > 0 {
		opts = append(opts, epsilon.WithThreshold(cfg.Threshold))
	}

	return opts
}

func rhoOptions(cfg Config) []rho.Option {
	opts := []rho.Option{rho.WithLogger(cfg.Logger)}
	if cfg.Numerator != "" {
		n, _ := rho.ParseNumerator(cfg.Numerator)
		opts = append(opts, rho.WithNumerator(n))
	}
	if cfg.Gamma > 0 {
		opts = append(opts, rho.WithGamma(cfg.Gamma))
	}
	if cfg.Rho > 0 {
		opts = append(opts, rho.WithRho(cfg.Rho))
	}

	return opts
}

func levinOptions(cfg Config) []levin.Option {
	opts := []levin.Option{levin.WithLogger(cfg.Logger)}
	if cfg.Kind != "" {
		k, _ := levin.ParseKind(cfg.Kind)
		opts = append(opts, levin.WithKind(k))
	}
	if cfg.Remainder != "" {
		r, _ := levin.ParseRemainder(cfg.Remainder)
		opts = append(opts, levin.WithRemainder(r))
	}
	if cfg.Beta > 0 {
		opts = append(opts, levin.WithBeta(cfg.Beta))
	}

	return opts
}

func fordSidiOptions(cfg Config) []fordsidi.Option {
	opts := []fordsidi.Option{fordsidi.WithLogger(cfg.Logger)}
	if cfg.Remainder != "" {
		r, _ := levin.ParseRemainder(cfg.Remainder)
		opts = append(opts, fordsidi.WithRemainder(r))
	}
	if cfg.Beta > 0 {
		opts = append(opts, fordsidi.WithBeta(cfg.Beta))
	}

	return opts
}
