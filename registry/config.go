// Package registry builds accelerators from declarative configuration.
//
// A Config names a method and its knobs; it is read from YAML or TOML and
// turned into an accel.Accelerator by Build:
//
//	method: levin
//	kind: weniger-s
//	remainder: t
//	beta: 2
//
// Zero values select each method's defaults. Fields that do not apply to
// the chosen method are ignored.
package registry

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"go.uber.org/multierr"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/shanks/accel"
	"github.com/katalvlaran/shanks/epsilon"
	"github.com/katalvlaran/shanks/levin"
	"github.com/katalvlaran/shanks/rho"
)

const pkg = "registry"

// Method names accepted in Config.Method.
const (
	MethodEpsilon        = "epsilon"
	MethodEpsilonCompact = "epsilon-compact"
	MethodAitken         = "aitken"
	MethodRho            = "rho"
	MethodTheta          = "theta"
	MethodLevin          = "levin"
	MethodChangWynn      = "chang-wynn"
	MethodFordSidi       = "ford-sidi"
)

// Methods lists every method name Build understands.
var Methods = []string{
	MethodEpsilon, MethodEpsilonCompact, MethodAitken, MethodRho, MethodTheta, MethodLevin,
	MethodChangWynn, MethodFordSidi,
}

var (
	// ErrUnknownMethod indicates a Config.Method outside Methods.
	ErrUnknownMethod = fmt.Errorf("%s: %w: unknown method", pkg, accel.ErrDomain)

	// ErrUnknownFormat indicates a file extension other than .yaml, .yml or .toml.
	ErrUnknownFormat = errors.New("registry: unknown configuration format")
)

// Config describes one accelerator.
type Config struct {
	Method string `yaml:"method" toml:"method"`

	// epsilon, epsilon-compact
	Memory    string  `yaml:"memory,omitempty" toml:"memory,omitempty"`
	Window    string  `yaml:"window,omitempty" toml:"window,omitempty"`
	Threshold float64 `yaml:"epsilon_threshold,omitempty" toml:"epsilon_threshold,omitempty"`

	// aitken
	Alternating bool `yaml:"alternating,omitempty" toml:"alternating,omitempty"`

	// rho
	Numerator string  `yaml:"numerator,omitempty" toml:"numerator,omitempty"`
	Gamma     float64 `yaml:"gamma,omitempty" toml:"gamma,omitempty"`
	Rho       float64 `yaml:"rho,omitempty" toml:"rho,omitempty"`

	// levin; remainder and beta also ford-sidi
	Kind      string  `yaml:"kind,omitempty" toml:"kind,omitempty"`
	Remainder string  `yaml:"remainder,omitempty" toml:"remainder,omitempty"`
	Beta      float64 `yaml:"beta,omitempty" toml:"beta,omitempty"`

	// Logger is handed to the built accelerator; never serialized.
	Logger *zap.Logger `yaml:"-" toml:"-"`
}

// Load reads and validates a configuration file, choosing the decoder by
// extension.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("%s: read %s: %w", pkg, path, err)
	}

	var cfg Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		cfg, err = ParseYAML(data)
	case ".toml":
		cfg, err = ParseTOML(data)
	default:
		return Config{}, fmt.Errorf("%w %q", ErrUnknownFormat, ext)
	}
	if err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	if err = cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

// ParseYAML decodes a YAML document. Unknown keys are rejected.
func ParseYAML(data []byte) (Config, error) {
	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("%s: yaml: %w", pkg, err)
	}

	return cfg, nil
}

// ParseTOML decodes a TOML document. Unknown keys are rejected.
func ParseTOML(data []byte) (Config, error) {
	var cfg Config
	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("%s: toml: %w", pkg, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return Config{}, fmt.Errorf("%s: toml: unknown keys %v", pkg, undecoded)
	}

	return cfg, nil
}

// Validate reports every invalid field at once. Each violation wraps
// accel.ErrDomain.
func (c Config) Validate() error {
	var err error
	if !knownMethod(c.Method) {
		err = multierr.Append(err, fmt.Errorf("%w %q", ErrUnknownMethod, c.Method))
	}
	if c.Memory != "" {
		_, e := epsilon.ParseMemoryMode(c.Memory)
		err = multierr.Append(err, e)
	}
	if c.Window != "" {
		_, e := epsilon.ParseWindow(c.Window)
		err = multierr.Append(err, e)
	}
	if c.Numerator != "" {
		_, e := rho.ParseNumerator(c.Numerator)
		err = multierr.Append(err, e)
	}
	if c.Kind != "" {
		_, e := levin.ParseKind(c.Kind)
		err = multierr.Append(err, e)
	}
	if c.Remainder != "" {
		_, e := levin.ParseRemainder(c.Remainder)
		err = multierr.Append(err, e)
	}
	err = multierr.Append(err, nonNegative("epsilon_threshold", c.Threshold))
	err = multierr.Append(err, nonNegative("gamma", c.Gamma))
	err = multierr.Append(err, nonNegative("rho", c.Rho))
	err = multierr.Append(err, nonNegative("beta", c.Beta))

	return err
}

func knownMethod(name string) bool {
	for _, m := range Methods {
		if m == name {
			return true
		}
	}

	return false
}

// nonNegative accepts 0 (use the default) and positive finite values.
func nonNegative(field string, v float64) error {
	if v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return accel.Domainf(pkg, "%s must be positive and finite, got %v", field, v)
	}

	return nil
}
