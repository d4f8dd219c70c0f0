// Package config holds the benchmark configuration.
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Bench configures a benchmark run. Every field can be set from YAML; zero
// values left in a file are filled from Default().
type Bench struct {
	// Point set sizes to time, in order.
	Sizes []int `yaml:"sizes"`
	// Timed runs per size and algorithm. Each run uses a fresh point set.
	Trials int    `yaml:"trials"`
	Seed   uint64 `yaml:"seed"`
	// Coordinate range of generated points.
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
	// Snap generated coordinates to integers.
	Integer bool `yaml:"integer"`
	// Largest size the naive hull is run at. It is cubic, so large sizes
	// take minutes.
	NaiveLimit int `yaml:"naive_limit"`
	// Compare every divide and conquer hull against the naive hull when
	// both were computed.
	CrossCheck bool `yaml:"cross_check"`
}

func Default() Bench {
	return Bench{
		Sizes:      []int{10, 50, 100, 250, 500, 1000, 5000, 10000},
		Trials:     5,
		Seed:       1,
		Min:        0,
		Max:        1000,
		NaiveLimit: 500,
		CrossCheck: true,
	}
}

// Load reads a YAML configuration file on top of the defaults.
func Load(path string) (Bench, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Bench{}, errors.Wrap(err, "reading config")
	}
	return Parse(data)
}

func Parse(data []byte) (Bench, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Bench{}, errors.Wrap(err, "parsing config")
	}
	if err := cfg.Validate(); err != nil {
		return Bench{}, err
	}
	return cfg, nil
}

func (b Bench) Validate() error {
	if len(b.Sizes) == 0 {
		return errors.New("config: at least one size is required")
	}
	for _, n := range b.Sizes {
		if n < 0 {
			return errors.Errorf("config: size %d is negative", n)
		}
	}
	if b.Trials < 1 {
		return errors.Errorf("config: trials must be at least 1, got %d", b.Trials)
	}
	if b.Min >= b.Max {
		return errors.Errorf("config: min (%g) must be less than max (%g)", b.Min, b.Max)
	}
	if b.NaiveLimit < 0 {
		return errors.Errorf("config: naive_limit %d is negative", b.NaiveLimit)
	}
	return nil
}
