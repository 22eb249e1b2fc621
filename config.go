package jsonutil

import (
	"errors"
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the file form of the normalizer options.
//
//	naive_time: warn        # ignore | warn | error
//	duplicate_members: error # ignore | warn | error
//	max_depth: 64
//	location: Asia/Tokyo    # IANA name; empty or "Local" uses the process zone
//	language: en            # message language (en | ja)
type Config struct {
	NaiveTime        Severity `yaml:"naive_time"`
	DuplicateMembers Severity `yaml:"duplicate_members"`
	MaxDepth         int      `yaml:"max_depth"`
	Location         string   `yaml:"location"`
	Language         string   `yaml:"language"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{NaiveTime: Warn, Language: "en"}
}

// LoadConfig decodes a YAML document into a Config. Unknown keys are
// rejected; an empty document yields DefaultConfig.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return DefaultConfig(), nil
		}
		return Config{}, fmt.Errorf("jsonutil: decode config: %w", err)
	}
	if cfg.MaxDepth < 0 {
		return Config{}, fmt.Errorf("jsonutil: max_depth must be >= 0, got %d", cfg.MaxDepth)
	}
	return cfg, nil
}

// Options converts the configuration into functional options.
func (c Config) Options() ([]Option, error) {
	opts := []Option{
		WithNaiveTime(c.NaiveTime),
		WithDuplicateMembers(c.DuplicateMembers),
		WithMaxDepth(c.MaxDepth),
	}
	switch c.Location {
	case "", "Local":
	default:
		loc, err := time.LoadLocation(c.Location)
		if err != nil {
			return nil, fmt.Errorf("jsonutil: location %q: %w", c.Location, err)
		}
		opts = append(opts, WithFixedLocation(loc))
	}
	return opts, nil
}
