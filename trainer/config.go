package trainer

import (
	"io"
	"os"
	"time"

	"checkers/meta"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config holds the training hyperparameters.
type Config struct {
	Instances      int           `yaml:"instances"`       // Evolution tasks per generation
	Iterations     int           `yaml:"iterations"`      // Bracket rounds per task
	BracketSize    int           `yaml:"bracket_size"`    // Players per bracket
	MutationRate   int           `yaml:"mutation_rate"`   // Parts per thousand
	Workers        int           `yaml:"workers"`         // Concurrent tasks, 0 means one per instance
	ReportInterval time.Duration `yaml:"report_interval"` // Statistics sampling period
}

func DefaultConfig() Config {
	return Config{
		Instances:      meta.TRAINING_INSTANCES,
		Iterations:     meta.ITERATIONS_PER_INSTANCE,
		BracketSize:    meta.BRACKET_SIZE,
		MutationRate:   meta.MUTATION_RATE,
		ReportInterval: meta.REPORT_INTERVAL,
	}
}

// LoadConfig reads a YAML file. Fields missing from the file keep their
// default values, unknown fields are rejected.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	f, err := os.Open(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "failed to open config %s", path)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && err != io.EOF {
		return cfg, errors.Wrapf(err, "failed to parse config %s", path)
	}
	return cfg, errors.Wrapf(cfg.Validate(), "invalid config %s", path)
}

func (c Config) Validate() error {
	switch {
	case c.Instances < 1:
		return errors.Errorf("instances must be positive, got %d", c.Instances)
	case c.Iterations < 1:
		return errors.Errorf("iterations must be positive, got %d", c.Iterations)
	case c.BracketSize < 4:
		return errors.Errorf("bracket size must be at least 4, got %d", c.BracketSize)
	case c.MutationRate < 0 || c.MutationRate > 1000:
		return errors.Errorf("mutation rate must be within [0, 1000], got %d", c.MutationRate)
	case c.Workers < 0:
		return errors.Errorf("workers must not be negative, got %d", c.Workers)
	case c.ReportInterval <= 0:
		return errors.Errorf("report interval must be positive, got %s", c.ReportInterval)
	}
	return nil
}

func (c Config) workers() int {
	if c.Workers == 0 {
		return c.Instances
	}
	return c.Workers
}
