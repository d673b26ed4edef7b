package codegen

import (
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"
)

// Config is the build-time configuration surface of the generator: the
// target package and the supported length bounds.
type Config struct {
	Package string `yaml:"package"`
	MinLen  int    `yaml:"min_len"`
	MaxLen  int    `yaml:"max_len"`
	OutDir  string `yaml:"out_dir"`
}

func (c *Config) ToDict() *zerolog.Event {
	return zerolog.Dict().
		Str("package", c.Package).
		Int("min_len", c.MinLen).
		Int("max_len", c.MaxLen).
		Str("out_dir", c.OutDir)
}

func (c *Config) setDefaults() {
	if c.Package == "" {
		c.Package = "arrayfn"
	}

	if c.MinLen == 0 {
		c.MinLen = 2
	}

	if c.MaxLen == 0 {
		c.MaxLen = 32
	}

	if c.OutDir == "" {
		c.OutDir = "."
	}
}

func (c *Config) validate() error {
	if c.MinLen < 2 {
		return errors.New("min_len must be at least 2: lengths 0 and 1 are hand-written")
	}

	if c.MaxLen < c.MinLen {
		return errors.New("max_len must not be less than min_len")
	}

	return nil
}

// Load reads, defaults, and validates the yaml config at path.
func Load(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if nil != err {
		return nil, fmt.Errorf("failed to read config file: %v", err)
	}

	var conf Config
	if err := yaml.Unmarshal(content, &conf); nil != err {
		return nil, fmt.Errorf("failed to parse config file: %v", err)
	}

	conf.setDefaults()

	if err := conf.validate(); nil != err {
		return nil, fmt.Errorf("config validation failed: %v", err)
	}

	return &conf, nil
}
