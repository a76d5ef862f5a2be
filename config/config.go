package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Sentinel errors for configuration.
var (
	// ErrInvalidDimensions indicates a non-positive height or width.
	ErrInvalidDimensions = errors.New("invalid dimensions: non (positive) integer values")

	// ErrDimensionsNotNumber indicates a height or width that is not an integer.
	ErrDimensionsNotNumber = errors.New("invalid dimensions: non-numeric values")

	// ErrInvalidConfig indicates any other field failed validation.
	ErrInvalidConfig = errors.New("config: invalid configuration")
)

// Config holds everything needed for one run of the maze program.
type Config struct {
	Height    int           `yaml:"height" validate:"gt=0"`
	Width     int           `yaml:"width" validate:"gt=0"`
	Seed      uint64        `yaml:"seed"`
	MazeDelay time.Duration `yaml:"mazeDelay" validate:"gte=0"`
	PathDelay time.Duration `yaml:"pathDelay" validate:"gte=0"`
	Color     bool          `yaml:"color"`
	Animate   bool          `yaml:"animate"`
	Verbose   bool          `yaml:"verbose"`
}

// Default returns the built-in configuration: a 10×10 maze, a random seed
// (0), colour and animation on, 2ms per cell and 150ms per path marker.
func Default() Config {
	return Config{
		Height:    10,
		Width:     10,
		MazeDelay: 2 * time.Millisecond,
		PathDelay: 150 * time.Millisecond,
		Color:     true,
		Animate:   true,
	}
}

// Load reads a YAML file over Default. An empty path returns Default.
// The result is not validated; call Validate once flags are applied.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "config: read %s", path)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "config: parse %s", path)
	}

	return cfg, nil
}

var validate = validator.New()

// Validate checks the field constraints. Dimension failures are reported
// as ErrInvalidDimensions, anything else as ErrInvalidConfig.
func (c Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return errors.Wrap(err, "config: validate")
	}
	for _, fe := range verrs {
		if fe.Field() == "Height" || fe.Field() == "Width" {
			return errors.Wrapf(ErrInvalidDimensions, "%s=%v", strings.ToLower(fe.Field()), fe.Value())
		}
	}

	return errors.Wrapf(ErrInvalidConfig, "%s failed %q", verrs[0].Field(), verrs[0].Tag())
}

// ParseDimensions parses the HEIGHT and WIDTH arguments.
// Returns ErrDimensionsNotNumber if either is not an integer, and
// ErrInvalidDimensions if either is not positive.
func ParseDimensions(height, width string) (int, int, error) {
	h, herr := strconv.Atoi(strings.TrimSpace(height))
	w, werr := strconv.Atoi(strings.TrimSpace(width))
	if herr != nil || werr != nil {
		return 0, 0, errors.Wrapf(ErrDimensionsNotNumber, "%q %q", height, width)
	}
	if h < 1 || w < 1 {
		return 0, 0, errors.Wrapf(ErrInvalidDimensions, "%dx%d", h, w)
	}

	return h, w, nil
}
