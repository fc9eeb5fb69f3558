package pipeline

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/katalvlaran/gradsqrt/stream"
)

// Supported input widths in bits. 256 is served by package wide.
var widths = map[int]bool{8: true, 16: true, 32: true, 64: true, 256: true}

var (
	// ErrBadWidth is returned for a width outside 8, 16, 32, 64 and 256.
	ErrBadWidth = errors.New("pipeline: unsupported width")
	// ErrBadScale is returned for a zero scale or one that does not fit the width.
	ErrBadScale = errors.New("pipeline: scale out of range")
	// ErrWideTraversal is returned when width 256 is combined with a
	// one-directional traversal.
	ErrWideTraversal = errors.New("pipeline: width 256 supports only the changing traversal")
)

// Config describes one streaming run.
type Config struct {
	// Mode is "floor" or "closest".
	Mode string `yaml:"mode"`
	// Traversal is "changing", "ascending" or "descending".
	Traversal string `yaml:"traversal"`
	// Width is the input width in bits.
	Width int `yaml:"width"`
	// Seed is the initial root estimate. Values above the root type clamp.
	Seed uint64 `yaml:"seed"`
	// Scale multiplies every input before its root is taken.
	Scale uint64 `yaml:"scale"`
	// Echo prefixes each output line with the input and a tab.
	Echo bool `yaml:"echo"`
	// JumpLog is the number of moves in one step above which a debug
	// entry is logged. Zero disables it.
	JumpLog uint64 `yaml:"jump_log"`
}

// DefaultConfig returns the configuration used when nothing is specified.
func DefaultConfig() Config {
	return Config{
		Mode:      stream.Floor.String(),
		Traversal: stream.Changing.String(),
		Width:     64,
		Scale:     1,
		JumpLog:   1024,
	}
}

// LoadConfig reads a YAML file on top of DefaultConfig. Unknown keys are
// rejected.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path) // #nosec G304
	if err != nil {
		return cfg, errors.Wrap(err, "could not read config file")
	}
	if err := yaml.UnmarshalStrict(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "could not parse config file %s", path)
	}
	return cfg, nil
}

// Validate reports the first problem with c, matching errors.Is against
// the package sentinels and those of package stream.
func (c Config) Validate() error {
	if _, err := stream.ParseMode(c.Mode); err != nil {
		return errors.Wrap(err, "invalid config")
	}
	trav, err := stream.ParseTraversal(c.Traversal)
	if err != nil {
		return errors.Wrap(err, "invalid config")
	}
	if !widths[c.Width] {
		return errors.Wrapf(ErrBadWidth, "width %d", c.Width)
	}
	if c.Scale == 0 || (c.Width < 64 && c.Scale > uint64(1)<<c.Width-1) {
		return errors.Wrapf(ErrBadScale, "scale %d for width %d", c.Scale, c.Width)
	}
	if c.Width == 256 && trav != stream.Changing {
		return errors.Wrapf(ErrWideTraversal, "traversal %s", trav)
	}
	return nil
}
