package main

import (
	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/gradsqrt/internal/pipeline"
)

var defaults = pipeline.DefaultConfig()

var (
	// ModeFlag selects floor or closest roots.
	ModeFlag = &cli.StringFlag{
		Name:    "mode",
		Aliases: []string{"m"},
		Usage:   "Rounding of each root: floor or closest",
		Value:   defaults.Mode,
	}
	// TraversalFlag declares the order of the input values.
	TraversalFlag = &cli.StringFlag{
		Name:    "traversal",
		Aliases: []string{"t"},
		Usage:   "Order of the inputs: changing, ascending or descending",
		Value:   defaults.Traversal,
	}
	// WidthFlag is the input width in bits.
	WidthFlag = &cli.IntFlag{
		Name:  "width",
		Usage: "Input width in bits: 8, 16, 32, 64 or 256",
		Value: defaults.Width,
	}
	// SeedFlag is the initial root estimate.
	SeedFlag = &cli.Uint64Flag{
		Name:  "seed",
		Usage: "Initial root estimate; a value near the first root saves work",
		Value: defaults.Seed,
	}
	// ScaleFlag multiplies every input before its root is taken.
	ScaleFlag = &cli.Uint64Flag{
		Name:  "scale",
		Usage: "Multiply inputs by this factor first (64 gives 8x finer roots)",
		Value: defaults.Scale,
	}
	// EchoFlag prints each input next to its root.
	EchoFlag = &cli.BoolFlag{
		Name:  "echo",
		Usage: "Print input<TAB>root instead of the root alone",
	}
	// JumpLogFlag sets the move count above which a step is logged at debug level.
	JumpLogFlag = &cli.Uint64Flag{
		Name:  "jump-log",
		Usage: "Log steps that take more moves than this at debug level (0 disables)",
		Value: defaults.JumpLog,
	}
	// InputFlag reads values from a file instead of stdin.
	InputFlag = &cli.StringFlag{
		Name:    "input",
		Aliases: []string{"i"},
		Usage:   "File to read values from (default: stdin)",
	}
	// ConfigFileFlag loads a YAML config whose values flags override.
	ConfigFileFlag = &cli.StringFlag{
		Name:    "config-file",
		Aliases: []string{"config"},
		Usage:   "YAML file with mode, traversal, width, seed, scale, echo and jump_log",
	}
	// VerbosityFlag sets the logrus level.
	VerbosityFlag = &cli.StringFlag{
		Name:  "verbosity",
		Usage: "Logging verbosity (trace, debug, info=default, warn, error, fatal, panic)",
		Value: "info",
	}
	// LogFormat selects the log output format.
	LogFormat = &cli.StringFlag{
		Name:  "log-format",
		Usage: "Specify log formatting. Supports: text, json",
		Value: "text",
	}
)

var appFlags = []cli.Flag{
	ModeFlag,
	TraversalFlag,
	WidthFlag,
	SeedFlag,
	ScaleFlag,
	EchoFlag,
	JumpLogFlag,
	InputFlag,
	ConfigFileFlag,
	VerbosityFlag,
	LogFormat,
}
