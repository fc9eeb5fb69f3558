// Command isqrt-stream reads unsigned integers and prints their integer
// square roots, reusing the previous root so slowly changing streams cost
// a few steps per value.
//
//	seq 0 1000 | isqrt-stream --mode closest --traversal ascending --width 16
package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/kr/pretty"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"

	"github.com/katalvlaran/gradsqrt/internal/pipeline"
)

var log = logrus.WithField("prefix", "main")

func main() {
	app := cli.App{}
	app.Name = "isqrt-stream"
	app.Usage = "integer square roots of a gradually changing stream of values"
	app.Flags = appFlags
	app.Before = setupLogging
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		log.Error(err.Error())
		os.Exit(1)
	}
}

func setupLogging(ctx *cli.Context) error {
	level, err := logrus.ParseLevel(ctx.String(VerbosityFlag.Name))
	if err != nil {
		return err
	}
	logrus.SetLevel(level)

	switch format := ctx.String(LogFormat.Name); format {
	case "text":
		formatter := new(prefixed.TextFormatter)
		formatter.TimestampFormat = "2006-01-02 15:04:05"
		formatter.FullTimestamp = true
		logrus.SetFormatter(formatter)
	case "json":
		logrus.SetFormatter(&logrus.JSONFormatter{})
	default:
		return fmt.Errorf("unknown log format %s", format)
	}
	return nil
}

func run(cliCtx *cli.Context) error {
	cfg, err := resolveConfig(cliCtx)
	if err != nil {
		return err
	}
	log.Debugf("Resolved config: %# v", pretty.Formatter(cfg))

	var in io.Reader = os.Stdin
	if path := cliCtx.String(InputFlag.Name); path != "" {
		f, err := os.Open(path) // #nosec G304
		if err != nil {
			return errors.Wrap(err, "could not open input")
		}
		defer func() {
			if err := f.Close(); err != nil {
				log.WithError(err).Error("Could not close input")
			}
		}()
		in = f
	}

	ctx, stop := signal.NotifyContext(cliCtx.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	_, err = pipeline.Run(ctx, cfg, in, os.Stdout)
	return err
}

// resolveConfig layers the config file (if any) over the defaults, then
// flags given on the command line over both.
func resolveConfig(ctx *cli.Context) (pipeline.Config, error) {
	cfg := pipeline.DefaultConfig()
	if path := ctx.String(ConfigFileFlag.Name); path != "" {
		var err error
		if cfg, err = pipeline.LoadConfig(path); err != nil {
			return cfg, err
		}
	}

	if ctx.IsSet(ModeFlag.Name) {
		cfg.Mode = ctx.String(ModeFlag.Name)
	}
	if ctx.IsSet(TraversalFlag.Name) {
		cfg.Traversal = ctx.String(TraversalFlag.Name)
	}
	if ctx.IsSet(WidthFlag.Name) {
		cfg.Width = ctx.Int(WidthFlag.Name)
	}
	if ctx.IsSet(SeedFlag.Name) {
		cfg.Seed = ctx.Uint64(SeedFlag.Name)
	}
	if ctx.IsSet(ScaleFlag.Name) {
		cfg.Scale = ctx.Uint64(ScaleFlag.Name)
	}
	if ctx.IsSet(EchoFlag.Name) {
		cfg.Echo = ctx.Bool(EchoFlag.Name)
	}
	if ctx.IsSet(JumpLogFlag.Name) {
		cfg.JumpLog = ctx.Uint64(JumpLogFlag.Name)
	}
	return cfg, cfg.Validate()
}
