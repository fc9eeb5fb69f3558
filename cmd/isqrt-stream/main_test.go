package main

import (
	"flag"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/urfave/cli/v2"

	"github.com/katalvlaran/gradsqrt/internal/pipeline"
	"github.com/katalvlaran/gradsqrt/stream"
)

func newFlagSet() *flag.FlagSet {
	set := flag.NewFlagSet("test", 0)
	set.String(ModeFlag.Name, defaults.Mode, "")
	set.String(TraversalFlag.Name, defaults.Traversal, "")
	set.Int(WidthFlag.Name, defaults.Width, "")
	set.Uint64(SeedFlag.Name, defaults.Seed, "")
	set.Uint64(ScaleFlag.Name, defaults.Scale, "")
	set.Bool(EchoFlag.Name, false, "")
	set.Uint64(JumpLogFlag.Name, defaults.JumpLog, "")
	set.String(ConfigFileFlag.Name, "", "")
	return set
}

func TestResolveConfig_Defaults(t *testing.T) {
	app := cli.App{}
	ctx := cli.NewContext(&app, newFlagSet(), nil)

	cfg, err := resolveConfig(ctx)
	require.NoError(t, err)
	assert.Equal(t, pipeline.DefaultConfig(), cfg)
}

func TestResolveConfig_FlagsOverrideFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "stream.yaml")
	require.NoError(t, os.WriteFile(path, []byte("mode: floor\nwidth: 32\nscale: 4\n"), 0o600))

	app := cli.App{}
	set := newFlagSet()
	require.NoError(t, set.Set(ConfigFileFlag.Name, path))
	require.NoError(t, set.Set(ModeFlag.Name, "closest"))
	require.NoError(t, set.Set(EchoFlag.Name, "true"))
	ctx := cli.NewContext(&app, set, nil)

	cfg, err := resolveConfig(ctx)
	require.NoError(t, err)
	assert.Equal(t, "closest", cfg.Mode)
	assert.Equal(t, 32, cfg.Width)
	assert.Equal(t, uint64(4), cfg.Scale)
	assert.True(t, cfg.Echo)
}

func TestResolveConfig_Invalid(t *testing.T) {
	app := cli.App{}
	set := newFlagSet()
	require.NoError(t, set.Set(TraversalFlag.Name, "sideways"))
	ctx := cli.NewContext(&app, set, nil)

	_, err := resolveConfig(ctx)
	assert.ErrorIs(t, err, stream.ErrUnknownTraversal)
}

func TestResolveConfig_MissingFile(t *testing.T) {
	app := cli.App{}
	set := newFlagSet()
	require.NoError(t, set.Set(ConfigFileFlag.Name, filepath.Join(t.TempDir(), "nope.yaml")))
	ctx := cli.NewContext(&app, set, nil)

	_, err := resolveConfig(ctx)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
