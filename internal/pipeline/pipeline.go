// Package pipeline streams decimal integers through a gradual square-root
// generator and writes one root per line.
package pipeline

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/holiman/uint256"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/gradsqrt/number"
	"github.com/katalvlaran/gradsqrt/stream"
	"github.com/katalvlaran/gradsqrt/wide"
)

// Summary describes a completed (or interrupted) run.
type Summary struct {
	// Values is the number of inputs consumed.
	Values uint64
	// Moves is the total number of unit root steps.
	Moves uint64
	// MaxJump is the largest number of moves taken for a single input.
	MaxJump uint64
}

func (s Summary) String() string {
	return fmt.Sprintf("%s values, %s moves, max jump %s",
		humanize.Comma(int64(s.Values)), humanize.Comma(int64(s.Moves)), humanize.Comma(int64(s.MaxJump)))
}

func (s *Summary) add(jump uint64) {
	s.Values++
	s.Moves += jump
	if jump > s.MaxJump {
		s.MaxJump = jump
	}
}

// Run reads whitespace-separated unsigned decimal integers from r and
// writes their roots to w, one per line. The generator is chosen by cfg.
// Cancellation of ctx is checked between values.
func Run(ctx context.Context, cfg Config, r io.Reader, w io.Writer) (Summary, error) {
	if err := cfg.Validate(); err != nil {
		return Summary{}, err
	}
	mode, _ := stream.ParseMode(cfg.Mode)
	trav, _ := stream.ParseTraversal(cfg.Traversal)

	in := bufio.NewScanner(r)
	in.Split(bufio.ScanWords)
	out := bufio.NewWriter(w)

	var (
		sum Summary
		err error
	)
	switch {
	case cfg.Width == 256:
		sum, err = runWide(ctx, cfg, mode, in, out)
	case cfg.Width == 8:
		sum, err = run[uint8, uint8](ctx, cfg, mode, trav, in, out)
	case cfg.Width == 16 && mode == stream.Floor:
		sum, err = run[uint16, uint8](ctx, cfg, mode, trav, in, out)
	case cfg.Width == 16:
		sum, err = run[uint16, uint16](ctx, cfg, mode, trav, in, out)
	case cfg.Width == 32 && mode == stream.Floor:
		sum, err = run[uint32, uint16](ctx, cfg, mode, trav, in, out)
	case cfg.Width == 32:
		sum, err = run[uint32, uint32](ctx, cfg, mode, trav, in, out)
	case mode == stream.Floor:
		sum, err = run[uint64, uint32](ctx, cfg, mode, trav, in, out)
	default:
		sum, err = run[uint64, uint64](ctx, cfg, mode, trav, in, out)
	}
	if ferr := out.Flush(); ferr != nil && err == nil {
		err = errors.Wrap(ferr, "could not flush output")
	}
	if err != nil {
		return sum, err
	}

	log.WithFields(logrus.Fields{
		"mode":      mode,
		"traversal": trav,
		"width":     cfg.Width,
	}).Infof("Stream complete: %s", sum)
	return sum, nil
}

// run drives a fixed-width generator. Floor roots use a half-width S;
// closest roots need the full width because the closest root of Max[N]
// is one past the half-width range.
func run[N, S number.Integer](
	ctx context.Context,
	cfg Config,
	mode stream.Mode,
	trav stream.Traversal,
	in *bufio.Scanner,
	out *bufio.Writer,
) (Summary, error) {
	var sum Summary

	seed := cfg.Seed
	if top := uint64(number.Max[S]()); seed > top {
		seed = top
	}
	var opts []stream.Option[N]
	if cfg.Scale > 1 {
		opts = append(opts, stream.WithScale(N(cfg.Scale)))
	}
	st, err := stream.New[N, S](mode, trav, S(seed), opts...)
	if err != nil {
		return sum, errors.Wrap(err, "could not build generator")
	}

	for in.Scan() {
		if err := ctx.Err(); err != nil {
			return sum, errors.Wrap(err, "stream interrupted")
		}
		tok := in.Text()
		v, err := strconv.ParseUint(tok, 10, cfg.Width)
		if err != nil {
			return sum, errors.Wrapf(err, "value %d", sum.Values+1)
		}

		before := st.Moves()
		root := st.Step(N(v))
		jump := st.Moves() - before
		sum.add(jump)
		logJump(cfg.JumpLog, sum.Values, tok, jump)

		if err := writeRoot(out, cfg.Echo, tok, strconv.FormatUint(uint64(root), 10)); err != nil {
			return sum, err
		}
	}
	if err := in.Err(); err != nil {
		return sum, errors.Wrap(err, "could not read input")
	}
	return sum, nil
}

// runWide drives a 256-bit changing generator.
func runWide(ctx context.Context, cfg Config, mode stream.Mode, in *bufio.Scanner, out *bufio.Writer) (Summary, error) {
	var sum Summary

	type generator interface {
		Step(n *uint256.Int) *uint256.Int
		Moves() uint64
	}
	var g generator
	seed := uint256.NewInt(cfg.Seed)
	if mode == stream.Floor {
		g = wide.NewFloor(seed)
	} else {
		g = wide.NewClosest(seed)
	}
	scale := uint256.NewInt(cfg.Scale)

	for in.Scan() {
		if err := ctx.Err(); err != nil {
			return sum, errors.Wrap(err, "stream interrupted")
		}
		tok := in.Text()
		v, err := uint256.FromDecimal(tok)
		if err != nil {
			return sum, errors.Wrapf(err, "value %d (%q)", sum.Values+1, tok)
		}
		if cfg.Scale > 1 {
			if _, overflow := v.MulOverflow(v, scale); overflow {
				v.SetAllOne()
			}
		}

		before := g.Moves()
		root := g.Step(v)
		jump := g.Moves() - before
		sum.add(jump)
		logJump(cfg.JumpLog, sum.Values, tok, jump)

		if err := writeRoot(out, cfg.Echo, tok, root.Dec()); err != nil {
			return sum, err
		}
	}
	if err := in.Err(); err != nil {
		return sum, errors.Wrap(err, "could not read input")
	}
	return sum, nil
}

func logJump(threshold, index uint64, tok string, jump uint64) {
	if threshold == 0 || jump <= threshold {
		return
	}
	log.WithFields(logrus.Fields{
		"index": index,
		"value": tok,
		"moves": humanize.Comma(int64(jump)),
	}).Debug("Large root jump")
}

func writeRoot(out *bufio.Writer, echo bool, tok, root string) error {
	var err error
	if echo {
		_, err = fmt.Fprintf(out, "%s\t%s\n", tok, root)
	} else {
		_, err = fmt.Fprintln(out, root)
	}
	return errors.Wrap(err, "could not write root")
}
