// SPDX-License-Identifier: MIT

package stream_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gradsqrt/bracket"
	"github.com/katalvlaran/gradsqrt/closest"
	"github.com/katalvlaran/gradsqrt/floor"
	"github.com/katalvlaran/gradsqrt/stream"
)

func TestParseMode(t *testing.T) {
	cases := []struct {
		in   string
		want stream.Mode
	}{
		{"floor", stream.Floor},
		{"FLOOR", stream.Floor},
		{" closest ", stream.Closest},
		{"Closest", stream.Closest},
	}
	for _, c := range cases {
		got, err := stream.ParseMode(c.in)
		require.NoError(t, err, c.in)
		assert.Equal(t, c.want, got, c.in)
		assert.Equal(t, got, mustMode(t, got.String()))
	}

	_, err := stream.ParseMode("round")
	assert.ErrorIs(t, err, stream.ErrUnknownMode)
	_, err = stream.ParseMode("")
	assert.ErrorIs(t, err, stream.ErrUnknownMode)
}

func mustMode(t *testing.T, name string) stream.Mode {
	t.Helper()
	m, err := stream.ParseMode(name)
	require.NoError(t, err)
	return m
}

func TestParseTraversal(t *testing.T) {
	cases := map[string]stream.Traversal{
		"changing":      stream.Changing,
		"bidirectional": stream.Changing,
		"Ascending":     stream.Ascending,
		"DESCENDING":    stream.Descending,
	}
	for in, want := range cases {
		got, err := stream.ParseTraversal(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := stream.ParseTraversal("sideways")
	assert.True(t, errors.Is(err, stream.ErrUnknownTraversal))
}

func TestString(t *testing.T) {
	assert.Equal(t, "floor", stream.Floor.String())
	assert.Equal(t, "closest", stream.Closest.String())
	assert.Equal(t, "Mode(7)", stream.Mode(7).String())
	assert.Equal(t, "changing", stream.Changing.String())
	assert.Equal(t, "ascending", stream.Ascending.String())
	assert.Equal(t, "descending", stream.Descending.String())
	assert.Equal(t, "Traversal(-1)", stream.Traversal(-1).String())
}

func TestNewSelectsConcreteType(t *testing.T) {
	cases := []struct {
		mode stream.Mode
		trav stream.Traversal
		want any
	}{
		{stream.Floor, stream.Changing, &floor.Changing[uint16, uint8]{}},
		{stream.Floor, stream.Ascending, &floor.Ascending[uint16, uint8]{}},
		{stream.Floor, stream.Descending, &floor.Descending[uint16, uint8]{}},
		{stream.Closest, stream.Changing, &closest.Changing[uint16, uint8]{}},
		{stream.Closest, stream.Ascending, &closest.Ascending[uint16, uint8]{}},
		{stream.Closest, stream.Descending, &closest.Descending[uint16, uint8]{}},
	}
	for _, c := range cases {
		st, err := stream.New[uint16, uint8](c.mode, c.trav, 0)
		require.NoError(t, err)
		assert.IsType(t, c.want, st, "%v/%v", c.mode, c.trav)
	}
}

func TestNewUnknown(t *testing.T) {
	st, err := stream.New[uint32, uint16](stream.Mode(9), stream.Changing, 0)
	assert.Nil(t, st)
	assert.ErrorIs(t, err, stream.ErrUnknownMode)

	st, err = stream.New[uint32, uint16](stream.Floor, stream.Traversal(9), 0)
	assert.Nil(t, st)
	assert.ErrorIs(t, err, stream.ErrUnknownTraversal)

	st, err = stream.New[uint32, uint16](stream.Closest, stream.Traversal(-3), 0)
	assert.Nil(t, st)
	assert.ErrorIs(t, err, stream.ErrUnknownTraversal)
}

func TestNewMatchesConcrete(t *testing.T) {
	inputs := []uint32{0, 1, 9, 8, 120, 121, 3, 50000, 49999, 2}

	viaFacade, err := stream.New[uint32, uint16](stream.Closest, stream.Changing, 7)
	require.NoError(t, err)
	direct := closest.NewChanging[uint32](uint16(7))

	for _, n := range inputs {
		assert.Equal(t, direct.Step(n), viaFacade.Step(n), "n=%d", n)
		assert.Equal(t, direct.Bracket(), viaFacade.Bracket())
		assert.Equal(t, direct.Moves(), viaFacade.Moves())
	}
}

func TestWithScale(t *testing.T) {
	st, err := stream.New[uint32, uint16](stream.Floor, stream.Ascending, 0, stream.WithScale[uint32](64))
	require.NoError(t, err)

	// isqrt(64n) = 8·isqrt(n) at perfect squares
	assert.Equal(t, uint16(0), st.Step(0))
	assert.Equal(t, uint16(8), st.Step(1))
	assert.Equal(t, uint16(11), st.Step(2)) // isqrt(128)
	assert.Equal(t, uint16(16), st.Step(4))
	assert.Equal(t, uint16(80), st.Step(100))
	assert.Equal(t, bracket.Bracket[uint32]{Lo: 6400, Hi: 6560}, st.Bracket())

	// saturating pre-multiply
	assert.Equal(t, uint16(65535), st.Step(1<<30))
}

func TestWithScaleSignedNegative(t *testing.T) {
	st, err := stream.New[int32, int16](stream.Closest, stream.Changing, 5, stream.WithScale[int32](4))
	require.NoError(t, err)

	assert.Equal(t, int16(0), st.Step(-100))
	assert.Equal(t, int16(6), st.Step(9)) // closest(36)
	assert.Equal(t, int16(0), st.Step(-1))
}

func TestWithScaleOneIsIdentity(t *testing.T) {
	st, err := stream.New[uint16, uint8](stream.Floor, stream.Changing, 0, stream.WithScale[uint16](1))
	require.NoError(t, err)
	assert.IsType(t, &floor.Changing[uint16, uint8]{}, st)
}

func TestWithScalePanics(t *testing.T) {
	assert.Panics(t, func() { stream.WithScale[uint8](0) })
	assert.Panics(t, func() { stream.WithScale[int64](-4) })
	assert.NotPanics(t, func() { stream.WithScale[int64](1) })
}

func TestResetThroughInterface(t *testing.T) {
	st, err := stream.New[uint64, uint32](stream.Floor, stream.Descending, 1000)
	require.NoError(t, err)

	assert.Equal(t, uint32(999), st.Step(999_000))
	st.Reset(10)
	assert.Equal(t, uint64(0), st.Moves())
	assert.Equal(t, uint32(10), st.Root())
	assert.Equal(t, uint32(3), st.Step(15))
	assert.Equal(t, uint64(7), st.Moves())
}
