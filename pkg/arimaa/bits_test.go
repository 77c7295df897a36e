package arimaa_test

import (
	"testing"

	"github.com/herohde/arimaa-go/pkg/arimaa"
	"github.com/stretchr/testify/assert"
)

func TestBitMask(t *testing.T) {
	assert.Equal(t, arimaa.Bitboard(1), arimaa.BitMask(0))
	assert.Equal(t, arimaa.Bitboard(1)<<63, arimaa.BitMask(63))
}

func TestIsolateLSB(t *testing.T) {
	bb := arimaa.BitMask(3) | arimaa.BitMask(10) | arimaa.BitMask(40)
	assert.Equal(t, arimaa.BitMask(3), arimaa.IsolateLSB(bb))
}

func TestBitScanForward(t *testing.T) {
	bb := arimaa.BitMask(10) | arimaa.BitMask(40)
	assert.Equal(t, arimaa.Square(10), arimaa.BitScanForward(bb))

	assert.Panics(t, func() {
		arimaa.BitScanForward(arimaa.EmptyBitboard)
	})
}

func TestPopLSB(t *testing.T) {
	bb := arimaa.BitMask(3) | arimaa.BitMask(10)
	sq := arimaa.PopLSB(&bb)
	assert.Equal(t, arimaa.Square(3), sq)
	assert.Equal(t, arimaa.BitMask(10), bb)
}

func TestPopCount(t *testing.T) {
	assert.Equal(t, 0, arimaa.EmptyBitboard.PopCount())
	assert.Equal(t, 2, (arimaa.BitMask(1) | arimaa.BitMask(60)).PopCount())
	assert.Equal(t, 64, arimaa.FullBitboard.PopCount())
}

func TestIsSet(t *testing.T) {
	bb := arimaa.BitMask(5)
	assert.True(t, bb.IsSet(5))
	assert.False(t, bb.IsSet(6))
}

func TestNeighborsOf(t *testing.T) {
	t.Run("center square has 4 neighbors", func(t *testing.T) {
		sq, err := arimaa.AlgToIndex(3, 4)
		assert.NoError(t, err)
		n := arimaa.NeighborsOf(arimaa.BitMask(sq))
		assert.Equal(t, 4, n.PopCount())
	})

	t.Run("corner square has 2 neighbors", func(t *testing.T) {
		sq, err := arimaa.AlgToIndex(0, 1) // a1
		assert.NoError(t, err)
		n := arimaa.NeighborsOf(arimaa.BitMask(sq))
		assert.Equal(t, 2, n.PopCount())
	})

	t.Run("does not wrap across file edges", func(t *testing.T) {
		a, _ := arimaa.AlgToIndex(0, 4)
		h, _ := arimaa.AlgToIndex(7, 4)
		assert.False(t, arimaa.NeighborsOf(arimaa.BitMask(a)).IsSet(h))
		assert.False(t, arimaa.NeighborsOf(arimaa.BitMask(h)).IsSet(a))
	})
}

func TestRabbitSteps(t *testing.T) {
	mid, _ := arimaa.AlgToIndex(3, 4)

	t.Run("white never steps south", func(t *testing.T) {
		south, _ := arimaa.AlgToIndex(3, 3)
		steps := arimaa.RabbitSteps(arimaa.White, arimaa.BitMask(mid))
		assert.False(t, steps.IsSet(south))
		assert.Equal(t, 3, steps.PopCount()) // east, west, north
	})

	t.Run("black never steps north", func(t *testing.T) {
		north, _ := arimaa.AlgToIndex(3, 5)
		steps := arimaa.RabbitSteps(arimaa.Black, arimaa.BitMask(mid))
		assert.False(t, steps.IsSet(north))
		assert.Equal(t, 3, steps.PopCount()) // east, west, south
	})
}

func TestTrapSquares(t *testing.T) {
	f3, _ := arimaa.ParseSquare("f3")
	c3, _ := arimaa.ParseSquare("c3")
	f6, _ := arimaa.ParseSquare("f6")
	c6, _ := arimaa.ParseSquare("c6")

	assert.Equal(t, [4]arimaa.Square{c3, f3, c6, f6}, arimaa.TrapSquares)
}
