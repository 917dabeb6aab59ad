package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPositionRoundTrip(t *testing.T) {
	for x := uint8(0); x < GridSize; x++ {
		for y := uint8(0); y < GridSize; y++ {
			pos, err := FromCoords(x, y)
			require.NoError(t, err)

			decoded, err := FromByte(pos.Byte())
			require.NoError(t, err)
			assert.Equal(t, pos, decoded)

			gx, gy := decoded.Coords()
			assert.Equal(t, x, gx)
			assert.Equal(t, y, gy)
		}
	}
}

func TestPositionRejectsOutOfRange(t *testing.T) {
	_, err := FromCoords(10, 0)
	assert.ErrorIs(t, err, ErrBadPosition)

	_, err = FromCoords(0, 10)
	assert.ErrorIs(t, err, ErrBadPosition)

	// Bytes whose decoded x or y is >= 10 must be rejected.
	for b := 0; b < 256; b++ {
		x, y := byte(b)&0x0f, byte(b)>>4
		_, err := FromByte(byte(b))
		if x < GridSize && y < GridSize {
			assert.NoError(t, err, "byte %d", b)
		} else {
			assert.ErrorIs(t, err, ErrBadPosition, "byte %d", b)
		}
	}
}

func TestPositionString(t *testing.T) {
	pos, err := FromCoords(0, 0)
	require.NoError(t, err)
	assert.Equal(t, "A1", pos.String())

	pos, err = FromCoords(9, 9)
	require.NoError(t, err)
	assert.Equal(t, "J10", pos.String())
}
