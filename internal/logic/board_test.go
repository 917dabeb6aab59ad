package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustPos(t *testing.T, x, y uint8) Position {
	t.Helper()
	pos, err := FromCoords(x, y)
	require.NoError(t, err)
	return pos
}

func newTestBoard(t *testing.T) *Board {
	t.Helper()
	fleet, err := NewFleet(referenceFleet(t))
	require.NoError(t, err)
	return NewBoard(fleet)
}

func TestTargetMiss(t *testing.T) {
	board := newTestBoard(t)

	info, err := board.Target(mustPos(t, 9, 9))
	require.NoError(t, err)
	assert.False(t, info.Hit)
	assert.False(t, info.Sunken)
}

func TestTargetHitAndSink(t *testing.T) {
	board := newTestBoard(t)

	// The length-2 ship sits at (0,0) and (1,0).
	info, err := board.Target(mustPos(t, 0, 0))
	require.NoError(t, err)
	assert.True(t, info.Hit)
	assert.False(t, info.Sunken)

	info, err = board.Target(mustPos(t, 1, 0))
	require.NoError(t, err)
	assert.True(t, info.Hit)
	assert.True(t, info.Sunken)
}

func TestTargetRepeatedCell(t *testing.T) {
	board := newTestBoard(t)

	_, err := board.Target(mustPos(t, 5, 5))
	require.NoError(t, err)

	// The second call on the same cell signals no effect; a miss never
	// retroactively becomes a hit.
	_, err = board.Target(mustPos(t, 5, 5))
	assert.ErrorIs(t, err, ErrOccupiedTarget)

	_, err = board.Target(mustPos(t, 0, 0))
	require.NoError(t, err)
	_, err = board.Target(mustPos(t, 0, 0))
	assert.ErrorIs(t, err, ErrOccupiedTarget)
}

func TestAllSunken(t *testing.T) {
	board := newTestBoard(t)
	assert.False(t, board.AllSunken())

	fleet, err := NewFleet(referenceFleet(t))
	require.NoError(t, err)

	var last Position
	var count int
	for _, ship := range fleet.Ships() {
		for _, pos := range ship.Cells() {
			last = pos
			count++
		}
	}
	require.Equal(t, 17, count)

	for _, ship := range fleet.Ships() {
		for _, pos := range ship.Cells() {
			if pos == last {
				continue
			}
			_, err := board.Target(pos)
			require.NoError(t, err)
			assert.False(t, board.AllSunken())
		}
	}

	info, err := board.Target(last)
	require.NoError(t, err)
	assert.True(t, info.Hit)
	assert.True(t, info.Sunken)
	assert.True(t, board.AllSunken())
}
