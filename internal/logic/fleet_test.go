package logic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustShip(t *testing.T, orientation Orientation, x, y, length uint8) Ship {
	t.Helper()
	anchor, err := FromCoords(x, y)
	require.NoError(t, err)
	ship, err := NewShip(ShipPlan{Orientation: orientation, Anchor: anchor, Length: length})
	require.NoError(t, err)
	return ship
}

// referenceFleet is five horizontal ships stacked in the top-left corner,
// lengths 2, 3, 3, 4, 5 on rows 1 through 5.
func referenceFleet(t *testing.T) [FleetSize]Ship {
	t.Helper()
	return [FleetSize]Ship{
		mustShip(t, Horizontal, 0, 0, 2),
		mustShip(t, Horizontal, 0, 1, 3),
		mustShip(t, Horizontal, 0, 2, 3),
		mustShip(t, Horizontal, 0, 3, 4),
		mustShip(t, Horizontal, 0, 4, 5),
	}
}

func TestNewShipBounds(t *testing.T) {
	anchor, err := FromCoords(8, 0)
	require.NoError(t, err)

	_, err = NewShip(ShipPlan{Orientation: Horizontal, Anchor: anchor, Length: 2})
	assert.NoError(t, err)

	_, err = NewShip(ShipPlan{Orientation: Horizontal, Anchor: anchor, Length: 3})
	assert.ErrorIs(t, err, ErrShipOutOfBounds)

	_, err = NewShip(ShipPlan{Orientation: Vertical, Anchor: anchor, Length: 10})
	assert.NoError(t, err)

	_, err = NewShip(ShipPlan{Orientation: Vertical, Anchor: anchor, Length: 11})
	assert.ErrorIs(t, err, ErrShipOutOfBounds)

	_, err = NewShip(ShipPlan{Orientation: Horizontal, Anchor: anchor, Length: 0})
	assert.ErrorIs(t, err, ErrShipOutOfBounds)
}

func TestNewFleetAcceptsReference(t *testing.T) {
	_, err := NewFleet(referenceFleet(t))
	assert.NoError(t, err)
}

func TestNewFleetRejectsDuplicateLength(t *testing.T) {
	ships := referenceFleet(t)
	// Second length-2 ship where the length-5 one should be.
	ships[4] = mustShip(t, Horizontal, 0, 5, 2)

	_, err := NewFleet(ships)
	assert.ErrorIs(t, err, ErrInvalidShipLength)
}

func TestNewFleetRejectsOffMultisetLength(t *testing.T) {
	ships := referenceFleet(t)
	ships[4] = mustShip(t, Horizontal, 0, 5, 6)

	_, err := NewFleet(ships)
	assert.ErrorIs(t, err, ErrInvalidShipLength)
}

func TestNewFleetRejectsOverlap(t *testing.T) {
	ships := referenceFleet(t)
	// A vertical length-5 ship cutting through the stacked rows.
	ships[4] = mustShip(t, Vertical, 1, 0, 5)

	_, err := NewFleet(ships)
	assert.ErrorIs(t, err, ErrShipOverlap)
}

func TestShipCells(t *testing.T) {
	ship := mustShip(t, Vertical, 3, 2, 3)
	cells := ship.Cells()
	require.Len(t, cells, 3)
	for i, cell := range cells {
		x, y := cell.Coords()
		assert.Equal(t, uint8(3), x)
		assert.Equal(t, uint8(2+i), y)
	}
}
