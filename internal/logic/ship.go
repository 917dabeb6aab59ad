package logic

import "fmt"

// Orientation of a ship on the board.
type Orientation uint8

const (
	Vertical Orientation = iota
	Horizontal
)

// FleetSize is the number of ships in a fleet.
const FleetSize = 5

// ShipLengths is the required multiset of ship lengths in a fleet,
// in no particular order.
var ShipLengths = [FleetSize]uint8{2, 3, 3, 4, 5}

// ShipPlan describes a ship before validation: an anchor cell, an
// orientation and a length. The ship extends right (horizontal) or
// down (vertical) from the anchor.
type ShipPlan struct {
	Orientation Orientation
	Anchor      Position
	Length      uint8
}

// Ship is a ShipPlan whose full extent is known to fit on the board.
type Ship struct {
	plan ShipPlan
}

// NewShip validates a plan and returns the ship.
func NewShip(plan ShipPlan) (Ship, error) {
	if plan.Length == 0 || plan.Length > GridSize {
		return Ship{}, fmt.Errorf("%w: %v anchor %v length %d",
			ErrShipOutOfBounds, plan.Orientation, plan.Anchor, plan.Length)
	}
	x, y := plan.Anchor.Coords()
	if plan.Orientation == Horizontal {
		x += plan.Length - 1
	} else {
		y += plan.Length - 1
	}
	if x >= GridSize || y >= GridSize {
		return Ship{}, fmt.Errorf("%w: %v anchor %v length %d",
			ErrShipOutOfBounds, plan.Orientation, plan.Anchor, plan.Length)
	}
	return Ship{plan: plan}, nil
}

// Plan returns the underlying plan.
func (s Ship) Plan() ShipPlan {
	return s.plan
}

// Length returns the ship's length in cells.
func (s Ship) Length() uint8 {
	return s.plan.Length
}

// Cells returns every position the ship covers, anchor first.
func (s Ship) Cells() []Position {
	cells := make([]Position, 0, s.plan.Length)
	x, y := s.plan.Anchor.Coords()
	for i := uint8(0); i < s.plan.Length; i++ {
		var pos Position
		if s.plan.Orientation == Horizontal {
			pos, _ = FromCoords(x+i, y)
		} else {
			pos, _ = FromCoords(x, y+i)
		}
		cells = append(cells, pos)
	}
	return cells
}

func (o Orientation) String() string {
	if o == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// Fleet is a validated set of FleetSize ships: lengths match ShipLengths
// exactly and no two ships share a cell. Immutable once constructed.
type Fleet struct {
	ships [FleetSize]Ship
}

// NewFleet validates the ships and returns the fleet. Ships are checked in
// input order: each length must claim one unused slot of ShipLengths, and
// every covered cell must be unoccupied.
func NewFleet(ships [FleetSize]Ship) (Fleet, error) {
	var occupied [GridSize][GridSize]bool
	var claimed [FleetSize]bool

	for _, ship := range ships {
		found := false
		for i, l := range ShipLengths {
			if !claimed[i] && l == ship.Length() {
				claimed[i] = true
				found = true
				break
			}
		}
		if !found {
			return Fleet{}, fmt.Errorf("%w: unexpected length %d", ErrInvalidShipLength, ship.Length())
		}

		for _, pos := range ship.Cells() {
			x, y := pos.Coords()
			if occupied[y][x] {
				return Fleet{}, fmt.Errorf("%w: at %v", ErrShipOverlap, pos)
			}
			occupied[y][x] = true
		}
	}

	return Fleet{ships: ships}, nil
}

// Ships returns the fleet's ships in construction order.
func (f Fleet) Ships() [FleetSize]Ship {
	return f.ships
}
