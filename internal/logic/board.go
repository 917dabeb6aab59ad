package logic

// AttackInfo is the outcome of targeting a cell.
type AttackInfo struct {
	Hit    bool
	Sunken bool // every cell of the hit ship is now targeted
}

const noShip = -1

// Board owns one player's fleet and its targeting state for a single match.
// Mutated only through Target; discarded when the match ends.
type Board struct {
	fleet   Fleet
	shipmap [GridSize][GridSize]int8 // cell -> ship index, noShip if empty
	hitmap  [GridSize][GridSize]bool
}

// NewBoard derives the cell maps from a validated fleet.
func NewBoard(fleet Fleet) *Board {
	b := &Board{fleet: fleet}
	for y := range b.shipmap {
		for x := range b.shipmap[y] {
			b.shipmap[y][x] = noShip
		}
	}
	for i, ship := range fleet.Ships() {
		for _, pos := range ship.Cells() {
			x, y := pos.Coords()
			b.shipmap[y][x] = int8(i)
		}
	}
	return b
}

// Target marks a cell as targeted and reports the outcome. Targeting an
// already-targeted cell returns ErrOccupiedTarget and leaves the board
// unchanged; the caller must treat that as a protocol violation by the
// opposing side.
func (b *Board) Target(pos Position) (AttackInfo, error) {
	x, y := pos.Coords()
	if b.hitmap[y][x] {
		return AttackInfo{}, ErrOccupiedTarget
	}
	b.hitmap[y][x] = true

	idx := b.shipmap[y][x]
	if idx == noShip {
		return AttackInfo{}, nil
	}
	return AttackInfo{Hit: true, Sunken: b.sunken(b.fleet.ships[idx])}, nil
}

// AllSunken reports whether every cell of every ship has been targeted.
func (b *Board) AllSunken() bool {
	for _, ship := range b.fleet.Ships() {
		if !b.sunken(ship) {
			return false
		}
	}
	return true
}

// Fleet returns the board's fleet.
func (b *Board) Fleet() Fleet {
	return b.fleet
}

func (b *Board) sunken(ship Ship) bool {
	for _, pos := range ship.Cells() {
		x, y := pos.Coords()
		if !b.hitmap[y][x] {
			return false
		}
	}
	return true
}
