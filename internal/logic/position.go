// Package logic implements the board model: positions, ships, fleets and
// per-match targeting state.
package logic

import "fmt"

// GridSize is the side length of the square board.
const GridSize = 10

// Position is a cell on the board, packed into a single byte as x | (y<<4).
// Both coordinates are always < GridSize; construct through FromCoords or
// FromByte, which enforce that.
type Position struct {
	b byte
}

// FromCoords builds a Position from x,y coordinates.
func FromCoords(x, y uint8) (Position, error) {
	if x >= GridSize || y >= GridSize {
		return Position{}, fmt.Errorf("%w: (%d,%d)", ErrBadPosition, x, y)
	}
	return Position{b: x | y<<4}, nil
}

// FromByte decodes the wire representation of a position.
func FromByte(b byte) (Position, error) {
	return FromCoords(b&0x0f, b>>4)
}

// Coords returns the x,y coordinates.
func (p Position) Coords() (x, y uint8) {
	return p.b & 0x0f, p.b >> 4
}

// Byte returns the wire representation.
func (p Position) Byte() byte {
	return p.b
}

// String renders the position in board notation, columns A-J and rows 1-10.
func (p Position) String() string {
	x, y := p.Coords()
	return fmt.Sprintf("%c%d", 'A'+rune(x), y+1)
}
