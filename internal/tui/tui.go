// Package tui is the terminal front end: ship placement, board
// rendering, target selection and the end-of-match screens.
package tui

import (
	"errors"
	"fmt"

	"github.com/mattn/go-runewidth"
	termbox "github.com/nsf/termbox-go"

	"github.com/warship-net/warship/internal/client"
	"github.com/warship-net/warship/internal/logic"
)

// ErrAborted is returned when the player quits with Esc or Ctrl-C.
var ErrAborted = errors.New("aborted by player")

var shipColors = [logic.FleetSize]termbox.Attribute{
	termbox.ColorBlue,
	termbox.ColorCyan,
	termbox.ColorGreen,
	termbox.ColorYellow,
	termbox.ColorMagenta,
}

const (
	hitColor  = termbox.ColorRed
	missColor = termbox.ColorWhite

	ownGridX = 4
	oppGridX = ownGridX + (logic.GridSize+3)*2
	gridY    = 2
	logY     = gridY + logic.GridSize + 3
	logLines = 8
)

// Interface renders the match on the terminal. It implements client.UI.
type Interface struct {
	closed bool
}

var _ client.UI = (*Interface)(nil)

// New initializes the terminal. Callers must Close when done so the
// terminal is restored.
func New() (*Interface, error) {
	if err := termbox.Init(); err != nil {
		return nil, fmt.Errorf("init terminal: %w", err)
	}
	return &Interface{}, nil
}

// Close restores the terminal. Safe to call more than once.
func (i *Interface) Close() {
	if i.closed {
		return
	}
	i.closed = true
	termbox.Close()
}

// BuildFleet walks the player through placing the five ships, longest
// first: arrows move, r rotates, Enter places, Esc aborts.
func (i *Interface) BuildFleet() (logic.Fleet, error) {
	lengths := [logic.FleetSize]uint8{5, 4, 3, 3, 2}

	var ships [logic.FleetSize]logic.Ship
	var occupied [logic.GridSize][logic.GridSize]bool

	for idx, length := range lengths {
		var x, y uint8
		orientation := logic.Horizontal

		for {
			ship, placeable := tryPlace(x, y, length, orientation, &occupied)
			i.drawPlacement(ships[:idx], ship, placeable, idx)

			ev := termbox.PollEvent()
			switch ev.Type {
			case termbox.EventError:
				return logic.Fleet{}, ev.Err
			case termbox.EventResize:
				continue
			case termbox.EventKey:
			default:
				continue
			}

			switch {
			case ev.Key == termbox.KeyEsc || ev.Key == termbox.KeyCtrlC:
				return logic.Fleet{}, ErrAborted
			case ev.Key == termbox.KeyArrowUp || ev.Ch == 'w':
				if y > 0 {
					y--
				}
			case ev.Key == termbox.KeyArrowDown || ev.Ch == 's':
				if y < logic.GridSize-1 {
					y++
				}
			case ev.Key == termbox.KeyArrowLeft || ev.Ch == 'a':
				if x > 0 {
					x--
				}
			case ev.Key == termbox.KeyArrowRight || ev.Ch == 'd':
				if x < logic.GridSize-1 {
					x++
				}
			case ev.Ch == 'r' || ev.Key == termbox.KeySpace:
				if orientation == logic.Horizontal {
					orientation = logic.Vertical
				} else {
					orientation = logic.Horizontal
				}
			case ev.Key == termbox.KeyEnter && placeable:
				for _, pos := range ship.Cells() {
					cx, cy := pos.Coords()
					occupied[cy][cx] = true
				}
				ships[idx] = ship
			}
			if ev.Key == termbox.KeyEnter && placeable {
				break
			}
		}
	}

	fleet, err := logic.NewFleet(ships)
	if err != nil {
		return logic.Fleet{}, err
	}
	return fleet, nil
}

// tryPlace builds the candidate ship at the cursor and reports whether it
// fits the grid without touching an occupied cell.
func tryPlace(x, y, length uint8, orientation logic.Orientation, occupied *[logic.GridSize][logic.GridSize]bool) (logic.Ship, bool) {
	anchor, err := logic.FromCoords(x, y)
	if err != nil {
		return logic.Ship{}, false
	}
	ship, err := logic.NewShip(logic.ShipPlan{Orientation: orientation, Anchor: anchor, Length: length})
	if err != nil {
		return logic.Ship{}, false
	}
	for _, pos := range ship.Cells() {
		cx, cy := pos.Coords()
		if occupied[cy][cx] {
			return ship, false
		}
	}
	return ship, true
}

// RenderBoard draws both grids and the event log.
func (i *Interface) RenderBoard(snap client.Snapshot) error {
	termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)
	drawOwnGrid(ownGridX, gridY, snap)
	drawOppGrid(oppGridX, gridY, snap, -1, -1)
	drawLog(snap)
	return termbox.Flush()
}

// SelectTarget moves a cursor over the opponent grid; Enter fires at a
// cell not yet targeted, Esc aborts.
func (i *Interface) SelectTarget(snap client.Snapshot) (logic.Position, error) {
	var x, y uint8
	for {
		termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)
		drawOwnGrid(ownGridX, gridY, snap)
		drawOppGrid(oppGridX, gridY, snap, int(x), int(y))
		drawLog(snap)
		if err := termbox.Flush(); err != nil {
			return logic.Position{}, err
		}

		ev := termbox.PollEvent()
		switch ev.Type {
		case termbox.EventError:
			return logic.Position{}, ev.Err
		case termbox.EventKey:
		default:
			continue
		}

		switch {
		case ev.Key == termbox.KeyEsc || ev.Key == termbox.KeyCtrlC:
			return logic.Position{}, ErrAborted
		case ev.Key == termbox.KeyArrowUp || ev.Ch == 'w':
			if y > 0 {
				y--
			}
		case ev.Key == termbox.KeyArrowDown || ev.Ch == 's':
			if y < logic.GridSize-1 {
				y++
			}
		case ev.Key == termbox.KeyArrowLeft || ev.Ch == 'a':
			if x > 0 {
				x--
			}
		case ev.Key == termbox.KeyArrowRight || ev.Ch == 'd':
			if x < logic.GridSize-1 {
				x++
			}
		case ev.Key == termbox.KeyEnter:
			// A spent cell would be a protocol violation; refuse it here.
			if snap.Opponent[y][x] != client.MarkUnknown {
				continue
			}
			return logic.FromCoords(x, y)
		}
	}
}

// RenderVictory draws the final boards under a victory banner.
func (i *Interface) RenderVictory(snap client.Snapshot) error {
	return i.renderFinal(snap, "V I C T O R Y", termbox.ColorGreen)
}

// RenderLoss draws the final boards under a loss banner.
func (i *Interface) RenderLoss(snap client.Snapshot) error {
	return i.renderFinal(snap, "L O S S", termbox.ColorRed)
}

func (i *Interface) renderFinal(snap client.Snapshot, banner string, color termbox.Attribute) error {
	termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)
	w, _ := termbox.Size()
	drawText((w-runewidth.StringWidth(banner))/2, 0, color|termbox.AttrBold, termbox.ColorDefault, banner)
	drawOwnGrid(ownGridX, gridY, snap)
	drawOppGrid(oppGridX, gridY, snap, -1, -1)
	drawLog(snap)
	return termbox.Flush()
}

func (i *Interface) drawPlacement(placed []logic.Ship, ghost logic.Ship, placeable bool, idx int) {
	termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)
	drawText(ownGridX, 0, termbox.ColorDefault, termbox.ColorDefault,
		fmt.Sprintf("place your ships (%d/%d): arrows move, r rotates, enter places", idx, logic.FleetSize))

	drawGridFrame(ownGridX, gridY)
	for n, ship := range placed {
		for _, pos := range ship.Cells() {
			x, y := pos.Coords()
			setGridCell(ownGridX, gridY, x, y, '#', shipColors[n])
		}
	}

	ghostColor := termbox.ColorGreen
	if !placeable {
		ghostColor = termbox.ColorRed
	}
	for _, pos := range ghost.Cells() {
		x, y := pos.Coords()
		setGridCell(ownGridX, gridY, x, y, '#', ghostColor|termbox.AttrBold)
	}
	termbox.Flush()
}

// drawGridFrame draws column letters and row numbers around a grid whose
// top-left cell lands at (ox, oy).
func drawGridFrame(ox, oy int) {
	for x := 0; x < logic.GridSize; x++ {
		termbox.SetCell(ox+x*2, oy-1, rune('A'+x), termbox.ColorDefault, termbox.ColorDefault)
	}
	for y := 0; y < logic.GridSize; y++ {
		label := fmt.Sprintf("%2d", y+1)
		drawText(ox-3, oy+y, termbox.ColorDefault, termbox.ColorDefault, label)
	}
}

func setGridCell(ox, oy int, x, y uint8, ch rune, fg termbox.Attribute) {
	termbox.SetCell(ox+int(x)*2, oy+int(y), ch, fg, termbox.ColorDefault)
}

func drawOwnGrid(ox, oy int, snap client.Snapshot) {
	drawText(ox, oy-2, termbox.ColorDefault|termbox.AttrBold, termbox.ColorDefault, "your fleet")
	drawGridFrame(ox, oy)

	for y := uint8(0); y < logic.GridSize; y++ {
		for x := uint8(0); x < logic.GridSize; x++ {
			setGridCell(ox, oy, x, y, '.', termbox.ColorDefault)
		}
	}
	for n, ship := range snap.Fleet.Ships() {
		for _, pos := range ship.Cells() {
			x, y := pos.Coords()
			setGridCell(ox, oy, x, y, '#', shipColors[n])
		}
	}
	for y := uint8(0); y < logic.GridSize; y++ {
		for x := uint8(0); x < logic.GridSize; x++ {
			switch snap.Own[y][x] {
			case client.MarkHit:
				setGridCell(ox, oy, x, y, 'X', hitColor|termbox.AttrBold)
			case client.MarkMiss:
				setGridCell(ox, oy, x, y, 'o', missColor)
			}
		}
	}
}

func drawOppGrid(ox, oy int, snap client.Snapshot, cursorX, cursorY int) {
	drawText(ox, oy-2, termbox.ColorDefault|termbox.AttrBold, termbox.ColorDefault, "opponent")
	drawGridFrame(ox, oy)

	for y := uint8(0); y < logic.GridSize; y++ {
		for x := uint8(0); x < logic.GridSize; x++ {
			ch, fg := '.', termbox.ColorDefault
			switch snap.Opponent[y][x] {
			case client.MarkHit:
				ch, fg = 'X', hitColor|termbox.AttrBold
			case client.MarkMiss:
				ch, fg = 'o', missColor
			}
			bg := termbox.ColorDefault
			if int(x) == cursorX && int(y) == cursorY {
				bg = termbox.ColorWhite
				if fg == termbox.ColorDefault {
					fg = termbox.ColorBlack
				}
			}
			termbox.SetCell(ox+int(x)*2, oy+int(y), ch, fg, bg)
		}
	}
}

// drawLog renders the most recent events, newest first.
func drawLog(snap client.Snapshot) {
	for i := 0; i < logLines && i < len(snap.Events); i++ {
		event := snap.Events[len(snap.Events)-1-i]
		fg := termbox.ColorDefault
		if i == 0 {
			fg |= termbox.AttrBold
		}
		drawText(ownGridX, logY+i, fg, termbox.ColorDefault, event.String())
	}
}

func drawText(x, y int, fg, bg termbox.Attribute, s string) {
	for _, r := range s {
		termbox.SetCell(x, y, r, fg, bg)
		x += runewidth.RuneWidth(r)
	}
}
