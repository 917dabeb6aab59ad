package client

import "github.com/warship-net/warship/internal/logic"

// Mark is the client's knowledge about one cell of a hit grid.
type Mark uint8

const (
	MarkUnknown Mark = iota
	MarkMiss
	MarkHit
)

// Event is one entry of the match log shown to the player.
type Event uint8

const (
	EventConnected Event = iota
	EventSelectTarget
	EventWaitForOpponent
	EventShipHit
	EventShipSunk
	EventShipMissed
	EventOppShipHit
	EventOppShipSunk
	EventOppShipMissed
)

func (e Event) String() string {
	switch e {
	case EventConnected:
		return "connected, waiting for match"
	case EventSelectTarget:
		return "select a target"
	case EventWaitForOpponent:
		return "opponent is selecting a target"
	case EventShipHit:
		return "your ship was hit"
	case EventShipSunk:
		return "your ship was sunk"
	case EventShipMissed:
		return "the opponent missed"
	case EventOppShipHit:
		return "you hit an enemy ship"
	case EventOppShipSunk:
		return "you sunk an enemy ship"
	case EventOppShipMissed:
		return "you missed"
	default:
		return "unknown event"
	}
}

// Snapshot is the read-only view of the client state handed to the UI.
// Own is what the opponent did to your board, Opponent what your shots
// did to theirs. Events is append-only, oldest first; display newest
// first.
type Snapshot struct {
	Fleet    logic.Fleet
	Own      [logic.GridSize][logic.GridSize]Mark
	Opponent [logic.GridSize][logic.GridSize]Mark
	Events   []Event
}

// UI is the capability interface the client delegates rendering and input
// to. A terminal front end implements it; any other front end can be
// supplied instead.
type UI interface {
	// BuildFleet obtains the player's ship placement before connecting.
	BuildFleet() (logic.Fleet, error)
	// RenderBoard draws the current boards and log.
	RenderBoard(Snapshot) error
	// SelectTarget asks the player for the next shot.
	SelectTarget(Snapshot) (logic.Position, error)
	// RenderVictory draws the victory view.
	RenderVictory(Snapshot) error
	// RenderLoss draws the loss view.
	RenderLoss(Snapshot) error
}
