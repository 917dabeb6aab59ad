// Package client implements the peer-side state machine: it mirrors the
// wire protocol from the other end, keeps the local hit grids and match
// log, and delegates rendering and target selection to a UI.
package client

import (
	"errors"
	"fmt"
	"net"

	"github.com/warship-net/warship/internal/logic"
	"github.com/warship-net/warship/internal/protocol"
)

// ErrAbnormalTermination is returned when the server terminates the
// connection before a victory or loss notice arrived.
var ErrAbnormalTermination = errors.New("connection terminated before the match was decided")

// Client holds one player's view of a running match.
type Client struct {
	conn  net.Conn
	fleet logic.Fleet

	own      [logic.GridSize][logic.GridSize]Mark
	opponent [logic.GridSize][logic.GridSize]Mark
	events   []Event
}

// Connect obtains a fleet from the UI, dials the server and runs the
// opening handshake.
func Connect(addr string, ui UI) (*Client, error) {
	fleet, err := ui.BuildFleet()
	if err != nil {
		return nil, fmt.Errorf("build fleet: %w", err)
	}

	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("dial: %w", err)
	}

	c, err := New(conn, fleet)
	if err != nil {
		conn.Close()
		return nil, err
	}
	return c, nil
}

// New runs the opening handshake over an established connection: send a
// Handshake, require one back.
func New(conn net.Conn, fleet logic.Fleet) (*Client, error) {
	if err := protocol.WriteClient(conn, protocol.Handshake{}); err != nil {
		return nil, err
	}
	reply, err := protocol.ReadServer(conn)
	if err != nil {
		return nil, err
	}
	if _, ok := reply.(protocol.Handshake); !ok {
		return nil, protocol.ErrHandshakeFailed
	}

	return &Client{
		conn:   conn,
		fleet:  fleet,
		events: []Event{EventConnected},
	}, nil
}

// Close releases the connection.
func (c *Client) Close() error {
	return c.conn.Close()
}

// Snapshot returns the UI view of the current state.
func (c *Client) Snapshot() Snapshot {
	return Snapshot{
		Fleet:    c.fleet,
		Own:      c.own,
		Opponent: c.opponent,
		Events:   c.events,
	}
}

// Play runs the match loop until the server terminates the connection,
// returning whether this player won.
func (c *Client) Play(ui UI) (bool, error) {
	if err := ui.RenderBoard(c.Snapshot()); err != nil {
		return false, err
	}

	decided, won := false, false
	for {
		request, err := protocol.ReadServer(c.conn)
		if err != nil {
			return false, err
		}

		var reply protocol.ClientMessage
		switch request := request.(type) {
		case protocol.RequestShipPositions:
			reply = protocol.ShipPositions{Fleet: c.fleet}

		case protocol.RequestTarget:
			c.push(EventSelectTarget)
			pos, err := ui.SelectTarget(c.Snapshot())
			if err != nil {
				return false, fmt.Errorf("select target: %w", err)
			}
			reply = protocol.Target{Pos: pos}

		case protocol.Invalid:
			reply = protocol.Acknowledge{}

		case protocol.InformTargetSelection:
			c.push(EventWaitForOpponent)
			reply = protocol.Acknowledge{}

		case protocol.InformTargetHit:
			x, y := request.Pos.Coords()
			if request.Opponent {
				c.opponent[y][x] = MarkHit
				c.push(pick(request.Sunken, EventOppShipSunk, EventOppShipHit))
			} else {
				c.own[y][x] = MarkHit
				c.push(pick(request.Sunken, EventShipSunk, EventShipHit))
			}
			reply = protocol.Acknowledge{}

		case protocol.InformTargetMiss:
			x, y := request.Pos.Coords()
			if request.Opponent {
				c.opponent[y][x] = MarkMiss
				c.push(EventOppShipMissed)
			} else {
				c.own[y][x] = MarkMiss
				c.push(EventShipMissed)
			}
			reply = protocol.Acknowledge{}

		case protocol.InformVictory:
			decided, won = true, true
			if err := ui.RenderVictory(c.Snapshot()); err != nil {
				return false, err
			}
			reply = protocol.Acknowledge{}

		case protocol.InformLoss:
			decided, won = true, false
			if err := ui.RenderLoss(c.Snapshot()); err != nil {
				return false, err
			}
			reply = protocol.Acknowledge{}

		case protocol.TerminateConnection:
			if err := protocol.WriteClient(c.conn, protocol.Acknowledge{}); err != nil {
				return false, err
			}
			if !decided {
				return false, ErrAbnormalTermination
			}
			return won, nil

		default:
			return false, fmt.Errorf("unexpected server request %T", request)
		}

		if err := protocol.WriteClient(c.conn, reply); err != nil {
			return false, err
		}

		switch {
		case decided && won:
			err = ui.RenderVictory(c.Snapshot())
		case decided:
			err = ui.RenderLoss(c.Snapshot())
		default:
			err = ui.RenderBoard(c.Snapshot())
		}
		if err != nil {
			return false, err
		}
	}
}

func (c *Client) push(e Event) {
	c.events = append(c.events, e)
}

func pick(sunken bool, sunk, hit Event) Event {
	if sunken {
		return sunk
	}
	return hit
}
