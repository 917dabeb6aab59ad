package client

import (
	"errors"
	"net"
	"testing"

	"github.com/warship-net/warship/internal/logic"
	"github.com/warship-net/warship/internal/protocol"
)

func testFleet(t *testing.T) logic.Fleet {
	t.Helper()
	lengths := [logic.FleetSize]uint8{2, 3, 3, 4, 5}
	var ships [logic.FleetSize]logic.Ship
	for i, l := range lengths {
		anchor, err := logic.FromCoords(0, uint8(i))
		if err != nil {
			t.Fatalf("position: %v", err)
		}
		ship, err := logic.NewShip(logic.ShipPlan{Orientation: logic.Horizontal, Anchor: anchor, Length: l})
		if err != nil {
			t.Fatalf("ship: %v", err)
		}
		ships[i] = ship
	}
	fleet, err := logic.NewFleet(ships)
	if err != nil {
		t.Fatalf("fleet: %v", err)
	}
	return fleet
}

// stubUI returns a fixed target and counts render calls.
type stubUI struct {
	fleet     logic.Fleet
	target    logic.Position
	boards    int
	victories int
	losses    int
}

func (u *stubUI) BuildFleet() (logic.Fleet, error) { return u.fleet, nil }

func (u *stubUI) RenderBoard(Snapshot) error { u.boards++; return nil }

func (u *stubUI) SelectTarget(Snapshot) (logic.Position, error) { return u.target, nil }

func (u *stubUI) RenderVictory(Snapshot) error { u.victories++; return nil }

func (u *stubUI) RenderLoss(Snapshot) error { u.losses++; return nil }

func acceptHandshake(t *testing.T, conn net.Conn) {
	t.Helper()
	msg, err := protocol.ReadClient(conn)
	if err != nil {
		t.Errorf("read handshake: %v", err)
		return
	}
	if _, ok := msg.(protocol.Handshake); !ok {
		t.Errorf("expected handshake, got %T", msg)
		return
	}
	if err := protocol.WriteServer(conn, protocol.Handshake{}); err != nil {
		t.Errorf("write handshake: %v", err)
	}
}

func expectAck(t *testing.T, conn net.Conn) {
	t.Helper()
	msg, err := protocol.ReadClient(conn)
	if err != nil {
		t.Errorf("read acknowledge: %v", err)
		return
	}
	if _, ok := msg.(protocol.Acknowledge); !ok {
		t.Errorf("expected acknowledge, got %T", msg)
	}
}

func TestNewHandshake(t *testing.T) {
	conn, peer := net.Pipe()
	defer peer.Close()

	go acceptHandshake(t, peer)

	c, err := New(conn, testFleet(t))
	if err != nil {
		t.Fatalf("handshake: %v", err)
	}
	defer c.Close()

	snap := c.Snapshot()
	if len(snap.Events) != 1 || snap.Events[0] != EventConnected {
		t.Errorf("expected a connected event, got %v", snap.Events)
	}
}

func TestNewHandshakeRejected(t *testing.T) {
	conn, peer := net.Pipe()
	defer peer.Close()
	defer conn.Close()

	go func() {
		protocol.ReadClient(peer)
		protocol.WriteServer(peer, protocol.Invalid{})
	}()

	_, err := New(conn, testFleet(t))
	if !errors.Is(err, protocol.ErrHandshakeFailed) {
		t.Fatalf("expected handshake failure, got %v", err)
	}
}

func TestPlayFullExchange(t *testing.T) {
	fleet := testFleet(t)
	hitPos, _ := logic.FromCoords(0, 0)
	missPos, _ := logic.FromCoords(7, 7)

	conn, peer := net.Pipe()
	ui := &stubUI{fleet: fleet, target: missPos}

	done := make(chan struct{})
	go func() {
		defer close(done)
		defer peer.Close()
		acceptHandshake(t, peer)

		// Fleet collection.
		protocol.WriteServer(peer, protocol.RequestShipPositions{})
		msg, err := protocol.ReadClient(peer)
		if err != nil {
			t.Errorf("read ships: %v", err)
			return
		}
		ships, ok := msg.(protocol.ShipPositions)
		if !ok {
			t.Errorf("expected ship positions, got %T", msg)
			return
		}
		if ships.Fleet != fleet {
			t.Error("fleet did not survive the wire")
		}

		// Opponent's turn: selection notice, then this board is hit.
		protocol.WriteServer(peer, protocol.InformTargetSelection{})
		expectAck(t, peer)
		protocol.WriteServer(peer, protocol.InformTargetHit{Opponent: false, Pos: hitPos, Sunken: false})
		expectAck(t, peer)

		// Own turn: target request, then a miss on the opponent.
		protocol.WriteServer(peer, protocol.RequestTarget{})
		reply, err := protocol.ReadClient(peer)
		if err != nil {
			t.Errorf("read target: %v", err)
			return
		}
		target, ok := reply.(protocol.Target)
		if !ok {
			t.Errorf("expected target, got %T", reply)
			return
		}
		if target.Pos != missPos {
			t.Errorf("expected %v, got %v", missPos, target.Pos)
		}
		protocol.WriteServer(peer, protocol.InformTargetMiss{Opponent: true, Pos: missPos})
		expectAck(t, peer)

		// Match ends in a loss.
		protocol.WriteServer(peer, protocol.InformLoss{})
		expectAck(t, peer)
		protocol.WriteServer(peer, protocol.TerminateConnection{})
		expectAck(t, peer)
	}()

	c, err := New(conn, fleet)
	if err != nil {
		t.Fatalf("handshake: %v", err)
	}
	won, err := c.Play(ui)
	if err != nil {
		t.Fatalf("play: %v", err)
	}
	c.Close()
	<-done

	if won {
		t.Error("expected a loss")
	}
	if ui.losses == 0 || ui.victories != 0 {
		t.Errorf("UI callbacks: %d victories, %d losses", ui.victories, ui.losses)
	}

	snap := c.Snapshot()
	x, y := hitPos.Coords()
	if snap.Own[y][x] != MarkHit {
		t.Error("own grid missing the recorded hit")
	}
	x, y = missPos.Coords()
	if snap.Opponent[y][x] != MarkMiss {
		t.Error("opponent grid missing the recorded miss")
	}

	want := []Event{EventConnected, EventWaitForOpponent, EventShipHit, EventSelectTarget, EventOppShipMissed}
	if len(snap.Events) != len(want) {
		t.Fatalf("event log %v, want %v", snap.Events, want)
	}
	for i, e := range want {
		if snap.Events[i] != e {
			t.Errorf("event %d: got %v, want %v", i, snap.Events[i], e)
		}
	}
}

func TestPlayAbnormalTermination(t *testing.T) {
	fleet := testFleet(t)
	conn, peer := net.Pipe()

	go func() {
		defer peer.Close()
		acceptHandshake(t, peer)
		protocol.WriteServer(peer, protocol.TerminateConnection{})
		expectAck(t, peer)
	}()

	c, err := New(conn, fleet)
	if err != nil {
		t.Fatalf("handshake: %v", err)
	}
	defer c.Close()

	_, err = c.Play(&stubUI{fleet: fleet})
	if !errors.Is(err, ErrAbnormalTermination) {
		t.Fatalf("expected abnormal termination, got %v", err)
	}
}

func TestPlayUnexpectedMessage(t *testing.T) {
	fleet := testFleet(t)
	conn, peer := net.Pipe()

	go func() {
		defer peer.Close()
		acceptHandshake(t, peer)
		// A second handshake has no place in the play loop.
		protocol.WriteServer(peer, protocol.Handshake{})
	}()

	c, err := New(conn, fleet)
	if err != nil {
		t.Fatalf("handshake: %v", err)
	}
	defer c.Close()

	if _, err := c.Play(&stubUI{fleet: fleet}); err == nil {
		t.Fatal("expected an error on an unexpected server message")
	}
}

func TestPlayMalformedFrame(t *testing.T) {
	fleet := testFleet(t)
	conn, peer := net.Pipe()

	go func() {
		defer peer.Close()
		acceptHandshake(t, peer)
		protocol.WriteFrame(peer, protocol.RawFrame{Marker: 101})
	}()

	c, err := New(conn, fleet)
	if err != nil {
		t.Fatalf("handshake: %v", err)
	}
	defer c.Close()

	_, err = c.Play(&stubUI{fleet: fleet})
	var fe *protocol.FrameError
	if !errors.As(err, &fe) {
		t.Fatalf("expected a frame error, got %v", err)
	}
}
