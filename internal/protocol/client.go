package protocol

import (
	"bytes"
	"fmt"
	"io"

	"github.com/warship-net/warship/internal/logic"
)

// ClientMessage is the closed client->server vocabulary: Handshake,
// Acknowledge, ShipPositions and Target.
type ClientMessage interface {
	clientMessage()
}

// ShipPositions carries the client's full fleet.
type ShipPositions struct {
	Fleet logic.Fleet
}

// Target carries the client's chosen target cell.
type Target struct {
	Pos logic.Position
}

func (ShipPositions) clientMessage() {}
func (Target) clientMessage()       {}

const shipPositionsBodyLen = logic.FleetSize * 3

// EncodeClient maps a client message to its wire frame. The mapping is
// total over the closed vocabulary.
func EncodeClient(m ClientMessage) RawFrame {
	switch m := m.(type) {
	case Handshake:
		return RawFrame{Marker: markerHandshake, Body: bodyHandshake}
	case Acknowledge:
		return RawFrame{Marker: markerAcknowledge, Body: bodyAcknowledge}
	case ShipPositions:
		body := make([]byte, 0, shipPositionsBodyLen)
		for _, ship := range m.Fleet.Ships() {
			plan := ship.Plan()
			horizontal := byte(0)
			if plan.Orientation == logic.Horizontal {
				horizontal = 1
			}
			body = append(body, horizontal, plan.Anchor.Byte(), plan.Length)
		}
		return RawFrame{Marker: markerShipPositions, Body: body}
	case Target:
		return RawFrame{Marker: markerTarget, Body: []byte{m.Pos.Byte()}}
	default:
		panic(fmt.Sprintf("protocol: unknown client message %T", m))
	}
}

// DecodeClient maps a wire frame to a client message. Frames that do not
// match the vocabulary, including ship positions that fail fleet
// validation, fail with a FrameError carrying the raw frame.
func DecodeClient(f RawFrame) (ClientMessage, error) {
	switch f.Marker {
	case markerHandshake:
		if bytes.Equal(f.Body, bodyHandshake) {
			return Handshake{}, nil
		}
	case markerAcknowledge:
		if bytes.Equal(f.Body, bodyAcknowledge) {
			return Acknowledge{}, nil
		}
	case markerShipPositions:
		if len(f.Body) == shipPositionsBodyLen {
			return decodeShipPositions(f)
		}
	case markerTarget:
		if len(f.Body) == 1 {
			pos, err := logic.FromByte(f.Body[0])
			if err != nil {
				return nil, frameError(f)
			}
			return Target{Pos: pos}, nil
		}
	}
	return nil, frameError(f)
}

// decodeShipPositions reconstructs the fleet from five wire triples.
// The triples are decoded into plain plans first and only turned into
// validated ships and a fleet once all five parsed, so no invalid ship
// value ever materializes.
func decodeShipPositions(f RawFrame) (ClientMessage, error) {
	var plans [logic.FleetSize]logic.ShipPlan
	for i := range plans {
		horizontal, posByte, length := f.Body[i*3], f.Body[i*3+1], f.Body[i*3+2]

		pos, err := logic.FromByte(posByte)
		if err != nil {
			return nil, frameError(f)
		}
		orientation := logic.Vertical
		if horizontal != 0 {
			orientation = logic.Horizontal
		}
		plans[i] = logic.ShipPlan{Orientation: orientation, Anchor: pos, Length: length}
	}

	var ships [logic.FleetSize]logic.Ship
	for i, plan := range plans {
		ship, err := logic.NewShip(plan)
		if err != nil {
			return nil, frameError(f)
		}
		ships[i] = ship
	}

	fleet, err := logic.NewFleet(ships)
	if err != nil {
		return nil, frameError(f)
	}
	return ShipPositions{Fleet: fleet}, nil
}

// ReadClient reads and decodes one client message from the stream.
func ReadClient(r io.Reader) (ClientMessage, error) {
	f, err := ReadFrame(r)
	if err != nil {
		return nil, err
	}
	return DecodeClient(f)
}

// WriteClient encodes and writes one client message to the stream.
func WriteClient(w io.Writer, m ClientMessage) error {
	return WriteFrame(w, EncodeClient(m))
}
