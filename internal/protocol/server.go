package protocol

import (
	"bytes"
	"fmt"
	"io"

	"github.com/warship-net/warship/internal/logic"
)

// ServerMessage is the closed server->client vocabulary.
type ServerMessage interface {
	serverMessage()
}

// RequestShipPositions asks the client for its fleet.
type RequestShipPositions struct{}

// RequestTarget asks the client for its next target.
type RequestTarget struct{}

// InformTargetSelection tells the passive player the opponent is choosing
// a target.
type InformTargetSelection struct{}

// InformTargetHit reports a hit. Opponent is false when the receiver's own
// board was hit, true when the receiver's shot hit the opponent.
type InformTargetHit struct {
	Opponent bool
	Pos      logic.Position
	Sunken   bool
}

// InformTargetMiss reports a miss, with the same Opponent convention as
// InformTargetHit.
type InformTargetMiss struct {
	Opponent bool
	Pos      logic.Position
}

// InformVictory tells the receiver it won the match.
type InformVictory struct{}

// InformLoss tells the receiver it lost the match.
type InformLoss struct{}

func (RequestShipPositions) serverMessage()  {}
func (RequestTarget) serverMessage()         {}
func (InformTargetSelection) serverMessage() {}
func (InformTargetHit) serverMessage()       {}
func (InformTargetMiss) serverMessage()      {}
func (InformVictory) serverMessage()         {}
func (InformLoss) serverMessage()            {}

func boolByte(b bool) byte {
	if b {
		return 1
	}
	return 0
}

// EncodeServer maps a server message to its wire frame. The mapping is
// total over the closed vocabulary.
func EncodeServer(m ServerMessage) RawFrame {
	switch m := m.(type) {
	case Handshake:
		return RawFrame{Marker: markerHandshake, Body: bodyHandshake}
	case Invalid:
		return RawFrame{Marker: markerInvalid, Body: bodyInvalid}
	case TerminateConnection:
		return RawFrame{Marker: markerTerminate, Body: bodyTerminate}
	case RequestShipPositions:
		return RawFrame{Marker: markerShipPositions, Body: bodyRequestShips}
	case RequestTarget:
		return RawFrame{Marker: markerTarget, Body: bodyRequestTarget}
	case InformTargetSelection:
		return RawFrame{Marker: markerInformSelection, Body: bodyInformSelect}
	case InformTargetHit:
		return RawFrame{Marker: markerInformHit, Body: []byte{boolByte(m.Opponent), m.Pos.Byte(), boolByte(m.Sunken)}}
	case InformTargetMiss:
		return RawFrame{Marker: markerInformMiss, Body: []byte{boolByte(m.Opponent), m.Pos.Byte()}}
	case InformVictory:
		return RawFrame{Marker: markerVictory, Body: bodyVictory}
	case InformLoss:
		return RawFrame{Marker: markerLoss, Body: bodyLoss}
	default:
		panic(fmt.Sprintf("protocol: unknown server message %T", m))
	}
}

// DecodeServer maps a wire frame to a server message, failing with a
// FrameError on anything outside the vocabulary.
func DecodeServer(f RawFrame) (ServerMessage, error) {
	switch f.Marker {
	case markerHandshake:
		if bytes.Equal(f.Body, bodyHandshake) {
			return Handshake{}, nil
		}
	case markerInvalid:
		if bytes.Equal(f.Body, bodyInvalid) {
			return Invalid{}, nil
		}
	case markerTerminate:
		if bytes.Equal(f.Body, bodyTerminate) {
			return TerminateConnection{}, nil
		}
	case markerShipPositions:
		if bytes.Equal(f.Body, bodyRequestShips) {
			return RequestShipPositions{}, nil
		}
	case markerTarget:
		if bytes.Equal(f.Body, bodyRequestTarget) {
			return RequestTarget{}, nil
		}
	case markerInformSelection:
		if bytes.Equal(f.Body, bodyInformSelect) {
			return InformTargetSelection{}, nil
		}
	case markerInformHit:
		if len(f.Body) == 3 && f.Body[0] <= 1 {
			pos, err := logic.FromByte(f.Body[1])
			if err != nil {
				return nil, frameError(f)
			}
			return InformTargetHit{Opponent: f.Body[0] == 1, Pos: pos, Sunken: f.Body[2] != 0}, nil
		}
	case markerInformMiss:
		if len(f.Body) == 2 && f.Body[0] <= 1 {
			pos, err := logic.FromByte(f.Body[1])
			if err != nil {
				return nil, frameError(f)
			}
			return InformTargetMiss{Opponent: f.Body[0] == 1, Pos: pos}, nil
		}
	case markerVictory:
		if bytes.Equal(f.Body, bodyVictory) {
			return InformVictory{}, nil
		}
	case markerLoss:
		if bytes.Equal(f.Body, bodyLoss) {
			return InformLoss{}, nil
		}
	}
	return nil, frameError(f)
}

// ReadServer reads and decodes one server message from the stream.
func ReadServer(r io.Reader) (ServerMessage, error) {
	f, err := ReadFrame(r)
	if err != nil {
		return nil, err
	}
	return DecodeServer(f)
}

// WriteServer encodes and writes one server message to the stream.
func WriteServer(w io.Writer, m ServerMessage) error {
	return WriteFrame(w, EncodeServer(m))
}
