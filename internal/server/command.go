// Package server implements the match server: per-connection middleware
// tasks, the per-match coordinator and the pairing accept loop.
package server

import (
	"fmt"

	"github.com/warship-net/warship/internal/logic"
)

// CommandKind enumerates the commands a coordinator can issue to a
// middleware. Each maps to exactly one request/response wire exchange.
type CommandKind uint8

const (
	CmdHandshake CommandKind = iota
	CmdRequestShips
	CmdRequestTarget
	CmdInformTargetSelection
	CmdInformHit
	CmdInformMiss
	CmdInformVictory
	CmdInformLoss
	CmdTerminate
)

func (k CommandKind) String() string {
	switch k {
	case CmdHandshake:
		return "Handshake"
	case CmdRequestShips:
		return "RequestShips"
	case CmdRequestTarget:
		return "RequestTarget"
	case CmdInformTargetSelection:
		return "InformTargetSelection"
	case CmdInformHit:
		return "InformHit"
	case CmdInformMiss:
		return "InformMiss"
	case CmdInformVictory:
		return "InformVictory"
	case CmdInformLoss:
		return "InformLoss"
	case CmdTerminate:
		return "Terminate"
	default:
		return fmt.Sprintf("CommandKind(%d)", uint8(k))
	}
}

// CommandRequest is an in-process command from coordinator to middleware.
// Opponent, Pos and Sunken are only meaningful for the hit/miss notices.
type CommandRequest struct {
	Kind     CommandKind
	Opponent bool
	Pos      logic.Position
	Sunken   bool
}

// ResultKind enumerates the shapes a middleware result can take.
type ResultKind uint8

const (
	ResultSuccess ResultKind = iota
	ResultInvalid
	ResultShips
	ResultTarget
)

func (k ResultKind) String() string {
	switch k {
	case ResultSuccess:
		return "Success"
	case ResultInvalid:
		return "Invalid"
	case ResultShips:
		return "GetShips"
	case ResultTarget:
		return "GetTarget"
	default:
		return fmt.Sprintf("ResultKind(%d)", uint8(k))
	}
}

// CommandResult is the middleware's answer to one CommandRequest.
// Fleet is set for ResultShips, Pos for ResultTarget.
type CommandResult struct {
	Kind  ResultKind
	Fleet logic.Fleet
	Pos   logic.Position
}
