package server

import (
	"net"

	"github.com/warship-net/warship/internal/protocol"
)

type middlewareResult struct {
	res CommandResult
	err error
}

// Middleware owns one player's socket exclusively. Its task loops over the
// command channel, runs exactly one request/response wire exchange per
// command and pushes the result back. A socket or decode failure is
// delivered as the final result, after which the loop exits and no further
// commands are served.
type Middleware struct {
	conn    net.Conn
	cmds    chan CommandRequest
	results chan middlewareResult
}

// NewMiddleware wraps a connection. queue sizes both channels; it is a
// safety margin, at most one command is outstanding at a time.
func NewMiddleware(conn net.Conn, queue int) *Middleware {
	return &Middleware{
		conn:    conn,
		cmds:    make(chan CommandRequest, queue),
		results: make(chan middlewareResult, queue),
	}
}

// Run serves commands until the channel closes or an exchange fails.
// It owns the socket and closes it on exit.
func (m *Middleware) Run() {
	defer close(m.results)
	defer m.conn.Close()

	for cmd := range m.cmds {
		res, err := m.handle(cmd)
		m.results <- middlewareResult{res: res, err: err}
		if err != nil {
			return
		}
	}
}

// issue queues a command. The channel is buffered, so issuing to both
// players' middlewares before awaiting either never blocks.
func (m *Middleware) issue(cmd CommandRequest) {
	m.cmds <- cmd
}

// await blocks for the next result.
func (m *Middleware) await() (CommandResult, error) {
	r, ok := <-m.results
	if !ok {
		return CommandResult{}, ErrMiddlewareGone
	}
	return r.res, r.err
}

func (m *Middleware) handle(cmd CommandRequest) (CommandResult, error) {
	if cmd.Kind == CmdHandshake {
		// Handshake is the one exchange where the client speaks first.
		msg, err := protocol.ReadClient(m.conn)
		if err != nil {
			return CommandResult{}, err
		}
		if _, ok := msg.(protocol.Handshake); !ok {
			return CommandResult{Kind: ResultInvalid}, nil
		}
		if err := protocol.WriteServer(m.conn, protocol.Handshake{}); err != nil {
			return CommandResult{}, err
		}
		return CommandResult{Kind: ResultSuccess}, nil
	}

	if err := protocol.WriteServer(m.conn, outbound(cmd)); err != nil {
		return CommandResult{}, err
	}
	msg, err := protocol.ReadClient(m.conn)
	if err != nil {
		return CommandResult{}, err
	}

	switch cmd.Kind {
	case CmdRequestShips:
		if ships, ok := msg.(protocol.ShipPositions); ok {
			return CommandResult{Kind: ResultShips, Fleet: ships.Fleet}, nil
		}
	case CmdRequestTarget:
		if target, ok := msg.(protocol.Target); ok {
			return CommandResult{Kind: ResultTarget, Pos: target.Pos}, nil
		}
	default:
		if _, ok := msg.(protocol.Acknowledge); ok {
			return CommandResult{Kind: ResultSuccess}, nil
		}
	}
	return CommandResult{Kind: ResultInvalid}, nil
}

// outbound maps a command to the server message it puts on the wire.
func outbound(cmd CommandRequest) protocol.ServerMessage {
	switch cmd.Kind {
	case CmdRequestShips:
		return protocol.RequestShipPositions{}
	case CmdRequestTarget:
		return protocol.RequestTarget{}
	case CmdInformTargetSelection:
		return protocol.InformTargetSelection{}
	case CmdInformHit:
		return protocol.InformTargetHit{Opponent: cmd.Opponent, Pos: cmd.Pos, Sunken: cmd.Sunken}
	case CmdInformMiss:
		return protocol.InformTargetMiss{Opponent: cmd.Opponent, Pos: cmd.Pos}
	case CmdInformVictory:
		return protocol.InformVictory{}
	case CmdInformLoss:
		return protocol.InformLoss{}
	case CmdTerminate:
		return protocol.TerminateConnection{}
	default:
		panic("server: unhandled command " + cmd.Kind.String())
	}
}
