package server

import (
	"fmt"

	"github.com/warship-net/warship/internal/logic"
	"github.com/warship-net/warship/internal/protocol"
)

// Instance coordinates one match. It exclusively owns both players'
// boards and the turn counter; it never touches a socket, only the two
// middlewares' command/result channels.
type Instance struct {
	turn   uint32
	boards [2]*logic.Board
	mws    [2]*Middleware
}

// NewInstance builds a coordinator over two middlewares whose Run loops
// the caller has already started.
func NewInstance(mw1, mw2 *Middleware) *Instance {
	return &Instance{mws: [2]*Middleware{mw1, mw2}}
}

// Run drives the match to completion: handshake, fleet collection, then
// the turn loop. Whatever the outcome, a best-effort TerminateConnection
// goes out to both players and both command channels are closed, which
// ends the middleware tasks.
func (in *Instance) Run() error {
	defer in.cleanup()

	if err := in.handshake(); err != nil {
		return err
	}
	if err := in.collectFleets(); err != nil {
		return err
	}
	for {
		done, err := in.playTurn()
		if err != nil {
			return err
		}
		if done {
			return nil
		}
	}
}

// handshake runs the opening exchange with both players concurrently.
func (in *Instance) handshake() error {
	for _, mw := range in.mws {
		mw.issue(CommandRequest{Kind: CmdHandshake})
	}
	for _, mw := range in.mws {
		res, err := mw.await()
		if err != nil {
			return fmt.Errorf("handshake: %w", err)
		}
		if res.Kind != ResultSuccess {
			return protocol.ErrHandshakeFailed
		}
	}
	return nil
}

// collectFleets requests ship positions from both players concurrently.
// Fleet validity was already enforced while decoding the wire message.
func (in *Instance) collectFleets() error {
	req := CommandRequest{Kind: CmdRequestShips}
	for _, mw := range in.mws {
		mw.issue(req)
	}
	for i, mw := range in.mws {
		res, err := mw.await()
		if err != nil {
			return fmt.Errorf("collect fleets: %w", err)
		}
		if res.Kind != ResultShips {
			return &MiddlewareError{Request: req, Result: res}
		}
		in.boards[i] = logic.NewBoard(res.Fleet)
	}
	return nil
}

// playTurn runs one turn. It returns true when the match is over.
func (in *Instance) playTurn() (bool, error) {
	active := in.mws[in.turn%2]
	passive := in.mws[1-in.turn%2]
	passiveBoard := in.boards[1-in.turn%2]

	target, err := in.requestTarget(active, passive)
	if err != nil {
		return false, err
	}

	info, err := passiveBoard.Target(target)
	if err != nil {
		// The active player re-submitted an already-targeted cell;
		// only a misbehaving client does that.
		return false, fmt.Errorf("logic error; %w", err)
	}

	if !info.Hit {
		err := in.informBoth(
			active, CommandRequest{Kind: CmdInformMiss, Opponent: true, Pos: target},
			passive, CommandRequest{Kind: CmdInformMiss, Opponent: false, Pos: target},
		)
		if err != nil {
			return false, err
		}
		in.turn++
		return false, nil
	}

	err = in.informBoth(
		active, CommandRequest{Kind: CmdInformHit, Opponent: true, Pos: target, Sunken: info.Sunken},
		passive, CommandRequest{Kind: CmdInformHit, Opponent: false, Pos: target, Sunken: info.Sunken},
	)
	if err != nil {
		return false, err
	}

	if !passiveBoard.AllSunken() {
		in.turn++
		return false, nil
	}

	err = in.informBoth(
		active, CommandRequest{Kind: CmdInformVictory},
		passive, CommandRequest{Kind: CmdInformLoss},
	)
	if err != nil {
		return false, err
	}
	return true, in.informBoth(
		active, CommandRequest{Kind: CmdTerminate},
		passive, CommandRequest{Kind: CmdTerminate},
	)
}

// requestTarget asks the active player for a target while concurrently
// telling the passive player that selection is underway. Both exchanges
// must complete before the turn proceeds.
func (in *Instance) requestTarget(active, passive *Middleware) (logic.Position, error) {
	req := CommandRequest{Kind: CmdRequestTarget}
	active.issue(req)
	passive.issue(CommandRequest{Kind: CmdInformTargetSelection})

	res, err := active.await()
	if err != nil {
		return logic.Position{}, fmt.Errorf("request target: %w", err)
	}

	ackRes, ackErr := passive.await()
	if ackErr != nil {
		return logic.Position{}, fmt.Errorf("inform target selection: %w", ackErr)
	}
	if ackRes.Kind != ResultSuccess {
		return logic.Position{}, &MiddlewareError{Request: CommandRequest{Kind: CmdInformTargetSelection}, Result: ackRes}
	}
	if res.Kind != ResultTarget {
		return logic.Position{}, &MiddlewareError{Request: req, Result: res}
	}
	return res.Pos, nil
}

// informBoth issues one notice to each player concurrently and joins on
// both acknowledgements. No ordering holds between the two exchanges.
func (in *Instance) informBoth(mw1 *Middleware, cmd1 CommandRequest, mw2 *Middleware, cmd2 CommandRequest) error {
	mw1.issue(cmd1)
	mw2.issue(cmd2)

	res1, err1 := mw1.await()
	res2, err2 := mw2.await()
	if err1 != nil {
		return err1
	}
	if err2 != nil {
		return err2
	}
	if res1.Kind != ResultSuccess {
		return &MiddlewareError{Request: cmd1, Result: res1}
	}
	if res2.Kind != ResultSuccess {
		return &MiddlewareError{Request: cmd2, Result: res2}
	}
	return nil
}

// cleanup sends a final TerminateConnection toward both players and shuts
// the middleware tasks down. Failures here are ignored; the match outcome
// was already decided.
func (in *Instance) cleanup() {
	for _, mw := range in.mws {
		mw.issue(CommandRequest{Kind: CmdTerminate})
	}
	for _, mw := range in.mws {
		<-mw.results
		close(mw.cmds)
	}
}
