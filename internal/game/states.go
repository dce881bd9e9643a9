package game

import (
	"context"
	"errors"

	"github.com/looplab/fsm"
)

// Orchestrator states.
const (
	StateAwaitingInput    = "awaiting_input"
	StateResolvingPlayer  = "resolving_player"
	StateResolvingEnemies = "resolving_enemies"
	StateFloorTransition  = "floor_transition"
	StateVictory          = "victory"
	StateDefeat           = "defeat"
)

// Orchestrator events.
const (
	evAct     = "act"
	evReject  = "reject"
	evEnemies = "enemies"
	evEndTurn = "end_turn"
	evStairs  = "stairs"
	evArrive  = "arrive"
	evWin     = "win"
	evLose    = "lose"
)

func (g *Game) newMachine(initial string) *fsm.FSM {
	return fsm.NewFSM(
		initial,
		fsm.Events{
			{Name: evAct, Src: []string{StateAwaitingInput}, Dst: StateResolvingPlayer},
			{Name: evReject, Src: []string{StateResolvingPlayer}, Dst: StateAwaitingInput},
			{Name: evEnemies, Src: []string{StateResolvingPlayer}, Dst: StateResolvingEnemies},
			{Name: evEndTurn, Src: []string{StateResolvingEnemies}, Dst: StateAwaitingInput},
			{Name: evStairs, Src: []string{StateResolvingPlayer}, Dst: StateFloorTransition},
			{Name: evArrive, Src: []string{StateFloorTransition}, Dst: StateAwaitingInput},
			{Name: evWin, Src: []string{StateResolvingPlayer}, Dst: StateVictory},
			{Name: evLose, Src: []string{StateResolvingPlayer, StateResolvingEnemies}, Dst: StateDefeat},
		},
		fsm.Callbacks{
			"enter_state": func(_ context.Context, e *fsm.Event) {
				log.WithField("from", e.Src).WithField("to", e.Dst).Trace("state change")
			},
			"enter_" + StateVictory: func(_ context.Context, _ *fsm.Event) { g.finish(true) },
			"enter_" + StateDefeat:  func(_ context.Context, _ *fsm.Event) { g.finish(false) },
		},
	)
}

// fire moves the machine along event. Every call site only fires events
// that are legal from the current state, so a failure is a bug.
func (g *Game) fire(event string) {
	err := g.machine.Event(context.Background(), event)
	var noop fsm.NoTransitionError
	if err != nil && !errors.As(err, &noop) {
		panic(err)
	}
}

// State returns the current orchestrator state.
func (g *Game) State() string { return g.machine.Current() }

// Over reports whether the run has ended.
func (g *Game) Over() bool {
	return g.machine.Is(StateVictory) || g.machine.Is(StateDefeat)
}

// Won reports whether the run ended in victory.
func (g *Game) Won() bool { return g.machine.Is(StateVictory) }
