package worldclock

import (
	"context"

	"github.com/looplab/fsm"
	"go.uber.org/zap"
)

// Panel visual states. The panel starts expanded.
const (
	stateExpanded  = "expanded"
	stateCollapsed = "collapsed"
)

// Transition events. The three collapse triggers are distinct events so the
// log records why the panel went away.
const (
	eventDismiss = "dismiss" // pointer press outside the panel
	eventClose   = "close"   // explicit close control
	eventTimeout = "timeout" // idle countdown elapsed
	eventExpand  = "expand"  // press on the collapsed pill
)

// newMachine builds the expand/collapse state machine. The enter_state
// callback only logs: bubbletea models are copied by value, so callbacks
// must never reach back into the model. Update logic keys off the nil
// error from Event instead.
func newMachine(logger *zap.Logger, id string) *fsm.FSM {
	return fsm.NewFSM(
		stateExpanded,
		fsm.Events{
			{Name: eventDismiss, Src: []string{stateExpanded}, Dst: stateCollapsed},
			{Name: eventClose, Src: []string{stateExpanded}, Dst: stateCollapsed},
			{Name: eventTimeout, Src: []string{stateExpanded}, Dst: stateCollapsed},
			{Name: eventExpand, Src: []string{stateCollapsed}, Dst: stateExpanded},
		},
		fsm.Callbacks{
			"enter_state": func(_ context.Context, e *fsm.Event) {
				logger.Debug("panel state change",
					zap.String("panel", id),
					zap.String("event", e.Event),
					zap.String("from", e.Src),
					zap.String("to", e.Dst),
				)
			},
		},
	)
}
