package events

import "github.com/atomicstack/sweeper/internal/logging"

type StateTracer struct{}

var State = StateTracer{}

func (StateTracer) Transition(from, to, action string) {
	logging.Trace("state.transition", map[string]interface{}{"from": from, "to": to, "action": action})
}
