package events

import "github.com/atomicstack/sweeper/internal/logging"

type GameTracer struct{}

var Game = GameTracer{}

func (GameTracer) New(id string, size, mines int) {
	logging.Trace("game.new", map[string]interface{}{"game": id, "size": size, "mines": mines})
}

func (GameTracer) Reveal(id string, x, y int, cell string) {
	logging.Trace("game.reveal", map[string]interface{}{"game": id, "x": x, "y": y, "cell": cell})
}

func (GameTracer) Flag(id string, x, y int, cell string) {
	logging.Trace("game.flag", map[string]interface{}{"game": id, "x": x, "y": y, "cell": cell})
}

func (GameTracer) Outcome(id, outcome string) {
	logging.Trace("game.outcome", map[string]interface{}{"game": id, "outcome": outcome})
}
