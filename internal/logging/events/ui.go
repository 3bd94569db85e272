package events

import "github.com/atomicstack/sweeper/internal/logging"

type MenuTracer struct{}

type FilterTracer struct{}

type ActionTracer struct{}

var (
	Menu   = MenuTracer{}
	Filter = FilterTracer{}
	Action = ActionTracer{}
)

func (MenuTracer) Activate(index int, id, label string) {
	logging.Trace("menu.activate", map[string]interface{}{"index": index, "item": id, "label": label})
}

func (MenuTracer) Cursor(cursor int) {
	logging.Trace("menu.cursor", map[string]interface{}{"cursor": cursor})
}

func (ActionTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("action.error", map[string]interface{}{"error": err.Error()})
}

func (FilterTracer) Cleared() {
	logging.Trace("filter.clear", nil)
}

func (FilterTracer) Append(filter string) {
	logging.Trace("filter.append", map[string]interface{}{"filter": filter})
}

func (FilterTracer) Backspace(filter string) {
	logging.Trace("filter.backspace", map[string]interface{}{"filter": filter})
}
