package ui

// Event is an interaction reported by a widget.
type Event struct {
	// Source is the widget the interaction happened on. Delegates never
	// replace it.
	Source Element
	// Name labels the event. It starts as the source's id property and
	// delegates may rename it.
	Name string
}

// NewEvent returns an event originating from src.
func NewEvent(src Element) Event {
	return Event{Source: src, Name: src.Base().Name()}
}

// Dispatch offers ev to the delegate chain of its source. Each delegate's
// TransmitEvent decides whether the event travels on; once the chain ends
// the handler receives the event, still tagged with the original source.
// Dispatch reports whether the handler was reached.
//
// A chain revisiting a widget, or reaching a destroyed delegate, panics
// with a *ContractError.
func Dispatch(ev Event, h EventHandler) bool {
	cur := ev.Source.Base()
	seen := map[*Widget]bool{cur: true}
	for cur.delegate != nil {
		d := cur.delegate
		db := d.Base()
		if db.destroyed {
			violate(KindDanglingDelegate, "%s delegates to destroyed %s", cur.describe(), db.describe())
		}
		if seen[db] {
			violate(KindDelegateCycle, "event %q revisits %s", ev.Name, db.describe())
		}
		seen[db] = true
		if !d.TransmitEvent(&ev) {
			return false
		}
		cur = db
	}
	if h != nil {
		h.HandleEvent(ev)
	}
	return true
}
