package ui

import (
	"errors"
	"io"
	"log"
	"testing"
)

// countingPresenter hands out handles and counts their releases.
type countingPresenter struct {
	handles  []*fakeHandle
	released int
	order    []*Widget
}

func (p *countingPresenter) Create(w *Widget) (Handle, error) {
	h := &fakeHandle{p: p, widget: w}
	p.handles = append(p.handles, h)
	return h, nil
}

type fakeHandle struct {
	p        *countingPresenter
	widget   *Widget
	bounds   Rectangle
	text     string
	released int
}

func (h *fakeHandle) SetBounds(r Rectangle) { h.bounds = r }
func (h *fakeHandle) SetText(text string)   { h.text = text }

func (h *fakeHandle) Release() {
	h.released++
	h.p.released++
	h.p.order = append(h.p.order, h.widget)
}

// recorder is an EventHandler remembering every event.
type recorder struct {
	events []Event
}

func (r *recorder) HandleEvent(ev Event) { r.events = append(r.events, ev) }

// stubDelegate answers TransmitEvent with a fixed value.
type stubDelegate struct {
	Widget
	propagate bool
	rename    string
	calls     int
}

func newStubDelegate(name string, propagate bool) *stubDelegate {
	d := &stubDelegate{propagate: propagate}
	d.init(d, TypeDiv)
	d.Props.Set(PropID, name)
	return d
}

func (d *stubDelegate) TransmitEvent(ev *Event) bool {
	d.calls++
	if d.rename != "" {
		ev.Name = d.rename
	}
	return d.propagate
}

// named sets the id property of e and returns it.
func named[E Element](e E, name string) E {
	e.Base().Props.Set(PropID, name)
	return e
}

func setProps(e Element, kv ...string) {
	for i := 0; i+1 < len(kv); i += 2 {
		key, ok := ParseProperty(kv[i])
		if !ok {
			panic("unknown property " + kv[i])
		}
		e.Base().Props.Set(key, kv[i+1])
	}
}

func quietLogger() *log.Logger {
	return log.New(io.Discard, "", 0)
}

// expectViolation runs fn and checks it panics with a ContractError of kind.
func expectViolation(t *testing.T, kind ErrorKind, fn func()) {
	t.Helper()
	defer func() {
		t.Helper()
		r := recover()
		if r == nil {
			t.Fatalf("expected %s violation, got none", kind)
		}
		err, ok := r.(error)
		if !ok {
			t.Fatalf("panic value %v is not an error", r)
		}
		var ce *ContractError
		if !errors.As(err, &ce) {
			t.Fatalf("panic %v is not a ContractError", err)
		}
		if ce.Kind != kind {
			t.Fatalf("got %s violation, want %s", ce.Kind, kind)
		}
	}()
	fn()
}
