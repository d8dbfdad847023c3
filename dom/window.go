package dom

import (
	"sync"

	"github.com/scheerer/traffic-light/internal/logging"
	"go.uber.org/zap"
)

var logger = logging.New("dom")

// EventBeforeUnload is dispatched when the page is about to be torn down.
const EventBeforeUnload = "beforeunload"

type Event struct {
	Type string
}

// Listener handles a dispatched event.
type Listener func(Event)

// Window is the event target for page lifecycle events of one Document.
type Window struct {
	Document *Document

	mu        sync.Mutex
	nextID    uint64
	listeners map[string][]registration
}

type registration struct {
	id uint64
	fn Listener
}

func NewWindow(doc *Document) *Window {
	return &Window{
		Document:  doc,
		listeners: make(map[string][]registration),
	}
}

// AddEventListener registers fn for events of type typ and returns a function
// that unregisters it. The returned function may be called more than once.
func (w *Window) AddEventListener(typ string, fn Listener) (remove func()) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.nextID++
	id := w.nextID
	w.listeners[typ] = append(w.listeners[typ], registration{id: id, fn: fn})

	return func() { w.removeListener(typ, id) }
}

func (w *Window) removeListener(typ string, id uint64) {
	w.mu.Lock()
	defer w.mu.Unlock()

	regs := w.listeners[typ]
	for i, r := range regs {
		if r.id == id {
			w.listeners[typ] = append(regs[:i:i], regs[i+1:]...)
			return
		}
	}
}

// ListenerCount returns how many listeners are registered for typ.
func (w *Window) ListenerCount(typ string) int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.listeners[typ])
}

// DispatchEvent calls every listener registered for typ in registration order.
// Listeners may add or remove listeners while the event is being delivered;
// the set delivered to is fixed when dispatch starts.
func (w *Window) DispatchEvent(typ string) {
	w.mu.Lock()
	regs := append([]registration(nil), w.listeners[typ]...)
	w.mu.Unlock()

	logger.With(zap.String("event", typ), zap.Int("listeners", len(regs))).Debug("Dispatching event")

	ev := Event{Type: typ}
	for _, r := range regs {
		r.fn(ev)
	}
}
