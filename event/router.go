package event

// Handler is implemented by systems that consume events
type Handler interface {
	Name() string
	EventTypes() []EventType
	HandleEvent(GameEvent)
}

// Router fans consumed events out to registered handlers. Dispatch runs
// on the game loop; handlers mutate world state directly, so the queue
// is drained both before and after the system pass to keep same-tick
// damage semantics.
type Router struct {
	queue    *EventQueue
	handlers map[EventType][]Handler
}

func NewRouter(queue *EventQueue) *Router {
	return &Router{
		queue:    queue,
		handlers: make(map[EventType][]Handler),
	}
}

// Register subscribes a handler to its declared event types
func (r *Router) Register(h Handler) {
	for _, t := range h.EventTypes() {
		r.handlers[t] = append(r.handlers[t], h)
	}
}

// Dispatch drains the queue and routes each event in FIFO order.
// Handlers may push further events; those are picked up by the next
// Dispatch call, not recursively within this one.
func (r *Router) Dispatch() {
	for _, ev := range r.queue.Consume() {
		for _, h := range r.handlers[ev.Type] {
			h.HandleEvent(ev)
		}
	}
}
