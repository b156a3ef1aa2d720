package worker

import "fmt"

// EventHandler processes one decoded broker payload.
type EventHandler func(data []byte) error

// Router fans an event name out to its registered handlers.
type Router struct {
	handlers map[string][]EventHandler
}

func NewRouter(handlers map[string][]EventHandler) *Router {
	return &Router{
		handlers: handlers,
	}
}

func (r *Router) Handle(event string, data []byte) error {
	handlers, ok := r.handlers[event]
	if !ok {
		return fmt.Errorf("no handler for event %q", event)
	}

	for _, handler := range handlers {
		if err := handler(data); err != nil {
			return err
		}
	}
	return nil
}
