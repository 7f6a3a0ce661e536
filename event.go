package highlight

// handler pairs a registration ID with its callback so it can be removed.
type handler[T any] struct {
	id uint32
	fn func(T)
}

// Event is an observable channel. Handlers fire synchronously, in
// registration order, on the goroutine that calls Trigger.
type Event[T any] struct {
	handlers []handler[T]
	nextID   uint32
}

// CallbackHandle allows removing a handler registered on an Event.
type CallbackHandle struct {
	remove func()
}

// Remove unregisters the handler so it no longer fires. Calling Remove more
// than once, or on the zero CallbackHandle, is a no-op.
func (h CallbackHandle) Remove() {
	if h.remove == nil {
		return
	}
	h.remove()
}

// Add registers fn and returns a CallbackHandle that removes it.
func (e *Event[T]) Add(fn func(T)) CallbackHandle {
	if fn == nil {
		panic("highlight: cannot add nil event handler")
	}
	e.nextID++
	id := e.nextID
	e.handlers = append(e.handlers, handler[T]{id: id, fn: fn})
	return CallbackHandle{remove: func() { e.remove(id) }}
}

func (e *Event[T]) remove(id uint32) {
	for i := range e.handlers {
		if e.handlers[i].id == id {
			copy(e.handlers[i:], e.handlers[i+1:])
			e.handlers[len(e.handlers)-1] = handler[T]{}
			e.handlers = e.handlers[:len(e.handlers)-1]
			return
		}
	}
}

// Trigger calls every registered handler with v. Handlers added or removed
// while triggering take effect on the next Trigger.
func (e *Event[T]) Trigger(v T) {
	if len(e.handlers) == 0 {
		return
	}
	snapshot := make([]handler[T], len(e.handlers))
	copy(snapshot, e.handlers)
	for _, h := range snapshot {
		h.fn(v)
	}
}

// Len returns the number of registered handlers.
func (e *Event[T]) Len() int {
	return len(e.handlers)
}

// Reset removes every handler.
func (e *Event[T]) Reset() {
	clear(e.handlers)
	e.handlers = e.handlers[:0]
}
