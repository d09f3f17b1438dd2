package main

import "image"

// PointerHandler receives pointer events from the drawing surface.
// OnPointerDown reports whether the handler claimed the press.
type PointerHandler interface {
	OnPointerDown(p image.Point) bool
	OnPointerMove(p image.Point)
	OnPointerUp()
}

// PointerBus is the drawing surface's subscription list. Handlers are
// compared by identity, so subscribing the same handler twice is a no-op.
type PointerBus struct {
	handlers []PointerHandler
}

func NewPointerBus() *PointerBus {
	return &PointerBus{handlers: make([]PointerHandler, 0)}
}

func (b *PointerBus) Subscribe(h PointerHandler) {
	if b.indexOf(h) >= 0 {
		return
	}
	b.handlers = append(b.handlers, h)
}

func (b *PointerBus) Unsubscribe(h PointerHandler) {
	if i := b.indexOf(h); i >= 0 {
		b.handlers = append(b.handlers[:i], b.handlers[i+1:]...)
	}
}

func (b *PointerBus) Subscribed(h PointerHandler) bool {
	return b.indexOf(h) >= 0
}

func (b *PointerBus) Len() int {
	return len(b.handlers)
}

// Down offers the press to the most recently subscribed handler first and
// stops at the first one that claims it.
func (b *PointerBus) Down(p image.Point) bool {
	for i := len(b.handlers) - 1; i >= 0; i-- {
		if b.handlers[i].OnPointerDown(p) {
			return true
		}
	}
	return false
}

func (b *PointerBus) Move(p image.Point) {
	for _, h := range b.handlers {
		h.OnPointerMove(p)
	}
}

func (b *PointerBus) Up() {
	for _, h := range b.handlers {
		h.OnPointerUp()
	}
}

func (b *PointerBus) indexOf(h PointerHandler) int {
	for i, existing := range b.handlers {
		if existing == h {
			return i
		}
	}
	return -1
}
