package main

import "go.uber.org/zap"

// Wire is an unordered pair of wired endpoints.
type Wire struct {
	A Endpoint
	B Endpoint
}

func (w Wire) Has(e Endpoint) bool {
	return w.A == e || w.B == e
}

func (w Wire) Joins(a, b Endpoint) bool {
	return (w.A == a && w.B == b) || (w.A == b && w.B == a)
}

// Other returns the end of w that is not e.
func (w Wire) Other(e Endpoint) Endpoint {
	if w.A == e {
		return w.B
	}
	return w.A
}

// Wiring is the connection registry. Every endpoint belongs to at most one
// wire: adding a wire replaces whatever either end was wired to before.
type Wiring struct {
	wires  []Wire
	logger *zap.Logger
}

func NewWiring(logger *zap.Logger) *Wiring {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Wiring{wires: make([]Wire, 0), logger: logger}
}

// AddWiring records a wire between a and b and returns the wires it
// displaced. Self-wires and repeats of an existing pair change nothing.
func (w *Wiring) AddWiring(a, b Endpoint) []Wire {
	if a == nil || b == nil || a == b {
		return nil
	}
	if existing, ok := w.WireFor(a); ok && existing.Joins(a, b) {
		return nil
	}

	var displaced []Wire
	kept := w.wires[:0]
	for _, wire := range w.wires {
		if wire.Has(a) || wire.Has(b) {
			displaced = append(displaced, wire)
			continue
		}
		kept = append(kept, wire)
	}
	w.wires = kept

	for _, wire := range displaced {
		wire.A.Disconnect(wire.B)
		w.logger.Debug("wire replaced",
			zap.String("from", wire.A.ID()),
			zap.String("to", wire.B.ID()))
	}

	w.wires = append(w.wires, Wire{A: a, B: b})
	w.logger.Debug("wire added",
		zap.String("from", a.ID()),
		zap.String("to", b.ID()),
		zap.Int("displaced", len(displaced)))
	return displaced
}

func (w *Wiring) ExistsWiring(e Endpoint) bool {
	_, ok := w.WireFor(e)
	return ok
}

// RemoveWiring drops the wire between a and b in either order, if any.
func (w *Wiring) RemoveWiring(a, b Endpoint) {
	for i, wire := range w.wires {
		if wire.Joins(a, b) {
			w.wires = append(w.wires[:i], w.wires[i+1:]...)
			a.Disconnect(b)
			w.logger.Debug("wire removed",
				zap.String("from", a.ID()),
				zap.String("to", b.ID()))
			return
		}
	}
}

func (w *Wiring) WireFor(e Endpoint) (Wire, bool) {
	for _, wire := range w.wires {
		if wire.Has(e) {
			return wire, true
		}
	}
	return Wire{}, false
}

// Peer returns the endpoint wired to e, or nil.
func (w *Wiring) Peer(e Endpoint) Endpoint {
	if wire, ok := w.WireFor(e); ok {
		return wire.Other(e)
	}
	return nil
}

func (w *Wiring) Wires() []Wire {
	wires := make([]Wire, len(w.wires))
	copy(wires, w.wires)
	return wires
}

func (w *Wiring) Len() int {
	return len(w.wires)
}
