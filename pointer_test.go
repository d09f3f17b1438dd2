package main

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

type recordingHandler struct {
	name  string
	claim bool
	log   *[]string
	moves int
	ups   int
}

func (h *recordingHandler) OnPointerDown(p image.Point) bool {
	*h.log = append(*h.log, h.name)
	return h.claim
}

func (h *recordingHandler) OnPointerMove(p image.Point) { h.moves++ }

func (h *recordingHandler) OnPointerUp() { h.ups++ }

func TestPointerBusSubscribeIsIdempotent(t *testing.T) {
	bus := NewPointerBus()
	var log []string
	h := &recordingHandler{name: "a", log: &log}

	bus.Subscribe(h)
	bus.Subscribe(h)
	assert.Equal(t, 1, bus.Len())
	assert.True(t, bus.Subscribed(h))

	bus.Unsubscribe(h)
	bus.Unsubscribe(h)
	assert.Equal(t, 0, bus.Len())
	assert.False(t, bus.Subscribed(h))
}

func TestPointerBusDownStopsAtFirstClaim(t *testing.T) {
	bus := NewPointerBus()
	var log []string
	bottom := &recordingHandler{name: "bottom", claim: true, log: &log}
	middle := &recordingHandler{name: "middle", claim: true, log: &log}
	top := &recordingHandler{name: "top", log: &log}
	bus.Subscribe(bottom)
	bus.Subscribe(middle)
	bus.Subscribe(top)

	assert.True(t, bus.Down(image.Pt(0, 0)))
	assert.Equal(t, []string{"top", "middle"}, log)
}

func TestPointerBusDownUnclaimed(t *testing.T) {
	bus := NewPointerBus()
	var log []string
	bus.Subscribe(&recordingHandler{name: "a", log: &log})

	assert.False(t, bus.Down(image.Pt(0, 0)))
	assert.False(t, NewPointerBus().Down(image.Pt(0, 0)))
}

func TestPointerBusMoveAndUpReachEveryHandler(t *testing.T) {
	bus := NewPointerBus()
	var log []string
	a := &recordingHandler{name: "a", log: &log}
	b := &recordingHandler{name: "b", log: &log}
	bus.Subscribe(a)
	bus.Subscribe(b)

	bus.Move(image.Pt(1, 1))
	bus.Up()
	assert.Equal(t, 1, a.moves)
	assert.Equal(t, 1, b.moves)
	assert.Equal(t, 1, a.ups)
	assert.Equal(t, 1, b.ups)
}
