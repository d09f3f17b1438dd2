package main

import (
	"image"

	"github.com/google/uuid"
)

type Circle struct {
	X      int
	Y      int
	Radius int
}

func (c Circle) Center() image.Point {
	return image.Pt(c.X, c.Y)
}

func (c Circle) Contains(p image.Point) bool {
	dx, dy := p.X-c.X, p.Y-c.Y
	return dx*dx+dy*dy <= c.Radius*c.Radius
}

func (c Circle) Bounds() image.Rectangle {
	return image.Rect(c.X-c.Radius, c.Y-c.Radius, c.X+c.Radius+1, c.Y+c.Radius+1)
}

// Marker is a movable ring drawn around a selected endpoint.
type Marker struct {
	Circle
	Color string
}

func NewMarker() *Marker {
	return &Marker{Color: selectionColor}
}

func (m *Marker) At(x, y int) *Marker {
	m.X = x
	m.Y = y
	return m
}

func (m *Marker) SetRadius(radius int) *Marker {
	m.Radius = radius
	return m
}

// Endpoint is a connectable point that can be selected and wired.
type Endpoint interface {
	ID() string
	Circle() Circle
	Connect(other Endpoint)
	Disconnect(other Endpoint)
	IsSelected() bool
	SetSelected(selected bool)
	SelectionMarker() *Marker
}

type IOKind int

const (
	IOInput IOKind = iota
	IOOutput
)

// IO is an endpoint on the edge of a node.
type IO struct {
	id          string
	Kind        IOKind
	Label       string
	node        *Node
	index       int
	radius      int
	selected    bool
	marker      *Marker
	connections []Endpoint
}

func newIO(node *Node, kind IOKind, index, radius int) *IO {
	return &IO{
		id:     uuid.NewString(),
		Kind:   kind,
		node:   node,
		index:  index,
		radius: radius,
		marker: NewMarker(),
	}
}

func (io *IO) ID() string {
	return io.id
}

func (io *IO) Node() *Node {
	return io.node
}

// Circle is derived from the owning node's current bounds, so it follows
// the node while it is dragged or resized.
func (io *IO) Circle() Circle {
	center := io.node.ioCenter(io.Kind, io.index)
	return Circle{X: center.X, Y: center.Y, Radius: io.radius}
}

func (io *IO) Bounds() image.Rectangle {
	return io.Circle().Bounds()
}

func (io *IO) Connect(other Endpoint) {
	if other == nil || other == Endpoint(io) || io.connectedTo(other) {
		return
	}
	io.connections = append(io.connections, other)
	other.Connect(io)
}

func (io *IO) Disconnect(other Endpoint) {
	for i, existing := range io.connections {
		if existing == other {
			io.connections = append(io.connections[:i], io.connections[i+1:]...)
			other.Disconnect(io)
			return
		}
	}
}

func (io *IO) Connections() []Endpoint {
	return io.connections
}

func (io *IO) connectedTo(other Endpoint) bool {
	for _, existing := range io.connections {
		if existing == other {
			return true
		}
	}
	return false
}

func (io *IO) IsSelected() bool {
	return io.selected
}

func (io *IO) SetSelected(selected bool) {
	io.selected = selected
}

func (io *IO) SelectionMarker() *Marker {
	return io.marker
}
