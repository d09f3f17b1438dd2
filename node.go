package main

import (
	"image"

	"github.com/google/uuid"
)

// Node is a diagram node: a rect with inputs on its left edge and outputs
// on its right edge.
type Node struct {
	ID      string
	Title   string
	Rect    *Rect
	Inputs  []*IO
	Outputs []*IO
}

func NewNode(bus *PointerBus, x, y, width, height, inputs, outputs, ioRadius int) *Node {
	node := &Node{
		ID:   uuid.NewString(),
		Rect: NewRect(bus).At(x, y).Size(width, height),
	}
	for i := 0; i < inputs; i++ {
		node.Inputs = append(node.Inputs, newIO(node, IOInput, i, ioRadius))
	}
	for i := 0; i < outputs; i++ {
		node.Outputs = append(node.Outputs, newIO(node, IOOutput, i, ioRadius))
	}
	return node
}

func (n *Node) Bounds() image.Rectangle {
	return n.Rect.Bounds()
}

func (n *Node) SetEditable(editable bool) {
	n.Rect.SetDebugHitTesting(editable)
}

// IOs returns inputs followed by outputs.
func (n *Node) IOs() []*IO {
	ios := make([]*IO, 0, len(n.Inputs)+len(n.Outputs))
	ios = append(ios, n.Inputs...)
	return append(ios, n.Outputs...)
}

// IOAt returns the IO whose circle contains p, or nil.
func (n *Node) IOAt(p image.Point) *IO {
	for _, port := range n.IOs() {
		if port.Circle().Contains(p) {
			return port
		}
	}
	return nil
}

// ioCenter spaces the IOs of one kind evenly along their edge.
func (n *Node) ioCenter(kind IOKind, index int) image.Point {
	bounds := n.Bounds()
	count := len(n.Inputs)
	x := bounds.Min.X
	if kind == IOOutput {
		count = len(n.Outputs)
		x = bounds.Max.X
	}
	if count == 0 {
		count = 1
	}
	y := bounds.Min.Y + (index+1)*bounds.Dy()/(count+1)
	return image.Pt(x, y)
}
