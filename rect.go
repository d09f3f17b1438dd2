package main

import (
	"fmt"
	"image"
)

// Rect is a rectangle that can be dragged by its body or resized by any of
// its four corners while hit testing is enabled.
type Rect struct {
	X         int
	Y         int
	Width     int
	Height    int
	LineWidth int
	Color     string

	// CornerHitBox is the distance from a corner, inside the rect, that
	// starts a resize instead of a drag.
	CornerHitBox int

	bus             *PointerBus
	debugging       bool
	isDragging      bool
	isResizing      bool
	resizeDirection ResizeDirection
	dragOffset      image.Point
}

func NewRect(bus *PointerBus) *Rect {
	return &Rect{
		Width:        defaultRectWidth,
		Height:       defaultRectHeight,
		LineWidth:    1,
		Color:        defaultRectColor,
		CornerHitBox: defaultCornerHitBox,
		bus:          bus,
	}
}

func (r *Rect) At(x, y int) *Rect {
	r.X = x
	r.Y = y
	return r
}

func (r *Rect) Size(width, height int) *Rect {
	r.Width = width
	r.Height = height
	return r
}

// SetDebugHitTesting subscribes the rect to pointer events on its bus, or
// unsubscribes it. The rect itself is the handler, so toggling never leaks
// subscriptions.
func (r *Rect) SetDebugHitTesting(enabled bool) {
	r.debugging = enabled
	if r.bus == nil {
		return
	}
	if enabled {
		r.bus.Subscribe(r)
	} else {
		r.bus.Unsubscribe(r)
		r.OnPointerUp()
	}
}

func (r *Rect) Debugging() bool {
	return r.debugging
}

func (r *Rect) Contains(p image.Point) bool {
	return p.X >= r.X && p.X <= r.X+r.Width && p.Y >= r.Y && p.Y <= r.Y+r.Height
}

func (r *Rect) OnPointerDown(p image.Point) bool {
	if !r.Contains(p) {
		return false
	}

	margin := r.CornerHitBox
	nearLeft := p.X < r.X+margin
	nearRight := p.X > r.X+r.Width-margin
	nearTop := p.Y < r.Y+margin
	nearBottom := p.Y > r.Y+r.Height-margin

	switch {
	case nearLeft && nearTop:
		r.startResize(ResizeTopLeft)
	case nearRight && nearTop:
		r.startResize(ResizeTopRight)
	case nearLeft && nearBottom:
		r.startResize(ResizeBottomLeft)
	case nearRight && nearBottom:
		r.startResize(ResizeBottomRight)
	default:
		r.isDragging = true
		r.dragOffset = image.Pt(p.X-r.X, p.Y-r.Y)
	}
	return true
}

func (r *Rect) startResize(dir ResizeDirection) {
	r.isResizing = true
	r.resizeDirection = dir
}

func (r *Rect) OnPointerMove(p image.Point) {
	if r.isResizing {
		r.resize(p)
	} else if r.isDragging {
		r.X = p.X - r.dragOffset.X
		r.Y = p.Y - r.dragOffset.Y
	}
}

// OnPointerUp ends any gesture. A rect inverted by dragging a corner past
// its opposite corner is normalized here.
func (r *Rect) OnPointerUp() {
	r.isDragging = false
	r.isResizing = false
	r.resizeDirection = ResizeNone
	r.normalize()
}

func (r *Rect) resize(p image.Point) {
	switch r.resizeDirection {
	case ResizeTopLeft:
		r.Width += r.X - p.X
		r.Height += r.Y - p.Y
		r.X = p.X
		r.Y = p.Y
	case ResizeTopRight:
		r.Width = p.X - r.X
		r.Height += r.Y - p.Y
		r.Y = p.Y
	case ResizeBottomLeft:
		r.Width += r.X - p.X
		r.Height = p.Y - r.Y
		r.X = p.X
	case ResizeBottomRight:
		r.Width = p.X - r.X
		r.Height = p.Y - r.Y
	}
}

func (r *Rect) normalize() {
	if r.Width < 0 {
		r.X += r.Width
		r.Width = -r.Width
	}
	if r.Height < 0 {
		r.Y += r.Height
		r.Height = -r.Height
	}
}

func (r *Rect) IsDragging() bool {
	return r.isDragging
}

func (r *Rect) IsResizing() bool {
	return r.isResizing
}

func (r *Rect) ResizeDirection() ResizeDirection {
	return r.resizeDirection
}

// Bounds returns the rect as a canonical image.Rectangle, which is never
// inverted even mid-resize.
func (r *Rect) Bounds() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)
}

// Corners returns top-left, top-right, bottom-left and bottom-right.
func (r *Rect) Corners() [4]image.Point {
	return [4]image.Point{
		image.Pt(r.X, r.Y),
		image.Pt(r.X+r.Width, r.Y),
		image.Pt(r.X, r.Y+r.Height),
		image.Pt(r.X+r.Width, r.Y+r.Height),
	}
}

func (r *Rect) DebugLabel() string {
	return fmt.Sprintf("(%d, %d) - %dx%d", r.X, r.Y, r.Width, r.Height)
}
