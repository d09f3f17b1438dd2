package main

type Mode int

const (
	ModeNormal Mode = iota
	ModeEdit
)

type ResizeDirection int

const (
	ResizeNone ResizeDirection = iota
	ResizeTopLeft
	ResizeTopRight
	ResizeBottomLeft
	ResizeBottomRight
)

func (d ResizeDirection) String() string {
	switch d {
	case ResizeTopLeft:
		return "top-left"
	case ResizeTopRight:
		return "top-right"
	case ResizeBottomLeft:
		return "bottom-left"
	case ResizeBottomRight:
		return "bottom-right"
	default:
		return "none"
	}
}

type ExportFormat int

const (
	ExportPNG ExportFormat = iota
	ExportVisualTXT
)

// Scene layers, drawn in ascending order.
const (
	LayerBase      = 0
	LayerSelection = 1
)

const (
	defaultRectWidth       = 100
	defaultRectHeight      = 100
	defaultCornerHitBox    = 10
	defaultSelectionMargin = 5
	defaultIORadius        = 1
	defaultRectColor       = "#000000"
	selectionColor         = "#ff5f87"
	wireColor              = "#5fafff"
	maxSelected            = 2
)
