package main

import (
	"image"

	tea "github.com/charmbracelet/bubbletea"
)

func (m *model) handlePan(key string) {
	speed := m.getPanSpeed(key)
	switch key {
	case "h", "left", "H", "shift+left":
		m.panX -= speed
	case "l", "right", "L", "shift+right":
		m.panX += speed
	case "k", "up", "K", "shift+up":
		m.panY -= speed
	case "j", "down", "J", "shift+down":
		m.panY += speed
	}
}

func (m *model) getPanSpeed(key string) int {
	switch key {
	case "H", "L", "K", "J", "shift+left", "shift+right", "shift+up", "shift+down":
		return 4
	default:
		return 1
	}
}

func (m *model) worldCoords(screenX, screenY int) image.Point {
	return image.Pt(screenX+m.panX, screenY+m.panY)
}

// handleMouse routes a left press to an IO under the pointer first, then to
// the rects subscribed on the pointer bus. A press on empty canvas clears
// the selection.
func (m *model) handleMouse(msg tea.MouseMsg) {
	if msg.Y >= m.canvasHeight() && msg.Action != tea.MouseActionRelease {
		return
	}
	p := m.worldCoords(msg.X, msg.Y)

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button != tea.MouseButtonLeft {
			return
		}
		m.errorMessage = ""
		m.successMessage = ""
		if port := m.ioAt(p); port != nil {
			if port.IsSelected() {
				m.selection.Deselect(port)
			} else {
				m.selection.Select(port)
			}
			return
		}
		if !m.bus.Down(p) {
			m.selection.DeselectAll()
		}
	case tea.MouseActionMotion:
		m.bus.Move(p)
	case tea.MouseActionRelease:
		m.bus.Up()
	}
}
