package main

import "go.uber.org/zap"

// Registry records wires between endpoints.
type Registry interface {
	AddWiring(a, b Endpoint) []Wire
	ExistsWiring(e Endpoint) bool
	RemoveWiring(a, b Endpoint)
}

// Surface is a z-ordered place/remove surface for markers.
type Surface interface {
	Place(d Drawable, layer int)
	Remove(d Drawable, layer int)
}

// Selection holds up to two picked endpoints. Picking a second endpoint
// wires the pair and clears the selection within the same call, so callers
// only ever see zero or one selected endpoint.
type Selection struct {
	selected []Endpoint
	registry Registry
	surface  Surface
	logger   *zap.Logger

	// Margin is added to an endpoint's radius to size its marker.
	Margin int
}

func NewSelection(registry Registry, surface Surface, logger *zap.Logger) *Selection {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Selection{
		selected: make([]Endpoint, 0, maxSelected),
		registry: registry,
		surface:  surface,
		logger:   logger,
		Margin:   defaultSelectionMargin,
	}
}

// Select adds e. With two already held, the most recent one is evicted
// first and the older one is kept.
func (s *Selection) Select(e Endpoint) {
	if s.contains(e) {
		return
	}

	if len(s.selected) >= maxSelected {
		s.unmark(s.selected[len(s.selected)-1])
		s.selected = s.selected[:len(s.selected)-1]
	}

	s.selected = append(s.selected, e)
	e.SetSelected(true)
	circle := e.Circle()
	e.SelectionMarker().At(circle.X, circle.Y).SetRadius(circle.Radius + s.Margin)
	s.surface.Place(e.SelectionMarker(), LayerSelection)
	s.logger.Debug("endpoint selected",
		zap.String("id", e.ID()),
		zap.Int("selected", len(s.selected)))

	if len(s.selected) == maxSelected {
		s.connect()
	}
}

// Deselect unmarks e and drops it from the selection if it is there.
func (s *Selection) Deselect(e Endpoint) {
	s.unmark(e)
	kept := s.selected[:0]
	for _, existing := range s.selected {
		if existing != e {
			kept = append(kept, existing)
		}
	}
	s.selected = kept
}

func (s *Selection) DeselectAll() {
	for _, e := range s.selected {
		s.unmark(e)
	}
	s.selected = s.selected[:0]
}

func (s *Selection) connect() {
	from, to := s.selected[0], s.selected[1]
	from.Connect(to)
	s.registry.AddWiring(from, to)
	s.logger.Info("endpoints connected",
		zap.String("from", from.ID()),
		zap.String("to", to.ID()))
	s.DeselectAll()
}

func (s *Selection) unmark(e Endpoint) {
	e.SetSelected(false)
	s.surface.Remove(e.SelectionMarker(), LayerSelection)
}

func (s *Selection) contains(e Endpoint) bool {
	for _, existing := range s.selected {
		if existing == e {
			return true
		}
	}
	return false
}

// Selected returns a copy of the current selection in selection order.
func (s *Selection) Selected() []Endpoint {
	selected := make([]Endpoint, len(s.selected))
	copy(selected, s.selected)
	return selected
}

func (s *Selection) Len() int {
	return len(s.selected)
}
