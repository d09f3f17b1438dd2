package main

import (
	"image"
	"sort"
)

// Drawable is anything the scene can hold. Bounds is used for export
// extents; the renderers switch on the concrete type.
type Drawable interface {
	Bounds() image.Rectangle
}

// Scene is a z-ordered render surface. Higher layers draw on top.
type Scene struct {
	layers map[int][]Drawable
}

func NewScene() *Scene {
	return &Scene{layers: make(map[int][]Drawable)}
}

// Place adds d to layer. A drawable already on the layer is not duplicated.
func (s *Scene) Place(d Drawable, layer int) {
	if s.Contains(d, layer) {
		return
	}
	s.layers[layer] = append(s.layers[layer], d)
}

// Remove takes d off layer. Removing an absent drawable is a no-op.
func (s *Scene) Remove(d Drawable, layer int) {
	items := s.layers[layer]
	for i, existing := range items {
		if existing == d {
			s.layers[layer] = append(items[:i], items[i+1:]...)
			break
		}
	}
	if len(s.layers[layer]) == 0 {
		delete(s.layers, layer)
	}
}

func (s *Scene) Contains(d Drawable, layer int) bool {
	for _, existing := range s.layers[layer] {
		if existing == d {
			return true
		}
	}
	return false
}

func (s *Scene) Layers() []int {
	layers := make([]int, 0, len(s.layers))
	for layer := range s.layers {
		layers = append(layers, layer)
	}
	sort.Ints(layers)
	return layers
}

func (s *Scene) At(layer int) []Drawable {
	return s.layers[layer]
}

// Extent is the union of the bounds of everything on the scene.
func (s *Scene) Extent() image.Rectangle {
	var extent image.Rectangle
	for _, items := range s.layers {
		for _, d := range items {
			extent = extent.Union(d.Bounds())
		}
	}
	return extent
}
