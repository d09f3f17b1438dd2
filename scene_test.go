package main

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScenePlaceAndRemove(t *testing.T) {
	scene := NewScene()
	marker := NewMarker().At(5, 5).SetRadius(2)

	scene.Place(marker, LayerSelection)
	scene.Place(marker, LayerSelection)
	assert.Len(t, scene.At(LayerSelection), 1)
	assert.True(t, scene.Contains(marker, LayerSelection))
	assert.False(t, scene.Contains(marker, LayerBase))

	scene.Remove(marker, LayerSelection)
	assert.False(t, scene.Contains(marker, LayerSelection))
	assert.Empty(t, scene.Layers())

	assert.NotPanics(t, func() {
		scene.Remove(marker, LayerSelection)
		scene.Remove(marker, 42)
	})
}

func TestSceneLayersAscending(t *testing.T) {
	scene := NewScene()
	scene.Place(NewMarker(), 3)
	scene.Place(NewMarker(), LayerBase)
	scene.Place(NewMarker(), LayerSelection)

	assert.Equal(t, []int{0, 1, 3}, scene.Layers())
}

func TestSceneExtent(t *testing.T) {
	scene := NewScene()
	assert.True(t, scene.Extent().Empty())

	scene.Place(NewNode(nil, 0, 0, 10, 5, 0, 0, 1), LayerBase)
	scene.Place(NewMarker().At(20, 20).SetRadius(1), LayerSelection)
	assert.Equal(t, image.Rect(0, 0, 22, 22), scene.Extent())
}
