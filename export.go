package main

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"os"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
)

// Pixels per world unit in PNG exports.
const (
	cellWidth  = 8.0
	cellHeight = 16.0
	exportPad  = 2
)

// ExportPNG renders the whole scene, not just the visible viewport.
func (c *Canvas) ExportPNG(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := c.EncodePNG(file); err != nil {
		return fmt.Errorf("exporting %s: %w", filename, err)
	}
	return nil
}

func (c *Canvas) EncodePNG(w io.Writer) error {
	extent := c.scene.Extent()
	if extent.Empty() {
		return fmt.Errorf("nothing to export")
	}
	extent = extent.Inset(-exportPad)

	dc := gg.NewContext(int(float64(extent.Dx())*cellWidth), int(float64(extent.Dy())*cellHeight))
	dc.SetColor(color.White)
	dc.Clear()

	ttfFont, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return fmt.Errorf("failed to parse font: %w", err)
	}
	dc.SetFontFace(truetype.NewFace(ttfFont, &truetype.Options{
		Size:    12,
		DPI:     72,
		Hinting: font.HintingFull,
	}))

	origin := extent.Min
	for _, wire := range c.wiring.Wires() {
		drawWirePNG(dc, wire, origin)
	}
	for _, layer := range c.scene.Layers() {
		for _, d := range c.scene.At(layer) {
			switch d := d.(type) {
			case *Node:
				drawNodePNG(dc, d, origin)
			case *Marker:
				drawMarkerPNG(dc, d, origin)
			}
		}
	}

	return dc.EncodePNG(w)
}

func toPixels(p, origin image.Point) (float64, float64) {
	return float64(p.X-origin.X) * cellWidth, float64(p.Y-origin.Y) * cellHeight
}

func drawWirePNG(dc *gg.Context, wire Wire, origin image.Point) {
	x1, y1 := toPixels(wire.A.Circle().Center(), origin)
	x2, y2 := toPixels(wire.B.Circle().Center(), origin)
	dc.SetLineWidth(2)
	dc.SetHexColor(wireColor)
	dc.DrawLine(x1, y1, x2, y2)
	dc.Stroke()
}

func drawNodePNG(dc *gg.Context, node *Node, origin image.Point) {
	rect := node.Rect
	b := rect.Bounds()
	x, y := toPixels(b.Min, origin)
	width := float64(b.Dx()) * cellWidth
	height := float64(b.Dy()) * cellHeight

	lineWidth := float64(rect.LineWidth)
	if lineWidth < 1 {
		lineWidth = 1
	}
	dc.SetLineWidth(lineWidth)
	dc.SetHexColor(rect.Color)
	dc.DrawRectangle(x, y, width, height)
	dc.Stroke()

	if node.Title != "" {
		dc.SetColor(color.Black)
		dc.DrawString(node.Title, x+2*cellWidth, y+2*cellHeight-4)
	}

	for _, port := range node.IOs() {
		circle := port.Circle()
		cx, cy := toPixels(circle.Center(), origin)
		dc.SetHexColor("#ffaf00")
		dc.DrawCircle(cx, cy, float64(circle.Radius)*cellWidth/2+2)
		dc.Fill()
	}

	if rect.Debugging() {
		dc.SetColor(color.RGBA{R: 255, A: 255})
		for _, p := range rect.Corners() {
			cx, cy := toPixels(p, origin)
			dc.DrawCircle(cx, cy, float64(rect.CornerHitBox)/3+1)
			dc.Fill()
		}
		dc.DrawStringAnchored(rect.DebugLabel(), x+width/2, y-4, 0.5, 0)
	}
}

func drawMarkerPNG(dc *gg.Context, marker *Marker, origin image.Point) {
	cx, cy := toPixels(marker.Center(), origin)
	dc.SetLineWidth(2)
	dc.SetHexColor(marker.Color)
	dc.DrawCircle(cx, cy, float64(marker.Radius)*cellWidth)
	dc.Stroke()
}

// ExportVisualTXT writes the viewport exactly as it appears, without
// styling.
func (c *Canvas) ExportVisualTXT(filename string, width, height, panX, panY int) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	for _, line := range c.RenderPlain(width, height, panX, panY) {
		if _, err := fmt.Fprintln(file, line); err != nil {
			return fmt.Errorf("exporting %s: %w", filename, err)
		}
	}
	return nil
}
