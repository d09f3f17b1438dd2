package main

import (
	"image"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type cellKind int

const (
	cellEmpty cellKind = iota
	cellBorder
	cellActiveBorder
	cellTitle
	cellWire
	cellIO
	cellMarker
	cellDebug
)

type cell struct {
	r    rune
	kind cellKind
}

// Canvas draws a scene and its wires into terminal cells.
type Canvas struct {
	scene  *Scene
	wiring *Wiring
	styles map[cellKind]lipgloss.Style
}

func NewCanvas(scene *Scene, wiring *Wiring, nodeColor string) *Canvas {
	return &Canvas{
		scene:  scene,
		wiring: wiring,
		styles: map[cellKind]lipgloss.Style{
			cellBorder:       lipgloss.NewStyle().Foreground(lipgloss.Color(nodeColor)),
			cellActiveBorder: lipgloss.NewStyle().Foreground(lipgloss.Color(nodeColor)).Bold(true),
			cellTitle:        lipgloss.NewStyle().Bold(true),
			cellWire:         lipgloss.NewStyle().Foreground(lipgloss.Color(wireColor)),
			cellIO:           lipgloss.NewStyle().Foreground(lipgloss.Color("#ffaf00")),
			cellMarker:       lipgloss.NewStyle().Foreground(lipgloss.Color(selectionColor)).Bold(true),
			cellDebug:        lipgloss.NewStyle().Foreground(lipgloss.Color("#ff0000")),
		},
	}
}

// Render returns styled lines for a width x height viewport whose top-left
// corner is the world point (panX, panY).
func (c *Canvas) Render(width, height, panX, panY int) []string {
	grid := c.draw(width, height, panX, panY)
	lines := make([]string, len(grid))
	for y, row := range grid {
		lines[y] = c.styleRow(row)
	}
	return lines
}

// RenderPlain is Render without styling.
func (c *Canvas) RenderPlain(width, height, panX, panY int) []string {
	grid := c.draw(width, height, panX, panY)
	lines := make([]string, len(grid))
	for y, row := range grid {
		runes := make([]rune, len(row))
		for x, cl := range row {
			runes[x] = cl.r
		}
		lines[y] = strings.TrimRight(string(runes), " ")
	}
	return lines
}

func (c *Canvas) styleRow(row []cell) string {
	var sb strings.Builder
	start := 0
	for x := 1; x <= len(row); x++ {
		if x < len(row) && row[x].kind == row[start].kind {
			continue
		}
		run := make([]rune, 0, x-start)
		for _, cl := range row[start:x] {
			run = append(run, cl.r)
		}
		if style, ok := c.styles[row[start].kind]; ok {
			sb.WriteString(style.Render(string(run)))
		} else {
			sb.WriteString(string(run))
		}
		start = x
	}
	return sb.String()
}

func (c *Canvas) draw(width, height, panX, panY int) [][]cell {
	if width < 1 {
		width = 1
	}
	if height < 1 {
		height = 1
	}
	grid := make([][]cell, height)
	for y := range grid {
		grid[y] = make([]cell, width)
		for x := range grid[y] {
			grid[y][x] = cell{r: ' '}
		}
	}
	pan := image.Pt(panX, panY)

	for _, wire := range c.wiring.Wires() {
		from := wire.A.Circle().Center().Sub(pan)
		to := wire.B.Circle().Center().Sub(pan)
		drawLine(grid, from, to, cell{r: '.', kind: cellWire})
	}

	for _, layer := range c.scene.Layers() {
		for _, d := range c.scene.At(layer) {
			switch d := d.(type) {
			case *Node:
				drawNode(grid, d, pan)
			case *Marker:
				drawRing(grid, d.Circle, pan, cell{r: '*', kind: cellMarker})
			}
		}
	}
	return grid
}

func drawNode(grid [][]cell, node *Node, pan image.Point) {
	rect := node.Rect
	b := rect.Bounds().Sub(pan)

	corner, horizontal, vertical, kind := '+', '-', '|', cellBorder
	if rect.IsDragging() || rect.IsResizing() {
		corner, horizontal, vertical, kind = '#', '#', '#', cellActiveBorder
	}

	for x := b.Min.X; x <= b.Max.X; x++ {
		r := horizontal
		if x == b.Min.X || x == b.Max.X {
			r = corner
		}
		setCell(grid, x, b.Min.Y, cell{r: r, kind: kind})
		setCell(grid, x, b.Max.Y, cell{r: r, kind: kind})
	}
	for y := b.Min.Y + 1; y < b.Max.Y; y++ {
		setCell(grid, b.Min.X, y, cell{r: vertical, kind: kind})
		setCell(grid, b.Max.X, y, cell{r: vertical, kind: kind})
		for x := b.Min.X + 1; x < b.Max.X; x++ {
			setCell(grid, x, y, cell{r: ' '})
		}
	}

	title := []rune(node.Title)
	if maxLen := b.Dx() - 3; len(title) > maxLen {
		if maxLen < 0 {
			maxLen = 0
		}
		title = title[:maxLen]
	}
	for i, r := range title {
		setCell(grid, b.Min.X+2+i, b.Min.Y+1, cell{r: r, kind: cellTitle})
	}

	for _, port := range node.IOs() {
		center := port.Circle().Center().Sub(pan)
		setCell(grid, center.X, center.Y, cell{r: 'o', kind: cellIO})
	}

	if rect.Debugging() {
		for _, p := range rect.Corners() {
			p = p.Sub(pan)
			setCell(grid, p.X, p.Y, cell{r: '•', kind: cellDebug})
		}
		label := []rune(rect.DebugLabel())
		start := b.Min.X + b.Dx()/2 - len(label)/2
		for i, r := range label {
			setCell(grid, start+i, b.Min.Y-1, cell{r: r, kind: cellDebug})
		}
	}
}

func drawRing(grid [][]cell, circle Circle, pan image.Point, cl cell) {
	center := circle.Center().Sub(pan)
	radius := float64(circle.Radius)
	for dy := -circle.Radius; dy <= circle.Radius; dy++ {
		for dx := -circle.Radius; dx <= circle.Radius; dx++ {
			d := math.Hypot(float64(dx), float64(dy))
			if math.Abs(d-radius) < 0.5 {
				setCell(grid, center.X+dx, center.Y+dy, cl)
			}
		}
	}
}

// drawLine is Bresenham's line between two cells, inclusive.
func drawLine(grid [][]cell, from, to image.Point, cl cell) {
	dx := abs(to.X - from.X)
	dy := -abs(to.Y - from.Y)
	sx, sy := 1, 1
	if from.X > to.X {
		sx = -1
	}
	if from.Y > to.Y {
		sy = -1
	}
	err := dx + dy
	x, y := from.X, from.Y
	for {
		setCell(grid, x, y, cl)
		if x == to.X && y == to.Y {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

func setCell(grid [][]cell, x, y int, cl cell) {
	if y < 0 || y >= len(grid) || x < 0 || x >= len(grid[y]) {
		return
	}
	grid[y][x] = cl
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
