package main

import (
	"fmt"
	"image"

	"go.uber.org/zap"
)

const (
	nodeWidth   = 16
	nodeHeight  = 6
	nodeSpacing = 8
	nodeInputs  = 2
	nodeOutputs = 1
)

type model struct {
	width          int
	height         int
	panX           int
	panY           int
	mode           Mode
	help           bool
	config         *Config
	logger         *zap.Logger
	bus            *PointerBus
	scene          *Scene
	wiring         *Wiring
	selection      *Selection
	canvas         *Canvas
	nodes          []*Node
	exportCount    int
	errorMessage   string
	successMessage string
}

func initialModel(cfg *Config, logger *zap.Logger, nodes int) model {
	if logger == nil {
		logger = zap.NewNop()
	}
	scene := NewScene()
	wiring := NewWiring(logger)
	selection := NewSelection(wiring, scene, logger)
	selection.Margin = cfg.SelectionMargin

	m := model{
		config:    cfg,
		logger:    logger,
		bus:       NewPointerBus(),
		scene:     scene,
		wiring:    wiring,
		selection: selection,
		canvas:    NewCanvas(scene, wiring, cfg.NodeColor),
		mode:      ModeNormal,
	}
	if cfg.StartEditable {
		m.mode = ModeEdit
	}

	for i := 0; i < nodes; i++ {
		m.addNode(2+i*(nodeWidth+nodeSpacing), 3)
	}
	return m
}

// addNode places a new node with its top-left corner at world (x, y).
func (m *model) addNode(x, y int) *Node {
	node := NewNode(m.bus, x, y, nodeWidth, nodeHeight, nodeInputs, nodeOutputs, m.config.IORadius)
	node.Title = fmt.Sprintf("Node %d", len(m.nodes)+1)
	node.Rect.CornerHitBox = m.config.CornerHitBox
	node.Rect.Color = m.config.NodeColor
	for i, port := range node.Inputs {
		port.Label = fmt.Sprintf("in%d", i)
	}
	for i, port := range node.Outputs {
		port.Label = fmt.Sprintf("out%d", i)
	}
	node.SetEditable(m.mode == ModeEdit)

	m.nodes = append(m.nodes, node)
	m.scene.Place(node, LayerBase)
	m.logger.Debug("node added", zap.String("id", node.ID), zap.Int("x", x), zap.Int("y", y))
	return node
}

func (m *model) setMode(mode Mode) {
	m.mode = mode
	for _, node := range m.nodes {
		node.SetEditable(mode == ModeEdit)
	}
}

// ioAt returns the topmost IO under world point p.
func (m *model) ioAt(p image.Point) *IO {
	for i := len(m.nodes) - 1; i >= 0; i-- {
		if port := m.nodes[i].IOAt(p); port != nil {
			return port
		}
	}
	return nil
}

// canvasHeight leaves room for the status line.
func (m *model) canvasHeight() int {
	if m.height-1 < 1 {
		return 1
	}
	return m.height - 1
}
