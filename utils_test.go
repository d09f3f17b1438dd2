package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWireListText(t *testing.T) {
	m := initialModel(defaultConfig(), nil, 3)
	first, second, third := m.nodes[0], m.nodes[1], m.nodes[2]

	m.selection.Select(first.Outputs[0])
	m.selection.Select(second.Inputs[1])
	m.selection.Select(second.Outputs[0])
	m.selection.Select(third.Inputs[0])

	assert.Equal(t, "Node 1.out0 -- Node 2.in1\nNode 2.out0 -- Node 3.in0\n", wireListText(m.wiring))
}

func TestEndpointNameFallsBackToID(t *testing.T) {
	e := newFakeEndpoint("fake", 0, 0)
	assert.Equal(t, "fake", endpointName(e))
}
