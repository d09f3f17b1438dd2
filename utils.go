package main

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
)

// endpointName describes e as "<node title>.<io label>" when it is an IO.
func endpointName(e Endpoint) string {
	if port, ok := e.(*IO); ok && port.Node() != nil {
		return port.Node().Title + "." + port.Label
	}
	return e.ID()
}

// wireListText lists one wire per line, in the order they were made.
func wireListText(wiring *Wiring) string {
	var sb strings.Builder
	for _, wire := range wiring.Wires() {
		fmt.Fprintf(&sb, "%s -- %s\n", endpointName(wire.A), endpointName(wire.B))
	}
	return sb.String()
}

func writeClipboardText(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("writing clipboard: %w", err)
	}
	return nil
}
