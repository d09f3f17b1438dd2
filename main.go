package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", "", "path to config file (default ~/"+configFileName+")")
	nodes := flag.Int("nodes", 3, "number of nodes to start with")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fail(err)
	}
	logger, err := newLogger(cfg)
	if err != nil {
		fail(err)
	}
	defer logger.Sync()

	p := tea.NewProgram(
		initialModel(cfg, logger, *nodes),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)
	if _, err := p.Run(); err != nil {
		logger.Error("program exited", zap.Error(err))
		fail(err)
	}
}

func fail(err error) {
	color.New(color.FgRed, color.Bold).Fprintf(os.Stderr, "wirebench: %v\n", err)
	os.Exit(1)
}

var (
	statusStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#bcbcbc"))
	modeStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#000000")).Background(lipgloss.Color("#87af87"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#ff5f5f"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#87d787"))
)

func (m model) Init() tea.Cmd {
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.MouseMsg:
		m.handleMouse(msg)
		return m, nil

	case tea.KeyMsg:
		if m.help {
			m.help = false
			return m, nil
		}
		switch key := msg.String(); key {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "?":
			m.help = true
		case "esc":
			m.selection.DeselectAll()
		case "e":
			if m.mode == ModeEdit {
				m.setMode(ModeNormal)
			} else {
				m.setMode(ModeEdit)
			}
		case "n":
			m.addNode(m.panX+m.width/2-nodeWidth/2, m.panY+m.canvasHeight()/2-nodeHeight/2)
		case "p":
			m.export(ExportPNG)
		case "t":
			m.export(ExportVisualTXT)
		case "y":
			if err := writeClipboardText(wireListText(m.wiring)); err != nil {
				m.setError(err)
			} else {
				m.successMessage = fmt.Sprintf("Copied %d wires", m.wiring.Len())
			}
		default:
			m.handlePan(key)
		}
		return m, nil
	}
	return m, nil
}

func (m *model) export(format ExportFormat) {
	m.exportCount++
	ext := "png"
	if format == ExportVisualTXT {
		ext = "txt"
	}
	path, err := m.config.GetExportPath(fmt.Sprintf("wirebench-%d.%s", m.exportCount, ext))
	if err != nil {
		m.setError(err)
		return
	}

	if format == ExportPNG {
		err = m.canvas.ExportPNG(path)
	} else {
		err = m.canvas.ExportVisualTXT(path, m.width, m.canvasHeight(), m.panX, m.panY)
	}
	if err != nil {
		m.setError(err)
		return
	}
	m.successMessage = "Exported " + path
	m.logger.Info("exported", zap.String("path", path))
}

func (m *model) setError(err error) {
	m.errorMessage = err.Error()
	m.successMessage = ""
	m.logger.Warn("command failed", zap.Error(err))
}

func (m model) View() string {
	if m.help {
		return m.helpView()
	}
	lines := m.canvas.Render(m.width, m.canvasHeight(), m.panX, m.panY)
	return strings.Join(lines, "\n") + "\n" + m.statusLine()
}

func (m model) statusLine() string {
	status := modeStyle.Render(" "+m.modeString()+" ") + " " +
		statusStyle.Render(fmt.Sprintf("selected %d  wires %d  pan %d,%d  ? help",
			m.selection.Len(), m.wiring.Len(), m.panX, m.panY))
	switch {
	case m.errorMessage != "":
		status += "  " + errorStyle.Render(m.errorMessage)
	case m.successMessage != "":
		status += "  " + successStyle.Render(m.successMessage)
	}
	return status
}

func (m model) modeString() string {
	switch m.mode {
	case ModeEdit:
		return "EDIT"
	default:
		return "WIRE"
	}
}

func (m model) helpView() string {
	return strings.Join([]string{
		"wirebench",
		"",
		"  click an IO       select it; a second IO wires the pair",
		"  click empty space clear the selection",
		"  drag a node       move it (edit mode)",
		"  drag a corner     resize it (edit mode)",
		"",
		"  e      toggle edit mode",
		"  n      add a node",
		"  esc    clear the selection",
		"  hjkl   pan (shift for faster)",
		"  p / t  export PNG / text",
		"  y      copy the wire list",
		"  q      quit",
		"",
		"press any key to return",
	}, "\n")
}
