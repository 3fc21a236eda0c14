package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/ffnet/network"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	tabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")).
			Padding(0, 1)

	activeTabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	offsetStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#87CEEB"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type browserState int

const (
	stateBrowse browserState = iota
	stateJump
)

type browserModel struct {
	err   error
	net   *network.Network
	jump  textinput.Model
	layer int
	node  int
	state browserState
}

func newBrowserModel(net *network.Network) *browserModel {
	ti := textinput.New()
	ti.Prompt = "node: "
	ti.Placeholder = "index"
	ti.Width = 10
	return &browserModel{net: net, jump: ti, layer: int(network.Hidden)}
}

func runInteractive(net *network.Network) error {
	p := tea.NewProgram(newBrowserModel(net))
	_, err := p.Run()
	return err
}

func (m *browserModel) Init() tea.Cmd {
	return nil
}

func (m *browserModel) current() (network.Layer, error) {
	return m.net.Layer(network.LayerTypes[m.layer])
}

func (m *browserModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.state == stateJump {
		switch key.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			m.state = stateBrowse
			m.jump.Blur()
			return m, nil
		case "enter":
			m.state = stateBrowse
			m.jump.Blur()
			m.jumpTo(m.jump.Value())
			m.jump.SetValue("")
			return m, nil
		}
		var cmd tea.Cmd
		m.jump, cmd = m.jump.Update(msg)
		return m, cmd
	}

	switch key.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "left", "h":
		if m.layer > 0 {
			m.layer--
			m.node = 0
			m.err = nil
		}

	case "right", "l":
		if m.layer < len(network.LayerTypes)-1 {
			m.layer++
			m.node = 0
			m.err = nil
		}

	case "up", "k":
		if m.node > 0 {
			m.node--
		}

	case "down", "j":
		if l, err := m.current(); err == nil && m.node < l.NodeCount()-1 {
			m.node++
		}

	case "/":
		m.state = stateJump
		m.err = nil
		return m, m.jump.Focus()
	}

	return m, nil
}

func (m *browserModel) jumpTo(value string) {
	idx, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		m.err = fmt.Errorf("invalid index %q", value)
		return
	}
	l, err := m.current()
	if err != nil {
		m.err = err
		return
	}
	if _, err := l.Node(idx); err != nil {
		m.err = err
		return
	}
	m.node = idx
	m.err = nil
}

func (m *browserModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Network"))
	fmt.Fprintf(&b, " %s  %d bytes\n\n", m.net.Topology(), m.net.Size())

	for i, t := range network.LayerTypes {
		if i == m.layer {
			b.WriteString(activeTabStyle.Render(t.String()))
		} else {
			b.WriteString(tabStyle.Render(t.String()))
		}
	}
	b.WriteString("\n\n")

	l, err := m.current()
	if err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", err)))
		return b.String()
	}
	fmt.Fprintf(&b, "offset %s  size %d  stride %d  nodes %d  weights %d\n\n",
		offsetStyle.Render(strconv.Itoa(int(l.Offset()))), l.Size(), l.Stride(), l.NodeCount(), l.WeightCount())

	for i := 0; i < l.NodeCount(); i++ {
		node, err := l.Node(i)
		if err != nil {
			b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", err)))
			break
		}
		line := fmt.Sprintf("%s %s", offsetStyle.Render(fmt.Sprintf("@%-6d", node.Offset())), formatNode(node))
		if i == m.node {
			b.WriteString(selectedStyle.Render("> " + line))
		} else {
			b.WriteString("  " + line)
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if m.err != nil {
		b.WriteString(errorStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n\n")
	}

	if m.state == stateJump {
		b.WriteString(m.jump.View())
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter jump • esc back"))
	} else {
		b.WriteString(helpStyle.Render("←/→ layer • ↑/↓ node • / jump • q quit"))
	}

	return b.String()
}

func formatNode(node network.Node) string {
	bias, err := node.Bias()
	if err != nil {
		return errorStyle.Render(err.Error())
	}
	ws, err := node.Weights()
	if err != nil {
		return errorStyle.Render(err.Error())
	}
	parts := make([]string, len(ws))
	for i, w := range ws {
		parts[i] = strconv.FormatFloat(w, 'f', 4, 64)
	}
	return fmt.Sprintf("node[%d] bias %s  w [%s]",
		node.Index(), valueStyle.Render(strconv.FormatFloat(bias, 'f', 4, 64)), strings.Join(parts, " "))
}
