package main

import (
	"fmt"
	"io"
	"strings"
	"swarm/pkg/llm"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#6933ff"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d6dbe7"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00fced"))

	failureStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff3f3f"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ec3f96"))
)

type builtMsg struct {
	variant string
	err     error
}

type variantItem struct {
	name string
}

func (i variantItem) FilterValue() string { return i.name }
func (i variantItem) Title() string       { return i.name }
func (i variantItem) Description() string { return "" }

type variantDelegate struct {
	list.DefaultDelegate
}

func (d variantDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	i, ok := item.(variantItem)
	if !ok {
		return
	}

	str := i.name

	if index == m.Index() {
		str = selectedStyle.Render("| " + str)
	} else {
		str = "  " + str
	}

	fmt.Fprint(w, str)
}

type picker struct {
	registry *llm.Registry
	chain    bool

	variants  []string
	list      list.Model
	textInput textinput.Model

	selected string
	building bool
	result   *builtMsg
	height   int
}

func newPicker(registry *llm.Registry, chain bool) picker {
	ti := textinput.New()
	ti.Placeholder = "Type to filter variants..."
	ti.Focus()
	ti.CharLimit = 50
	ti.Width = 40

	delegate := variantDelegate{DefaultDelegate: list.NewDefaultDelegate()}
	l := list.New([]list.Item{}, delegate, 0, 0)

	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)

	p := picker{
		registry:  registry,
		chain:     chain,
		variants:  registry.Names(),
		list:      l,
		textInput: ti,
	}
	p.updateFilteredList()

	return p
}

func (p picker) Init() tea.Cmd {
	return textinput.Blink
}

func (p picker) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return p, tea.Quit

		case "enter":
			if selectedItem := p.list.SelectedItem(); selectedItem != nil {
				item := selectedItem.(variantItem)
				p.selected = item.name
				p.building = true
				p.result = nil
				return p, buildCmd(p.registry, item.name, p.chain)
			}

		case "esc":
			p.selected = ""
			p.result = nil
			p.textInput.Reset()
			p.updateFilteredList()
			p.textInput.Focus()
			return p, nil
		}

	case tea.WindowSizeMsg:
		p.height = msg.Height
		h, v := lipgloss.NewStyle().GetFrameSize()
		p.list.SetSize(msg.Width-h, msg.Height-v-10)

	case builtMsg:
		p.building = false
		p.result = &msg
		return p, nil
	}

	oldValue := p.textInput.Value()
	p.textInput, cmd = p.textInput.Update(msg)
	cmds = append(cmds, cmd)

	if p.textInput.Value() != oldValue {
		p.updateFilteredList()
	}

	p.list, cmd = p.list.Update(msg)
	cmds = append(cmds, cmd)

	return p, tea.Batch(cmds...)
}

func (p *picker) updateFilteredList() {
	filter := strings.ToLower(p.textInput.Value())
	items := make([]list.Item, 0, len(p.variants))

	for _, v := range p.variants {
		if filter == "" || strings.Contains(v, filter) {
			items = append(items, variantItem{name: v})
		}
	}

	p.list.SetItems(items)
}

func (p picker) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("Client Variants"))
	b.WriteString("\n\n")

	b.WriteString(p.textInput.View())
	b.WriteString("\n\n")

	b.WriteString(p.list.View())

	if p.selected != "" {
		b.WriteString("\n\n")

		switch {
		case p.building:
			b.WriteString(helpStyle.Render(fmt.Sprintf("Building %s...", p.selected)))
		case p.result != nil && p.result.err != nil:
			b.WriteString(failureStyle.Render(fmt.Sprintf("error creating %s client: %v", p.result.variant, p.result.err)))
		case p.result != nil:
			b.WriteString(successStyle.Render(fmt.Sprintf("%s client created successfully.", p.result.variant)))
		}
	}

	content := b.String()
	helpText := helpStyle.Render("enter: build • esc: clear • ctrl+c: quit")

	if p.height > 0 {
		paddingNeeded := p.height - strings.Count(content, "\n") - 2
		if paddingNeeded > 0 {
			content += strings.Repeat("\n", paddingNeeded)
		}
	}

	return content + "\n" + helpText + "\n"
}

func buildCmd(r *llm.Registry, variant string, chain bool) tea.Cmd {
	return func() tea.Msg {
		return builtMsg{variant: variant, err: build(r, variant, chain)}
	}
}
