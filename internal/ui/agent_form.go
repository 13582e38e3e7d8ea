package ui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
)

const agentFormWidth = 50

// AgentFormResult contains the submitted identifier
type AgentFormResult struct {
	Cancelled  bool
	Identifier string // Empty means clear the agent
}

// AgentForm asks for the agent identifier, pre-filled with the stored one
type AgentForm struct {
	Completed bool
	form      *huh.Form
	result    AgentFormResult
}

// NewAgentForm creates the agent dialog content
func NewAgentForm(currentIdentifier string, currentName string) *AgentForm {
	af := &AgentForm{
		result: AgentFormResult{Identifier: currentIdentifier},
	}

	description := "Leave empty to remove the agent."
	if currentName != "" {
		description = "Current agent: " + currentName + ". " + description
	}

	af.form = huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Agent identifier").
				Description(description).
				Placeholder("e.g. 12.345.678-9").
				CharLimit(64).
				Value(&af.result.Identifier),
		),
	).WithShowHelp(false).WithWidth(agentFormWidth)

	return af
}

// Init implements tea.Model
func (af *AgentForm) Init() tea.Cmd {
	return af.form.Init()
}

// Update implements tea.Model
func (af *AgentForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.String() == "esc" || keyMsg.String() == "ctrl+c" {
			af.result.Cancelled = true
			af.Completed = true
			return af, nil
		}
	}

	form, cmd := af.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		af.form = f
	}

	if af.form.State == huh.StateCompleted {
		af.Completed = true
		return af, nil
	}

	return af, cmd
}

// View implements tea.Model
func (af *AgentForm) View() string {
	if af.form != nil {
		return af.form.View()
	}
	return ""
}

// Result returns the form result
func (af *AgentForm) Result() AgentFormResult {
	return af.result
}
