package domain

// Action represents a user-invocable action in the lookup tool.
// This is the domain-level definition of what actions exist.
type Action struct {
	Description       string
	Name              string
	RequiresSelection bool
}

// Actions is the canonical registry of all available actions.
// Sorted alphabetically by Name.
var Actions = []Action{
	{Name: "back", Description: "Close the open dialog or return to search", RequiresSelection: false},
	{Name: "copy", Description: "Copy the detail form as text", RequiresSelection: true},
	{Name: "help", Description: "Show keyboard shortcuts", RequiresSelection: false},
	{Name: "next_field", Description: "Move to the next form field", RequiresSelection: true},
	{Name: "prev_field", Description: "Move to the previous form field", RequiresSelection: true},
	{Name: "quit", Description: "Exit Guion", RequiresSelection: false},
	{Name: "reload", Description: "Reload scripts from the spreadsheet", RequiresSelection: false},
	{Name: "search", Description: "Focus the search box", RequiresSelection: false},
	{Name: "select", Description: "Open the highlighted script", RequiresSelection: false},
	{Name: "set_agent", Description: "Set or clear the agent identity", RequiresSelection: false},
	{Name: "toggle_theme", Description: "Switch between light and dark theme", RequiresSelection: false},
}

// GetActions returns all available actions.
func GetActions() []Action {
	return Actions
}

// GetActionByName returns an action by its name, or nil if not found.
func GetActionByName(name string) *Action {
	for i := range Actions {
		if Actions[i].Name == name {
			return &Actions[i]
		}
	}
	return nil
}

// GetActionsForContext returns actions filtered by context.
// If hasSelection is false, actions that require a selected record are excluded.
func GetActionsForContext(hasSelection bool) []Action {
	if hasSelection {
		return Actions
	}

	var filtered []Action
	for _, a := range Actions {
		if !a.RequiresSelection {
			filtered = append(filtered, a)
		}
	}
	return filtered
}
