package ui

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/callscripts/guion/internal/config"
)

// KeyMap groups all key bindings by the area they act on
type KeyMap struct {
	Application ApplicationKeys
	Form        FormKeys
	Navigation  NavigationKeys
}

// NewKeyMap creates the key map, applying custom bindings over the defaults
func NewKeyMap(keysConfig config.KeyBindingsConfig) KeyMap {
	defaults := GetDefaultKeyBindings()
	return KeyMap{
		Application: newApplicationKeys(defaults, keysConfig),
		Form:        newFormKeys(defaults, keysConfig),
		Navigation:  newNavigationKeys(defaults, keysConfig),
	}
}

// ShortHelp returns the bindings shown in the footer
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{
		k.Navigation.Search.Binding,
		k.Navigation.Select.Binding,
		k.Form.Copy.Binding,
		k.Application.SetAgent.Binding,
		k.Application.ToggleTheme.Binding,
		k.Application.Help.Binding,
	}
}

// FullHelp returns all bindings grouped by area
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Navigation.Search.Binding, k.Navigation.Select.Binding, k.Navigation.Back.Binding},
		{k.Form.NextField.Binding, k.Form.PrevField.Binding, k.Form.Copy.Binding},
		{k.Application.SetAgent.Binding, k.Application.ToggleTheme.Binding, k.Application.Reload.Binding, k.Application.Help.Binding, k.Application.Quit.Binding},
	}
}
