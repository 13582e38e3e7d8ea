package ui

import (
	"github.com/callscripts/guion/internal/config"
)

// NavigationKeys defines key bindings for moving between search, list and form
type NavigationKeys struct {
	Back   KeyWithTip
	Search KeyWithTip
	Select KeyWithTip
}

func newNavigationKeys(defaults map[string][]string, customKeys config.KeyBindingsConfig) NavigationKeys {
	return NavigationKeys{
		Back:   buildBinding("back", defaults, customKeys),
		Search: buildBinding("search", defaults, customKeys),
		Select: buildBinding("select", defaults, customKeys),
	}
}
