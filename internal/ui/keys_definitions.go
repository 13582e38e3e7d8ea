package ui

import (
	"sort"
	"sync"

	"github.com/callscripts/guion/internal/domain"
)

// KeyCategory groups key bindings the way the help screen shows them
type KeyCategory string

const (
	KeyCategoryApplication KeyCategory = "application"
	KeyCategoryNavigation  KeyCategory = "navigation"
	KeyCategoryForm        KeyCategory = "form"
)

// KeyCategories lists the categories in display order
var KeyCategories = []KeyCategory{KeyCategoryApplication, KeyCategoryNavigation, KeyCategoryForm}

// KeyDefinition defines the metadata for a configurable key binding.
// Names match domain action names; help text comes from the action description.
type KeyDefinition struct {
	Category  KeyCategory
	Defaults  []string
	Name      string
	TipFormat string
}

// Help returns the description of the action bound to this key
func (d KeyDefinition) Help() string {
	if action := domain.GetActionByName(d.Name); action != nil {
		return action.Description
	}
	return d.Name
}

// AllKeyDefinitions contains all configurable key bindings.
// Defaults avoid printable characters because the search box and the form take text input.
var AllKeyDefinitions = []KeyDefinition{
	{Category: KeyCategoryApplication, Name: "help", Defaults: []string{"f1"}, TipFormat: "press %s to see all shortcuts"},
	{Category: KeyCategoryApplication, Name: "quit", Defaults: []string{"ctrl+c"}},
	{Category: KeyCategoryApplication, Name: "reload", Defaults: []string{"ctrl+r"}, TipFormat: "press %s to reload scripts from the spreadsheet"},
	{Category: KeyCategoryApplication, Name: "set_agent", Defaults: []string{"ctrl+g"}, TipFormat: "press %s to set your agent identifier"},
	{Category: KeyCategoryApplication, Name: "toggle_theme", Defaults: []string{"ctrl+t"}, TipFormat: "press %s to switch between light and dark"},

	{Category: KeyCategoryNavigation, Name: "back", Defaults: []string{"esc"}, TipFormat: "press %s to go back to search"},
	{Category: KeyCategoryNavigation, Name: "search", Defaults: []string{"ctrl+f"}, TipFormat: "press %s to search scripts"},
	{Category: KeyCategoryNavigation, Name: "select", Defaults: []string{"enter"}, TipFormat: "press %s to open the highlighted script"},

	{Category: KeyCategoryForm, Name: "copy", Defaults: []string{"ctrl+y"}, TipFormat: "press %s to copy the form"},
	{Category: KeyCategoryForm, Name: "next_field", Defaults: []string{"tab"}},
	{Category: KeyCategoryForm, Name: "prev_field", Defaults: []string{"shift+tab"}},
}

var (
	defaultBindingsCache map[string][]string
	defaultBindingsOnce  sync.Once

	keyDefinitionsMap     map[string]KeyDefinition
	keyDefinitionsMapOnce sync.Once

	validKeyNames     []string
	validKeyNamesOnce sync.Once
)

// GetDefaultKeyBindings returns the default key bindings as a map.
// The result is cached after the first call.
func GetDefaultKeyBindings() map[string][]string {
	defaultBindingsOnce.Do(func() {
		defaultBindingsCache = make(map[string][]string, len(AllKeyDefinitions))
		for _, def := range AllKeyDefinitions {
			defaultBindingsCache[def.Name] = def.Defaults
		}
	})
	return defaultBindingsCache
}

// GetKeyDefinition returns the definition for a key by name.
// Returns nil if not found.
func GetKeyDefinition(name string) *KeyDefinition {
	keyDefinitionsMapOnce.Do(func() {
		keyDefinitionsMap = make(map[string]KeyDefinition, len(AllKeyDefinitions))
		for _, def := range AllKeyDefinitions {
			keyDefinitionsMap[def.Name] = def
		}
	})
	if def, ok := keyDefinitionsMap[name]; ok {
		return &def
	}
	return nil
}

// GetValidKeyNames returns all valid key binding names in sorted order.
// The result is cached after the first call.
func GetValidKeyNames() []string {
	validKeyNamesOnce.Do(func() {
		validKeyNames = make([]string, len(AllKeyDefinitions))
		for i, def := range AllKeyDefinitions {
			validKeyNames[i] = def.Name
		}
		sort.Strings(validKeyNames)
	})
	return validKeyNames
}

// KeyDefinitionsIn returns the definitions of one category in declaration order
func KeyDefinitionsIn(category KeyCategory) []KeyDefinition {
	var defs []KeyDefinition
	for _, def := range AllKeyDefinitions {
		if def.Category == category {
			defs = append(defs, def)
		}
	}
	return defs
}
