package ui

import (
	"github.com/callscripts/guion/internal/config"
)

// FormKeys defines key bindings for the detail form
type FormKeys struct {
	Copy      KeyWithTip
	NextField KeyWithTip
	PrevField KeyWithTip
}

func newFormKeys(defaults map[string][]string, customKeys config.KeyBindingsConfig) FormKeys {
	return FormKeys{
		Copy:      buildBinding("copy", defaults, customKeys),
		NextField: buildBinding("next_field", defaults, customKeys),
		PrevField: buildBinding("prev_field", defaults, customKeys),
	}
}
