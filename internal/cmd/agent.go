package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
)

// AgentCmd manages the operator identity shown in the TUI header
type AgentCmd struct {
	Show  AgentShowCmd  `cmd:"show" help:"Show the stored agent" default:"1"`
	Set   AgentSetCmd   `cmd:"set" help:"Resolve an identifier against the agents spreadsheet and store it"`
	Clear AgentClearCmd `cmd:"clear" help:"Remove the stored agent"`
}

// AgentShowCmd prints the stored agent
type AgentShowCmd struct {
	Format string `help:"Output format: text or json" enum:"text,json" default:"text"`
}

// AgentSetCmd stores an agent
type AgentSetCmd struct {
	Identifier string `arg:"" help:"Agent identifier (dots, dashes and spaces are ignored)"`
}

// AgentClearCmd removes the agent
type AgentClearCmd struct{}

// Run executes the show command
func (a *AgentShowCmd) Run(cli *CLI) error {
	pref, ok := cli.Container.Preferences.GetAgent(context.Background())

	if a.Format == "json" {
		var output any = pref
		if !ok {
			output = nil
		}
		data, err := json.MarshalIndent(output, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	if !ok {
		fmt.Println("No agent set. Use 'guion agent set <identifier>'.")
		return nil
	}
	fmt.Printf("Agent: %s (%s)\n", color.New(color.Bold).Sprint(pref.DisplayName), pref.Identifier)
	return nil
}

// Run executes the set command
func (a *AgentSetCmd) Run(cli *CLI) error {
	displayName, err := cli.Container.Preferences.SetAgent(context.Background(), a.Identifier)
	if err != nil {
		return err
	}
	if displayName == "" {
		fmt.Println("Agent removed")
		return nil
	}
	fmt.Printf("%s Agent: %s\n", color.New(color.FgGreen).Sprint("✓"), displayName)
	return nil
}

// Run executes the clear command
func (a *AgentClearCmd) Run(cli *CLI) error {
	if err := cli.Container.Preferences.ClearAgent(context.Background()); err != nil {
		return err
	}
	fmt.Printf("%s Agent removed\n", color.New(color.FgGreen).Sprint("✓"))
	return nil
}
