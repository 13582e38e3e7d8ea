package cmd

import (
	"context"
	"fmt"

	"github.com/fatih/color"

	"github.com/callscripts/guion/internal/domain"
)

// ThemeCmd manages the persisted color theme
type ThemeCmd struct {
	Show   ThemeShowCmd   `cmd:"show" help:"Show the stored theme" default:"1"`
	Set    ThemeSetCmd    `cmd:"set" help:"Store a theme (light or dark)"`
	Toggle ThemeToggleCmd `cmd:"toggle" help:"Swap between light and dark"`
}

// ThemeShowCmd prints the theme
type ThemeShowCmd struct{}

// ThemeSetCmd stores a theme
type ThemeSetCmd struct {
	Theme string `arg:"" help:"Theme name" enum:"light,dark"`
}

// ThemeToggleCmd flips the theme
type ThemeToggleCmd struct{}

// Run executes the show command
func (t *ThemeShowCmd) Run(cli *CLI) error {
	fmt.Println(cli.Container.Preferences.GetTheme(context.Background()))
	return nil
}

// Run executes the set command
func (t *ThemeSetCmd) Run(cli *CLI) error {
	theme, err := domain.ParseTheme(t.Theme)
	if err != nil {
		return err
	}
	cli.Container.Preferences.SetTheme(context.Background(), theme)
	fmt.Printf("%s Theme: %s\n", color.New(color.FgGreen).Sprint("✓"), theme)
	return nil
}

// Run executes the toggle command
func (t *ThemeToggleCmd) Run(cli *CLI) error {
	theme := cli.Container.Preferences.ToggleTheme(context.Background())
	fmt.Printf("%s Theme: %s\n", color.New(color.FgGreen).Sprint("✓"), theme)
	return nil
}
