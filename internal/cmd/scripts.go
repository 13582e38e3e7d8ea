package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/fatih/color"

	"github.com/callscripts/guion/internal/domain"
	"github.com/callscripts/guion/internal/logging"
)

// ScriptsCmd searches and exports call scripts without the TUI
type ScriptsCmd struct {
	List   ScriptsListCmd   `cmd:"list" help:"List scripts, optionally filtered by title" default:"1"`
	Show   ScriptsShowCmd   `cmd:"show" help:"Show the important info and form fields of a script"`
	Export ScriptsExportCmd `cmd:"export" help:"Render a filled detail form as text"`
}

// ScriptsListCmd lists scripts
type ScriptsListCmd struct {
	Query  string `arg:"" optional:"" help:"Case-insensitive title filter"`
	Format string `help:"Output format: table or json" enum:"table,json" default:"table"`
}

// ScriptsShowCmd shows one script
type ScriptsShowCmd struct {
	Row    int    `arg:"" help:"Source row of the script (as printed by 'guion scripts list')"`
	Format string `help:"Output format: text or json" enum:"text,json" default:"text"`
}

// ScriptsExportCmd renders a detail form as "LABEL: value" text
type ScriptsExportCmd struct {
	Row    int      `arg:"" help:"Source row of the script"`
	Fields []string `help:"Field values as Label=value (repeatable)" short:"f" name:"field" sep:"none"`
	Copy   bool     `help:"Copy the text to the clipboard instead of printing it" short:"c"`
}

// scriptSummary is the JSON shape of one listed script
type scriptSummary struct {
	AccentColor string `json:"accent_color,omitempty"`
	Row         int    `json:"row"`
	Subtitle    string `json:"subtitle,omitempty"`
	Title       string `json:"title"`
}

// loadRecords reads the scripts spreadsheet through the catalog service
func loadRecords(cli *CLI) (*domain.RecordSet, error) {
	set, err := cli.Container.Catalog.Load(context.Background())
	if err != nil {
		return nil, err
	}
	return set, nil
}

// findRecord loads the set and looks up one record by source row
func findRecord(cli *CLI, row int) (*domain.LookupSession, domain.ScriptRecord, error) {
	set, err := loadRecords(cli)
	if err != nil {
		return nil, domain.ScriptRecord{}, err
	}

	session := domain.NewLookupSession()
	session.Replace(set)
	record, err := session.Select(row)
	if err != nil {
		return nil, domain.ScriptRecord{}, fmt.Errorf("row %d: %w", row, err)
	}
	return session, record, nil
}

// Run executes the list command
func (s *ScriptsListCmd) Run(cli *CLI) error {
	set, err := loadRecords(cli)
	if err != nil {
		return err
	}

	records := set.Search(s.Query)
	logging.Logger.Debug("Listing scripts", "query", s.Query, "matches", len(records), "total", set.Len())

	if s.Format == "json" {
		summaries := make([]scriptSummary, len(records))
		for i, r := range records {
			summaries[i] = scriptSummary{
				AccentColor: r.AccentColor,
				Row:         r.SourceRow,
				Subtitle:    domain.SanitizeText(r.Subtitle),
				Title:       domain.SanitizeText(r.Title),
			}
		}
		data, err := json.MarshalIndent(summaries, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	if len(records) == 0 {
		fmt.Println("No scripts match your search.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 3, ' ', 0)
	fmt.Fprintln(w, "Row\tTitle\tSubtitle")
	fmt.Fprintln(w, "───\t─────\t────────")
	for _, r := range records {
		fmt.Fprintf(w, "%d\t%s\t%s\n", r.SourceRow, domain.SanitizeText(r.Title), domain.SanitizeText(r.Subtitle))
	}
	w.Flush()

	fmt.Printf("\n%d of %d scripts (%s)\n", len(records), set.Len(), cli.Container.Catalog.Location())
	return nil
}

// Run executes the show command
func (s *ScriptsShowCmd) Run(cli *CLI) error {
	_, record, err := findRecord(cli, s.Row)
	if err != nil {
		return err
	}

	view, _ := domain.ProjectImportantInfo(&record)
	fields := domain.BuildDetailForm(&record, time.Now(), timestampFormat(cli))

	if s.Format == "json" {
		labels := make([]string, len(fields))
		for i, f := range fields {
			labels[i] = f.Label
		}
		output := map[string]any{
			"row":            record.SourceRow,
			"important_info": view,
			"form_fields":    labels,
		}
		data, err := json.MarshalIndent(output, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to marshal JSON: %w", err)
		}
		fmt.Println(string(data))
		return nil
	}

	fmt.Println(color.New(color.Bold).Sprint(view.Title))
	if view.Subtitle != "" {
		fmt.Println(view.Subtitle)
	}

	for _, heading := range view.Headings() {
		fmt.Printf("\n%s\n", color.New(color.FgCyan).Sprint(heading))
		switch heading {
		case domain.HeadingClassification:
			printBadgeRow(view.PrimaryTags)
			printBadgeRow(view.SecondaryTags)
		case domain.HeadingReason:
			fmt.Printf("  %s\n", view.Reason)
		case domain.HeadingVerification:
			for _, item := range view.Verification {
				fmt.Printf("  • %s\n", item)
			}
		case domain.HeadingSuggestions:
			fmt.Printf("  %s\n", view.Suggestions)
		}
	}

	fmt.Printf("\n%s\n", color.New(color.FgCyan).Sprint("Form fields"))
	for _, f := range fields {
		marker := ""
		if f.ReadOnly {
			marker = color.New(color.FgHiBlack).Sprint(" (read-only)")
		}
		fmt.Printf("  %s%s\n", f.Label, marker)
	}
	return nil
}

// printBadgeRow prints one tag row with the highlighted badge colored
func printBadgeRow(badges []domain.Badge) {
	if len(badges) == 0 {
		return
	}
	labels := make([]string, len(badges))
	for i, b := range badges {
		switch b.Highlight {
		case domain.HighlightPrimary:
			labels[i] = color.New(color.FgHiMagenta).Sprintf("[%s]", b.Label)
		case domain.HighlightSecondary:
			labels[i] = color.New(color.FgYellow).Sprintf("[%s]", b.Label)
		default:
			labels[i] = fmt.Sprintf("[%s]", b.Label)
		}
	}
	fmt.Printf("  %s\n", strings.Join(labels, " "))
}

// Run executes the export command
func (s *ScriptsExportCmd) Run(cli *CLI) error {
	session, record, err := findRecord(cli, s.Row)
	if err != nil {
		return err
	}

	overrides, err := parseFieldValues(s.Fields)
	if err != nil {
		return err
	}

	descriptors := domain.BuildDetailForm(&record, time.Now(), timestampFormat(cli))
	values, err := fillFields(descriptors, overrides)
	if err != nil {
		return err
	}

	if !s.Copy {
		fmt.Println(domain.ExportText(values))
		return nil
	}

	result, err := cli.Container.Export.Copy(session, values)
	if err != nil {
		return err
	}
	if !result.Copied {
		fmt.Fprintf(os.Stderr, "%s clipboard unavailable (%v), printing instead\n",
			color.New(color.FgYellow).Sprint("!"), result.ClipboardErr)
		fmt.Println(result.Text)
		return nil
	}

	fmt.Printf("%s Copied %d fields to the clipboard\n", color.New(color.FgGreen).Sprint("✓"), len(values))
	return nil
}

// parseFieldValues parses Label=value pairs, keyed by lowercased label
func parseFieldValues(pairs []string) (map[string]string, error) {
	result := make(map[string]string, len(pairs))
	for _, pair := range pairs {
		label, value, found := strings.Cut(pair, "=")
		label = strings.TrimSpace(label)
		if !found || label == "" {
			return nil, fmt.Errorf("invalid field '%s' (expected Label=value)", pair)
		}
		result[strings.ToLower(label)] = value
	}
	return result, nil
}

// fillFields turns descriptors into export values, applying overrides.
// Read-only fields keep their initial value.
func fillFields(descriptors []domain.FormFieldDescriptor, overrides map[string]string) ([]domain.FieldValue, error) {
	used := make(map[string]bool, len(overrides))
	values := make([]domain.FieldValue, len(descriptors))
	for i, d := range descriptors {
		value := d.InitialValue
		key := strings.ToLower(d.Label)
		if override, ok := overrides[key]; ok {
			if d.ReadOnly {
				return nil, fmt.Errorf("field '%s' is read-only", d.Label)
			}
			value = override
			used[key] = true
		}
		values[i] = domain.FieldValue{Label: d.Label, Value: value}
	}

	for key := range overrides {
		if !used[key] {
			return nil, fmt.Errorf("unknown field '%s'", key)
		}
	}
	return values, nil
}

// timestampFormat resolves the live timestamp layout from settings
func timestampFormat(cli *CLI) string {
	if cli.settings != nil && cli.settings.TimestampFormat != "" {
		return cli.settings.TimestampFormat
	}
	return domain.DefaultTimestampLayout
}
