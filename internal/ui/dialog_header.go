package ui

import (
	"fmt"

	"github.com/callscripts/guion/internal/domain"
	"github.com/callscripts/guion/internal/theme"
)

// VersionInfo holds version information for display in UI headers.
// Populated by main.go from ldflags-injected values.
type VersionInfo struct {
	Commit    string
	Date      string
	GoVersion string
	Tagline   string
	Version   string
}

// DefaultVersionInfo provides default values when version info is not available
var DefaultVersionInfo = VersionInfo{
	Commit:    "unknown",
	Date:      "unknown",
	GoVersion: "unknown",
	Tagline:   "Call scripts at hand",
	Version:   "dev",
}

var versionInfo = DefaultVersionInfo

// SetVersionInfo sets the global version info (called from main.go)
func SetVersionInfo(info VersionInfo) {
	versionInfo = info
}

// renderHeader renders the app name line, the tagline and an optional subtitle.
// In dev mode the app name line also carries version details.
// A non-empty agentName is shown on the right of the app name.
func renderHeader(devMode bool, subtitle string, agentName string) string {
	appNameLine := theme.AppNameStyle.Render("Guion")
	if devMode {
		commit := versionInfo.Commit
		if len(commit) > 7 {
			commit = commit[:7]
		}
		appNameLine += theme.VersionStyle.Render(fmt.Sprintf(" %s | %s | %s | %s",
			versionInfo.Version,
			commit,
			versionInfo.Date,
			versionInfo.GoVersion))
	}
	if agentName != "" {
		appNameLine += "  " + theme.MutedStyle.Render("agent ") + theme.AgentStyle.Render(domain.SanitizeText(agentName))
	}

	result := appNameLine + "\n"
	result += theme.TaglineStyle.Render(versionInfo.Tagline)

	if subtitle != "" {
		result += "\n\n" + theme.SubtitleStyle.Render(subtitle)
	}

	result += "\n"
	return result
}

// renderDialogHeader is the header used by Dialog. Call sites wrap content in a Dialog instead.
func renderDialogHeader(devMode bool, formTitle string) string {
	return renderHeader(devMode, formTitle, "")
}
