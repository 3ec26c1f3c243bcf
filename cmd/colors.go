package cmd

import (
	"github.com/fatih/color"

	"github.com/quantww/secscan-cli/internal/scanner"
)

var (
	colorSuccess = color.New(color.FgGreen).SprintFunc()
	colorInfo    = color.New(color.FgCyan).SprintFunc()
	colorWarn    = color.New(color.FgYellow).SprintFunc()
	colorError   = color.New(color.FgRed).SprintFunc()
)

func formatSeverityWithColor(severity scanner.Severity) string {
	switch severity {
	case scanner.SeverityCritical, scanner.SeverityHigh:
		return colorError(string(severity))
	case scanner.SeverityMedium:
		return colorWarn(string(severity))
	case scanner.SeverityLow:
		return colorInfo(string(severity))
	default:
		return string(severity)
	}
}

func formatVerdictWithColor(secure bool) string {
	if secure {
		return colorSuccess("SECURE")
	}
	return colorError("INSECURE")
}
