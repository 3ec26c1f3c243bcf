package cmd

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	consts "github.com/quantww/secscan-cli/internal/constants"
	"github.com/quantww/secscan-cli/internal/scanner"
)

const (
	jsonPrefix = ""
	jsonIndent = "  "
)

var scanCmd = &cobra.Command{
	Use:   "scan-project <path>",
	Short: "Scan a project directory for security issues",
	Long: `Run the full detector set (permissions, dependency manifests,
sensitive data, malware signatures, vulnerability patterns) against a
project directory and print the aggregated report as JSON.`,
	Args: requireArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := resolveScanConfig(cmd.Flags())

		s, err := scanner.New(scanner.Options{
			MalwareSignatures: cfg.MalwareSignatures,
			AdvisoryDB:        cfg.AdvisoryDB,
			Concurrency:       cfg.Concurrency,
			RateLimit:         cfg.RateLimit,
			Logger:            logger,
		})
		if err != nil {
			return err
		}

		report, err := s.Scan(cmd.Context(), args[0])
		if err != nil {
			return err
		}

		pretty, _ := cmd.Flags().GetBool("pretty")
		if err := printReportJSON(report, pretty); err != nil {
			return err
		}

		if !quiet {
			printVerdictSummary(report)
		}

		output, _ := cmd.Flags().GetString("output")
		if output != "" {
			format, _ := cmd.Flags().GetString("format")
			if err := exportReport(report, output, format); err != nil {
				return err
			}
			fmt.Fprintf(os.Stderr, "Report written: %s\n", output)
		}

		return nil
	},
}

func printReportJSON(report *scanner.Report, pretty bool) error {
	var data []byte
	var err error
	if pretty {
		data, err = json.MarshalIndent(report, jsonPrefix, jsonIndent)
	} else {
		data, err = json.Marshal(report)
	}
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}
	fmt.Println(string(data))
	return nil
}

// printVerdictSummary writes a colored human summary to stderr so stdout
// stays machine-parseable.
func printVerdictSummary(report *scanner.Report) {
	fmt.Fprintf(os.Stderr, "\nVerdict: %s (%d issue(s))\n",
		formatVerdictWithColor(report.IsSecure), report.Summary.TotalIssues)

	if report.Summary.TotalIssues == 0 {
		return
	}

	tw := tabwriter.NewWriter(os.Stderr, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "SEVERITY\tTYPE\tLOCATION")
	for _, issue := range report.Issues {
		location := issue.FilePath
		if issue.LineNumber > 0 {
			location = fmt.Sprintf("%s:%d", issue.FilePath, issue.LineNumber)
		}
		if location == "" {
			location = "-"
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", formatSeverityWithColor(issue.Severity), issue.Type, location)
	}
	if err := tw.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to flush summary table: %v\n", err)
	}
}

func exportReport(report *scanner.Report, path, format string) error {
	format = strings.ToLower(format)

	var data []byte
	var err error
	switch format {
	case "json":
		data, err = json.MarshalIndent(report, jsonPrefix, jsonIndent)
	case "md":
		var content string
		content, err = generateMarkdownReport(report)
		data = []byte(content)
	case "pdf":
		data, err = generatePDFReportBytes(report)
	default:
		return fmt.Errorf("unsupported format %q (use json, md, or pdf)", format)
	}
	if err != nil {
		return fmt.Errorf("generate %s report: %w", format, err)
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, consts.DefaultDirPerm); err != nil {
			return fmt.Errorf("create report directory: %w", err)
		}
	}
	return os.WriteFile(path, data, consts.DefaultFilePerm)
}

func init() {
	scanCmd.Flags().Bool("pretty", false, "indent the JSON report")
	scanCmd.Flags().String("output", "", "write the report to a file")
	scanCmd.Flags().String("format", "json", "report file format: json|md|pdf")
	scanCmd.Flags().String("signatures", "", "path to the malware signature database (JSON array of SHA-256 digests)")
	scanCmd.Flags().String("advisories", "", "path to the dependency advisory database")
	scanCmd.Flags().Int("concurrency", consts.DefaultScanConcurrency, "maximum detectors running at once")
	scanCmd.Flags().Int("rate-limit", consts.DefaultScanRateLimit, "detector launch rate per second")
}
