package cmd

import (
	"bytes"
	"embed"
	"fmt"
	"sort"
	"strings"
	"text/template"

	"github.com/jung-kurt/gofpdf"

	"github.com/quantww/secscan-cli/internal/scanner"
)

const markdownTemplatePath = "templates/report.md"

//go:embed templates/report.md
var reportTemplateFS embed.FS

var markdownReportTemplate = template.Must(
	template.New("report.md").ParseFS(reportTemplateFS, markdownTemplatePath),
)

// severityOrder fixes the rendering order of severity rows, worst first
var severityOrder = []scanner.Severity{
	scanner.SeverityCritical,
	scanner.SeverityHigh,
	scanner.SeverityMedium,
	scanner.SeverityLow,
}

type severityRow struct {
	Severity scanner.Severity
	Count    int
}

type typeRow struct {
	Type  string
	Count int
}

// reportView flattens a scan report for template and PDF rendering
type reportView struct {
	Timestamp       string
	Verdict         string
	TotalIssues     int
	Recommendations int
	SeverityRows    []severityRow
	TypeRows        []typeRow
	Issues          []scanner.Finding
}

func buildReportView(report *scanner.Report) reportView {
	view := reportView{
		Timestamp:       report.Timestamp,
		Verdict:         "INSECURE",
		TotalIssues:     report.Summary.TotalIssues,
		Recommendations: report.Summary.Recommendations,
		Issues:          report.Issues,
	}
	if report.IsSecure {
		view.Verdict = "SECURE"
	}

	for _, severity := range severityOrder {
		view.SeverityRows = append(view.SeverityRows, severityRow{
			Severity: severity,
			Count:    report.Summary.SeverityCounts[severity],
		})
	}

	types := make([]string, 0, len(report.Summary.IssueTypes))
	for name := range report.Summary.IssueTypes {
		types = append(types, name)
	}
	sort.Strings(types)
	for _, name := range types {
		view.TypeRows = append(view.TypeRows, typeRow{Type: name, Count: report.Summary.IssueTypes[name]})
	}

	return view
}

func generateMarkdownReport(report *scanner.Report) (string, error) {
	var buf strings.Builder
	if err := markdownReportTemplate.Execute(&buf, buildReportView(report)); err != nil {
		return "", fmt.Errorf("execute report template: %w", err)
	}
	return buf.String(), nil
}

// maxPDFFindings caps the per-finding detail section in PDF output
const maxPDFFindings = 100

func generatePDFReportBytes(report *scanner.Report) ([]byte, error) {
	view := buildReportView(report)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	// Title
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(0, 10, "Security Scan Report", "", 1, "C", false, 0, "")
	pdf.Ln(5)

	// Metadata section
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Generated: %s", view.Timestamp), "", 1, "", false, 0, "")
	pdf.CellFormat(0, 6, fmt.Sprintf("Verdict: %s", view.Verdict), "", 1, "", false, 0, "")
	pdf.Ln(5)

	// Summary section
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, "Summary", "", 1, "", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(0, 6, fmt.Sprintf("Total issues: %d | With recommendations: %d",
		view.TotalIssues, view.Recommendations), "", 1, "", false, 0, "")
	for _, row := range view.SeverityRows {
		pdf.CellFormat(0, 6, fmt.Sprintf("  %s: %d", row.Severity, row.Count), "", 1, "", false, 0, "")
	}
	pdf.Ln(5)

	// Findings section
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(0, 8, "Findings", "", 1, "", false, 0, "")
	pdf.Ln(2)

	for i, issue := range view.Issues {
		if i == maxPDFFindings {
			pdf.SetFont("Arial", "I", 9)
			pdf.CellFormat(0, 6, fmt.Sprintf("... %d additional findings omitted ...", len(view.Issues)-maxPDFFindings), "", 1, "", false, 0, "")
			break
		}

		if pdf.GetY() > 250 {
			pdf.AddPage()
		}

		pdf.SetFont("Arial", "B", 10)
		pdf.SetFillColor(240, 240, 240)
		pdf.CellFormat(0, 7, fmt.Sprintf("[%s] %s", strings.ToUpper(string(issue.Severity)), issue.Type), "", 1, "", true, 0, "")

		pdf.SetFont("Arial", "", 9)
		pdf.MultiCell(0, 5, issue.Description, "", "", false)
		if issue.FilePath != "" {
			location := issue.FilePath
			if issue.LineNumber > 0 {
				location = fmt.Sprintf("%s:%d", issue.FilePath, issue.LineNumber)
			}
			pdf.CellFormat(0, 5, fmt.Sprintf("Location: %s", location), "", 1, "", false, 0, "")
		}
		if issue.Recommendation != "" {
			pdf.SetFont("Arial", "I", 9)
			pdf.MultiCell(0, 5, fmt.Sprintf("Recommendation: %s", issue.Recommendation), "", "", false)
		}
		pdf.Ln(2)
	}

	if len(view.Issues) == 0 {
		pdf.SetFont("Arial", "", 10)
		pdf.CellFormat(0, 6, "No findings.", "", 1, "", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("failed to generate PDF: %w", err)
	}
	return buf.Bytes(), nil
}
