package scanner

import (
	"fmt"
	"time"
)

// Summary is derived entirely from the finding list of a single scan
type Summary struct {
	TotalIssues     int              `json:"total_issues"`
	SeverityCounts  map[Severity]int `json:"severity_counts"`
	IssueTypes      map[string]int   `json:"issue_types"`
	Recommendations int              `json:"recommendations"`
}

// Report is the immutable result of one project scan. IsSecure is the
// single source of the pass/fail verdict: false iff any finding is
// critical or high.
type Report struct {
	Timestamp string    `json:"timestamp"`
	Issues    []Finding `json:"issues"`
	Summary   Summary   `json:"summary"`
	IsSecure  bool      `json:"is_secure"`
}

// NewReport builds a report from the concatenated detector findings,
// stamping it with the current UTC time.
func NewReport(issues []Finding) *Report {
	if issues == nil {
		issues = []Finding{}
	}
	summary, secure := Summarize(issues)
	return &Report{
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Issues:    issues,
		Summary:   summary,
		IsSecure:  secure,
	}
}

// Summarize aggregates findings into severity and type counts and computes
// the verdict. All four severity buckets are always present, zero included.
//
// A finding with an unrecognized severity is a detector bug that would
// corrupt the verdict, so it panics instead of being coerced or dropped.
func Summarize(issues []Finding) (Summary, bool) {
	summary := Summary{
		TotalIssues: len(issues),
		SeverityCounts: map[Severity]int{
			SeverityCritical: 0,
			SeverityHigh:     0,
			SeverityMedium:   0,
			SeverityLow:      0,
		},
		IssueTypes: make(map[string]int),
	}

	for _, issue := range issues {
		if !issue.Severity.Valid() {
			panic(fmt.Sprintf("scanner: finding %q carries unknown severity %q", issue.Type, issue.Severity))
		}
		summary.SeverityCounts[issue.Severity]++
		summary.IssueTypes[issue.Type]++
		if issue.Recommendation != "" {
			summary.Recommendations++
		}
	}

	secure := summary.SeverityCounts[SeverityCritical] == 0 && summary.SeverityCounts[SeverityHigh] == 0
	return summary, secure
}
