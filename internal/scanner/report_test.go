package scanner

import (
	"testing"
)

func TestSummarize_Empty(t *testing.T) {
	summary, secure := Summarize(nil)

	if !secure {
		t.Error("expected empty finding set to be secure")
	}
	if summary.TotalIssues != 0 {
		t.Errorf("expected 0 total issues, got %d", summary.TotalIssues)
	}
	if len(summary.SeverityCounts) != 4 {
		t.Fatalf("expected all 4 severity buckets, got %d", len(summary.SeverityCounts))
	}
	for _, severity := range []Severity{SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow} {
		count, ok := summary.SeverityCounts[severity]
		if !ok {
			t.Errorf("severity bucket %q missing", severity)
		}
		if count != 0 {
			t.Errorf("expected 0 for %q, got %d", severity, count)
		}
	}
}

func TestSummarize_MediumOnlyIsSecure(t *testing.T) {
	_, secure := Summarize([]Finding{
		{Type: TypeExcessivePermissions, Severity: SeverityMedium},
	})

	if !secure {
		t.Error("a single medium finding must not flip the verdict")
	}
}

func TestSummarize_HighOnlyIsInsecure(t *testing.T) {
	_, secure := Summarize([]Finding{
		{Type: TypeSensitiveInformation, Severity: SeverityHigh},
	})

	if secure {
		t.Error("a single high finding must flip the verdict")
	}
}

func TestSummarize_CriticalIsInsecure(t *testing.T) {
	_, secure := Summarize([]Finding{
		{Type: TypeMalwareDetected, Severity: SeverityCritical},
		{Type: TypeExcessivePermissions, Severity: SeverityLow},
	})

	if secure {
		t.Error("a critical finding must flip the verdict")
	}
}

func TestSummarize_CountsRecommendations(t *testing.T) {
	summary, _ := Summarize([]Finding{
		{Type: TypeExcessivePermissions, Severity: SeverityMedium, Recommendation: "fix it"},
		{Type: TypeExcessivePermissions, Severity: SeverityMedium},
		{Type: TypeSensitiveInformation, Severity: SeverityHigh, Recommendation: "rotate it"},
	})

	if summary.Recommendations != 2 {
		t.Errorf("expected 2 findings with recommendations, got %d", summary.Recommendations)
	}
	if summary.IssueTypes[TypeExcessivePermissions] != 2 {
		t.Errorf("expected 2 permission issues, got %d", summary.IssueTypes[TypeExcessivePermissions])
	}
	if summary.TotalIssues != 3 {
		t.Errorf("expected 3 total issues, got %d", summary.TotalIssues)
	}
}

func TestSummarize_PanicsOnUnknownSeverity(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for unrecognized severity")
		}
	}()

	Summarize([]Finding{{Type: TypeMalwareDetected, Severity: "catastrophic"}})
}

func TestNewReport_EmptyIssues(t *testing.T) {
	report := NewReport(nil)

	if !report.IsSecure {
		t.Error("expected report without issues to be secure")
	}
	if report.Issues == nil {
		t.Error("issues must serialize as an empty list, not null")
	}
	if report.Timestamp == "" {
		t.Error("expected a timestamp")
	}
}

func TestSeverityValid(t *testing.T) {
	for _, severity := range []Severity{SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow} {
		if !severity.Valid() {
			t.Errorf("expected %q to be valid", severity)
		}
	}
	if Severity("urgent").Valid() {
		t.Error("expected unknown severity to be invalid")
	}
}
