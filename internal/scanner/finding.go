package scanner

// Severity represents the risk level of a finding
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

// Valid reports whether s is one of the four known severity levels
func (s Severity) Valid() bool {
	switch s {
	case SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow:
		return true
	}
	return false
}

// Finding types emitted by the built-in detectors. Vulnerability-pattern
// findings use "potential_" + rule name (e.g. potential_sql_injection).
const (
	TypeExcessivePermissions = "excessive_permissions"
	TypeSensitiveInformation = "sensitive_information"
	TypeMalwareDetected      = "malware_detected"
)

// Finding is a single detected security issue.
//
// FilePath is empty for findings that are not tied to a file, and
// LineNumber is 0 when no line-level location applies.
type Finding struct {
	Type           string   `json:"type"`
	Description    string   `json:"description"`
	Severity       Severity `json:"severity"`
	FilePath       string   `json:"file_path"`
	LineNumber     int      `json:"line_number"`
	Recommendation string   `json:"recommendation"`
}
