package scanner

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"regexp"
)

// PatternRule pairs a rule name with its compiled expression
type PatternRule struct {
	Name    string
	Pattern *regexp.Regexp
}

// sensitiveRules matches credentials and secrets embedded in file content.
// Order is fixed so scan output is reproducible.
var sensitiveRules = []PatternRule{
	{Name: "api_key", Pattern: regexp.MustCompile(`(?i)(api[_-]key|apikey|secret)["']?\s*(?::|=)\s*["']([^"']+)`)},
	{Name: "password", Pattern: regexp.MustCompile(`(?i)(password|passwd|pwd)["']?\s*(?::|=)\s*["']([^"']+)`)},
	{Name: "private_key", Pattern: regexp.MustCompile(`-----BEGIN (?:RSA )?PRIVATE KEY-----`)},
	{Name: "token", Pattern: regexp.MustCompile(`(?i)(access_token|auth_token|jwt)["']?\s*(?::|=)\s*["']([^"']+)`)},
}

// vulnerabilityRules matches common insecure code constructs in source files
var vulnerabilityRules = []PatternRule{
	{Name: "sql_injection", Pattern: regexp.MustCompile(`(?i)(?:execute|exec)\s*\(\s*["']?\s*SELECT`)},
	{Name: "xss", Pattern: regexp.MustCompile(`(?i)innerHTML\s*=|document\.write\s*\(`)},
	{Name: "command_injection", Pattern: regexp.MustCompile(`(?i)(?:system|exec|eval)\s*\(`)},
	{Name: "path_traversal", Pattern: regexp.MustCompile(`\.\./`)},
}

// PatternLibrary holds the rule sets shared by all detectors. It is loaded
// once at scanner construction and read-only afterwards.
type PatternLibrary struct {
	sensitive     []PatternRule
	vulnerability []PatternRule
	signatures    map[string]struct{}
	advisories    map[string][]Advisory
}

// Advisory describes a known vulnerable dependency version. The advisory
// database is an injected external source and is typically empty until a
// real feed is wired in.
type Advisory struct {
	ID       string `json:"id"`
	Package  string `json:"package"`
	Versions string `json:"versions"`
	Severity string `json:"severity"`
	Summary  string `json:"summary"`
}

// LibrarySources points at the external data files backing the library.
// Either path may be empty or missing, which yields an empty set.
type LibrarySources struct {
	MalwareSignatures string
	AdvisoryDB        string
}

// LoadPatternLibrary builds the pattern library from the built-in rule sets
// and the injected external databases.
func LoadPatternLibrary(src LibrarySources) (*PatternLibrary, error) {
	signatures, err := loadSignatures(src.MalwareSignatures)
	if err != nil {
		return nil, fmt.Errorf("load malware signatures: %w", err)
	}

	advisories, err := loadAdvisories(src.AdvisoryDB)
	if err != nil {
		return nil, fmt.Errorf("load advisory database: %w", err)
	}

	return &PatternLibrary{
		sensitive:     sensitiveRules,
		vulnerability: vulnerabilityRules,
		signatures:    signatures,
		advisories:    advisories,
	}, nil
}

// SensitiveRules returns the sensitive-data rule set in registration order
func (l *PatternLibrary) SensitiveRules() []PatternRule {
	return l.sensitive
}

// VulnerabilityRules returns the code-vulnerability rule set in registration order
func (l *PatternLibrary) VulnerabilityRules() []PatternRule {
	return l.vulnerability
}

// HasSignature reports whether the hex digest is in the known-malware set
func (l *PatternLibrary) HasSignature(hexDigest string) bool {
	_, ok := l.signatures[hexDigest]
	return ok
}

// SignatureCount returns the number of loaded malware signatures
func (l *PatternLibrary) SignatureCount() int {
	return len(l.signatures)
}

// AdvisoriesFor returns known advisories for a package name
func (l *PatternLibrary) AdvisoriesFor(pkg string) []Advisory {
	return l.advisories[pkg]
}

// loadSignatures reads a JSON array of hex SHA-256 digests. A missing file
// is treated as an empty signature set, not an error.
func loadSignatures(path string) (map[string]struct{}, error) {
	signatures := make(map[string]struct{})
	if path == "" {
		return signatures, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return signatures, nil
		}
		return nil, err
	}

	var digests []string
	if err := json.Unmarshal(data, &digests); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	for _, d := range digests {
		signatures[d] = struct{}{}
	}
	return signatures, nil
}

// loadAdvisories reads a JSON object mapping package names to advisories
func loadAdvisories(path string) (map[string][]Advisory, error) {
	advisories := make(map[string][]Advisory)
	if path == "" {
		return advisories, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return advisories, nil
		}
		return nil, err
	}

	if err := json.Unmarshal(data, &advisories); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return advisories, nil
}
