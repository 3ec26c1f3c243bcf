package scanner

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"unicode/utf8"

	"go.uber.org/zap"
)

// sourceExtensions is the allow-list of extensions scanned for
// vulnerability patterns.
var sourceExtensions = map[string]struct{}{
	".js":  {},
	".py":  {},
	".php": {},
	".rb":  {},
	".go":  {},
}

// VulnerabilityPatternDetector scans source files for insecure code
// constructs using the vulnerability rule set. Matching is pattern based
// and deliberately approximate: commented-out examples match (false
// positives) and obfuscated constructs do not (false negatives).
type VulnerabilityPatternDetector struct {
	library *PatternLibrary
	logger  *zap.SugaredLogger
}

// Name returns the name of this detector
func (d *VulnerabilityPatternDetector) Name() string { return "vulnerability-patterns" }

// Detect scans files whose extension is on the source allow-list. Unreadable
// or non-text files are skipped.
func (d *VulnerabilityPatternDetector) Detect(root string) []Finding {
	var findings []Finding

	_ = filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			d.logger.Debugw("skipping unreadable entry", "path", path, "error", err)
			return nil
		}
		if entry.IsDir() {
			return nil
		}
		if _, ok := sourceExtensions[filepath.Ext(entry.Name())]; !ok {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			d.logger.Debugw("skipping unreadable file", "path", path, "error", err)
			return nil
		}
		if !utf8.Valid(content) {
			d.logger.Debugw("skipping non-text file", "path", path)
			return nil
		}

		for _, rule := range d.library.VulnerabilityRules() {
			for _, loc := range rule.Pattern.FindAllIndex(content, -1) {
				findings = append(findings, Finding{
					Type:           "potential_" + rule.Name,
					Description:    fmt.Sprintf("Potential %s vulnerability detected", rule.Name),
					Severity:       SeverityHigh,
					FilePath:       path,
					LineNumber:     lineAt(content, loc[0]),
					Recommendation: fmt.Sprintf("Review and fix potential %s vulnerability", rule.Name),
				})
			}
		}
		return nil
	})

	return findings
}
