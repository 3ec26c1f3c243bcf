package scanner

import (
	"bytes"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"go.uber.org/zap"
)

// skippedMediaSuffixes are binary media formats the content scan ignores
var skippedMediaSuffixes = []string{".jpg", ".png", ".gif", ".pdf"}

// SensitiveDataDetector scans file content for embedded credentials and
// secrets using the sensitive-data rule set.
type SensitiveDataDetector struct {
	library *PatternLibrary
	logger  *zap.SugaredLogger
}

// Name returns the name of this detector
func (d *SensitiveDataDetector) Name() string { return "sensitive-data" }

// Detect scans every non-hidden, non-media file under root. Files that
// cannot be read or are not valid UTF-8 text are skipped; a single bad file
// never stops the rest of the walk.
func (d *SensitiveDataDetector) Detect(root string) []Finding {
	var findings []Finding

	_ = filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			d.logger.Debugw("skipping unreadable entry", "path", path, "error", err)
			return nil
		}
		if entry.IsDir() {
			return nil
		}
		if skipForContentScan(entry.Name()) {
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

		for _, rule := range d.library.SensitiveRules() {
			for _, loc := range rule.Pattern.FindAllIndex(content, -1) {
				findings = append(findings, Finding{
					Type:           TypeSensitiveInformation,
					Description:    fmt.Sprintf("Found potential %s in file", rule.Name),
					Severity:       SeverityHigh,
					FilePath:       path,
					LineNumber:     lineAt(content, loc[0]),
					Recommendation: fmt.Sprintf("Remove %s from source code and use environment variables or secure secrets management", rule.Name),
				})
			}
		}
		return nil
	})

	return findings
}

// skipForContentScan excludes hidden files and binary media formats
func skipForContentScan(name string) bool {
	if strings.HasPrefix(name, ".") {
		return true
	}
	lower := strings.ToLower(name)
	for _, suffix := range skippedMediaSuffixes {
		if strings.HasSuffix(lower, suffix) {
			return true
		}
	}
	return false
}

// lineAt returns the 1-based line number of the byte offset: one more than
// the count of newline characters preceding it.
func lineAt(content []byte, offset int) int {
	return 1 + bytes.Count(content[:offset], []byte{'\n'})
}
