package scanner

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// MalwareDetector hashes file content and checks membership in the injected
// malware signature set. Text, image and empty files are skipped before
// hashing since signatures target executable payloads.
type MalwareDetector struct {
	library *PatternLibrary
	logger  *zap.SugaredLogger
}

// Name returns the name of this detector
func (d *MalwareDetector) Name() string { return "malware" }

// Detect walks every file under root and flags files whose SHA-256 digest
// is a known malware signature. Files that cannot be read are skipped.
func (d *MalwareDetector) Detect(root string) []Finding {
	var findings []Finding

	// With no signatures loaded no file can match; skip the walk entirely.
	if d.library.SignatureCount() == 0 {
		return findings
	}

	_ = filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			d.logger.Debugw("skipping unreadable entry", "path", path, "error", err)
			return nil
		}
		if entry.IsDir() {
			return nil
		}

		switch Classify(path) {
		case ClassText, ClassImage, ClassEmpty:
			return nil
		}

		digest, err := hashFile(path)
		if err != nil {
			d.logger.Debugw("skipping unhashable file", "path", path, "error", err)
			return nil
		}

		if d.library.HasSignature(digest) {
			findings = append(findings, Finding{
				Type:           TypeMalwareDetected,
				Description:    fmt.Sprintf("Potential malware detected: %s", path),
				Severity:       SeverityCritical,
				FilePath:       path,
				Recommendation: "Remove malicious file immediately",
			})
		}
		return nil
	})

	return findings
}

// hashFile returns the hex SHA-256 digest of the file content
func hashFile(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
