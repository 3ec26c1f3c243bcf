package scanner

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// worldOpenPerm is the maximally permissive mode: rwx for owner, group and other
const worldOpenPerm fs.FileMode = 0o777

// PermissionDetector flags directory entries whose permission bits grant
// full access to everyone.
type PermissionDetector struct {
	logger *zap.SugaredLogger
}

// Name returns the name of this detector
func (d *PermissionDetector) Name() string { return "permissions" }

// Detect walks every entry under root, directories included, and reports
// entries with fully open permissions. Entries that cannot be stat'ed are
// skipped.
func (d *PermissionDetector) Detect(root string) []Finding {
	var findings []Finding

	_ = filepath.WalkDir(root, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			d.logger.Debugw("skipping unreadable entry", "path", path, "error", err)
			return nil
		}
		if path == root {
			return nil
		}

		// os.Stat follows symlinks, so a link is judged by its target's
		// mode rather than the link's own lstat mode (0777 on Linux).
		info, err := os.Stat(path)
		if err != nil {
			d.logger.Debugw("skipping entry without file info", "path", path, "error", err)
			return nil
		}

		if info.Mode().Perm() == worldOpenPerm {
			findings = append(findings, Finding{
				Type:           TypeExcessivePermissions,
				Description:    fmt.Sprintf("File has excessive permissions: %s", path),
				Severity:       SeverityMedium,
				FilePath:       path,
				Recommendation: "Restrict file permissions to minimum required",
			})
		}
		return nil
	})

	return findings
}
