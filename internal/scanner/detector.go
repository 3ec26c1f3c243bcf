package scanner

import "go.uber.org/zap"

// Detector is the interface that all detection strategies must satisfy.
// A detector walks the project tree on its own, is read-only with respect
// to the filesystem, and skips individual entries it cannot process rather
// than failing the whole pass.
type Detector interface {
	// Detect analyzes the project rooted at root and returns its findings
	Detect(root string) []Finding

	// Name returns the name of this detector (e.g. "permissions", "malware")
	Name() string
}

// newDetectors builds the fixed detector set in its registration order.
// The order determines finding concatenation order in the final report.
func newDetectors(library *PatternLibrary, logger *zap.SugaredLogger) []Detector {
	return []Detector{
		&PermissionDetector{logger: logger},
		&DependencyDetector{library: library, logger: logger},
		&SensitiveDataDetector{library: library, logger: logger},
		&MalwareDetector{library: library, logger: logger},
		&VulnerabilityPatternDetector{library: library, logger: logger},
	}
}
