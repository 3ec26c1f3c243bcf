package scanner

import (
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// manifestFiles are the dependency descriptors recognized at the project root
var manifestFiles = []string{
	"requirements.txt",
	"package.json",
	"Gemfile",
	"go.mod",
	"pom.xml",
}

// DependencyDetector checks for dependency manifests at the project root and
// looks them up in the injected advisory database. Until a real advisory feed
// is supplied the database is empty, so this detector emits no findings; it
// stays registered as the extension point for dependency auditing.
type DependencyDetector struct {
	library *PatternLibrary
	logger  *zap.SugaredLogger
}

// Name returns the name of this detector
func (d *DependencyDetector) Name() string { return "dependencies" }

// Detect reports which manifests are present. Findings are only produced
// for packages listed in the advisory database.
func (d *DependencyDetector) Detect(root string) []Finding {
	var findings []Finding

	for _, name := range manifestFiles {
		path := filepath.Join(root, name)
		if _, err := os.Stat(path); err != nil {
			continue
		}
		d.logger.Debugw("dependency manifest present", "manifest", name)

		// Matching manifest contents against AdvisoriesFor requires a
		// populated advisory feed; with the default empty database this
		// produces nothing.
	}

	return findings
}
