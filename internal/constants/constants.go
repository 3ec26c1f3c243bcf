package constants

import (
	"io/fs"
	"time"
)

const (
	// DefaultDirPerm is the default permission used when creating directories.
	DefaultDirPerm fs.FileMode = 0o755
	// DefaultFilePerm is the default permission used when creating files.
	DefaultFilePerm fs.FileMode = 0o644
)

const (
	// DefaultProbeTimeout bounds a single network probe round trip.
	DefaultProbeTimeout = 10 * time.Second
	// DefaultScanConcurrency is the number of detectors allowed to run at once.
	DefaultScanConcurrency = 4
	// DefaultScanRateLimit is the detector launch rate per second.
	DefaultScanRateLimit = 10
	// TLSSoonExpiryWindow warns operators when a certificate expires inside this window.
	TLSSoonExpiryWindow = 14 * 24 * time.Hour
)
