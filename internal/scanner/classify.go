package scanner

import (
	"io"
	"net/http"
	"os"
	"strings"
)

// Classification is a coarse content category for a file
type Classification string

const (
	ClassText    Classification = "text"
	ClassImage   Classification = "image"
	ClassBinary  Classification = "binary"
	ClassEmpty   Classification = "empty"
	ClassUnknown Classification = "unknown"
)

// sniffLen matches the amount of data http.DetectContentType considers
const sniffLen = 512

// Classify returns a coarse content classification for the file at path.
// It never fails: unreadable or missing files classify as ClassUnknown so
// callers can decide whether to skip them.
func Classify(path string) Classification {
	f, err := os.Open(path)
	if err != nil {
		return ClassUnknown
	}
	defer f.Close()

	buf := make([]byte, sniffLen)
	n, err := f.Read(buf)
	if err != nil && err != io.EOF {
		return ClassUnknown
	}
	if n == 0 {
		return ClassEmpty
	}

	contentType := http.DetectContentType(buf[:n])
	switch {
	case strings.HasPrefix(contentType, "text/"):
		return ClassText
	case strings.HasPrefix(contentType, "image/"):
		return ClassImage
	default:
		return ClassBinary
	}
}
