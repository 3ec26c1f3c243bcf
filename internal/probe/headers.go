package probe

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	consts "github.com/quantww/secscan-cli/internal/constants"
)

// SecurityHeaders is the fixed set of response headers the audit reports on
var SecurityHeaders = []string{
	"Strict-Transport-Security",
	"Content-Security-Policy",
	"X-Frame-Options",
	"X-Content-Type-Options",
	"X-XSS-Protection",
	"Referrer-Policy",
	"Permissions-Policy",
}

// HeaderAudit maps each audited header name to whether the response carried it
type HeaderAudit map[string]bool

// AuditHeaders issues a single GET against url and reports the presence of
// each security header. Every key in SecurityHeaders is always present in
// the result. Transport failures come back as an error value.
func AuditHeaders(ctx context.Context, rawURL string) (HeaderAudit, error) {
	target := normalizeURL(rawURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	client := &http.Client{Timeout: consts.DefaultProbeTimeout}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	audit := make(HeaderAudit, len(SecurityHeaders))
	for _, name := range SecurityHeaders {
		// Key presence, not value: a header set to the empty string
		// still counts as present. Names are already canonical.
		_, ok := resp.Header[name]
		audit[name] = ok
	}
	return audit, nil
}

// normalizeURL defaults to https when the caller omits a scheme
func normalizeURL(rawURL string) string {
	if strings.Contains(rawURL, "://") {
		return rawURL
	}
	return "https://" + rawURL
}
