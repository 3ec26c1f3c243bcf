package probe

import (
	"context"
	"crypto/tls"
	"crypto/x509/pkix"
	"fmt"
	"net"
	"strconv"
	"time"

	consts "github.com/quantww/secscan-cli/internal/constants"
)

// DefaultTLSPort is used when the caller does not specify a port
const DefaultTLSPort = 443

// versionSSL30 represents the legacy SSL 3.0 protocol version (0x0300).
// Defined locally so we can report SSL 3.0 without referencing the
// deprecated tls.VersionSSL30 symbol.
const versionSSL30 uint16 = 0x0300

// TLSInfo describes the outcome of a successful TLS handshake
type TLSInfo struct {
	Version string            `json:"version"`
	Cipher  string            `json:"cipher"`
	Expiry  string            `json:"expiry"`
	Issuer  map[string]string `json:"issuer"`
}

// InspectTLS performs a single TLS handshake against host:port and reports
// the negotiated protocol version, cipher suite and peer certificate
// details. Every connection, handshake or certificate failure comes back as
// an error value; the probe never panics past its boundary.
func InspectTLS(ctx context.Context, host string, port int) (*TLSInfo, error) {
	if port <= 0 {
		port = DefaultTLSPort
	}

	dialer := &tls.Dialer{
		NetDialer: &net.Dialer{Timeout: consts.DefaultProbeTimeout},
		Config:    &tls.Config{ServerName: host},
	}

	conn, err := dialer.DialContext(ctx, "tcp", net.JoinHostPort(host, strconv.Itoa(port)))
	if err != nil {
		return nil, fmt.Errorf("tls handshake with %s: %w", host, err)
	}
	defer conn.Close()

	state := conn.(*tls.Conn).ConnectionState()
	if len(state.PeerCertificates) == 0 {
		return nil, fmt.Errorf("no peer certificate presented by %s", host)
	}
	cert := state.PeerCertificates[0]

	return &TLSInfo{
		Version: tlsVersionString(state.Version),
		Cipher:  tls.CipherSuiteName(state.CipherSuite),
		Expiry:  cert.NotAfter.UTC().Format(time.RFC3339),
		Issuer:  issuerAttributes(cert.Issuer),
	}, nil
}

// issuerAttributes flattens the certificate issuer name into a string map
func issuerAttributes(issuer pkix.Name) map[string]string {
	attrs := make(map[string]string)
	if issuer.CommonName != "" {
		attrs["commonName"] = issuer.CommonName
	}
	if len(issuer.Organization) > 0 {
		attrs["organizationName"] = issuer.Organization[0]
	}
	if len(issuer.OrganizationalUnit) > 0 {
		attrs["organizationalUnitName"] = issuer.OrganizationalUnit[0]
	}
	if len(issuer.Country) > 0 {
		attrs["countryName"] = issuer.Country[0]
	}
	if len(issuer.Locality) > 0 {
		attrs["localityName"] = issuer.Locality[0]
	}
	if len(issuer.Province) > 0 {
		attrs["stateOrProvinceName"] = issuer.Province[0]
	}
	return attrs
}

// tlsVersionString converts a TLS version constant to its display name
func tlsVersionString(version uint16) string {
	switch version {
	case versionSSL30:
		return "SSL 3.0"
	case tls.VersionTLS10:
		return "TLS 1.0"
	case tls.VersionTLS11:
		return "TLS 1.1"
	case tls.VersionTLS12:
		return "TLS 1.2"
	case tls.VersionTLS13:
		return "TLS 1.3"
	default:
		return fmt.Sprintf("Unknown (0x%04x)", version)
	}
}
