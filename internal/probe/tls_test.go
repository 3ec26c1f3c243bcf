package probe

import (
	"context"
	"crypto/tls"
	"crypto/x509/pkix"
	"net"
	"testing"
	"time"
)

func TestInspectTLS_UnreachableHost(t *testing.T) {
	// Reserve a port and close it so the dial is refused quickly.
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	port := listener.Addr().(*net.TCPAddr).Port
	listener.Close()

	start := time.Now()
	_, err = InspectTLS(context.Background(), "127.0.0.1", port)
	if err == nil {
		t.Fatal("expected error for unreachable host")
	}
	if elapsed := time.Since(start); elapsed > 15*time.Second {
		t.Errorf("probe took too long to fail: %v", elapsed)
	}
}

func TestInspectTLS_NonTLSEndpoint(t *testing.T) {
	// A listener that accepts but never speaks TLS triggers a handshake
	// failure, which must come back as an error value.
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer listener.Close()
	go func() {
		for {
			conn, err := listener.Accept()
			if err != nil {
				return
			}
			conn.Close()
		}
	}()

	port := listener.Addr().(*net.TCPAddr).Port
	if _, err := InspectTLS(context.Background(), "127.0.0.1", port); err == nil {
		t.Fatal("expected handshake error against a non-TLS endpoint")
	}
}

func TestTLSVersionString(t *testing.T) {
	cases := []struct {
		version uint16
		want    string
	}{
		{tls.VersionTLS10, "TLS 1.0"},
		{tls.VersionTLS11, "TLS 1.1"},
		{tls.VersionTLS12, "TLS 1.2"},
		{tls.VersionTLS13, "TLS 1.3"},
		{versionSSL30, "SSL 3.0"},
	}
	for _, tc := range cases {
		if got := tlsVersionString(tc.version); got != tc.want {
			t.Errorf("tlsVersionString(0x%04x) = %q, want %q", tc.version, got, tc.want)
		}
	}
}

func TestIssuerAttributes(t *testing.T) {
	issuer := pkix.Name{
		CommonName:   "Example CA",
		Organization: []string{"Example Org"},
		Country:      []string{"US"},
	}

	attrs := issuerAttributes(issuer)

	if attrs["commonName"] != "Example CA" {
		t.Errorf("unexpected commonName %q", attrs["commonName"])
	}
	if attrs["organizationName"] != "Example Org" {
		t.Errorf("unexpected organizationName %q", attrs["organizationName"])
	}
	if attrs["countryName"] != "US" {
		t.Errorf("unexpected countryName %q", attrs["countryName"])
	}
	if _, ok := attrs["localityName"]; ok {
		t.Error("did not expect localityName for an empty locality")
	}
}
