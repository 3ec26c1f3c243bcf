package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	consts "github.com/quantww/secscan-cli/internal/constants"
	"github.com/quantww/secscan-cli/internal/probe"
)

var sslCheckCmd = &cobra.Command{
	Use:   "ssl-check <host>",
	Short: "Inspect the TLS configuration of a host",
	Long: `Perform a single TLS handshake against the host and report the
negotiated protocol version, cipher suite, certificate expiry and issuer.
Failures are reported as an {"error": ...} payload, not a crash.`,
	Args: requireArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		port, _ := cmd.Flags().GetInt("port")

		info, err := probe.InspectTLS(cmd.Context(), args[0], port)
		if err != nil {
			printJSON(map[string]string{"error": err.Error()})
			return nil
		}
		printJSON(info)

		if !quiet && tlsExpiresSoon(info.Expiry) {
			fmt.Fprintln(os.Stderr, colorWarn("TLS certificate expires soon"))
		}
		return nil
	},
}

// tlsExpiresSoon reports whether an RFC3339 expiry falls inside the
// warning window. Unparseable timestamps are not warned about.
func tlsExpiresSoon(expiry string) bool {
	t, err := time.Parse(time.RFC3339, expiry)
	if err != nil {
		return false
	}
	return time.Until(t) < consts.TLSSoonExpiryWindow
}

var headersCheckCmd = &cobra.Command{
	Use:   "headers-check <url>",
	Short: "Audit a URL for security response headers",
	Long: `Issue a single GET against the URL and report the presence of the
recognized security headers as booleans. Transport failures are reported
as an {"error": ...} payload.`,
	Args: requireArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		audit, err := probe.AuditHeaders(cmd.Context(), args[0])
		if err != nil {
			printJSON(map[string]string{"error": err.Error()})
			return nil
		}
		printJSON(audit)
		return nil
	},
}

func init() {
	sslCheckCmd.Flags().Int("port", probe.DefaultTLSPort, "TLS port to connect to")
}
