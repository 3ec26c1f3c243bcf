package cmd

import (
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	consts "github.com/quantww/secscan-cli/internal/constants"
)

// ScanRuntimeConfig consolidates flag- and config-driven settings for the
// scan command. Resolution order: flag > config file > default.
type ScanRuntimeConfig struct {
	MalwareSignatures string
	AdvisoryDB        string
	Concurrency       int
	RateLimit         int
}

// resolveScanConfig merges viper-backed config values with explicit flags
func resolveScanConfig(flags *pflag.FlagSet) ScanRuntimeConfig {
	cfg := ScanRuntimeConfig{
		Concurrency: consts.DefaultScanConcurrency,
		RateLimit:   consts.DefaultScanRateLimit,
	}

	if viper.IsSet("malware_signatures") {
		cfg.MalwareSignatures = viper.GetString("malware_signatures")
	}
	if viper.IsSet("advisory_db") {
		cfg.AdvisoryDB = viper.GetString("advisory_db")
	}
	if viper.IsSet("scan.concurrency") {
		cfg.Concurrency = viper.GetInt("scan.concurrency")
	}
	if viper.IsSet("scan.rate_limit") {
		cfg.RateLimit = viper.GetInt("scan.rate_limit")
	}

	if flags.Changed("signatures") {
		cfg.MalwareSignatures, _ = flags.GetString("signatures")
	}
	if flags.Changed("advisories") {
		cfg.AdvisoryDB, _ = flags.GetString("advisories")
	}
	if flags.Changed("concurrency") {
		cfg.Concurrency, _ = flags.GetInt("concurrency")
	}
	if flags.Changed("rate-limit") {
		cfg.RateLimit, _ = flags.GetInt("rate-limit")
	}

	return cfg
}
