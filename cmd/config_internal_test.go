package cmd

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	consts "github.com/quantww/secscan-cli/internal/constants"
)

func newScanFlagSet() *pflag.FlagSet {
	flags := pflag.NewFlagSet("scan", pflag.ContinueOnError)
	flags.String("signatures", "", "")
	flags.String("advisories", "", "")
	flags.Int("concurrency", consts.DefaultScanConcurrency, "")
	flags.Int("rate-limit", consts.DefaultScanRateLimit, "")
	return flags
}

func TestResolveScanConfig_Defaults(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	cfg := resolveScanConfig(newScanFlagSet())

	if cfg.Concurrency != consts.DefaultScanConcurrency {
		t.Errorf("expected default concurrency %d, got %d", consts.DefaultScanConcurrency, cfg.Concurrency)
	}
	if cfg.RateLimit != consts.DefaultScanRateLimit {
		t.Errorf("expected default rate limit %d, got %d", consts.DefaultScanRateLimit, cfg.RateLimit)
	}
	if cfg.MalwareSignatures != "" {
		t.Errorf("expected empty signatures path, got %q", cfg.MalwareSignatures)
	}
}

func TestResolveScanConfig_ViperValues(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("malware_signatures", "/etc/secscan/signatures.json")
	viper.Set("scan.concurrency", 8)

	cfg := resolveScanConfig(newScanFlagSet())

	if cfg.MalwareSignatures != "/etc/secscan/signatures.json" {
		t.Errorf("expected config-file signatures path, got %q", cfg.MalwareSignatures)
	}
	if cfg.Concurrency != 8 {
		t.Errorf("expected concurrency 8 from config, got %d", cfg.Concurrency)
	}
}

func TestResolveScanConfig_FlagsOverrideConfig(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.Set("scan.concurrency", 8)

	flags := newScanFlagSet()
	if err := flags.Set("concurrency", "2"); err != nil {
		t.Fatalf("set flag: %v", err)
	}
	if err := flags.Set("signatures", "/tmp/sigs.json"); err != nil {
		t.Fatalf("set flag: %v", err)
	}

	cfg := resolveScanConfig(flags)

	if cfg.Concurrency != 2 {
		t.Errorf("expected flag to win over config, got %d", cfg.Concurrency)
	}
	if cfg.MalwareSignatures != "/tmp/sigs.json" {
		t.Errorf("expected flag signatures path, got %q", cfg.MalwareSignatures)
	}
}
