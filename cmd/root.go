package cmd

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var cfgFile string
var logger *zap.SugaredLogger
var quiet bool

// CLI contract errors, surfaced to callers as {"error": "..."} payloads
var (
	errInvalidArguments = errors.New("Invalid arguments")
	errInvalidCommand   = errors.New("Invalid command")
)

var rootCmd = &cobra.Command{
	Use:           "secscan",
	Short:         "Static project security scanning and safe network probes",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// init config
		if cfgFile != "" {
			viper.SetConfigFile(cfgFile)
		} else {
			viper.AddConfigPath("$HOME")
			viper.SetConfigName(".secscan")
			viper.SetConfigType("yaml")
		}
		_ = viper.ReadInConfig()

		// init logger
		if quiet {
			logger = zap.NewNop().Sugar()
			return nil
		}
		l, err := zap.NewProduction()
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		logger = l.Sugar()
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		// Reached for a bare invocation or an unrecognized subcommand.
		if len(args) == 0 {
			return errInvalidArguments
		}
		return errInvalidCommand
	},
}

// Execute runs the root command and emits a JSON error payload with a
// non-zero exit on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if strings.HasPrefix(err.Error(), "unknown command") {
			err = errInvalidCommand
		}
		printJSON(map[string]string{"error": err.Error()})
		os.Exit(1)
	}
}

// requireArgs enforces an exact argument count using the CLI error contract
func requireArgs(n int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != n {
			return errInvalidArguments
		}
		return nil
	}
}

// printJSON writes a compact JSON payload to stdout
func printJSON(v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		fmt.Fprintf(os.Stderr, "marshal output: %v\n", err)
		return
	}
	fmt.Println(string(data))
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.secscan.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "suppress log output and verdict summary")

	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(sslCheckCmd)
	rootCmd.AddCommand(headersCheckCmd)
	rootCmd.AddCommand(versionCmd)
}
