package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"rebill/internal/config"
	"rebill/internal/rebill"
	"rebill/internal/soap"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

var (
	envFile string
	rootCmd = &cobra.Command{
		Use:          "rebillctl",
		Short:        "Issue single eWAY rebill operations",
		SilenceUsage: true,
	}
)

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", ".env", "path to .env file")
	rootCmd.AddCommand(newCustomerCmd())
	rootCmd.AddCommand(newPaymentCmd())
	rootCmd.AddCommand(newTransactionsCmd())
}

// newClient loads configuration and opens a session for one command
func newClient(ctx context.Context) (*rebill.Client, error) {
	cfg, err := config.LoadE(envFile)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	zerolog.SetGlobalLevel(cfg.App.Level())
	return rebill.New(ctx, cfg.Eway)
}

// parseFields turns repeated name=value flags into a record
func parseFields(pairs []string) (rebill.Fields, error) {
	fields := rebill.Fields{}
	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		name = strings.TrimSpace(name)
		if !ok || name == "" {
			return nil, fmt.Errorf("invalid field %q, want name=value", pair)
		}
		fields[name] = value
	}
	return fields, nil
}

func printResponse(cmd *cobra.Command, resp *soap.Response) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(map[string]any{
		"operation": resp.Operation,
		"result":    resp.Value(),
	})
}

func addFieldFlag(cmd *cobra.Command, target *[]string) {
	cmd.Flags().StringArrayVarP(target, "field", "f", nil, "record field as name=value (repeatable)")
}
