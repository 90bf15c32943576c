package cmd

import (
	"context"
	"fmt"

	"github.com/shamank/adwords-sdk-go/pkg/config"
	"github.com/shamank/adwords-sdk-go/pkg/sdk"
	"github.com/spf13/cobra"
)

var (
	cfgFile     string
	prefix      string
	clientEmail string
	verbose     bool
)

var rootCmd = &cobra.Command{
	Use:   "adwords",
	Short: "Command line client for the AdWords SOAP API",
	Long: `adwords calls AdWords API operations by name.

Credentials and settings are read from a YAML or TOML file. Keys are
expected under the "adwords." prefix, for example:

  adwords:
    email: manager@example.com
    password: secret
    developer_token: DEV_TOKEN
    services: [Campaign, AdGroup]`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (.yaml, .yml or .toml)")
	rootCmd.PersistentFlags().StringVar(&prefix, "prefix", config.DefaultPrefix, "key prefix of the SDK options in the config file")
	rootCmd.PersistentFlags().StringVar(&clientEmail, "client-email", "", "act on behalf of this client account")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// newClient builds an SDK client from the config file and flags.
func newClient(ctx context.Context) (*sdk.Client, error) {
	mapping := map[string]string{}
	if cfgFile != "" {
		m, err := config.LoadFile(cfgFile)
		if err != nil {
			return nil, fmt.Errorf("load config: %w", err)
		}
		mapping = m
	}

	overrides := map[string]string{}
	if clientEmail != "" {
		overrides["client_email"] = clientEmail
	}
	if verbose {
		overrides["debug"] = "true"
	}
	client, err := sdk.NewClientFromConfig(ctx, mapping, prefix, overrides)
	if err != nil {
		return nil, fmt.Errorf("build client: %w", err)
	}
	return client, nil
}
