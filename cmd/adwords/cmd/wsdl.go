package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var refresh bool

var wsdlCmd = &cobra.Command{
	Use:   "wsdl",
	Short: "Show the cached service descriptions",
	Long: `Builds the client, downloading missing service descriptions, and prints the
cache file of every configured service. With --refresh every description is
downloaded again.`,
	Args: cobra.NoArgs,
	RunE: runWSDL,
}

func init() {
	wsdlCmd.Flags().BoolVar(&refresh, "refresh", false, "download every description again")
	rootCmd.AddCommand(wsdlCmd)
}

func runWSDL(cmd *cobra.Command, _ []string) error {
	client, err := newClient(cmd.Context())
	if err != nil {
		return err
	}
	if refresh {
		if client, err = client.Refresh(cmd.Context()); err != nil {
			return fmt.Errorf("refresh: %w", err)
		}
	}
	for _, p := range client.DescriptionPaths() {
		fmt.Fprintln(cmd.OutOrStdout(), p)
	}
	return nil
}
