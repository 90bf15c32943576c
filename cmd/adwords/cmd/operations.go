package cmd

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

var operationsCmd = &cobra.Command{
	Use:     "operations",
	Aliases: []string{"ops"},
	Short:   "List the bound operations",
	Long:    `Lists every operation of the configured services with its service and cardinality.`,
	Args:    cobra.NoArgs,
	RunE:    runOperations,
}

func init() {
	rootCmd.AddCommand(operationsCmd)
}

func runOperations(cmd *cobra.Command, _ []string) error {
	client, err := newClient(cmd.Context())
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "OPERATION\tSERVICE\tRESULT")
	for _, name := range client.Operations() {
		b, _ := client.Binding(name)
		fmt.Fprintf(w, "%s\t%s\t%s\n", b.Name, b.Service, b.Cardinality)
	}
	return w.Flush()
}
