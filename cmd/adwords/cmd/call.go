package cmd

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shamank/adwords-sdk-go/pkg/model"
	"github.com/spf13/cobra"
)

var showHeaders bool

var callCmd = &cobra.Command{
	Use:   "call <operation> [key=value...]",
	Short: "Invoke an operation",
	Long: `Invokes an operation by name and prints the result as JSON.

Arguments are given as key=value pairs. A key given more than once is sent
as a repeated element:

  adwords call getCampaignList ids=101 ids=102`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCall,
}

func init() {
	callCmd.Flags().BoolVar(&showHeaders, "headers", false, "include the response headers in the output")
	rootCmd.AddCommand(callCmd)
}

func runCall(cmd *cobra.Command, args []string) error {
	params, err := parseArgs(args[1:])
	if err != nil {
		return err
	}

	client, err := newClient(cmd.Context())
	if err != nil {
		return err
	}

	res, err := client.Invoke(cmd.Context(), args[0], params)
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}

	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(render(res, showHeaders))
}

// parseArgs turns key=value pairs into call arguments. Repeated keys become
// lists in the order given.
func parseArgs(pairs []string) (map[string]any, error) {
	out := make(map[string]any, len(pairs))
	for _, p := range pairs {
		key, value, ok := strings.Cut(p, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid argument %q: expected key=value", p)
		}
		switch prev := out[key].(type) {
		case nil:
			out[key] = value
		case string:
			out[key] = []string{prev, value}
		case []string:
			out[key] = append(prev, value)
		}
	}
	return out, nil
}

// render shapes a result for JSON output: a sequence for Many, the value for
// Single and null for Empty.
func render(res *model.Result, withHeaders bool) any {
	var body any
	switch res.Kind {
	case model.Many:
		body = res.List()
	case model.Single:
		body = res.Value()
	}
	if !withHeaders {
		return body
	}
	return map[string]any{"headers": res.Headers, "result": body}
}
