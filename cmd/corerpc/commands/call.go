package commands

import (
	"context"
	"encoding/json"
	"time"

	"github.com/DOIDFoundation/corerpc/client"
	"github.com/spf13/cobra"
)

var callTimeout time.Duration

// CallCmd calls a daemon method and prints the converted reply.
var CallCmd = &cobra.Command{
	Use:   "call <method> [params...]",
	Short: "Call a daemon method and print the converted reply",
	Long: `Call sends method to the configured daemon. Each param is parsed as JSON
and passed as a string when it is not valid JSON. Verbose variants such as
getrawmempool_verbose get their verbose flag appended.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		c, err := client.New(cfg.Client(), logger)
		if err != nil {
			return err
		}
		defer c.Shutdown()

		ctx, cancel := context.WithTimeout(cmd.Context(), callTimeout)
		defer cancel()

		v, err := c.Convert(ctx, args[0], parseParams(args[1:])...)
		if err != nil {
			return err
		}
		return printResult(cmd.OutOrStdout(), v)
	},
}

func parseParams(args []string) []any {
	params := make([]any, 0, len(args))
	for _, a := range args {
		var v any
		if err := json.Unmarshal([]byte(a), &v); err != nil {
			params = append(params, a)
			continue
		}
		params = append(params, json.RawMessage(a))
	}
	return params
}

func init() {
	CallCmd.Flags().DurationVar(&callTimeout, "timeout", 30*time.Second, "time to wait for the daemon")
}
