package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/DOIDFoundation/corerpc/registry"
	"github.com/spf13/cobra"
)

// ConvertCmd converts a captured daemon reply without contacting the daemon.
var ConvertCmd = &cobra.Command{
	Use:   "convert <method> <version> [file]",
	Short: "Convert a captured reply of method from daemon release version",
	Long: `Convert reads the JSON result of a daemon call from file, or stdin when
no file is given, and prints the converted model.`,
	Args: cobra.RangeArgs(2, 3),
	RunE: func(cmd *cobra.Command, args []string) error {
		version, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("bad version %q: %w", args[1], err)
		}

		in := cmd.InOrStdin()
		if len(args) == 3 {
			f, err := os.Open(args[2])
			if err != nil {
				return err
			}
			defer f.Close()
			in = f
		}
		raw, err := io.ReadAll(in)
		if err != nil {
			return err
		}

		v, err := registry.Convert(args[0], version, json.RawMessage(raw))
		if err != nil {
			return err
		}
		return printResult(cmd.OutOrStdout(), v)
	},
}
