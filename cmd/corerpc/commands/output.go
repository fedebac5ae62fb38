package commands

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/DOIDFoundation/corerpc/flags"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// printResult writes v in the configured output format. YAML output is
// derived from the JSON form so both share field names and order.
func printResult(w io.Writer, v any) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	switch format := viper.GetString(flags.Output); format {
	case "", "json":
		_, err = fmt.Fprintln(w, string(b))
		return err
	case "yaml":
		var node yaml.Node
		if err := yaml.Unmarshal(b, &node); err != nil {
			return err
		}
		blockStyle(&node)
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(&node); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}

// blockStyle drops the flow and quoting styles a JSON document parses into.
func blockStyle(n *yaml.Node) {
	n.Style = 0
	for _, c := range n.Content {
		blockStyle(c)
	}
}
