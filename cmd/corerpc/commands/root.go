package commands

import (
	"os"

	"github.com/DOIDFoundation/corerpc/config"
	"github.com/DOIDFoundation/corerpc/flags"
	"github.com/DOIDFoundation/corerpc/rpc"
	"github.com/DOIDFoundation/corerpc/watch"
	"github.com/cometbft/cometbft/libs/cli"
	cmtflags "github.com/cometbft/cometbft/libs/cli/flags"
	"github.com/cometbft/cometbft/libs/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	logger  = log.NewTMLogger(log.NewSyncWriter(os.Stderr))
	verbose bool
)

// RootCmd is the root command for corerpc. It is called once in the main
// function.
var RootCmd = &cobra.Command{
	Use:   "corerpc",
	Short: "Version aware conversion of daemon RPC replies",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) (err error) {
		viper.AddConfigPath(".")
		if viper.GetBool(flags.Trace) {
			logger = log.NewTracingLogger(logger)
		}

		logger, err = cmtflags.ParseLogLevel(viper.GetString(flags.Log_Level), logger.With("module", "main"), cmd.Flag(flags.Log_Level).DefValue)
		return err
	},
	SilenceUsage: true,
}

// loadConfig reads the validated configuration from the global viper.
func loadConfig() (*config.Config, error) {
	return config.Load(viper.GetViper())
}

func init() {
	config.SetDefaults(viper.GetViper())

	pf := RootCmd.PersistentFlags()
	pf.String(flags.Log_Level, "info", "level of logging, can be debug, info, error, none or comma-separated list of module:level pairs with an optional *:level pair (* means all other modules). e.g. 'rpc:debug,watch:debug,*:error'")
	pf.StringP(flags.Output, "o", "json", "output format of results, json or yaml")
	pf.String(flags.Daemon_Host, "127.0.0.1:8332", "daemon RPC address, prefix with https:// to use TLS")
	pf.String(flags.Daemon_User, "", "daemon RPC user")
	pf.String(flags.Daemon_Pass, "", "daemon RPC password")
	pf.Int(flags.Daemon_Version, 0, "daemon major release (17 to 28), 0 to ask the daemon")

	RootCmd.AddCommand(
		StartCmd,
		ConvertCmd,
		CallCmd,
		MethodsCmd,
		VersionCmd,
		cli.NewCompletionCmd(RootCmd, true),
	)
}

// addStartFlags exposes configuration options for starting a node.
func addStartFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.String(flags.RPC_Addr, rpc.DefaultConfig.ListenAddress, "listen address of the JSON-RPC server")
	f.String(flags.RPC_WSPath, rpc.DefaultConfig.WebsocketPath, "path of the websocket endpoint")
	f.Bool(flags.Watch_Enabled, false, "poll the daemon mempool and publish its entries")
	f.Duration(flags.Watch_Interval, watch.DefaultConfig.Interval, "mempool polling interval")
	f.Int(flags.Watch_Cache, watch.DefaultConfig.CacheSize, "number of mempool entries remembered between polls")
	f.Bool(flags.Metrics_Enabled, false, "serve prometheus metrics")
	f.String(flags.Metrics_Addr, config.DefaultMetricsAddr, "listen address of the metrics server")
}
