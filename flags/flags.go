package flags

const (
	Home   = "home"
	Trace  = "trace"
	Output = "output"

	Log_Level = "log.level"

	Daemon_Host    = "daemon.host"
	Daemon_User    = "daemon.user"
	Daemon_Pass    = "daemon.pass"
	Daemon_Version = "daemon.version"

	RPC_Addr   = "rpc.addr"
	RPC_WSPath = "rpc.ws_path"

	Watch_Enabled  = "watch.enabled"
	Watch_Interval = "watch.interval"
	Watch_Cache    = "watch.cache"

	Metrics_Enabled = "metrics.enabled"
	Metrics_Addr    = "metrics.addr"
)
