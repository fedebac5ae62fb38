package main

import (
	"os"
	"path/filepath"

	"github.com/DOIDFoundation/corerpc/cmd/corerpc/commands"

	"github.com/cometbft/cometbft/libs/cli"
)

func main() {
	cmd := cli.PrepareBaseCmd(commands.RootCmd, "CORERPC", os.ExpandEnv(filepath.Join("$HOME", ".corerpc")))

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
