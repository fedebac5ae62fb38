package commands_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/DOIDFoundation/corerpc/cmd/corerpc/commands"
	"github.com/DOIDFoundation/corerpc/flags"
	"github.com/DOIDFoundation/corerpc/version"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, stdin string, args ...string) (string, error) {
	var out bytes.Buffer
	commands.RootCmd.SetArgs(args)
	commands.RootCmd.SetIn(strings.NewReader(stdin))
	commands.RootCmd.SetOut(&out)
	commands.RootCmd.SetErr(&out)
	err := commands.RootCmd.Execute()
	return out.String(), err
}

func TestConvertStdin(t *testing.T) {
	out, err := run(t, "800000", "convert", "getblockcount", "17")
	require.NoError(t, err)
	assert.Equal(t, "800000\n", out)
}

func TestConvertFileAsYAML(t *testing.T) {
	viper.Set(flags.Output, "yaml")
	defer viper.Set(flags.Output, "json")

	txid := strings.Repeat("a", 64)
	file := filepath.Join(t.TempDir(), "reply.json")
	require.NoError(t, os.WriteFile(file, []byte(`["`+txid+`"]`), 0o600))

	out, err := run(t, "", "convert", "getrawmempool", "21", file)
	require.NoError(t, err)
	assert.Equal(t, "- "+txid+"\n", out)
}

func TestConvertRejectsBadReply(t *testing.T) {
	_, err := run(t, `"xyz"`, "convert", "getbestblockhash", "28")
	assert.Error(t, err)

	_, err = run(t, "1", "convert", "getblockcount", "latest")
	assert.ErrorContains(t, err, "bad version")
}

func TestMethods(t *testing.T) {
	out, err := run(t, "", "methods")
	require.NoError(t, err)
	assert.Contains(t, out, `"name": "getrawmempool_verbose"`)
	assert.Contains(t, out, `"rpc": "getrawmempool"`)
}

func TestVersion(t *testing.T) {
	out, err := run(t, "", "version")
	require.NoError(t, err)
	assert.Contains(t, out, "Version: "+version.VersionWithMeta)
}
