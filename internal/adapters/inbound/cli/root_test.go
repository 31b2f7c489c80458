package cli_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tubeharvest/shipkit/internal/adapters/inbound/cli"
)

func TestVersionCommand(t *testing.T) {
	cmd := cli.NewRootCmdForTest()
	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetArgs([]string{"version"})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "shipkit")
}

func TestRootCommand_RegistersSubcommands(t *testing.T) {
	cmd := cli.NewRootCmdForTest()
	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.Contains(t, names, "publish")
	assert.Contains(t, names, "validate")
	assert.Contains(t, names, "version")
	assert.Contains(t, names, "mcp")
}
