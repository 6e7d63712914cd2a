package commands

import (
	"fmt"
	"strings"

	"github.com/idletoaster/ssh-mcp-server/internal/tools"

	"github.com/spf13/cobra"
)

var execKeyPath = ""

var ExecCmd = &cobra.Command{
	Use:   "exec username@hostname[:port] -- command...",
	Short: "Execute a one-off command on a remote host",
	Long:  `Execute a one-off command on a remote host over SSH and print the same structured JSON result the remote-ssh tool returns. Useful for verifying connectivity and credentials outside an MCP client.`,
	Args:  cobra.MinimumNArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		username, hostname, port, err := parseSSHURL(args[0])

		if err != nil {
			cmd.PrintErrf("Error: %v\n", err)
			return
		}

		command := strings.Join(args[1:], " ")

		conn := tools.ConnectionArgs{
			Host:           hostname,
			User:           username,
			Port:           int(port),
			PrivateKeyPath: execKeyPath,
		}

		fmt.Fprintln(cmd.OutOrStdout(), toolsRegistry.ExecuteEnvelope(conn, command))
	},
}

func init() {
	ExecCmd.Flags().StringVar(&execKeyPath, "ssh-key-path", "", "Path to SSH private key file")
}
