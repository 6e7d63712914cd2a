package main

import (
	"fmt"

	"github.com/idletoaster/ssh-mcp-server/cmd/server/commands"
	"github.com/idletoaster/ssh-mcp-server/cmd/server/config"
	"github.com/idletoaster/ssh-mcp-server/internal/database"
	"github.com/idletoaster/ssh-mcp-server/version"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "ssh-mcp-server",
	Short: "MCP server for one-shot SSH command and file operations on remote hosts",
	Long: `ssh-mcp-server exposes a fixed set of remote operations to MCP clients over
stdio. Every tool invocation opens one authenticated SSH session, runs exactly
one command and tears the session down; there is no session pooling and no
shared state between calls.

Tools:

- remote-ssh    execute a command and receive a structured JSON result
- read-lines    read a line range from a remote file
- edit-block    replace literal text in a remote file, with backup and verification
- search-code   search files under a remote directory for a pattern
- write-chunk   write or append content to a remote file

Authentication is key-based only. The private key is taken from the
privateKeyPath tool argument, then from the SSH_PRIVATE_KEY_PATH environment
variable, then from ~/.ssh/id_rsa, ~/.ssh/id_ed25519 and ~/.ssh/id_ecdsa in
that order.

Start the server from an MCP client configuration:

ssh-mcp-server serve

Or run a one-off command directly:

ssh-mcp-server exec deploy@140.120.110.10:22 -- uptime
`,
	Version: fmt.Sprintf("%s (commit: %s, date: %s, arch: %s, os: %s); audit db: %s", version.Version, version.Commit, version.Date, version.Arch, version.OS, config.Config.AuditDatabasePath),
}

func main() {
	db, err := database.InitDB()

	if err != nil {
		rootCmd.PrintErrf("Failed to initialize audit database at %s: %v\n", config.Config.AuditDatabasePath, err)
	}

	commands.RegisterCommands(rootCmd, db)

	if err := rootCmd.Execute(); err != nil {
		rootCmd.PrintErrf("%v\n", err)
	}
}
