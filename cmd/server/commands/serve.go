package commands

import (
	"os"

	"github.com/idletoaster/ssh-mcp-server/internal/logger"
	"github.com/idletoaster/ssh-mcp-server/version"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var ServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the MCP server on stdio",
	Long:  `Run the MCP server on stdio. This command is meant to be launched by an MCP client; the protocol stream owns stdout, all logging goes to stderr.`,
	Run: func(cmd *cobra.Command, _ []string) {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			logger.Warn("stdout is a terminal; serve expects to be launched by an MCP client over a pipe")
		}

		mcpServer := server.NewMCPServer("ssh-mcp-server", version.Version, server.WithToolCapabilities(false))

		toolsRegistry.Register(mcpServer)

		logger.Info("ssh-mcp-server %s serving on stdio", version.Version)

		if err := server.ServeStdio(mcpServer); err != nil {
			logger.Error("server stopped: %v", err)
		}
	},
}
