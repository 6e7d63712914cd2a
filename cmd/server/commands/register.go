package commands

import (
	"github.com/idletoaster/ssh-mcp-server/internal/audit"
	"github.com/idletoaster/ssh-mcp-server/internal/sshexec"
	"github.com/idletoaster/ssh-mcp-server/internal/tools"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var (
	auditRepository *audit.Repository
	execService     *sshexec.Service
	toolsRegistry   *tools.Registry
)

func RegisterCommands(rootCmd *cobra.Command, db *gorm.DB) {
	if db != nil {
		auditRepository = audit.NewRepository(db)
	}

	execService = sshexec.NewService()
	toolsRegistry = tools.NewRegistry(execService, auditRepository)

	rootCmd.AddCommand(ServeCmd)
	rootCmd.AddCommand(ExecCmd)
	rootCmd.AddCommand(HistoryCmd)
}
