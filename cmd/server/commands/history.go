package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

var historyLimit = 20

var HistoryCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent tool invocations from the audit log",
	Run: func(cmd *cobra.Command, _ []string) {
		if auditRepository == nil {
			cmd.PrintErrln("audit log is not available")
			return
		}

		records, err := auditRepository.Recent(historyLimit)

		if err != nil {
			cmd.PrintErrf("Error: %v\n", err)
			return
		}

		if len(records) == 0 {
			fmt.Fprintln(cmd.OutOrStdout(), "no recorded invocations")
			return
		}

		for _, record := range records {
			status := "ok"
			if !record.Success {
				status = fmt.Sprintf("exit %d", record.ExitCode)
			}
			if record.Error != "" {
				status = record.Error
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s  %-11s %s@%s  %s  (%dms)  %s\n",
				record.CreatedAt.Format("2006-01-02 15:04:05"),
				record.Tool,
				record.User,
				record.Host,
				status,
				record.DurationMs,
				record.Command,
			)
		}
	},
}

func init() {
	HistoryCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "Number of records to show")
}
