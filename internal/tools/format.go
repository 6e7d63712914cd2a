package tools

import (
	"encoding/json"
	"fmt"

	"github.com/idletoaster/ssh-mcp-server/internal/sshexec"
)

// CommandEnvelope is the structured response of the remote-ssh tool. Every
// outcome, including connection and validation failures, is folded into this
// shape; the tool never raises.
type CommandEnvelope struct {
	Success  bool    `json:"success"`
	Output   string  `json:"output"`
	Error    *string `json:"error"`
	ExitCode int     `json:"exitCode"`
	Host     string  `json:"host"`
	Command  string  `json:"command"`
}

// FormatCommandEnvelope renders the remote-ssh response. err covers failures
// before or instead of an execution; result carries a completed one.
func FormatCommandEnvelope(host, command string, result *sshexec.Result, err error) string {
	envelope := CommandEnvelope{
		Host:    host,
		Command: command,
	}

	switch {
	case err != nil:
		errText := err.Error()
		envelope.Error = &errText
	case result.Err != nil:
		errText := result.Err.Error()
		envelope.Error = &errText
		envelope.Output = result.Stdout
		envelope.ExitCode = result.ExitCode
	default:
		envelope.Output = result.Stdout
		envelope.ExitCode = result.ExitCode
		envelope.Success = result.ExitCode == 0
		if result.Stderr != "" {
			stderr := result.Stderr
			envelope.Error = &stderr
		}
	}

	rendered, marshalErr := json.MarshalIndent(envelope, "", "  ")

	if marshalErr != nil {
		// Unreachable for this struct shape.
		return fmt.Sprintf(`{"success": false, "error": %q}`, marshalErr.Error())
	}

	return string(rendered)
}

// FormatScriptReport returns the synthesized script's own textual report,
// which is the entire response body of the four file tools.
func FormatScriptReport(result *sshexec.Result) string {
	if result.Stdout == "" && result.Stderr != "" {
		return result.Stderr
	}
	return result.Stdout
}

// FormatFailure renders a thrown error (validation, key resolution,
// connection, channel) as the single plain-text line the file tools reply
// with instead of a structured envelope.
func FormatFailure(err error) string {
	return fmt.Sprintf("Error: %v", err)
}
