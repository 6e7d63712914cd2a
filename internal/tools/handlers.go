package tools

import (
	"context"
	"time"

	"github.com/idletoaster/ssh-mcp-server/cmd/server/config"
	"github.com/idletoaster/ssh-mcp-server/internal/audit"
	"github.com/idletoaster/ssh-mcp-server/internal/logger"
	"github.com/idletoaster/ssh-mcp-server/internal/scripts"
	"github.com/idletoaster/ssh-mcp-server/internal/sshexec"
	"github.com/idletoaster/ssh-mcp-server/internal/sshkeys"

	"github.com/mark3labs/mcp-go/mcp"
)

func parseConnectionArgs(req mcp.CallToolRequest) ConnectionArgs {
	return ConnectionArgs{
		Host:           mcp.ParseString(req, "host", ""),
		User:           mcp.ParseString(req, "user", ""),
		PrivateKeyPath: mcp.ParseString(req, "privateKeyPath", ""),
		Port:           mcp.ParseInt(req, "port", int(config.Config.DefaultPort)),
	}
}

// run resolves credentials and performs the single remote execution for a
// tool invocation. The explicit privateKeyPath argument wins, then the
// environment fallback, then the default candidates inside sshkeys.
func (r *Registry) run(conn ConnectionArgs, command string) (*sshexec.Result, error) {
	keyPath := conn.PrivateKeyPath
	if keyPath == "" {
		keyPath = config.Config.FallbackPrivateKeyPath
	}

	key, err := sshkeys.Resolve(keyPath)

	if err != nil {
		return nil, err
	}

	return r.Exec.Execute(&sshexec.Request{
		Host:    conn.Host,
		Port:    uint(conn.Port),
		User:    conn.User,
		Command: command,
		Key:     key,
	})
}

// record writes an audit entry; audit failures are logged, never surfaced.
func (r *Registry) record(tool string, conn ConnectionArgs, summary string, result *sshexec.Result, err error, started time.Time) {
	if r.Audit == nil {
		return
	}

	entry := &audit.Record{
		Tool:       tool,
		Host:       conn.Host,
		User:       conn.User,
		Command:    summary,
		DurationMs: time.Since(started).Milliseconds(),
	}

	switch {
	case err != nil:
		entry.Error = err.Error()
	case result.Err != nil:
		entry.Error = result.Err.Error()
		entry.ExitCode = result.ExitCode
	default:
		entry.ExitCode = result.ExitCode
		entry.Success = result.ExitCode == 0
	}

	if _, auditErr := r.Audit.Create(entry); auditErr != nil {
		logger.Warn("failed to record audit entry for %s: %v", tool, auditErr)
	}
}

// ExecuteEnvelope runs one raw command and renders the structured envelope.
// Shared by the remote-ssh tool and the exec CLI command.
func (r *Registry) ExecuteEnvelope(conn ConnectionArgs, command string) string {
	started := time.Now()
	result, err := r.run(conn, command)
	r.record("remote-ssh", conn, command, result, err, started)

	if err != nil {
		logger.Error("remote-ssh on %s failed: %v", conn.Host, err)
	}

	return FormatCommandEnvelope(conn.Host, command, result, err)
}

func (r *Registry) handleRemoteSSH(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := RemoteSSHArgs{
		ConnectionArgs: parseConnectionArgs(req),
		Command:        mcp.ParseString(req, "command", ""),
	}

	if err := args.Validate(); err != nil {
		return mcp.NewToolResultText(FormatCommandEnvelope(args.Host, args.Command, nil, err)), nil
	}

	return mcp.NewToolResultText(r.ExecuteEnvelope(args.ConnectionArgs, args.Command)), nil
}

func (r *Registry) handleEditBlock(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := EditBlockArgs{
		ConnectionArgs:       parseConnectionArgs(req),
		FilePath:             mcp.ParseString(req, "filePath", ""),
		OldText:              mcp.ParseString(req, "oldText", ""),
		NewText:              mcp.ParseString(req, "newText", ""),
		ExpectedReplacements: mcp.ParseInt(req, "expectedReplacements", 1),
	}

	if err := args.Validate(); err != nil {
		return mcp.NewToolResultError(FormatFailure(err)), nil
	}

	script, err := scripts.EditBlock(args.FilePath, args.OldText, args.NewText, args.ExpectedReplacements)

	if err != nil {
		return mcp.NewToolResultError(FormatFailure(err)), nil
	}

	started := time.Now()
	result, err := r.run(args.ConnectionArgs, script)
	r.record("edit-block", args.ConnectionArgs, "edit-block "+args.FilePath, result, err, started)

	if err != nil {
		return mcp.NewToolResultError(FormatFailure(err)), nil
	}

	return mcp.NewToolResultText(FormatScriptReport(result)), nil
}

func (r *Registry) handleReadLines(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := ReadLinesArgs{
		ConnectionArgs: parseConnectionArgs(req),
		FilePath:       mcp.ParseString(req, "filePath", ""),
		StartLine:      mcp.ParseInt(req, "startLine", 1),
		EndLine:        mcp.ParseInt(req, "endLine", 0),
		MaxLines:       mcp.ParseInt(req, "maxLines", 100),
	}

	if err := args.Validate(); err != nil {
		return mcp.NewToolResultError(FormatFailure(err)), nil
	}

	script, err := scripts.ReadLines(args.FilePath, args.StartLine, args.EndLine, args.MaxLines)

	if err != nil {
		return mcp.NewToolResultError(FormatFailure(err)), nil
	}

	started := time.Now()
	result, err := r.run(args.ConnectionArgs, script)
	r.record("read-lines", args.ConnectionArgs, "read-lines "+args.FilePath, result, err, started)

	if err != nil {
		return mcp.NewToolResultError(FormatFailure(err)), nil
	}

	return mcp.NewToolResultText(FormatScriptReport(result)), nil
}

func (r *Registry) handleSearchCode(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := SearchCodeArgs{
		ConnectionArgs: parseConnectionArgs(req),
		Path:           mcp.ParseString(req, "path", ""),
		Pattern:        mcp.ParseString(req, "pattern", ""),
		FilePattern:    mcp.ParseString(req, "filePattern", ""),
		IgnoreCase:     mcp.ParseBoolean(req, "ignoreCase", false),
		MaxResults:     mcp.ParseInt(req, "maxResults", 50),
		ContextLines:   mcp.ParseInt(req, "contextLines", 2),
	}

	if err := args.Validate(); err != nil {
		return mcp.NewToolResultError(FormatFailure(err)), nil
	}

	script, err := scripts.SearchCode(args.Path, args.Pattern, args.FilePattern, args.IgnoreCase, args.MaxResults, args.ContextLines)

	if err != nil {
		return mcp.NewToolResultError(FormatFailure(err)), nil
	}

	started := time.Now()
	result, err := r.run(args.ConnectionArgs, script)
	r.record("search-code", args.ConnectionArgs, "search-code "+args.Path, result, err, started)

	if err != nil {
		return mcp.NewToolResultError(FormatFailure(err)), nil
	}

	return mcp.NewToolResultText(FormatScriptReport(result)), nil
}

func (r *Registry) handleWriteChunk(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := WriteChunkArgs{
		ConnectionArgs: parseConnectionArgs(req),
		FilePath:       mcp.ParseString(req, "filePath", ""),
		Content:        mcp.ParseString(req, "content", ""),
		Mode:           mcp.ParseString(req, "mode", scripts.ModeRewrite),
	}

	if err := args.Validate(); err != nil {
		return mcp.NewToolResultError(FormatFailure(err)), nil
	}

	script, err := scripts.WriteChunk(args.FilePath, args.Content, args.Mode)

	if err != nil {
		return mcp.NewToolResultError(FormatFailure(err)), nil
	}

	started := time.Now()
	result, err := r.run(args.ConnectionArgs, script)
	r.record("write-chunk", args.ConnectionArgs, "write-chunk "+args.FilePath, result, err, started)

	if err != nil {
		return mcp.NewToolResultError(FormatFailure(err)), nil
	}

	return mcp.NewToolResultText(FormatScriptReport(result)), nil
}
