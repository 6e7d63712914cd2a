// Package tools exposes the five remote-operation tools over MCP. Each
// invocation is independent: credentials are resolved, one SSH session is
// opened, one command runs, the session is torn down. There is no shared
// session and no cross-call state beyond the read-only configuration and the
// audit log.
package tools

import (
	"github.com/idletoaster/ssh-mcp-server/cmd/server/config"
	"github.com/idletoaster/ssh-mcp-server/internal/audit"
	"github.com/idletoaster/ssh-mcp-server/internal/sshexec"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

type Registry struct {
	Exec  *sshexec.Service
	Audit *audit.Repository
}

// NewRegistry wires the execution engine and an optional audit repository
// (nil disables auditing).
func NewRegistry(exec *sshexec.Service, auditRepo *audit.Repository) *Registry {
	return &Registry{
		Exec:  exec,
		Audit: auditRepo,
	}
}

func (r *Registry) Register(s *server.MCPServer) {
	s.AddTool(remoteSSHTool(), r.handleRemoteSSH)
	s.AddTool(editBlockTool(), r.handleEditBlock)
	s.AddTool(readLinesTool(), r.handleReadLines)
	s.AddTool(searchCodeTool(), r.handleSearchCode)
	s.AddTool(writeChunkTool(), r.handleWriteChunk)
}

func connectionOptions() []mcp.ToolOption {
	return []mcp.ToolOption{
		mcp.WithString("host",
			mcp.Required(),
			mcp.Description("Remote host name or IP address"),
		),
		mcp.WithString("user",
			mcp.Required(),
			mcp.Description("SSH username"),
		),
		mcp.WithString("privateKeyPath",
			mcp.Description("Path to the SSH private key (falls back to SSH_PRIVATE_KEY_PATH, then ~/.ssh/id_rsa, ~/.ssh/id_ed25519, ~/.ssh/id_ecdsa)"),
		),
		mcp.WithNumber("port",
			mcp.DefaultNumber(float64(config.Config.DefaultPort)),
			mcp.Description("SSH port"),
		),
	}
}

func remoteSSHTool() mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription("Execute a command on a remote host over SSH and return a structured result"),
		mcp.WithString("command",
			mcp.Required(),
			mcp.Description("The exact command to execute remotely"),
		),
	}

	return mcp.NewTool("remote-ssh", append(opts, connectionOptions()...)...)
}

func editBlockTool() mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription("Replace literal text in a remote file, with a timestamped backup and occurrence verification"),
		mcp.WithString("filePath",
			mcp.Required(),
			mcp.Description("Absolute path of the file to edit"),
		),
		mcp.WithString("oldText",
			mcp.Required(),
			mcp.Description("Literal text to search for (not a regular expression)"),
		),
		mcp.WithString("newText",
			mcp.Required(),
			mcp.Description("Literal replacement text"),
		),
		mcp.WithNumber("expectedReplacements",
			mcp.DefaultNumber(1),
			mcp.Description("Expected number of occurrences; a mismatch is reported as a warning"),
		),
	}

	return mcp.NewTool("edit-block", append(opts, connectionOptions()...)...)
}

func readLinesTool() mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription("Read a line range from a remote file"),
		mcp.WithString("filePath",
			mcp.Required(),
			mcp.Description("Absolute path of the file to read"),
		),
		mcp.WithNumber("startLine",
			mcp.DefaultNumber(1),
			mcp.Description("First line to read (1-based)"),
		),
		mcp.WithNumber("endLine",
			mcp.Description("Last line to read; omit to read up to maxLines from startLine"),
		),
		mcp.WithNumber("maxLines",
			mcp.DefaultNumber(100),
			mcp.Description("Line cap when endLine is omitted"),
		),
	}

	return mcp.NewTool("read-lines", append(opts, connectionOptions()...)...)
}

func searchCodeTool() mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription("Search files under a remote directory for a pattern, with line numbers and optional context"),
		mcp.WithString("path",
			mcp.Required(),
			mcp.Description("Directory to search recursively"),
		),
		mcp.WithString("pattern",
			mcp.Required(),
			mcp.Description("Pattern to search for"),
		),
		mcp.WithString("filePattern",
			mcp.Description("File name glob filter, e.g. *.go"),
		),
		mcp.WithBoolean("ignoreCase",
			mcp.DefaultBool(false),
			mcp.Description("Case-insensitive search"),
		),
		mcp.WithNumber("maxResults",
			mcp.DefaultNumber(50),
			mcp.Description("Maximum result lines"),
		),
		mcp.WithNumber("contextLines",
			mcp.DefaultNumber(2),
			mcp.Description("Context lines around each match"),
		),
	}

	return mcp.NewTool("search-code", append(opts, connectionOptions()...)...)
}

func writeChunkTool() mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription("Write or append content to a remote file, creating parent directories when absent"),
		mcp.WithString("filePath",
			mcp.Required(),
			mcp.Description("Absolute path of the file to write"),
		),
		mcp.WithString("content",
			mcp.Required(),
			mcp.Description("Content to write, embedded byte-for-byte"),
		),
		mcp.WithString("mode",
			mcp.DefaultString("rewrite"),
			mcp.Enum("rewrite", "append"),
			mcp.Description("rewrite replaces the file, append adds to it"),
		),
	}

	return mcp.NewTool("write-chunk", append(opts, connectionOptions()...)...)
}
