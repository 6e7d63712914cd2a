package tools

import (
	"fmt"

	"github.com/idletoaster/ssh-mcp-server/internal/scripts"
)

// ConnectionArgs are the arguments every tool shares.
type ConnectionArgs struct {
	Host           string `json:"host"`
	User           string `json:"user"`
	PrivateKeyPath string `json:"privateKeyPath"`
	Port           int    `json:"port"`
}

func (a *ConnectionArgs) Validate() error {
	if a.Host == "" {
		return fmt.Errorf("%w: host", ErrMissingArgument)
	}
	if a.User == "" {
		return fmt.Errorf("%w: user", ErrMissingArgument)
	}
	if a.Port < 1 || a.Port > 65535 {
		return fmt.Errorf("%w: port must be between 1 and 65535", ErrInvalidArgument)
	}
	return nil
}

type RemoteSSHArgs struct {
	ConnectionArgs
	Command string `json:"command"`
}

func (a *RemoteSSHArgs) Validate() error {
	if err := a.ConnectionArgs.Validate(); err != nil {
		return err
	}
	if a.Command == "" {
		return fmt.Errorf("%w: command", ErrMissingArgument)
	}
	return nil
}

type EditBlockArgs struct {
	ConnectionArgs
	FilePath             string `json:"filePath"`
	OldText              string `json:"oldText"`
	NewText              string `json:"newText"`
	ExpectedReplacements int    `json:"expectedReplacements"`
}

func (a *EditBlockArgs) Validate() error {
	if err := a.ConnectionArgs.Validate(); err != nil {
		return err
	}
	if a.FilePath == "" {
		return fmt.Errorf("%w: filePath", ErrMissingArgument)
	}
	if a.OldText == "" {
		return fmt.Errorf("%w: oldText", ErrMissingArgument)
	}
	if a.ExpectedReplacements < 1 {
		return fmt.Errorf("%w: expectedReplacements must be at least 1", ErrInvalidArgument)
	}
	return nil
}

type ReadLinesArgs struct {
	ConnectionArgs
	FilePath  string `json:"filePath"`
	StartLine int    `json:"startLine"`
	EndLine   int    `json:"endLine"`
	MaxLines  int    `json:"maxLines"`
}

func (a *ReadLinesArgs) Validate() error {
	if err := a.ConnectionArgs.Validate(); err != nil {
		return err
	}
	if a.FilePath == "" {
		return fmt.Errorf("%w: filePath", ErrMissingArgument)
	}
	if a.StartLine < 1 {
		return fmt.Errorf("%w: startLine must be at least 1", ErrInvalidArgument)
	}
	if a.EndLine < 0 {
		return fmt.Errorf("%w: endLine must not be negative", ErrInvalidArgument)
	}
	if a.EndLine > 0 && a.EndLine < a.StartLine {
		return fmt.Errorf("%w: endLine must not precede startLine", ErrInvalidArgument)
	}
	if a.MaxLines < 1 {
		return fmt.Errorf("%w: maxLines must be at least 1", ErrInvalidArgument)
	}
	return nil
}

type SearchCodeArgs struct {
	ConnectionArgs
	Path         string `json:"path"`
	Pattern      string `json:"pattern"`
	FilePattern  string `json:"filePattern"`
	IgnoreCase   bool   `json:"ignoreCase"`
	MaxResults   int    `json:"maxResults"`
	ContextLines int    `json:"contextLines"`
}

func (a *SearchCodeArgs) Validate() error {
	if err := a.ConnectionArgs.Validate(); err != nil {
		return err
	}
	if a.Path == "" {
		return fmt.Errorf("%w: path", ErrMissingArgument)
	}
	if a.Pattern == "" {
		return fmt.Errorf("%w: pattern", ErrMissingArgument)
	}
	if a.MaxResults < 1 {
		return fmt.Errorf("%w: maxResults must be at least 1", ErrInvalidArgument)
	}
	if a.ContextLines < 0 {
		return fmt.Errorf("%w: contextLines must not be negative", ErrInvalidArgument)
	}
	return nil
}

type WriteChunkArgs struct {
	ConnectionArgs
	FilePath string `json:"filePath"`
	Content  string `json:"content"`
	Mode     string `json:"mode"`
}

func (a *WriteChunkArgs) Validate() error {
	if err := a.ConnectionArgs.Validate(); err != nil {
		return err
	}
	if a.FilePath == "" {
		return fmt.Errorf("%w: filePath", ErrMissingArgument)
	}
	if a.Mode != scripts.ModeRewrite && a.Mode != scripts.ModeAppend {
		return fmt.Errorf("%w: mode must be %q or %q", ErrInvalidArgument, scripts.ModeRewrite, scripts.ModeAppend)
	}
	return nil
}
