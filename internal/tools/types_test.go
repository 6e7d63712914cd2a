package tools

import (
	"errors"
	"testing"
)

func validConnection() ConnectionArgs {
	return ConnectionArgs{Host: "example.com", User: "deploy", Port: 22}
}

func TestConnectionArgsValidate(t *testing.T) {
	cases := []struct {
		name     string
		args     ConnectionArgs
		expected error
	}{
		{"valid", validConnection(), nil},
		{"missing host", ConnectionArgs{User: "u", Port: 22}, ErrMissingArgument},
		{"missing user", ConnectionArgs{Host: "h", Port: 22}, ErrMissingArgument},
		{"port too low", ConnectionArgs{Host: "h", User: "u", Port: 0}, ErrInvalidArgument},
		{"port too high", ConnectionArgs{Host: "h", User: "u", Port: 70000}, ErrInvalidArgument},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.args.Validate()

			if tc.expected == nil {
				if err != nil {
					t.Errorf("expected valid args, got %v", err)
				}
				return
			}

			if !errors.Is(err, tc.expected) {
				t.Errorf("expected %v, got %v", tc.expected, err)
			}
		})
	}
}

func TestRemoteSSHArgsValidate(t *testing.T) {
	args := RemoteSSHArgs{ConnectionArgs: validConnection()}

	if err := args.Validate(); !errors.Is(err, ErrMissingArgument) {
		t.Errorf("expected missing command error, got %v", err)
	}

	args.Command = "uptime"

	if err := args.Validate(); err != nil {
		t.Errorf("expected valid args, got %v", err)
	}
}

func TestEditBlockArgsValidate(t *testing.T) {
	args := EditBlockArgs{
		ConnectionArgs:       validConnection(),
		FilePath:             "/etc/conf",
		OldText:              "old",
		NewText:              "new",
		ExpectedReplacements: 1,
	}

	if err := args.Validate(); err != nil {
		t.Errorf("expected valid args, got %v", err)
	}

	args.OldText = ""

	if err := args.Validate(); !errors.Is(err, ErrMissingArgument) {
		t.Errorf("expected missing oldText error, got %v", err)
	}
}

func TestReadLinesArgsValidate(t *testing.T) {
	cases := []struct {
		name     string
		mutate   func(*ReadLinesArgs)
		expected error
	}{
		{"valid", func(*ReadLinesArgs) {}, nil},
		{"missing filePath", func(a *ReadLinesArgs) { a.FilePath = "" }, ErrMissingArgument},
		{"zero startLine", func(a *ReadLinesArgs) { a.StartLine = 0 }, ErrInvalidArgument},
		{"endLine before startLine", func(a *ReadLinesArgs) { a.StartLine = 5; a.EndLine = 3 }, ErrInvalidArgument},
		{"zero maxLines", func(a *ReadLinesArgs) { a.MaxLines = 0 }, ErrInvalidArgument},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			args := ReadLinesArgs{
				ConnectionArgs: validConnection(),
				FilePath:       "/tmp/x.txt",
				StartLine:      1,
				MaxLines:       100,
			}
			tc.mutate(&args)

			err := args.Validate()

			if tc.expected == nil {
				if err != nil {
					t.Errorf("expected valid args, got %v", err)
				}
				return
			}

			if !errors.Is(err, tc.expected) {
				t.Errorf("expected %v, got %v", tc.expected, err)
			}
		})
	}
}

func TestSearchCodeArgsValidate(t *testing.T) {
	args := SearchCodeArgs{
		ConnectionArgs: validConnection(),
		Path:           "/src",
		Pattern:        "TODO",
		MaxResults:     50,
		ContextLines:   2,
	}

	if err := args.Validate(); err != nil {
		t.Errorf("expected valid args, got %v", err)
	}

	args.Pattern = ""

	if err := args.Validate(); !errors.Is(err, ErrMissingArgument) {
		t.Errorf("expected missing pattern error, got %v", err)
	}
}

func TestWriteChunkArgsValidate(t *testing.T) {
	args := WriteChunkArgs{
		ConnectionArgs: validConnection(),
		FilePath:       "/tmp/x.txt",
		Content:        "hello",
		Mode:           "rewrite",
	}

	if err := args.Validate(); err != nil {
		t.Errorf("expected valid args, got %v", err)
	}

	args.Mode = "truncate"

	if err := args.Validate(); !errors.Is(err, ErrInvalidArgument) {
		t.Errorf("expected invalid mode error, got %v", err)
	}
}
