package sshexec

// Request describes one remote command execution. A Request is built fresh
// per tool invocation and never reused.
type Request struct {
	Host    string
	Port    uint
	User    string
	Command string
	// Raw private key material, resolved by sshkeys before the call.
	Key []byte
}

// Result carries the outcome of exactly one remote execution.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
	// Name of the signal that killed the remote process, if any.
	Signal string
	// Transport-level failure during the run (not a remote exit status).
	Err error
}
