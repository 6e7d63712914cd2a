package sshexec

import "errors"

var (
	// No command ever ran: key parse, dial, handshake or authentication failed.
	ErrConnectionFailed = errors.New("SSH connection failed")
	// The session was established but no execution channel could be opened.
	ErrChannelFailed = errors.New("failed to open execution channel")
)
