// Package sshexec opens one authenticated SSH session per call, runs exactly
// one command on it and tears the session down unconditionally. There is no
// pooling, no retry and no cancellation of an in-flight execution.
package sshexec

import (
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/idletoaster/ssh-mcp-server/cmd/server/config"
	"github.com/idletoaster/ssh-mcp-server/internal/logger"

	"github.com/melbahja/goph"
	"golang.org/x/crypto/ssh"
)

// KeyExchanges is the negotiation allow-list: two elliptic-curve
// Diffie-Hellman variants plus a SHA-256 finite-field variant. Hosts that
// cannot negotiate within this set are rejected.
var KeyExchanges = []string{
	"curve25519-sha256",
	"ecdh-sha2-nistp256",
	"diffie-hellman-group14-sha256",
}

type Service struct{}

func NewService() *Service {
	return &Service{}
}

// Execute runs req.Command on the remote host. It returns ErrConnectionFailed
// when no command ever ran and ErrChannelFailed when the session came up but
// no execution channel could be opened. A non-nil Result is produced exactly
// when the command channel opened, regardless of the remote exit status.
func (s *Service) Execute(req *Request) (*Result, error) {
	signer, err := ssh.ParsePrivateKey(req.Key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnectionFailed, err)
	}

	port := req.Port
	if port == 0 {
		port = config.Config.DefaultPort
	}

	sshConfig := &ssh.ClientConfig{
		User:            req.User,
		Auth:            []ssh.AuthMethod{ssh.PublicKeys(signer)},
		HostKeyCallback: ssh.InsecureIgnoreHostKey(),
		Timeout:         config.Config.ReadyTimeout,
		Config: ssh.Config{
			KeyExchanges: append([]string(nil), KeyExchanges...),
		},
	}

	hostPort := net.JoinHostPort(req.Host, fmt.Sprintf("%d", port))

	conn, err := net.DialTimeout("tcp", hostPort, sshConfig.Timeout)

	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConnectionFailed, err)
	}

	sshConn, chans, reqs, err := ssh.NewClientConn(conn, hostPort, sshConfig)

	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("%w: %v", ErrConnectionFailed, err)
	}

	client := ssh.NewClient(sshConn, chans, reqs)

	defer client.Close()

	done := make(chan struct{})
	defer close(done)

	go keepalive(client, config.Config.KeepaliveInterval, done)

	gophClient := &goph.Client{Client: client}

	cmd, err := gophClient.Command(req.Command)

	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrChannelFailed, err)
	}

	defer cmd.Close()

	// stdout and stderr accumulate independently for the lifetime of the
	// channel; they are never merged into one buffer.
	var stdout, stderr strings.Builder
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	runErr := cmd.Run()

	result := &Result{
		Stdout: strings.TrimSpace(stdout.String()),
		Stderr: strings.TrimSpace(stderr.String()),
	}

	if runErr != nil {
		var exitErr *ssh.ExitError

		if errors.As(runErr, &exitErr) {
			result.ExitCode = exitErr.ExitStatus()
			result.Signal = exitErr.Signal()
		} else {
			// Channel closed without an exit status (killed connection,
			// missing status message). Not a remote exit.
			result.ExitCode = -1
			result.Err = runErr
		}
	}

	return result, nil
}

// keepalive probes the connection while a long-running command executes, so a
// dead peer is noticed instead of blocking until the TCP stack gives up.
func keepalive(client *ssh.Client, interval time.Duration, done <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			if _, _, err := client.SendRequest("keepalive@openssh.com", true, nil); err != nil {
				logger.Debug("keepalive probe failed: %v", err)
				return
			}
		}
	}
}
