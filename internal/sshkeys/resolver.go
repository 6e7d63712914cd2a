// Package sshkeys locates private key material for SSH authentication.
//
// An explicit path (supplied as a tool argument, or via the
// SSH_PRIVATE_KEY_PATH environment fallback merged in by the caller) is tried
// alone. Without one, the fixed identity-file candidates under ~/.ssh are
// tried in order and the first readable file wins. Key bytes are returned as
// read; parsing and format validation happen during authentication.
package sshkeys

import (
	"fmt"
	"os"
	"strings"

	"github.com/idletoaster/ssh-mcp-server/cmd/server/config"
)

// Resolve returns the raw bytes of the first readable key.
func Resolve(explicitPath string) ([]byte, error) {
	return resolve(explicitPath, config.Config.DefaultKeyCandidates)
}

func resolve(explicitPath string, candidates []string) ([]byte, error) {
	if explicitPath != "" {
		keyBytes, err := os.ReadFile(explicitPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %s: %v", ErrExplicitKeyUnreadable, explicitPath, err)
		}
		return keyBytes, nil
	}

	if len(candidates) == 0 {
		return nil, ErrNoKeyCandidates
	}

	tried := make([]string, 0, len(candidates))

	for _, candidate := range candidates {
		keyBytes, err := os.ReadFile(candidate)
		if err == nil {
			return keyBytes, nil
		}
		tried = append(tried, candidate)
	}

	return nil, fmt.Errorf("%w: tried %s", ErrNoUsableKey, strings.Join(tried, ", "))
}
