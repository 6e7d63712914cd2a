package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/idletoaster/ssh-mcp-server/internal/logger"

	"github.com/joho/godotenv"
)

func init() {
	envFiles := []string{
		".env",
	}

	for _, envFile := range envFiles {
		if err := godotenv.Load(envFile); err != nil {
			if !os.IsNotExist(err) {
				logger.Warn("Error loading %s: %v", envFile, err)
			}
		}
	}
}

func GetEnv(key string, defaultValue string) string {
	value := os.Getenv(key)

	if value == "" {
		return defaultValue
	}

	return value
}

func getHomeDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		logger.Warn("Could not determine home directory: %v", err)
		return ""
	}
	return homeDir
}

func getDefaultAuditDatabasePath(fallback string) string {
	homeDir := getHomeDir()
	if homeDir == "" {
		return fallback
	}
	return filepath.Join(homeDir, ".ssh-mcp-server", "audit.db")
}

func getDefaultKeyCandidates() []string {
	homeDir := getHomeDir()
	if homeDir == "" {
		return nil
	}
	sshDir := filepath.Join(homeDir, ".ssh")
	return []string{
		filepath.Join(sshDir, "id_rsa"),
		filepath.Join(sshDir, "id_ed25519"),
		filepath.Join(sshDir, "id_ecdsa"),
	}
}

type Configuration struct {
	// Fixed connection parameters, shared by every tool.
	DefaultPort       uint
	ReadyTimeout      time.Duration
	KeepaliveInterval time.Duration

	// Environment fallback for the private key path, consulted when a tool
	// invocation carries no explicit privateKeyPath argument.
	FallbackPrivateKeyPath string

	// Ordered identity-file candidates, tried when neither an explicit path
	// nor the environment fallback is set.
	DefaultKeyCandidates []string

	AuditDatabasePath string
}

var Config = Configuration{
	DefaultPort:            22,
	ReadyTimeout:           20 * time.Second,
	KeepaliveInterval:      30 * time.Second,
	FallbackPrivateKeyPath: GetEnv("SSH_PRIVATE_KEY_PATH", ""),
	DefaultKeyCandidates:   getDefaultKeyCandidates(),
	AuditDatabasePath:      GetEnv("SSH_MCP_AUDIT_DB", getDefaultAuditDatabasePath("audit.db")),
}
