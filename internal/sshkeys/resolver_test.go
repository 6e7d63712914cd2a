package sshkeys

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeKeyFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)

	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write key file: %v", err)
	}

	return path
}

func TestResolveExplicitPath(t *testing.T) {
	dir := t.TempDir()
	path := writeKeyFile(t, dir, "id_test", "explicit-key-bytes")

	keyBytes, err := resolve(path, []string{filepath.Join(dir, "unused")})

	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}

	if string(keyBytes) != "explicit-key-bytes" {
		t.Errorf("expected explicit key bytes, got %q", keyBytes)
	}
}

func TestResolveExplicitPathMissingSkipsFallback(t *testing.T) {
	dir := t.TempDir()
	fallback := writeKeyFile(t, dir, "id_rsa", "fallback-key")
	missing := filepath.Join(dir, "does-not-exist")

	_, err := resolve(missing, []string{fallback})

	if err == nil {
		t.Fatal("expected an error for a missing explicit path")
	}

	if !errors.Is(err, ErrExplicitKeyUnreadable) {
		t.Errorf("expected ErrExplicitKeyUnreadable, got %v", err)
	}

	if !strings.Contains(err.Error(), missing) {
		t.Errorf("error should mention the explicit path, got %q", err)
	}

	if strings.Contains(err.Error(), fallback) {
		t.Errorf("error must not mention fallback candidates, got %q", err)
	}
}

func TestResolveDefaultCandidatesInOrder(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "id_rsa")
	second := writeKeyFile(t, dir, "id_ed25519", "ed25519-key")
	third := writeKeyFile(t, dir, "id_ecdsa", "ecdsa-key")

	keyBytes, err := resolve("", []string{first, second, third})

	if err != nil {
		t.Fatalf("resolve failed: %v", err)
	}

	if string(keyBytes) != "ed25519-key" {
		t.Errorf("expected the first readable candidate, got %q", keyBytes)
	}
}

func TestResolveTotalFailureListsAllCandidates(t *testing.T) {
	dir := t.TempDir()
	candidates := []string{
		filepath.Join(dir, "id_rsa"),
		filepath.Join(dir, "id_ed25519"),
		filepath.Join(dir, "id_ecdsa"),
	}

	_, err := resolve("", candidates)

	if err == nil {
		t.Fatal("expected an error when no candidate is readable")
	}

	if !errors.Is(err, ErrNoUsableKey) {
		t.Errorf("expected ErrNoUsableKey, got %v", err)
	}

	for _, candidate := range candidates {
		if !strings.Contains(err.Error(), candidate) {
			t.Errorf("error should mention %s, got %q", candidate, err)
		}
	}
}

func TestResolveNoCandidates(t *testing.T) {
	_, err := resolve("", nil)

	if !errors.Is(err, ErrNoKeyCandidates) {
		t.Errorf("expected ErrNoKeyCandidates, got %v", err)
	}
}
