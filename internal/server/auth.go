package server

import (
	"bufio"
	"bytes"
	"os"
	"strings"

	"github.com/charmbracelet/ssh"
	gossh "golang.org/x/crypto/ssh"

	"github.com/callscripts/guion/internal/config"
	"github.com/callscripts/guion/internal/logging"
)

// DefaultAuthorizedKeysPath is consulted when no authorized keys files are configured
const DefaultAuthorizedKeysPath = "~/.ssh/authorized_keys"

// publicKeyHandler authorizes a client key against the configured authorized_keys files
func (s *Server) publicKeyHandler(ctx ssh.Context, key ssh.PublicKey) bool {
	fingerprint := gossh.FingerprintSHA256(key)
	user := ctx.User()

	for _, path := range s.authorizedKeys {
		if isKeyAuthorized(key, path) {
			logging.Logger.Info("SSH key authenticated",
				"user", user,
				"fingerprint", fingerprint,
				"key_type", key.Type(),
				"authorized_keys", path)
			return true
		}
	}

	logging.Logger.Warn("Unauthorized SSH key",
		"user", user,
		"fingerprint", fingerprint,
		"key_type", key.Type())
	return false
}

// authorizedKeysPaths expands the configured paths, defaulting to ~/.ssh/authorized_keys
func authorizedKeysPaths(configured []string) []string {
	if len(configured) == 0 {
		configured = []string{DefaultAuthorizedKeysPath}
	}
	paths := make([]string, 0, len(configured))
	for _, p := range configured {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			paths = append(paths, config.ExpandPath(trimmed))
		}
	}
	return paths
}

// isKeyAuthorized checks if the client's public key is in an authorized_keys file
func isKeyAuthorized(clientKey ssh.PublicKey, authorizedKeysPath string) bool {
	file, err := os.Open(authorizedKeysPath)
	if err != nil {
		logging.Logger.Warn("Failed to open authorized_keys", "error", err, "path", authorizedKeysPath)
		return false
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Skip empty lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		authorizedKey, _, _, _, err := gossh.ParseAuthorizedKey([]byte(line))
		if err != nil {
			logging.Logger.Debug("Failed to parse authorized key line", "error", err)
			continue
		}

		if bytes.Equal(clientKey.Marshal(), authorizedKey.Marshal()) {
			return true
		}
	}

	if err := scanner.Err(); err != nil {
		logging.Logger.Error("Error reading authorized_keys", "error", err)
		return false
	}

	return false
}
