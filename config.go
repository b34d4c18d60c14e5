// Package contentchat - config.go
// The durable key/value store behind model and provider selection.

package contentchat

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Recognized configuration keys.
const (
	KeySelectedModel    = "SELECTED_MODEL"
	KeySelectedProvider = "SELECTED_LLM_PROVIDER"
	KeyOpenRouterAPIKey = "OPENROUTER_API_KEY"
)

// ConfigStore is the injected configuration capability. The session and
// the backend factory depend on it rather than on ambient process state,
// which keeps tests deterministic.
type ConfigStore interface {
	// Read returns the value for key and whether it was present.
	Read(key string) (string, bool)

	// Write persists key=value, preserving all unrelated keys.
	Write(key, value string) error
}

// EnvFileStore is a ConfigStore over a dotenv-style file. Reads fall
// back to the process environment so exported variables still work;
// writes update the file and mirror the value into the environment.
type EnvFileStore struct {
	Path string
}

func NewEnvFileStore(path string) *EnvFileStore {
	if path == "" {
		path = ".env"
	}
	return &EnvFileStore{Path: path}
}

func (s *EnvFileStore) Read(key string) (string, bool) {
	vars, err := godotenv.Read(s.Path)
	if err == nil {
		if v, ok := vars[key]; ok && v != "" {
			return v, true
		}
	}
	if v := os.Getenv(key); v != "" {
		return v, true
	}
	return "", false
}

func (s *EnvFileStore) Write(key, value string) error {
	vars, err := godotenv.Read(s.Path)
	if err != nil {
		// Missing file is fine, it gets created below.
		vars = map[string]string{}
	}
	vars[key] = value
	if err := godotenv.Write(vars, s.Path); err != nil {
		return fmt.Errorf("writing %s: %w", s.Path, err)
	}
	return os.Setenv(key, value)
}
