// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package secrets loads and stores the assistant API token file. The file
// lives at <root>/assistant_token.json and holds the generation and research
// API keys as a single JSON object.
package secrets

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// TokenFile is the name of the token file inside the workspace root.
const TokenFile = "assistant_token.json"

// ErrNotFound is returned by Load when no token file exists yet.
var ErrNotFound = errors.New("assistant token file not found")

// Token holds the API keys the assistant needs.
type Token struct {
	OpenAIAPIKey     string `json:"openaiAPIKey"`
	PerplexityAPIKey string `json:"perplexityAPIKey"`
}

// Load reads the token file under rootDir. A missing file returns ErrNotFound
// so callers can fall back to prompting; a malformed file is an error.
func Load(rootDir string) (Token, error) {
	data, err := os.ReadFile(filepath.Join(rootDir, TokenFile))
	if err != nil {
		if os.IsNotExist(err) {
			return Token{}, ErrNotFound
		}
		return Token{}, fmt.Errorf("reading token file: %w", err)
	}

	var token Token
	if err := json.Unmarshal(data, &token); err != nil {
		return Token{}, fmt.Errorf("parsing token file: %w", err)
	}

	token.OpenAIAPIKey = strings.TrimSpace(token.OpenAIAPIKey)
	token.PerplexityAPIKey = strings.TrimSpace(token.PerplexityAPIKey)
	return token, nil
}

// Store writes the token file under rootDir, creating the directory if
// needed. The file is written with owner-only permissions.
func Store(rootDir string, token Token) error {
	if err := os.MkdirAll(rootDir, 0o755); err != nil {
		return fmt.Errorf("creating workspace directory %s: %w", rootDir, err)
	}

	data, err := json.MarshalIndent(token, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling token: %w", err)
	}

	path := filepath.Join(rootDir, TokenFile)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("writing token file %s: %w", path, err)
	}
	return nil
}
