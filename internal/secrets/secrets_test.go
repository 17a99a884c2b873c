// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package secrets

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(dir)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestStoreAndLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()

	token := Token{OpenAIAPIKey: "sk-test", PerplexityAPIKey: "pplx-test"}
	require.NoError(t, Store(dir, token))

	loaded, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, token, loaded)
}

func TestStoreCreatesRootDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "workspace")

	require.NoError(t, Store(dir, Token{OpenAIAPIKey: "sk-test"}))

	info, err := os.Stat(filepath.Join(dir, TokenFile))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())
}

func TestLoadTrimsWhitespace(t *testing.T) {
	dir := t.TempDir()
	data := `{"openaiAPIKey": " sk-test \n", "perplexityAPIKey": "pplx-test"}`
	require.NoError(t, os.WriteFile(filepath.Join(dir, TokenFile), []byte(data), 0o600))

	token, err := Load(dir)
	require.NoError(t, err)
	assert.Equal(t, "sk-test", token.OpenAIAPIKey)
}

func TestLoadMalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, TokenFile), []byte("{not json"), 0o600))

	_, err := Load(dir)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)
}
