// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package assistant

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/venture-advisor/internal/httputil"
	"github.com/pdiddy/venture-advisor/pkg/types"
)

func TestMain(m *testing.M) {
	httputil.RetryDelay = time.Millisecond
	os.Exit(m.Run())
}

func testResearchConfig() types.ResearchConfig {
	return types.ResearchConfig{
		Model:  "sonar-pro",
		APIKey: "pplx-test",
	}
}

func researchServer(t *testing.T, content string, citations []string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resp := map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": content}},
			},
			"citations": citations,
		}
		json.NewEncoder(w).Encode(resp)
	}))
}

func TestResearchComplete(t *testing.T) {
	srv := researchServer(t, "the market is growing", []string{"https://example.com/report"})
	defer srv.Close()

	origURL := perplexityAPIURL
	perplexityAPIURL = srv.URL
	defer func() { perplexityAPIURL = origURL }()

	client := NewPerplexityClient(testResearchConfig())
	got, err := client.ResearchComplete(context.Background(), []Message{User("analyze")}, 1000)
	require.NoError(t, err)
	assert.Equal(t, "the market is growing", got.Content)
	assert.Equal(t, []string{"https://example.com/report"}, got.Citations)
}

func TestResearchCompleteStripsThinkBlocks(t *testing.T) {
	srv := researchServer(t, "<think>let me reason\nabout this</think>final answer", nil)
	defer srv.Close()

	origURL := perplexityAPIURL
	perplexityAPIURL = srv.URL
	defer func() { perplexityAPIURL = origURL }()

	client := NewPerplexityClient(testResearchConfig())
	got, err := client.ResearchComplete(context.Background(), []Message{User("analyze")}, 100)
	require.NoError(t, err)
	assert.Equal(t, "final answer", got.Content)
}

func TestResearchCompleteMissingKey(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
	}))
	defer srv.Close()

	origURL := perplexityAPIURL
	perplexityAPIURL = srv.URL
	defer func() { perplexityAPIURL = origURL }()

	client := NewPerplexityClient(types.ResearchConfig{Model: "sonar-pro"})
	_, err := client.ResearchComplete(context.Background(), []Message{User("analyze")}, 100)
	assert.ErrorIs(t, err, ErrMissingAPIKey)
	assert.Zero(t, calls, "must fail before the first request")
}

func TestResearchCompleteRetriesThenSucceeds(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls < 3 {
			http.Error(w, "overloaded", http.StatusServiceUnavailable)
			return
		}
		resp := map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"role": "assistant", "content": "recovered"}},
			},
		}
		json.NewEncoder(w).Encode(resp)
	}))
	defer srv.Close()

	origURL := perplexityAPIURL
	perplexityAPIURL = srv.URL
	defer func() { perplexityAPIURL = origURL }()

	client := NewPerplexityClient(testResearchConfig())
	got, err := client.ResearchComplete(context.Background(), []Message{User("analyze")}, 100)
	require.NoError(t, err)
	assert.Equal(t, "recovered", got.Content)
	assert.Equal(t, 3, calls)
}

func TestResearchCompleteExhaustsRetries(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	origURL := perplexityAPIURL
	perplexityAPIURL = srv.URL
	defer func() { perplexityAPIURL = origURL }()

	client := NewPerplexityClient(testResearchConfig())
	_, err := client.ResearchComplete(context.Background(), []Message{User("analyze")}, 100)

	var svcErr *ExternalServiceError
	require.ErrorAs(t, err, &svcErr)
	assert.Equal(t, "perplexity", svcErr.Service)
	assert.Equal(t, researchMaxAttempts, calls)
}
