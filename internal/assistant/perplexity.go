// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"regexp"

	"github.com/pdiddy/venture-advisor/internal/httputil"
	"github.com/pdiddy/venture-advisor/pkg/types"
)

// perplexityAPIURL is the Perplexity chat completions endpoint. Package-level
// var for test substitution.
var perplexityAPIURL = "https://api.perplexity.ai/chat/completions"

// researchMaxAttempts bounds the retry loop on research calls.
const researchMaxAttempts = 10

// thinkBlockRE matches the reasoning blocks some research models emit before
// the answer. They are stripped from returned content.
var thinkBlockRE = regexp.MustCompile(`(?s)<think>.*?</think>`)

// PerplexityClient calls the Perplexity chat completions API. It implements
// Researcher.
type PerplexityClient struct {
	cfg    types.ResearchConfig
	client *http.Client
}

// NewPerplexityClient builds a client from explicit configuration. The API
// key comes from the token file, not the environment.
func NewPerplexityClient(cfg types.ResearchConfig) *PerplexityClient {
	return &PerplexityClient{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

// researchRequest is the request body for the Perplexity API.
type researchRequest struct {
	Model     string    `json:"model"`
	Messages  []Message `json:"messages"`
	MaxTokens int       `json:"max_tokens"`
}

// researchResponse is the response body from the Perplexity API.
type researchResponse struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
	Citations []string `json:"citations"`
}

// ResearchComplete answers the conversation with a web-grounded response.
// Failed attempts are retried up to 10 times with a fixed pause between
// attempts; a missing API key fails before the first attempt.
func (c *PerplexityClient) ResearchComplete(ctx context.Context, msgs []Message, maxTokens int) (ResearchResult, error) {
	if c.cfg.APIKey == "" {
		return ResearchResult{}, &ExternalServiceError{Service: "perplexity", Err: ErrMissingAPIKey}
	}

	var result ResearchResult
	err := httputil.Retry(ctx, researchMaxAttempts, func() error {
		res, err := c.ask(ctx, msgs, maxTokens)
		if err != nil {
			return err
		}
		result = res
		return nil
	})
	if err != nil {
		return ResearchResult{}, &ExternalServiceError{Service: "perplexity", Err: err}
	}
	return result, nil
}

// ask performs one research API call.
func (c *PerplexityClient) ask(ctx context.Context, msgs []Message, maxTokens int) (ResearchResult, error) {
	body, err := json.Marshal(researchRequest{
		Model:     c.cfg.Model,
		Messages:  msgs,
		MaxTokens: maxTokens,
	})
	if err != nil {
		return ResearchResult{}, fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, perplexityAPIURL, bytes.NewReader(body))
	if err != nil {
		return ResearchResult{}, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	if c.cfg.UserAgent != "" {
		req.Header.Set("User-Agent", c.cfg.UserAgent)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return ResearchResult{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return ResearchResult{}, fmt.Errorf("API returned %d", resp.StatusCode)
	}

	var rResp researchResponse
	if err := json.NewDecoder(resp.Body).Decode(&rResp); err != nil {
		return ResearchResult{}, fmt.Errorf("decoding response: %w", err)
	}
	if len(rResp.Choices) == 0 {
		return ResearchResult{}, fmt.Errorf("no choices in response")
	}

	return ResearchResult{
		Content:   thinkBlockRE.ReplaceAllString(rResp.Choices[0].Message.Content, ""),
		Citations: rResp.Citations,
	}, nil
}
