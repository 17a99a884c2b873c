// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package assistant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"text/template"

	"github.com/invopop/jsonschema"

	"github.com/pdiddy/venture-advisor/pkg/types"
)

// openaiAPIURL is the OpenAI API base URL. Package-level var for test
// substitution.
var openaiAPIURL = "https://api.openai.com/v1"

// summaryPromptTmpl instructs the model to condense arbitrary content to a
// character budget.
var summaryPromptTmpl = template.Must(template.New("summary").Parse(`You are asked to summarize a content.

IMPORTANT RULES:
  - Explain it in +- {{.CharacterLimit}} characters
  - Use simple language
  - Do not copy-paste from the internet
  - Don't start your explanation with "insert topic" is a.. or "insert topic" refers to.. Simply focus on a detailed description.
`))

// OpenAIClient calls the OpenAI chat completion and embeddings APIs. It
// implements Generator.
type OpenAIClient struct {
	cfg    types.GenerationConfig
	client *http.Client
}

// NewOpenAIClient builds a client from explicit configuration. The API key
// comes from the token file, not the environment.
func NewOpenAIClient(cfg types.GenerationConfig) *OpenAIClient {
	return &OpenAIClient{
		cfg:    cfg,
		client: &http.Client{Timeout: cfg.Timeout},
	}
}

// chatRequest is the request body for the chat completions API.
type chatRequest struct {
	Model          string          `json:"model"`
	Messages       []Message       `json:"messages"`
	ResponseFormat *responseFormat `json:"response_format,omitempty"`
	Temperature    *float64        `json:"temperature,omitempty"`
	TopP           *float64        `json:"top_p,omitempty"`
}

// responseFormat selects plain text, JSON mode, or schema-constrained output.
type responseFormat struct {
	Type       string          `json:"type"`
	JSONSchema *jsonSchemaSpec `json:"json_schema,omitempty"`
}

// jsonSchemaSpec names a schema for strict structured output.
type jsonSchemaSpec struct {
	Name   string             `json:"name"`
	Strict bool               `json:"strict"`
	Schema *jsonschema.Schema `json:"schema"`
}

// chatResponse is the response body from the chat completions API.
type chatResponse struct {
	Choices []struct {
		Message Message `json:"message"`
	} `json:"choices"`
}

// embeddingRequest is the request body for the embeddings API.
type embeddingRequest struct {
	Model string `json:"model"`
	Input string `json:"input"`
}

// embeddingResponse is the response body from the embeddings API.
type embeddingResponse struct {
	Data []struct {
		Embedding []float64 `json:"embedding"`
	} `json:"data"`
}

// post sends a JSON payload to the given API path and decodes the response
// into out.
func (c *OpenAIClient) post(ctx context.Context, path string, payload, out any) error {
	if c.cfg.APIKey == "" {
		return &ExternalServiceError{Service: "openai", Err: ErrMissingAPIKey}
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshaling request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, openaiAPIURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)
	if c.cfg.UserAgent != "" {
		req.Header.Set("User-Agent", c.cfg.UserAgent)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return &ExternalServiceError{Service: "openai", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(resp.Body)
		return &ExternalServiceError{
			Service: "openai",
			Err:     fmt.Errorf("API returned %d: %s", resp.StatusCode, string(data)),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &ExternalServiceError{Service: "openai", Err: fmt.Errorf("decoding response: %w", err)}
	}
	return nil
}

// chat runs one chat completion and returns the first choice's text.
func (c *OpenAIClient) chat(ctx context.Context, req chatRequest) (string, error) {
	var resp chatResponse
	if err := c.post(ctx, "/chat/completions", req, &resp); err != nil {
		return "", err
	}
	if len(resp.Choices) == 0 {
		return "", &GenerationError{Op: "complete", Err: fmt.Errorf("no choices in response")}
	}
	return resp.Choices[0].Message.Content, nil
}

// FreeformComplete runs an unconstrained chat completion.
func (c *OpenAIClient) FreeformComplete(ctx context.Context, model string, msgs []Message) (string, error) {
	return c.chat(ctx, chatRequest{Model: model, Messages: msgs})
}

// StructuredComplete runs a chat completion constrained to the JSON schema
// reflected from out and decodes the result into out. A response that does
// not satisfy the schema fails with a GenerationError.
func (c *OpenAIClient) StructuredComplete(ctx context.Context, model string, msgs []Message, out any) error {
	reflector := jsonschema.Reflector{DoNotReference: true}
	schema := reflector.Reflect(out)

	content, err := c.chat(ctx, chatRequest{
		Model:    model,
		Messages: msgs,
		ResponseFormat: &responseFormat{
			Type:       "json_schema",
			JSONSchema: &jsonSchemaSpec{Name: "response", Strict: true, Schema: schema},
		},
	})
	if err != nil {
		return err
	}

	// The backend is asked for strict schema conformance, but a response
	// missing required fields would otherwise decode to zero values.
	if len(schema.Required) > 0 {
		var fields map[string]json.RawMessage
		if err := json.Unmarshal([]byte(content), &fields); err != nil {
			return &GenerationError{Op: "decode", Err: err}
		}
		for _, name := range schema.Required {
			if _, ok := fields[name]; !ok {
				return &GenerationError{Op: "validate", Err: fmt.Errorf("response missing required field %q", name)}
			}
		}
	}

	if err := json.Unmarshal([]byte(content), out); err != nil {
		return &GenerationError{Op: "decode", Err: err}
	}
	return nil
}

// CompleteJSON runs a chat completion in JSON mode and returns the decoded
// top-level object.
func (c *OpenAIClient) CompleteJSON(ctx context.Context, model string, msgs []Message) (map[string]any, error) {
	content, err := c.chat(ctx, chatRequest{
		Model:          model,
		Messages:       msgs,
		ResponseFormat: &responseFormat{Type: "json_object"},
	})
	if err != nil {
		return nil, err
	}

	var parsed map[string]any
	if err := json.Unmarshal([]byte(content), &parsed); err != nil {
		return nil, &GenerationError{Op: "decode", Err: err}
	}
	return parsed, nil
}

// Embed returns the embedding vector for the given text.
func (c *OpenAIClient) Embed(ctx context.Context, text string) ([]float64, error) {
	var resp embeddingResponse
	err := c.post(ctx, "/embeddings", embeddingRequest{Model: c.cfg.EmbeddingModel, Input: text}, &resp)
	if err != nil {
		return nil, err
	}
	if len(resp.Data) == 0 || len(resp.Data[0].Embedding) == 0 {
		return nil, ErrEmptyEmbedding
	}
	return resp.Data[0].Embedding, nil
}

// Summarize condenses content to roughly characterLimit characters using the
// default chat model at zero temperature.
func (c *OpenAIClient) Summarize(ctx context.Context, content string, characterLimit int) (string, error) {
	var prompt bytes.Buffer
	if err := summaryPromptTmpl.Execute(&prompt, struct{ CharacterLimit int }{characterLimit}); err != nil {
		return "", fmt.Errorf("rendering summary prompt: %w", err)
	}

	temperature := 0.0
	topP := 1.0
	return c.chat(ctx, chatRequest{
		Model: c.cfg.Model,
		Messages: []Message{
			System(prompt.String()),
			User("Summarize this content: \n\n" + content),
		},
		Temperature: &temperature,
		TopP:        &topP,
	})
}
