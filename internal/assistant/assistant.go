// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package assistant provides the gateways to the generative AI backends: a
// structured-generation client for chat completion, JSON formatting, and
// embeddings, and a deep-research client for web-grounded answers with
// citations. Pipelines depend on the interfaces here so tests can supply
// mocks.
package assistant

import "context"

// Message roles accepted by the chat APIs.
const (
	RoleSystem = "system"
	RoleUser   = "user"
)

// Message is a single turn in a chat conversation.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// System returns a system-role message.
func System(content string) Message {
	return Message{Role: RoleSystem, Content: content}
}

// User returns a user-role message.
func User(content string) Message {
	return Message{Role: RoleUser, Content: content}
}

// Generator abstracts the structured-generation backend. Per Strategy
// pattern; OpenAIClient is the production implementation.
type Generator interface {
	// StructuredComplete runs a chat completion constrained to the JSON
	// schema reflected from out, and decodes the response into out.
	StructuredComplete(ctx context.Context, model string, msgs []Message, out any) error

	// FreeformComplete runs an unconstrained chat completion and returns the
	// raw text of the first choice.
	FreeformComplete(ctx context.Context, model string, msgs []Message) (string, error)

	// CompleteJSON runs a chat completion in JSON mode and returns the
	// decoded top-level object. Used when the field set is only known at
	// runtime.
	CompleteJSON(ctx context.Context, model string, msgs []Message) (map[string]any, error)

	// Embed returns the embedding vector for the given text.
	Embed(ctx context.Context, text string) ([]float64, error)

	// Summarize condenses content to roughly characterLimit characters.
	Summarize(ctx context.Context, content string, characterLimit int) (string, error)
}

// ResearchResult is the outcome of one deep-research call.
type ResearchResult struct {
	Content   string
	Citations []string
}

// Researcher abstracts the deep-research backend. PerplexityClient is the
// production implementation.
type Researcher interface {
	// ResearchComplete answers the conversation with a web-grounded response.
	// maxTokens caps the response length.
	ResearchComplete(ctx context.Context, msgs []Message, maxTokens int) (ResearchResult, error)
}
