// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by gateways that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "venture-advisor/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// GenerationConfig holds settings for the structured-generation gateway.
type GenerationConfig struct {
	HTTPConfig `yaml:",inline"`

	// Model is the default chat model identifier (e.g. "gpt-4o-mini").
	Model string `json:"model" yaml:"model"`

	// ReasoningModel is the model used for query planning (e.g. "o3").
	ReasoningModel string `json:"reasoning_model" yaml:"reasoning_model"`

	// ReportModel is the model used for long-form synthesis (e.g. "gpt-4o").
	ReportModel string `json:"report_model" yaml:"report_model"`

	// EmbeddingModel is the model used for text embeddings.
	EmbeddingModel string `json:"embedding_model" yaml:"embedding_model"`

	// APIKey is the authentication key for the generation API.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`
}

// ResearchConfig holds settings for the deep-research gateway.
type ResearchConfig struct {
	HTTPConfig `yaml:",inline"`

	// Model is the research model identifier (e.g. "sonar-pro").
	Model string `json:"model" yaml:"model"`

	// APIKey is the authentication key for the research API.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`
}

// StoreConfig holds settings for the relational store and artifact output.
type StoreConfig struct {
	// RootDir is the workspace directory holding the database, token file,
	// research outputs, and final reports (default ".venture-advisor").
	RootDir string `json:"root_dir" yaml:"root_dir"`
}

// GraphConfig holds settings for the knowledge graph backend. An empty URI
// disables the graph entirely.
type GraphConfig struct {
	// URI is the bolt/neo4j connection URI (e.g. "neo4j://localhost:7687").
	URI string `json:"uri" yaml:"uri"`

	// Username authenticates against the graph database (default "neo4j").
	Username string `json:"username" yaml:"username"`

	// Password authenticates against the graph database.
	Password string `json:"password,omitempty" yaml:"password,omitempty"`

	// Database selects the graph database; empty means the server default.
	Database string `json:"database" yaml:"database"`

	// SimilarityThreshold is the minimum cosine similarity for a stored
	// variable to be considered relevant to an incoming event (default 0.5).
	SimilarityThreshold float64 `json:"similarity_threshold" yaml:"similarity_threshold"`
}

// Config groups all component configurations for the assistant.
type Config struct {
	Generation GenerationConfig `json:"generation" yaml:"generation"`
	Research   ResearchConfig   `json:"research" yaml:"research"`
	Store      StoreConfig      `json:"store" yaml:"store"`
	Graph      GraphConfig      `json:"graph" yaml:"graph"`
}

// Defaults returns a Config populated with the standard model and workspace
// settings. Callers overlay file and environment values on top.
func Defaults() Config {
	return Config{
		Generation: GenerationConfig{
			HTTPConfig:     HTTPConfig{Timeout: 120 * time.Second, UserAgent: "venture-advisor/0.1"},
			Model:          "gpt-4o-mini",
			ReasoningModel: "o3",
			ReportModel:    "gpt-4o",
			EmbeddingModel: "text-embedding-3-small",
		},
		Research: ResearchConfig{
			HTTPConfig: HTTPConfig{Timeout: 300 * time.Second, UserAgent: "venture-advisor/0.1"},
			Model:      "sonar-pro",
		},
		Store: StoreConfig{RootDir: ".venture-advisor"},
		Graph: GraphConfig{Username: "neo4j", SimilarityThreshold: 0.5},
	}
}
