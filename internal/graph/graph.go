// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package graph maintains the project knowledge graph in neo4j. Each project
// gets Event, TechnologyDevelopment and BusinessDevelopment branches;
// pipeline activity is recorded as event logs whose payloads are embedded,
// compared against existing variables, and classified into new variables,
// insights and contradictions.
package graph

import (
	"context"
	"errors"
	"fmt"

	"github.com/neo4j/neo4j-go-driver/v5/neo4j"

	"github.com/pdiddy/venture-advisor/internal/logging"
	"github.com/pdiddy/venture-advisor/pkg/types"
)

// ErrDisabled is returned when no graph URI is configured.
var ErrDisabled = errors.New("graph backend not configured")

// Executor runs a Cypher query and returns its records as maps. The
// interface keeps the knowledge service testable without a live server.
type Executor interface {
	ExecuteQuery(ctx context.Context, query string, params map[string]any) ([]map[string]any, error)
}

// Store wraps the neo4j driver behind the Executor interface.
type Store struct {
	driver   neo4j.DriverWithContext
	database string
	log      *logging.Logger
}

// NewStore connects to the configured graph database and verifies
// connectivity before returning.
func NewStore(ctx context.Context, cfg types.GraphConfig, log *logging.Logger) (*Store, error) {
	if cfg.URI == "" {
		return nil, ErrDisabled
	}

	driver, err := neo4j.NewDriverWithContext(cfg.URI, neo4j.BasicAuth(cfg.Username, cfg.Password, ""))
	if err != nil {
		return nil, fmt.Errorf("creating graph driver: %w", err)
	}
	if err := driver.VerifyConnectivity(ctx); err != nil {
		_ = driver.Close(ctx)
		return nil, fmt.Errorf("verifying graph connectivity: %w", err)
	}

	log.Debug("graph store connected", "uri", cfg.URI, "database", cfg.Database)
	return &Store{driver: driver, database: cfg.Database, log: log}, nil
}

// Close releases the driver and its connection pool.
func (s *Store) Close(ctx context.Context) error {
	return s.driver.Close(ctx)
}

// ExecuteQuery runs one Cypher query in its own session.
func (s *Store) ExecuteQuery(ctx context.Context, query string, params map[string]any) ([]map[string]any, error) {
	session := s.driver.NewSession(ctx, neo4j.SessionConfig{DatabaseName: s.database})
	defer session.Close(ctx)

	result, err := session.Run(ctx, query, params)
	if err != nil {
		return nil, fmt.Errorf("executing query: %w", err)
	}

	var rows []map[string]any
	for result.Next(ctx) {
		rows = append(rows, result.Record().AsMap())
	}
	if err := result.Err(); err != nil {
		return nil, fmt.Errorf("executing query: %w", err)
	}
	return rows, nil
}
