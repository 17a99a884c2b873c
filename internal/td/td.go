// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package td implements the technology development pipeline: a guided intake
// interview followed by literature research planning, sequential query
// execution with variable hand-off between queries, and a synthesized final
// report. All state lives on the project's copilot record, so every step is
// resumable.
package td

import (
	"context"

	"github.com/google/uuid"

	"github.com/pdiddy/venture-advisor/internal/assistant"
	"github.com/pdiddy/venture-advisor/internal/console"
	"github.com/pdiddy/venture-advisor/internal/logging"
	"github.com/pdiddy/venture-advisor/internal/pipeline"
	"github.com/pdiddy/venture-advisor/internal/store"
	"github.com/pdiddy/venture-advisor/pkg/types"
)

const (
	// minQueries is the query count below which generation re-runs.
	minQueries = 3

	// researchMaxTokens bounds each literature research response.
	researchMaxTokens = 100

	// summaryCharacterLimit bounds the intake section summaries.
	summaryCharacterLimit = 500
)

// Service runs the technology development steps for one operator session.
type Service struct {
	store    *store.Store
	gen      assistant.Generator
	research assistant.Researcher
	console  *console.Console
	cfg      types.Config
	log      *logging.Logger
}

// NewService wires the pipeline against its backends.
func NewService(st *store.Store, gen assistant.Generator, research assistant.Researcher, con *console.Console, cfg types.Config, log *logging.Logger) *Service {
	return &Service{
		store:    st,
		gen:      gen,
		research: research,
		console:  con,
		cfg:      cfg,
		log:      log,
	}
}

// Pipeline returns the runner for the full five step flow.
func (s *Service) Pipeline(projectID uuid.UUID) *pipeline.Runner {
	step := func(name string, run func(context.Context, uuid.UUID) error) pipeline.Step {
		return pipeline.Step{
			Name: name,
			Run:  func(ctx context.Context) error { return run(ctx, projectID) },
		}
	}
	return pipeline.New("Technology Development", s.console, s.log,
		step("Project Intake", s.Intake),
		step("Research Steps", s.GenerateSteps),
		step("Research Queries", s.GenerateQueries),
		step("Literature Research", s.RunResearch),
		step("Final Report", s.FinalReport),
	)
}
