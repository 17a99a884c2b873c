// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ari implements the conversational assistant. A manager agent
// routes each operator question to specialized agents (project details,
// business state, open research) and a synthesis agent merges their answers
// into one response.
package ari

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/pdiddy/venture-advisor/internal/assistant"
	"github.com/pdiddy/venture-advisor/internal/bd"
	"github.com/pdiddy/venture-advisor/internal/console"
	"github.com/pdiddy/venture-advisor/internal/logging"
	"github.com/pdiddy/venture-advisor/internal/store"
	"github.com/pdiddy/venture-advisor/pkg/types"
)

const (
	agentDetails  = "details"
	agentBusiness = "business"
	agentResearch = "research"
)

const apologyResponse = "I apologize, but I wasn't able to gather information from the specialized agents to answer your question. Please try rephrasing your question or check the system configuration."

// AgentRoute is one manager decision: which agent to ask and what to ask it.
type AgentRoute struct {
	Agent      string   `json:"agent"`
	FocusAreas []string `json:"focusAreas"`
	AgentQuery string   `json:"agentQuery"`
}

type managerResponse struct {
	Response []AgentRoute `json:"response"`
}

// Service answers operator questions about a project.
type Service struct {
	store    *store.Store
	business *bd.Service
	gen      assistant.Generator
	console  *console.Console
	cfg      types.Config
	log      *logging.Logger
}

// NewService wires the conversation against its backends. The business
// development service supplies the business agent's context.
func NewService(st *store.Store, business *bd.Service, gen assistant.Generator, con *console.Console, cfg types.Config, log *logging.Logger) *Service {
	return &Service{
		store:    st,
		business: business,
		gen:      gen,
		console:  con,
		cfg:      cfg,
		log:      log,
	}
}

// Converse runs the question loop until the operator types "quit". Agent
// failures are reported and the loop continues.
func (s *Service) Converse(ctx context.Context, projectID uuid.UUID) error {
	s.console.Header("Conversation")
	s.console.Println(`Type "quit" to exit at any time.`)
	for {
		question, err := s.console.Input(`Enter your question (or type "quit" to exit)`)
		if err != nil {
			return err
		}
		if strings.EqualFold(question, "quit") {
			s.console.Println("Ending conversation.")
			return nil
		}
		if question == "" {
			s.console.Warn("Please enter a valid question.")
			continue
		}

		answer, err := s.AskQuestion(ctx, projectID, question)
		if err != nil {
			s.console.Error(fmt.Sprintf("Could not answer: %v", err))
			continue
		}
		s.console.SubHeader("Answer")
		s.console.Println(answer)
	}
}

// AskQuestion routes a question through the manager agent, gathers the
// specialized agent responses in sequence, and synthesizes them. A failing
// agent contributes its error to the transcript instead of aborting.
func (s *Service) AskQuestion(ctx context.Context, projectID uuid.UUID, question string) (string, error) {
	routes, err := s.route(ctx, question)
	if err != nil {
		return "", fmt.Errorf("manager agent: %w", err)
	}
	s.log.Debug("question routed", "agents", len(routes))

	var transcript strings.Builder
	for _, route := range routes {
		var (
			response string
			callErr  error
		)
		switch route.Agent {
		case agentDetails:
			response, callErr = s.callDetailsAgent(ctx, projectID, route.AgentQuery)
		case agentBusiness:
			response, callErr = s.callBusinessAgent(ctx, projectID, route.AgentQuery)
		case agentResearch:
			response, callErr = s.callResearchAgent(ctx, route.AgentQuery)
		default:
			s.log.Warn("unknown agent in route", "agent", route.Agent)
			continue
		}
		if callErr != nil {
			s.log.Warn("agent call failed", "agent", route.Agent, "error", callErr)
			fmt.Fprintf(&transcript, "Error from %s agent: %v\n\n", route.Agent, callErr)
			continue
		}
		fmt.Fprintf(&transcript, "%s Agent Response: %s\n\n", titleCase(route.Agent), response)
	}

	if strings.TrimSpace(transcript.String()) == "" {
		return apologyResponse, nil
	}
	return s.synthesize(ctx, transcript.String())
}

func (s *Service) route(ctx context.Context, question string) ([]AgentRoute, error) {
	var resp managerResponse
	err := s.gen.StructuredComplete(ctx, s.cfg.Generation.Model, []assistant.Message{
		assistant.System(managerAgentPrompt),
		assistant.User(question),
	}, &resp)
	if err != nil {
		return nil, err
	}
	return resp.Response, nil
}

func (s *Service) callDetailsAgent(ctx context.Context, projectID uuid.UUID, query string) (string, error) {
	project, err := s.store.FindProject(ctx, projectID)
	if err != nil {
		return "", err
	}
	if project == nil {
		return "", errors.New("project not found")
	}
	return s.gen.FreeformComplete(ctx, s.cfg.Generation.Model, []assistant.Message{
		assistant.System(detailsAgentPrompt),
		assistant.User("Query: " + query),
		assistant.User(project.PromptContent()),
	})
}

func (s *Service) callBusinessAgent(ctx context.Context, projectID uuid.UUID, query string) (string, error) {
	content, err := s.business.BusinessPromptContent(ctx, projectID)
	if err != nil {
		return "", err
	}
	return s.gen.FreeformComplete(ctx, s.cfg.Generation.Model, []assistant.Message{
		assistant.System(businessAgentPrompt),
		assistant.User("Query: " + query),
		assistant.User(content),
	})
}

func (s *Service) callResearchAgent(ctx context.Context, query string) (string, error) {
	return s.gen.FreeformComplete(ctx, s.cfg.Generation.Model, []assistant.Message{
		assistant.System(researchAgentPrompt),
		assistant.User("Query: " + query),
	})
}

func (s *Service) synthesize(ctx context.Context, transcript string) (string, error) {
	return s.gen.FreeformComplete(ctx, s.cfg.Generation.Model, []assistant.Message{
		assistant.System(synthesisAgentPrompt),
		assistant.User(transcript),
	})
}

func titleCase(agent string) string {
	if agent == "" {
		return agent
	}
	return strings.ToUpper(agent[:1]) + agent[1:]
}
