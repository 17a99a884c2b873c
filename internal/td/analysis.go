// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package td

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"sort"
	"strings"

	"github.com/google/uuid"
	"go.yaml.in/yaml/v3"
	"gorm.io/datatypes"

	"github.com/pdiddy/venture-advisor/internal/assistant"
	"github.com/pdiddy/venture-advisor/internal/store"
	"github.com/pdiddy/venture-advisor/pkg/types"
)

const (
	researchOutputDir = "research_outputs"
	finalReportDir    = "final_reports"
)

// A query produces variables in square brackets and consumes earlier
// answers in curly brackets.
var (
	producesRe = regexp.MustCompile(`\[(.*?)\]`)
	consumesRe = regexp.MustCompile(`\{(.*?)\}`)
)

type generatedStep struct {
	StepIndex   int    `json:"stepIndex"`
	Step        string `json:"step"`
	Description string `json:"description"`
}

type stepGenerationResponse struct {
	Steps []generatedStep `json:"steps"`
}

type generatedQuery struct {
	Query          string `json:"query"`
	FocusAreaIndex int    `json:"focusAreaIndex"`
}

type queryGenerationResponse struct {
	GeneratedQueries []generatedQuery `json:"generated_queries"`
}

// GenerateSteps derives the literature research focus areas from the intake
// record. Generation runs only while no steps exist; afterwards the stored
// steps are displayed.
func (s *Service) GenerateSteps(ctx context.Context, projectID uuid.UUID) error {
	copilot, err := s.store.CopilotForProject(ctx, projectID)
	if err != nil {
		return err
	}
	analysis := copilot.Analysis.Data()

	if len(analysis.Steps) == 0 {
		content, err := s.CopilotPromptContent(ctx, projectID)
		if err != nil {
			return err
		}
		var resp stepGenerationResponse
		msgs := []assistant.Message{
			assistant.System(stepGenerationPrompt),
			assistant.User("Project Content: " + content),
		}
		if err := s.gen.StructuredComplete(ctx, s.cfg.Generation.Model, msgs, &resp); err != nil {
			return fmt.Errorf("generating research steps: %w", err)
		}

		steps := make([]types.AnalysisStep, 0, len(resp.Steps))
		for _, st := range resp.Steps {
			steps = append(steps, types.AnalysisStep{
				Index:       st.StepIndex,
				Title:       st.Step,
				Description: st.Description,
			})
		}
		sort.Slice(steps, func(i, j int) bool { return steps[i].Index < steps[j].Index })
		analysis.Steps = steps
		if err := s.saveAnalysis(ctx, copilot, analysis); err != nil {
			return err
		}
		s.console.Success(fmt.Sprintf("Generated %d research steps.", len(steps)))
	}

	for _, st := range analysis.Steps {
		s.console.Card(fmt.Sprintf("Step %d", st.Index),
			"Title", st.Title,
			"Description", st.Description)
	}
	s.console.Printf("Total steps: %d\n", len(analysis.Steps))
	return nil
}

// GenerateQueries turns the focus areas into an ordered list of standalone
// research queries. Generation re-runs while fewer than three queries exist,
// replacing whatever partial list was stored.
func (s *Service) GenerateQueries(ctx context.Context, projectID uuid.UUID) error {
	copilot, err := s.store.CopilotForProject(ctx, projectID)
	if err != nil {
		return err
	}
	analysis := copilot.Analysis.Data()

	if len(analysis.Queries) < minQueries {
		if len(analysis.Steps) == 0 {
			return errors.New("no research steps to derive queries from")
		}

		parts := make([]string, 0, len(analysis.Steps))
		for _, st := range analysis.Steps {
			parts = append(parts, fmt.Sprintf("**Focus Area Index%d:\n\tStep Name: %s\n\tStep Description: %s",
				st.Index, st.Title, st.Description))
		}
		content := "Focus Areas:\n" + strings.Join(parts, "\n\n")

		var resp queryGenerationResponse
		msgs := []assistant.Message{
			assistant.System(queryGenerationPrompt),
			assistant.User(content),
		}
		if err := s.gen.StructuredComplete(ctx, s.cfg.Generation.ReasoningModel, msgs, &resp); err != nil {
			return fmt.Errorf("generating research queries: %w", err)
		}

		queries := make([]types.AnalysisQuery, 0, len(resp.GeneratedQueries))
		for i, q := range resp.GeneratedQueries {
			queries = append(queries, types.AnalysisQuery{
				Index:      i,
				GroupIndex: q.FocusAreaIndex,
				Query:      q.Query,
				State:      types.QueryWaiting,
			})
		}
		analysis.Queries = queries
		if err := s.saveAnalysis(ctx, copilot, analysis); err != nil {
			return err
		}
		s.console.Success(fmt.Sprintf("Generated %d research queries.", len(queries)))
	}

	for _, q := range analysis.Queries {
		focus := "Unknown"
		if st := analysis.StepByIndex(q.GroupIndex); st != nil {
			focus = st.Title
		}
		s.console.Card(fmt.Sprintf("Query %d", q.Index),
			"Focus", focus,
			"Query", q.Query,
			"Status", string(q.State))
	}
	s.console.Printf("Total queries: %d\n", len(analysis.Queries))
	return nil
}

// RunResearch executes the waiting queries in order. Each query has its
// curly-bracket placeholders filled from previously extracted outcomes, is
// researched, written to disk with a YAML sidecar, and has its
// square-bracket variables extracted into the outcomes map for the queries
// that follow. A failed query is marked failed and the run moves on.
func (s *Service) RunResearch(ctx context.Context, projectID uuid.UUID) error {
	copilot, err := s.store.CopilotForProject(ctx, projectID)
	if err != nil {
		return err
	}
	analysis := copilot.Analysis.Data()
	if analysis.Outcomes == nil {
		analysis.Outcomes = map[string][]string{}
	}

	waiting := analysis.WaitingQueries()
	if len(waiting) == 0 {
		s.console.Info("No queries waiting for research.")
		return nil
	}
	analysis.State = types.PipelineRunning

	dir := filepath.Join(s.store.RootDir(), researchOutputDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating research output dir: %w", err)
	}

	var failed int
	for i, query := range waiting {
		s.console.Printf("Progress: %d/%d\n", i+1, len(waiting))
		s.console.Info(truncate(query.Query, 80))

		query.State = types.QueryGenerating
		substituted := substitutePlaceholders(query.Query, analysis.Outcomes)

		result, err := s.research.ResearchComplete(ctx, []assistant.Message{
			assistant.System(researchOutcomePrompt),
			assistant.User(substituted),
		}, researchMaxTokens)
		if err != nil {
			query.State = types.QueryFailed
			failed++
			s.console.Error(fmt.Sprintf("Query %d failed: %v", query.Index, err))
			s.log.Warn("research query failed", "query", query.Index, "error", err)
			if err := s.saveAnalysis(ctx, copilot, analysis); err != nil {
				return err
			}
			continue
		}

		query.Content = result.Content
		query.Citations = result.Citations

		outputPath := filepath.Join(dir, fmt.Sprintf("research_output_%d.txt", query.Index))
		if err := os.WriteFile(outputPath, []byte(result.Content), 0o644); err != nil {
			return fmt.Errorf("writing research output: %w", err)
		}
		query.ReportURL = outputPath
		if err := writeSidecar(outputPath, query); err != nil {
			return err
		}

		if produces := placeholderNames(producesRe, query.Query); len(produces) > 0 {
			outcomes, err := s.extractOutcomes(ctx, result.Content, produces)
			if err != nil {
				s.log.Warn("variable extraction failed", "query", query.Index, "error", err)
			}
			// Values accumulate across queries; later queries consume the
			// joined list through {NAME} substitution.
			for name, values := range outcomes {
				analysis.Outcomes[name] = append(analysis.Outcomes[name], values...)
			}
		}

		query.State = types.QueryDone
		if err := s.saveAnalysis(ctx, copilot, analysis); err != nil {
			return err
		}
		s.console.Success(fmt.Sprintf("Query %d completed.", query.Index))
	}

	if failed > 0 {
		s.console.Warn(fmt.Sprintf("%d of %d research queries failed. Run the pipeline again to retry.", failed, len(waiting)))
		return nil
	}
	s.console.Success(fmt.Sprintf("All %d research queries processed.", len(waiting)))
	return nil
}

// FinalReport synthesizes all query content into one report file and records
// its location. The step is a no-op once a report exists.
func (s *Service) FinalReport(ctx context.Context, projectID uuid.UUID) error {
	copilot, err := s.store.CopilotForProject(ctx, projectID)
	if err != nil {
		return err
	}
	analysis := copilot.Analysis.Data()
	if analysis.FinalReportURL != "" {
		s.console.Info("Final report already generated: " + analysis.FinalReportURL)
		return nil
	}

	parts := make([]string, 0, len(analysis.Queries))
	for _, q := range analysis.Queries {
		content := q.Content
		if content == "" {
			content = "No content available"
		}
		parts = append(parts, fmt.Sprintf("**Query Index %d:\n\tQuery: %s\n\tContent: %s", q.Index, q.Query, content))
	}
	queryContent := strings.Join(parts, "\n\n")

	report, err := s.gen.FreeformComplete(ctx, s.cfg.Generation.ReportModel, []assistant.Message{
		assistant.System(finalReportPrompt),
		assistant.User(queryContent),
	})
	if err != nil {
		return fmt.Errorf("generating final report: %w", err)
	}

	dir := filepath.Join(s.store.RootDir(), finalReportDir)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating final report dir: %w", err)
	}
	outputPath := filepath.Join(dir, fmt.Sprintf("final_report_%s.txt", projectID))
	if err := os.WriteFile(outputPath, []byte(report), 0o644); err != nil {
		return fmt.Errorf("writing final report: %w", err)
	}

	analysis.FinalReportURL = outputPath
	analysis.State = types.PipelineDone
	if err := s.saveAnalysis(ctx, copilot, analysis); err != nil {
		return err
	}

	s.console.Card("Final Report",
		"Project", projectID.String(),
		"File", outputPath)
	s.console.Success("Final report generated.")
	return nil
}

// extractOutcomes pulls the named variables out of a research response.
// Values come back as a string or a list per variable and are normalized to
// string lists.
func (s *Service) extractOutcomes(ctx context.Context, content string, names []string) (map[string][]string, error) {
	prompt := fmt.Sprintf("INPUT:\nThe following research text contains information about: %s\n\nEXTRACTION TARGETS:\nYou must extract precise values and contextual information for these specific variables: %s",
		content, strings.Join(names, ", "))
	raw, err := s.gen.CompleteJSON(ctx, s.cfg.Generation.ReportModel, []assistant.Message{
		assistant.System(extractVariablesPrompt),
		assistant.User(prompt),
	})
	if err != nil {
		return nil, fmt.Errorf("extracting variables: %w", err)
	}

	outcomes := make(map[string][]string, len(names))
	for _, name := range names {
		switch value := raw[name].(type) {
		case string:
			outcomes[name] = []string{value}
		case []any:
			for _, item := range value {
				if text, ok := item.(string); ok {
					outcomes[name] = append(outcomes[name], text)
				}
			}
		}
	}
	return outcomes, nil
}

func (s *Service) saveAnalysis(ctx context.Context, copilot *store.Copilot, analysis types.Analysis) error {
	copilot.Analysis = datatypes.NewJSONType(analysis)
	return s.store.SaveCopilot(ctx, copilot)
}

// substitutePlaceholders fills {NAME} placeholders from the outcomes map.
// Unknown names render as an empty string.
func substitutePlaceholders(query string, outcomes map[string][]string) string {
	return consumesRe.ReplaceAllStringFunc(query, func(match string) string {
		name := match[1 : len(match)-1]
		return strings.Join(outcomes[name], ", ")
	})
}

// placeholderNames returns the deduplicated placeholder names in order of
// first appearance.
func placeholderNames(re *regexp.Regexp, query string) []string {
	var names []string
	for _, m := range re.FindAllStringSubmatch(query, -1) {
		if !slices.Contains(names, m[1]) {
			names = append(names, m[1])
		}
	}
	return names
}

// researchSidecar records what produced a research output file.
type researchSidecar struct {
	Query     string   `yaml:"query"`
	Citations []string `yaml:"citations"`
}

func writeSidecar(outputPath string, query *types.AnalysisQuery) error {
	encoded, err := yaml.Marshal(researchSidecar{Query: query.Query, Citations: query.Citations})
	if err != nil {
		return fmt.Errorf("encoding research sidecar: %w", err)
	}
	sidecar := strings.TrimSuffix(outputPath, ".txt") + ".yaml"
	if err := os.WriteFile(sidecar, encoded, 0o644); err != nil {
		return fmt.Errorf("writing research sidecar: %w", err)
	}
	return nil
}

func truncate(s string, limit int) string {
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}
