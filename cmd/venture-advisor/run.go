// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/pdiddy/venture-advisor/internal/ari"
	"github.com/pdiddy/venture-advisor/internal/assistant"
	"github.com/pdiddy/venture-advisor/internal/bd"
	"github.com/pdiddy/venture-advisor/internal/console"
	"github.com/pdiddy/venture-advisor/internal/graph"
	"github.com/pdiddy/venture-advisor/internal/logging"
	"github.com/pdiddy/venture-advisor/internal/secrets"
	"github.com/pdiddy/venture-advisor/internal/store"
	"github.com/pdiddy/venture-advisor/internal/td"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Select a project and run a development pipeline",
	Long: `Run opens the workspace, loads (or prompts for) API credentials, lets you
pick or create a project, and dispatches one of the pipelines:

  business development   markets, segments, persona, canvas, pricing
  technology development research planning and literature research
  conversation           free-form questions answered by the advisor agents

All pipeline state persists in the workspace, so a pipeline picked up again
continues where it left off.`,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg := loadConfig()

	mode, _ := rootCmd.PersistentFlags().GetString("log-mode")
	log, err := logging.New(mode)
	if err != nil {
		return err
	}
	defer log.Sync()

	con := console.New()
	con.Clear()
	con.Header("Venture Advisor")

	st, err := store.Open(cfg.Store, log)
	if err != nil {
		return err
	}
	defer st.Close()

	token, err := loadOrPromptToken(con, cfg.Store.RootDir)
	if err != nil {
		return err
	}
	cfg.Generation.APIKey = token.OpenAIAPIKey
	cfg.Research.APIKey = token.PerplexityAPIKey

	gen := assistant.NewOpenAIClient(cfg.Generation)
	research := assistant.NewPerplexityClient(cfg.Research)

	var knowledge *graph.Knowledge
	if cfg.Graph.URI != "" {
		gs, err := graph.NewStore(ctx, cfg.Graph, log)
		if err != nil {
			con.Warn(fmt.Sprintf("Knowledge graph unavailable: %v", err))
		} else {
			defer gs.Close(ctx)
			knowledge = graph.NewKnowledge(gs, gen, graph.NewLogNotifier(log), cfg, log)
		}
	}

	project, created, err := selectProject(ctx, con, st)
	if err != nil {
		return err
	}
	if created && knowledge != nil {
		if err := knowledge.AddProject(ctx, project.ID, project.Title); err != nil {
			con.Warn(fmt.Sprintf("Could not register project in the knowledge graph: %v", err))
		}
	}

	choice, err := con.Select("Choose a pipeline", []string{
		"Business Development",
		"Technology Development",
		"Conversation",
	})
	if err != nil {
		return err
	}

	businessSvc := bd.NewService(st, gen, research, con, cfg, log)

	switch choice {
	case 0:
		if err := businessSvc.Pipeline(project.ID).Run(ctx); err != nil {
			return err
		}
		recordActivity(ctx, con, knowledge, project.ID, "BUSINESS_DEVELOPMENT",
			"Business development session", "A business development pipeline session completed.")
	case 1:
		techSvc := td.NewService(st, gen, research, con, cfg, log)
		if err := techSvc.Pipeline(project.ID).Run(ctx); err != nil {
			return err
		}
		recordActivity(ctx, con, knowledge, project.ID, "TECHNOLOGY_DEVELOPMENT",
			"Technology development session", "A technology development pipeline session completed.")
	case 2:
		conversation := ari.NewService(st, businessSvc, gen, con, cfg, log)
		if err := conversation.Converse(ctx, project.ID); err != nil {
			return err
		}
	}
	return nil
}

// loadOrPromptToken reads the stored API token, prompting for and persisting
// the keys on first use.
func loadOrPromptToken(con *console.Console, rootDir string) (secrets.Token, error) {
	token, err := secrets.Load(rootDir)
	if err == nil {
		return token, nil
	}
	if !errors.Is(err, secrets.ErrNotFound) {
		return secrets.Token{}, err
	}

	con.Info("No API credentials found. They will be stored in the workspace.")
	openaiKey, err := con.Input("OpenAI API key")
	if err != nil {
		return secrets.Token{}, err
	}
	perplexityKey, err := con.Input("Perplexity API key")
	if err != nil {
		return secrets.Token{}, err
	}

	token = secrets.Token{OpenAIAPIKey: openaiKey, PerplexityAPIKey: perplexityKey}
	if err := secrets.Store(rootDir, token); err != nil {
		return secrets.Token{}, err
	}
	con.Success("Credentials stored.")
	return token, nil
}

// selectProject lets the operator pick an existing project or create a new
// one. The second return value reports whether a project was created.
func selectProject(ctx context.Context, con *console.Console, st *store.Store) (*store.Project, bool, error) {
	projects, err := st.ListProjects(ctx)
	if err != nil {
		return nil, false, err
	}

	options := make([]string, 0, len(projects)+1)
	for _, p := range projects {
		options = append(options, p.Title)
	}
	options = append(options, "Create a new project")

	choice, err := con.Select("Choose a project", options)
	if err != nil {
		return nil, false, err
	}
	if choice < len(projects) {
		return &projects[choice], false, nil
	}

	project, err := createProject(ctx, con, st)
	if err != nil {
		return nil, false, err
	}
	return project, true, nil
}

func createProject(ctx context.Context, con *console.Console, st *store.Store) (*store.Project, error) {
	con.SubHeader("New Project")

	title, err := con.Input("Project title")
	if err != nil {
		return nil, err
	}
	summary, err := con.Input("Summary of the research")
	if err != nil {
		return nil, err
	}
	methodology, err := con.Input("Methodology")
	if err != nil {
		return nil, err
	}
	impact, err := con.Input("Expected impact")
	if err != nil {
		return nil, err
	}

	project := &store.Project{
		Title:       title,
		Summary:     summary,
		Methodology: methodology,
		Impact:      impact,
	}
	if err := st.CreateProject(ctx, project); err != nil {
		return nil, err
	}
	con.Success(fmt.Sprintf("Project %q created.", project.Title))
	return project, nil
}

// recordActivity logs a completed pipeline session to the knowledge graph.
// Graph failures are reported, never fatal.
func recordActivity(ctx context.Context, con *console.Console, knowledge *graph.Knowledge, projectID uuid.UUID, edgeLabel, title, description string) {
	if knowledge == nil {
		return
	}
	event := graph.Event{ID: uuid.New(), Title: title, Description: description}
	if err := knowledge.AddEvent(ctx, projectID, event, edgeLabel); err != nil {
		con.Warn(fmt.Sprintf("Could not record activity in the knowledge graph: %v", err))
	}
}
