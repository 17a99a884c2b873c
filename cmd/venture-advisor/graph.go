// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/pdiddy/venture-advisor/internal/assistant"
	"github.com/pdiddy/venture-advisor/internal/graph"
	"github.com/pdiddy/venture-advisor/internal/logging"
	"github.com/pdiddy/venture-advisor/internal/secrets"
	"github.com/pdiddy/venture-advisor/internal/store"
	"github.com/pdiddy/venture-advisor/pkg/types"
)

var graphCmd = &cobra.Command{
	Use:   "graph",
	Short: "Inspect and maintain the project knowledge graph",
	Long: `Graph operates on the neo4j knowledge graph directly. Use subcommands to
register stored projects, record an activity event, or list the event log.

The graph backend is configured under the "graph" config section; an empty
URI disables it.`,
}

var graphSyncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Register every stored project in the knowledge graph",
	RunE:  runGraphSync,
}

var graphEventCmd = &cobra.Command{
	Use:   "event [project-id]",
	Short: "Record an activity event for a project",
	Long: `Event records one activity on the project's event branch. With --payload the
event data is embedded, compared against tracked variables, and classified;
without it only a bare log entry is written.`,
	Args: cobra.ExactArgs(1),
	RunE: runGraphEvent,
}

var graphLogCmd = &cobra.Command{
	Use:   "log [project-id]",
	Short: "List recorded events for a project, newest first",
	Args:  cobra.ExactArgs(1),
	RunE:  runGraphLog,
}

func init() {
	graphEventCmd.Flags().String("title", "", "event title")
	graphEventCmd.Flags().String("description", "", "event description")
	graphEventCmd.Flags().String("payload", "", "event data to embed and classify")
	graphEventCmd.Flags().String("edge", "TECHNOLOGY_DEVELOPMENT", "edge label linking the event to the log branch")
	_ = graphEventCmd.MarkFlagRequired("title")

	graphCmd.AddCommand(graphSyncCmd)
	graphCmd.AddCommand(graphEventCmd)
	graphCmd.AddCommand(graphLogCmd)
	rootCmd.AddCommand(graphCmd)
}

// openKnowledge connects to the graph backend and wires the knowledge
// service. The returned cleanup closes the connection.
func openKnowledge(ctx context.Context, cfg types.Config, log *logging.Logger) (*graph.Knowledge, func(), error) {
	token, err := secrets.Load(cfg.Store.RootDir)
	if err != nil && !errors.Is(err, secrets.ErrNotFound) {
		return nil, nil, err
	}
	cfg.Generation.APIKey = token.OpenAIAPIKey

	gs, err := graph.NewStore(ctx, cfg.Graph, log)
	if err != nil {
		if errors.Is(err, graph.ErrDisabled) {
			return nil, nil, errors.New("knowledge graph is not configured: set graph.uri")
		}
		return nil, nil, err
	}

	gen := assistant.NewOpenAIClient(cfg.Generation)
	knowledge := graph.NewKnowledge(gs, gen, graph.NewLogNotifier(log), cfg, log)
	return knowledge, func() { _ = gs.Close(ctx) }, nil
}

func runGraphSync(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg := loadConfig()

	mode, _ := rootCmd.PersistentFlags().GetString("log-mode")
	log, err := logging.New(mode)
	if err != nil {
		return err
	}
	defer log.Sync()

	st, err := store.Open(cfg.Store, log)
	if err != nil {
		return err
	}
	defer st.Close()

	knowledge, cleanup, err := openKnowledge(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer cleanup()

	projects, err := st.ListProjects(ctx)
	if err != nil {
		return err
	}
	for _, p := range projects {
		if err := knowledge.AddProject(ctx, p.ID, p.Title); err != nil {
			return fmt.Errorf("registering project %s: %w", p.ID, err)
		}
		fmt.Fprintf(os.Stdout, "registered %s  %s\n", p.ID, p.Title)
	}
	fmt.Fprintf(os.Stdout, "%d project(s) registered\n", len(projects))
	return nil
}

func runGraphEvent(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg := loadConfig()

	projectID, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid project id %q: %w", args[0], err)
	}

	mode, _ := rootCmd.PersistentFlags().GetString("log-mode")
	log, err := logging.New(mode)
	if err != nil {
		return err
	}
	defer log.Sync()

	knowledge, cleanup, err := openKnowledge(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer cleanup()

	title, _ := cmd.Flags().GetString("title")
	description, _ := cmd.Flags().GetString("description")
	payload, _ := cmd.Flags().GetString("payload")
	edge, _ := cmd.Flags().GetString("edge")

	event := graph.Event{ID: uuid.New(), Title: title, Description: description, Payload: payload}
	if err := knowledge.AddEvent(ctx, projectID, event, edge); err != nil {
		return err
	}
	fmt.Fprintf(os.Stdout, "event %s recorded\n", event.ID)
	return nil
}

func runGraphLog(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg := loadConfig()

	projectID, err := uuid.Parse(args[0])
	if err != nil {
		return fmt.Errorf("invalid project id %q: %w", args[0], err)
	}

	mode, _ := rootCmd.PersistentFlags().GetString("log-mode")
	log, err := logging.New(mode)
	if err != nil {
		return err
	}
	defer log.Sync()

	knowledge, cleanup, err := openKnowledge(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer cleanup()

	events, err := knowledge.PreviousEvents(ctx, projectID)
	if err != nil {
		return err
	}
	if len(events) == 0 {
		fmt.Fprintln(os.Stdout, "No events recorded.")
		return nil
	}

	for _, e := range events {
		fmt.Fprintf(os.Stdout, "%s  %s\n", e.CreatedAt.Format("2006-01-02 15:04"), e.Title)
		if e.Description != "" {
			fmt.Fprintf(os.Stdout, "    %s\n", e.Description)
		}
		if len(e.NewVariables) > 0 {
			names := make([]string, 0, len(e.NewVariables))
			for _, v := range e.NewVariables {
				names = append(names, v.VariableName)
			}
			fmt.Fprintf(os.Stdout, "    variables: %s\n", strings.Join(names, ", "))
		}
		if len(e.Insights) > 0 {
			fmt.Fprintf(os.Stdout, "    insights: %d\n", len(e.Insights))
		}
		if len(e.Contradictions) > 0 {
			fmt.Fprintf(os.Stdout, "    contradictions: %d pending\n", len(e.Contradictions))
		}
	}
	return nil
}
