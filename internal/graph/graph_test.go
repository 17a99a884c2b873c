// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package graph

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/venture-advisor/internal/assistant"
	"github.com/pdiddy/venture-advisor/internal/logging"
	"github.com/pdiddy/venture-advisor/pkg/types"
)

// fakeExecutor records every query and replays canned rows by call index.
type fakeExecutor struct {
	queries []string
	params  []map[string]any
	results [][]map[string]any
}

func (f *fakeExecutor) ExecuteQuery(ctx context.Context, query string, params map[string]any) ([]map[string]any, error) {
	idx := len(f.queries)
	f.queries = append(f.queries, query)
	f.params = append(f.params, params)
	if idx < len(f.results) {
		return f.results[idx], nil
	}
	return nil, nil
}

// graphGenerator returns a fixed embedding and replays one classification.
type graphGenerator struct {
	embedding      []float64
	payload        string
	structuredMsgs []assistant.Message
}

func (g *graphGenerator) StructuredComplete(ctx context.Context, model string, msgs []assistant.Message, out any) error {
	g.structuredMsgs = msgs
	return json.Unmarshal([]byte(g.payload), out)
}

func (g *graphGenerator) FreeformComplete(ctx context.Context, model string, msgs []assistant.Message) (string, error) {
	return "", nil
}

func (g *graphGenerator) CompleteJSON(ctx context.Context, model string, msgs []assistant.Message) (map[string]any, error) {
	return nil, nil
}

func (g *graphGenerator) Embed(ctx context.Context, text string) ([]float64, error) {
	return g.embedding, nil
}

func (g *graphGenerator) Summarize(ctx context.Context, content string, characterLimit int) (string, error) {
	return "summary", nil
}

type recordNotifier struct {
	events   []string
	payloads []any
}

func (r *recordNotifier) Notify(projectID uuid.UUID, event string, payload any) {
	r.events = append(r.events, event)
	r.payloads = append(r.payloads, payload)
}

func newKnowledge(exec Executor, gen assistant.Generator, notifier Notifier) *Knowledge {
	return NewKnowledge(exec, gen, notifier, types.Defaults(), logging.Nop())
}

func TestCosine(t *testing.T) {
	assert.InDelta(t, 1.0, Cosine([]float64{1, 2, 3}, []float64{1, 2, 3}), 1e-9)
	assert.InDelta(t, 0.0, Cosine([]float64{1, 0}, []float64{0, 1}), 1e-9)
	assert.Equal(t, 0.0, Cosine([]float64{1, 2}, []float64{1, 2, 3}))
	assert.Equal(t, 0.0, Cosine(nil, nil))
	assert.Equal(t, 0.0, Cosine([]float64{0, 0}, []float64{1, 1}))
}

func TestAddProjectCreatesBranches(t *testing.T) {
	exec := &fakeExecutor{}
	k := newKnowledge(exec, &graphGenerator{}, nil)
	projectID := uuid.New()

	require.NoError(t, k.AddProject(context.Background(), projectID, "Enzymatic Recycling"))
	require.Len(t, exec.queries, 1)
	assert.Contains(t, exec.queries[0], "TechnologyDevelopment")
	assert.Contains(t, exec.queries[0], "BusinessDevelopment")
	assert.Equal(t, projectID.String(), exec.params[0]["projectId"])
	assert.Equal(t, "Enzymatic Recycling", exec.params[0]["projectName"])
}

func TestAddEventWithoutPayload(t *testing.T) {
	exec := &fakeExecutor{}
	notifier := &recordNotifier{}
	k := newKnowledge(exec, &graphGenerator{}, notifier)

	event := Event{ID: uuid.New(), Title: "Pipeline started", Description: "Technology development kicked off."}
	require.NoError(t, k.AddEvent(context.Background(), uuid.New(), event, "TechnologyDevelopment"))

	// A bare event only writes the log node; no embedding or raw data.
	require.Len(t, exec.queries, 1)
	assert.Contains(t, exec.queries[0], "EventLog")
	require.Equal(t, []string{"new-activity-added"}, notifier.events)
}

func TestAddEventRejectsBadEdgeLabel(t *testing.T) {
	k := newKnowledge(&fakeExecutor{}, &graphGenerator{}, nil)
	event := Event{ID: uuid.New(), Title: "x", Description: "y"}

	err := k.AddEvent(context.Background(), uuid.New(), event, "BAD LABEL; DROP")
	require.Error(t, err)
}

func TestAddEventClassifiesAndMaterializes(t *testing.T) {
	variableRows := []map[string]any{
		{
			"variableId":   "var-1",
			"variableName": "Operating Temperature",
			"description":  "Reactor operating range.",
			"values":       `["60C"]`,
			"embedding":    []any{1.0, 0.0},
			"insights":     []any{"stable so far"},
		},
		{
			"variableId":   "var-2",
			"variableName": "Funding Runway",
			"description":  "Months of cash left.",
			"values":       `["12 months"]`,
			"embedding":    []any{0.0, 1.0},
			"insights":     []any{},
		},
	}
	exec := &fakeExecutor{results: [][]map[string]any{
		nil, nil, nil, // event log, embedding, raw data
		variableRows,
	}}
	gen := &graphGenerator{
		embedding: []float64{1, 0},
		payload: `{
			"title": "Enzyme screen recorded",
			"description": "New screening data.",
			"type": "add_new_variable",
			"newNodes": [
				{"variableName": "Candidate Enzyme", "variableHighLevelDescription": "Top hydrolase hit.", "values": ["LCC-ICCG"], "targetVariableType": "TechnologyDevelopment"}
			],
			"insights": [
				{"variableName": "Operating Temperature", "insight": "Activity holds at 65C.", "targetVariableType": "TechnologyDevelopment", "targetNodeId": "var-1"}
			],
			"contradictions": [
				{"contradictoryVariableName": "Operating Temperature", "contradictoryValue": "60C", "suggestedValue": "65C", "targetVariableType": "TechnologyDevelopment", "reason": "New assay ran hotter.", "targetNodeId": "var-1"}
			]
		}`,
	}
	notifier := &recordNotifier{}
	k := newKnowledge(exec, gen, notifier)
	projectID := uuid.New()
	event := Event{ID: uuid.New(), Title: "Enzyme screen", Description: "Screening run.", Payload: `{"hits": 3}`}

	require.NoError(t, k.AddEvent(context.Background(), projectID, event, "TechnologyDevelopment"))

	// event log, embedding, raw data, variable fetch, variable create,
	// variable embedding, insight, finalize.
	require.Len(t, exec.queries, 8)
	assert.Contains(t, exec.queries[4], "ADD_VARIABLE")
	assert.Equal(t, "Candidate Enzyme", exec.params[4]["name"])
	assert.Contains(t, exec.queries[6], "INSIGHT")
	assert.Equal(t, "var-1", exec.params[6]["variableNodeId"])

	// Only the similar variable reaches the classification context.
	classifierContext := gen.structuredMsgs[len(gen.structuredMsgs)-1].Content
	assert.Contains(t, classifierContext, "Operating Temperature")
	assert.NotContains(t, classifierContext, "Funding Runway")

	// Contradictions are stored pending on the finalized log node.
	contradictions, _ := exec.params[7]["contradictions"].(string)
	assert.Contains(t, contradictions, ContradictionPending)

	require.Len(t, notifier.payloads, 1)
	logRecord, ok := notifier.payloads[0].(EventLog)
	require.True(t, ok)
	assert.Len(t, logRecord.NewVariables, 1)
	assert.Len(t, logRecord.Insights, 1)
	require.Len(t, logRecord.Contradictions, 1)
	assert.Equal(t, ContradictionPending, logRecord.Contradictions[0].Status)
}

func TestRelevantVariablesThreshold(t *testing.T) {
	exec := &fakeExecutor{results: [][]map[string]any{
		{
			{
				"variableId":   "var-1",
				"variableName": "Similar",
				"description":  "close match",
				"values":       `["a","b"]`,
				"embedding":    []any{1.0, 0.0},
				"insights":     []any{"keep"},
			},
			{
				"variableId":   "var-2",
				"variableName": "Distant",
				"description":  "orthogonal",
				"values":       `["c"]`,
				"embedding":    []any{0.0, 1.0},
				"insights":     []any{},
			},
		},
	}}
	k := newKnowledge(exec, &graphGenerator{}, nil)

	relevant, err := k.RelevantVariables(context.Background(), uuid.New(), []float64{1, 0})
	require.NoError(t, err)
	require.Len(t, relevant, 1)
	assert.Equal(t, "var-1", relevant[0].ID)
	assert.Equal(t, []string{"a", "b"}, relevant[0].Values)
	assert.Equal(t, []string{"keep"}, relevant[0].Insights)
}

func TestPreviousEventsParsesStoredJSON(t *testing.T) {
	exec := &fakeExecutor{results: [][]map[string]any{
		{
			{
				"id":             "evt-1",
				"title":          "Research step done",
				"description":    "Query 3 finished.",
				"createdAt":      "2026-08-28T10:00:00Z",
				"newVariables":   `[{"variableName":"ENZYME","variableValues":["Trypsin"],"description":"Best hit."}]`,
				"insights":       `[]`,
				"contradictions": `[]`,
			},
		},
	}}
	k := newKnowledge(exec, &graphGenerator{}, nil)

	events, err := k.PreviousEvents(context.Background(), uuid.New())
	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, "evt-1", events[0].ID)
	assert.Equal(t, 2026, events[0].CreatedAt.Year())
	require.Len(t, events[0].NewVariables, 1)
	assert.Equal(t, "ENZYME", events[0].NewVariables[0].VariableName)
	assert.Empty(t, events[0].Insights)
}

func TestAddVariableRejectsUnknownTarget(t *testing.T) {
	k := newKnowledge(&fakeExecutor{}, &graphGenerator{}, nil)

	err := k.AddVariable(context.Background(), uuid.New(), uuid.New(), Variable{Name: "x", Target: "Marketing"})
	require.Error(t, err)
}
