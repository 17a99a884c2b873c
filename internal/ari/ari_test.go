// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ari

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/venture-advisor/internal/assistant"
	"github.com/pdiddy/venture-advisor/internal/bd"
	"github.com/pdiddy/venture-advisor/internal/console"
	"github.com/pdiddy/venture-advisor/internal/logging"
	"github.com/pdiddy/venture-advisor/internal/store"
	"github.com/pdiddy/venture-advisor/pkg/types"
)

type freeformReply struct {
	content string
	err     error
}

// mockGenerator replays the manager routing payload and a sequence of
// freeform agent replies, recording every freeform message list.
type mockGenerator struct {
	managerPayload  string
	structuredCalls int
	replies         []freeformReply
	freeformCalls   int
	freeformMsgs    [][]assistant.Message
}

func (m *mockGenerator) StructuredComplete(ctx context.Context, model string, msgs []assistant.Message, out any) error {
	m.structuredCalls++
	return json.Unmarshal([]byte(m.managerPayload), out)
}

func (m *mockGenerator) FreeformComplete(ctx context.Context, model string, msgs []assistant.Message) (string, error) {
	idx := m.freeformCalls
	m.freeformCalls++
	m.freeformMsgs = append(m.freeformMsgs, msgs)
	if idx >= len(m.replies) {
		return "", errors.New("unexpected freeform call")
	}
	return m.replies[idx].content, m.replies[idx].err
}

func (m *mockGenerator) CompleteJSON(ctx context.Context, model string, msgs []assistant.Message) (map[string]any, error) {
	return nil, nil
}

func (m *mockGenerator) Embed(ctx context.Context, text string) ([]float64, error) {
	return []float64{0.1}, nil
}

func (m *mockGenerator) Summarize(ctx context.Context, content string, characterLimit int) (string, error) {
	return "summary", nil
}

type stubResearcher struct{}

func (stubResearcher) ResearchComplete(ctx context.Context, msgs []assistant.Message, maxTokens int) (assistant.ResearchResult, error) {
	return assistant.ResearchResult{}, errors.New("not used")
}

func testService(t *testing.T, gen *mockGenerator, input ...string) (*Service, *store.Store) {
	t.Helper()
	st, err := store.Open(types.StoreConfig{RootDir: t.TempDir()}, logging.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	var out bytes.Buffer
	con := console.NewWith(strings.NewReader(strings.Join(input, "\n")+"\n"), &out)
	cfg := types.Defaults()
	business := bd.NewService(st, gen, stubResearcher{}, con, cfg, logging.Nop())
	return NewService(st, business, gen, con, cfg, logging.Nop()), st
}

func createProject(t *testing.T, st *store.Store) *store.Project {
	t.Helper()
	p := &store.Project{Title: "Algae Bioplastics", Summary: "PHA from microalgae.", Methodology: "Photobioreactors.", Impact: "Carbon negative packaging."}
	require.NoError(t, st.CreateProject(context.Background(), p))
	return p
}

func TestAskQuestionRoutesAndSynthesizes(t *testing.T) {
	gen := &mockGenerator{
		managerPayload: `{"response": [
			{"agent": "details", "focusAreas": ["Overview"], "agentQuery": "What is the methodology?"},
			{"agent": "research", "focusAreas": ["Alternatives"], "agentQuery": "Which other organisms produce PHA?"}
		]}`,
		replies: []freeformReply{
			{content: "details answer"},
			{content: "research answer"},
			{content: "final synthesis"},
		},
	}
	svc, st := testService(t, gen)
	p := createProject(t, st)

	answer, err := svc.AskQuestion(context.Background(), p.ID, "How does this work?")
	require.NoError(t, err)
	assert.Equal(t, "final synthesis", answer)
	assert.Equal(t, 1, gen.structuredCalls)
	assert.Equal(t, 3, gen.freeformCalls)

	// The details agent receives the project documentation as context.
	detailsMsgs := gen.freeformMsgs[0]
	assert.Contains(t, detailsMsgs[len(detailsMsgs)-1].Content, "Algae Bioplastics")
	assert.Equal(t, "Query: What is the methodology?", detailsMsgs[1].Content)

	// The synthesis agent receives the full transcript.
	synthesisMsgs := gen.freeformMsgs[2]
	transcript := synthesisMsgs[len(synthesisMsgs)-1].Content
	assert.Contains(t, transcript, "Details Agent Response: details answer")
	assert.Contains(t, transcript, "Research Agent Response: research answer")
}

func TestAskQuestionAgentErrorIsNotFatal(t *testing.T) {
	gen := &mockGenerator{
		managerPayload: `{"response": [
			{"agent": "details", "focusAreas": [], "agentQuery": "q1"},
			{"agent": "research", "focusAreas": [], "agentQuery": "q2"}
		]}`,
		replies: []freeformReply{
			{err: errors.New("backend unavailable")},
			{content: "research answer"},
			{content: "final synthesis"},
		},
	}
	svc, st := testService(t, gen)
	p := createProject(t, st)

	answer, err := svc.AskQuestion(context.Background(), p.ID, "What next?")
	require.NoError(t, err)
	assert.Equal(t, "final synthesis", answer)

	transcript := gen.freeformMsgs[2][1].Content
	assert.Contains(t, transcript, "Error from details agent")
	assert.Contains(t, transcript, "Research Agent Response: research answer")
}

func TestAskQuestionApologizesWithoutAgentContent(t *testing.T) {
	gen := &mockGenerator{
		managerPayload: `{"response": [
			{"agent": "research", "focusAreas": [], "agentQuery": "q"}
		]}`,
		replies: []freeformReply{
			{err: errors.New("backend unavailable")},
		},
	}
	svc, st := testService(t, gen)
	p := createProject(t, st)

	answer, err := svc.AskQuestion(context.Background(), p.ID, "Anything?")
	require.NoError(t, err)
	assert.Equal(t, apologyResponse, answer)
	// No synthesis without gathered content.
	assert.Equal(t, 1, gen.freeformCalls)
}

func TestAskQuestionSkipsUnknownAgent(t *testing.T) {
	gen := &mockGenerator{
		managerPayload: `{"response": [
			{"agent": "marketing", "focusAreas": [], "agentQuery": "q"}
		]}`,
	}
	svc, st := testService(t, gen)
	p := createProject(t, st)

	answer, err := svc.AskQuestion(context.Background(), p.ID, "Anything?")
	require.NoError(t, err)
	assert.Equal(t, apologyResponse, answer)
	assert.Equal(t, 0, gen.freeformCalls)
}

func TestConverseQuitsAndRepromptsOnEmpty(t *testing.T) {
	gen := &mockGenerator{}
	svc, st := testService(t, gen, "", "quit")
	p := createProject(t, st)

	require.NoError(t, svc.Converse(context.Background(), p.ID))
	assert.Equal(t, 0, gen.structuredCalls)
}
