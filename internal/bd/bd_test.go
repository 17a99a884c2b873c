// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package bd

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/pdiddy/venture-advisor/internal/assistant"
	"github.com/pdiddy/venture-advisor/internal/console"
	"github.com/pdiddy/venture-advisor/internal/logging"
	"github.com/pdiddy/venture-advisor/internal/store"
	"github.com/pdiddy/venture-advisor/pkg/types"
)

// mockGenerator replays canned JSON payloads for structured calls.
type mockGenerator struct {
	payloads        []string
	structuredCalls int
}

func (m *mockGenerator) StructuredComplete(ctx context.Context, model string, msgs []assistant.Message, out any) error {
	if m.structuredCalls >= len(m.payloads) {
		return fmt.Errorf("unexpected structured call %d", m.structuredCalls)
	}
	payload := m.payloads[m.structuredCalls]
	m.structuredCalls++
	return json.Unmarshal([]byte(payload), out)
}

func (m *mockGenerator) FreeformComplete(ctx context.Context, model string, msgs []assistant.Message) (string, error) {
	return "", nil
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

// mockResearcher returns one canned research result and counts calls.
type mockResearcher struct {
	content string
	calls   int
}

func (m *mockResearcher) ResearchComplete(ctx context.Context, msgs []assistant.Message, maxTokens int) (assistant.ResearchResult, error) {
	m.calls++
	return assistant.ResearchResult{Content: m.content, Citations: []string{"https://example.com"}}, nil
}

func testService(t *testing.T, gen *mockGenerator, research *mockResearcher, input ...string) (*Service, *store.Store) {
	t.Helper()
	st, err := store.Open(types.StoreConfig{RootDir: t.TempDir()}, logging.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	var out bytes.Buffer
	con := console.NewWith(strings.NewReader(strings.Join(input, "\n")+"\n"), &out)
	svc := NewService(st, gen, research, con, types.Defaults(), logging.Nop())
	return svc, st
}

func createProject(t *testing.T, st *store.Store) *store.Project {
	t.Helper()
	p := &store.Project{Title: "Algae Bioplastics", Summary: "PHA from microalgae.", Methodology: "Photobioreactors.", Impact: "Carbon negative packaging."}
	require.NoError(t, st.CreateProject(context.Background(), p))
	return p
}

func analyzedMarket(businessID uuid.UUID, name string, selected bool) store.TargetMarket {
	size := datatypes.NewJSONType(types.MarketSize{Value: 2.5, Currency: "USD", Unit: "billion", Year: 2026})
	cagr := datatypes.NewJSONType(types.CAGR{RatePercent: 9.4, Period: types.CAGRPeriod{StartYear: 2025, EndYear: 2030}})
	sat := datatypes.NewJSONType(types.Saturation{Stage: "Emerging", CompetitionLevel: "Low", OpportunityLevel: "High"})
	return store.TargetMarket{
		BusinessID: businessID,
		Name:       name,
		Selected:   selected,
		MarketSize: &size,
		CAGR:       &cagr,
		Saturation: &sat,
	}
}

func TestIdentifyTargetMarketsRunsOnce(t *testing.T) {
	gen := &mockGenerator{payloads: []string{
		`{"targetMarkets": [
			{"name": "Food Packaging", "description": "Compostable films for food brands."},
			{"name": "Agriculture", "description": "Mulch films that biodegrade in soil."}
		]}`,
	}}
	svc, st := testService(t, gen, &mockResearcher{})
	p := createProject(t, st)
	ctx := context.Background()

	require.NoError(t, svc.IdentifyTargetMarkets(ctx, p.ID))
	assert.Equal(t, 1, gen.structuredCalls)

	markets, err := st.ListTargetMarkets(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, markets, 2)
	byName := map[string]store.TargetMarket{}
	for _, m := range markets {
		byName[m.Name] = m
		// Newly identified markets start unselected.
		assert.False(t, m.Selected)
	}
	assert.Equal(t, "Compostable films for food brands.", byName["Food Packaging"].Description)
	assert.Equal(t, "Mulch films that biodegrade in soil.", byName["Agriculture"].Description)

	// Second run must reuse the stored markets without another generation.
	require.NoError(t, svc.IdentifyTargetMarkets(ctx, p.ID))
	assert.Equal(t, 1, gen.structuredCalls)
}

func TestSelectAndAnalyzeMarkets(t *testing.T) {
	analysisPayload := `{
		"marketName": "Food Packaging",
		"marketSize": {"value": 4.1, "currency": "USD", "unit": "billion", "year": 2026},
		"cagr": {"ratePercent": 11.2, "period": {"startYear": 2025, "endYear": 2031}},
		"keyHighlights": ["Retailers mandate compostable packaging"],
		"saturation": {"stage": "Emerging", "competition": "Low", "opportunityLevel": "High"},
		"opportunities": ["Direct-to-brand supply deals"],
		"challenges": ["Cost parity with fossil plastics"],
		"sources": ["Packaging Market Outlook 2026"]
	}`
	gen := &mockGenerator{payloads: []string{analysisPayload, analysisPayload, analysisPayload}}
	research := &mockResearcher{content: "detailed market research text"}
	svc, st := testService(t, gen, research, "1,2,3")
	p := createProject(t, st)
	ctx := context.Background()

	_, err := st.BusinessForProject(ctx, p.ID)
	require.NoError(t, err)
	require.NoError(t, st.CreateTargetMarkets(ctx, []store.TargetMarket{
		{BusinessID: p.ID, Name: "Food Packaging", Description: "Compostable films."},
		{BusinessID: p.ID, Name: "Agriculture", Description: "Biodegradable mulch."},
		{BusinessID: p.ID, Name: "Cosmetics", Description: "Refillable containers."},
		{BusinessID: p.ID, Name: "Textiles", Description: "PHA fibers."},
	}))

	require.NoError(t, svc.SelectAndAnalyzeMarkets(ctx, p.ID))
	assert.Equal(t, 3, research.calls)
	assert.Equal(t, 3, gen.structuredCalls)

	selected, err := st.ListSelectedTargetMarkets(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, selected, 3)
	for i := range selected {
		assert.True(t, selected[i].Analyzed())
		assert.Contains(t, []string(selected[i].Sources), "https://example.com")
	}
}

func TestSelectAndAnalyzeMarketsSkipsAnalyzed(t *testing.T) {
	gen := &mockGenerator{}
	research := &mockResearcher{content: "unused"}
	svc, st := testService(t, gen, research)
	p := createProject(t, st)
	ctx := context.Background()

	require.NoError(t, st.CreateTargetMarkets(ctx, []store.TargetMarket{
		analyzedMarket(p.ID, "Food Packaging", true),
		analyzedMarket(p.ID, "Agriculture", true),
		analyzedMarket(p.ID, "Cosmetics", true),
	}))

	require.NoError(t, svc.SelectAndAnalyzeMarkets(ctx, p.ID))
	assert.Zero(t, research.calls)
	assert.Zero(t, gen.structuredCalls)
}

func TestSelectMarketOfInterest(t *testing.T) {
	svc, st := testService(t, &mockGenerator{}, &mockResearcher{}, "2")
	p := createProject(t, st)
	ctx := context.Background()

	require.NoError(t, st.CreateTargetMarkets(ctx, []store.TargetMarket{
		analyzedMarket(p.ID, "Food Packaging", true),
		analyzedMarket(p.ID, "Agriculture", true),
		analyzedMarket(p.ID, "Cosmetics", true),
	}))

	require.NoError(t, svc.SelectMarketOfInterest(ctx, p.ID))

	business, err := st.BusinessForProject(ctx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, business.SelectedTargetMarketID)

	// A second run keeps the selection without prompting; the scripted input
	// is already exhausted, so any prompt would fail.
	require.NoError(t, svc.SelectMarketOfInterest(ctx, p.ID))
}

func TestIdentifyMarketSegments(t *testing.T) {
	segmentsPayload := `{"marketSegments": [
		{"title": "Organic Food Brands", "description": "Premium brands.", "segmentSize": 38,
		 "questionAnswers": [{"score": 4}, {"score": 5}, {"score": 3}]},
		{"title": "Meal Kit Services", "description": "Subscription services.", "segmentSize": 21,
		 "questionAnswers": [{"score": 3}, {"score": 3}, {"score": 3}]}
	]}`
	gen := &mockGenerator{payloads: []string{segmentsPayload}}
	research := &mockResearcher{content: "segmentation research"}
	svc, st := testService(t, gen, research, "1")
	p := createProject(t, st)
	ctx := context.Background()

	business, err := st.BusinessForProject(ctx, p.ID)
	require.NoError(t, err)
	markets := []store.TargetMarket{analyzedMarket(p.ID, "Food Packaging", true)}
	require.NoError(t, st.CreateTargetMarkets(ctx, markets))
	business.SelectedTargetMarketID = &markets[0].ID
	require.NoError(t, st.SaveBusiness(ctx, business))

	require.NoError(t, svc.IdentifyMarketSegments(ctx, p.ID))
	assert.Equal(t, 1, research.calls)

	segments, err := st.ListSegments(ctx, markets[0].ID)
	require.NoError(t, err)
	require.Len(t, segments, 2)

	market, err := st.FindTargetMarket(ctx, markets[0].ID)
	require.NoError(t, err)
	require.NotNil(t, market.SelectedMarketSegmentID)
}

func TestIdentifyMarketSegmentsKeepsSelection(t *testing.T) {
	gen := &mockGenerator{}
	research := &mockResearcher{}
	// Declining the change prompt keeps the current segment.
	svc, st := testService(t, gen, research, "n")
	p := createProject(t, st)
	ctx := context.Background()

	business, err := st.BusinessForProject(ctx, p.ID)
	require.NoError(t, err)
	markets := []store.TargetMarket{analyzedMarket(p.ID, "Food Packaging", true)}
	require.NoError(t, st.CreateTargetMarkets(ctx, markets))

	segments := []store.MarketSegment{{TargetMarketID: markets[0].ID, Title: "Organic Food Brands"}}
	require.NoError(t, st.CreateSegments(ctx, segments))

	market, err := st.FindTargetMarket(ctx, markets[0].ID)
	require.NoError(t, err)
	market.SelectedMarketSegmentID = &segments[0].ID
	require.NoError(t, st.SaveTargetMarket(ctx, market))
	business.SelectedTargetMarketID = &markets[0].ID
	require.NoError(t, st.SaveBusiness(ctx, business))

	require.NoError(t, svc.IdentifyMarketSegments(ctx, p.ID))
	assert.Zero(t, research.calls)
	assert.Zero(t, gen.structuredCalls)

	market, err = st.FindTargetMarket(ctx, markets[0].ID)
	require.NoError(t, err)
	assert.Equal(t, segments[0].ID, *market.SelectedMarketSegmentID)
}

func preparePersonaContext(t *testing.T, st *store.Store, p *store.Project) {
	t.Helper()
	ctx := context.Background()
	business, err := st.BusinessForProject(ctx, p.ID)
	require.NoError(t, err)
	markets := []store.TargetMarket{analyzedMarket(p.ID, "Food Packaging", true)}
	require.NoError(t, st.CreateTargetMarkets(ctx, markets))
	segments := []store.MarketSegment{{TargetMarketID: markets[0].ID, Title: "Organic Food Brands", Description: "Premium brands."}}
	require.NoError(t, st.CreateSegments(ctx, segments))

	market, err := st.FindTargetMarket(ctx, markets[0].ID)
	require.NoError(t, err)
	market.SelectedMarketSegmentID = &segments[0].ID
	require.NoError(t, st.SaveTargetMarket(ctx, market))
	business.SelectedTargetMarketID = &markets[0].ID
	require.NoError(t, st.SaveBusiness(ctx, business))
}

func TestGeneratePersona(t *testing.T) {
	gen := &mockGenerator{payloads: []string{`{
		"name": "Maya Chen", "occupation": "Head of Packaging", "gender": "female",
		"maritalStatus": "married", "keyTraits": ["pragmatic"], "personalityType": "analytical",
		"purchaseDrivers": ["sustainability targets"], "preferredBrands": ["Tetra Pak"],
		"biography": "Leads packaging sourcing for an organic food brand.",
		"painPoints": ["greenwashing claims"], "communityTouchpoints": ["trade expos"],
		"purchaseFrequency": {"interval": "2-3 times", "period": "per year", "reason": "contract renewals"}
	}`}}
	svc, st := testService(t, gen, &mockResearcher{})
	p := createProject(t, st)
	preparePersonaContext(t, st, p)
	ctx := context.Background()

	require.NoError(t, svc.GeneratePersona(ctx, p.ID))
	assert.Equal(t, 1, gen.structuredCalls)

	persona, err := st.PersonaForBusiness(ctx, p.ID)
	require.NoError(t, err)
	require.NotNil(t, persona)
	assert.Equal(t, p.ID, persona.ID)
	assert.Equal(t, "Maya Chen", persona.Name)

	// An existing persona suppresses regeneration.
	require.NoError(t, svc.GeneratePersona(ctx, p.ID))
	assert.Equal(t, 1, gen.structuredCalls)
}

func savePersona(t *testing.T, st *store.Store, businessID uuid.UUID) {
	t.Helper()
	require.NoError(t, st.SavePersona(context.Background(), &store.BusinessPersona{
		ID:         businessID,
		Name:       "Maya Chen",
		Occupation: "Head of Packaging",
		KeyTraits:  datatypes.NewJSONSlice([]string{"pragmatic"}),
	}))
}

func TestCustomerResearch(t *testing.T) {
	gen := &mockGenerator{payloads: []string{
		`{"customerResearchFilters": [{"name": "Series A", "type": "investmentStage"}],
		  "competitorResearchFilters": [{"name": "Biotechnology", "type": "industry"}]}`,
		`{"customerResearchResults": [
			{"companyName": "GreenWrap", "companySize": "10-50", "contactDetails": "hello@greenwrap.io",
			 "investmentSeries": "Seed", "location": "Berlin"}
		]}`,
	}}
	svc, st := testService(t, gen, &mockResearcher{})
	p := createProject(t, st)
	savePersona(t, st, p.ID)
	ctx := context.Background()

	require.NoError(t, svc.CustomerResearch(ctx, p.ID))
	assert.Equal(t, 2, gen.structuredCalls)

	business, err := st.BusinessForProject(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, business.CustomerCRMFilters, 1)
	require.Len(t, business.CompetitorCRMFilters, 1)
	require.Len(t, business.CustomerResearchResults, 1)
	assert.Equal(t, "GreenWrap", business.CustomerResearchResults[0].CompanyName)

	// A second invocation replays the stored results without new calls.
	require.NoError(t, svc.CustomerResearch(ctx, p.ID))
	assert.Equal(t, 2, gen.structuredCalls)
}

func TestCustomerResearchResumesAfterPartialSave(t *testing.T) {
	gen := &mockGenerator{payloads: []string{
		`{"customerResearchResults": [
			{"companyName": "GreenWrap", "companySize": "10-50", "contactDetails": "hello@greenwrap.io",
			 "investmentSeries": "Seed", "location": "Berlin"}
		]}`,
	}}
	svc, st := testService(t, gen, &mockResearcher{})
	p := createProject(t, st)
	savePersona(t, st, p.ID)
	ctx := context.Background()

	// Filters persisted by an earlier run that failed before the research save.
	business, err := st.BusinessForProject(ctx, p.ID)
	require.NoError(t, err)
	business.CustomerCRMFilters = datatypes.NewJSONSlice([]types.CRMFilter{{Name: "Series A", Type: "investmentStage"}})
	require.NoError(t, st.SaveBusiness(ctx, business))

	require.NoError(t, svc.CustomerResearch(ctx, p.ID))
	assert.Equal(t, 1, gen.structuredCalls)

	business, err = st.BusinessForProject(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, business.CustomerCRMFilters, 1)
	assert.Equal(t, "Series A", business.CustomerCRMFilters[0].Name)
	require.Len(t, business.CustomerResearchResults, 1)
	assert.Equal(t, "GreenWrap", business.CustomerResearchResults[0].CompanyName)
}

func TestBusinessModelCanvasGuard(t *testing.T) {
	gen := &mockGenerator{payloads: []string{`{"businessModels": [
		{"index": 1, "businessModelTitle": "Licensed Production Partnerships",
		 "overview": "License the strain and process.", "implementationDetails": "Partner with converters.",
		 "competitionAndDefensibility": "Strain IP.", "riskAnalysis": "Partner lock-in.",
		 "customerDescription": {"volume": "low", "value": "high", "churn": "low"}}
	]}`}}
	svc, st := testService(t, gen, &mockResearcher{})
	p := createProject(t, st)
	savePersona(t, st, p.ID)
	ctx := context.Background()

	require.NoError(t, svc.BusinessModelCanvas(ctx, p.ID))
	assert.Equal(t, 1, gen.structuredCalls)

	business, err := st.BusinessForProject(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, business.BusinessModelCanvas, 1)
	assert.Equal(t, "Licensed Production Partnerships", business.BusinessModelCanvas[0].Title)

	require.NoError(t, svc.BusinessModelCanvas(ctx, p.ID))
	assert.Equal(t, 1, gen.structuredCalls)
}

func TestPricingStrategyGuard(t *testing.T) {
	gen := &mockGenerator{payloads: []string{`{"costBasedPricingModel": [
		{"scale": "proofOfConcept",
		 "costItems": [
			{"type": "direct", "itemName": "Bioreactor time", "itemDescription": "Pilot runs", "costUSD": 5000},
			{"type": "indirect", "itemName": "Lab overhead", "itemDescription": "Space and utilities", "costUSD": 3000}
		 ],
		 "totalCostUSD": 8000}
	]}`}}
	svc, st := testService(t, gen, &mockResearcher{})
	p := createProject(t, st)
	savePersona(t, st, p.ID)
	ctx := context.Background()

	require.NoError(t, svc.PricingStrategy(ctx, p.ID))
	assert.Equal(t, 1, gen.structuredCalls)

	business, err := st.BusinessForProject(ctx, p.ID)
	require.NoError(t, err)
	require.Len(t, business.CostBasedPricingModels, 1)
	assert.Equal(t, 8000.0, business.CostBasedPricingModels[0].TotalCost())

	require.NoError(t, svc.PricingStrategy(ctx, p.ID))
	assert.Equal(t, 1, gen.structuredCalls)
}

func TestBusinessPromptContent(t *testing.T) {
	svc, st := testService(t, &mockGenerator{}, &mockResearcher{})
	p := createProject(t, st)
	preparePersonaContext(t, st, p)
	savePersona(t, st, p.ID)

	content, err := svc.BusinessPromptContent(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Contains(t, content, "Food Packaging")
	assert.Contains(t, content, "Organic Food Brands")
	assert.Contains(t, content, "Maya Chen")
}
