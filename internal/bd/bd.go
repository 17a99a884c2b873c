// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package bd implements the business development pipeline: an eight step
// interactive flow that takes a project from market identification to a
// priced business model. Every step persists its result and skips itself on
// re-entry, so the pipeline resumes wherever it was stopped.
package bd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/pdiddy/venture-advisor/internal/assistant"
	"github.com/pdiddy/venture-advisor/internal/console"
	"github.com/pdiddy/venture-advisor/internal/logging"
	"github.com/pdiddy/venture-advisor/internal/pipeline"
	"github.com/pdiddy/venture-advisor/internal/store"
	"github.com/pdiddy/venture-advisor/pkg/types"
)

const (
	// minSelectedMarkets is how many markets must be picked for deep analysis.
	minSelectedMarkets = 3

	// analysisMaxTokens bounds the market analysis research response.
	analysisMaxTokens = 1000

	// segmentMaxTokens bounds the segmentation research response.
	segmentMaxTokens = 6000
)

// Service runs the business development steps for one operator session.
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

// Pipeline returns the runner for the full eight step flow.
func (s *Service) Pipeline(projectID uuid.UUID) *pipeline.Runner {
	step := func(name string, run func(context.Context, uuid.UUID) error) pipeline.Step {
		return pipeline.Step{
			Name: name,
			Run:  func(ctx context.Context) error { return run(ctx, projectID) },
		}
	}
	return pipeline.New("Business Development", s.console, s.log,
		step("Target Market Identification", s.IdentifyTargetMarkets),
		step("Target Market Selection & Analysis", s.SelectAndAnalyzeMarkets),
		step("Market of Interest", s.SelectMarketOfInterest),
		step("Market Segmentation", s.IdentifyMarketSegments),
		step("Customer Persona", s.GeneratePersona),
		step("Customer CRM & Research", s.CustomerResearch),
		step("Business Model Canvas", s.BusinessModelCanvas),
		step("Pricing Strategy", s.PricingStrategy),
	)
}

// IdentifyTargetMarkets generates up to six candidate markets for the
// project. The generation runs only once; subsequent runs display the stored
// markets.
func (s *Service) IdentifyTargetMarkets(ctx context.Context, projectID uuid.UUID) error {
	business, err := s.store.BusinessForProject(ctx, projectID)
	if err != nil {
		return err
	}
	markets, err := s.store.ListTargetMarkets(ctx, business.ID)
	if err != nil {
		return err
	}

	if len(markets) == 0 {
		project, err := s.store.FindProject(ctx, projectID)
		if err != nil {
			return err
		}
		if project == nil {
			return fmt.Errorf("project %s not found", projectID)
		}

		s.console.Info("Analyzing your project to identify potential target markets...")
		var resp targetMarketIdentificationResponse
		err = s.gen.StructuredComplete(ctx, s.cfg.Generation.Model, []assistant.Message{
			assistant.System(targetMarketIdentificationPrompt),
			assistant.User(project.PromptContent()),
		}, &resp)
		if err != nil {
			return fmt.Errorf("identifying target markets: %w", err)
		}

		for _, m := range resp.TargetMarkets {
			markets = append(markets, store.TargetMarket{
				BusinessID:  business.ID,
				Name:        m.Name,
				Description: m.Description,
			})
		}
		if err := s.store.CreateTargetMarkets(ctx, markets); err != nil {
			return err
		}
		s.console.Success(fmt.Sprintf("Discovered %d potential target markets", len(markets)))
	}

	for i := range markets {
		s.renderMarketCard(&markets[i], i)
	}
	s.console.Println(fmt.Sprintf("Total Markets Identified: %d", len(markets)))
	return nil
}

// SelectAndAnalyzeMarkets lets the operator pick at least three markets and
// runs the deep analysis on each. Already analyzed markets are skipped.
func (s *Service) SelectAndAnalyzeMarkets(ctx context.Context, projectID uuid.UUID) error {
	business, err := s.store.BusinessForProject(ctx, projectID)
	if err != nil {
		return err
	}
	markets, err := s.store.ListTargetMarkets(ctx, business.ID)
	if err != nil {
		return err
	}
	if len(markets) == 0 {
		return errors.New("no target markets identified yet")
	}

	selected := selectedMarkets(markets)
	if len(selected) < minSelectedMarkets {
		options := make([]string, len(markets))
		for i, m := range markets {
			options[i] = fmt.Sprintf("%s - %s", m.Name, truncate(m.Description, 60))
		}
		s.console.Println(fmt.Sprintf("Please select at least %d target markets for comprehensive analysis.", minSelectedMarkets))
		picked, err := s.console.MultiSelect("Select target markets for analysis:", options, minSelectedMarkets)
		if err != nil {
			return err
		}

		chosen := map[uuid.UUID]bool{}
		for _, idx := range picked {
			chosen[markets[idx].ID] = true
		}
		var dropped []uuid.UUID
		for _, m := range markets {
			if m.Selected && !chosen[m.ID] {
				dropped = append(dropped, m.ID)
			}
		}
		if err := s.store.DeselectMarkets(ctx, dropped); err != nil {
			return err
		}

		for n, idx := range picked {
			m := &markets[idx]
			if !m.Selected {
				m.Selected = true
				if err := s.store.SaveTargetMarket(ctx, m); err != nil {
					return err
				}
			}
			s.console.Info(fmt.Sprintf("Progress: %d/%d", n+1, len(picked)))
			if err := s.analyzeMarket(ctx, m); err != nil {
				return err
			}
		}
		s.console.Success(fmt.Sprintf("Successfully analyzed %d target markets", len(picked)))
		return nil
	}

	// Enough markets already selected. Make sure each has its analysis.
	for i := range selected {
		if err := s.analyzeMarket(ctx, &selected[i]); err != nil {
			return err
		}
	}
	return nil
}

// analyzeMarket researches one market and stores the structured analysis.
// Markets with both size and growth figures are considered done.
func (s *Service) analyzeMarket(ctx context.Context, market *store.TargetMarket) error {
	if market.Analyzed() {
		s.console.Info(fmt.Sprintf("Target market %s already analyzed. Skipping...", market.Name))
		s.renderAnalysisCard(market)
		return nil
	}

	s.console.Info(fmt.Sprintf("Conducting deep market analysis for: %s", market.Name))
	result, err := s.research.ResearchComplete(ctx, []assistant.Message{
		assistant.System(targetMarketAnalysisPrompt),
		assistant.User(marketPromptContent(market)),
	}, analysisMaxTokens)
	if err != nil {
		return fmt.Errorf("researching market %q: %w", market.Name, err)
	}

	var analysis targetMarketAnalysisResponse
	err = s.gen.StructuredComplete(ctx, s.cfg.Generation.Model, []assistant.Message{
		assistant.System(extractionPrompt),
		assistant.User(result.Content),
	}, &analysis)
	if err != nil {
		return fmt.Errorf("structuring analysis for %q: %w", market.Name, err)
	}

	size := datatypes.NewJSONType(analysis.MarketSize)
	cagr := datatypes.NewJSONType(analysis.CAGR)
	saturation := datatypes.NewJSONType(analysis.Saturation)
	market.MarketSize = &size
	market.CAGR = &cagr
	market.Saturation = &saturation
	market.KeyHighlights = datatypes.NewJSONSlice(analysis.KeyHighlights)
	market.Opportunities = datatypes.NewJSONSlice(analysis.Opportunities)
	market.Challenges = datatypes.NewJSONSlice(analysis.Challenges)
	market.Sources = datatypes.NewJSONSlice(append(analysis.Sources, result.Citations...))

	if err := s.store.SaveTargetMarket(ctx, market); err != nil {
		return err
	}
	s.console.Success("Analysis completed for: " + market.Name)
	s.renderAnalysisCard(market)
	return nil
}

// SelectMarketOfInterest locks in one analyzed market as the focus of the
// remaining steps.
func (s *Service) SelectMarketOfInterest(ctx context.Context, projectID uuid.UUID) error {
	business, err := s.store.BusinessForProject(ctx, projectID)
	if err != nil {
		return err
	}

	if business.SelectedTargetMarketID != nil {
		market, err := s.store.FindTargetMarket(ctx, *business.SelectedTargetMarketID)
		if err != nil {
			return err
		}
		if market == nil {
			return fmt.Errorf("selected target market %s not found", *business.SelectedTargetMarketID)
		}
		s.console.Info("Market of interest already selected: " + market.Name)
		return nil
	}

	selected, err := s.store.ListSelectedTargetMarkets(ctx, business.ID)
	if err != nil {
		return err
	}
	if len(selected) == 0 {
		return errors.New("no target markets selected for analysis")
	}

	s.console.SubHeader("Market Analysis Comparison")
	s.renderComparisonTable(selected)

	options := make([]string, len(selected))
	for i, m := range selected {
		options[i] = fmt.Sprintf("%s (%s, %s CAGR)", m.Name, marketSizeLabel(&m), cagrLabel(&m))
	}
	idx, err := s.console.Select("Select your primary market of interest:", options)
	if err != nil {
		return err
	}

	business.SelectedTargetMarketID = &selected[idx].ID
	if err := s.store.SaveBusiness(ctx, business); err != nil {
		return err
	}

	s.renderMarketCard(&selected[idx], 0)
	s.console.Success("Market of interest has been locked in for further analysis")
	return nil
}

// IdentifyMarketSegments segments the market of interest and has the
// operator pick the segment to pursue.
func (s *Service) IdentifyMarketSegments(ctx context.Context, projectID uuid.UUID) error {
	business, err := s.store.BusinessForProject(ctx, projectID)
	if err != nil {
		return err
	}
	if business.SelectedTargetMarketID == nil {
		return errors.New("no market of interest selected yet")
	}
	market, err := s.store.FindTargetMarket(ctx, *business.SelectedTargetMarketID)
	if err != nil {
		return err
	}
	if market == nil {
		return fmt.Errorf("selected target market %s not found", *business.SelectedTargetMarketID)
	}

	segments, err := s.store.ListSegments(ctx, market.ID)
	if err != nil {
		return err
	}

	if len(segments) == 0 {
		s.console.Info("Identifying market segments within: " + market.Name)
		result, err := s.research.ResearchComplete(ctx, []assistant.Message{
			assistant.System(marketSegmentIdentificationPrompt),
			assistant.User(marketPromptContent(market)),
		}, segmentMaxTokens)
		if err != nil {
			return fmt.Errorf("researching segments for %q: %w", market.Name, err)
		}

		var resp marketSegmentIdentificationResponse
		err = s.gen.StructuredComplete(ctx, s.cfg.Generation.Model, []assistant.Message{
			assistant.System(extractionPrompt),
			assistant.User(result.Content),
		}, &resp)
		if err != nil {
			return fmt.Errorf("structuring segments for %q: %w", market.Name, err)
		}

		for _, seg := range resp.MarketSegments {
			scores := make([]types.QuestionAnswer, len(seg.QuestionAnswers))
			for i, qa := range seg.QuestionAnswers {
				scores[i] = types.QuestionAnswer{Score: qa.Score}
			}
			segments = append(segments, store.MarketSegment{
				TargetMarketID:  market.ID,
				Title:           seg.Title,
				Description:     seg.Description,
				SegmentSize:     seg.SegmentSize,
				QuestionAnswers: datatypes.NewJSONSlice(scores),
			})
		}
		if err := s.store.CreateSegments(ctx, segments); err != nil {
			return err
		}
		s.console.Success(fmt.Sprintf("Identified %d market segments", len(segments)))
	} else {
		s.console.Info("Market segments already identified for: " + market.Name)
	}

	return s.selectSegmentOfInterest(ctx, market, segments)
}

// selectSegmentOfInterest records the operator's segment choice on the
// market. An existing choice is kept unless the operator asks to change it.
func (s *Service) selectSegmentOfInterest(ctx context.Context, market *store.TargetMarket, segments []store.MarketSegment) error {
	if len(segments) == 0 {
		return errors.New("no market segments identified for the selected target market")
	}

	s.console.SubHeader("Market Segments within: " + market.Name)
	for i := range segments {
		s.renderSegmentCard(&segments[i], i, market.SelectedMarketSegmentID != nil && *market.SelectedMarketSegmentID == segments[i].ID)
	}

	if market.SelectedMarketSegmentID != nil {
		current := findSegment(segments, *market.SelectedMarketSegmentID)
		if current != nil {
			s.console.Println("Current Selection: " + current.Title)
			change, err := s.console.Confirm("Do you want to change your market segment selection?", false)
			if err != nil {
				return err
			}
			if !change {
				s.console.Success("Market segment selection confirmed")
				return nil
			}
		}
	}

	options := make([]string, len(segments))
	for i := range segments {
		seg := &segments[i]
		label := fmt.Sprintf("%s (%d%% fit score, %.0f)", seg.Title, seg.FitPercent(), seg.SegmentSize)
		if market.SelectedMarketSegmentID != nil && *market.SelectedMarketSegmentID == seg.ID {
			label += " [CURRENT]"
		}
		options[i] = label
	}
	idx, err := s.console.Select("Select your target market segment:", options)
	if err != nil {
		return err
	}

	market.SelectedMarketSegmentID = &segments[idx].ID
	if err := s.store.SaveTargetMarket(ctx, market); err != nil {
		return err
	}
	s.renderSegmentCard(&segments[idx], 0, true)
	s.console.Success("Market segment has been locked in for persona generation")
	return nil
}

// GeneratePersona creates the archetypal customer for the selected segment.
// The persona shares the business's ID and is generated once.
func (s *Service) GeneratePersona(ctx context.Context, projectID uuid.UUID) error {
	business, err := s.store.BusinessForProject(ctx, projectID)
	if err != nil {
		return err
	}

	existing, err := s.store.PersonaForBusiness(ctx, business.ID)
	if err != nil {
		return err
	}
	if existing != nil {
		s.console.Info("Customer persona already generated.")
		s.renderPersonaCard(existing)
		return nil
	}

	if business.SelectedTargetMarketID == nil {
		return errors.New("no market of interest selected yet")
	}
	market, err := s.store.FindTargetMarket(ctx, *business.SelectedTargetMarketID)
	if err != nil {
		return err
	}
	if market == nil || market.SelectedMarketSegmentID == nil {
		return errors.New("no market segment selected yet")
	}
	segment, err := s.store.FindSegment(ctx, *market.SelectedMarketSegmentID)
	if err != nil {
		return err
	}
	if segment == nil {
		return fmt.Errorf("selected market segment %s not found", *market.SelectedMarketSegmentID)
	}
	project, err := s.store.FindProject(ctx, projectID)
	if err != nil {
		return err
	}

	prompt := fmt.Sprintf(`
    %s

    Target Market Name: %s
    Target Market Description: %s
    Market Segment Title: %s
    Market Segment Description: %s
    `, project.PromptContent(), market.Name, market.Description, segment.Title, segment.Description)

	s.console.Info("Generating customer persona...")
	var resp personaResponse
	err = s.gen.StructuredComplete(ctx, s.cfg.Generation.Model, []assistant.Message{
		assistant.System(customerPersonaGenerationPrompt),
		assistant.User(prompt),
	}, &resp)
	if err != nil {
		return fmt.Errorf("generating persona: %w", err)
	}

	persona := &store.BusinessPersona{
		ID:                   business.ID,
		Name:                 resp.Name,
		Occupation:           resp.Occupation,
		Gender:               resp.Gender,
		MaritalStatus:        resp.MaritalStatus,
		PersonalityType:      resp.PersonalityType,
		Biography:            resp.Biography,
		KeyTraits:            datatypes.NewJSONSlice(resp.KeyTraits),
		PurchaseDrivers:      datatypes.NewJSONSlice(resp.PurchaseDrivers),
		PreferredBrands:      datatypes.NewJSONSlice(resp.PreferredBrands),
		PainPoints:           datatypes.NewJSONSlice(resp.PainPoints),
		CommunityTouchpoints: datatypes.NewJSONSlice(resp.CommunityTouchpoints),
		PurchaseFrequency:    datatypes.NewJSONType(resp.PurchaseFrequency),
	}
	if err := s.store.SavePersona(ctx, persona); err != nil {
		return err
	}

	s.renderPersonaCard(persona)
	s.console.Success("Customer persona has been successfully created and saved")
	return nil
}

// CustomerResearch generates CRM filters and a concrete prospect list from
// the persona.
func (s *Service) CustomerResearch(ctx context.Context, projectID uuid.UUID) error {
	business, err := s.store.BusinessForProject(ctx, projectID)
	if err != nil {
		return err
	}

	if len(business.CustomerCRMFilters) > 0 && len(business.CustomerResearchResults) > 0 {
		s.console.Info("Customer research already completed. Displaying existing results...")
		s.renderFilterTable(business.CustomerCRMFilters)
		s.renderResearchTable(business.CustomerResearchResults)
		return nil
	}

	persona, err := s.store.PersonaForBusiness(ctx, business.ID)
	if err != nil {
		return err
	}
	if persona == nil {
		return errors.New("customer persona not generated yet")
	}
	project, err := s.store.FindProject(ctx, projectID)
	if err != nil {
		return err
	}

	detail := detailPromptContent(project, persona)

	// Filters and research persist separately, so a run that failed between
	// the two saves resumes with the filters already in place.
	if len(business.CustomerCRMFilters) > 0 {
		s.console.Info("CRM filters already generated. Displaying existing filters...")
		s.renderFilterTable(business.CustomerCRMFilters)
	} else {
		s.console.Info("Generating CRM filters...")
		var filters crmFilterResponse
		err = s.gen.StructuredComplete(ctx, s.cfg.Generation.Model, []assistant.Message{
			assistant.System(crmFilterGenerationPrompt),
			assistant.User(detail),
		}, &filters)
		if err != nil {
			return fmt.Errorf("generating CRM filters: %w", err)
		}
		business.CustomerCRMFilters = datatypes.NewJSONSlice(filters.CustomerResearchFilters)
		business.CompetitorCRMFilters = datatypes.NewJSONSlice(filters.CompetitorResearchFilters)
		if err := s.store.SaveBusiness(ctx, business); err != nil {
			return err
		}
		s.renderFilterTable(business.CustomerCRMFilters)
	}

	s.console.Info("Conducting customer research...")
	var research customerResearchResponse
	err = s.gen.StructuredComplete(ctx, s.cfg.Generation.Model, []assistant.Message{
		assistant.System(customerResearchGenerationPrompt),
		assistant.User(detail),
	}, &research)
	if err != nil {
		return fmt.Errorf("conducting customer research: %w", err)
	}
	business.CustomerResearchResults = datatypes.NewJSONSlice(research.CustomerResearchResults)
	if err := s.store.SaveBusiness(ctx, business); err != nil {
		return err
	}
	s.renderResearchTable(business.CustomerResearchResults)

	s.console.Success("Customer CRM filters and research completed successfully")
	return nil
}

// BusinessModelCanvas generates up to three ranked business models. Existing
// models are displayed instead of regenerated.
func (s *Service) BusinessModelCanvas(ctx context.Context, projectID uuid.UUID) error {
	business, err := s.store.BusinessForProject(ctx, projectID)
	if err != nil {
		return err
	}

	if len(business.BusinessModelCanvas) > 0 {
		s.console.Info("Business model canvas already generated. Displaying existing models...")
		for i, model := range business.BusinessModelCanvas {
			s.renderBusinessModelCard(model, i)
		}
		return nil
	}

	persona, err := s.store.PersonaForBusiness(ctx, business.ID)
	if err != nil {
		return err
	}
	if persona == nil {
		return errors.New("customer persona not generated yet")
	}
	project, err := s.store.FindProject(ctx, projectID)
	if err != nil {
		return err
	}

	s.console.Info("Generating comprehensive business model canvas...")
	var resp businessModelResponse
	err = s.gen.StructuredComplete(ctx, s.cfg.Generation.Model, []assistant.Message{
		assistant.System(businessModelGenerationPrompt),
		assistant.User(detailPromptContent(project, persona)),
	}, &resp)
	if err != nil {
		return fmt.Errorf("generating business models: %w", err)
	}

	business.BusinessModelCanvas = datatypes.NewJSONSlice(resp.BusinessModels)
	if err := s.store.SaveBusiness(ctx, business); err != nil {
		return err
	}

	for i, model := range business.BusinessModelCanvas {
		s.renderBusinessModelCard(model, i)
	}
	s.console.Println(fmt.Sprintf("Total Business Models Generated: %d", len(business.BusinessModelCanvas)))
	s.console.Success("Business model canvas has been generated successfully")
	return nil
}

// PricingStrategy generates the cost based pricing breakdown across the
// three business scales. Existing models are displayed instead of
// regenerated.
func (s *Service) PricingStrategy(ctx context.Context, projectID uuid.UUID) error {
	business, err := s.store.BusinessForProject(ctx, projectID)
	if err != nil {
		return err
	}

	if len(business.CostBasedPricingModels) > 0 {
		s.console.Info("Pricing strategy already generated. Displaying existing models...")
		for i, model := range business.CostBasedPricingModels {
			s.renderPricingCard(model, i)
		}
		return nil
	}

	persona, err := s.store.PersonaForBusiness(ctx, business.ID)
	if err != nil {
		return err
	}
	if persona == nil {
		return errors.New("customer persona not generated yet")
	}
	project, err := s.store.FindProject(ctx, projectID)
	if err != nil {
		return err
	}

	s.console.Info("Developing comprehensive pricing strategy...")
	var resp pricingResponse
	err = s.gen.StructuredComplete(ctx, s.cfg.Generation.Model, []assistant.Message{
		assistant.System(costBasedPricingModelGenerationPrompt),
		assistant.User(detailPromptContent(project, persona)),
	}, &resp)
	if err != nil {
		return fmt.Errorf("generating pricing models: %w", err)
	}

	business.CostBasedPricingModels = datatypes.NewJSONSlice(resp.CostBasedPricingModel)
	if err := s.store.SaveBusiness(ctx, business); err != nil {
		return err
	}

	for i, model := range business.CostBasedPricingModels {
		s.renderPricingCard(model, i)
	}
	s.console.Println(fmt.Sprintf("Total Pricing Models Generated: %d", len(business.CostBasedPricingModels)))
	s.console.Success("Pricing strategy has been developed successfully")
	return nil
}

// BusinessPromptContent summarizes the stored business development state as
// context for the conversational assistant.
func (s *Service) BusinessPromptContent(ctx context.Context, projectID uuid.UUID) (string, error) {
	business, err := s.store.BusinessForProject(ctx, projectID)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString("Business Development State:\n")

	if business.SelectedTargetMarketID != nil {
		market, err := s.store.FindTargetMarket(ctx, *business.SelectedTargetMarketID)
		if err != nil {
			return "", err
		}
		if market != nil {
			fmt.Fprintf(&sb, "- Selected Target Market: %s (%s)\n", market.Name, market.Description)
			if market.Analyzed() {
				fmt.Fprintf(&sb, "- Market Size: %s\n", marketSizeLabel(market))
				fmt.Fprintf(&sb, "- CAGR: %s\n", cagrLabel(market))
			}
			if market.SelectedMarketSegmentID != nil {
				segment, err := s.store.FindSegment(ctx, *market.SelectedMarketSegmentID)
				if err != nil {
					return "", err
				}
				if segment != nil {
					fmt.Fprintf(&sb, "- Selected Market Segment: %s (%s)\n", segment.Title, segment.Description)
				}
			}
		}
	}

	persona, err := s.store.PersonaForBusiness(ctx, business.ID)
	if err != nil {
		return "", err
	}
	if persona != nil {
		fmt.Fprintf(&sb, "- Customer Persona: %s, %s. %s\n", persona.Name, persona.Occupation, persona.Biography)
	}
	if len(business.BusinessModelCanvas) > 0 {
		sb.WriteString("- Business Models:\n")
		for _, model := range business.BusinessModelCanvas {
			fmt.Fprintf(&sb, "    %d. %s: %s\n", model.Index, model.Title, model.Overview)
		}
	}
	if len(business.CostBasedPricingModels) > 0 {
		sb.WriteString("- Cost Based Pricing:\n")
		for _, model := range business.CostBasedPricingModels {
			fmt.Fprintf(&sb, "    %s total cost %.0f USD\n", model.Scale, model.TotalCost())
		}
	}
	return sb.String(), nil
}

// marketPromptContent renders a market as generation context.
func marketPromptContent(m *store.TargetMarket) string {
	return fmt.Sprintf(`
    Target Market Name : %s
    Target Market Description : %s
    `, m.Name, m.Description)
}

// detailPromptContent renders the project and persona as generation context
// for the later business steps.
func detailPromptContent(p *store.Project, persona *store.BusinessPersona) string {
	freq := persona.PurchaseFrequency.Data()
	return fmt.Sprintf(`
    Project and Product details:
          Project Title : %s
          Project Methodology : %s
          Project Planetary Impact : %s
          Business Persona Name : %s
          Business Persona Occupation : %s
          Business Persona Gender : %s
          Business Persona Marital Status : %s
          Business Persona Key Traits : %s
          Business Persona Personality Type : %s
          Business Persona Purchase Drivers : %s
          Business Persona Preferred Brands : %s
          Business Persona Biography : %s
          Business Persona Pain Points : %s
          Business Persona Community Touchpoints : %s
          Business Persona Purchase Frequency : %s %s
    `, p.Title, p.Methodology, p.Impact,
		persona.Name, persona.Occupation, persona.Gender, persona.MaritalStatus,
		strings.Join(persona.KeyTraits, ", "), persona.PersonalityType,
		strings.Join(persona.PurchaseDrivers, ", "), strings.Join(persona.PreferredBrands, ", "),
		persona.Biography, strings.Join(persona.PainPoints, ", "),
		strings.Join(persona.CommunityTouchpoints, ", "),
		freq.Interval, freq.Period)
}

func selectedMarkets(markets []store.TargetMarket) []store.TargetMarket {
	var selected []store.TargetMarket
	for _, m := range markets {
		if m.Selected {
			selected = append(selected, m)
		}
	}
	return selected
}

func findSegment(segments []store.MarketSegment, id uuid.UUID) *store.MarketSegment {
	for i := range segments {
		if segments[i].ID == id {
			return &segments[i]
		}
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
