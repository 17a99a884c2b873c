// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package bd

import (
	"fmt"
	"strings"

	"github.com/pdiddy/venture-advisor/internal/store"
	"github.com/pdiddy/venture-advisor/pkg/types"
)

func (s *Service) renderMarketCard(m *store.TargetMarket, index int) {
	s.console.Card(
		fmt.Sprintf("Market %d: %s", index+1, m.Name),
		"Description", m.Description,
	)
}

func marketSizeLabel(m *store.TargetMarket) string {
	if m.MarketSize == nil {
		return "n/a"
	}
	size := m.MarketSize.Data()
	return fmt.Sprintf("%.1f %s %s (%d)", size.Value, size.Currency, size.Unit, size.Year)
}

func cagrLabel(m *store.TargetMarket) string {
	if m.CAGR == nil {
		return "n/a"
	}
	cagr := m.CAGR.Data()
	return fmt.Sprintf("%.1f%% (%d-%d)", cagr.RatePercent, cagr.Period.StartYear, cagr.Period.EndYear)
}

func (s *Service) renderAnalysisCard(m *store.TargetMarket) {
	fields := []string{
		"Description", m.Description,
		"Market Size", marketSizeLabel(m),
		"CAGR", cagrLabel(m),
	}
	if m.Saturation != nil {
		sat := m.Saturation.Data()
		fields = append(fields,
			"Stage", sat.Stage,
			"Competition", sat.CompetitionLevel,
			"Opportunity", sat.OpportunityLevel,
		)
	}
	if len(m.KeyHighlights) > 0 {
		fields = append(fields, "Key Highlights", bulletList(m.KeyHighlights, 2))
	}
	if len(m.Opportunities) > 0 {
		fields = append(fields, "Top Opportunities", bulletList(m.Opportunities, 2))
	}
	if len(m.Challenges) > 0 {
		fields = append(fields, "Key Challenges", bulletList(m.Challenges, 2))
	}
	s.console.Card(m.Name+" [ANALYZED]", fields...)
}

func (s *Service) renderComparisonTable(markets []store.TargetMarket) {
	rows := make([][]string, len(markets))
	for i := range markets {
		m := &markets[i]
		stage, competition, opportunity := "n/a", "n/a", "n/a"
		if m.Saturation != nil {
			sat := m.Saturation.Data()
			stage, competition, opportunity = sat.Stage, sat.CompetitionLevel, sat.OpportunityLevel
		}
		rows[i] = []string{m.Name, marketSizeLabel(m), cagrLabel(m), stage, competition, opportunity}
	}
	s.console.Table(
		[]string{"Market Name", "Market Size", "CAGR", "Stage", "Competition", "Opportunity"},
		rows,
	)
}

func (s *Service) renderSegmentCard(seg *store.MarketSegment, index int, selected bool) {
	sum, max := types.FitScore(seg.QuestionAnswers)
	title := fmt.Sprintf("Segment %d: %s", index+1, seg.Title)
	if selected {
		title += " [SELECTED]"
	}
	s.console.Card(title,
		"Description", seg.Description,
		"Size", fmt.Sprintf("%.0f", seg.SegmentSize),
		"Fit Score", fmt.Sprintf("%d/%d (%d%%)", sum, max, seg.FitPercent()),
	)
}

func (s *Service) renderPersonaCard(p *store.BusinessPersona) {
	freq := p.PurchaseFrequency.Data()
	s.console.Card(p.Name,
		"Occupation", p.Occupation,
		"Gender", p.Gender,
		"Marital Status", p.MaritalStatus,
		"Key Traits", strings.Join(p.KeyTraits, ", "),
		"Personality", p.PersonalityType,
		"Purchase Drivers", strings.Join(p.PurchaseDrivers, ", "),
		"Preferred Brands", strings.Join(p.PreferredBrands, ", "),
		"Biography", p.Biography,
		"Pain Points", strings.Join(p.PainPoints, ", "),
		"Touchpoints", strings.Join(p.CommunityTouchpoints, ", "),
		"Purchase Frequency", fmt.Sprintf("%s %s (%s)", freq.Interval, freq.Period, freq.Reason),
	)
}

func (s *Service) renderFilterTable(filters []types.CRMFilter) {
	rows := make([][]string, len(filters))
	for i, f := range filters {
		rows[i] = []string{f.Name, f.Type}
	}
	s.console.SubHeader("CRM Filters")
	s.console.Table([]string{"Filter Name", "Filter Type"}, rows)
}

func (s *Service) renderResearchTable(results []types.CRMResearchResult) {
	rows := make([][]string, len(results))
	for i, r := range results {
		rows[i] = []string{
			r.CompanyName,
			r.CompanySize,
			orNA(r.ContactDetails),
			orNA(r.InvestmentSeries),
			orNA(r.Location),
		}
	}
	s.console.SubHeader("Customer Research Results")
	s.console.Table(
		[]string{"Company Name", "Company Size", "Contact Details", "Investment Series", "Location"},
		rows,
	)
}

func (s *Service) renderBusinessModelCard(model types.BusinessModel, index int) {
	s.console.Card(fmt.Sprintf("Model %d: %s", index+1, model.Title),
		"Overview", model.Overview,
		"Implementation", model.ImplementationDetails,
		"Defensibility", model.CompetitionAndDefensibility,
		"Risks", model.RiskAnalysis,
		"Customer Base", fmt.Sprintf("volume %s, value %s, churn %s",
			model.CustomerDescription.Volume, model.CustomerDescription.Value, model.CustomerDescription.Churn),
	)
}

func (s *Service) renderPricingCard(model types.CostBasedPricingModel, index int) {
	fields := []string{"Scale", model.Scale}
	for _, item := range model.CostItems {
		fields = append(fields,
			fmt.Sprintf("%s (%s)", item.ItemName, item.Type),
			fmt.Sprintf("%.0f USD - %s", item.CostUSD, item.ItemDescription),
		)
	}
	fields = append(fields, "Total Cost", fmt.Sprintf("%.0f USD", model.TotalCost()))
	s.console.Card(fmt.Sprintf("Pricing Model %d", index+1), fields...)
}

func bulletList(items []string, limit int) string {
	if len(items) > limit {
		items = items[:limit]
	}
	return strings.Join(items, " | ")
}

func orNA(s string) string {
	if s == "" {
		return "N/A"
	}
	return s
}
