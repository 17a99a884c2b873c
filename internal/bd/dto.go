// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package bd

import "github.com/pdiddy/venture-advisor/pkg/types"

// Response shapes for structured generation. Field tags double as the
// generation schema.

type identifiedMarket struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

type targetMarketIdentificationResponse struct {
	TargetMarkets []identifiedMarket `json:"targetMarkets"`
}

type targetMarketAnalysisResponse struct {
	MarketName    string           `json:"marketName"`
	MarketSize    types.MarketSize `json:"marketSize"`
	CAGR          types.CAGR       `json:"cagr"`
	KeyHighlights []string         `json:"keyHighlights"`
	Saturation    types.Saturation `json:"saturation"`
	Opportunities []string         `json:"opportunities"`
	Challenges    []string         `json:"challenges"`
	Sources       []string         `json:"sources"`
}

type identifiedSegment struct {
	Title           string                 `json:"title"`
	Description     string                 `json:"description"`
	SegmentSize     float64                `json:"segmentSize"`
	QuestionAnswers []types.QuestionAnswer `json:"questionAnswers"`
}

type marketSegmentIdentificationResponse struct {
	MarketSegments []identifiedSegment `json:"marketSegments"`
}

type personaResponse struct {
	Name                 string                  `json:"name"`
	Occupation           string                  `json:"occupation"`
	Gender               string                  `json:"gender"`
	MaritalStatus        string                  `json:"maritalStatus"`
	KeyTraits            []string                `json:"keyTraits"`
	PersonalityType      string                  `json:"personalityType"`
	PurchaseDrivers      []string                `json:"purchaseDrivers"`
	PreferredBrands      []string                `json:"preferredBrands"`
	Biography            string                  `json:"biography"`
	PainPoints           []string                `json:"painPoints"`
	CommunityTouchpoints []string                `json:"communityTouchpoints"`
	PurchaseFrequency    types.PurchaseFrequency `json:"purchaseFrequency"`
}

type crmFilterResponse struct {
	CustomerResearchFilters   []types.CRMFilter `json:"customerResearchFilters"`
	CompetitorResearchFilters []types.CRMFilter `json:"competitorResearchFilters"`
}

type customerResearchResponse struct {
	CustomerResearchResults []types.CRMResearchResult `json:"customerResearchResults"`
}

type businessModelResponse struct {
	BusinessModels []types.BusinessModel `json:"businessModels"`
}

type pricingResponse struct {
	CostBasedPricingModel []types.CostBasedPricingModel `json:"costBasedPricingModel"`
}
