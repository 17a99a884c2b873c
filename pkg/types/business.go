// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the domain artifacts shared across the pipelines and
// the persistence layer. Generated artifacts are stored as JSON columns, so
// every type here carries JSON tags matching the generation schemas.
package types

import "math"

// MarketSize is the estimated current size of a target market.
type MarketSize struct {
	Value    float64 `json:"value" yaml:"value"`
	Currency string  `json:"currency" yaml:"currency"`
	Unit     string  `json:"unit" yaml:"unit"`
	Year     int     `json:"year" yaml:"year"`
}

// CAGRPeriod bounds the years a growth estimate covers.
type CAGRPeriod struct {
	StartYear int `json:"startYear" yaml:"start_year"`
	EndYear   int `json:"endYear" yaml:"end_year"`
}

// CAGR is the compound annual growth rate of a target market.
type CAGR struct {
	RatePercent float64    `json:"ratePercent" yaml:"rate_percent"`
	Period      CAGRPeriod `json:"period" yaml:"period"`
}

// Saturation classifies the competitive state of a market. Stage is one of
// Oversaturated, Saturated, Neutral, Emerging, or Stagnant; the two levels
// are Low, Moderate, or High.
type Saturation struct {
	Stage            string `json:"stage" yaml:"stage"`
	CompetitionLevel string `json:"competition" yaml:"competition"`
	OpportunityLevel string `json:"opportunityLevel" yaml:"opportunity_level"`
}

// QuestionAnswer is a single scored response from the segment evaluation
// questionnaire. Scores run 1 (worst) to 5 (best).
type QuestionAnswer struct {
	Question string `json:"question,omitempty" yaml:"question,omitempty"`
	Score    int    `json:"score" yaml:"score"`
}

// FitPercent computes the product-fit score of a questionnaire as a whole
// percentage: the sum of the scores over the maximum attainable total.
// An empty questionnaire scores zero.
func FitPercent(answers []QuestionAnswer) int {
	if len(answers) == 0 {
		return 0
	}
	sum := 0
	for _, qa := range answers {
		sum += qa.Score
	}
	return int(math.Round(float64(sum) / float64(len(answers)*5) * 100))
}

// FitScore returns the raw sum of the questionnaire scores and the maximum
// attainable total.
func FitScore(answers []QuestionAnswer) (sum, max int) {
	for _, qa := range answers {
		sum += qa.Score
	}
	return sum, len(answers) * 5
}

// PurchaseFrequency describes how often the archetypal customer buys.
type PurchaseFrequency struct {
	Interval string `json:"interval" yaml:"interval"`
	Period   string `json:"period" yaml:"period"`
	Reason   string `json:"reason" yaml:"reason"`
}

// CRMFilter is a search filter usable on CRM platforms such as Crunchbase.
// Type is one of location, industry, investmentStage, or other.
type CRMFilter struct {
	Name string `json:"name" yaml:"name"`
	Type string `json:"type" yaml:"type"`
}

// CRMResearchResult is one company surfaced by customer or competitor research.
type CRMResearchResult struct {
	CompanyName      string `json:"companyName" yaml:"company_name"`
	CompanySize      string `json:"companySize,omitempty" yaml:"company_size,omitempty"`
	ContactDetails   string `json:"contactDetails,omitempty" yaml:"contact_details,omitempty"`
	InvestmentSeries string `json:"investmentSeries,omitempty" yaml:"investment_series,omitempty"`
	Location         string `json:"location,omitempty" yaml:"location,omitempty"`
}

// CustomerDescription rates the customer base of a business model. Each
// dimension is high, medium, or low.
type CustomerDescription struct {
	Volume string `json:"volume" yaml:"volume"`
	Value  string `json:"value" yaml:"value"`
	Churn  string `json:"churn" yaml:"churn"`
}

// BusinessModel is one generated entry of the business model canvas.
type BusinessModel struct {
	Index                       int                 `json:"index" yaml:"index"`
	Title                       string              `json:"businessModelTitle" yaml:"title"`
	Overview                    string              `json:"overview" yaml:"overview"`
	ImplementationDetails       string              `json:"implementationDetails" yaml:"implementation_details"`
	CompetitionAndDefensibility string              `json:"competitionAndDefensibility" yaml:"competition_and_defensibility"`
	RiskAnalysis                string              `json:"riskAnalysis" yaml:"risk_analysis"`
	CustomerDescription         CustomerDescription `json:"customerDescription" yaml:"customer_description"`
	Feedback                    string              `json:"feedback,omitempty" yaml:"feedback,omitempty"`
	Selected                    bool                `json:"selected,omitempty" yaml:"selected,omitempty"`
}

// CostItem is a single direct or indirect cost line within a pricing scale.
type CostItem struct {
	Type            string  `json:"type" yaml:"type"`
	ItemName        string  `json:"itemName" yaml:"item_name"`
	ItemDescription string  `json:"itemDescription" yaml:"item_description"`
	CostUSD         float64 `json:"costUSD" yaml:"cost_usd"`
}

// CostBasedPricingModel breaks down costs at one scale of operation:
// proofOfConcept, marketEntry, or marketEstablished.
type CostBasedPricingModel struct {
	Scale        string     `json:"scale" yaml:"scale"`
	CostItems    []CostItem `json:"costItems" yaml:"cost_items"`
	TotalCostUSD float64    `json:"totalCostUSD" yaml:"total_cost_usd"`
}

// TotalCost sums the cost items of the model. The generated TotalCostUSD is
// advisory; display code recomputes from the items.
func (m CostBasedPricingModel) TotalCost() float64 {
	var sum float64
	for _, item := range m.CostItems {
		sum += item.CostUSD
	}
	return sum
}

// CompetitivePricingModel captures one competitor's product and price point.
type CompetitivePricingModel struct {
	ProductCompanyName string   `json:"productCompanyName" yaml:"product_company_name"`
	ProductFeatures    []string `json:"productFeatures" yaml:"product_features"`
	ProductLimitations []string `json:"productLimitations" yaml:"product_limitations"`
	BrandWeighting     float64  `json:"brandWeighting" yaml:"brand_weighting"`
	AdditionalBenefits string   `json:"additionalBenefits" yaml:"additional_benefits"`
	ProductPrice       string   `json:"productPrice" yaml:"product_price"`
}

// ValueBasedPricingModel captures a value-anchored price suggestion.
type ValueBasedPricingModel struct {
	SuggestedPriceUSD           float64  `json:"suggestedPriceUSD" yaml:"suggested_price_usd"`
	Justification               string   `json:"justification" yaml:"justification"`
	EstimatedCustomerSavingsUSD float64  `json:"estimatedCustomerSavingsUSD" yaml:"estimated_customer_savings_usd"`
	IntangibleValueFactors      []string `json:"intangibleValueFactors" yaml:"intangible_value_factors"`
}

// DifferentiationStrategy is one generated positioning option.
type DifferentiationStrategy struct {
	Index                  int      `json:"index" yaml:"index"`
	Tagline                string   `json:"tagline" yaml:"tagline"`
	Keywords               []string `json:"keywords" yaml:"keywords"`
	CompetitionOverview    string   `json:"competitionOverview" yaml:"competition_overview"`
	FeatureAndRequirements string   `json:"featureAndRequirements" yaml:"feature_and_requirements"`
	Selected               bool     `json:"selected,omitempty" yaml:"selected,omitempty"`
}

// SalesAcquisitionStrategy describes one outreach playbook.
type SalesAcquisitionStrategy struct {
	OutreachChannel    string   `json:"outreachChannel" yaml:"outreach_channel"`
	OutreachMethod     []string `json:"outreachMethod" yaml:"outreach_method"`
	OutreachTiming     string   `json:"outreachTiming" yaml:"outreach_timing"`
	MessagePositioning []string `json:"messagePositioning" yaml:"message_positioning"`
	ContentChecklist   []string `json:"contentChecklist" yaml:"content_checklist"`
	HypothesesToTest   []string `json:"hypothesesToTest" yaml:"hypotheses_to_test"`
}

// KeyAssumption is a business hypothesis awaiting validation.
type KeyAssumption struct {
	Index              int      `json:"index" yaml:"index"`
	Title              string   `json:"title" yaml:"title"`
	ValidationCriteria string   `json:"validationCriteria" yaml:"validation_criteria"`
	ValidationStrategy []string `json:"validationStrategy" yaml:"validation_strategy"`
	Duration           int      `json:"duration" yaml:"duration"`
}
