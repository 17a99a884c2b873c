// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package store

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"github.com/pdiddy/venture-advisor/pkg/types"
)

// Project is a venture the operator develops. Both development pipelines and
// the conversational assistant hang off a project.
type Project struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Title       string    `gorm:"size:255;not null" json:"title"`
	Summary     string    `gorm:"size:2000" json:"summary"`
	Methodology string    `json:"methodology"`
	Impact      string    `json:"impact"`
	TRL         *int      `json:"trl,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Project) TableName() string { return "projects" }

// PromptContent renders the project fields as context for a generation
// request.
func (p *Project) PromptContent() string {
	return fmt.Sprintf(`
    Project Details:
    - **Title**: %s
    - **Summary**: %s
    - **Methodology**: %s
    - **Environmental Impact**: %s
    `, p.Title, p.Summary, p.Methodology, p.Impact)
}

// Business holds the business development state for a project. It shares the
// project's ID and is created lazily on first use.
type Business struct {
	ID                     uuid.UUID  `gorm:"type:uuid;primaryKey" json:"id"`
	SelectedTargetMarketID *uuid.UUID `gorm:"type:uuid" json:"selectedTargetMarketId,omitempty"`

	CustomerCRMFilters        datatypes.JSONSlice[types.CRMFilter]         `json:"customerCrmFilters"`
	CompetitorCRMFilters      datatypes.JSONSlice[types.CRMFilter]         `json:"competitorCrmFilters"`
	CustomerResearchResults   datatypes.JSONSlice[types.CRMResearchResult] `json:"customerResearchResults"`
	CompetitorResearchResults datatypes.JSONSlice[types.CRMResearchResult] `json:"competitorResearchResults"`

	DifferentiationStrategies  datatypes.JSONSlice[types.DifferentiationStrategy]  `json:"differentiationStrategies"`
	SalesAcquisitionStrategies datatypes.JSONSlice[types.SalesAcquisitionStrategy] `json:"salesAcquisitionStrategies"`
	BusinessModelCanvas        datatypes.JSONSlice[types.BusinessModel]            `json:"businessModelCanvas"`
	CompetitivePricingModels   datatypes.JSONSlice[types.CompetitivePricingModel]  `json:"competitivePricingModels"`
	CostBasedPricingModels     datatypes.JSONSlice[types.CostBasedPricingModel]    `json:"costBasedPricingModels"`
	ValueBasedPricingModels    datatypes.JSONSlice[types.ValueBasedPricingModel]   `json:"valueBasedPricingModels"`
	KeyAssumptions             datatypes.JSONSlice[types.KeyAssumption]            `json:"keyAssumptions"`

	TargetMarkets []TargetMarket `gorm:"foreignKey:BusinessID" json:"targetMarkets,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Business) TableName() string { return "businesses" }

// TargetMarket is one market identified for a business. Analysis fields stay
// nil until the market has been researched.
type TargetMarket struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	BusinessID  uuid.UUID `gorm:"type:uuid;not null;index" json:"businessId"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Description string    `json:"description"`

	MarketSize *datatypes.JSONType[types.MarketSize] `json:"marketSize,omitempty"`
	CAGR       *datatypes.JSONType[types.CAGR]       `json:"cagr,omitempty"`
	Saturation *datatypes.JSONType[types.Saturation] `json:"saturation,omitempty"`

	KeyHighlights datatypes.JSONSlice[string] `json:"keyHighlights"`
	Opportunities datatypes.JSONSlice[string] `json:"opportunities"`
	Challenges    datatypes.JSONSlice[string] `json:"challenges"`
	Sources       datatypes.JSONSlice[string] `json:"sources"`

	Selected                bool       `gorm:"not null;default:false" json:"selected"`
	SelectedMarketSegmentID *uuid.UUID `gorm:"type:uuid" json:"selectedMarketSegmentId,omitempty"`

	Segments []MarketSegment `gorm:"foreignKey:TargetMarketID" json:"segments,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (TargetMarket) TableName() string { return "target_markets" }

// Analyzed reports whether the market research step already ran for this
// market. Both the size and growth figures must be present.
func (m *TargetMarket) Analyzed() bool {
	return m.CAGR != nil && m.MarketSize != nil
}

// MarketSegment is a customer segment within a target market, scored with
// fit question answers.
type MarketSegment struct {
	ID              uuid.UUID                                 `gorm:"type:uuid;primaryKey" json:"id"`
	TargetMarketID  uuid.UUID                                 `gorm:"type:uuid;not null;index" json:"targetMarketId"`
	Title           string                                    `gorm:"size:255;not null" json:"title"`
	Description     string                                    `json:"description"`
	SegmentSize     float64                                   `json:"segmentSize"`
	QuestionAnswers datatypes.JSONSlice[types.QuestionAnswer] `json:"questionAnswers"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (MarketSegment) TableName() string { return "market_segments" }

// FitPercent returns the segment's fit score as a percentage.
func (s *MarketSegment) FitPercent() int {
	return types.FitPercent(s.QuestionAnswers)
}

// BusinessPersona is the generated customer persona for a business. It
// shares the business's ID.
type BusinessPersona struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name            string    `gorm:"size:255" json:"name"`
	Occupation      string    `json:"occupation"`
	Gender          string    `json:"gender"`
	MaritalStatus   string    `json:"maritalStatus"`
	PersonalityType string    `json:"personalityType"`
	Biography       string    `json:"biography"`

	KeyTraits            datatypes.JSONSlice[string] `json:"keyTraits"`
	PurchaseDrivers      datatypes.JSONSlice[string] `json:"purchaseDrivers"`
	PreferredBrands      datatypes.JSONSlice[string] `json:"preferredBrands"`
	PainPoints           datatypes.JSONSlice[string] `json:"painPoints"`
	CommunityTouchpoints datatypes.JSONSlice[string] `json:"communityTouchpoints"`

	PurchaseFrequency datatypes.JSONType[types.PurchaseFrequency] `json:"purchaseFrequency"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (BusinessPersona) TableName() string { return "business_personas" }

// Copilot holds the technology development state for a project. It shares
// the project's ID.
type Copilot struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`

	PrimaryGoalAnswers datatypes.JSONType[map[string]string] `json:"primaryGoalAnswers"`
	StatusAnswers      datatypes.JSONType[map[string]string] `json:"statusAnswers"`
	CriticalSubGoals   datatypes.JSONType[map[string]string] `json:"criticalSubGoals"`
	MustHaveFeatures   datatypes.JSONType[map[string]string] `json:"mustHaveFeatures"`
	NiceToHaveFeatures datatypes.JSONType[map[string]string] `json:"niceToHaveFeatures"`
	Constraints        datatypes.JSONType[map[string]string] `json:"constraints"`

	PrimaryGoalSummary string `json:"primaryGoalSummary"`
	StatusSummary      string `json:"statusSummary"`

	Analysis datatypes.JSONType[types.Analysis] `json:"analysis"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (Copilot) TableName() string { return "copilots" }
