// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// AnalysisType selects the flavor of a technology analysis.
type AnalysisType string

const (
	AnalysisDesign   AnalysisType = "design"
	AnalysisValidate AnalysisType = "validate"
	AnalysisOptimize AnalysisType = "optimize"
	AnalysisCompare  AnalysisType = "compare"
)

// PipelineState tracks the coarse state of a technology analysis run.
type PipelineState string

const (
	PipelineIdle      PipelineState = "idle"
	PipelineRunning   PipelineState = "running"
	PipelineDone      PipelineState = "done"
	PipelineCancelled PipelineState = "cancelled"
	PipelineFailed    PipelineState = "failed"
	PipelinePaused    PipelineState = "paused"
	PipelineWaiting   PipelineState = "waiting"
)

// QueryState tracks a single research query through the pipeline.
type QueryState string

const (
	QueryWaiting    QueryState = "waiting"
	QueryGenerating QueryState = "generating"
	QueryDone       QueryState = "done"
	QueryFailed     QueryState = "failed"
)

// AnalysisStep is one literature-research focus area. Steps are ordered by
// Index; queries reference them via GroupIndex.
type AnalysisStep struct {
	Index       int    `json:"index" yaml:"index"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
}

// AnalysisQuery is one standalone research question. Queries run in Index
// order; a query may declare variables it produces with [NAME] placeholders
// and consume earlier answers with {NAME} placeholders.
type AnalysisQuery struct {
	Index      int        `json:"index" yaml:"index"`
	GroupIndex int        `json:"groupIndex" yaml:"group_index"`
	Query      string     `json:"query" yaml:"query"`
	State      QueryState `json:"state" yaml:"state"`
	Content    string     `json:"content,omitempty" yaml:"content,omitempty"`
	Citations  []string   `json:"citations,omitempty" yaml:"citations,omitempty"`
	ReportURL  string     `json:"reportURL,omitempty" yaml:"report_url,omitempty"`
}

// WorkPackage is an actionable follow-up produced from the analysis.
type WorkPackage struct {
	PriorityIndex int      `json:"priorityIndex" yaml:"priority_index"`
	Title         string   `json:"title" yaml:"title"`
	Description   string   `json:"description" yaml:"description"`
	Duration      int      `json:"duration" yaml:"duration"`
	Tasks         []string `json:"tasks" yaml:"tasks"`
	Created       bool     `json:"created" yaml:"created"`
}

// Analysis is the embedded research record of a technology project. It holds
// the generated focus areas, the ordered query list, extracted variable
// outcomes keyed by variable name, and the final report location.
type Analysis struct {
	Type           AnalysisType        `json:"analysisType" yaml:"analysis_type"`
	State          PipelineState       `json:"pipelineState" yaml:"pipeline_state"`
	Steps          []AnalysisStep      `json:"steps" yaml:"steps"`
	Queries        []AnalysisQuery     `json:"queries" yaml:"queries"`
	Outcomes       map[string][]string `json:"outcomes" yaml:"outcomes"`
	FinalReportURL string              `json:"finalReportURL" yaml:"final_report_url"`
	WorkPackages   []WorkPackage       `json:"actionableWorkPackages" yaml:"work_packages"`
}

// NewAnalysis returns an idle design analysis with empty collections, the
// shape a fresh technology project starts from.
func NewAnalysis() Analysis {
	return Analysis{
		Type:     AnalysisDesign,
		State:    PipelineIdle,
		Outcomes: map[string][]string{},
	}
}

// WaitingQueries returns the queries still pending execution, preserving order.
func (a *Analysis) WaitingQueries() []*AnalysisQuery {
	var waiting []*AnalysisQuery
	for i := range a.Queries {
		if a.Queries[i].State == QueryWaiting {
			waiting = append(waiting, &a.Queries[i])
		}
	}
	return waiting
}

// StepByIndex returns the step with the given index, or nil.
func (a *Analysis) StepByIndex(idx int) *AnalysisStep {
	for i := range a.Steps {
		if a.Steps[i].Index == idx {
			return &a.Steps[i]
		}
	}
	return nil
}
