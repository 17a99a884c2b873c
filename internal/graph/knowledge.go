// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package graph

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pdiddy/venture-advisor/internal/assistant"
	"github.com/pdiddy/venture-advisor/internal/logging"
	"github.com/pdiddy/venture-advisor/pkg/types"
)

// Node type discriminators stored on every graph node.
const (
	nodeEventLog              = "EventLog"
	nodeTechnologyDevelopment = "TechnologyDevelopment"
	nodeBusinessDevelopment   = "BusinessDevelopment"
	nodeEmbedding             = "Embedding"
	nodeRawData               = "RawData"
	nodeVariable              = "Variable"
	nodeInsight               = "Insight"
)

// ContradictionPending marks a contradiction awaiting operator review.
const ContradictionPending = "PENDING"

// activityNotification is the event name emitted after a log is recorded.
const activityNotification = "new-activity-added"

// Edge labels are interpolated into Cypher, so they are restricted to plain
// identifiers.
var edgeLabelRe = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

const collaboratorPrompt = `You are a project knowledge collaborator. You receive one project event together with the knowledge variables already tracked for the project. Compare the event data against the tracked variables and report:
- newNodes: variables revealed by the event that are not tracked yet, each with a name, a one-sentence high level description, its values, and whether it belongs to the technology development (TechnologyDevelopment) or business development (BusinessDevelopment) side of the project.
- insights: observations the event adds about an already tracked variable, naming the variable, the insight, the side it belongs to, and the id of the tracked variable node it targets.
- contradictions: places where the event data conflicts with a tracked variable's values, naming the variable, the conflicting value, the value the event suggests, the side, the reason, and the id of the tracked variable node.
Give the response a short title and description summarizing the event, and set type to the dominant result kind: add_new_variable, insight, or contradiction. Report only what the event data supports.`

// Event is one pipeline activity to record. Payload carries the stringified
// event data; without it only a bare log entry is written.
type Event struct {
	ID          uuid.UUID
	Title       string
	Description string
	Payload     string
}

// VariableRecord is a new variable captured by an event log.
type VariableRecord struct {
	VariableName   string   `json:"variableName"`
	VariableValues []string `json:"variableValues"`
	Description    string   `json:"description"`
}

// InsightRecord is an insight captured by an event log.
type InsightRecord struct {
	VariableName       string `json:"variableName"`
	Insight            string `json:"insight"`
	TargetVariableType string `json:"targetVariableType"`
}

// ContradictionRecord is a conflict between an event and a tracked variable.
// Contradictions stay pending until the operator resolves them.
type ContradictionRecord struct {
	ContradictoryVariableName string `json:"contradictoryVariableName"`
	ContradictoryValue        string `json:"contradictoryValue"`
	SuggestedValue            string `json:"suggestedValue"`
	TargetVariableType        string `json:"targetVariableType"`
	Reason                    string `json:"reason"`
	Status                    string `json:"status"`
}

// EventLog is one recorded project activity.
type EventLog struct {
	ID             string                `json:"id"`
	Title          string                `json:"title"`
	Description    string                `json:"description"`
	NewVariables   []VariableRecord      `json:"newVariables"`
	Insights       []InsightRecord       `json:"insights"`
	Contradictions []ContradictionRecord `json:"contradictions"`
	CreatedAt      time.Time             `json:"createdAt"`
}

// Variable is a knowledge variable attached to one development branch.
type Variable struct {
	Name        string
	Description string
	Values      []string
	Target      string
}

// RelevantVariable is a tracked variable whose embedding is similar to an
// incoming event.
type RelevantVariable struct {
	ID          string
	Name        string
	Description string
	Values      []string
	Insights    []string
}

// Notifier receives project activity notifications.
type Notifier interface {
	Notify(projectID uuid.UUID, event string, payload any)
}

type logNotifier struct {
	log *logging.Logger
}

func (n logNotifier) Notify(projectID uuid.UUID, event string, payload any) {
	n.log.Info("graph notification", "projectId", projectID, "event", event)
}

// NewLogNotifier returns a Notifier that records notifications in the log.
func NewLogNotifier(log *logging.Logger) Notifier {
	return logNotifier{log: log}
}

type classifiedVariable struct {
	VariableName string   `json:"variableName"`
	Description  string   `json:"variableHighLevelDescription"`
	Values       []string `json:"values"`
	Target       string   `json:"targetVariableType"`
}

type classifiedInsight struct {
	VariableName string `json:"variableName"`
	Insight      string `json:"insight"`
	Target       string `json:"targetVariableType"`
	TargetNodeID string `json:"targetNodeId"`
}

type classifiedContradiction struct {
	ContradictoryVariableName string `json:"contradictoryVariableName"`
	ContradictoryValue        string `json:"contradictoryValue"`
	SuggestedValue            string `json:"suggestedValue"`
	Target                    string `json:"targetVariableType"`
	Reason                    string `json:"reason"`
	TargetNodeID              string `json:"targetNodeId"`
}

type classificationResponse struct {
	Title          string                    `json:"title"`
	Description    string                    `json:"description"`
	Type           string                    `json:"type"`
	Contradictions []classifiedContradiction `json:"contradictions"`
	Insights       []classifiedInsight       `json:"insights"`
	NewNodes       []classifiedVariable      `json:"newNodes"`
}

// Knowledge maintains the project knowledge graph over an Executor.
type Knowledge struct {
	exec      Executor
	gen       assistant.Generator
	notifier  Notifier
	threshold float64
	model     string
	log       *logging.Logger
}

// NewKnowledge wires the knowledge service. A nil notifier falls back to
// logging notifications.
func NewKnowledge(exec Executor, gen assistant.Generator, notifier Notifier, cfg types.Config, log *logging.Logger) *Knowledge {
	if notifier == nil {
		notifier = NewLogNotifier(log)
	}
	return &Knowledge{
		exec:      exec,
		gen:       gen,
		notifier:  notifier,
		threshold: cfg.Graph.SimilarityThreshold,
		model:     cfg.Generation.Model,
		log:       log,
	}
}

// AddProject creates the project node with its Event, TechnologyDevelopment
// and BusinessDevelopment branches.
func (k *Knowledge) AddProject(ctx context.Context, projectID uuid.UUID, name string) error {
	query := `
CREATE (p:Project {id: $projectId, name: $projectName, nodeType: 'Project'})
MERGE (p)-[:Event]->(e:Event {projectId: $projectId, nodeType: 'Event'})
MERGE (p)-[:TechnologyDevelopment]->(td:TechnologyDevelopment {projectId: $projectId, nodeType: 'TechnologyDevelopment'})
MERGE (p)-[:BusinessDevelopment]->(bd:BusinessDevelopment {projectId: $projectId, nodeType: 'BusinessDevelopment'})`
	_, err := k.exec.ExecuteQuery(ctx, query, map[string]any{
		"projectId":   projectID.String(),
		"projectName": name,
	})
	return err
}

// AddEvent records one pipeline activity. Without a payload only a bare log
// entry is written. With a payload the event data is embedded, compared
// against the tracked variables, classified, and its new variables and
// insights are materialized before the log is finalized.
func (k *Knowledge) AddEvent(ctx context.Context, projectID uuid.UUID, event Event, edgeLabel string) error {
	if !edgeLabelRe.MatchString(edgeLabel) {
		return fmt.Errorf("invalid edge label %q", edgeLabel)
	}
	createdAt := time.Now().UTC()

	createQuery := fmt.Sprintf(`
MATCH (p:Project {id: $projectId})-[:Event]->(eventGroup:Event)
CREATE (e:Event {id: $id, title: $title, description: $description, nodeType: '%s', createdAt: $createdAt})
MERGE (eventGroup)-[:%s]->(e)`, nodeEventLog, edgeLabel)
	_, err := k.exec.ExecuteQuery(ctx, createQuery, map[string]any{
		"projectId":   projectID.String(),
		"id":          event.ID.String(),
		"title":       event.Title,
		"description": event.Description,
		"createdAt":   createdAt.Format(time.RFC3339),
	})
	if err != nil {
		return err
	}

	logRecord := EventLog{
		ID:          event.ID.String(),
		Title:       event.Title,
		Description: event.Description,
		CreatedAt:   createdAt,
	}

	if event.Payload == "" {
		k.log.Debug("event recorded without payload", "eventId", event.ID)
		k.notifier.Notify(projectID, activityNotification, logRecord)
		return nil
	}

	eventContent := fmt.Sprintf("Event Title: %s\nEvent Description: %s\nEvent Data: %s",
		event.Title, event.Description, event.Payload)
	embedding, err := k.gen.Embed(ctx, eventContent)
	if err != nil {
		return fmt.Errorf("embedding event: %w", err)
	}

	embeddingQuery := fmt.Sprintf(`
MATCH (eventLog:Event {id: $eventId, nodeType: '%s'})
CREATE (e:Embedding {id: $id, title: 'Embedding', embedding: $embedding, nodeType: '%s'})
MERGE (eventLog)-[:EMBEDDING]->(e)`, nodeEventLog, nodeEmbedding)
	_, err = k.exec.ExecuteQuery(ctx, embeddingQuery, map[string]any{
		"eventId":   event.ID.String(),
		"id":        event.ID.String() + "-embedding",
		"embedding": embedding,
	})
	if err != nil {
		return err
	}

	rawDataQuery := fmt.Sprintf(`
MATCH (eventLog:Event {id: $eventId, nodeType: '%s'})
CREATE (r:RawData {id: $id, title: 'RawData', data: $data, nodeType: '%s'})
MERGE (eventLog)-[:RAW_DATA]->(r)`, nodeEventLog, nodeRawData)
	_, err = k.exec.ExecuteQuery(ctx, rawDataQuery, map[string]any{
		"eventId": event.ID.String(),
		"id":      event.ID.String() + "-raw-data",
		"data":    event.Payload,
	})
	if err != nil {
		return err
	}

	relevant, err := k.RelevantVariables(ctx, projectID, embedding)
	if err != nil {
		return err
	}

	response, err := k.classify(ctx, eventContent, relevant)
	if err != nil {
		return fmt.Errorf("classifying event: %w", err)
	}

	for _, node := range response.NewNodes {
		variable := Variable{
			Name:        node.VariableName,
			Description: node.Description,
			Values:      node.Values,
			Target:      node.Target,
		}
		if err := k.AddVariable(ctx, projectID, event.ID, variable); err != nil {
			return err
		}
		logRecord.NewVariables = append(logRecord.NewVariables, VariableRecord{
			VariableName:   node.VariableName,
			VariableValues: node.Values,
			Description:    node.Description,
		})
	}
	for _, insight := range response.Insights {
		if err := k.AddInsight(ctx, insight.TargetNodeID, insight.Insight); err != nil {
			return err
		}
		logRecord.Insights = append(logRecord.Insights, InsightRecord{
			VariableName:       insight.VariableName,
			Insight:            insight.Insight,
			TargetVariableType: insight.Target,
		})
	}
	for _, c := range response.Contradictions {
		logRecord.Contradictions = append(logRecord.Contradictions, ContradictionRecord{
			ContradictoryVariableName: c.ContradictoryVariableName,
			ContradictoryValue:        c.ContradictoryValue,
			SuggestedValue:            c.SuggestedValue,
			TargetVariableType:        c.Target,
			Reason:                    c.Reason,
			Status:                    ContradictionPending,
		})
	}

	newVariables, err := json.Marshal(logRecord.NewVariables)
	if err != nil {
		return err
	}
	insights, err := json.Marshal(logRecord.Insights)
	if err != nil {
		return err
	}
	contradictions, err := json.Marshal(logRecord.Contradictions)
	if err != nil {
		return err
	}
	finalizeQuery := fmt.Sprintf(`
MATCH (e:Event {id: $eventId, nodeType: '%s'})
SET e.newVariables = $newVariables, e.insights = $insights, e.contradictions = $contradictions`, nodeEventLog)
	_, err = k.exec.ExecuteQuery(ctx, finalizeQuery, map[string]any{
		"eventId":        event.ID.String(),
		"newVariables":   string(newVariables),
		"insights":       string(insights),
		"contradictions": string(contradictions),
	})
	if err != nil {
		return err
	}

	k.log.Info("event recorded",
		"eventId", event.ID,
		"newVariables", len(logRecord.NewVariables),
		"insights", len(logRecord.Insights),
		"contradictions", len(logRecord.Contradictions))
	k.notifier.Notify(projectID, activityNotification, logRecord)
	return nil
}

// AddVariable creates a variable node under the target development branch,
// links it from the originating event, and attaches its embedding.
func (k *Knowledge) AddVariable(ctx context.Context, projectID, rootEventID uuid.UUID, v Variable) error {
	if v.Target != nodeTechnologyDevelopment && v.Target != nodeBusinessDevelopment {
		return fmt.Errorf("invalid target variable type %q", v.Target)
	}

	nodeID := uuid.New().String()
	values, err := json.Marshal(v.Values)
	if err != nil {
		return err
	}
	createQuery := fmt.Sprintf(`
MATCH (p:Project {id: $projectId})-[:%[1]s]->(dev:%[1]s)
CREATE (v:Variable {id: $nodeId, name: $name, description: $description, values: $values, nodeType: '%[2]s'})
MERGE (dev)-[:VARIABLE]->(v)
WITH v
MATCH (e:Event {id: $rootEventId, nodeType: '%[3]s'})
MERGE (e)-[:ADD_VARIABLE]->(v)`, v.Target, nodeVariable, nodeEventLog)
	_, err = k.exec.ExecuteQuery(ctx, createQuery, map[string]any{
		"projectId":   projectID.String(),
		"nodeId":      nodeID,
		"name":        v.Name,
		"description": v.Description,
		"values":      string(values),
		"rootEventId": rootEventID.String(),
	})
	if err != nil {
		return err
	}

	embedding, err := k.gen.Embed(ctx, fmt.Sprintf("Variable Name: %s\nDescription: %s\nValues: %s",
		v.Name, v.Description, strings.Join(v.Values, ", ")))
	if err != nil {
		return fmt.Errorf("embedding variable: %w", err)
	}
	embeddingQuery := fmt.Sprintf(`
MATCH (v:Variable {id: $variableId, nodeType: '%s'})
CREATE (e:Embedding {id: $embeddingId, title: 'Embedding', embedding: $embedding, nodeType: '%s'})
MERGE (v)-[:EMBEDDING]->(e)`, nodeVariable, nodeEmbedding)
	_, err = k.exec.ExecuteQuery(ctx, embeddingQuery, map[string]any{
		"variableId":  nodeID,
		"embeddingId": nodeID + "-embedding",
		"embedding":   embedding,
	})
	if err != nil {
		return err
	}

	k.log.Debug("variable added", "variableId", nodeID, "name", v.Name, "target", v.Target)
	return nil
}

// AddInsight attaches an insight node to a tracked variable.
func (k *Knowledge) AddInsight(ctx context.Context, variableNodeID, insight string) error {
	query := fmt.Sprintf(`
MATCH (v:Variable {id: $variableNodeId, nodeType: '%s'})
CREATE (i:Insight {id: $insightId, title: 'INSIGHT', content: $insight, nodeType: '%s'})
MERGE (v)-[:INSIGHT]->(i)`, nodeVariable, nodeInsight)
	_, err := k.exec.ExecuteQuery(ctx, query, map[string]any{
		"variableNodeId": variableNodeID,
		"insightId":      uuid.New().String(),
		"insight":        insight,
	})
	return err
}

// RelevantVariables returns the tracked variables whose embeddings are more
// similar to the given embedding than the configured threshold, most similar
// first. Similarity is computed client side so the server needs no plugin.
func (k *Knowledge) RelevantVariables(ctx context.Context, projectID uuid.UUID, embedding []float64) ([]RelevantVariable, error) {
	query := `
MATCH (p:Project {id: $projectId})-[:TechnologyDevelopment|BusinessDevelopment]->(dev)
-[:VARIABLE]->(v:Variable)-[:EMBEDDING]->(ve:Embedding)
OPTIONAL MATCH (v)-[:INSIGHT]->(i:Insight)
WITH v, ve, collect(i.content) AS insights
RETURN v.id AS variableId, v.name AS variableName, v.description AS description,
       v.values AS values, ve.embedding AS embedding, insights`
	rows, err := k.exec.ExecuteQuery(ctx, query, map[string]any{"projectId": projectID.String()})
	if err != nil {
		return nil, err
	}

	type scored struct {
		variable   RelevantVariable
		similarity float64
	}
	var matches []scored
	for _, row := range rows {
		similarity := Cosine(embedding, floatSlice(row["embedding"]))
		if similarity <= k.threshold {
			continue
		}
		variable := RelevantVariable{
			ID:          stringValue(row["variableId"]),
			Name:        stringValue(row["variableName"]),
			Description: stringValue(row["description"]),
			Insights:    stringSlice(row["insights"]),
		}
		if raw := stringValue(row["values"]); raw != "" {
			if err := json.Unmarshal([]byte(raw), &variable.Values); err != nil {
				k.log.Warn("unparseable variable values", "variableId", variable.ID, "error", err)
			}
		}
		matches = append(matches, scored{variable: variable, similarity: similarity})
	}
	sort.Slice(matches, func(i, j int) bool { return matches[i].similarity > matches[j].similarity })

	relevant := make([]RelevantVariable, 0, len(matches))
	for _, m := range matches {
		relevant = append(relevant, m.variable)
	}
	return relevant, nil
}

// PreviousEvents returns the project's recorded event logs, newest first.
func (k *Knowledge) PreviousEvents(ctx context.Context, projectID uuid.UUID) ([]EventLog, error) {
	query := fmt.Sprintf(`
MATCH (p:Project {id: $projectId})-[:Event]->(eventGroup:Event)
MATCH (eventGroup)-[]->(e:Event)
WHERE e.nodeType = '%s'
RETURN e.id AS id, e.title AS title, e.description AS description,
       e.createdAt AS createdAt, e.newVariables AS newVariables,
       e.insights AS insights, e.contradictions AS contradictions
ORDER BY e.createdAt DESC`, nodeEventLog)
	rows, err := k.exec.ExecuteQuery(ctx, query, map[string]any{"projectId": projectID.String()})
	if err != nil {
		return nil, err
	}

	events := make([]EventLog, 0, len(rows))
	for _, row := range rows {
		event := EventLog{
			ID:          stringValue(row["id"]),
			Title:       stringValue(row["title"]),
			Description: stringValue(row["description"]),
		}
		if raw := stringValue(row["createdAt"]); raw != "" {
			if ts, err := time.Parse(time.RFC3339, raw); err == nil {
				event.CreatedAt = ts
			}
		}
		unmarshalField(k.log, row["newVariables"], &event.NewVariables)
		unmarshalField(k.log, row["insights"], &event.Insights)
		unmarshalField(k.log, row["contradictions"], &event.Contradictions)
		events = append(events, event)
	}
	return events, nil
}

func (k *Knowledge) classify(ctx context.Context, eventContent string, relevant []RelevantVariable) (classificationResponse, error) {
	var lines string
	for _, v := range relevant {
		lines += fmt.Sprintf("- Variable ID: %s, Name: %s, Values: %s, Description: %s, Insights: %s\n",
			v.ID, v.Name, strings.Join(v.Values, ", "), v.Description, strings.Join(v.Insights, ", "))
	}
	variablesContent := fmt.Sprintf("Found %d relevant variable nodes for this event.\n\nEach variable node contains the following information:\n%s",
		len(relevant), lines)

	var response classificationResponse
	err := k.gen.StructuredComplete(ctx, k.model, []assistant.Message{
		assistant.System(collaboratorPrompt),
		assistant.User(eventContent),
		assistant.User(variablesContent),
	}, &response)
	return response, err
}

// Cosine returns the cosine similarity of two vectors, or 0 when either is
// empty or their lengths differ.
func Cosine(a, b []float64) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}
	if normA == 0 || normB == 0 {
		return 0
	}
	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}


func stringValue(v any) string {
	s, _ := v.(string)
	return s
}

func floatSlice(v any) []float64 {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	floats := make([]float64, 0, len(items))
	for _, item := range items {
		f, ok := item.(float64)
		if !ok {
			return nil
		}
		floats = append(floats, f)
	}
	return floats
}

func stringSlice(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	var strs []string
	for _, item := range items {
		if s, ok := item.(string); ok {
			strs = append(strs, s)
		}
	}
	return strs
}

func unmarshalField(log *logging.Logger, raw any, out any) {
	encoded := stringValue(raw)
	if encoded == "" {
		return
	}
	if err := json.Unmarshal([]byte(encoded), out); err != nil {
		log.Warn("unparseable event log field", "error", err)
	}
}
