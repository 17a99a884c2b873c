// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package td

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// Intake walks the operator through the copilot interview. Answered
// questions are replayed instead of re-asked, so the interview resumes
// wherever it was interrupted. Section summaries are generated once and
// reused afterwards.
func (s *Service) Intake(ctx context.Context, projectID uuid.UUID) error {
	copilot, err := s.store.CopilotForProject(ctx, projectID)
	if err != nil {
		return err
	}

	primary := copilot.PrimaryGoalAnswers.Data()
	if primary == nil {
		primary = map[string]string{}
	}
	s.console.SubHeader(primaryGoalSection.Title)
	s.console.Info(primaryGoalSection.Description)
	for _, q := range primaryGoalSection.Questions {
		if err := s.askQuestion(q, primary); err != nil {
			return err
		}
	}
	copilot.PrimaryGoalAnswers = datatypes.NewJSONType(primary)

	if copilot.PrimaryGoalSummary == "" {
		summary, err := s.summarizeAnswers(ctx, primary)
		if err != nil {
			return fmt.Errorf("summarizing primary goal: %w", err)
		}
		copilot.PrimaryGoalSummary = summary
	}
	s.console.SubHeader("Primary Goal Summary")
	s.console.Info(copilot.PrimaryGoalSummary)

	lists := []*datatypes.JSONType[map[string]string]{
		&copilot.CriticalSubGoals,
		&copilot.MustHaveFeatures,
		&copilot.NiceToHaveFeatures,
		&copilot.Constraints,
	}
	for i, sec := range listSections {
		entries, err := s.collectList(sec, lists[i].Data())
		if err != nil {
			return err
		}
		*lists[i] = datatypes.NewJSONType(entries)
	}

	status := copilot.StatusAnswers.Data()
	if status == nil {
		status = map[string]string{}
	}
	s.console.SubHeader(statusSection.Title)
	s.console.Info(statusSection.Description)
	for _, q := range statusSection.Questions {
		if status[q.Text] != "" {
			s.console.Success(q.Text)
			s.console.Info(status[q.Text])
			continue
		}
		if q.Text == trlQuestion {
			mark, err := s.selectTRL()
			if err != nil {
				return err
			}
			status[q.Text] = strconv.Itoa(mark.Value)
			if err := s.store.UpdateProjectTRL(ctx, projectID, mark.Value); err != nil {
				return err
			}
			continue
		}
		if err := s.askQuestion(q, status); err != nil {
			return err
		}
	}
	copilot.StatusAnswers = datatypes.NewJSONType(status)

	if copilot.StatusSummary == "" {
		summary, err := s.summarizeAnswers(ctx, status)
		if err != nil {
			return fmt.Errorf("summarizing status: %w", err)
		}
		copilot.StatusSummary = summary
	}
	s.console.SubHeader("Status Summary")
	s.console.Info(copilot.StatusSummary)

	if err := s.store.SaveCopilot(ctx, copilot); err != nil {
		return err
	}
	s.console.Success("Intake saved.")
	return nil
}

// askQuestion replays a stored answer or prompts for a new one, recording it
// under the question text.
func (s *Service) askQuestion(q intakeQuestion, answers map[string]string) error {
	if answers[q.Text] != "" {
		s.console.Success(q.Text)
		s.console.Info(answers[q.Text])
		return nil
	}
	s.console.Println(q.Text)
	if q.Hint != "" {
		s.console.Info(q.Hint)
	}
	answer, err := s.console.Input("Your answer")
	if err != nil {
		return err
	}
	answers[q.Text] = answer
	return nil
}

// selectTRL shows the nine readiness levels and returns the chosen one.
func (s *Service) selectTRL() (trlMark, error) {
	options := make([]string, len(trlMarks))
	for i, mark := range trlMarks {
		options[i] = fmt.Sprintf("TRL %s: %s", mark.Label, mark.Description)
	}
	idx, err := s.console.Select("Select the Technology Readiness Level (TRL):", options)
	if err != nil {
		return trlMark{}, err
	}
	return trlMarks[idx], nil
}

// collectList gathers numbered entries for one list section. A non-empty
// section is displayed and left untouched.
func (s *Service) collectList(sec listSection, entries map[string]string) (map[string]string, error) {
	s.console.SubHeader(sec.Title)
	s.console.Info(sec.Description)

	if len(entries) > 0 {
		for _, key := range orderedKeys(entries) {
			s.console.Printf("%s: %s\n", key, entries[key])
		}
		return entries, nil
	}

	entries = map[string]string{}
	s.console.Println("Enter entries one by one. Press enter with empty input when done.")
	for counter := 1; ; counter++ {
		answer, err := s.console.Input(fmt.Sprintf("%s #%d (leave empty to finish)", sec.ItemLabel, counter))
		if err != nil {
			return nil, err
		}
		if answer == "" {
			break
		}
		entries[fmt.Sprintf("%s %d", sec.KeyPrefix, counter)] = answer
	}
	if len(entries) > 0 {
		s.console.Success(fmt.Sprintf("Added %d entries to %s.", len(entries), sec.Title))
	} else {
		s.console.Warn(fmt.Sprintf("No entries were added to %s.", sec.Title))
	}
	return entries, nil
}

// summarizeAnswers condenses an answer map into a short section summary.
func (s *Service) summarizeAnswers(ctx context.Context, answers map[string]string) (string, error) {
	encoded, err := json.Marshal(answers)
	if err != nil {
		return "", err
	}
	return s.gen.Summarize(ctx, string(encoded), summaryCharacterLimit)
}

// CopilotPromptContent renders the intake record as the project context block
// consumed by the research step generation and the conversation agents.
func (s *Service) CopilotPromptContent(ctx context.Context, projectID uuid.UUID) (string, error) {
	copilot, err := s.store.CopilotForProject(ctx, projectID)
	if err != nil {
		return "", err
	}

	var primary []string
	answers := copilot.PrimaryGoalAnswers.Data()
	for _, q := range primaryGoalSection.Questions {
		if answers[q.Text] == "" {
			continue
		}
		primary = append(primary, fmt.Sprintf("Q: %s\nA: %s", q.Text, answers[q.Text]))
	}

	var b strings.Builder
	b.WriteString("These are the following information user shared with us.\n\n")
	b.WriteString("# Primary Goal\n")
	b.WriteString(strings.Join(primary, "\n\n"))
	sections := []struct {
		title   string
		entries map[string]string
	}{
		{"Critical Sub Goals", copilot.CriticalSubGoals.Data()},
		{"Must Have Features", copilot.MustHaveFeatures.Data()},
		{"Nice to Have Features", copilot.NiceToHaveFeatures.Data()},
		{"Constraints", copilot.Constraints.Data()},
	}
	for _, sec := range sections {
		b.WriteString("\n\n# " + sec.title + "\n")
		var lines []string
		for _, key := range orderedKeys(sec.entries) {
			lines = append(lines, fmt.Sprintf("Priority %s: %s", key, sec.entries[key]))
		}
		b.WriteString(strings.Join(lines, "\n"))
	}
	return b.String(), nil
}

// orderedKeys sorts map keys by their numeric suffix, so "SubGoal 10" sorts
// after "SubGoal 9" rather than between 1 and 2.
func orderedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Slice(keys, func(i, j int) bool {
		ni, oki := keySuffix(keys[i])
		nj, okj := keySuffix(keys[j])
		if oki && okj {
			return ni < nj
		}
		return keys[i] < keys[j]
	})
	return keys
}

func keySuffix(key string) (int, bool) {
	idx := strings.LastIndexByte(key, ' ')
	if idx < 0 {
		return 0, false
	}
	n, err := strconv.Atoi(key[idx+1:])
	return n, err == nil
}
