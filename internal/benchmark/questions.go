package benchmark

import (
	"errors"
	"fmt"
	"strings"

	"github.com/povarna/generative-ai-agents/kg-explorer/internal/hrefs"
	"github.com/povarna/generative-ai-agents/kg-explorer/internal/models"
)

var ErrUnknownQuestionType = errors.New("unknown question type")

// QuestionText renders prompts as observations, then goals, then questions.
func QuestionText(prompts []models.QuestionPrompt) string {
	order := []struct {
		promptType models.PromptType
		prefix     string
	}{
		{models.PromptTypeObservation, "Observation: "},
		{models.PromptTypeGoal, "Goal: "},
		{models.PromptTypeQuestion, "Question: "},
	}

	var parts []string
	for _, o := range order {
		for _, prompt := range prompts {
			if prompt.Type == o.promptType {
				parts = append(parts, o.prefix+prompt.Text)
			}
		}
	}
	return strings.Join(parts, " ")
}

func QuestionTypeLabel(questionType models.QuestionType) (string, error) {
	switch questionType {
	case models.QuestionTypeMultipleChoice:
		return "Multiple Choice", nil
	case models.QuestionTypeTrueFalse:
		return "True/False", nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownQuestionType, questionType)
	}
}

type Column struct {
	Name   string `json:"name"`
	Label  string `json:"label,omitempty"`
	Hidden bool   `json:"hidden,omitempty"`
}

// Columns returns the questions table columns. Optional columns only appear when at
// least one question carries the field.
func Columns(questions []models.BenchmarkQuestion) []Column {
	columns := []Column{
		{Name: "id", Hidden: true},
		{Name: "prompts", Label: "Text"},
	}

	var hasType, hasCategories, hasConcept bool
	for _, question := range questions {
		hasType = hasType || question.Type != nil
		hasCategories = hasCategories || len(question.Categories) > 0
		hasConcept = hasConcept || (question.Concept != nil && *question.Concept != "")
	}

	if hasType {
		columns = append(columns, Column{Name: "type", Label: "Type"})
	}
	if hasCategories {
		columns = append(columns, Column{Name: "categories", Label: "Categories"})
	}
	if hasConcept {
		columns = append(columns, Column{Name: "concept", Label: "Concept"})
	}
	return columns
}

type QuestionRow struct {
	ID         string   `json:"id"`
	Text       string   `json:"text"`
	Type       string   `json:"type,omitempty"`
	Categories []string `json:"categories,omitempty"`
	Concept    string   `json:"concept,omitempty"`
	Href       string   `json:"href,omitempty"`
}

// QuestionRows builds table rows. Rows link to the question page only when a
// submission is selected.
func QuestionRows(benchmarkID, datasetID, submissionID string, questions []models.BenchmarkQuestion) ([]QuestionRow, error) {
	rows := make([]QuestionRow, 0, len(questions))

	for _, question := range questions {
		row := QuestionRow{
			ID:         question.ID,
			Text:       QuestionText(question.Prompts),
			Categories: question.Categories,
		}

		if question.Type != nil {
			label, err := QuestionTypeLabel(*question.Type)
			if err != nil {
				return nil, fmt.Errorf("question %s: %w", question.ID, err)
			}
			row.Type = label
		}
		if question.Concept != nil {
			row.Concept = *question.Concept
		}
		if submissionID != "" {
			row.Href = hrefs.Benchmark(hrefs.Raw(benchmarkID)).
				Dataset(hrefs.Raw(datasetID)).
				Submission(hrefs.Raw(submissionID)).
				Question(hrefs.Raw(question.ID))
		}

		rows = append(rows, row)
	}

	return rows, nil
}
