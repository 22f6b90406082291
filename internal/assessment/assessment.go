// Package assessment scores and classifies a completed questionnaire section.
package assessment

import (
	"fmt"

	"riskprofile/internal/classification"
	"riskprofile/internal/questionbank"
	"riskprofile/internal/scoring"
)

// NoAnswer is shown in place of an unanswered question's option text.
const NoAnswer = "—"

// QAPair is a question prompt with the text of the chosen option
type QAPair struct {
	Question string `json:"question" yaml:"question"`
	Answer   string `json:"answer" yaml:"answer"`
}

// SectionResult is the immutable outcome for one completed section
type SectionResult struct {
	SectionID        questionbank.SectionID `json:"sectionId" yaml:"sectionId"`
	SectionTitle     string                 `json:"sectionTitle" yaml:"sectionTitle"`
	TotalScore       int                    `json:"totalScore" yaml:"totalScore"`
	MaxScore         int                    `json:"maxScore" yaml:"maxScore"`
	Band             classification.Band    `json:"-" yaml:"-"`
	LevelLabel       string                 `json:"levelLabel" yaml:"levelLabel"`
	LevelDescription string                 `json:"levelDescription" yaml:"levelDescription"`
	Pairs            []QAPair               `json:"pairs" yaml:"pairs"`
}

// Evaluate scores answers against section and classifies the total with
// descriptions. Unanswered positions fail with scoring.ErrIncompleteAssessment.
func Evaluate(section questionbank.Section, answers scoring.AnswerSet, descriptions classification.DescriptionSet) (SectionResult, error) {
	score, err := scoring.ComputeScore(section, answers)
	if err != nil {
		return SectionResult{}, err
	}
	total, err := score.Value()
	if err != nil {
		return SectionResult{}, fmt.Errorf("section %q: %w", section.ID, err)
	}
	level, err := classification.Classify(total, descriptions)
	if err != nil {
		return SectionResult{}, fmt.Errorf("section %q: %w", section.ID, err)
	}

	return SectionResult{
		SectionID:        section.ID,
		SectionTitle:     section.Title,
		TotalScore:       total,
		MaxScore:         scoring.MaxTotal,
		Band:             level.Band,
		LevelLabel:       level.Label,
		LevelDescription: level.Description,
		Pairs:            Pairs(section, answers),
	}, nil
}

// Pairs lists each prompt with its chosen option, or NoAnswer. Indexes
// outside the option list also render as NoAnswer; ComputeScore is what
// rejects them.
func Pairs(section questionbank.Section, answers scoring.AnswerSet) []QAPair {
	pairs := make([]QAPair, len(section.Questions))
	for i, q := range section.Questions {
		pairs[i] = QAPair{Question: q.Prompt, Answer: NoAnswer}
		if i >= len(answers) || !answers[i].Answered {
			continue
		}
		if idx := answers[i].Index; idx >= 0 && idx < len(q.Options) {
			pairs[i].Answer = q.Options[idx]
		}
	}
	return pairs
}
