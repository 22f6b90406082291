// Package scoring turns one section's answer selections into a total score.
package scoring

import (
	"errors"
	"fmt"

	"riskprofile/internal/questionbank"
)

var (
	ErrInvalidAnswerIndex   = errors.New("answer index out of range")
	ErrIncompleteAssessment = errors.New("assessment incomplete")
	ErrAnswerCount          = errors.New("answer count does not match question count")
)

const (
	// MinTotal and MaxTotal bound every fully answered section.
	MinTotal = questionbank.QuestionsPerSection
	MaxTotal = questionbank.QuestionsPerSection * questionbank.OptionsPerQuestion
)

// Selection is the client's choice for one question. The zero value is
// unanswered.
type Selection struct {
	Index    int  `json:"index" yaml:"index"`
	Answered bool `json:"answered" yaml:"answered"`
}

// Unanswered marks a question the client has not answered yet.
var Unanswered = Selection{}

// Pick selects the option at index i.
func Pick(i int) Selection {
	return Selection{Index: i, Answered: true}
}

// Points is the score contributed by the selection: option 0 scores 5,
// option 4 scores 1.
func (s Selection) Points() int {
	return questionbank.OptionsPerQuestion - s.Index
}

// AnswerSet holds one selection per question of a section, in order.
type AnswerSet []Selection

// FromIndexes builds an AnswerSet from nullable indexes; nil is unanswered.
func FromIndexes(idx []*int) AnswerSet {
	out := make(AnswerSet, len(idx))
	for i, p := range idx {
		if p != nil {
			out[i] = Pick(*p)
		}
	}
	return out
}

// Indexes is the inverse of FromIndexes.
func (a AnswerSet) Indexes() []*int {
	out := make([]*int, len(a))
	for i, s := range a {
		if s.Answered {
			v := s.Index
			out[i] = &v
		}
	}
	return out
}

// Answered counts the answered positions.
func (a AnswerSet) Answered() int {
	n := 0
	for _, s := range a {
		if s.Answered {
			n++
		}
	}
	return n
}

// Score is the outcome of scoring a section. Total is only meaningful when
// Complete is true; use Value to read it safely.
type Score struct {
	Total    int  `json:"total,omitempty" yaml:"total,omitempty"`
	Complete bool `json:"complete" yaml:"complete"`
	Answered int  `json:"answered" yaml:"answered"`
	Of       int  `json:"of" yaml:"of"`
}

// Value returns the total, or ErrIncompleteAssessment if any question is
// unanswered.
func (s Score) Value() (int, error) {
	if !s.Complete {
		return 0, fmt.Errorf("%w: %d of %d answered", ErrIncompleteAssessment, s.Answered, s.Of)
	}
	return s.Total, nil
}

// ComputeScore sums the per-question points of a section. Out-of-range
// indexes are rejected even when other positions are unanswered.
func ComputeScore(section questionbank.Section, answers AnswerSet) (Score, error) {
	if len(answers) != len(section.Questions) {
		return Score{}, fmt.Errorf("%w: section %q has %d questions, got %d answers",
			ErrAnswerCount, section.ID, len(section.Questions), len(answers))
	}

	score := Score{Of: len(answers)}
	total := 0
	for i, sel := range answers {
		if !sel.Answered {
			continue
		}
		if sel.Index < 0 || sel.Index >= len(section.Questions[i].Options) {
			return Score{}, fmt.Errorf("%w: question %d index %d", ErrInvalidAnswerIndex, i+1, sel.Index)
		}
		score.Answered++
		total += sel.Points()
	}

	if score.Answered == score.Of {
		score.Complete = true
		score.Total = total
	}
	return score, nil
}
