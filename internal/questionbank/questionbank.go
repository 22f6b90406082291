// Package questionbank holds the two fixed questionnaires a client answers:
// risk tolerance and risk capacity.
package questionbank

import "fmt"

const (
	// QuestionsPerSection is the number of questions in every section.
	QuestionsPerSection = 8
	// OptionsPerQuestion is the number of options in every question.
	// Option 0 is the highest-scoring choice, option 4 the lowest.
	OptionsPerQuestion = 5
)

// SectionID identifies one of the fixed questionnaires
type SectionID string

const (
	Tolerance SectionID = "tolerance"
	Capacity  SectionID = "capacity"
)

// Question is a single prompt with its ordered options
type Question struct {
	Prompt  string   `json:"prompt" yaml:"prompt"`
	Options []string `json:"options" yaml:"options"`
}

// Section is a titled, ordered list of questions
type Section struct {
	ID        SectionID  `json:"id" yaml:"id"`
	Title     string     `json:"title" yaml:"title"`
	Questions []Question `json:"questions" yaml:"questions"`
}

// Validate checks the structural arities every section must satisfy.
func (s Section) Validate() error {
	if len(s.Questions) != QuestionsPerSection {
		return fmt.Errorf("section %q: want %d questions, got %d", s.ID, QuestionsPerSection, len(s.Questions))
	}
	for i, q := range s.Questions {
		if len(q.Options) != OptionsPerQuestion {
			return fmt.Errorf("section %q question %d: want %d options, got %d", s.ID, i+1, OptionsPerQuestion, len(q.Options))
		}
	}
	return nil
}

// clone returns a deep copy so callers can never mutate the bank.
func (s Section) clone() Section {
	out := Section{ID: s.ID, Title: s.Title, Questions: make([]Question, len(s.Questions))}
	for i, q := range s.Questions {
		out.Questions[i] = Question{Prompt: q.Prompt, Options: append([]string(nil), q.Options...)}
	}
	return out
}

// RiskTolerance returns the risk tolerance questionnaire.
func RiskTolerance() Section { return riskTolerance.clone() }

// RiskCapacity returns the risk capacity questionnaire.
func RiskCapacity() Section { return riskCapacity.clone() }

// Sections returns both questionnaires in presentation order.
func Sections() []Section {
	return []Section{RiskTolerance(), RiskCapacity()}
}

// Lookup returns the section with the given id.
func Lookup(id SectionID) (Section, bool) {
	switch id {
	case Tolerance:
		return RiskTolerance(), true
	case Capacity:
		return RiskCapacity(), true
	}
	return Section{}, false
}
