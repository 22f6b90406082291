package scoring

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"riskprofile/internal/questionbank"
)

func uniform(idx int) AnswerSet {
	a := make(AnswerSet, questionbank.QuestionsPerSection)
	for i := range a {
		a[i] = Pick(idx)
	}
	return a
}

func TestComputeScoreTotals(t *testing.T) {
	section := questionbank.RiskTolerance()

	tests := []struct {
		name    string
		answers AnswerSet
		want    int
	}{
		{"all first options", uniform(0), 40},
		{"all last options", uniform(4), 8},
		{"all middle options", uniform(2), 24},
		{"mixed", AnswerSet{Pick(0), Pick(1), Pick(2), Pick(3), Pick(4), Pick(0), Pick(1), Pick(2)}, 5 + 4 + 3 + 2 + 1 + 5 + 4 + 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, err := ComputeScore(section, tt.answers)
			require.NoError(t, err)
			assert.True(t, score.Complete)
			assert.Equal(t, 8, score.Answered)

			total, err := score.Value()
			require.NoError(t, err)
			assert.Equal(t, tt.want, total)
			assert.GreaterOrEqual(t, total, MinTotal)
			assert.LessOrEqual(t, total, MaxTotal)
		})
	}
}

func TestComputeScoreEveryCombinationInRange(t *testing.T) {
	section := questionbank.RiskCapacity()
	// Vary two positions across all options; the rest sweep with them.
	for a := 0; a < questionbank.OptionsPerQuestion; a++ {
		for b := 0; b < questionbank.OptionsPerQuestion; b++ {
			answers := uniform((a + b) % questionbank.OptionsPerQuestion)
			answers[0] = Pick(a)
			answers[7] = Pick(b)

			score, err := ComputeScore(section, answers)
			require.NoError(t, err)
			total, err := score.Value()
			require.NoError(t, err)
			assert.GreaterOrEqual(t, total, 8)
			assert.LessOrEqual(t, total, 40)
		}
	}
}

func TestComputeScoreIncomplete(t *testing.T) {
	section := questionbank.RiskTolerance()

	for pos := 0; pos < questionbank.QuestionsPerSection; pos++ {
		answers := uniform(0)
		answers[pos] = Unanswered

		score, err := ComputeScore(section, answers)
		require.NoError(t, err)
		assert.False(t, score.Complete, "position %d", pos)
		assert.Equal(t, 7, score.Answered)
		assert.Zero(t, score.Total)

		_, err = score.Value()
		assert.ErrorIs(t, err, ErrIncompleteAssessment)
	}
}

func TestComputeScoreNothingAnswered(t *testing.T) {
	score, err := ComputeScore(questionbank.RiskTolerance(), make(AnswerSet, 8))
	require.NoError(t, err)
	assert.False(t, score.Complete)
	assert.Equal(t, 0, score.Answered)
	assert.Equal(t, 8, score.Of)
}

func TestComputeScoreInvalidIndex(t *testing.T) {
	section := questionbank.RiskTolerance()

	for _, idx := range []int{5, -1, 100} {
		answers := uniform(1)
		answers[3] = Pick(idx)

		_, err := ComputeScore(section, answers)
		assert.ErrorIs(t, err, ErrInvalidAnswerIndex, "index %d", idx)
	}
}

func TestComputeScoreInvalidIndexWinsOverIncomplete(t *testing.T) {
	answers := uniform(1)
	answers[0] = Unanswered
	answers[5] = Pick(5)

	_, err := ComputeScore(questionbank.RiskTolerance(), answers)
	assert.ErrorIs(t, err, ErrInvalidAnswerIndex)
}

func TestComputeScoreAnswerCount(t *testing.T) {
	_, err := ComputeScore(questionbank.RiskTolerance(), uniform(0)[:7])
	assert.ErrorIs(t, err, ErrAnswerCount)

	_, err = ComputeScore(questionbank.RiskTolerance(), append(uniform(0), Pick(0)))
	assert.ErrorIs(t, err, ErrAnswerCount)
}

func TestFromIndexes(t *testing.T) {
	zero, three := 0, 3
	a := FromIndexes([]*int{&zero, nil, &three})

	require.Len(t, a, 3)
	assert.Equal(t, Pick(0), a[0])
	assert.Equal(t, Unanswered, a[1])
	assert.Equal(t, Pick(3), a[2])
	assert.Equal(t, 2, a.Answered())

	back := a.Indexes()
	require.Len(t, back, 3)
	assert.Equal(t, 0, *back[0])
	assert.Nil(t, back[1])
	assert.Equal(t, 3, *back[2])
}

func TestPoints(t *testing.T) {
	for idx, want := range []int{5, 4, 3, 2, 1} {
		assert.Equal(t, want, Pick(idx).Points())
	}
}
