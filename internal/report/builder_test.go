package report

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"riskprofile/internal/assessment"
	"riskprofile/internal/classification"
	"riskprofile/internal/questionbank"
	"riskprofile/internal/reconcile"
	"riskprofile/internal/scoring"
)

func evaluated(t *testing.T, id questionbank.SectionID, idx int) assessment.SectionResult {
	t.Helper()
	section, ok := questionbank.Lookup(id)
	require.True(t, ok)
	descriptions, _ := classification.DescriptionsFor(id)

	a := make(scoring.AnswerSet, questionbank.QuestionsPerSection)
	for i := range a {
		a[i] = scoring.Pick(idx)
	}
	r, err := assessment.Evaluate(section, a, descriptions)
	require.NoError(t, err)
	return r
}

func fixture(t *testing.T) (assessment.SectionResult, assessment.SectionResult, reconcile.Result) {
	t.Helper()
	tol := evaluated(t, questionbank.Tolerance, 0)     // 40
	capacity := evaluated(t, questionbank.Capacity, 4) // 8
	rec := reconcile.Reconcile(tol.TotalScore, capacity.TotalScore, tol.Band, capacity.Band)
	return tol, capacity, rec
}

func TestBuildBlockOrder(t *testing.T) {
	tol, capacity, rec := fixture(t)

	doc, err := Build(Client{Name: "Jane Doe", Email: "jane@example.com"}, tol, capacity, rec)
	require.NoError(t, err)

	want := []BlockKind{KindTitle, KindSummaryTable, KindMessage, KindProfileTable, KindChartImage, KindPageBreak}
	for i := 0; i < 8; i++ {
		want = append(want, KindQAPair)
	}
	want = append(want, KindPageBreak)
	for i := 0; i < 8; i++ {
		want = append(want, KindQAPair)
	}
	want = append(want, KindPageBreak, KindNotes)

	assert.Equal(t, want, doc.Kinds())
	assert.Equal(t, DocumentTitle, doc.Title)
}

func TestBuildContent(t *testing.T) {
	tol, capacity, rec := fixture(t)

	doc, err := Build(Client{Name: "  Jane Doe ", Email: "jane@example.com"}, tol, capacity, rec)
	require.NoError(t, err)

	title := doc.Blocks[0].(TitleBlock)
	assert.Equal(t, "Jane Doe", title.ClientName)
	assert.Equal(t, "jane@example.com", title.ClientEmail)

	summary := doc.Blocks[1].(SummaryTableBlock)
	assert.Equal(t, "Risk Tolerance", summary.Rows[0].SectionTitle)
	assert.Equal(t, 40, summary.Rows[0].TotalScore)
	assert.Equal(t, "Risk Capacity", summary.Rows[1].SectionTitle)
	assert.Equal(t, 8, summary.Rows[1].TotalScore)
	assert.Nil(t, summary.Rows[0].Pairs)
	assert.Len(t, tol.Pairs, 8, "input must not be modified")

	msg := doc.Blocks[2].(MessageBlock)
	assert.Equal(t, reconcile.ToleranceExceedsCapacity.Message(), msg.Text)
	assert.Equal(t, "Conservative", msg.CombinedLabel)

	profiles := doc.Blocks[3].(ProfileTableBlock)
	require.Len(t, profiles.Rows, 5)

	chart := doc.Blocks[4].(ChartImageBlock)
	assert.Equal(t, ChartAssetKey, chart.AssetKey)

	first := doc.Blocks[6].(QAPairBlock)
	assert.Equal(t, "Risk Tolerance", first.SectionTitle)
	assert.Equal(t, 1, first.Number)
	assert.Equal(t, tol.Pairs[0].Question, first.Question)
	assert.Equal(t, tol.Pairs[0].Answer, first.Answer)

	last := doc.Blocks[22].(QAPairBlock)
	assert.Equal(t, "Risk Capacity", last.SectionTitle)
	assert.Equal(t, 8, last.Number)

	notes := doc.Blocks[len(doc.Blocks)-1].(NotesBlock)
	assert.Equal(t, NotesText(), notes.Text)
}

func TestBuildRejectsBlankName(t *testing.T) {
	tol, capacity, rec := fixture(t)

	for _, name := range []string{"", "   ", "\t\n"} {
		doc, err := Build(Client{Name: name}, tol, capacity, rec)
		assert.ErrorIs(t, err, ErrInvalidInput)
		assert.Nil(t, doc)
	}
}

func TestBuildIsDeterministic(t *testing.T) {
	tol, capacity, rec := fixture(t)
	client := Client{Name: "Jane Doe"}

	a, err := Build(client, tol, capacity, rec)
	require.NoError(t, err)
	b, err := Build(client, tol, capacity, rec)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestProfileRows(t *testing.T) {
	rows := ProfileRows()
	require.Len(t, rows, 5)

	assert.Equal(t, "Conservative", rows[0].Label)
	assert.Equal(t, 9.9, rows[0].HistoricalReturn)
	assert.Equal(t, 5.6, rows[0].HistoricalVolatility)
	assert.Equal(t, "Mod. Conservative", rows[1].Label)
	assert.Equal(t, "Mod. Aggressive", rows[3].Label)
	assert.Equal(t, 12.1, rows[4].HistoricalReturn)
	assert.Equal(t, 12.2, rows[4].HistoricalVolatility)

	for i := 1; i < len(rows); i++ {
		assert.Greater(t, rows[i].HistoricalReturn, rows[i-1].HistoricalReturn)
		assert.Greater(t, rows[i].HistoricalVolatility, rows[i-1].HistoricalVolatility)
	}

	rows[0].Label = "changed"
	assert.Equal(t, "Conservative", ProfileRows()[0].Label)
}

func TestAllocations(t *testing.T) {
	for _, b := range classification.Bands {
		a, ok := AllocationFor(b)
		require.True(t, ok)
		assert.Equal(t, 100, a.LocalEquity+a.GlobalEquity+a.LocalBonds, b.Label())
	}
}

func TestNotesText(t *testing.T) {
	text := NotesText()
	assert.True(t, strings.HasPrefix(text, "Notes: "))
	assert.Contains(t, text, "Conservative (20% local equity, 10% global equity, 70% local bonds)")
	assert.Contains(t, text, "Mod. Conservative (30%/15%/55%)")
	assert.Contains(t, text, "Aggressive (60%/30%/10%)")
	assert.Contains(t, text, "20 years of daily data")
}
