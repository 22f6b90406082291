package render

import (
	"bytes"
	"context"
	"image"
	"image/color"
	"image/png"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"riskprofile/internal/asset"
	"riskprofile/internal/assessment"
	"riskprofile/internal/classification"
	"riskprofile/internal/questionbank"
	"riskprofile/internal/reconcile"
	"riskprofile/internal/report"
	"riskprofile/internal/scoring"
)

func chartPNG(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 42, 22))
	for x := 0; x < 42; x++ {
		for y := 0; y < 22; y++ {
			img.Set(x, y, color.RGBA{R: 14, G: 76, B: 116, A: 255})
		}
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func section(t *testing.T, id questionbank.SectionID, idx ...int) assessment.SectionResult {
	t.Helper()
	s, _ := questionbank.Lookup(id)
	d, _ := classification.DescriptionsFor(id)
	a := make(scoring.AnswerSet, len(idx))
	for i, v := range idx {
		a[i] = scoring.Pick(v)
	}
	r, err := assessment.Evaluate(s, a, d)
	require.NoError(t, err)
	return r
}

func document(t *testing.T) *report.Document {
	t.Helper()
	tol := section(t, questionbank.Tolerance, 0, 1, 0, 2, 1, 0, 3, 1)
	capacity := section(t, questionbank.Capacity, 3, 4, 2, 3, 4, 4, 3, 2)
	rec := reconcile.Reconcile(tol.TotalScore, capacity.TotalScore, tol.Band, capacity.Band)
	doc, err := report.Build(report.Client{Name: "Jane Doe", Email: "jane@example.com"}, tol, capacity, rec)
	require.NoError(t, err)
	return doc
}

func TestRenderProducesPDF(t *testing.T) {
	r := New(asset.MapResolver{report.ChartAssetKey: chartPNG(t)})

	out, err := r.Render(context.Background(), document(t))
	require.NoError(t, err)

	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
	assert.Contains(t, string(bytes.TrimSpace(out[len(out)-16:])), "%%EOF")
	// Three forced page breaks on top of the first page, plus the /Pages root.
	assert.GreaterOrEqual(t, bytes.Count(out, []byte("/Type /Page")), 4+1)
}

func TestRenderIsDeterministicWithTimestamp(t *testing.T) {
	ts := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	chart := chartPNG(t)

	a, err := New(asset.MapResolver{report.ChartAssetKey: chart}, WithTimestamp(ts)).Render(context.Background(), document(t))
	require.NoError(t, err)
	b, err := New(asset.MapResolver{report.ChartAssetKey: chart}, WithTimestamp(ts)).Render(context.Background(), document(t))
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

func TestRenderMissingAsset(t *testing.T) {
	out, err := New(asset.MapResolver{}).Render(context.Background(), document(t))
	assert.ErrorIs(t, err, ErrMissingAsset)
	assert.ErrorIs(t, err, asset.ErrNotFound)
	assert.Nil(t, out)
}

func TestRenderNilResolverMeansNoAssets(t *testing.T) {
	_, err := New(nil).Render(context.Background(), document(t))
	assert.ErrorIs(t, err, ErrMissingAsset)
}

func TestRenderEmptyAsset(t *testing.T) {
	_, err := New(asset.MapResolver{report.ChartAssetKey: {}}).Render(context.Background(), document(t))
	assert.ErrorIs(t, err, ErrMissingAsset)
}

func TestRenderUnsupportedAsset(t *testing.T) {
	r := New(asset.MapResolver{report.ChartAssetKey: []byte("not an image at all")})

	_, err := r.Render(context.Background(), document(t))
	assert.ErrorIs(t, err, ErrUnsupportedAsset)
}

func TestRenderNilDocument(t *testing.T) {
	_, err := New(nil).Render(context.Background(), nil)
	assert.Error(t, err)
}

func TestRenderWithoutChart(t *testing.T) {
	doc := &report.Document{
		Title: report.DocumentTitle,
		Blocks: []report.Block{
			report.TitleBlock{ClientName: "Jane Doe"},
			report.MessageBlock{Text: reconcile.Aligned.Message(), CombinedLabel: "Moderate"},
			report.PageBreakBlock{},
			report.QAPairBlock{SectionTitle: "Risk Tolerance", Number: 1, Question: "Q?", Answer: assessment.NoAnswer},
			report.NotesBlock{Text: report.NotesText()},
		},
	}

	out, err := New(nil, WithPageSetup(PageSetup{Size: "Letter", Margin: DefaultPageSetup.Margin})).
		Render(context.Background(), doc)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
}

func TestImageType(t *testing.T) {
	typ, err := imageType(chartPNG(t))
	require.NoError(t, err)
	assert.Equal(t, "PNG", typ)

	_, err = imageType([]byte("<html></html>"))
	assert.ErrorIs(t, err, ErrUnsupportedAsset)
}
