package report

import (
	"errors"
	"fmt"
	"strings"

	"riskprofile/internal/assessment"
	"riskprofile/internal/reconcile"
)

var ErrInvalidInput = errors.New("invalid report input")

// Client identifies who the report is for. Email is display-only.
type Client struct {
	Name  string
	Email string
}

// Build lays out the report blocks in their fixed order. It is a pure
// function of its arguments.
func Build(client Client, tol, capacity assessment.SectionResult, rec reconcile.Result) (*Document, error) {
	name := strings.TrimSpace(client.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: client name is required", ErrInvalidInput)
	}

	blocks := make([]Block, 0, 8+len(tol.Pairs)+len(capacity.Pairs)+3)
	blocks = append(blocks,
		TitleBlock{ClientName: name, ClientEmail: strings.TrimSpace(client.Email)},
		SummaryTableBlock{Rows: [2]assessment.SectionResult{summaryRow(tol), summaryRow(capacity)}},
		MessageBlock{Text: rec.Message, CombinedLabel: rec.Combined.Label()},
		ProfileTableBlock{Rows: ProfileRows()},
		ChartImageBlock{AssetKey: ChartAssetKey, Width: ChartWidth, Height: ChartHeight},
		PageBreakBlock{},
	)
	blocks = appendPairs(blocks, tol)
	blocks = append(blocks, PageBreakBlock{})
	blocks = appendPairs(blocks, capacity)
	blocks = append(blocks, PageBreakBlock{}, NotesBlock{Text: NotesText()})

	return &Document{Title: DocumentTitle, Blocks: blocks}, nil
}

func appendPairs(blocks []Block, r assessment.SectionResult) []Block {
	for i, p := range r.Pairs {
		blocks = append(blocks, QAPairBlock{
			SectionTitle: r.SectionTitle,
			Number:       i + 1,
			Question:     p.Question,
			Answer:       p.Answer,
		})
	}
	return blocks
}

// summaryRow drops the pairs, which the summary table never shows.
func summaryRow(r assessment.SectionResult) assessment.SectionResult {
	r.Pairs = nil
	return r
}
