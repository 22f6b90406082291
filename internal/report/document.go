// Package report assembles the ordered block model of a client's risk
// profile report. Rendering lives in package render.
package report

import (
	"riskprofile/internal/assessment"
	"riskprofile/internal/classification"
)

// BlockKind identifies a block's concrete type
type BlockKind string

const (
	KindTitle        BlockKind = "title"
	KindSummaryTable BlockKind = "summary_table"
	KindMessage      BlockKind = "message"
	KindProfileTable BlockKind = "profile_table"
	KindChartImage   BlockKind = "chart_image"
	KindPageBreak    BlockKind = "page_break"
	KindQAPair       BlockKind = "qa_pair"
	KindNotes        BlockKind = "notes"
)

// Block is one element of a report document
type Block interface {
	Kind() BlockKind
}

// Document is an ordered list of blocks
type Document struct {
	Title  string
	Blocks []Block
}

// TitleBlock opens the report
type TitleBlock struct {
	ClientName  string
	ClientEmail string
}

// SummaryTableBlock shows both section results side by side
type SummaryTableBlock struct {
	Rows [2]assessment.SectionResult
}

// MessageBlock carries the reconciliation advice
type MessageBlock struct {
	Text          string
	CombinedLabel string
}

// ProfileRow is one band's historical risk and return
type ProfileRow struct {
	Band                 classification.Band
	Label                string
	HistoricalReturn     float64
	HistoricalVolatility float64
}

// ProfileTableBlock lists every band's historical risk and return
type ProfileTableBlock struct {
	Rows []ProfileRow
}

// ChartImageBlock embeds a pre-rendered chart resolved by key at render time
type ChartImageBlock struct {
	AssetKey string
	Width    float64
	Height   float64
}

// PageBreakBlock forces a new page
type PageBreakBlock struct{}

// QAPairBlock shows one question and the client's answer. Number is
// 1-based within its section.
type QAPairBlock struct {
	SectionTitle string
	Number       int
	Question     string
	Answer       string
}

// NotesBlock holds the fixed methodology notes
type NotesBlock struct {
	Text string
}

func (TitleBlock) Kind() BlockKind        { return KindTitle }
func (SummaryTableBlock) Kind() BlockKind { return KindSummaryTable }
func (MessageBlock) Kind() BlockKind      { return KindMessage }
func (ProfileTableBlock) Kind() BlockKind { return KindProfileTable }
func (ChartImageBlock) Kind() BlockKind   { return KindChartImage }
func (PageBreakBlock) Kind() BlockKind    { return KindPageBreak }
func (QAPairBlock) Kind() BlockKind       { return KindQAPair }
func (NotesBlock) Kind() BlockKind        { return KindNotes }

// Kinds returns the block kinds in document order.
func (d *Document) Kinds() []BlockKind {
	out := make([]BlockKind, len(d.Blocks))
	for i, b := range d.Blocks {
		out[i] = b.Kind()
	}
	return out
}
