package render

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"riskprofile/internal/report"
)

func (w *writer) title(b report.TitleBlock) {
	w.paragraph(titleStyle, "Client Risk Profile Report: "+b.ClientName)
	if b.ClientEmail != "" {
		w.paragraph(smallStyle, b.ClientEmail)
	}
	w.spacer(20)
}

func (w *writer) summary(b report.SummaryTableBlock) {
	header := cellStyle.colored(white).aligned("C")
	t := table{
		widths:    []float64{85, 85, 95, 190},
		grid:      0.5,
		lineColor: grey,
		padX:      6,
		padY:      3,
		middle:    true,
		rows: []row{{
			fill: &darkBlue,
			cells: []cell{
				{text: "Category", style: header},
				{text: "Score (8–40)", style: header},
				{text: "Level", style: header},
				{text: "Description", style: header},
			},
		}},
	}
	for _, r := range b.Rows {
		t.rows = append(t.rows, row{
			fill: &whiteSmoke,
			cells: []cell{
				{text: r.SectionTitle, style: cellStyle},
				{text: fmt.Sprintf("%d/%d", r.TotalScore, r.MaxScore), style: cellStyle},
				{text: r.LevelLabel, style: bodyStyle},
				{text: r.LevelDescription, style: bodyStyle},
			},
		})
	}
	w.drawTable(t)
	w.spacer(14)
}

func (w *writer) message(b report.MessageBlock) {
	rows := []row{{
		fill:  &whiteSmoke,
		cells: []cell{{text: b.Text, style: bodyStyle}},
	}}
	if b.CombinedLabel != "" {
		rows = append(rows, row{
			fill: &whiteSmoke,
			cells: []cell{{
				text:      b.CombinedLabel,
				style:     bodyStyle,
				lead:      "Overall recommended profile:",
				leadStyle: bodyStyle.bold(),
			}},
		})
	}
	w.drawTable(table{
		widths:       []float64{455},
		rows:         rows,
		box:          0.5,
		lineColor:    grey,
		padX:         8,
		padY:         6,
		keepTogether: true,
	})
	w.spacer(18)
}

func (w *writer) profiles(b report.ProfileTableBlock) {
	w.heading("Risk & Return Profiles")

	header := cellStyle.colored(white).aligned("C")
	numeric := cellStyle.aligned("C")
	t := table{
		widths:    []float64{140, 120, 120},
		grid:      0.5,
		lineColor: grey,
		padX:      6,
		padY:      3,
		middle:    true,
		rows: []row{{
			fill: &darkBlue,
			cells: []cell{
				{text: "Profile", style: header},
				{text: "Hist Average Return", style: header},
				{text: "Hist Annual Volatility", style: header},
			},
		}},
	}
	for _, p := range b.Rows {
		t.rows = append(t.rows, row{
			fill: &whiteSmoke,
			cells: []cell{
				{text: p.Label, style: cellStyle},
				{text: fmt.Sprintf("%.1f%%", p.HistoricalReturn), style: numeric},
				{text: fmt.Sprintf("%.1f%%", p.HistoricalVolatility), style: numeric},
			},
		})
	}
	w.drawTable(t)
}

// chart embeds the resolved image centered in a padded frame. Resolution
// failures are never replaced with a placeholder.
func (w *writer) chart(b report.ChartImageBlock) error {
	data, err := w.resolver.Resolve(w.ctx, b.AssetKey)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", ErrMissingAsset, b.AssetKey, err)
	}
	if len(data) == 0 {
		return fmt.Errorf("%w: %s: empty", ErrMissingAsset, b.AssetKey)
	}
	typ, err := imageType(data)
	if err != nil {
		return fmt.Errorf("asset %s: %w", b.AssetKey, err)
	}

	opts := fpdf.ImageOptions{ImageType: typ}
	w.pdf.RegisterImageOptionsReader(b.AssetKey, opts, bytes.NewReader(data))
	if err := w.pdf.Error(); err != nil {
		return fmt.Errorf("asset %s: %w", b.AssetKey, err)
	}

	const padTop, padBottom = 10, 20
	w.ensureSpace(padTop + b.Height + padBottom)
	y := w.pdf.GetY()
	x := w.page.Margin.Left + (w.contentWidth()-b.Width)/2
	w.pdf.ImageOptions(b.AssetKey, x, y+padTop, b.Width, b.Height, false, opts, 0, "")
	w.pdf.SetXY(w.page.Margin.Left, y+padTop+b.Height+padBottom)
	w.spacer(35)
	return nil
}

func (w *writer) qaPair(b report.QAPairBlock) {
	if b.Number == 1 {
		w.heading(b.SectionTitle)
	}
	w.drawTable(table{
		widths: []float64{450},
		rows: []row{
			{cells: []cell{{
				text:      b.Question,
				style:     bodyStyle,
				lead:      fmt.Sprintf("Q%d.", b.Number),
				leadStyle: bodyStyle.bold(),
			}}},
			{fill: &whiteSmoke, cells: []cell{{
				text:      b.Answer,
				style:     bodyStyle,
				lead:      "Answer:",
				leadStyle: bodyStyle.italic(),
			}}},
		},
		box:          0.75,
		innerGrid:    0.25,
		lineColor:    grey,
		padX:         6,
		padY:         4,
		keepTogether: true,
	})
	w.spacer(6)
}

// notes sits low on its page, below a fixed gap.
func (w *writer) notes(b report.NotesBlock) {
	w.spacer(420)
	w.paragraph(smallStyle, b.Text)
}
