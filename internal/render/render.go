// Package render lays out a report document as a paginated PDF.
package render

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-pdf/fpdf"
	"go.uber.org/zap"

	"riskprofile/internal/asset"
	"riskprofile/internal/report"
)

const (
	// FileName and ContentType are how the rendered report is delivered.
	FileName    = "Risk_Profile_Report.pdf"
	ContentType = "application/pdf"
)

var (
	ErrMissingAsset     = errors.New("missing asset")
	ErrUnsupportedAsset = errors.New("unsupported asset format")
)

// mm converts millimetres to points.
func mm(v float64) float64 { return v * 72 / 25.4 }

// Margins are page margins in points
type Margins struct {
	Left, Top, Right, Bottom float64
}

// PageSetup fixes the page size and margins used for every page
type PageSetup struct {
	Size   string
	Margin Margins
}

// DefaultPageSetup is A4 with 18 mm margins.
var DefaultPageSetup = PageSetup{
	Size:   "A4",
	Margin: Margins{Left: mm(18), Top: mm(18), Right: mm(18), Bottom: mm(18)},
}

// Renderer turns report documents into PDF bytes. It holds no per-render
// state and is safe for concurrent use.
type Renderer struct {
	resolver asset.Resolver
	page     PageSetup
	created  time.Time
	logger   *zap.Logger
}

// Option configures a Renderer
type Option func(*Renderer)

// WithPageSetup overrides the page size and margins.
func WithPageSetup(p PageSetup) Option {
	return func(r *Renderer) { r.page = p }
}

// WithTimestamp pins the creation and modification dates in the file
// metadata.
func WithTimestamp(t time.Time) Option {
	return func(r *Renderer) { r.created = t }
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(r *Renderer) { r.logger = l }
}

// New creates a renderer that resolves embedded images through resolver.
func New(resolver asset.Resolver, opts ...Option) *Renderer {
	r := &Renderer{
		resolver: resolver,
		page:     DefaultPageSetup,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.resolver == nil {
		r.resolver = asset.MapResolver{}
	}
	return r
}

// writer is the state of a single render call.
type writer struct {
	ctx      context.Context
	pdf      *fpdf.Fpdf
	tr       func(string) string
	page     PageSetup
	resolver asset.Resolver
}

// Render lays out doc block by block, in order. A page break block always
// starts a new page; everything else flows and may split across pages.
func (r *Renderer) Render(ctx context.Context, doc *report.Document) ([]byte, error) {
	if doc == nil {
		return nil, errors.New("render: nil document")
	}

	pdf := fpdf.New("P", "pt", r.page.Size, "")
	pdf.SetMargins(r.page.Margin.Left, r.page.Margin.Top, r.page.Margin.Right)
	pdf.SetAutoPageBreak(true, r.page.Margin.Bottom)
	pdf.SetTitle(doc.Title, true)
	pdf.SetCreator("riskprofile", true)
	pdf.SetCatalogSort(true)
	if !r.created.IsZero() {
		pdf.SetCreationDate(r.created)
		pdf.SetModificationDate(r.created)
	}

	w := &writer{
		ctx:      ctx,
		pdf:      pdf,
		tr:       pdf.UnicodeTranslatorFromDescriptor(""),
		page:     r.page,
		resolver: r.resolver,
	}
	pdf.AliasNbPages("")
	pdf.SetFooterFunc(w.footer)
	pdf.AddPage()

	for i, b := range doc.Blocks {
		if err := w.block(b); err != nil {
			return nil, fmt.Errorf("render block %d (%s): %w", i, b.Kind(), err)
		}
		if err := pdf.Error(); err != nil {
			return nil, fmt.Errorf("render block %d (%s): %w", i, b.Kind(), err)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render output: %w", err)
	}
	r.logger.Debug("report rendered",
		zap.Int("blocks", len(doc.Blocks)),
		zap.Int("pages", pdf.PageNo()),
		zap.Int("bytes", buf.Len()))
	return buf.Bytes(), nil
}

func (w *writer) block(b report.Block) error {
	switch b := b.(type) {
	case report.TitleBlock:
		w.title(b)
	case report.SummaryTableBlock:
		w.summary(b)
	case report.MessageBlock:
		w.message(b)
	case report.ProfileTableBlock:
		w.profiles(b)
	case report.ChartImageBlock:
		return w.chart(b)
	case report.PageBreakBlock:
		w.pdf.AddPage()
	case report.QAPairBlock:
		w.qaPair(b)
	case report.NotesBlock:
		w.notes(b)
	default:
		return fmt.Errorf("unknown block kind %q", b.Kind())
	}
	return nil
}

func (w *writer) contentWidth() float64 {
	pageW, _ := w.pdf.GetPageSize()
	return pageW - w.page.Margin.Left - w.page.Margin.Right
}

func (w *writer) bottom() float64 {
	_, pageH := w.pdf.GetPageSize()
	return pageH - w.page.Margin.Bottom
}

func (w *writer) atTop() bool {
	return w.pdf.GetY() <= w.page.Margin.Top+0.5
}

// ensureSpace starts a new page unless h fits below the cursor. Content
// taller than a page is left to overflow from the top of a fresh page.
func (w *writer) ensureSpace(h float64) {
	if w.pdf.GetY()+h > w.bottom() && !w.atTop() {
		w.pdf.AddPage()
	}
}

func (w *writer) spacer(h float64) {
	if w.pdf.GetY()+h > w.bottom() {
		w.pdf.AddPage()
		return
	}
	w.pdf.SetXY(w.page.Margin.Left, w.pdf.GetY()+h)
}

func (w *writer) paragraph(s textStyle, text string) {
	if s.spaceBefore > 0 && !w.atTop() {
		w.spacer(s.spaceBefore)
	}
	applyStyle(w.pdf, s)
	w.pdf.SetX(w.page.Margin.Left)
	w.pdf.MultiCell(w.contentWidth(), s.leading, w.tr(text), "", s.align, false)
	if s.spaceAfter > 0 {
		w.pdf.Ln(s.spaceAfter)
	}
}

// heading keeps itself on the same page as the start of what follows.
func (w *writer) heading(text string) {
	w.ensureSpace(headingStyle.spaceBefore + headingStyle.leading + headingStyle.spaceAfter + 3*bodyStyle.leading)
	w.paragraph(headingStyle, text)
}

func (w *writer) footer() {
	w.pdf.SetY(-w.page.Margin.Bottom + footerStyle.leading)
	applyStyle(w.pdf, footerStyle)
	w.pdf.CellFormat(0, footerStyle.leading,
		w.tr(fmt.Sprintf("%s - page %d of {nb}", report.DocumentTitle, w.pdf.PageNo())),
		"", 0, footerStyle.align, false, 0, "")
}

// imageType maps sniffed content to an fpdf image type.
func imageType(data []byte) (string, error) {
	switch ct := http.DetectContentType(data); ct {
	case "image/png":
		return "PNG", nil
	case "image/jpeg":
		return "JPG", nil
	case "image/gif":
		return "GIF", nil
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedAsset, ct)
	}
}
