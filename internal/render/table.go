package render

// cell is one table cell. A non-empty lead is drawn in leadStyle as a
// hanging label to the left of the wrapped text.
type cell struct {
	text      string
	style     textStyle
	lead      string
	leadStyle textStyle
}

type row struct {
	cells []cell
	fill  *rgb
}

// table is a grid of fixed-width columns, centered in the content area.
// Rows wrap their text and never split across pages; the table as a whole
// does unless keepTogether is set.
type table struct {
	widths       []float64
	rows         []row
	grid         float64 // per-cell border width
	box          float64 // outer border width
	innerGrid    float64 // rule between rows
	lineColor    rgb
	padX, padY   float64
	middle       bool
	keepTogether bool
}

type cellLayout struct {
	lines [][]byte
	leadW float64
}

func (t table) width() float64 {
	w := 0.0
	for _, c := range t.widths {
		w += c
	}
	return w
}

func (w *writer) layoutCell(t table, c cell, width float64) cellLayout {
	var l cellLayout
	if c.lead != "" {
		applyStyle(w.pdf, c.leadStyle)
		l.leadW = w.pdf.GetStringWidth(w.tr(c.lead)) + 3
	}
	applyStyle(w.pdf, c.style)
	l.lines = w.pdf.SplitLines([]byte(w.tr(c.text)), width-2*t.padX-l.leadW)
	if len(l.lines) == 0 {
		l.lines = [][]byte{nil}
	}
	return l
}

func (w *writer) drawTable(t table) {
	tw := t.width()
	x0 := w.page.Margin.Left + (w.contentWidth()-tw)/2

	layouts := make([][]cellLayout, len(t.rows))
	heights := make([]float64, len(t.rows))
	total := 0.0
	for i, r := range t.rows {
		layouts[i] = make([]cellLayout, len(r.cells))
		for j, c := range r.cells {
			l := w.layoutCell(t, c, t.widths[j])
			layouts[i][j] = l
			if h := float64(len(l.lines))*c.style.leading + 2*t.padY; h > heights[i] {
				heights[i] = h
			}
		}
		total += heights[i]
	}

	if t.keepTogether {
		w.ensureSpace(total)
	}
	startPage, startY := w.pdf.PageNo(), w.pdf.GetY()

	for i, r := range t.rows {
		h := heights[i]
		w.ensureSpace(h)
		y := w.pdf.GetY()
		x := x0
		for j, c := range r.cells {
			w.drawCell(t, x, y, t.widths[j], h, c, layouts[i][j], r.fill)
			x += t.widths[j]
		}
		if t.innerGrid > 0 && i > 0 {
			w.setLine(t.lineColor, t.innerGrid)
			w.pdf.Line(x0, y, x0+tw, y)
		}
		w.pdf.SetXY(w.page.Margin.Left, y+h)
	}

	if t.box > 0 && w.pdf.PageNo() == startPage {
		w.setLine(t.lineColor, t.box)
		w.pdf.Rect(x0, startY, tw, w.pdf.GetY()-startY, "D")
	}
}

func (w *writer) drawCell(t table, x, y, width, h float64, c cell, l cellLayout, fill *rgb) {
	if fill != nil {
		w.pdf.SetFillColor(fill.r, fill.g, fill.b)
		w.pdf.Rect(x, y, width, h, "F")
	}
	if t.grid > 0 {
		w.setLine(t.lineColor, t.grid)
		w.pdf.Rect(x, y, width, h, "D")
	}

	textH := float64(len(l.lines)) * c.style.leading
	top := y + t.padY
	if t.middle {
		top = y + (h-textH)/2
	}
	inner := width - 2*t.padX

	if c.lead != "" {
		applyStyle(w.pdf, c.leadStyle)
		w.pdf.SetXY(x+t.padX, top)
		w.pdf.CellFormat(l.leadW, c.style.leading, w.tr(c.lead), "", 0, "L", false, 0, "")
	}
	applyStyle(w.pdf, c.style)
	for k, line := range l.lines {
		w.pdf.SetXY(x+t.padX+l.leadW, top+float64(k)*c.style.leading)
		w.pdf.CellFormat(inner-l.leadW, c.style.leading, string(line), "", 0, c.style.align, false, 0, "")
	}
}

func (w *writer) setLine(c rgb, width float64) {
	w.pdf.SetDrawColor(c.r, c.g, c.b)
	w.pdf.SetLineWidth(width)
}
