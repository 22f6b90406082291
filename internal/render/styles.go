package render

import "github.com/go-pdf/fpdf"

type rgb struct{ r, g, b int }

var (
	black      = rgb{0, 0, 0}
	white      = rgb{255, 255, 255}
	grey       = rgb{128, 128, 128}
	whiteSmoke = rgb{245, 245, 245}
	darkBlue   = rgb{0x0E, 0x4C, 0x74}
)

// textStyle describes one run of flowing text. Sizes are in points.
type textStyle struct {
	family      string
	style       string
	size        float64
	leading     float64
	color       rgb
	align       string
	spaceBefore float64
	spaceAfter  float64
}

func (s textStyle) bold() textStyle {
	s.style = "B"
	return s
}

func (s textStyle) italic() textStyle {
	s.style = "I"
	return s
}

func (s textStyle) aligned(a string) textStyle {
	s.align = a
	return s
}

func (s textStyle) colored(c rgb) textStyle {
	s.color = c
	return s
}

var (
	titleStyle   = textStyle{family: "Helvetica", size: 18, leading: 22, color: darkBlue, align: "C", spaceAfter: 10}
	headingStyle = textStyle{family: "Helvetica", size: 13, leading: 16, color: darkBlue, align: "C", spaceBefore: 12, spaceAfter: 8}
	bodyStyle    = textStyle{family: "Helvetica", size: 10.5, leading: 14, color: black, align: "L"}
	cellStyle    = textStyle{family: "Helvetica", size: 10, leading: 12, color: black, align: "L"}
	smallStyle   = textStyle{family: "Helvetica", size: 8.5, leading: 11, color: black, align: "C"}
	footerStyle  = textStyle{family: "Helvetica", size: 8, leading: 10, color: grey, align: "C"}
)

func applyStyle(pdf *fpdf.Fpdf, s textStyle) {
	pdf.SetFont(s.family, s.style, s.size)
	pdf.SetTextColor(s.color.r, s.color.g, s.color.b)
}
