// Package renderer draws the certificate of completion as a raster image and
// as a single page PDF. Both outputs are driven by the same Layout so their
// geometry, sizes and colours cannot drift apart.
package renderer

import (
	"fmt"
	"time"
)

const (
	CanvasWidth  = 1200
	CanvasHeight = 800

	// DocumentMargin is the page margin of the PDF, in points.
	DocumentMargin = 20

	// DateLayout matches an en-US short date, e.g. 3/7/2025.
	DateLayout = "1/2/2006"
)

type Align int

const (
	AlignLeft Align = iota
	AlignCenter
	AlignRight
)

type Weight int

const (
	Regular Weight = iota
	Bold
)

type RGB struct {
	R, G, B uint8
}

func (c RGB) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

var (
	NavyStart = RGB{0x1e, 0x3a, 0x8a}
	NavyEnd   = RGB{0x1e, 0x40, 0xaf}
	Gold      = RGB{0xfb, 0xbf, 0x24}
	White     = RGB{0xff, 0xff, 0xff}
)

// CertificateData is everything drawn on a certificate. The recipient email
// is not part of it.
type CertificateData struct {
	Name            string
	GSTNumber       string
	BusinessName    string
	BusinessAddress string
	IssuedAt        time.Time
}

// TextItem is a single line of text. Y is the baseline. X is the left edge,
// centre or right edge depending on Align.
type TextItem struct {
	Text   string
	X, Y   float64
	Size   float64
	Weight Weight
	Align  Align
	Color  RGB
}

type LineItem struct {
	X1, Y1, X2, Y2 float64
	Width          float64
	Color          RGB
}

// RectItem is a stroked, unfilled rectangle.
type RectItem struct {
	X, Y, W, H float64
	Width      float64
	Color      RGB
}

type Layout struct {
	Width, Height float64

	// Background runs diagonally from the top-left to the bottom-right corner.
	GradientFrom RGB
	GradientTo   RGB

	Borders []RectItem
	Rules   []LineItem
	Texts   []TextItem
}

const (
	detailsX          = 100
	detailsY          = 470
	detailsLineHeight = 45
	footerY           = 720
)

func BuildLayout(data CertificateData) Layout {
	w, h := float64(CanvasWidth), float64(CanvasHeight)
	center := w / 2

	texts := []TextItem{
		{Text: "CERTIFICATE OF COMPLETION", X: center, Y: 120, Size: 60, Weight: Bold, Align: AlignCenter, Color: Gold},
		{Text: "This is to certify that", X: center, Y: 250, Size: 24, Align: AlignCenter, Color: White},
		{Text: data.Name, X: center, Y: 330, Size: 48, Weight: Bold, Align: AlignCenter, Color: Gold},
		{Text: "has successfully completed the requirements", X: center, Y: 390, Size: 20, Align: AlignCenter, Color: White},
	}

	details := []string{
		"Business: " + data.BusinessName,
		"GST Number: " + data.GSTNumber,
		"Address: " + data.BusinessAddress,
	}
	for i, line := range details {
		texts = append(texts, TextItem{
			Text:  line,
			X:     detailsX,
			Y:     float64(detailsY + i*detailsLineHeight),
			Size:  18,
			Color: White,
		})
	}

	texts = append(texts,
		TextItem{Text: "Date: " + data.IssuedAt.Format(DateLayout), X: 100, Y: footerY, Size: 16, Color: White},
		TextItem{Text: "Authorized Signature", X: w - 100, Y: footerY, Size: 16, Align: AlignRight, Color: White},
	)

	return Layout{
		Width:        w,
		Height:       h,
		GradientFrom: NavyStart,
		GradientTo:   NavyEnd,
		Borders: []RectItem{
			{X: 20, Y: 20, W: w - 40, H: h - 40, Width: 8, Color: Gold},
			{X: 40, Y: 40, W: w - 80, H: h - 80, Width: 3, Color: Gold},
		},
		Rules: []LineItem{
			{X1: 200, Y1: 160, X2: w - 200, Y2: 160, Width: 2, Color: Gold},
		},
		Texts: texts,
	}
}

// alignedX returns the left edge for a run of the given measured width.
func alignedX(item TextItem, width float64) float64 {
	switch item.Align {
	case AlignCenter:
		return item.X - width/2
	case AlignRight:
		return item.X - width
	default:
		return item.X
	}
}
