package renderer

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"

	"github.com/jung-kurt/gofpdf"
)

const (
	documentFamily = "Courier"
	documentTitle  = "Certificate of Completion"
	documentAuthor = "Certificate Generation Team"
)

type DocumentRenderer struct {
	signer *CertificateSigner
}

// NewDocumentRenderer returns a PDF renderer. A nil or disabled signer leaves
// documents unsigned.
func NewDocumentRenderer(signer *CertificateSigner) *DocumentRenderer {
	return &DocumentRenderer{signer: signer}
}

// Build lays the certificate out on a single page sized to the layout, in points.
func (r *DocumentRenderer) Build(layout Layout) (*gofpdf.Fpdf, error) {
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: layout.Width, Ht: layout.Height},
	})
	pdf.SetMargins(DocumentMargin, DocumentMargin, DocumentMargin)
	pdf.SetAutoPageBreak(false, DocumentMargin)
	pdf.SetTitle(documentTitle, true)
	pdf.SetAuthor(documentAuthor, true)
	pdf.AddPage()

	// The gradient vector is expressed in the unit square with its origin at
	// the bottom-left, so (0,1) -> (1,0) is top-left to bottom-right.
	pdf.LinearGradient(0, 0, layout.Width, layout.Height,
		int(layout.GradientFrom.R), int(layout.GradientFrom.G), int(layout.GradientFrom.B),
		int(layout.GradientTo.R), int(layout.GradientTo.G), int(layout.GradientTo.B),
		0, 1, 1, 0)

	for _, border := range layout.Borders {
		pdf.SetDrawColor(int(border.Color.R), int(border.Color.G), int(border.Color.B))
		pdf.SetLineWidth(border.Width)
		pdf.Rect(border.X, border.Y, border.W, border.H, "D")
	}

	for _, rule := range layout.Rules {
		pdf.SetDrawColor(int(rule.Color.R), int(rule.Color.G), int(rule.Color.B))
		pdf.SetLineWidth(rule.Width)
		pdf.Line(rule.X1, rule.Y1, rule.X2, rule.Y2)
	}

	translate := pdf.UnicodeTranslatorFromDescriptor("")
	for _, item := range layout.Texts {
		style := ""
		if item.Weight == Bold {
			style = "B"
		}
		pdf.SetFont(documentFamily, style, item.Size)
		pdf.SetTextColor(int(item.Color.R), int(item.Color.G), int(item.Color.B))

		line := translate(item.Text)
		pdf.Text(alignedX(item, pdf.GetStringWidth(line)), item.Y, line)
	}

	if pdf.Err() {
		return nil, fmt.Errorf("failed to build certificate document: %w", pdf.Error())
	}

	return pdf, nil
}

// Render writes the document to path. It only returns once the file has been
// fully written and closed.
func (r *DocumentRenderer) Render(layout Layout, path string, certificateID string) error {
	pdf, err := r.Build(layout)
	if err != nil {
		return err
	}

	if r.signer != nil && r.signer.IsEnabled() {
		return r.renderSigned(pdf, path, certificateID)
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create document %s: %w", path, err)
	}

	outputErr := pdf.Output(file)
	closeErr := file.Close()
	if outputErr != nil {
		return fmt.Errorf("failed to write document %s: %w", path, outputErr)
	}
	if closeErr != nil {
		return fmt.Errorf("failed to close document %s: %w", path, closeErr)
	}

	slog.Info("Certificate document generated", "path", path)
	return nil
}

func (r *DocumentRenderer) renderSigned(pdf *gofpdf.Fpdf, path string, certificateID string) error {
	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return fmt.Errorf("failed to generate document: %w", err)
	}

	signed, err := r.signer.SignPDF(buf.Bytes(), certificateID)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, signed, 0o644); err != nil {
		return fmt.Errorf("failed to write document %s: %w", path, err)
	}

	slog.Info("Signed certificate document generated", "path", path)
	return nil
}
