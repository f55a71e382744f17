package renderer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleData() CertificateData {
	return CertificateData{
		Name:            "Jane Doe",
		GSTNumber:       "27AABCT1234H1Z0",
		BusinessName:    "ABC Corp",
		BusinessAddress: "123 Main St",
		IssuedAt:        time.Date(2025, time.March, 7, 15, 4, 5, 0, time.UTC),
	}
}

func textsOf(layout Layout) []string {
	texts := make([]string, 0, len(layout.Texts))
	for _, item := range layout.Texts {
		texts = append(texts, item.Text)
	}
	return texts
}

func TestBuildLayout_TextOrder(t *testing.T) {
	layout := BuildLayout(sampleData())

	assert.Equal(t, []string{
		"CERTIFICATE OF COMPLETION",
		"This is to certify that",
		"Jane Doe",
		"has successfully completed the requirements",
		"Business: ABC Corp",
		"GST Number: 27AABCT1234H1Z0",
		"Address: 123 Main St",
		"Date: 3/7/2025",
		"Authorized Signature",
	}, textsOf(layout))
}

func TestBuildLayout_Geometry(t *testing.T) {
	layout := BuildLayout(sampleData())

	assert.Equal(t, float64(CanvasWidth), layout.Width)
	assert.Equal(t, float64(CanvasHeight), layout.Height)
	assert.Equal(t, "#1e3a8a", layout.GradientFrom.Hex())
	assert.Equal(t, "#1e40af", layout.GradientTo.Hex())

	require.Len(t, layout.Borders, 2)
	assert.Equal(t, RectItem{X: 20, Y: 20, W: 1160, H: 760, Width: 8, Color: Gold}, layout.Borders[0])
	assert.Equal(t, RectItem{X: 40, Y: 40, W: 1120, H: 720, Width: 3, Color: Gold}, layout.Borders[1])

	require.Len(t, layout.Rules, 1)
	assert.Equal(t, LineItem{X1: 200, Y1: 160, X2: 1000, Y2: 160, Width: 2, Color: Gold}, layout.Rules[0])

	title := layout.Texts[0]
	assert.Equal(t, TextItem{Text: "CERTIFICATE OF COMPLETION", X: 600, Y: 120, Size: 60, Weight: Bold, Align: AlignCenter, Color: Gold}, title)

	name := layout.Texts[2]
	assert.Equal(t, 330.0, name.Y)
	assert.Equal(t, 48.0, name.Size)
	assert.Equal(t, Bold, name.Weight)

	for i, y := range []float64{470, 515, 560} {
		detail := layout.Texts[4+i]
		assert.Equal(t, 100.0, detail.X)
		assert.Equal(t, y, detail.Y)
		assert.Equal(t, 18.0, detail.Size)
		assert.Equal(t, AlignLeft, detail.Align)
		assert.Equal(t, White, detail.Color)
	}

	signature := layout.Texts[8]
	assert.Equal(t, 1100.0, signature.X)
	assert.Equal(t, 720.0, signature.Y)
	assert.Equal(t, AlignRight, signature.Align)
}

func TestBuildLayout_SameInputSameText(t *testing.T) {
	first := sampleData()
	second := sampleData()
	second.IssuedAt = second.IssuedAt.Add(48 * time.Hour)

	a, b := textsOf(BuildLayout(first)), textsOf(BuildLayout(second))

	// Only the footer date may differ between runs.
	assert.Equal(t, a[:7], b[:7])
	assert.Equal(t, a[8], b[8])
	assert.NotEqual(t, a[7], b[7])
}

func TestAlignedX(t *testing.T) {
	assert.Equal(t, 100.0, alignedX(TextItem{X: 100, Align: AlignLeft}, 50))
	assert.Equal(t, 575.0, alignedX(TextItem{X: 600, Align: AlignCenter}, 50))
	assert.Equal(t, 1050.0, alignedX(TextItem{X: 1100, Align: AlignRight}, 50))
}
