package renderer

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDocumentRenderer_Render(t *testing.T) {
	renderer := NewDocumentRenderer(nil)
	path := filepath.Join(t.TempDir(), "cert-1-abcdefghi.pdf")

	err := renderer.Render(BuildLayout(sampleData()), path, "cert-1-abcdefghi")
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(content, []byte("%PDF")), "document should start with a PDF header")
	assert.True(t, bytes.Contains(content, []byte("%%EOF")), "document should be complete")
}

func TestDocumentRenderer_PageAndText(t *testing.T) {
	renderer := NewDocumentRenderer(nil)

	pdf, err := renderer.Build(BuildLayout(sampleData()))
	require.NoError(t, err)

	width, height := pdf.GetPageSize()
	assert.Equal(t, float64(CanvasWidth), width)
	assert.Equal(t, float64(CanvasHeight), height)
	assert.Equal(t, 1, pdf.PageCount())

	pdf.SetCompression(false)
	var buf bytes.Buffer
	require.NoError(t, pdf.Output(&buf))

	for _, line := range []string{
		"CERTIFICATE OF COMPLETION",
		"Jane Doe",
		"Business: ABC Corp",
		"GST Number: 27AABCT1234H1Z0",
		"Address: 123 Main St",
		"Date: 3/7/2025",
		"Authorized Signature",
	} {
		assert.Contains(t, buf.String(), "("+line+")", "document should contain %q", line)
	}
}

func TestDocumentRenderer_SameOrderAsCanvas(t *testing.T) {
	renderer := NewDocumentRenderer(nil)

	pdf, err := renderer.Build(BuildLayout(sampleData()))
	require.NoError(t, err)
	pdf.SetCompression(false)

	var buf bytes.Buffer
	require.NoError(t, pdf.Output(&buf))
	out := buf.String()

	business := bytes.Index([]byte(out), []byte("(Business: ABC Corp)"))
	gst := bytes.Index([]byte(out), []byte("(GST Number: 27AABCT1234H1Z0)"))
	address := bytes.Index([]byte(out), []byte("(Address: 123 Main St)"))
	require.True(t, business >= 0 && gst >= 0 && address >= 0)
	assert.Less(t, business, gst)
	assert.Less(t, gst, address)
}

func TestDocumentRenderer_StreamError(t *testing.T) {
	renderer := NewDocumentRenderer(nil)
	path := filepath.Join(t.TempDir(), "missing", "cert-2-abcdefghi.pdf")

	err := renderer.Render(BuildLayout(sampleData()), path, "cert-2-abcdefghi")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to create document")
}
