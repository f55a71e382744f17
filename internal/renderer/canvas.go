package renderer

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/gogpu/gg"
)

const jpegQuality = 95

// ImageFormat is one attempt in the ordered encoding list.
type ImageFormat struct {
	Name        string
	Ext         string
	ContentType string
	Encode      func(dc *gg.Context, w io.Writer) error
}

var (
	JPEG = ImageFormat{
		Name:        "jpeg",
		Ext:         ".jpg",
		ContentType: "image/jpeg",
		Encode: func(dc *gg.Context, w io.Writer) error {
			return dc.EncodeJPEG(w, jpegQuality)
		},
	}
	PNG = ImageFormat{
		Name:        "png",
		Ext:         ".png",
		ContentType: "image/png",
		Encode: func(dc *gg.Context, w io.Writer) error {
			return dc.EncodePNG(w)
		},
	}
)

var ErrNoImageFormat = errors.New("no image format configured")

// RenderedImage records where the image went and which format produced it.
type RenderedImage struct {
	Path     string
	Format   ImageFormat
	Fallback bool
}

type CanvasRenderer struct {
	fonts   *fontSet
	formats []ImageFormat
}

// NewCanvasRenderer loads the canvas fonts. Formats are tried in order; with
// none given, JPEG is tried first and PNG is the lossless fallback.
func NewCanvasRenderer(formats ...ImageFormat) (*CanvasRenderer, error) {
	if len(formats) == 0 {
		formats = []ImageFormat{JPEG, PNG}
	}

	fonts, err := loadFonts()
	if err != nil {
		return nil, err
	}

	return &CanvasRenderer{
		fonts:   fonts,
		formats: formats,
	}, nil
}

func (r *CanvasRenderer) Close() error {
	return r.fonts.Close()
}

// Draw paints the layout onto a new context. The caller owns the context.
func (r *CanvasRenderer) Draw(layout Layout) (*gg.Context, error) {
	width, height := int(layout.Width), int(layout.Height)
	dc := gg.NewContext(width, height)

	paintGradient(dc, layout)

	for _, border := range layout.Borders {
		dc.SetHexColor(border.Color.Hex())
		dc.SetLineWidth(border.Width)
		dc.DrawRectangle(border.X, border.Y, border.W, border.H)
		if err := dc.Stroke(); err != nil {
			dc.Close()
			return nil, fmt.Errorf("failed to stroke border: %w", err)
		}
	}

	for _, rule := range layout.Rules {
		dc.SetHexColor(rule.Color.Hex())
		dc.SetLineWidth(rule.Width)
		dc.DrawLine(rule.X1, rule.Y1, rule.X2, rule.Y2)
		if err := dc.Stroke(); err != nil {
			dc.Close()
			return nil, fmt.Errorf("failed to stroke rule: %w", err)
		}
	}

	for _, item := range layout.Texts {
		dc.SetFont(r.fonts.face(item.Weight, item.Size))
		dc.SetHexColor(item.Color.Hex())
		width, _ := dc.MeasureString(item.Text)
		dc.DrawString(item.Text, alignedX(item, width), item.Y)
	}

	return dc, nil
}

// paintGradient samples the gradient brush per pixel; the software rasterizer
// only fills with solid brushes.
func paintGradient(dc *gg.Context, layout Layout) {
	brush := gg.NewLinearGradientBrush(0, 0, layout.Width, layout.Height).
		AddColorStop(0, gg.Hex(layout.GradientFrom.Hex())).
		AddColorStop(1, gg.Hex(layout.GradientTo.Hex()))

	for y := 0; y < dc.Height(); y++ {
		for x := 0; x < dc.Width(); x++ {
			dc.SetPixel(x, y, brush.ColorAt(float64(x)+0.5, float64(y)+0.5))
		}
	}
}

// Render draws the layout and writes it to basePath plus the extension of the
// first format that encodes successfully.
func (r *CanvasRenderer) Render(layout Layout, basePath string) (*RenderedImage, error) {
	dc, err := r.Draw(layout)
	if err != nil {
		return nil, err
	}
	defer dc.Close()

	lastErr := ErrNoImageFormat
	for i, format := range r.formats {
		var buf bytes.Buffer
		if err := format.Encode(dc, &buf); err != nil {
			slog.Warn("Image encoding failed, trying next format",
				"format", format.Name,
				"path", basePath,
				"error", err)
			lastErr = err
			continue
		}

		path := basePath + format.Ext
		if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
			return nil, fmt.Errorf("failed to write image %s: %w", path, err)
		}

		slog.Info("Certificate image generated", "path", path, "format", format.Name, "fallback", i > 0)
		return &RenderedImage{
			Path:     path,
			Format:   format,
			Fallback: i > 0,
		}, nil
	}

	return nil, fmt.Errorf("failed to encode certificate image: %w", lastErr)
}
