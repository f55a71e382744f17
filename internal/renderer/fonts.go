package renderer

import (
	"fmt"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
)

// fontSet holds the monospace faces used on the canvas. They pair with the
// Courier faces of the PDF so both outputs share glyph widths.
type fontSet struct {
	regular *text.FontSource
	bold    *text.FontSource
}

func loadFonts() (*fontSet, error) {
	regular, err := text.NewFontSource(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("failed to load regular font: %w", err)
	}

	bold, err := text.NewFontSource(gomonobold.TTF)
	if err != nil {
		_ = regular.Close()
		return nil, fmt.Errorf("failed to load bold font: %w", err)
	}

	return &fontSet{regular: regular, bold: bold}, nil
}

func (f *fontSet) face(weight Weight, size float64) text.Face {
	if weight == Bold {
		return f.bold.Face(size)
	}
	return f.regular.Face(size)
}

func (f *fontSet) Close() error {
	regularErr := f.regular.Close()
	boldErr := f.bold.Close()
	if regularErr != nil {
		return regularErr
	}
	return boldErr
}
