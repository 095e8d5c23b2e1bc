package extract

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"github.com/gen2brain/go-fitz"
)

// PageRenderer — порт растеризации страниц PDF для OCR-фолбэка.
// Возвращает страницы в порядке следования, каждая — PNG-байты.
type PageRenderer interface {
	RenderPages(path string, dpi float64) ([][]byte, error)
}

// FitzRenderer растеризует страницы через MuPDF (go-fitz).
type FitzRenderer struct{}

func NewFitzRenderer() *FitzRenderer { return &FitzRenderer{} }

func (FitzRenderer) RenderPages(path string, dpi float64) ([][]byte, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("open pdf for rendering: %w", err)
	}
	defer doc.Close()

	pages := make([][]byte, 0, doc.NumPage())
	for i := 0; i < doc.NumPage(); i++ {
		img, err := doc.ImageDPI(i, dpi)
		if err != nil {
			return nil, fmt.Errorf("render page %d: %w", i+1, err)
		}
		encoded, err := encodePNG(img)
		if err != nil {
			return nil, fmt.Errorf("encode page %d: %w", i+1, err)
		}
		pages = append(pages, encoded)
	}
	return pages, nil
}

func encodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
