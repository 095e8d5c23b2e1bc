package extract

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeOCR struct {
	text  string
	err   error
	calls int
}

func (f *fakeOCR) Recognize(image []byte) (string, error) {
	f.calls++
	return f.text, f.err
}

type fakeRenderer struct {
	pages [][]byte
	err   error
	calls int
}

func (f *fakeRenderer) RenderPages(path string, dpi float64) ([][]byte, error) {
	f.calls++
	return f.pages, f.err
}

// buildPDF собирает минимальный одностраничный PDF с заданным контент-потоком.
// Смещения xref считаются из буфера, файл получается валидным.
func buildPDF(contents string) []byte {
	objs := []string{
		"<< /Type /Catalog /Pages 2 0 R >>",
		"<< /Type /Pages /Kids [3 0 R] /Count 1 >>",
		"<< /Type /Page /Parent 2 0 R /MediaBox [0 0 612 792] /Resources << /Font << /F1 4 0 R >> >> /Contents 5 0 R >>",
		"<< /Type /Font /Subtype /Type1 /BaseFont /Helvetica >>",
		fmt.Sprintf("<< /Length %d >>\nstream\n%s\nendstream", len(contents), contents),
	}

	var buf bytes.Buffer
	buf.WriteString("%PDF-1.4\n")
	offsets := make([]int, len(objs)+1)
	for i, o := range objs {
		offsets[i+1] = buf.Len()
		fmt.Fprintf(&buf, "%d 0 obj\n%s\nendobj\n", i+1, o)
	}
	xrefPos := buf.Len()
	fmt.Fprintf(&buf, "xref\n0 %d\n", len(objs)+1)
	buf.WriteString("0000000000 65535 f \n")
	for i := 1; i <= len(objs); i++ {
		fmt.Fprintf(&buf, "%010d 00000 n \n", offsets[i])
	}
	fmt.Fprintf(&buf, "trailer\n<< /Size %d /Root 1 0 R >>\nstartxref\n%d\n%%%%EOF\n", len(objs)+1, xrefPos)
	return buf.Bytes()
}

func writeTemp(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestFromPDFTextLayerBypassesOCR(t *testing.T) {
	const line = "Senior Python Developer with Docker and AWS experience"
	pdfData := buildPDF("BT /F1 12 Tf 72 720 Td (" + line + ") Tj ET")
	path := writeTemp(t, "cv.pdf", pdfData)

	ocr := &fakeOCR{text: "should not be used"}
	renderer := &fakeRenderer{pages: [][]byte{[]byte("png")}}
	e := NewExtractor(ocr, renderer, DefaultMinTextChars, DefaultRenderDPI)

	res := e.FromPDF(path)
	require.True(t, res.OK(), "detail: %s", res.Detail)
	assert.Contains(t, res.Text, "Python")
	assert.Contains(t, res.Text, "Docker")
	assert.Equal(t, 1, res.Pages)
	assert.Equal(t, 0, res.OCRPages)
	assert.Equal(t, 0, ocr.calls, "text layer page must not go through OCR")
	assert.Equal(t, 0, renderer.calls, "no page should be rendered")
}

func TestFromPDFScannedPageFallsBackToOCR(t *testing.T) {
	// пустой контент-поток: текстового слоя нет, страница считается сканом
	path := writeTemp(t, "scan.pdf", buildPDF(""))

	ocr := &fakeOCR{text: "Looking for Python, Docker, Kubernetes, AWS engineer"}
	renderer := &fakeRenderer{pages: [][]byte{[]byte("png")}}
	e := NewExtractor(ocr, renderer, DefaultMinTextChars, DefaultRenderDPI)

	res := e.FromPDF(path)
	require.True(t, res.OK(), "detail: %s", res.Detail)
	assert.Contains(t, res.Text, "Kubernetes")
	assert.Equal(t, 1, res.OCRPages)
	assert.Equal(t, 1, ocr.calls)
	assert.Equal(t, 1, renderer.calls)
}

func TestFromPDFNoRendererSkipsScannedPages(t *testing.T) {
	path := writeTemp(t, "scan.pdf", buildPDF(""))

	ocr := &fakeOCR{text: "unused"}
	e := NewExtractor(ocr, nil, DefaultMinTextChars, DefaultRenderDPI)

	res := e.FromPDF(path)
	require.True(t, res.OK())
	assert.Equal(t, "", res.Text)
	assert.Equal(t, 0, res.OCRPages)
	assert.Equal(t, 0, ocr.calls)
}

func TestFromPDFRendererErrorSkipsScannedPages(t *testing.T) {
	path := writeTemp(t, "scan.pdf", buildPDF(""))

	ocr := &fakeOCR{text: "unused"}
	renderer := &fakeRenderer{err: fmt.Errorf("poppler is not installed")}
	e := NewExtractor(ocr, renderer, DefaultMinTextChars, DefaultRenderDPI)

	res := e.FromPDF(path)
	require.True(t, res.OK())
	assert.Equal(t, "", res.Text)
	assert.Equal(t, 0, ocr.calls)
}

func TestFromPDFUnreadableFile(t *testing.T) {
	e := NewExtractor(nil, nil, 0, 0)

	res := e.FromPDF(filepath.Join(t.TempDir(), "missing.pdf"))
	assert.Equal(t, FailureUnreadable, res.Failure)

	garbage := writeTemp(t, "broken.pdf", []byte("this is not a pdf at all"))
	res = e.FromPDF(garbage)
	assert.Equal(t, FailureUnreadable, res.Failure)
}

func TestFromImage(t *testing.T) {
	path := writeTemp(t, "scan.png", []byte("fake png bytes"))

	t.Run("ok", func(t *testing.T) {
		ocr := &fakeOCR{text: "Page 1 of 2\nPython  and   Docker"}
		e := NewExtractor(ocr, nil, 0, 0)
		res := e.FromImage(path)
		require.True(t, res.OK())
		assert.Equal(t, "Python and Docker", res.Text)
	})

	t.Run("no engine", func(t *testing.T) {
		e := NewExtractor(nil, nil, 0, 0)
		res := e.FromImage(path)
		assert.Equal(t, FailureOCRUnavailable, res.Failure)
		assert.Equal(t, "", res.Text)
	})

	t.Run("missing file", func(t *testing.T) {
		e := NewExtractor(&fakeOCR{}, nil, 0, 0)
		res := e.FromImage(filepath.Join(t.TempDir(), "nope.png"))
		assert.Equal(t, FailureUnreadable, res.Failure)
	})

	t.Run("engine failure", func(t *testing.T) {
		e := NewExtractor(&fakeOCR{err: fmt.Errorf("tesseract aborted")}, nil, 0, 0)
		res := e.FromImage(path)
		assert.Equal(t, FailureOCR, res.Failure)
	})
}
