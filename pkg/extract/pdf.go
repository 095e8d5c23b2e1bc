package extract

import (
	"fmt"
	"sort"
	"strings"

	pdf "github.com/ledongthuc/pdf"

	"github.com/artem13815/cvmatch/pkg/nlp"
)

// Пороговые значения политики извлечения. Вынесены в конфиг, это только
// значения по умолчанию.
const (
	// DefaultMinTextChars — минимальная длина текстового слоя страницы
	// (после trim), ниже которой страница считается сканом и уходит в OCR.
	DefaultMinTextChars = 50
	// DefaultRenderDPI — разрешение растеризации страницы под OCR.
	DefaultRenderDPI = 300
)

// Extractor извлекает текст из PDF и изображений. Текстовый слой читается
// напрямую, сканированные страницы добираются OCR-фолбэком. Оба внешних
// движка опциональны: без рендера страницы-сканы пропускаются, без OCR
// изображение отдаёт код деградации. Состояние после конструирования
// только читается, экстрактор безопасен для конкурентных запросов.
type Extractor struct {
	ocr          Recognizer
	renderer     PageRenderer
	minTextChars int
	renderDPI    float64
}

// NewExtractor собирает экстрактор. ocr и renderer могут быть nil —
// соответствующий путь деградирует, но не падает.
func NewExtractor(ocr Recognizer, renderer PageRenderer, minTextChars int, renderDPI float64) *Extractor {
	if minTextChars <= 0 {
		minTextChars = DefaultMinTextChars
	}
	if renderDPI <= 0 {
		renderDPI = DefaultRenderDPI
	}
	return &Extractor{ocr: ocr, renderer: renderer, minTextChars: minTextChars, renderDPI: renderDPI}
}

// FromPDF извлекает текст гибридно, постранично: сначала текстовый слой в
// порядке чтения (сверху вниз, слева направо), при слишком коротком слое —
// OCR по растеризованной странице. Страницы склеиваются пустой строкой,
// результат прогоняется через nlp.CleanExtracted.
func (e *Extractor) FromPDF(path string) (res Result) {
	// ledongthuc/pdf паникует на некоторых битых файлах
	defer func() {
		if r := recover(); r != nil {
			res = failed(FailureUnreadable, fmt.Sprintf("malformed pdf: %v", r))
		}
	}()

	f, r, err := pdf.Open(path)
	if err != nil {
		return failed(FailureUnreadable, err.Error())
	}
	defer f.Close()

	// Растеризация всего документа выполняется лениво, один раз — при
	// первой странице, провалившей порог текстового слоя.
	var rendered [][]byte
	renderTried := false
	pageImage := func(n int) []byte {
		if !renderTried {
			renderTried = true
			if e.renderer != nil {
				pages, err := e.renderer.RenderPages(path, e.renderDPI)
				if err == nil {
					rendered = pages
				}
			}
		}
		if n-1 < len(rendered) {
			return rendered[n-1]
		}
		return nil
	}

	total := r.NumPage()
	parts := make([]string, 0, total)
	ocrPages := 0
	for n := 1; n <= total; n++ {
		page := r.Page(n)
		var layer string
		if !page.V.IsNull() {
			layer = pageTextByRows(page)
		}
		if len(strings.TrimSpace(layer)) >= e.minTextChars {
			parts = append(parts, layer)
			continue
		}
		// Текстового слоя нет или почти нет: страница, скорее всего,
		// сканированная. Без рендера или OCR она не даёт текста вовсе.
		img := pageImage(n)
		if img == nil || e.ocr == nil {
			continue
		}
		text, err := e.ocr.Recognize(img)
		if err != nil {
			continue
		}
		if strings.TrimSpace(text) != "" {
			parts = append(parts, text)
			ocrPages++
		}
	}

	return Result{
		Text:     nlp.CleanExtracted(strings.Join(parts, "\n\n")),
		Pages:    total,
		OCRPages: ocrPages,
	}
}

// pageTextByRows собирает текстовый слой страницы в порядке чтения:
// строки сверху вниз (убывание Y в координатах PDF), внутри строки —
// слева направо.
func pageTextByRows(page pdf.Page) string {
	rows, err := page.GetTextByRow()
	if err != nil {
		return ""
	}
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Position > rows[j].Position })

	var b strings.Builder
	for ri, row := range rows {
		if ri > 0 {
			b.WriteByte('\n')
		}
		texts := row.Content
		// стабильно: при равных X сохраняем порядок потока контента
		sort.SliceStable(texts, func(i, j int) bool { return texts[i].X < texts[j].X })
		for ti := range texts {
			if ti > 0 && needsSpace(texts[ti-1], texts[ti]) {
				b.WriteByte(' ')
			}
			b.WriteString(texts[ti].S)
		}
	}
	return b.String()
}

// needsSpace восстанавливает пробел между соседними фрагментами строки:
// в PDF пробелы часто не символы, а горизонтальные зазоры.
func needsSpace(prev, cur pdf.Text) bool {
	if strings.HasSuffix(prev.S, " ") || strings.HasPrefix(cur.S, " ") {
		return false
	}
	gap := cur.X - (prev.X + prev.W)
	size := prev.FontSize
	if size <= 0 {
		size = cur.FontSize
	}
	if size <= 0 {
		return gap > 1
	}
	return gap > size*0.3
}
