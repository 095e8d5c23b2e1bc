package extract

import (
	"os"

	"github.com/artem13815/cvmatch/pkg/nlp"
)

// FromImage распознаёт текст по целому изображению и нормализует его.
// Отсутствие OCR-движка и нечитаемый файл — коды деградации, не ошибки.
func (e *Extractor) FromImage(path string) Result {
	if e.ocr == nil {
		return failed(FailureOCRUnavailable, "ocr engine is not configured on this host")
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return failed(FailureUnreadable, err.Error())
	}
	text, err := e.ocr.Recognize(data)
	if err != nil {
		return failed(FailureOCR, err.Error())
	}
	return Result{Text: nlp.CleanExtracted(text)}
}
