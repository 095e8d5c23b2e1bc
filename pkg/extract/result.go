package extract

// FailureCode классифицирует деградацию извлечения. Вместо строк с
// префиксом "ERROR" наружу отдаётся явный код: вызывающая сторона ветвится
// по нему, а не по соглашению о тексте сообщения.
type FailureCode string

const (
	// FailureNone — извлечение прошло (текст может быть и пустым,
	// если в документе его действительно нет).
	FailureNone FailureCode = ""
	// FailureUnreadable — файл не читается: нет на диске, битый PDF,
	// нераспознаваемый формат изображения.
	FailureUnreadable FailureCode = "unreadable_file"
	// FailureOCRUnavailable — движок распознавания не настроен на хосте.
	FailureOCRUnavailable FailureCode = "ocr_unavailable"
	// FailureOCR — движок есть, но распознавание упало.
	FailureOCR FailureCode = "ocr_failed"
)

// Result — итог извлечения текста из документа.
type Result struct {
	// Нормализованный текст; пуст при любой деградации.
	Text string `json:"text"`
	// Число страниц исходника (0 для изображений).
	Pages int `json:"pages"`
	// Сколько страниц ушло в OCR-фолбэк.
	OCRPages int `json:"ocrPages"`
	// Код деградации; пустой при успехе.
	Failure FailureCode `json:"failure,omitempty"`
	// Человекочитаемая деталь для логов/ответа, не для ветвления.
	Detail string `json:"detail,omitempty"`
}

// OK сообщает, что извлечение не деградировало.
func (r Result) OK() bool { return r.Failure == FailureNone }

func failed(code FailureCode, detail string) Result {
	return Result{Failure: code, Detail: detail}
}
