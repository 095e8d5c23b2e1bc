package extract

import (
	"github.com/otiai10/gosseract/v2"
)

// Recognizer — порт движка оптического распознавания. Принимает
// закодированное изображение (PNG/JPEG), возвращает распознанный текст.
type Recognizer interface {
	Recognize(image []byte) (string, error)
}

// TesseractEngine распознаёт текст через библиотеку tesseract
// (биндинг gosseract).
type TesseractEngine struct {
	lang string
}

// NewTesseractEngine создаёт движок с заданным языком распознавания
// (пустая строка — язык по умолчанию, "eng").
func NewTesseractEngine(lang string) *TesseractEngine {
	return &TesseractEngine{lang: lang}
}

// Recognize прогоняет изображение через tesseract. Клиент создаётся на
// каждый вызов: клиенты gosseract не потокобезопасны, а общее состояние
// сервиса после старта должно оставаться только читаемым.
func (t *TesseractEngine) Recognize(image []byte) (string, error) {
	client := gosseract.NewClient()
	defer client.Close()
	if t.lang != "" {
		if err := client.SetLanguage(t.lang); err != nil {
			return "", err
		}
	}
	if err := client.SetImageFromBytes(image); err != nil {
		return "", err
	}
	return client.Text()
}
