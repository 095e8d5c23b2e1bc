package similarity

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

var (
	reTags       = regexp.MustCompile(`<[^>]*>`)
	rePunctNoise = regexp.MustCompile(`[@#]{2,}`)
	// Разрешены ASCII-буквы/цифры, вьетнамский расширенный диапазон
	// латиницы и базовая пунктуация; остальное заменяется пробелом.
	reDisallowed = regexp.MustCompile(`[^0-9a-zA-ZÀ-ỹ.,!?;:()\-\s]`)
	reWhitespace = regexp.MustCompile(`\s+`)
)

// Preprocess готовит текст к эмбеддингу: каноникализация Unicode (NFC),
// вычищение HTML-подобных тегов и мусорной пунктуации, нижний регистр,
// схлопывание пробелов. Это отдельный от nlp.CleanExtracted проход:
// тот чинит вёрстку документа, этот — вход модели.
func Preprocess(text string) string {
	text = norm.NFC.String(text)
	text = reTags.ReplaceAllString(text, " ")
	text = rePunctNoise.ReplaceAllString(text, " ")
	text = reDisallowed.ReplaceAllString(text, " ")
	text = strings.ToLower(text)
	text = reWhitespace.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
