package nlp

import (
	"regexp"
	"strings"
)

// Паттерны строк-маркеров страниц, попадающих в извлечённый из PDF текст:
// "Page 3 of 10", "Página 2", голые номера страниц, "3 / 10" и т.п.
var pageMarkers = []*regexp.Regexp{
	regexp.MustCompile(`(?i)^page\s+\d+(\s+of\s+\d+)?$`),
	regexp.MustCompile(`(?i)^página\s+\d+$`),
	regexp.MustCompile(`^\d+$`),
	regexp.MustCompile(`(?i)^page\s*\|\s*\d+$`),
	regexp.MustCompile(`^\d+\s*/\s*\d+$`),
	regexp.MustCompile(`(?i)^\d+\s+of\s+\d+$`),
}

var (
	reInnerSpace = regexp.MustCompile(`[ \t\r\f\v]+`)
	reBlankRuns  = regexp.MustCompile(`\n{3,}`)
)

// CleanExtracted убирает из извлечённого текста шум вёрстки: строки с
// номерами страниц, лишние пробелы внутри строк и длинные серии пустых
// строк (3+ пустых строк схлопываются в одну). Идемпотентна: повторный
// вызов на уже очищенном тексте возвращает тот же текст. Пустой вход —
// пустой выход, ошибок не бывает.
func CleanExtracted(text string) string {
	if text == "" {
		return ""
	}
	lines := strings.Split(text, "\n")
	cleaned := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" && isPageMarker(line) {
			continue
		}
		cleaned = append(cleaned, reInnerSpace.ReplaceAllString(line, " "))
	}
	out := strings.Join(cleaned, "\n")
	out = reBlankRuns.ReplaceAllString(out, "\n\n")
	return strings.TrimSpace(out)
}

func isPageMarker(line string) bool {
	for _, re := range pageMarkers {
		if re.MatchString(line) {
			return true
		}
	}
	return false
}
