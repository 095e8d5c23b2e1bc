package skills

import (
	"sort"
	"strings"
)

// Set — множество канонических названий навыков.
type Set map[string]struct{}

// Sorted возвращает элементы множества в алфавитном порядке. Само
// множество порядка не гарантирует, сортировка нужна для стабильного
// вывода наружу.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for k := range s {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Comparison — результат сравнения навыков CV и JD.
// Matched = cv ∩ jd, Missing = jd − cv.
type Comparison struct {
	CV      Set
	JD      Set
	Matched Set
	Missing Set
}

// Extract находит в тексте все известные словарю навыки. Сложность
// O(размер словаря × длина текста) — словарь на десятки терминов и
// тексты длины резюме это переживают. Пустой текст даёт пустое множество.
func (c *Catalog) Extract(text string) Set {
	found := make(Set)
	if text == "" {
		return found
	}
	lower := strings.ToLower(text)
	for _, t := range c.terms {
		for _, p := range t.patterns {
			if p.MatchString(lower) {
				found[t.name] = struct{}{}
				break
			}
		}
	}
	return found
}

// Compare извлекает навыки из обоих текстов и считает пересечение и
// разность. Результат производный, пересчитывается на каждый вызов.
func (c *Catalog) Compare(cvText, jdText string) Comparison {
	cv := c.Extract(cvText)
	jd := c.Extract(jdText)

	matched := make(Set)
	missing := make(Set)
	for s := range jd {
		if _, ok := cv[s]; ok {
			matched[s] = struct{}{}
		} else {
			missing[s] = struct{}{}
		}
	}
	return Comparison{CV: cv, JD: jd, Matched: matched, Missing: missing}
}
