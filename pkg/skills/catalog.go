package skills

import (
	"regexp"
	"sort"
	"strings"
)

// Словарь известных навыков. Фиксированный и конечный: экстрактор
// возвращает только термины из этого списка, ничего не выдумывая.
var defaultTerms = []string{
	// Programming languages
	"python", "java", "c++", "c#", "javascript", "typescript", "php", "ruby",
	"swift", "kotlin", "go", "rust", "html", "css", "sql", "r", "matlab",
	// Frameworks & libraries
	"react", "angular", "vue", "django", "flask", "spring boot", "node.js",
	"express", "tensorflow", "pytorch", "pandas", "numpy", "scikit-learn",
	"keras", "jquery", "bootstrap", ".net",
	// Tools & platforms
	"git", "github", "gitlab", "docker", "kubernetes", "aws", "azure",
	"google cloud", "gcp", "jenkins", "jira", "linux", "unix", "postman",
	// Databases
	"mysql", "postgresql", "mongodb", "oracle", "redis", "elasticsearch",
	"sql server",
	// Concepts / soft skills
	"machine learning", "deep learning", "data analysis", "data science",
	"artificial intelligence", "nlp", "computer vision", "agile", "scrum",
	"communication", "leadership", "problem solving", "teamwork",
	"project management",
}

// defaultAliases сопоставляет альтернативное написание каноническому
// термину словаря: в тексте встречается "golang" — в результат попадает "go".
var defaultAliases = map[string]string{
	"golang":              "go",
	"js":                  "javascript",
	"ts":                  "typescript",
	"k8s":                 "kubernetes",
	"postgres":            "postgresql",
	"psql":                "postgresql",
	"node":                "node.js",
	"nodejs":              "node.js",
	"sklearn":             "scikit-learn",
	"ml":                  "machine learning",
	"ai":                  "artificial intelligence",
	"es":                  "elasticsearch",
	"amazon web services": "aws",
}

type term struct {
	name     string
	patterns []*regexp.Regexp
}

// Catalog — загруженный один раз словарь навыков со скомпилированными
// паттернами. После конструирования только читается, поэтому безопасен
// для конкурентных вызовов.
type Catalog struct {
	terms []term
}

// NewCatalog компилирует словарь из канонических терминов и алиасов.
// Каждый термин матчится как целое слово/фраза (\b-якоря), экранирование
// уберегает от сюрпризов в терминах вида "node.js" или "c++".
func NewCatalog(names []string, aliases map[string]string) *Catalog {
	variants := make(map[string][]string, len(names))
	for _, n := range names {
		n = strings.ToLower(strings.TrimSpace(n))
		if n == "" {
			continue
		}
		variants[n] = append(variants[n], n)
	}
	for alias, canonical := range aliases {
		alias = strings.ToLower(strings.TrimSpace(alias))
		canonical = strings.ToLower(strings.TrimSpace(canonical))
		if alias == "" {
			continue
		}
		if _, ok := variants[canonical]; !ok {
			continue // алиас на термин вне словаря игнорируем
		}
		variants[canonical] = append(variants[canonical], alias)
	}

	c := &Catalog{terms: make([]term, 0, len(variants))}
	for _, name := range sortedKeys(variants) {
		t := term{name: name}
		for _, v := range variants[name] {
			t.patterns = append(t.patterns, regexp.MustCompile(`\b`+regexp.QuoteMeta(v)+`\b`))
		}
		c.terms = append(c.terms, t)
	}
	return c
}

// DefaultCatalog возвращает встроенный словарь.
func DefaultCatalog() *Catalog {
	return NewCatalog(defaultTerms, defaultAliases)
}

// Contains проверяет принадлежность термина словарю.
func (c *Catalog) Contains(name string) bool {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, t := range c.terms {
		if t.name == name {
			return true
		}
	}
	return false
}

// Size возвращает число канонических терминов.
func (c *Catalog) Size() int { return len(c.terms) }

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
