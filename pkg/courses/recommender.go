package courses

import (
	"math"
	"sort"
	"strings"
)

// DefaultTopN — сколько курсов рекомендуется по умолчанию.
const DefaultTopN = 3

// Recommendation — курс, подобранный под недостающие навыки.
type Recommendation struct {
	CourseName string  `json:"course_name"`
	URL        string  `json:"url"`
	Score      float64 `json:"score"`
}

// Recommender подбирает курсы под пропущенные навыки лексическим
// TF-IDF-поиском по каталогу. Индекс строится один раз в конструкторе;
// дальше рекомендер только читается и безопасен для конкурентных вызовов.
type Recommender struct {
	catalog []Course
	vec     *vectorizer
	vectors []sparse
	topN    int
}

// NewRecommender обучает TF-IDF на колонке навыков каталога.
// topN <= 0 означает DefaultTopN.
func NewRecommender(catalog []Course, topN int) *Recommender {
	if topN <= 0 {
		topN = DefaultTopN
	}
	docs := make([]string, len(catalog))
	for i, c := range catalog {
		docs[i] = c.Skills
	}
	vec := fitVectorizer(docs)
	vectors := make([]sparse, len(docs))
	for i, d := range docs {
		vectors[i] = vec.transform(d)
	}
	return &Recommender{catalog: catalog, vec: vec, vectors: vectors, topN: topN}
}

// Recommend возвращает до topN курсов, лексически ближайших к списку
// недостающих навыков, по убыванию близости; при равенстве — в порядке
// строк каталога. Курсы с нулевой близостью не возвращаются. Пустой
// список навыков и nil-рекомендер (каталог не загрузился) дают пустой
// результат без обращения к векторизатору.
func (r *Recommender) Recommend(missingSkills []string, topN int) []Recommendation {
	if r == nil || len(missingSkills) == 0 {
		return []Recommendation{}
	}
	if topN <= 0 {
		topN = r.topN
	}

	query := r.vec.transform(strings.Join(missingSkills, " "))

	type scored struct {
		row   int
		score float64
	}
	ranked := make([]scored, 0, len(r.vectors))
	for i, v := range r.vectors {
		if s := dot(query, v); s > 0 {
			ranked = append(ranked, scored{row: i, score: s})
		}
	}
	// стабильная сортировка: при равных скоррах сохраняется порядок каталога
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })
	if len(ranked) > topN {
		ranked = ranked[:topN]
	}

	out := make([]Recommendation, 0, len(ranked))
	for _, s := range ranked {
		c := r.catalog[s.row]
		out = append(out, Recommendation{
			CourseName: c.Name,
			URL:        c.URL,
			Score:      math.Round(s.score*100) / 100,
		})
	}
	return out
}

// Size возвращает число курсов в индексе.
func (r *Recommender) Size() int {
	if r == nil {
		return 0
	}
	return len(r.catalog)
}
