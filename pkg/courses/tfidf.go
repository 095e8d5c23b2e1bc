package courses

import (
	"math"
	"regexp"
	"strings"
)

// Токены — слова из 2+ буквенно-цифровых символов (как token_pattern
// TF-IDF векторизатора в исходном пайплайне).
var reToken = regexp.MustCompile(`[a-z0-9_]{2,}`)

// vectorizer — TF-IDF с английским стоп-листом. Обучается один раз на
// колонке навыков каталога, после чего только читается.
type vectorizer struct {
	vocab map[string]int
	idf   []float64
}

// sparse — разреженный вектор: индекс словаря → вес.
type sparse map[int]float64

func tokenize(doc string) []string {
	tokens := reToken.FindAllString(strings.ToLower(doc), -1)
	out := tokens[:0]
	for _, t := range tokens {
		if _, stop := englishStopWords[t]; !stop {
			out = append(out, t)
		}
	}
	return out
}

// fitVectorizer строит словарь и сглаженный IDF:
// idf(t) = ln((1+n)/(1+df(t))) + 1.
func fitVectorizer(docs []string) *vectorizer {
	v := &vectorizer{vocab: make(map[string]int)}
	df := []int{}
	for _, doc := range docs {
		seen := map[int]struct{}{}
		for _, tok := range tokenize(doc) {
			idx, ok := v.vocab[tok]
			if !ok {
				idx = len(v.vocab)
				v.vocab[tok] = idx
				df = append(df, 0)
			}
			if _, dup := seen[idx]; !dup {
				df[idx]++
				seen[idx] = struct{}{}
			}
		}
	}
	n := float64(len(docs))
	v.idf = make([]float64, len(df))
	for i, d := range df {
		v.idf[i] = math.Log((1+n)/(1+float64(d))) + 1
	}
	return v
}

// transform переводит документ в L2-нормированный TF-IDF вектор.
// Токены вне словаря игнорируются; для пустого документа вектор пуст.
func (v *vectorizer) transform(doc string) sparse {
	vec := make(sparse)
	for _, tok := range tokenize(doc) {
		if idx, ok := v.vocab[tok]; ok {
			vec[idx]++
		}
	}
	var norm float64
	for idx := range vec {
		vec[idx] *= v.idf[idx]
		norm += vec[idx] * vec[idx]
	}
	if norm == 0 {
		return vec
	}
	norm = math.Sqrt(norm)
	for idx := range vec {
		vec[idx] /= norm
	}
	return vec
}

// dot двух L2-нормированных векторов и есть их косинусная близость.
func dot(a, b sparse) float64 {
	if len(b) < len(a) {
		a, b = b, a
	}
	var sum float64
	for idx, w := range a {
		sum += w * b[idx]
	}
	return sum
}
