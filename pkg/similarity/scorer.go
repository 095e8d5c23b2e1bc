package similarity

import (
	"context"
	"math"

	"github.com/artem13815/cvmatch/pkg/embedding"
)

// Scorer считает семантическую близость двух текстов через косинус
// эмбеддингов. Контракт деградации: без модели (nil-эмбеддер) и при любой
// ошибке получения вектора скорер возвращает нейтральный 0.0 — "оценки
// нет", а не исключение наверх.
type Scorer struct {
	embedder embedding.Embedder
}

// NewScorer принимает эмбеддер; nil допустим и означает деградированный
// режим с нейтральной оценкой.
func NewScorer(e embedding.Embedder) *Scorer {
	return &Scorer{embedder: e}
}

// Available сообщает, настроена ли модель.
func (s *Scorer) Available() bool {
	return s != nil && s.embedder != nil
}

// Score возвращает оценку близости в [0,1], округлённую до 4 знаков.
func (s *Scorer) Score(ctx context.Context, cvText, jdText string) float64 {
	if !s.Available() {
		return 0
	}
	cv, err := s.embedder.Embed(ctx, Preprocess(cvText))
	if err != nil {
		return 0
	}
	jd, err := s.embedder.Embed(ctx, Preprocess(jdText))
	if err != nil {
		return 0
	}
	score := cosine(cv, jd)
	if score < 0 {
		score = 0
	}
	if score > 1 {
		score = 1
	}
	return math.Round(score*10000) / 10000
}

func cosine(a, b []float32) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}
	var dot, na, nb float64
	for i := range a {
		dot += float64(a[i]) * float64(b[i])
		na += float64(a[i]) * float64(a[i])
		nb += float64(b[i]) * float64(b[i])
	}
	if na == 0 || nb == 0 {
		return 0
	}
	return dot / (math.Sqrt(na) * math.Sqrt(nb))
}
