package checkers

import (
	"context"
	"errors"

	"github.com/artem13815/cvmatch/pkg/courses"
	"github.com/artem13815/cvmatch/pkg/similarity"
)

// CourseCatalogChecker — готовность каталога курсов. Сервис работает и
// без него (рекомендации пустые), но readiness-проба это подсветит.
type CourseCatalogChecker struct {
	recommender *courses.Recommender
}

func NewCourseCatalogChecker(r *courses.Recommender) *CourseCatalogChecker {
	return &CourseCatalogChecker{recommender: r}
}

func (c *CourseCatalogChecker) Name() string { return "course_catalog" }

func (c *CourseCatalogChecker) Check(context.Context) error {
	if c.recommender.Size() == 0 {
		return errors.New("course catalog is not loaded")
	}
	return nil
}

// EmbeddingChecker — готовность модели эмбеддингов (скореру есть чем считать).
type EmbeddingChecker struct {
	scorer *similarity.Scorer
}

func NewEmbeddingChecker(s *similarity.Scorer) *EmbeddingChecker {
	return &EmbeddingChecker{scorer: s}
}

func (c *EmbeddingChecker) Name() string { return "embedding_model" }

func (c *EmbeddingChecker) Check(context.Context) error {
	if !c.scorer.Available() {
		return errors.New("embedding model is not configured")
	}
	return nil
}
