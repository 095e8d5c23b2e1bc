package match

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/artem13815/cvmatch/pkg/courses"
	"github.com/artem13815/cvmatch/pkg/similarity"
	"github.com/artem13815/cvmatch/pkg/skills"
)

// UseCase — сценарии сопоставления резюме и вакансии.
type UseCase interface {
	// Preview считает сопоставление без сохранения.
	Preview(ctx context.Context, cvText, jdText string) (Report, error)
	// Create считает сопоставление и сохраняет отчёт за владельцем.
	Create(ctx context.Context, ownerID uuid.UUID, cvText, jdText string) (Report, error)
	Get(ctx context.Context, actorID uuid.UUID, isAdmin bool, id uuid.UUID) (Report, error)
	List(ctx context.Context, actorID uuid.UUID, isAdmin bool, limit, offset int) ([]Report, error)
	Delete(ctx context.Context, actorID uuid.UUID, isAdmin bool, id uuid.UUID) error
}

type service struct {
	repo        Repository
	catalog     *skills.Catalog
	scorer      *similarity.Scorer
	recommender *courses.Recommender
	maxTextLen  int
}

// NewService собирает use case. Рекомендер может быть nil (каталог курсов
// не загрузился) — отчёты тогда выходят без курсов; скорер с недоступной
// моделью даёт нейтральный 0.0. Пайплайн деградирует частями, а не падает.
func NewService(repo Repository, catalog *skills.Catalog, scorer *similarity.Scorer, recommender *courses.Recommender) UseCase {
	return &service{
		repo:        repo,
		catalog:     catalog,
		scorer:      scorer,
		recommender: recommender,
		maxTextLen:  12000,
	}
}

func (s *service) Preview(ctx context.Context, cvText, jdText string) (Report, error) {
	cvText = s.truncate(strings.TrimSpace(cvText))
	jdText = s.truncate(strings.TrimSpace(jdText))
	if cvText == "" || jdText == "" {
		return Report{}, ErrEmptyText
	}

	cmp := s.catalog.Compare(cvText, jdText)
	rep := Report{
		CVSkills:       cmp.CV.Sorted(),
		JDSkills:       cmp.JD.Sorted(),
		MatchedSkills:  cmp.Matched.Sorted(),
		MissingSkills:  cmp.Missing.Sorted(),
		Similarity:     s.scorer.Score(ctx, cvText, jdText),
		ScoreAvailable: s.scorer.Available(),
		Courses:        s.recommender.Recommend(cmp.Missing.Sorted(), 0),
	}
	return rep, nil
}

func (s *service) Create(ctx context.Context, ownerID uuid.UUID, cvText, jdText string) (Report, error) {
	rep, err := s.Preview(ctx, cvText, jdText)
	if err != nil {
		return Report{}, err
	}
	rep.ID = uuid.New()
	rep.OwnerID = ownerID
	rep.CreatedAt = time.Now().UTC()
	if s.repo == nil {
		return rep, nil
	}
	return s.repo.Create(ctx, rep)
}

func (s *service) Get(ctx context.Context, actorID uuid.UUID, isAdmin bool, id uuid.UUID) (Report, error) {
	if isAdmin {
		return s.repo.GetByID(ctx, id)
	}
	return s.repo.GetByIDForOwner(ctx, actorID, id)
}

func (s *service) List(ctx context.Context, actorID uuid.UUID, isAdmin bool, limit, offset int) ([]Report, error) {
	if isAdmin {
		return s.repo.ListAll(ctx, limit, offset)
	}
	return s.repo.ListByOwner(ctx, actorID, limit, offset)
}

func (s *service) Delete(ctx context.Context, actorID uuid.UUID, isAdmin bool, id uuid.UUID) error {
	if isAdmin {
		return s.repo.DeleteAny(ctx, id)
	}
	return s.repo.DeleteForOwner(ctx, actorID, id)
}

func (s *service) truncate(text string) string {
	if len(text) > s.maxTextLen {
		return text[:s.maxTextLen]
	}
	return text
}
