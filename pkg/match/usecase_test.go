package match

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/artem13815/cvmatch/pkg/courses"
	"github.com/artem13815/cvmatch/pkg/similarity"
	"github.com/artem13815/cvmatch/pkg/skills"
)

type memRepo struct {
	created []Report
}

func (m *memRepo) Create(_ context.Context, r Report) (Report, error) {
	m.created = append(m.created, r)
	return r, nil
}
func (m *memRepo) GetByID(_ context.Context, id uuid.UUID) (Report, error) {
	for _, r := range m.created {
		if r.ID == id {
			return r, nil
		}
	}
	return Report{}, ErrNotFound
}
func (m *memRepo) GetByIDForOwner(_ context.Context, ownerID, id uuid.UUID) (Report, error) {
	for _, r := range m.created {
		if r.ID == id && r.OwnerID == ownerID {
			return r, nil
		}
	}
	return Report{}, ErrNotFound
}
func (m *memRepo) ListByOwner(_ context.Context, ownerID uuid.UUID, _, _ int) ([]Report, error) {
	var out []Report
	for _, r := range m.created {
		if r.OwnerID == ownerID {
			out = append(out, r)
		}
	}
	return out, nil
}
func (m *memRepo) ListAll(_ context.Context, _, _ int) ([]Report, error) {
	return m.created, nil
}
func (m *memRepo) DeleteForOwner(_ context.Context, _, _ uuid.UUID) error { return nil }
func (m *memRepo) DeleteAny(_ context.Context, _ uuid.UUID) error         { return nil }

func newTestService(repo Repository) UseCase {
	catalog := []courses.Course{
		{Name: "Kubernetes Fundamentals", Skills: "kubernetes container orchestration", URL: "https://example.org/k8s"},
		{Name: "Python for Everybody", Skills: "python programming", URL: "https://example.org/py"},
	}
	return NewService(repo, skills.DefaultCatalog(), similarity.NewScorer(nil), courses.NewRecommender(catalog, 3))
}

func TestPreviewEndToEnd(t *testing.T) {
	svc := newTestService(nil)

	rep, err := svc.Preview(context.Background(),
		"Senior Python Developer with Docker and AWS experience",
		"Looking for Python, Docker, Kubernetes, AWS engineer")
	require.NoError(t, err)

	assert.Subset(t, rep.MatchedSkills, []string{"python", "docker", "aws"})
	assert.Contains(t, rep.MissingSkills, "kubernetes")
	// модель не настроена: нейтральный скор, флаг опущен
	assert.Equal(t, 0.0, rep.Similarity)
	assert.False(t, rep.ScoreAvailable)

	require.NotEmpty(t, rep.Courses)
	assert.Equal(t, "Kubernetes Fundamentals", rep.Courses[0].CourseName)
}

func TestPreviewEmptyTexts(t *testing.T) {
	svc := newTestService(nil)
	_, err := svc.Preview(context.Background(), "", "python developer wanted")
	assert.ErrorIs(t, err, ErrEmptyText)
	_, err = svc.Preview(context.Background(), "python developer", "   ")
	assert.ErrorIs(t, err, ErrEmptyText)
}

func TestPreviewWithoutRecommender(t *testing.T) {
	svc := NewService(nil, skills.DefaultCatalog(), similarity.NewScorer(nil), nil)
	rep, err := svc.Preview(context.Background(), "python", "python and kubernetes")
	require.NoError(t, err)
	assert.Empty(t, rep.Courses)
	assert.Contains(t, rep.MissingSkills, "kubernetes")
}

func TestCreatePersistsReport(t *testing.T) {
	repo := &memRepo{}
	svc := newTestService(repo)
	owner := uuid.New()

	rep, err := svc.Create(context.Background(), owner,
		"go developer with docker", "go kubernetes docker")
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, rep.ID)
	assert.Equal(t, owner, rep.OwnerID)
	assert.False(t, rep.CreatedAt.IsZero())
	require.Len(t, repo.created, 1)

	// владелец видит свой отчёт, чужой — нет
	got, err := svc.Get(context.Background(), owner, false, rep.ID)
	require.NoError(t, err)
	assert.Equal(t, rep.ID, got.ID)

	_, err = svc.Get(context.Background(), uuid.New(), false, rep.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// админ видит любой
	_, err = svc.Get(context.Background(), uuid.New(), true, rep.ID)
	assert.NoError(t, err)
}
