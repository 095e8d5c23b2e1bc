package match

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/artem13815/cvmatch/pkg/courses"
)

// Report — результат сопоставления CV и JD: навыки, семантическая
// близость и подобранные под пробелы курсы.
type Report struct {
	ID      uuid.UUID `json:"id"`
	OwnerID uuid.UUID `json:"ownerId"`
	// Навыки отсортированы по алфавиту для стабильного вывода;
	// сами множества порядка не имеют.
	CVSkills      []string `json:"cvSkills"`
	JDSkills      []string `json:"jdSkills"`
	MatchedSkills []string `json:"matchedSkills"`
	MissingSkills []string `json:"missingSkills"`
	// Близость в [0,1]; 0.0 может означать и "тексты не похожи",
	// и "модель недоступна" — см. ScoreAvailable.
	Similarity     float64                  `json:"similarity"`
	ScoreAvailable bool                     `json:"scoreAvailable"`
	Courses        []courses.Recommendation `json:"courses"`
	CreatedAt      time.Time                `json:"createdAt"`
}

var (
	ErrEmptyText = errors.New("cv and jd texts must not be empty")
	ErrNotFound  = errors.New("report not found")
)

// Repository — порт хранения отчётов.
type Repository interface {
	Create(ctx context.Context, r Report) (Report, error)
	GetByID(ctx context.Context, id uuid.UUID) (Report, error)
	GetByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (Report, error)
	ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]Report, error)
	ListAll(ctx context.Context, limit, offset int) ([]Report, error)
	DeleteForOwner(ctx context.Context, ownerID, id uuid.UUID) error
	DeleteAny(ctx context.Context, id uuid.UUID) error
}
