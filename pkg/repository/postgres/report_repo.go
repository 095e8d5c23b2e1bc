package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/artem13815/cvmatch/pkg/courses"
	"github.com/artem13815/cvmatch/pkg/match"
)

// ReportRepository сохраняет отчёты сопоставления CV/JD.
// Навыки и курсы лежат единым JSONB-документом: по ним не ищут,
// отчёт всегда читается целиком.
type ReportRepository struct {
	pool *pgxpool.Pool
}

func NewReportRepository(pool *pgxpool.Pool) (*ReportRepository, error) {
	r := &ReportRepository{pool: pool}
	if err := r.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *ReportRepository) ensureSchema(ctx context.Context) error {
	_, err := r.pool.Exec(ctx, `
CREATE TABLE IF NOT EXISTS match_reports (
	id UUID PRIMARY KEY,
	owner_id UUID NOT NULL,
	similarity REAL NOT NULL,
	score_available BOOLEAN NOT NULL,
	details JSONB NOT NULL,
	created_at TIMESTAMPTZ NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_match_reports_owner ON match_reports(owner_id, created_at DESC);
`)
	return err
}

// details — JSONB-часть отчёта.
type details struct {
	CVSkills      []string                 `json:"cvSkills"`
	JDSkills      []string                 `json:"jdSkills"`
	MatchedSkills []string                 `json:"matchedSkills"`
	MissingSkills []string                 `json:"missingSkills"`
	Courses       []courses.Recommendation `json:"courses"`
}

func (r *ReportRepository) Create(ctx context.Context, rep match.Report) (match.Report, error) {
	if rep.ID == uuid.Nil {
		rep.ID = uuid.New()
	}
	if rep.CreatedAt.IsZero() {
		rep.CreatedAt = time.Now().UTC()
	}
	payload, err := json.Marshal(detailsOf(rep))
	if err != nil {
		return match.Report{}, err
	}
	_, err = r.pool.Exec(ctx, `
INSERT INTO match_reports (id, owner_id, similarity, score_available, details, created_at)
VALUES ($1, $2, $3, $4, $5, $6)
`, rep.ID, rep.OwnerID, rep.Similarity, rep.ScoreAvailable, payload, rep.CreatedAt)
	if err != nil {
		return match.Report{}, err
	}
	return rep, nil
}

func (r *ReportRepository) GetByID(ctx context.Context, id uuid.UUID) (match.Report, error) {
	return r.getWhere(ctx, `id = $1`, id)
}

func (r *ReportRepository) GetByIDForOwner(ctx context.Context, ownerID, id uuid.UUID) (match.Report, error) {
	return r.getWhere(ctx, `id = $1 AND owner_id = $2`, id, ownerID)
}

func (r *ReportRepository) getWhere(ctx context.Context, where string, args ...any) (match.Report, error) {
	row := r.pool.QueryRow(ctx, `
SELECT id, owner_id, similarity, score_available, details, created_at
FROM match_reports WHERE `+where, args...)
	rep, err := scanReport(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return match.Report{}, match.ErrNotFound
		}
		return match.Report{}, err
	}
	return rep, nil
}

func (r *ReportRepository) ListByOwner(ctx context.Context, ownerID uuid.UUID, limit, offset int) ([]match.Report, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, owner_id, similarity, score_available, details, created_at
FROM match_reports WHERE owner_id = $1
ORDER BY created_at DESC LIMIT $2 OFFSET $3
`, ownerID, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectReports(rows)
}

func (r *ReportRepository) ListAll(ctx context.Context, limit, offset int) ([]match.Report, error) {
	rows, err := r.pool.Query(ctx, `
SELECT id, owner_id, similarity, score_available, details, created_at
FROM match_reports
ORDER BY created_at DESC LIMIT $1 OFFSET $2
`, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectReports(rows)
}

func (r *ReportRepository) DeleteForOwner(ctx context.Context, ownerID, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM match_reports WHERE id = $1 AND owner_id = $2`, id, ownerID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return match.ErrNotFound
	}
	return nil
}

func (r *ReportRepository) DeleteAny(ctx context.Context, id uuid.UUID) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM match_reports WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return match.ErrNotFound
	}
	return nil
}

func detailsOf(rep match.Report) details {
	return details{
		CVSkills:      rep.CVSkills,
		JDSkills:      rep.JDSkills,
		MatchedSkills: rep.MatchedSkills,
		MissingSkills: rep.MissingSkills,
		Courses:       rep.Courses,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanReport(row rowScanner) (match.Report, error) {
	var rep match.Report
	var payload []byte
	var created time.Time
	if err := row.Scan(&rep.ID, &rep.OwnerID, &rep.Similarity, &rep.ScoreAvailable, &payload, &created); err != nil {
		return match.Report{}, err
	}
	var d details
	if err := json.Unmarshal(payload, &d); err != nil {
		return match.Report{}, err
	}
	rep.CVSkills = d.CVSkills
	rep.JDSkills = d.JDSkills
	rep.MatchedSkills = d.MatchedSkills
	rep.MissingSkills = d.MissingSkills
	rep.Courses = d.Courses
	rep.CreatedAt = created.UTC()
	return rep, nil
}

func collectReports(rows pgx.Rows) ([]match.Report, error) {
	var out []match.Report
	for rows.Next() {
		rep, err := scanReport(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rep)
	}
	return out, rows.Err()
}
