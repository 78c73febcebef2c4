package persistence

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khoahotran/portfolio-api/internal/domain/experience"
	"github.com/khoahotran/portfolio-api/internal/domain/listing"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

type postgresExperienceRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresExperienceRepo(db *pgxpool.Pool, logger logger.Logger) experience.Repository {
	return &postgresExperienceRepo{db: db, logger: logger}
}

var experienceTable = tableSpec{
	resource: "experience",
	from:     "experiences e JOIN users u ON u.id = e.user_id",
	columns: []string{
		"e.id", "e.user_id", "u.username", "e.company", "e.position", "e.location", "e.description",
		"e.start_date", "e.end_date", "e.is_current", "e.company_url", "e.technologies", "e.display_order",
		"e.created_at", "e.updated_at",
	},
	search: []string{"e.company", "e.position", "e.description", "e.technologies"},
	filters: map[string]string{
		"is_current": "e.is_current",
		"company":    "e.company",
		"user":       "e.user_id",
	},
	orderings: map[string]string{
		"start_date": "e.start_date",
		"end_date":   "e.end_date",
		"order":      "e.display_order",
	},
	defaultOrder: []string{"e.is_current DESC", "e.start_date DESC"},
	idColumn:     "e.id",
}

func scanExperience(row pgx.Row) (*experience.Experience, error) {
	e := &experience.Experience{}
	err := row.Scan(
		&e.ID, &e.UserID, &e.UserName, &e.Company, &e.Position, &e.Location, &e.Description,
		&e.StartDate, &e.EndDate, &e.IsCurrent, &e.CompanyURL, &e.Technologies, &e.Order,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (r *postgresExperienceRepo) Save(ctx context.Context, e *experience.Experience) error {
	query := `
		INSERT INTO experiences (id, user_id, company, position, location, description, start_date, end_date,
			is_current, company_url, technologies, display_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query,
		e.ID, e.UserID, e.Company, e.Position, e.Location, e.Description, e.StartDate, e.EndDate,
		e.IsCurrent, e.CompanyURL, e.Technologies, e.Order,
	).Scan(&e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return mapWriteError(err, "experience", e.ID.String(), nil)
	}
	return nil
}

func (r *postgresExperienceRepo) Update(ctx context.Context, e *experience.Experience) error {
	query := `
		UPDATE experiences SET
			company = $2, position = $3, location = $4, description = $5, start_date = $6, end_date = $7,
			is_current = $8, company_url = $9, technologies = $10, display_order = $11, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`
	err := r.db.QueryRow(ctx, query,
		e.ID, e.Company, e.Position, e.Location, e.Description, e.StartDate, e.EndDate,
		e.IsCurrent, e.CompanyURL, e.Technologies, e.Order,
	).Scan(&e.UpdatedAt)
	if err != nil {
		return mapWriteError(err, "experience", e.ID.String(), nil)
	}
	return nil
}

func (r *postgresExperienceRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, r.db, "experiences", "experience", id)
}

func (r *postgresExperienceRepo) FindByID(ctx context.Context, id uuid.UUID) (*experience.Experience, error) {
	return findOne(ctx, r.db, experienceTable, sq.Eq{"e.id": id.String()}, id.String(), scanExperience)
}

func (r *postgresExperienceRepo) List(ctx context.Context, q listing.Query) ([]*experience.Experience, int, error) {
	return list(ctx, r.db, experienceTable, q, scanExperience)
}
