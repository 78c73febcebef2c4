package persistence

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khoahotran/portfolio-api/internal/domain/education"
	"github.com/khoahotran/portfolio-api/internal/domain/listing"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

type postgresEducationRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresEducationRepo(db *pgxpool.Pool, logger logger.Logger) education.Repository {
	return &postgresEducationRepo{db: db, logger: logger}
}

var educationTable = tableSpec{
	resource: "education",
	from:     "education ed JOIN users u ON u.id = ed.user_id",
	columns: []string{
		"ed.id", "ed.user_id", "u.username", "ed.institution", "ed.degree", "ed.field_of_study", "ed.location",
		"ed.description", "ed.start_date", "ed.end_date", "ed.grade", "ed.institution_url", "ed.display_order",
		"ed.created_at", "ed.updated_at",
	},
	search: []string{"ed.institution", "ed.degree", "ed.field_of_study", "ed.description"},
	filters: map[string]string{
		"institution": "ed.institution",
		"degree":      "ed.degree",
		"user":        "ed.user_id",
	},
	orderings: map[string]string{
		"start_date": "ed.start_date",
		"end_date":   "ed.end_date",
		"order":      "ed.display_order",
	},
	defaultOrder: []string{"ed.start_date DESC"},
	idColumn:     "ed.id",
}

func scanEducation(row pgx.Row) (*education.Education, error) {
	e := &education.Education{}
	err := row.Scan(
		&e.ID, &e.UserID, &e.UserName, &e.Institution, &e.Degree, &e.FieldOfStudy, &e.Location,
		&e.Description, &e.StartDate, &e.EndDate, &e.Grade, &e.InstitutionURL, &e.Order,
		&e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return e, nil
}

func (r *postgresEducationRepo) Save(ctx context.Context, e *education.Education) error {
	query := `
		INSERT INTO education (id, user_id, institution, degree, field_of_study, location, description,
			start_date, end_date, grade, institution_url, display_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query,
		e.ID, e.UserID, e.Institution, e.Degree, e.FieldOfStudy, e.Location, e.Description,
		e.StartDate, e.EndDate, e.Grade, e.InstitutionURL, e.Order,
	).Scan(&e.CreatedAt, &e.UpdatedAt)
	if err != nil {
		return mapWriteError(err, "education", e.ID.String(), nil)
	}
	return nil
}

func (r *postgresEducationRepo) Update(ctx context.Context, e *education.Education) error {
	query := `
		UPDATE education SET
			institution = $2, degree = $3, field_of_study = $4, location = $5, description = $6,
			start_date = $7, end_date = $8, grade = $9, institution_url = $10, display_order = $11,
			updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`
	err := r.db.QueryRow(ctx, query,
		e.ID, e.Institution, e.Degree, e.FieldOfStudy, e.Location, e.Description,
		e.StartDate, e.EndDate, e.Grade, e.InstitutionURL, e.Order,
	).Scan(&e.UpdatedAt)
	if err != nil {
		return mapWriteError(err, "education", e.ID.String(), nil)
	}
	return nil
}

func (r *postgresEducationRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, r.db, "education", "education", id)
}

func (r *postgresEducationRepo) FindByID(ctx context.Context, id uuid.UUID) (*education.Education, error) {
	return findOne(ctx, r.db, educationTable, sq.Eq{"ed.id": id.String()}, id.String(), scanEducation)
}

func (r *postgresEducationRepo) List(ctx context.Context, q listing.Query) ([]*education.Education, int, error) {
	return list(ctx, r.db, educationTable, q, scanEducation)
}
