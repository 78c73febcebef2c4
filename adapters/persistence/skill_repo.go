package persistence

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khoahotran/portfolio-api/internal/domain/listing"
	"github.com/khoahotran/portfolio-api/internal/domain/skill"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

type postgresSkillRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresSkillRepo(db *pgxpool.Pool, logger logger.Logger) skill.Repository {
	return &postgresSkillRepo{db: db, logger: logger}
}

var skillTable = tableSpec{
	resource: "skill",
	from:     "skills s JOIN users u ON u.id = s.user_id",
	columns: []string{
		"s.id", "s.user_id", "u.username", "s.name", "s.category", "s.proficiency", "s.level", "s.description",
		"s.years_of_experience::float8", "s.icon", "s.display_order", "s.is_featured",
		"s.created_at", "s.updated_at",
	},
	search: []string{"s.name", "s.description"},
	filters: map[string]string{
		"category":    "s.category",
		"proficiency": "s.proficiency",
		"is_featured": "s.is_featured",
		"user":        "s.user_id",
	},
	orderings: map[string]string{
		"name":                "s.name",
		"level":               "s.level",
		"order":               "s.display_order",
		"years_of_experience": "s.years_of_experience",
	},
	defaultOrder: []string{"s.is_featured DESC", "s.category ASC", "s.display_order ASC", "s.name ASC"},
	idColumn:     "s.id",
}

func scanSkill(row pgx.Row) (*skill.Skill, error) {
	s := &skill.Skill{}
	var category, proficiency string
	err := row.Scan(
		&s.ID, &s.UserID, &s.UserName, &s.Name, &category, &proficiency, &s.Level, &s.Description,
		&s.YearsOfExperience, &s.Icon, &s.Order, &s.IsFeatured,
		&s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	s.Category = skill.Category(category)
	s.Proficiency = skill.Proficiency(proficiency)
	return s, nil
}

func skillUniques(s *skill.Skill) map[string]uniqueField {
	return map[string]uniqueField{"skills_user_id_name_key": {field: "name", value: s.Name}}
}

func (r *postgresSkillRepo) Save(ctx context.Context, s *skill.Skill) error {
	query := `
		INSERT INTO skills (id, user_id, name, category, proficiency, level, description, years_of_experience,
			icon, display_order, is_featured)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query,
		s.ID, s.UserID, s.Name, string(s.Category), string(s.Proficiency), s.Level, s.Description, s.YearsOfExperience,
		s.Icon, s.Order, s.IsFeatured,
	).Scan(&s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return mapWriteError(err, "skill", s.ID.String(), skillUniques(s))
	}
	return nil
}

func (r *postgresSkillRepo) Update(ctx context.Context, s *skill.Skill) error {
	query := `
		UPDATE skills SET
			name = $2, category = $3, proficiency = $4, level = $5, description = $6, years_of_experience = $7,
			icon = $8, display_order = $9, is_featured = $10, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`
	err := r.db.QueryRow(ctx, query,
		s.ID, s.Name, string(s.Category), string(s.Proficiency), s.Level, s.Description, s.YearsOfExperience,
		s.Icon, s.Order, s.IsFeatured,
	).Scan(&s.UpdatedAt)
	if err != nil {
		return mapWriteError(err, "skill", s.ID.String(), skillUniques(s))
	}
	return nil
}

func (r *postgresSkillRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, r.db, "skills", "skill", id)
}

func (r *postgresSkillRepo) FindByID(ctx context.Context, id uuid.UUID) (*skill.Skill, error) {
	return findOne(ctx, r.db, skillTable, sq.Eq{"s.id": id.String()}, id.String(), scanSkill)
}

func (r *postgresSkillRepo) List(ctx context.Context, q listing.Query) ([]*skill.Skill, int, error) {
	return list(ctx, r.db, skillTable, q, scanSkill)
}
