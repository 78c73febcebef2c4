package persistence

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khoahotran/portfolio-api/internal/domain/listing"
	"github.com/khoahotran/portfolio-api/internal/domain/project"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

type postgresProjectRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresProjectRepo(db *pgxpool.Pool, logger logger.Logger) project.Repository {
	return &postgresProjectRepo{db: db, logger: logger}
}

var projectTable = tableSpec{
	resource: "project",
	from:     "projects p JOIN users u ON u.id = p.user_id",
	columns: []string{
		"p.id", "p.user_id", "u.username", "p.title", "p.slug", "p.description", "p.short_description",
		"p.image", "p.project_url", "p.github_url", "p.demo_url", "p.tags", "p.technologies",
		"p.start_date", "p.end_date", "p.is_featured", "p.is_published", "p.display_order",
		"p.created_at", "p.updated_at",
	},
	search: []string{"p.title", "p.description", "p.tags", "p.technologies"},
	filters: map[string]string{
		"is_featured":  "p.is_featured",
		"is_published": "p.is_published",
		"user":         "p.user_id",
	},
	orderings: map[string]string{
		"created_at": "p.created_at",
		"start_date": "p.start_date",
		"order":      "p.display_order",
		"title":      "p.title",
	},
	defaultOrder: []string{"p.is_featured DESC", "p.display_order ASC", "p.start_date DESC"},
	idColumn:     "p.id",
}

func scanProject(row pgx.Row) (*project.Project, error) {
	p := &project.Project{}
	err := row.Scan(
		&p.ID, &p.UserID, &p.UserName, &p.Title, &p.Slug, &p.Description, &p.ShortDescription,
		&p.Image, &p.ProjectURL, &p.GithubURL, &p.DemoURL, &p.Tags, &p.Technologies,
		&p.StartDate, &p.EndDate, &p.IsFeatured, &p.IsPublished, &p.Order,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func projectUniques(p *project.Project) map[string]uniqueField {
	return map[string]uniqueField{"projects_slug_key": {field: "slug", value: p.Slug}}
}

func (r *postgresProjectRepo) Save(ctx context.Context, p *project.Project) error {
	query := `
		INSERT INTO projects (id, user_id, title, slug, description, short_description, image, project_url,
			github_url, demo_url, tags, technologies, start_date, end_date, is_featured, is_published, display_order)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query,
		p.ID, p.UserID, p.Title, p.Slug, p.Description, p.ShortDescription, p.Image, p.ProjectURL,
		p.GithubURL, p.DemoURL, p.Tags, p.Technologies, p.StartDate, p.EndDate, p.IsFeatured, p.IsPublished, p.Order,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return mapWriteError(err, "project", p.Slug, projectUniques(p))
	}
	return nil
}

func (r *postgresProjectRepo) Update(ctx context.Context, p *project.Project) error {
	query := `
		UPDATE projects SET
			title = $2, slug = $3, description = $4, short_description = $5, image = $6, project_url = $7,
			github_url = $8, demo_url = $9, tags = $10, technologies = $11, start_date = $12, end_date = $13,
			is_featured = $14, is_published = $15, display_order = $16, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`
	err := r.db.QueryRow(ctx, query,
		p.ID, p.Title, p.Slug, p.Description, p.ShortDescription, p.Image, p.ProjectURL,
		p.GithubURL, p.DemoURL, p.Tags, p.Technologies, p.StartDate, p.EndDate,
		p.IsFeatured, p.IsPublished, p.Order,
	).Scan(&p.UpdatedAt)
	if err != nil {
		return mapWriteError(err, "project", p.ID.String(), projectUniques(p))
	}
	return nil
}

func (r *postgresProjectRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, r.db, "projects", "project", id)
}

func (r *postgresProjectRepo) FindBySlug(ctx context.Context, slug string) (*project.Project, error) {
	return findOne(ctx, r.db, projectTable, sq.Eq{"p.slug": slug}, slug, scanProject)
}

func (r *postgresProjectRepo) List(ctx context.Context, q listing.Query) ([]*project.Project, int, error) {
	return list(ctx, r.db, projectTable, q, scanProject)
}
