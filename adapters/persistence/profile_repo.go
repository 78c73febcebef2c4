package persistence

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khoahotran/portfolio-api/internal/domain/listing"
	"github.com/khoahotran/portfolio-api/internal/domain/profile"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

type postgresProfileRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresProfileRepo(db *pgxpool.Pool, logger logger.Logger) profile.Repository {
	return &postgresProfileRepo{db: db, logger: logger}
}

var profileTable = tableSpec{
	resource: "profile",
	from:     "profiles pr JOIN users u ON u.id = pr.user_id",
	columns: []string{
		"pr.id", "pr.user_id", "u.username", "u.email", "pr.first_name", "pr.last_name", "pr.bio",
		"pr.profile_photo", "pr.email", "pr.phone", "pr.location", "pr.linkedin_url", "pr.github_url",
		"pr.twitter_url", "pr.website_url", "pr.job_title", "pr.company", "pr.is_active",
		"pr.created_at", "pr.updated_at",
	},
	search: []string{"pr.first_name", "pr.last_name", "pr.bio", "pr.job_title", "pr.company"},
	filters: map[string]string{
		"is_active": "pr.is_active",
		"job_title": "pr.job_title",
	},
	orderings: map[string]string{
		"created_at": "pr.created_at",
		"first_name": "pr.first_name",
		"last_name":  "pr.last_name",
	},
	defaultOrder: []string{"pr.created_at DESC"},
	idColumn:     "pr.id",
}

func scanProfile(row pgx.Row) (*profile.Profile, error) {
	p := &profile.Profile{}
	err := row.Scan(
		&p.ID, &p.UserID, &p.UserName, &p.UserEmail, &p.FirstName, &p.LastName, &p.Bio,
		&p.ProfilePhoto, &p.Email, &p.Phone, &p.Location, &p.LinkedinURL, &p.GithubURL,
		&p.TwitterURL, &p.WebsiteURL, &p.JobTitle, &p.Company, &p.IsActive,
		&p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func profileUniques(p *profile.Profile) map[string]uniqueField {
	return map[string]uniqueField{"profiles_user_id_key": {field: "user", value: p.UserID.String()}}
}

func (r *postgresProfileRepo) Save(ctx context.Context, p *profile.Profile) error {
	query := `
		INSERT INTO profiles (id, user_id, first_name, last_name, bio, profile_photo, email, phone, location,
			linkedin_url, github_url, twitter_url, website_url, job_title, company, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query,
		p.ID, p.UserID, p.FirstName, p.LastName, p.Bio, p.ProfilePhoto, p.Email, p.Phone, p.Location,
		p.LinkedinURL, p.GithubURL, p.TwitterURL, p.WebsiteURL, p.JobTitle, p.Company, p.IsActive,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return mapWriteError(err, "profile", p.ID.String(), profileUniques(p))
	}
	return nil
}

func (r *postgresProfileRepo) Update(ctx context.Context, p *profile.Profile) error {
	query := `
		UPDATE profiles SET
			first_name = $2, last_name = $3, bio = $4, profile_photo = $5, email = $6, phone = $7,
			location = $8, linkedin_url = $9, github_url = $10, twitter_url = $11, website_url = $12,
			job_title = $13, company = $14, is_active = $15, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`
	err := r.db.QueryRow(ctx, query,
		p.ID, p.FirstName, p.LastName, p.Bio, p.ProfilePhoto, p.Email, p.Phone,
		p.Location, p.LinkedinURL, p.GithubURL, p.TwitterURL, p.WebsiteURL,
		p.JobTitle, p.Company, p.IsActive,
	).Scan(&p.UpdatedAt)
	if err != nil {
		return mapWriteError(err, "profile", p.ID.String(), profileUniques(p))
	}
	return nil
}

func (r *postgresProfileRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, r.db, "profiles", "profile", id)
}

func (r *postgresProfileRepo) FindByID(ctx context.Context, id uuid.UUID) (*profile.Profile, error) {
	return findOne(ctx, r.db, profileTable, sq.Eq{"pr.id": id.String()}, id.String(), scanProfile)
}

func (r *postgresProfileRepo) List(ctx context.Context, q listing.Query) ([]*profile.Profile, int, error) {
	return list(ctx, r.db, profileTable, q, scanProfile)
}
