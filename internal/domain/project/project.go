package project

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/khoahotran/portfolio-api/internal/domain/listing"
	"github.com/khoahotran/portfolio-api/internal/domain/rules"
	"github.com/khoahotran/portfolio-api/pkg/commalist"
)

type Project struct {
	ID               uuid.UUID  `json:"id"`
	UserID           uuid.UUID  `json:"user"`
	UserName         string     `json:"user_name"`
	Title            string     `json:"title"`
	Slug             string     `json:"slug"`
	Description      string     `json:"description"`
	ShortDescription string     `json:"short_description"`
	Image            string     `json:"image"`
	ProjectURL       string     `json:"project_url"`
	GithubURL        string     `json:"github_url"`
	DemoURL          string     `json:"demo_url"`
	Tags             string     `json:"tags"`
	Technologies     string     `json:"technologies"`
	StartDate        *time.Time `json:"start_date"`
	EndDate          *time.Time `json:"end_date"`
	IsFeatured       bool       `json:"is_featured"`
	IsPublished      bool       `json:"is_published"`
	Order            int        `json:"order"`
	CreatedAt        time.Time  `json:"created_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

func (p *Project) TagList() []string {
	return commalist.Split(p.Tags)
}

func (p *Project) TechnologyList() []string {
	return commalist.Split(p.Technologies)
}

// Normalize lower-cases the slug, deriving it from the title when blank.
func (p *Project) Normalize() {
	p.Title = strings.TrimSpace(p.Title)
	p.Slug = rules.NormalizeSlug(p.Slug, p.Title)
}

func (p *Project) Validate() error {
	var errs rules.Errors
	errs.Add(rules.Required("title", p.Title))
	errs.Add(rules.MaxLength("title", p.Title, 200))
	errs.Add(rules.Slug(p.Slug))
	errs.Add(rules.MaxLength("slug", p.Slug, 250))
	errs.Add(rules.Required("description", p.Description))
	errs.Add(rules.MaxLength("short_description", p.ShortDescription, 300))
	errs.Add(rules.Required("tags", p.Tags))
	errs.Add(rules.MaxLength("tags", p.Tags, 500))
	errs.Add(rules.Required("technologies", p.Technologies))
	errs.Add(rules.MaxLength("technologies", p.Technologies, 500))
	errs.Add(rules.URL("project_url", p.ProjectURL))
	errs.Add(rules.URL("github_url", p.GithubURL))
	errs.Add(rules.URL("demo_url", p.DemoURL))
	return errs.Err()
}

var ListSpec = listing.Spec{
	Filters: map[string]listing.FieldKind{
		"is_featured":  listing.Bool,
		"is_published": listing.Bool,
		"user":         listing.UUID,
	},
	Orderings: []string{"created_at", "start_date", "order", "title"},
}

type Repository interface {
	Save(ctx context.Context, p *Project) error
	Update(ctx context.Context, p *Project) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindBySlug(ctx context.Context, slug string) (*Project, error)
	List(ctx context.Context, q listing.Query) ([]*Project, int, error)
}
