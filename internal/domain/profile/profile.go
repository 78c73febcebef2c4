package profile

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/khoahotran/portfolio-api/internal/domain/listing"
	"github.com/khoahotran/portfolio-api/internal/domain/rules"
)

type Profile struct {
	ID           uuid.UUID `json:"id"`
	UserID       uuid.UUID `json:"user"`
	UserName     string    `json:"user_name"`
	UserEmail    string    `json:"-"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Bio          string    `json:"bio"`
	ProfilePhoto string    `json:"profile_photo"`
	Email        string    `json:"email"`
	Phone        string    `json:"phone"`
	Location     string    `json:"location"`
	LinkedinURL  string    `json:"linkedin_url"`
	GithubURL    string    `json:"github_url"`
	TwitterURL   string    `json:"twitter_url"`
	WebsiteURL   string    `json:"website_url"`
	JobTitle     string    `json:"job_title"`
	Company      string    `json:"company"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (p *Profile) FullName() string {
	return p.FirstName + " " + p.LastName
}

func (p *Profile) Normalize() {
	p.FirstName = strings.TrimSpace(p.FirstName)
	p.LastName = strings.TrimSpace(p.LastName)
	p.Email = strings.TrimSpace(p.Email)
}

func (p *Profile) Validate() error {
	var errs rules.Errors
	errs.Add(rules.Required("first_name", p.FirstName))
	errs.Add(rules.MaxLength("first_name", p.FirstName, 100))
	errs.Add(rules.Required("last_name", p.LastName))
	errs.Add(rules.MaxLength("last_name", p.LastName, 100))
	errs.Add(rules.Email("email", p.Email))
	errs.Add(rules.MaxLength("phone", p.Phone, 20))
	errs.Add(rules.MaxLength("location", p.Location, 200))
	errs.Add(rules.MaxLength("job_title", p.JobTitle, 200))
	errs.Add(rules.MaxLength("company", p.Company, 200))
	errs.Add(rules.URL("linkedin_url", p.LinkedinURL))
	errs.Add(rules.URL("github_url", p.GithubURL))
	errs.Add(rules.URL("twitter_url", p.TwitterURL))
	errs.Add(rules.URL("website_url", p.WebsiteURL))
	return errs.Err()
}

var ListSpec = listing.Spec{
	Filters: map[string]listing.FieldKind{
		"is_active": listing.Bool,
		"job_title": listing.Text,
	},
	Orderings: []string{"created_at", "first_name", "last_name"},
}

type Repository interface {
	Save(ctx context.Context, p *Profile) error
	Update(ctx context.Context, p *Profile) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*Profile, error)
	List(ctx context.Context, q listing.Query) ([]*Profile, int, error)
}
