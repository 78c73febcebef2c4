package blog

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/khoahotran/portfolio-api/internal/domain/listing"
	"github.com/khoahotran/portfolio-api/internal/domain/rules"
	"github.com/khoahotran/portfolio-api/pkg/commalist"
)

type Status string

const (
	StatusDraft     Status = "draft"
	StatusPublished Status = "published"
	StatusArchived  Status = "archived"
)

var StatusLabels = map[Status]string{
	StatusDraft:     "Draft",
	StatusPublished: "Published",
	StatusArchived:  "Archived",
}

const DefaultReadTime = 5

type Post struct {
	ID              uuid.UUID  `json:"id"`
	AuthorID        uuid.UUID  `json:"author"`
	AuthorName      string     `json:"author_name"`
	Title           string     `json:"title"`
	Slug            string     `json:"slug"`
	Excerpt         string     `json:"excerpt"`
	Content         string     `json:"content"`
	FeaturedImage   string     `json:"featured_image"`
	Status          Status     `json:"status"`
	PublishedAt     *time.Time `json:"published_at"`
	Tags            string     `json:"tags"`
	ViewsCount      int        `json:"views_count"`
	ReadTime        int        `json:"read_time"`
	IsFeatured      bool       `json:"is_featured"`
	MetaDescription string     `json:"meta_description"`
	MetaKeywords    string     `json:"meta_keywords"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func (p *Post) TagList() []string {
	return commalist.Split(p.Tags)
}

func (p *Post) StatusDisplay() string {
	return StatusLabels[p.Status]
}

func (p *Post) IsPublished() bool {
	return p.Status == StatusPublished
}

// Normalize lower-cases the slug and stamps published_at the first time the
// post is published without an explicit date.
func (p *Post) Normalize(now time.Time) {
	p.Title = strings.TrimSpace(p.Title)
	p.Slug = rules.NormalizeSlug(p.Slug, p.Title)
	if p.Status == "" {
		p.Status = StatusDraft
	}
	if p.Status == StatusPublished && p.PublishedAt == nil {
		p.PublishedAt = &now
	}
}

func (p *Post) Validate() error {
	var errs rules.Errors
	errs.Add(rules.Required("title", p.Title))
	errs.Add(rules.MaxLength("title", p.Title, 200))
	errs.Add(rules.Slug(p.Slug))
	errs.Add(rules.MaxLength("slug", p.Slug, 250))
	errs.Add(rules.MaxLength("excerpt", p.Excerpt, 300))
	errs.Add(rules.Required("content", p.Content))
	errs.Add(rules.Choice("status", p.Status, StatusLabels))
	errs.Add(rules.MaxLength("tags", p.Tags, 500))
	errs.Add(rules.MaxLength("meta_description", p.MetaDescription, 160))
	errs.Add(rules.MaxLength("meta_keywords", p.MetaKeywords, 255))
	if p.ReadTime < 0 {
		errs.Add(&rules.FieldError{Field: "read_time", Kind: rules.ErrOutOfRange, Message: "Ensure this value is greater than or equal to 0."})
	}
	return errs.Err()
}

var ListSpec = listing.Spec{
	Filters: map[string]listing.FieldKind{
		"status":      listing.Text,
		"is_featured": listing.Bool,
		"author":      listing.UUID,
	},
	Orderings: []string{"created_at", "published_at", "views_count", "title"},
}

type Repository interface {
	Save(ctx context.Context, p *Post) error
	Update(ctx context.Context, p *Post) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindBySlug(ctx context.Context, slug string) (*Post, error)
	List(ctx context.Context, q listing.Query) ([]*Post, int, error)
	// IncrementViews atomically adds one view and returns the new count.
	// With publishedOnly set, posts that are not published are not found.
	IncrementViews(ctx context.Context, slug string, publishedOnly bool) (int, error)
}
