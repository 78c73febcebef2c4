package persistence

import (
	"context"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/khoahotran/portfolio-api/internal/domain/blog"
	"github.com/khoahotran/portfolio-api/internal/domain/listing"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

type postgresBlogRepo struct {
	db     *pgxpool.Pool
	logger logger.Logger
}

func NewPostgresBlogRepo(db *pgxpool.Pool, logger logger.Logger) blog.Repository {
	return &postgresBlogRepo{db: db, logger: logger}
}

var blogTable = tableSpec{
	resource: "blog post",
	from:     "blog_posts b JOIN users u ON u.id = b.author_id",
	columns: []string{
		"b.id", "b.author_id", "u.username", "b.title", "b.slug", "b.excerpt", "b.content", "b.featured_image",
		"b.status", "b.published_at", "b.tags", "b.views_count", "b.read_time", "b.is_featured",
		"b.meta_description", "b.meta_keywords", "b.created_at", "b.updated_at",
	},
	search: []string{"b.title", "b.excerpt", "b.content", "b.tags"},
	filters: map[string]string{
		"status":      "b.status",
		"is_featured": "b.is_featured",
		"author":      "b.author_id",
	},
	orderings: map[string]string{
		"created_at":   "b.created_at",
		"published_at": "b.published_at",
		"views_count":  "b.views_count",
		"title":        "b.title",
	},
	defaultOrder: []string{"b.published_at DESC", "b.created_at DESC"},
	idColumn:     "b.id",
}

func scanPost(row pgx.Row) (*blog.Post, error) {
	p := &blog.Post{}
	var status string
	err := row.Scan(
		&p.ID, &p.AuthorID, &p.AuthorName, &p.Title, &p.Slug, &p.Excerpt, &p.Content, &p.FeaturedImage,
		&status, &p.PublishedAt, &p.Tags, &p.ViewsCount, &p.ReadTime, &p.IsFeatured,
		&p.MetaDescription, &p.MetaKeywords, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.Status = blog.Status(status)
	return p, nil
}

func postUniques(p *blog.Post) map[string]uniqueField {
	return map[string]uniqueField{"blog_posts_slug_key": {field: "slug", value: p.Slug}}
}

func (r *postgresBlogRepo) Save(ctx context.Context, p *blog.Post) error {
	query := `
		INSERT INTO blog_posts (id, author_id, title, slug, excerpt, content, featured_image, status, published_at,
			tags, views_count, read_time, is_featured, meta_description, meta_keywords)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING created_at, updated_at
	`
	err := r.db.QueryRow(ctx, query,
		p.ID, p.AuthorID, p.Title, p.Slug, p.Excerpt, p.Content, p.FeaturedImage, string(p.Status), p.PublishedAt,
		p.Tags, p.ViewsCount, p.ReadTime, p.IsFeatured, p.MetaDescription, p.MetaKeywords,
	).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return mapWriteError(err, "blog post", p.Slug, postUniques(p))
	}
	return nil
}

// Update leaves views_count alone; only IncrementViews changes it.
func (r *postgresBlogRepo) Update(ctx context.Context, p *blog.Post) error {
	query := `
		UPDATE blog_posts SET
			title = $2, slug = $3, excerpt = $4, content = $5, featured_image = $6, status = $7,
			published_at = $8, tags = $9, read_time = $10, is_featured = $11, meta_description = $12,
			meta_keywords = $13, updated_at = NOW()
		WHERE id = $1
		RETURNING views_count, updated_at
	`
	err := r.db.QueryRow(ctx, query,
		p.ID, p.Title, p.Slug, p.Excerpt, p.Content, p.FeaturedImage, string(p.Status),
		p.PublishedAt, p.Tags, p.ReadTime, p.IsFeatured, p.MetaDescription,
		p.MetaKeywords,
	).Scan(&p.ViewsCount, &p.UpdatedAt)
	if err != nil {
		return mapWriteError(err, "blog post", p.ID.String(), postUniques(p))
	}
	return nil
}

func (r *postgresBlogRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return deleteByID(ctx, r.db, "blog_posts", "blog post", id)
}

func (r *postgresBlogRepo) FindBySlug(ctx context.Context, slug string) (*blog.Post, error) {
	return findOne(ctx, r.db, blogTable, sq.Eq{"b.slug": slug}, slug, scanPost)
}

func (r *postgresBlogRepo) List(ctx context.Context, q listing.Query) ([]*blog.Post, int, error) {
	return list(ctx, r.db, blogTable, q, scanPost)
}

// IncrementViews is a single UPDATE so concurrent calls never lose a view.
// updated_at is left untouched.
func (r *postgresBlogRepo) IncrementViews(ctx context.Context, slug string, publishedOnly bool) (int, error) {
	builder := psql.Update("blog_posts").
		Set("views_count", sq.Expr("views_count + 1")).
		Where(sq.Eq{"slug": slug}).
		Suffix("RETURNING views_count")
	if publishedOnly {
		builder = builder.Where(sq.Eq{"status": string(blog.StatusPublished)})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, mapReadError(err, "blog post", slug)
	}

	var views int
	if err := r.db.QueryRow(ctx, query, args...).Scan(&views); err != nil {
		return 0, mapReadError(err, "blog post", slug)
	}
	return views, nil
}
