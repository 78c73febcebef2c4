package blog

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-api/internal/application/service"
	"github.com/khoahotran/portfolio-api/internal/application/usecase/access"
	"github.com/khoahotran/portfolio-api/internal/domain/blog"
	"github.com/khoahotran/portfolio-api/internal/domain/listing"
	"github.com/khoahotran/portfolio-api/internal/domain/user"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
	"github.com/khoahotran/portfolio-api/pkg/metrics"
)

const resource = "blog post"

var tracer = otel.Tracer("blog_usecase")

type BlogUseCase struct {
	repo     blog.Repository
	events   service.EventPublisher
	uploader service.Uploader
	folder   string
	logger   logger.Logger
	now      func() time.Time
}

func NewBlogUseCase(r blog.Repository, events service.EventPublisher, uploader service.Uploader, folder string, log logger.Logger) *BlogUseCase {
	return &BlogUseCase{
		repo:     r,
		events:   events,
		uploader: uploader,
		folder:   folder,
		logger:   log,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

func visible(p *user.Principal, q listing.Query) listing.Query {
	if !p.Authenticated() {
		return q.With("status", string(blog.StatusPublished))
	}
	return q
}

func (uc *BlogUseCase) List(ctx context.Context, p *user.Principal, q listing.Query) ([]*blog.Post, int, error) {
	ctx, span := tracer.Start(ctx, "List")
	defer span.End()

	return uc.repo.List(ctx, visible(p, q))
}

// Featured returns featured posts that are published, whoever asks.
func (uc *BlogUseCase) Featured(ctx context.Context, p *user.Principal) ([]*blog.Post, error) {
	ctx, span := tracer.Start(ctx, "Featured")
	defer span.End()

	q := listing.Query{}.With("is_featured", true).With("status", string(blog.StatusPublished))
	items, _, err := uc.repo.List(ctx, q)
	return items, err
}

// Latest returns up to limit published posts, newest first.
func (uc *BlogUseCase) Latest(ctx context.Context, limit int) ([]*blog.Post, error) {
	ctx, span := tracer.Start(ctx, "Latest")
	defer span.End()

	q := listing.Query{Limit: limit}.With("status", string(blog.StatusPublished))
	items, _, err := uc.repo.List(ctx, q)
	return items, err
}

func (uc *BlogUseCase) Get(ctx context.Context, p *user.Principal, slug string) (*blog.Post, error) {
	ctx, span := tracer.Start(ctx, "Get")
	defer span.End()
	span.SetAttributes(attribute.String("slug", slug))

	post, err := uc.repo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !p.Authenticated() && !post.IsPublished() {
		return nil, apperror.NewNotFound(resource, slug)
	}
	return post, nil
}

// IncrementViews adds one view to a visible post. Anonymous callers are allowed.
func (uc *BlogUseCase) IncrementViews(ctx context.Context, p *user.Principal, slug string) (int, error) {
	ctx, span := tracer.Start(ctx, "IncrementViews")
	defer span.End()
	span.SetAttributes(attribute.String("slug", slug))

	views, err := uc.repo.IncrementViews(ctx, slug, !p.Authenticated())
	if err != nil {
		return 0, err
	}
	metrics.BlogViewsIncrementedTotal.Inc()
	return views, nil
}

func (uc *BlogUseCase) Create(ctx context.Context, p *user.Principal, post *blog.Post) (*blog.Post, error) {
	ctx, span := tracer.Start(ctx, "Create")
	defer span.End()

	if err := access.RequireAuthenticated(p); err != nil {
		return nil, err
	}

	post.ID = uuid.New()
	post.AuthorID = p.UserID
	post.AuthorName = p.Username
	post.ViewsCount = 0
	post.Normalize(uc.now())
	if err := post.Validate(); err != nil {
		return nil, apperror.NewValidationFromError(err)
	}
	if err := uc.repo.Save(ctx, post); err != nil {
		span.RecordError(err)
		return nil, err
	}

	uc.announce(ctx, service.EventCreated, post, p)
	return post, nil
}

func (uc *BlogUseCase) Update(ctx context.Context, p *user.Principal, slug string, apply func(*blog.Post) error) (*blog.Post, error) {
	ctx, span := tracer.Start(ctx, "Update")
	defer span.End()

	if err := access.RequireAuthenticated(p); err != nil {
		return nil, err
	}
	post, err := uc.repo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if err := access.RequireOwner(p, post.AuthorID, resource); err != nil {
		return nil, err
	}

	wasPublished := post.IsPublished()
	id, author, authorName, views, createdAt := post.ID, post.AuthorID, post.AuthorName, post.ViewsCount, post.CreatedAt
	if err := apply(post); err != nil {
		return nil, err
	}
	post.ID, post.AuthorID, post.AuthorName, post.ViewsCount, post.CreatedAt = id, author, authorName, views, createdAt

	post.Normalize(uc.now())
	if err := post.Validate(); err != nil {
		return nil, apperror.NewValidationFromError(err)
	}
	if err := uc.repo.Update(ctx, post); err != nil {
		span.RecordError(err)
		return nil, err
	}

	evType := service.EventUpdated
	if post.IsPublished() && !wasPublished {
		evType = service.EventPublished
	}
	uc.announce(ctx, evType, post, p)
	return post, nil
}

func (uc *BlogUseCase) Delete(ctx context.Context, p *user.Principal, slug string) error {
	ctx, span := tracer.Start(ctx, "Delete")
	defer span.End()

	if err := access.RequireAuthenticated(p); err != nil {
		return err
	}
	post, err := uc.repo.FindBySlug(ctx, slug)
	if err != nil {
		return err
	}
	if err := access.RequireOwner(p, post.AuthorID, resource); err != nil {
		return err
	}
	if err := uc.repo.Delete(ctx, post.ID); err != nil {
		return err
	}

	uc.announce(ctx, service.EventDeleted, post, p)
	return nil
}

func (uc *BlogUseCase) SetFeaturedImage(ctx context.Context, p *user.Principal, slug string, file io.Reader) (*blog.Post, error) {
	ctx, span := tracer.Start(ctx, "SetFeaturedImage")
	defer span.End()

	if uc.uploader == nil {
		return nil, apperror.NewUnavailable("media storage is not configured", nil)
	}

	return uc.Update(ctx, p, slug, func(post *blog.Post) error {
		publicID := post.ID.String() + "-" + uc.now().Format("20060102150405")
		url, err := uc.uploader.Upload(ctx, file, uc.folder+"/blog", publicID)
		if err != nil {
			uc.logger.Error("Failed to upload featured image", err, zap.String("post_id", post.ID.String()))
			return apperror.NewInternal("failed to upload image", err)
		}
		post.FeaturedImage = url
		return nil
	})
}

func (uc *BlogUseCase) announce(ctx context.Context, t service.EventType, post *blog.Post, p *user.Principal) {
	service.Announce(ctx, uc.events, uc.logger, service.ContentEvent{
		Type: t, Resource: resource, ID: post.ID, Key: post.Slug, ActorID: p.UserID,
	})
}
