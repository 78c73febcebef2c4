package project

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
	"github.com/khoahotran/portfolio-api/internal/domain/listing"
	"github.com/khoahotran/portfolio-api/internal/domain/project"
	"github.com/khoahotran/portfolio-api/internal/domain/user"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

const resource = "project"

var tracer = otel.Tracer("project_usecase")

type ProjectUseCase struct {
	repo     project.Repository
	events   service.EventPublisher
	uploader service.Uploader
	folder   string
	logger   logger.Logger
}

// NewProjectUseCase wires the project operations. uploader may be nil, in which
// case image uploads report the media store as unavailable.
func NewProjectUseCase(r project.Repository, events service.EventPublisher, uploader service.Uploader, folder string, log logger.Logger) *ProjectUseCase {
	return &ProjectUseCase{repo: r, events: events, uploader: uploader, folder: folder, logger: log}
}

// visible narrows q to published projects for anonymous callers.
func visible(p *user.Principal, q listing.Query) listing.Query {
	if !p.Authenticated() {
		return q.With("is_published", true)
	}
	return q
}

func (uc *ProjectUseCase) List(ctx context.Context, p *user.Principal, q listing.Query) ([]*project.Project, int, error) {
	ctx, span := tracer.Start(ctx, "List")
	defer span.End()

	return uc.repo.List(ctx, visible(p, q))
}

// Featured returns every featured, published project.
func (uc *ProjectUseCase) Featured(ctx context.Context, p *user.Principal) ([]*project.Project, error) {
	ctx, span := tracer.Start(ctx, "Featured")
	defer span.End()

	q := listing.Query{}.With("is_featured", true).With("is_published", true)
	items, _, err := uc.repo.List(ctx, q)
	return items, err
}

func (uc *ProjectUseCase) Get(ctx context.Context, p *user.Principal, slug string) (*project.Project, error) {
	ctx, span := tracer.Start(ctx, "Get")
	defer span.End()
	span.SetAttributes(attribute.String("slug", slug))

	pr, err := uc.repo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if !p.Authenticated() && !pr.IsPublished {
		return nil, apperror.NewNotFound(resource, slug)
	}
	return pr, nil
}

func (uc *ProjectUseCase) Create(ctx context.Context, p *user.Principal, pr *project.Project) (*project.Project, error) {
	ctx, span := tracer.Start(ctx, "Create")
	defer span.End()

	if err := access.RequireAuthenticated(p); err != nil {
		return nil, err
	}

	pr.ID = uuid.New()
	pr.UserID = p.UserID
	pr.UserName = p.Username
	pr.Normalize()
	if err := pr.Validate(); err != nil {
		return nil, apperror.NewValidationFromError(err)
	}
	if err := uc.repo.Save(ctx, pr); err != nil {
		span.RecordError(err)
		return nil, err
	}

	service.Announce(ctx, uc.events, uc.logger, service.ContentEvent{
		Type: service.EventCreated, Resource: resource, ID: pr.ID, Key: pr.Slug, ActorID: p.UserID,
	})
	return pr, nil
}

// Update loads the project, checks ownership and lets apply overwrite the
// writable fields before the result is validated and stored.
func (uc *ProjectUseCase) Update(ctx context.Context, p *user.Principal, slug string, apply func(*project.Project) error) (*project.Project, error) {
	ctx, span := tracer.Start(ctx, "Update")
	defer span.End()

	if err := access.RequireAuthenticated(p); err != nil {
		return nil, err
	}
	pr, err := uc.repo.FindBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	if err := access.RequireOwner(p, pr.UserID, resource); err != nil {
		return nil, err
	}

	id, owner, ownerName, createdAt := pr.ID, pr.UserID, pr.UserName, pr.CreatedAt
	if err := apply(pr); err != nil {
		return nil, err
	}
	pr.ID, pr.UserID, pr.UserName, pr.CreatedAt = id, owner, ownerName, createdAt

	pr.Normalize()
	if err := pr.Validate(); err != nil {
		return nil, apperror.NewValidationFromError(err)
	}
	if err := uc.repo.Update(ctx, pr); err != nil {
		span.RecordError(err)
		return nil, err
	}

	service.Announce(ctx, uc.events, uc.logger, service.ContentEvent{
		Type: service.EventUpdated, Resource: resource, ID: pr.ID, Key: pr.Slug, ActorID: p.UserID,
	})
	return pr, nil
}

func (uc *ProjectUseCase) Delete(ctx context.Context, p *user.Principal, slug string) error {
	ctx, span := tracer.Start(ctx, "Delete")
	defer span.End()

	if err := access.RequireAuthenticated(p); err != nil {
		return err
	}
	pr, err := uc.repo.FindBySlug(ctx, slug)
	if err != nil {
		return err
	}
	if err := access.RequireOwner(p, pr.UserID, resource); err != nil {
		return err
	}
	if err := uc.repo.Delete(ctx, pr.ID); err != nil {
		return err
	}

	service.Announce(ctx, uc.events, uc.logger, service.ContentEvent{
		Type: service.EventDeleted, Resource: resource, ID: pr.ID, Key: pr.Slug, ActorID: p.UserID,
	})
	return nil
}

// SetImage uploads file as the project's cover image.
func (uc *ProjectUseCase) SetImage(ctx context.Context, p *user.Principal, slug string, file io.Reader) (*project.Project, error) {
	ctx, span := tracer.Start(ctx, "SetImage")
	defer span.End()

	if uc.uploader == nil {
		return nil, apperror.NewUnavailable("media storage is not configured", nil)
	}

	return uc.Update(ctx, p, slug, func(pr *project.Project) error {
		publicID := pr.ID.String() + "-" + time.Now().UTC().Format("20060102150405")
		url, err := uc.uploader.Upload(ctx, file, uc.folder+"/projects", publicID)
		if err != nil {
			uc.logger.Error("Failed to upload project image", err, zap.String("project_id", pr.ID.String()))
			return apperror.NewInternal("failed to upload image", err)
		}
		pr.Image = url
		return nil
	})
}
