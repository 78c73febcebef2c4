package profile

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-api/internal/application/service"
	"github.com/khoahotran/portfolio-api/internal/application/usecase/access"
	"github.com/khoahotran/portfolio-api/internal/domain/listing"
	"github.com/khoahotran/portfolio-api/internal/domain/profile"
	"github.com/khoahotran/portfolio-api/internal/domain/user"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

const resource = "profile"

var tracer = otel.Tracer("profile_usecase")

type ProfileUseCase struct {
	repo     profile.Repository
	users    user.Repository
	events   service.EventPublisher
	uploader service.Uploader
	folder   string
	logger   logger.Logger
}

func NewProfileUseCase(r profile.Repository, users user.Repository, events service.EventPublisher, uploader service.Uploader, folder string, log logger.Logger) *ProfileUseCase {
	return &ProfileUseCase{repo: r, users: users, events: events, uploader: uploader, folder: folder, logger: log}
}

func (uc *ProfileUseCase) List(ctx context.Context, p *user.Principal, q listing.Query) ([]*profile.Profile, int, error) {
	ctx, span := tracer.Start(ctx, "List")
	defer span.End()

	return uc.repo.List(ctx, q)
}

func (uc *ProfileUseCase) Get(ctx context.Context, p *user.Principal, id uuid.UUID) (*profile.Profile, error) {
	ctx, span := tracer.Start(ctx, "Get")
	defer span.End()

	return uc.repo.FindByID(ctx, id)
}

// Create attaches a profile to the caller's account. An account holds at most one.
func (uc *ProfileUseCase) Create(ctx context.Context, p *user.Principal, pr *profile.Profile) (*profile.Profile, error) {
	ctx, span := tracer.Start(ctx, "Create")
	defer span.End()

	if err := access.RequireAuthenticated(p); err != nil {
		return nil, err
	}

	account, err := uc.users.FindByID(ctx, p.UserID)
	if err != nil {
		return nil, err
	}

	pr.ID = uuid.New()
	pr.UserID = account.ID
	pr.UserName = account.Username
	pr.UserEmail = account.Email
	pr.Normalize()
	if err := pr.Validate(); err != nil {
		return nil, apperror.NewValidationFromError(err)
	}
	if err := uc.repo.Save(ctx, pr); err != nil {
		span.RecordError(err)
		return nil, err
	}

	service.Announce(ctx, uc.events, uc.logger, service.ContentEvent{
		Type: service.EventCreated, Resource: resource, ID: pr.ID, ActorID: p.UserID,
	})
	return pr, nil
}

func (uc *ProfileUseCase) Update(ctx context.Context, p *user.Principal, id uuid.UUID, apply func(*profile.Profile) error) (*profile.Profile, error) {
	ctx, span := tracer.Start(ctx, "Update")
	defer span.End()

	if err := access.RequireAuthenticated(p); err != nil {
		return nil, err
	}
	pr, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := access.RequireOwner(p, pr.UserID, resource); err != nil {
		return nil, err
	}

	owner, ownerName, ownerEmail, createdAt := pr.UserID, pr.UserName, pr.UserEmail, pr.CreatedAt
	if err := apply(pr); err != nil {
		return nil, err
	}
	pr.ID, pr.UserID, pr.UserName, pr.UserEmail, pr.CreatedAt = id, owner, ownerName, ownerEmail, createdAt

	pr.Normalize()
	if err := pr.Validate(); err != nil {
		return nil, apperror.NewValidationFromError(err)
	}
	if err := uc.repo.Update(ctx, pr); err != nil {
		span.RecordError(err)
		return nil, err
	}

	service.Announce(ctx, uc.events, uc.logger, service.ContentEvent{
		Type: service.EventUpdated, Resource: resource, ID: pr.ID, ActorID: p.UserID,
	})
	return pr, nil
}

func (uc *ProfileUseCase) Delete(ctx context.Context, p *user.Principal, id uuid.UUID) error {
	ctx, span := tracer.Start(ctx, "Delete")
	defer span.End()

	if err := access.RequireAuthenticated(p); err != nil {
		return err
	}
	pr, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := access.RequireOwner(p, pr.UserID, resource); err != nil {
		return err
	}
	if err := uc.repo.Delete(ctx, id); err != nil {
		return err
	}

	service.Announce(ctx, uc.events, uc.logger, service.ContentEvent{
		Type: service.EventDeleted, Resource: resource, ID: id, ActorID: p.UserID,
	})
	return nil
}

func (uc *ProfileUseCase) SetPhoto(ctx context.Context, p *user.Principal, id uuid.UUID, file io.Reader) (*profile.Profile, error) {
	ctx, span := tracer.Start(ctx, "SetPhoto")
	defer span.End()

	if uc.uploader == nil {
		return nil, apperror.NewUnavailable("media storage is not configured", nil)
	}

	return uc.Update(ctx, p, id, func(pr *profile.Profile) error {
		publicID := pr.ID.String() + "-" + time.Now().UTC().Format("20060102150405")
		url, err := uc.uploader.Upload(ctx, file, uc.folder+"/profiles", publicID)
		if err != nil {
			uc.logger.Error("Failed to upload profile photo", err, zap.String("profile_id", pr.ID.String()))
			return apperror.NewInternal("failed to upload photo", err)
		}
		pr.ProfilePhoto = url
		return nil
	})
}
