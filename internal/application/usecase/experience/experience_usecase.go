package experience

import (
	"context"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"

	"github.com/khoahotran/portfolio-api/internal/application/service"
	"github.com/khoahotran/portfolio-api/internal/application/usecase/access"
	"github.com/khoahotran/portfolio-api/internal/domain/experience"
	"github.com/khoahotran/portfolio-api/internal/domain/listing"
	"github.com/khoahotran/portfolio-api/internal/domain/user"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

const resource = "experience"

var tracer = otel.Tracer("experience_usecase")

type ExperienceUseCase struct {
	repo   experience.Repository
	events service.EventPublisher
	logger logger.Logger
}

func NewExperienceUseCase(r experience.Repository, events service.EventPublisher, log logger.Logger) *ExperienceUseCase {
	return &ExperienceUseCase{repo: r, events: events, logger: log}
}

func (uc *ExperienceUseCase) List(ctx context.Context, p *user.Principal, q listing.Query) ([]*experience.Experience, int, error) {
	ctx, span := tracer.Start(ctx, "List")
	defer span.End()

	return uc.repo.List(ctx, q)
}

// Current returns the positions still held, in default order.
func (uc *ExperienceUseCase) Current(ctx context.Context, p *user.Principal) ([]*experience.Experience, error) {
	ctx, span := tracer.Start(ctx, "Current")
	defer span.End()

	items, _, err := uc.repo.List(ctx, listing.Query{}.With("is_current", true))
	return items, err
}

func (uc *ExperienceUseCase) Get(ctx context.Context, p *user.Principal, id uuid.UUID) (*experience.Experience, error) {
	ctx, span := tracer.Start(ctx, "Get")
	defer span.End()

	return uc.repo.FindByID(ctx, id)
}

func (uc *ExperienceUseCase) Create(ctx context.Context, p *user.Principal, e *experience.Experience) (*experience.Experience, error) {
	ctx, span := tracer.Start(ctx, "Create")
	defer span.End()

	if err := access.RequireAuthenticated(p); err != nil {
		return nil, err
	}

	e.ID = uuid.New()
	e.UserID = p.UserID
	e.UserName = p.Username
	if err := e.Validate(); err != nil {
		return nil, apperror.NewValidationFromError(err)
	}
	if err := uc.repo.Save(ctx, e); err != nil {
		span.RecordError(err)
		return nil, err
	}

	service.Announce(ctx, uc.events, uc.logger, service.ContentEvent{
		Type: service.EventCreated, Resource: resource, ID: e.ID, ActorID: p.UserID,
	})
	return e, nil
}

func (uc *ExperienceUseCase) Update(ctx context.Context, p *user.Principal, id uuid.UUID, apply func(*experience.Experience) error) (*experience.Experience, error) {
	ctx, span := tracer.Start(ctx, "Update")
	defer span.End()

	if err := access.RequireAuthenticated(p); err != nil {
		return nil, err
	}
	e, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := access.RequireOwner(p, e.UserID, resource); err != nil {
		return nil, err
	}

	owner, ownerName, createdAt := e.UserID, e.UserName, e.CreatedAt
	if err := apply(e); err != nil {
		return nil, err
	}
	e.ID, e.UserID, e.UserName, e.CreatedAt = id, owner, ownerName, createdAt

	if err := e.Validate(); err != nil {
		return nil, apperror.NewValidationFromError(err)
	}
	if err := uc.repo.Update(ctx, e); err != nil {
		span.RecordError(err)
		return nil, err
	}

	service.Announce(ctx, uc.events, uc.logger, service.ContentEvent{
		Type: service.EventUpdated, Resource: resource, ID: e.ID, ActorID: p.UserID,
	})
	return e, nil
}

func (uc *ExperienceUseCase) Delete(ctx context.Context, p *user.Principal, id uuid.UUID) error {
	ctx, span := tracer.Start(ctx, "Delete")
	defer span.End()

	if err := access.RequireAuthenticated(p); err != nil {
		return err
	}
	e, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := access.RequireOwner(p, e.UserID, resource); err != nil {
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
