package education

import (
	"context"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"

	"github.com/khoahotran/portfolio-api/internal/application/service"
	"github.com/khoahotran/portfolio-api/internal/application/usecase/access"
	"github.com/khoahotran/portfolio-api/internal/domain/education"
	"github.com/khoahotran/portfolio-api/internal/domain/listing"
	"github.com/khoahotran/portfolio-api/internal/domain/user"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

const resource = "education"

var tracer = otel.Tracer("education_usecase")

type EducationUseCase struct {
	repo   education.Repository
	events service.EventPublisher
	logger logger.Logger
}

func NewEducationUseCase(r education.Repository, events service.EventPublisher, log logger.Logger) *EducationUseCase {
	return &EducationUseCase{repo: r, events: events, logger: log}
}

func (uc *EducationUseCase) List(ctx context.Context, p *user.Principal, q listing.Query) ([]*education.Education, int, error) {
	ctx, span := tracer.Start(ctx, "List")
	defer span.End()

	return uc.repo.List(ctx, q)
}

func (uc *EducationUseCase) Get(ctx context.Context, p *user.Principal, id uuid.UUID) (*education.Education, error) {
	ctx, span := tracer.Start(ctx, "Get")
	defer span.End()

	return uc.repo.FindByID(ctx, id)
}

func (uc *EducationUseCase) Create(ctx context.Context, p *user.Principal, e *education.Education) (*education.Education, error) {
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

func (uc *EducationUseCase) Update(ctx context.Context, p *user.Principal, id uuid.UUID, apply func(*education.Education) error) (*education.Education, error) {
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

func (uc *EducationUseCase) Delete(ctx context.Context, p *user.Principal, id uuid.UUID) error {
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
