package skill

import (
	"context"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"

	"github.com/khoahotran/portfolio-api/internal/application/service"
	"github.com/khoahotran/portfolio-api/internal/application/usecase/access"
	"github.com/khoahotran/portfolio-api/internal/domain/listing"
	"github.com/khoahotran/portfolio-api/internal/domain/skill"
	"github.com/khoahotran/portfolio-api/internal/domain/user"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

const resource = "skill"

var tracer = otel.Tracer("skill_usecase")

type SkillUseCase struct {
	repo   skill.Repository
	events service.EventPublisher
	logger logger.Logger
}

func NewSkillUseCase(r skill.Repository, events service.EventPublisher, log logger.Logger) *SkillUseCase {
	return &SkillUseCase{repo: r, events: events, logger: log}
}

func (uc *SkillUseCase) List(ctx context.Context, p *user.Principal, q listing.Query) ([]*skill.Skill, int, error) {
	ctx, span := tracer.Start(ctx, "List")
	defer span.End()

	return uc.repo.List(ctx, q)
}

// Featured returns every featured skill.
func (uc *SkillUseCase) Featured(ctx context.Context, p *user.Principal) ([]*skill.Skill, error) {
	ctx, span := tracer.Start(ctx, "Featured")
	defer span.End()

	items, _, err := uc.repo.List(ctx, listing.Query{}.With("is_featured", true))
	return items, err
}

// ByCategory groups the whole skill set by category label.
func (uc *SkillUseCase) ByCategory(ctx context.Context, p *user.Principal) ([]skill.Group, error) {
	ctx, span := tracer.Start(ctx, "ByCategory")
	defer span.End()

	items, _, err := uc.repo.List(ctx, listing.Query{})
	if err != nil {
		return nil, err
	}
	return skill.GroupByCategory(items), nil
}

func (uc *SkillUseCase) Get(ctx context.Context, p *user.Principal, id uuid.UUID) (*skill.Skill, error) {
	ctx, span := tracer.Start(ctx, "Get")
	defer span.End()

	return uc.repo.FindByID(ctx, id)
}

func (uc *SkillUseCase) Create(ctx context.Context, p *user.Principal, s *skill.Skill) (*skill.Skill, error) {
	ctx, span := tracer.Start(ctx, "Create")
	defer span.End()

	if err := access.RequireAuthenticated(p); err != nil {
		return nil, err
	}

	s.ID = uuid.New()
	s.UserID = p.UserID
	s.UserName = p.Username
	s.Normalize()
	if err := s.Validate(); err != nil {
		return nil, apperror.NewValidationFromError(err)
	}
	if err := uc.repo.Save(ctx, s); err != nil {
		span.RecordError(err)
		return nil, err
	}

	service.Announce(ctx, uc.events, uc.logger, service.ContentEvent{
		Type: service.EventCreated, Resource: resource, ID: s.ID, ActorID: p.UserID,
	})
	return s, nil
}

func (uc *SkillUseCase) Update(ctx context.Context, p *user.Principal, id uuid.UUID, apply func(*skill.Skill) error) (*skill.Skill, error) {
	ctx, span := tracer.Start(ctx, "Update")
	defer span.End()

	if err := access.RequireAuthenticated(p); err != nil {
		return nil, err
	}
	s, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := access.RequireOwner(p, s.UserID, resource); err != nil {
		return nil, err
	}

	owner, ownerName, createdAt := s.UserID, s.UserName, s.CreatedAt
	if err := apply(s); err != nil {
		return nil, err
	}
	s.ID, s.UserID, s.UserName, s.CreatedAt = id, owner, ownerName, createdAt

	s.Normalize()
	if err := s.Validate(); err != nil {
		return nil, apperror.NewValidationFromError(err)
	}
	if err := uc.repo.Update(ctx, s); err != nil {
		span.RecordError(err)
		return nil, err
	}

	service.Announce(ctx, uc.events, uc.logger, service.ContentEvent{
		Type: service.EventUpdated, Resource: resource, ID: s.ID, ActorID: p.UserID,
	})
	return s, nil
}

func (uc *SkillUseCase) Delete(ctx context.Context, p *user.Principal, id uuid.UUID) error {
	ctx, span := tracer.Start(ctx, "Delete")
	defer span.End()

	if err := access.RequireAuthenticated(p); err != nil {
		return err
	}
	s, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := access.RequireOwner(p, s.UserID, resource); err != nil {
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
