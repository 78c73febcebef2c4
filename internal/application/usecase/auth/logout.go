package auth

import (
	"context"

	"github.com/khoahotran/portfolio-api/internal/application/service"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/auth"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

type LogoutUseCase struct {
	sessions service.SessionStore
	logger   logger.Logger
}

func NewLogoutUseCase(sessions service.SessionStore, log logger.Logger) *LogoutUseCase {
	return &LogoutUseCase{sessions: sessions, logger: log}
}

// Execute revokes the token described by claims for the rest of its lifetime.
func (uc *LogoutUseCase) Execute(ctx context.Context, claims *auth.CustomClaims) error {
	ctx, span := tracer.Start(ctx, "Logout")
	defer span.End()

	if claims == nil || claims.ID == "" {
		return apperror.NewAuthenticationRequired()
	}
	if uc.sessions == nil {
		return apperror.NewUnavailable("session revocation is not configured", nil)
	}
	ttl := claims.RemainingLifetime()
	if ttl <= 0 {
		return nil
	}
	if err := uc.sessions.Revoke(ctx, claims.ID, ttl); err != nil {
		span.RecordError(err)
		return apperror.NewUnavailable("session store unavailable", err)
	}
	return nil
}
