// Package access holds the authorization checks shared by the portfolio use cases.
package access

import (
	"github.com/google/uuid"

	"github.com/khoahotran/portfolio-api/internal/domain/user"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
)

// RequireAuthenticated rejects anonymous callers of write operations.
func RequireAuthenticated(p *user.Principal) error {
	if !p.Authenticated() {
		return apperror.NewAuthenticationRequired()
	}
	return nil
}

// RequireOwner allows the record owner and administrators through.
func RequireOwner(p *user.Principal, ownerID uuid.UUID, resource string) error {
	if err := RequireAuthenticated(p); err != nil {
		return err
	}
	if !p.CanModify(ownerID) {
		return apperror.NewPermissionDenied("only the owner may modify this " + resource)
	}
	return nil
}
