package user

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	PasswordHash string    `json:"-"`
	IsAdmin      bool      `json:"is_admin"`
	CreatedAt    time.Time `json:"created_at"`
}

// Principal is the authenticated caller of a request. A nil *Principal is an
// anonymous caller.
type Principal struct {
	UserID   uuid.UUID
	Username string
	IsAdmin  bool
}

func (p *Principal) Authenticated() bool {
	return p != nil
}

// CanModify reports whether the caller may change a record owned by ownerID.
func (p *Principal) CanModify(ownerID uuid.UUID) bool {
	if p == nil {
		return false
	}
	return p.IsAdmin || p.UserID == ownerID
}

type Repository interface {
	Save(ctx context.Context, u *User) error
	FindByUsername(ctx context.Context, username string) (*User, error)
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)
}
