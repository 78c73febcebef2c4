package access

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/khoahotran/portfolio-api/internal/domain/user"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
)

func TestRequireOwner(t *testing.T) {
	owner := uuid.New()

	assert.ErrorIs(t, RequireOwner(nil, owner, "project"), apperror.ErrUnauthorized)
	assert.ErrorIs(t, RequireOwner(&user.Principal{UserID: uuid.New()}, owner, "project"), apperror.ErrPermission)
	assert.NoError(t, RequireOwner(&user.Principal{UserID: owner}, owner, "project"))
	assert.NoError(t, RequireOwner(&user.Principal{UserID: uuid.New(), IsAdmin: true}, owner, "project"))
}
