package http

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/khoahotran/portfolio-api/pkg/apperror"
)

// parseID reads the :id path parameter. A malformed id cannot name any
// record, so it is reported as not found.
func parseID(c *gin.Context, resource string) (uuid.UUID, error) {
	raw := c.Param("id")
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, apperror.NewNotFound(resource, raw)
	}
	return id, nil
}
