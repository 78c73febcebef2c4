package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	healthUC "github.com/khoahotran/portfolio-api/internal/application/usecase/health"
)

type HealthHandler struct {
	healthUseCase *healthUC.HealthUseCase
}

func NewHealthHandler(uc *healthUC.HealthUseCase) *HealthHandler {
	return &HealthHandler{healthUseCase: uc}
}

func (h *HealthHandler) Check(c *gin.Context) {
	report := h.healthUseCase.Check(c.Request.Context())

	status := http.StatusOK
	if !report.Healthy() {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, report)
}
