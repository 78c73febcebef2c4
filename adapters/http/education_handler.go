package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	educationUC "github.com/khoahotran/portfolio-api/internal/application/usecase/education"
	"github.com/khoahotran/portfolio-api/internal/domain/education"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

type EducationHandler struct {
	educationUseCase *educationUC.EducationUseCase
	logger            logger.Logger
}

func NewEducationHandler(uc *educationUC.EducationUseCase, log logger.Logger) *EducationHandler {
	return &EducationHandler{educationUseCase: uc, logger: log}
}

func (h *EducationHandler) ListEducation(c *gin.Context) {
	q, window, err := parseListQuery(c, education.ListSpec)
	if err != nil {
		c.Error(err)
		return
	}

	items, total, err := h.educationUseCase.List(c.Request.Context(), PrincipalFromGinContext(c), q)
	if err != nil {
		c.Error(err)
		return
	}
	respondPage(c, mapSlice(items, ToEducationDTO), total, window)
}

func (h *EducationHandler) GetEducation(c *gin.Context) {
	id, err := parseID(c, "education")
	if err != nil {
		c.Error(err)
		return
	}
	e, err := h.educationUseCase.Get(c.Request.Context(), PrincipalFromGinContext(c), id)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToEducationDTO(e))
}

func (h *EducationHandler) CreateEducation(c *gin.Context) {
	var req EducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindingError(err))
		return
	}

	var e education.Education
	req.apply(&e)

	created, err := h.educationUseCase.Create(c.Request.Context(), PrincipalFromGinContext(c), &e)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, ToEducationDTO(created))
}

func (h *EducationHandler) UpdateEducation(c *gin.Context) {
	h.update(c, false)
}

func (h *EducationHandler) PatchEducation(c *gin.Context) {
	h.update(c, true)
}

func (h *EducationHandler) update(c *gin.Context, partial bool) {
	id, err := parseID(c, "education")
	if err != nil {
		c.Error(err)
		return
	}
	e, err := h.educationUseCase.Update(c.Request.Context(), PrincipalFromGinContext(c), id, func(e *education.Education) error {
		var req EducationRequest
		if partial {
			req = educationRequestFrom(e)
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			return bindingError(err)
		}
		req.apply(e)
		return nil
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToEducationDTO(e))
}

func (h *EducationHandler) DeleteEducation(c *gin.Context) {
	id, err := parseID(c, "education")
	if err != nil {
		c.Error(err)
		return
	}
	if err := h.educationUseCase.Delete(c.Request.Context(), PrincipalFromGinContext(c), id); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
