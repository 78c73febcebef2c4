package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	experienceUC "github.com/khoahotran/portfolio-api/internal/application/usecase/experience"
	"github.com/khoahotran/portfolio-api/internal/domain/experience"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

type ExperienceHandler struct {
	experienceUseCase *experienceUC.ExperienceUseCase
	logger            logger.Logger
}

func NewExperienceHandler(uc *experienceUC.ExperienceUseCase, log logger.Logger) *ExperienceHandler {
	return &ExperienceHandler{experienceUseCase: uc, logger: log}
}

func (h *ExperienceHandler) ListExperiences(c *gin.Context) {
	q, window, err := parseListQuery(c, experience.ListSpec)
	if err != nil {
		c.Error(err)
		return
	}

	items, total, err := h.experienceUseCase.List(c.Request.Context(), PrincipalFromGinContext(c), q)
	if err != nil {
		c.Error(err)
		return
	}
	respondPage(c, mapSlice(items, ToExperienceDTO), total, window)
}

func (h *ExperienceHandler) CurrentExperiences(c *gin.Context) {
	items, err := h.experienceUseCase.Current(c.Request.Context(), PrincipalFromGinContext(c))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, mapSlice(items, ToExperienceDTO))
}

func (h *ExperienceHandler) GetExperience(c *gin.Context) {
	id, err := parseID(c, "experience")
	if err != nil {
		c.Error(err)
		return
	}
	e, err := h.experienceUseCase.Get(c.Request.Context(), PrincipalFromGinContext(c), id)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToExperienceDTO(e))
}

func (h *ExperienceHandler) CreateExperience(c *gin.Context) {
	var req ExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindingError(err))
		return
	}

	var e experience.Experience
	req.apply(&e)

	created, err := h.experienceUseCase.Create(c.Request.Context(), PrincipalFromGinContext(c), &e)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, ToExperienceDTO(created))
}

func (h *ExperienceHandler) UpdateExperience(c *gin.Context) {
	h.update(c, false)
}

func (h *ExperienceHandler) PatchExperience(c *gin.Context) {
	h.update(c, true)
}

func (h *ExperienceHandler) update(c *gin.Context, partial bool) {
	id, err := parseID(c, "experience")
	if err != nil {
		c.Error(err)
		return
	}
	e, err := h.experienceUseCase.Update(c.Request.Context(), PrincipalFromGinContext(c), id, func(e *experience.Experience) error {
		var req ExperienceRequest
		if partial {
			req = experienceRequestFrom(e)
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
	c.JSON(http.StatusOK, ToExperienceDTO(e))
}

func (h *ExperienceHandler) DeleteExperience(c *gin.Context) {
	id, err := parseID(c, "experience")
	if err != nil {
		c.Error(err)
		return
	}
	if err := h.experienceUseCase.Delete(c.Request.Context(), PrincipalFromGinContext(c), id); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
