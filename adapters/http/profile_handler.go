package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	profileUC "github.com/khoahotran/portfolio-api/internal/application/usecase/profile"
	"github.com/khoahotran/portfolio-api/internal/domain/profile"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

type ProfileHandler struct {
	profileUseCase *profileUC.ProfileUseCase
	logger         logger.Logger
}

func NewProfileHandler(uc *profileUC.ProfileUseCase, log logger.Logger) *ProfileHandler {
	return &ProfileHandler{profileUseCase: uc, logger: log}
}

func (h *ProfileHandler) ListProfiles(c *gin.Context) {
	q, window, err := parseListQuery(c, profile.ListSpec)
	if err != nil {
		c.Error(err)
		return
	}

	items, total, err := h.profileUseCase.List(c.Request.Context(), PrincipalFromGinContext(c), q)
	if err != nil {
		c.Error(err)
		return
	}
	respondPage(c, mapSlice(items, ToProfileSummaryDTO), total, window)
}

func (h *ProfileHandler) GetProfile(c *gin.Context) {
	id, err := parseID(c, "profile")
	if err != nil {
		c.Error(err)
		return
	}
	p, err := h.profileUseCase.Get(c.Request.Context(), PrincipalFromGinContext(c), id)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToProfileDTO(p))
}

func (h *ProfileHandler) CreateProfile(c *gin.Context) {
	req := newProfileRequest()
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindingError(err))
		return
	}

	var p profile.Profile
	req.apply(&p)

	created, err := h.profileUseCase.Create(c.Request.Context(), PrincipalFromGinContext(c), &p)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, ToProfileDTO(created))
}

func (h *ProfileHandler) UpdateProfile(c *gin.Context) {
	h.update(c, false)
}

func (h *ProfileHandler) PatchProfile(c *gin.Context) {
	h.update(c, true)
}

func (h *ProfileHandler) update(c *gin.Context, partial bool) {
	id, err := parseID(c, "profile")
	if err != nil {
		c.Error(err)
		return
	}
	p, err := h.profileUseCase.Update(c.Request.Context(), PrincipalFromGinContext(c), id, func(p *profile.Profile) error {
		req := newProfileRequest()
		if partial {
			req = profileRequestFrom(p)
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			return bindingError(err)
		}
		req.apply(p)
		return nil
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToProfileDTO(p))
}

func (h *ProfileHandler) DeleteProfile(c *gin.Context) {
	id, err := parseID(c, "profile")
	if err != nil {
		c.Error(err)
		return
	}
	if err := h.profileUseCase.Delete(c.Request.Context(), PrincipalFromGinContext(c), id); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ProfileHandler) UploadPhoto(c *gin.Context) {
	id, err := parseID(c, "profile")
	if err != nil {
		c.Error(err)
		return
	}
	file, closeFile, err := formFile(c)
	if err != nil {
		c.Error(err)
		return
	}
	defer closeFile()

	p, err := h.profileUseCase.SetPhoto(c.Request.Context(), PrincipalFromGinContext(c), id, file)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToProfileDTO(p))
}
