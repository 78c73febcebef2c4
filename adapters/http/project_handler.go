package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	projectUC "github.com/khoahotran/portfolio-api/internal/application/usecase/project"
	"github.com/khoahotran/portfolio-api/internal/domain/project"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

type ProjectHandler struct {
	projectUseCase *projectUC.ProjectUseCase
	logger         logger.Logger
}

func NewProjectHandler(uc *projectUC.ProjectUseCase, log logger.Logger) *ProjectHandler {
	return &ProjectHandler{projectUseCase: uc, logger: log}
}

func (h *ProjectHandler) ListProjects(c *gin.Context) {
	q, window, err := parseListQuery(c, project.ListSpec)
	if err != nil {
		c.Error(err)
		return
	}

	items, total, err := h.projectUseCase.List(c.Request.Context(), PrincipalFromGinContext(c), q)
	if err != nil {
		c.Error(err)
		return
	}
	respondPage(c, mapSlice(items, ToProjectSummaryDTO), total, window)
}

func (h *ProjectHandler) FeaturedProjects(c *gin.Context) {
	items, err := h.projectUseCase.Featured(c.Request.Context(), PrincipalFromGinContext(c))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, mapSlice(items, ToProjectDTO))
}

func (h *ProjectHandler) GetProject(c *gin.Context) {
	pr, err := h.projectUseCase.Get(c.Request.Context(), PrincipalFromGinContext(c), c.Param("slug"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToProjectDTO(pr))
}

func (h *ProjectHandler) CreateProject(c *gin.Context) {
	req := newProjectRequest()
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindingError(err))
		return
	}

	var pr project.Project
	req.apply(&pr)

	created, err := h.projectUseCase.Create(c.Request.Context(), PrincipalFromGinContext(c), &pr)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, ToProjectDTO(created))
}

// UpdateProject serves PUT. Fields absent from the body fall back to their
// create defaults.
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	h.update(c, false)
}

// PatchProject serves PATCH. Fields absent from the body keep their stored value.
func (h *ProjectHandler) PatchProject(c *gin.Context) {
	h.update(c, true)
}

func (h *ProjectHandler) update(c *gin.Context, partial bool) {
	pr, err := h.projectUseCase.Update(c.Request.Context(), PrincipalFromGinContext(c), c.Param("slug"), func(pr *project.Project) error {
		req := newProjectRequest()
		if partial {
			req = projectRequestFrom(pr)
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			return bindingError(err)
		}
		req.apply(pr)
		return nil
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToProjectDTO(pr))
}

func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	if err := h.projectUseCase.Delete(c.Request.Context(), PrincipalFromGinContext(c), c.Param("slug")); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *ProjectHandler) UploadImage(c *gin.Context) {
	file, closeFile, err := formFile(c)
	if err != nil {
		c.Error(err)
		return
	}
	defer closeFile()

	pr, err := h.projectUseCase.SetImage(c.Request.Context(), PrincipalFromGinContext(c), c.Param("slug"), file)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToProjectDTO(pr))
}
