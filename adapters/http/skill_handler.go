package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	skillUC "github.com/khoahotran/portfolio-api/internal/application/usecase/skill"
	"github.com/khoahotran/portfolio-api/internal/domain/skill"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

type SkillHandler struct {
	skillUseCase *skillUC.SkillUseCase
	logger       logger.Logger
}

func NewSkillHandler(uc *skillUC.SkillUseCase, log logger.Logger) *SkillHandler {
	return &SkillHandler{skillUseCase: uc, logger: log}
}

func (h *SkillHandler) ListSkills(c *gin.Context) {
	q, window, err := parseListQuery(c, skill.ListSpec)
	if err != nil {
		c.Error(err)
		return
	}

	items, total, err := h.skillUseCase.List(c.Request.Context(), PrincipalFromGinContext(c), q)
	if err != nil {
		c.Error(err)
		return
	}
	respondPage(c, mapSlice(items, ToSkillSummaryDTO), total, window)
}

func (h *SkillHandler) FeaturedSkills(c *gin.Context) {
	items, err := h.skillUseCase.Featured(c.Request.Context(), PrincipalFromGinContext(c))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, mapSlice(items, ToSkillDTO))
}

// SkillsByCategory returns an object keyed by category label.
func (h *SkillHandler) SkillsByCategory(c *gin.Context) {
	groups, err := h.skillUseCase.ByCategory(c.Request.Context(), PrincipalFromGinContext(c))
	if err != nil {
		c.Error(err)
		return
	}

	resp := make(map[string][]SkillSummaryDTO, len(groups))
	for _, g := range groups {
		resp[g.Label] = mapSlice(g.Skills, ToSkillSummaryDTO)
	}
	c.JSON(http.StatusOK, resp)
}

func (h *SkillHandler) GetSkill(c *gin.Context) {
	id, err := parseID(c, "skill")
	if err != nil {
		c.Error(err)
		return
	}
	s, err := h.skillUseCase.Get(c.Request.Context(), PrincipalFromGinContext(c), id)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToSkillDTO(s))
}

func (h *SkillHandler) CreateSkill(c *gin.Context) {
	req := newSkillRequest()
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindingError(err))
		return
	}

	var s skill.Skill
	req.apply(&s)

	created, err := h.skillUseCase.Create(c.Request.Context(), PrincipalFromGinContext(c), &s)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, ToSkillDTO(created))
}

func (h *SkillHandler) UpdateSkill(c *gin.Context) {
	h.update(c, false)
}

func (h *SkillHandler) PatchSkill(c *gin.Context) {
	h.update(c, true)
}

func (h *SkillHandler) update(c *gin.Context, partial bool) {
	id, err := parseID(c, "skill")
	if err != nil {
		c.Error(err)
		return
	}
	s, err := h.skillUseCase.Update(c.Request.Context(), PrincipalFromGinContext(c), id, func(s *skill.Skill) error {
		req := newSkillRequest()
		if partial {
			req = skillRequestFrom(s)
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			return bindingError(err)
		}
		req.apply(s)
		return nil
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToSkillDTO(s))
}

func (h *SkillHandler) DeleteSkill(c *gin.Context) {
	id, err := parseID(c, "skill")
	if err != nil {
		c.Error(err)
		return
	}
	if err := h.skillUseCase.Delete(c.Request.Context(), PrincipalFromGinContext(c), id); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}
