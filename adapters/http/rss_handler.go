package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	blogUC "github.com/khoahotran/portfolio-api/internal/application/usecase/blog"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

type RSSHandler struct {
	rssUseCase *blogUC.RSSUseCase
	logger     logger.Logger
}

func NewRSSHandler(uc *blogUC.RSSUseCase, log logger.Logger) *RSSHandler {
	return &RSSHandler{
		rssUseCase: uc,
		logger:     log,
	}
}

func (h *RSSHandler) GenerateRSS(c *gin.Context) {
	doc, err := h.rssUseCase.Render(c.Request.Context())
	if err != nil {
		c.Error(apperror.NewInternal("failed to generate RSS feed", err))
		return
	}

	c.Data(http.StatusOK, "application/rss+xml; charset=utf-8", []byte(doc))
}
