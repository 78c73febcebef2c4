package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	blogUC "github.com/khoahotran/portfolio-api/internal/application/usecase/blog"
	"github.com/khoahotran/portfolio-api/internal/domain/blog"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

type BlogHandler struct {
	blogUseCase *blogUC.BlogUseCase
	logger      logger.Logger
}

func NewBlogHandler(uc *blogUC.BlogUseCase, log logger.Logger) *BlogHandler {
	return &BlogHandler{blogUseCase: uc, logger: log}
}

func (h *BlogHandler) ListPosts(c *gin.Context) {
	q, window, err := parseListQuery(c, blog.ListSpec)
	if err != nil {
		c.Error(err)
		return
	}

	items, total, err := h.blogUseCase.List(c.Request.Context(), PrincipalFromGinContext(c), q)
	if err != nil {
		c.Error(err)
		return
	}
	respondPage(c, mapSlice(items, ToBlogPostSummaryDTO), total, window)
}

func (h *BlogHandler) FeaturedPosts(c *gin.Context) {
	items, err := h.blogUseCase.Featured(c.Request.Context(), PrincipalFromGinContext(c))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, mapSlice(items, ToBlogPostDTO))
}

func (h *BlogHandler) GetPost(c *gin.Context) {
	post, err := h.blogUseCase.Get(c.Request.Context(), PrincipalFromGinContext(c), c.Param("slug"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToBlogPostDTO(post))
}

func (h *BlogHandler) IncrementViews(c *gin.Context) {
	views, err := h.blogUseCase.IncrementViews(c.Request.Context(), PrincipalFromGinContext(c), c.Param("slug"))
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"views_count": views})
}

func (h *BlogHandler) CreatePost(c *gin.Context) {
	req := newBlogPostRequest()
	if err := c.ShouldBindJSON(&req); err != nil {
		c.Error(bindingError(err))
		return
	}

	var post blog.Post
	req.apply(&post)

	created, err := h.blogUseCase.Create(c.Request.Context(), PrincipalFromGinContext(c), &post)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, ToBlogPostDTO(created))
}

func (h *BlogHandler) UpdatePost(c *gin.Context) {
	h.update(c, false)
}

func (h *BlogHandler) PatchPost(c *gin.Context) {
	h.update(c, true)
}

func (h *BlogHandler) update(c *gin.Context, partial bool) {
	post, err := h.blogUseCase.Update(c.Request.Context(), PrincipalFromGinContext(c), c.Param("slug"), func(post *blog.Post) error {
		req := newBlogPostRequest()
		if partial {
			req = blogPostRequestFrom(post)
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			return bindingError(err)
		}
		req.apply(post)
		return nil
	})
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToBlogPostDTO(post))
}

func (h *BlogHandler) DeletePost(c *gin.Context) {
	if err := h.blogUseCase.Delete(c.Request.Context(), PrincipalFromGinContext(c), c.Param("slug")); err != nil {
		c.Error(err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *BlogHandler) UploadFeaturedImage(c *gin.Context) {
	file, closeFile, err := formFile(c)
	if err != nil {
		c.Error(err)
		return
	}
	defer closeFile()

	post, err := h.blogUseCase.SetFeaturedImage(c.Request.Context(), PrincipalFromGinContext(c), c.Param("slug"), file)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ToBlogPostDTO(post))
}
