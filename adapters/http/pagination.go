package http

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/khoahotran/portfolio-api/internal/domain/listing"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
)

// PageResponse is the envelope every collection endpoint returns.
type PageResponse[T any] struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

type pageWindow struct {
	page int
	size int
}

// parseListQuery reads search, declared filters, ordering and the page window
// from the query string.
func parseListQuery(c *gin.Context, spec listing.Spec) (listing.Query, pageWindow, error) {
	page, size, err := listing.Page(c.Query("page"), c.Query("page_size"))
	if err != nil {
		return listing.Query{}, pageWindow{}, apperror.NewNotFound("page", c.Query("page"))
	}

	q := listing.Query{
		Search: c.Query("search"),
		Limit:  size,
		Offset: (page - 1) * size,
	}

	fields := map[string][]string{}
	for field := range spec.Filters {
		raw, ok := c.GetQuery(field)
		if !ok || raw == "" {
			continue
		}
		v, err := spec.ParseFilter(field, raw)
		if err != nil {
			fields[field] = append(fields[field], err.Error())
			continue
		}
		q = q.With(field, v)
	}
	if len(fields) > 0 {
		return listing.Query{}, pageWindow{}, apperror.NewValidation(fields)
	}

	if raw := c.Query("ordering"); raw != "" {
		q.Ordering = spec.ParseOrdering(raw)
	}
	return q, pageWindow{page: page, size: size}, nil
}

// respondPage writes the envelope, or 404 when the requested page lies past
// the last one.
func respondPage[T any](c *gin.Context, results []T, total int, w pageWindow) {
	if w.page > 1 && (w.page-1)*w.size >= total {
		c.Error(apperror.NewNotFound("page", strconv.Itoa(w.page)))
		return
	}
	if results == nil {
		results = []T{}
	}

	resp := PageResponse[T]{Count: total, Results: results}
	if w.page*w.size < total {
		next := pageURL(c, w.page+1)
		resp.Next = &next
	}
	if w.page > 1 {
		prev := pageURL(c, w.page-1)
		resp.Previous = &prev
	}
	c.JSON(http.StatusOK, resp)
}

func pageURL(c *gin.Context, page int) string {
	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	if fwd := c.GetHeader("X-Forwarded-Proto"); fwd != "" {
		scheme = fwd
	}

	values := c.Request.URL.Query()
	if page <= 1 {
		values.Del("page")
	} else {
		values.Set("page", strconv.Itoa(page))
	}

	u := url.URL{
		Scheme:   scheme,
		Host:     c.Request.Host,
		Path:     c.Request.URL.Path,
		RawQuery: values.Encode(),
	}
	return u.String()
}

// mapSlice converts entities to their wire form.
func mapSlice[E any, D any](items []E, fn func(E) D) []D {
	out := make([]D, 0, len(items))
	for _, item := range items {
		out = append(out, fn(item))
	}
	return out
}
