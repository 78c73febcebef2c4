package blog

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gorilla/feeds"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-api/internal/application/service"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

const (
	feedSize     = 20
	feedCacheTTL = 15 * time.Minute
)

type RSSUseCase struct {
	blog    *BlogUseCase
	cache   service.FeedCache
	title   string
	baseURL string
	logger  logger.Logger
}

// NewRSSUseCase builds the feed generator. cache may be nil.
func NewRSSUseCase(b *BlogUseCase, cache service.FeedCache, title, baseURL string, log logger.Logger) *RSSUseCase {
	return &RSSUseCase{
		blog:    b,
		cache:   cache,
		title:   title,
		baseURL: strings.TrimRight(baseURL, "/"),
		logger:  log,
	}
}

// Render returns the RSS 2.0 document, served from the cache when one is
// configured and warm. Cache failures fall through to a fresh build.
func (uc *RSSUseCase) Render(ctx context.Context) (string, error) {
	if uc.cache != nil {
		doc, ok, err := uc.cache.Get(ctx)
		if err != nil {
			uc.logger.Warn("Failed to read cached RSS feed", zap.Error(err))
		} else if ok {
			return doc, nil
		}
	}

	feed, err := uc.Execute(ctx)
	if err != nil {
		return "", err
	}
	doc, err := feed.ToRss()
	if err != nil {
		return "", fmt.Errorf("render rss: %w", err)
	}

	if uc.cache != nil {
		if err := uc.cache.Set(ctx, doc, feedCacheTTL); err != nil {
			uc.logger.Warn("Failed to cache RSS feed", zap.Error(err))
		}
	}
	return doc, nil
}

func (uc *RSSUseCase) Execute(ctx context.Context) (*feeds.Feed, error) {
	posts, err := uc.blog.Latest(ctx, feedSize)
	if err != nil {
		uc.logger.Error("Failed to list published posts for RSS", err)
		return nil, err
	}

	feed := &feeds.Feed{
		Title:       uc.title,
		Link:        &feeds.Link{Href: uc.baseURL + "/blog"},
		Description: "Latest published posts.",
		Created:     time.Now().UTC(),
	}

	for _, p := range posts {
		item := &feeds.Item{
			Id:          p.ID.String(),
			Title:       p.Title,
			Link:        &feeds.Link{Href: fmt.Sprintf("%s/blog/%s", uc.baseURL, p.Slug)},
			Description: p.Excerpt,
			Author:      &feeds.Author{Name: p.AuthorName},
			Created:     p.CreatedAt,
			Updated:     p.UpdatedAt,
		}
		if p.PublishedAt != nil {
			item.Created = *p.PublishedAt
		}
		feed.Items = append(feed.Items, item)
	}

	uc.logger.Debug("RSS feed generated", zap.Int("item_count", len(feed.Items)))
	return feed, nil
}
