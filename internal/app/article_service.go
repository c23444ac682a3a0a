package app

import (
	"context"
	"errors"
	"strings"

	"blogctl/internal/domain"
)

var (
	// ErrTitleRequired indicates an article was submitted without a title.
	ErrTitleRequired = errors.New("title is required")
	// ErrContentRequired indicates an article or comment had no content.
	ErrContentRequired = errors.New("content is required")
)

// ArticleService wraps the article and comment endpoints with input
// normalization. Everything else about articles is the backend's business.
type ArticleService struct {
	articles domain.ArticleAPI
	comments domain.CommentAPI
}

// NewArticleService creates an article service over the given endpoints.
func NewArticleService(articles domain.ArticleAPI, comments domain.CommentAPI) *ArticleService {
	return &ArticleService{articles: articles, comments: comments}
}

// List fetches articles, optionally filtered by a search term and page.
func (s *ArticleService) List(ctx context.Context, q domain.ArticleQuery) ([]domain.Article, error) {
	q.Search = strings.TrimSpace(q.Search)
	return s.articles.List(ctx, q)
}

// Get fetches one article.
func (s *ArticleService) Get(ctx context.Context, id int64) (*domain.Article, error) {
	return s.articles.Get(ctx, id)
}

// Create publishes a new article after trimming and validating the inputs.
func (s *ArticleService) Create(ctx context.Context, title, content string) (*domain.Article, error) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	if title == "" {
		return nil, ErrTitleRequired
	}
	if content == "" {
		return nil, ErrContentRequired
	}
	return s.articles.Create(ctx, title, content)
}

// Update replaces an article's title and content.
func (s *ArticleService) Update(ctx context.Context, id int64, title, content string) (*domain.Article, error) {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)
	if title == "" {
		return nil, ErrTitleRequired
	}
	if content == "" {
		return nil, ErrContentRequired
	}
	return s.articles.Update(ctx, id, title, content)
}

// Delete removes an article.
func (s *ArticleService) Delete(ctx context.Context, id int64) error {
	return s.articles.Delete(ctx, id)
}

// Comments fetches the comments under an article.
func (s *ArticleService) Comments(ctx context.Context, articleID int64) ([]domain.Comment, error) {
	return s.comments.ListForArticle(ctx, articleID)
}

// AddComment posts a comment under an article.
func (s *ArticleService) AddComment(ctx context.Context, articleID int64, content string) (*domain.Comment, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, ErrContentRequired
	}
	return s.comments.CreateComment(ctx, articleID, content)
}
