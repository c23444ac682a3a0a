package app

import (
	"context"
	"errors"
	"testing"

	"blogctl/internal/domain"
)

type mockArticleAPI struct {
	listFn   func(ctx context.Context, q domain.ArticleQuery) ([]domain.Article, error)
	createFn func(ctx context.Context, title, content string) (*domain.Article, error)
	updateFn func(ctx context.Context, id int64, title, content string) (*domain.Article, error)
}

func (m *mockArticleAPI) List(ctx context.Context, q domain.ArticleQuery) ([]domain.Article, error) {
	if m.listFn != nil {
		return m.listFn(ctx, q)
	}
	return nil, nil
}

func (m *mockArticleAPI) Get(ctx context.Context, id int64) (*domain.Article, error) {
	return &domain.Article{ID: id}, nil
}

func (m *mockArticleAPI) Create(ctx context.Context, title, content string) (*domain.Article, error) {
	if m.createFn != nil {
		return m.createFn(ctx, title, content)
	}
	return &domain.Article{ID: 1, Title: title, Content: content}, nil
}

func (m *mockArticleAPI) Update(ctx context.Context, id int64, title, content string) (*domain.Article, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, title, content)
	}
	return &domain.Article{ID: id, Title: title, Content: content}, nil
}

func (m *mockArticleAPI) Delete(ctx context.Context, id int64) error { return nil }

type mockCommentAPI struct {
	createFn func(ctx context.Context, articleID int64, content string) (*domain.Comment, error)
}

func (m *mockCommentAPI) ListForArticle(ctx context.Context, articleID int64) ([]domain.Comment, error) {
	return nil, nil
}

func (m *mockCommentAPI) CreateComment(ctx context.Context, articleID int64, content string) (*domain.Comment, error) {
	if m.createFn != nil {
		return m.createFn(ctx, articleID, content)
	}
	return &domain.Comment{ID: 1, Article: articleID, Content: content}, nil
}

func TestArticleService_Create_TrimsAndValidates(t *testing.T) {
	ctx := context.Background()
	api := &mockArticleAPI{
		createFn: func(ctx context.Context, title, content string) (*domain.Article, error) {
			if title != "Hello" || content != "World" {
				t.Errorf("expected trimmed inputs, got %q/%q", title, content)
			}
			return &domain.Article{ID: 1, Title: title, Content: content}, nil
		},
	}
	svc := NewArticleService(api, &mockCommentAPI{})

	if _, err := svc.Create(ctx, "  Hello  ", "\nWorld\n"); err != nil {
		t.Fatalf("create: %v", err)
	}

	if _, err := svc.Create(ctx, "   ", "body"); !errors.Is(err, ErrTitleRequired) {
		t.Errorf("expected ErrTitleRequired, got %v", err)
	}
	if _, err := svc.Create(ctx, "title", "   "); !errors.Is(err, ErrContentRequired) {
		t.Errorf("expected ErrContentRequired, got %v", err)
	}
}

func TestArticleService_Update_Validates(t *testing.T) {
	svc := NewArticleService(&mockArticleAPI{}, &mockCommentAPI{})
	if _, err := svc.Update(context.Background(), 5, "", "body"); !errors.Is(err, ErrTitleRequired) {
		t.Errorf("expected ErrTitleRequired, got %v", err)
	}
}

func TestArticleService_List_TrimsSearch(t *testing.T) {
	api := &mockArticleAPI{
		listFn: func(ctx context.Context, q domain.ArticleQuery) ([]domain.Article, error) {
			if q.Search != "go" {
				t.Errorf("expected trimmed search, got %q", q.Search)
			}
			return []domain.Article{}, nil
		},
	}
	svc := NewArticleService(api, &mockCommentAPI{})
	if _, err := svc.List(context.Background(), domain.ArticleQuery{Search: " go "}); err != nil {
		t.Fatalf("list: %v", err)
	}
}

func TestArticleService_AddComment_RequiresContent(t *testing.T) {
	svc := NewArticleService(&mockArticleAPI{}, &mockCommentAPI{})
	if _, err := svc.AddComment(context.Background(), 1, "  "); !errors.Is(err, ErrContentRequired) {
		t.Errorf("expected ErrContentRequired, got %v", err)
	}
}
