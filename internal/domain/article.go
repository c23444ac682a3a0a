package domain

import "context"

// Article is the client-side projection of a blog article.
type Article struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	Content    string `json:"content"`
	Author     string `json:"author,omitempty"`
	LikesCount int64  `json:"likes_count"`
}

// Comment is a reader comment attached to an article.
type Comment struct {
	ID        int64  `json:"id"`
	Article   int64  `json:"article"`
	Author    string `json:"author,omitempty"`
	Content   string `json:"content"`
	CreatedAt string `json:"created_at,omitempty"`
}

// Like is a like-record: one server-side row binding a user to an article
// they liked. Its ID is distinct from the article id and is what the delete
// endpoint takes.
type Like struct {
	ID      int64 `json:"id"`
	Article int64 `json:"article"`
	User    int64 `json:"user"`
}

// ArticleQuery narrows an article listing.
type ArticleQuery struct {
	Search string
	Page   int
}

// ArticleAPI is the port to the backend's article endpoints.
type ArticleAPI interface {
	List(ctx context.Context, q ArticleQuery) ([]Article, error)
	Get(ctx context.Context, id int64) (*Article, error)
	Create(ctx context.Context, title, content string) (*Article, error)
	Update(ctx context.Context, id int64, title, content string) (*Article, error)
	Delete(ctx context.Context, id int64) error
}

// LikeAPI is the port to the backend's like-record endpoints.
// ListMine returns the current user's like-records; articleID narrows the
// listing to one article, zero means all.
type LikeAPI interface {
	ListMine(ctx context.Context, articleID int64) ([]Like, error)
	CreateLike(ctx context.Context, articleID int64) (*Like, error)
	DeleteLike(ctx context.Context, likeID int64) error
}

// CommentAPI is the port to the backend's nested comment endpoints.
type CommentAPI interface {
	ListForArticle(ctx context.Context, articleID int64) ([]Comment, error)
	CreateComment(ctx context.Context, articleID int64, content string) (*Comment, error)
}
