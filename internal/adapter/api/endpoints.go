package api

import "fmt"

// Canonical endpoint paths of the backend. Register and identity live
// under the auth viewset; token obtain/refresh sit outside the /api prefix.
const (
	pathToken        = "/token/"
	pathTokenRefresh = "/token/refresh/"
	pathRegister     = "/api/auth/"
	pathMe           = "/api/auth/me/"
	pathArticles     = "/api/articles/"
	pathLikes        = "/api/post-user-likes/"
)

func articlePath(id int64) string {
	return fmt.Sprintf("/api/articles/%d/", id)
}

func articleCommentsPath(articleID int64) string {
	return fmt.Sprintf("/api/articles/%d/comments/", articleID)
}

func likePath(id int64) string {
	return fmt.Sprintf("/api/post-user-likes/%d/", id)
}
