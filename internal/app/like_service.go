package app

import (
	"context"
	"errors"
	"sync"

	"blogctl/internal/domain"
)

// ErrToggleInFlight indicates a like toggle for the same article has not
// resolved yet. The caller should keep its control disabled and retry after
// the pending toggle settles.
var ErrToggleInFlight = errors.New("like toggle already in flight for this article")

// SessionState is the slice of the session store the like cache depends on.
type SessionState interface {
	Authenticated() bool
}

// LikeService tracks which articles the active session has liked and keeps
// that set consistent with the backend across optimistic toggles. The set
// is scoped to one session: Reset on logout, Refresh after login.
type LikeService struct {
	api     domain.LikeAPI
	session SessionState

	mu        sync.Mutex
	liked     map[int64]bool
	recordIDs map[int64]int64 // article id -> like-record id, when the server told us
	pending   map[int64]bool
}

// NewLikeService creates an empty like cache over the given endpoints.
func NewLikeService(api domain.LikeAPI, session SessionState) *LikeService {
	return &LikeService{
		api:       api,
		session:   session,
		liked:     make(map[int64]bool),
		recordIDs: make(map[int64]int64),
		pending:   make(map[int64]bool),
	}
}

// Has reports whether the current session has liked the article. Pure
// lookup, no network.
func (s *LikeService) Has(articleID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.liked[articleID]
}

// SetLocal flips the in-memory flag without touching the network. It backs
// optimistic updates and their rollback.
func (s *LikeService) SetLocal(articleID int64, liked bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if liked {
		s.liked[articleID] = true
	} else {
		delete(s.liked, articleID)
		delete(s.recordIDs, articleID)
	}
}

// Reset drops all cached like state.
func (s *LikeService) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.liked = make(map[int64]bool)
	s.recordIDs = make(map[int64]int64)
}

// Refresh rebuilds the set from the backend's record of the current user's
// likes. Without a session it just clears the set.
func (s *LikeService) Refresh(ctx context.Context) error {
	if !s.session.Authenticated() {
		s.Reset()
		return nil
	}
	rows, err := s.api.ListMine(ctx, 0)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.liked = make(map[int64]bool, len(rows))
	s.recordIDs = make(map[int64]int64, len(rows))
	for _, r := range rows {
		s.liked[r.Article] = true
		if r.ID != 0 {
			s.recordIDs[r.Article] = r.ID
		}
	}
	return nil
}

// Liked returns the article ids currently in the set.
func (s *LikeService) Liked() []int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	ids := make([]int64, 0, len(s.liked))
	for id := range s.liked {
		ids = append(ids, id)
	}
	return ids
}

// Toggle flips the liked state of article optimistically and reconciles
// with the backend: the boolean and article.LikesCount change immediately
// and are rolled back if the server call fails. While a toggle for an
// article is unresolved, further toggles for that article are rejected
// with ErrToggleInFlight; other articles are unaffected.
//
// Unliking deletes the like-record by the id remembered from the create
// response, falling back to a lookup when the record was never seen. A
// lookup that finds nothing means the server already agrees; the toggle
// succeeds without a delete.
func (s *LikeService) Toggle(ctx context.Context, article *domain.Article) (bool, error) {
	s.mu.Lock()
	if s.pending[article.ID] {
		liked := s.liked[article.ID]
		s.mu.Unlock()
		return liked, ErrToggleInFlight
	}
	s.pending[article.ID] = true
	wasLiked := s.liked[article.ID]
	recordID := s.recordIDs[article.ID]
	liked := !wasLiked
	if liked {
		s.liked[article.ID] = true
		article.LikesCount++
	} else {
		delete(s.liked, article.ID)
		delete(s.recordIDs, article.ID)
		article.LikesCount--
	}
	s.mu.Unlock()

	err := s.confirm(ctx, article.ID, liked, recordID)

	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.pending, article.ID)
	if err != nil {
		// Roll back both the flag and the counter.
		if wasLiked {
			s.liked[article.ID] = true
			if recordID != 0 {
				s.recordIDs[article.ID] = recordID
			}
			article.LikesCount++
		} else {
			delete(s.liked, article.ID)
			article.LikesCount--
		}
		return wasLiked, err
	}
	return liked, nil
}

// confirm performs the server side of a toggle that has already been
// applied locally.
func (s *LikeService) confirm(ctx context.Context, articleID int64, liked bool, recordID int64) error {
	if liked {
		row, err := s.api.CreateLike(ctx, articleID)
		if err != nil {
			return err
		}
		if row != nil && row.ID != 0 {
			s.mu.Lock()
			s.recordIDs[articleID] = row.ID
			s.mu.Unlock()
		}
		return nil
	}

	if recordID == 0 {
		rows, err := s.api.ListMine(ctx, articleID)
		if err != nil {
			return err
		}
		if len(rows) == 0 {
			// Nothing to delete server-side: already consistent.
			return nil
		}
		recordID = rows[0].ID
	}
	return s.api.DeleteLike(ctx, recordID)
}
