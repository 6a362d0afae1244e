package service

import (
	"time"

	"github.com/diskusi-dev/diskusi/internal/domain"
)

type LikeService interface {
	Toggle(threadId domain.ThreadId, commentId domain.CommentId, owner domain.UserId) error
}

type Like struct {
	likes    LikeStorage
	comments CommentStorage
	threads  ThreadStorage
	now      func() time.Time
}

type LikeStorage interface {
	AddLike(like domain.NewLike) (domain.Like, error)
	RemoveLike(id domain.LikeId) error
	// GetLikeByOwnerAndComment returns nil without error when no like exists.
	GetLikeByOwnerAndComment(owner domain.UserId, commentId domain.CommentId) (*domain.Like, error)
	CountLikesByComment(ids []domain.CommentId) (map[domain.CommentId]int, error)
}

func NewLike(likes LikeStorage, comments CommentStorage, threads ThreadStorage, now func() time.Time) *Like {
	if now == nil {
		now = time.Now
	}
	return &Like{likes, comments, threads, now}
}

// Toggle flips the like state: an existing like is removed, a missing one
// is created. The lookup and the write are not one transaction; the
// unique constraint on (owner, comment_id) backstops concurrent inserts
// and the storage layer treats that conflict as a no-op.
func (s *Like) Toggle(threadId domain.ThreadId, commentId domain.CommentId, owner domain.UserId) error {
	if err := s.threads.VerifyAvailableThread(threadId); err != nil {
		return err
	}
	if err := s.comments.VerifyCommentExists(commentId); err != nil {
		return err
	}

	existing, err := s.likes.GetLikeByOwnerAndComment(owner, commentId)
	if err != nil {
		return err
	}
	if existing != nil {
		return s.likes.RemoveLike(existing.Id)
	}

	like, err := domain.MakeNewLike(map[string]any{
		"owner":     owner,
		"commentId": commentId,
		"date":      s.now().UTC().Format(time.RFC3339),
	})
	if err != nil {
		return err
	}

	_, err = s.likes.AddLike(like)
	return err
}
