package service

import (
	"github.com/diskusi-dev/diskusi/internal/domain"
)

type CommentService interface {
	Create(payload map[string]any) (domain.AddedComment, error)
	Delete(threadId domain.ThreadId, commentId domain.CommentId, userId domain.UserId) error
}

type Comment struct {
	comments CommentStorage
	threads  ThreadStorage
}

type CommentStorage interface {
	AddComment(comment domain.NewComment) (domain.AddedComment, error)
	GetCommentById(id domain.CommentId) (domain.Comment, error)
	VerifyCommentExists(id domain.CommentId) error
	// VerifyCommentOwner fails with not-found when the comment is absent
	// and with an authorization error when owner does not match.
	VerifyCommentOwner(id domain.CommentId, owner domain.UserId) error
	SoftDeleteComment(id domain.CommentId) error
}

func NewComment(comments CommentStorage, threads ThreadStorage) *Comment {
	return &Comment{comments, threads}
}

func (s *Comment) Create(payload map[string]any) (domain.AddedComment, error) {
	comment, err := domain.MakeNewComment(payload)
	if err != nil {
		return domain.AddedComment{}, err
	}

	if err := s.threads.VerifyAvailableThread(comment.ThreadId); err != nil {
		return domain.AddedComment{}, err
	}

	return s.comments.AddComment(comment)
}

func (s *Comment) Delete(threadId domain.ThreadId, commentId domain.CommentId, userId domain.UserId) error {
	if err := s.threads.VerifyAvailableThread(threadId); err != nil {
		return err
	}
	if err := s.comments.VerifyCommentOwner(commentId, userId); err != nil {
		return err
	}
	return s.comments.SoftDeleteComment(commentId)
}
