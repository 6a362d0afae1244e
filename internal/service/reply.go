package service

import (
	"github.com/diskusi-dev/diskusi/internal/domain"
	"github.com/diskusi-dev/diskusi/internal/errors"
)

type ReplyService interface {
	Create(payload map[string]any) (domain.AddedReply, error)
	Delete(threadId domain.ThreadId, commentId domain.CommentId, replyId domain.ReplyId, userId domain.UserId) error
}

type Reply struct {
	replies  ReplyStorage
	comments CommentStorage
	threads  ThreadStorage
}

type ReplyStorage interface {
	AddReply(reply domain.NewReply) (domain.AddedReply, error)
	GetReplyById(id domain.ReplyId) (domain.Reply, error)
	SoftDeleteReply(id domain.ReplyId) error
}

func NewReply(replies ReplyStorage, comments CommentStorage, threads ThreadStorage) *Reply {
	return &Reply{replies, comments, threads}
}

func (s *Reply) Create(payload map[string]any) (domain.AddedReply, error) {
	reply, err := domain.MakeNewReply(payload)
	if err != nil {
		return domain.AddedReply{}, err
	}

	if err := s.threads.VerifyAvailableThread(reply.ThreadId); err != nil {
		return domain.AddedReply{}, err
	}

	comment, err := s.comments.GetCommentById(reply.CommentId)
	if err != nil {
		return domain.AddedReply{}, err
	}
	// The comment exists but hangs off another thread: from this thread's
	// point of view it is not there.
	if comment.ThreadId != reply.ThreadId {
		return domain.AddedReply{}, errors.NewNotFound("komentar tidak ditemukan")
	}

	return s.replies.AddReply(reply)
}

// Delete verifies the whole reference chain before touching ownership:
// thread, comment in thread, reply, reply in comment, then owner. Each
// check short-circuits the rest.
func (s *Reply) Delete(threadId domain.ThreadId, commentId domain.CommentId, replyId domain.ReplyId, userId domain.UserId) error {
	if err := s.threads.VerifyAvailableThread(threadId); err != nil {
		return err
	}

	comment, err := s.comments.GetCommentById(commentId)
	if err != nil {
		return err
	}
	if comment.ThreadId != threadId {
		return errors.NewNotFound("komentar tidak ditemukan")
	}

	reply, err := s.replies.GetReplyById(replyId)
	if err != nil {
		return err
	}
	if reply.CommentId != commentId {
		return errors.NewNotFound("balasan tidak ditemukan")
	}

	if reply.Owner != userId {
		return errors.NewAuthorization("anda tidak berhak mengakses resource ini")
	}

	return s.replies.SoftDeleteReply(replyId)
}
