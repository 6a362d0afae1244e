package pg

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/diskusi-dev/diskusi/internal/domain"
	internal_errors "github.com/diskusi-dev/diskusi/internal/errors"
)

func (s *Storage) AddReply(reply domain.NewReply) (domain.AddedReply, error) {
	id := "reply-" + s.newId()

	var added domain.AddedReply
	err := s.db.QueryRow(`
        INSERT INTO replies (id, content, owner, thread_id, comment_id)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, content, owner
    `, id, reply.Content, reply.Owner, reply.ThreadId, reply.CommentId).Scan(&added.Id, &added.Content, &added.Owner)
	if err != nil {
		return domain.AddedReply{}, fmt.Errorf("failed to insert reply: %w", err)
	}
	return added, nil
}

func (s *Storage) GetReplyById(id domain.ReplyId) (domain.Reply, error) {
	var reply domain.Reply
	err := s.db.QueryRow(`
        SELECT id, content, date, owner, thread_id, comment_id, is_deleted
        FROM replies
        WHERE id = $1
    `, id).Scan(&reply.Id, &reply.Content, &reply.Date, &reply.Owner, &reply.ThreadId, &reply.CommentId, &reply.IsDeleted)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Reply{}, internal_errors.NewNotFound("balasan tidak ditemukan")
		}
		return domain.Reply{}, fmt.Errorf("failed to fetch reply: %w", err)
	}
	return reply, nil
}

func (s *Storage) SoftDeleteReply(id domain.ReplyId) error {
	res, err := s.db.Exec("UPDATE replies SET is_deleted = TRUE WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete reply: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete reply: %w", err)
	}
	if affected == 0 {
		return internal_errors.NewNotFound("balasan tidak ditemukan")
	}
	return nil
}
