package pg

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/diskusi-dev/diskusi/internal/domain"
	internal_errors "github.com/diskusi-dev/diskusi/internal/errors"
)

func (s *Storage) AddComment(comment domain.NewComment) (domain.AddedComment, error) {
	id := "comment-" + s.newId()

	var added domain.AddedComment
	err := s.db.QueryRow(`
        INSERT INTO comments (id, content, owner, thread_id)
        VALUES ($1, $2, $3, $4)
        RETURNING id, content, owner
    `, id, comment.Content, comment.Owner, comment.ThreadId).Scan(&added.Id, &added.Content, &added.Owner)
	if err != nil {
		return domain.AddedComment{}, fmt.Errorf("failed to insert comment: %w", err)
	}
	return added, nil
}

func (s *Storage) GetCommentById(id domain.CommentId) (domain.Comment, error) {
	var comment domain.Comment
	err := s.db.QueryRow(`
        SELECT id, content, date, owner, thread_id, is_deleted
        FROM comments
        WHERE id = $1
    `, id).Scan(&comment.Id, &comment.Content, &comment.Date, &comment.Owner, &comment.ThreadId, &comment.IsDeleted)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.Comment{}, internal_errors.NewNotFound("komentar tidak ditemukan")
		}
		return domain.Comment{}, fmt.Errorf("failed to fetch comment: %w", err)
	}
	return comment, nil
}

func (s *Storage) VerifyCommentExists(id domain.CommentId) error {
	var found domain.CommentId
	err := s.db.QueryRow("SELECT id FROM comments WHERE id = $1", id).Scan(&found)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return internal_errors.NewNotFound("komentar tidak ditemukan")
		}
		return fmt.Errorf("failed to verify comment: %w", err)
	}
	return nil
}

func (s *Storage) VerifyCommentOwner(id domain.CommentId, owner domain.UserId) error {
	comment, err := s.GetCommentById(id)
	if err != nil {
		return err
	}
	if comment.Owner != owner {
		return internal_errors.NewAuthorization("anda tidak berhak mengakses resource ini")
	}
	return nil
}

func (s *Storage) SoftDeleteComment(id domain.CommentId) error {
	res, err := s.db.Exec("UPDATE comments SET is_deleted = TRUE WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete comment: %w", err)
	}
	if affected == 0 {
		return internal_errors.NewNotFound("komentar tidak ditemukan")
	}
	return nil
}
