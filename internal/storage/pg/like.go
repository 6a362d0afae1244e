package pg

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/diskusi-dev/diskusi/internal/domain"
	internal_errors "github.com/diskusi-dev/diskusi/internal/errors"
	"github.com/diskusi-dev/diskusi/internal/logger"
)

// uniqueViolation is the postgres error code for a unique constraint hit.
const uniqueViolation = "23505"

// AddLike inserts a like row. Two concurrent toggles can both observe
// "no like yet" and race to insert; the unique constraint on
// (owner, comment_id) rejects the loser and that conflict is absorbed as
// a no-op since the intended state (liked) already holds.
func (s *Storage) AddLike(like domain.NewLike) (domain.Like, error) {
	date, err := time.Parse(time.RFC3339, like.Date)
	if err != nil {
		return domain.Like{}, fmt.Errorf("failed to parse like date: %w", err)
	}

	id := "like-" + s.newId()

	var added domain.Like
	err = s.db.QueryRow(`
        INSERT INTO likes (id, owner, comment_id, date)
        VALUES ($1, $2, $3, $4)
        RETURNING id, owner, comment_id, date
    `, id, like.Owner, like.CommentId, date).Scan(&added.Id, &added.Owner, &added.CommentId, &added.Date)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			logger.Log.Warn("concurrent like insert absorbed", "owner", like.Owner, "comment", like.CommentId)
			return domain.Like{}, nil
		}
		return domain.Like{}, fmt.Errorf("failed to insert like: %w", err)
	}
	return added, nil
}

func (s *Storage) RemoveLike(id domain.LikeId) error {
	var removed domain.LikeId
	err := s.db.QueryRow("DELETE FROM likes WHERE id = $1 RETURNING id", id).Scan(&removed)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return internal_errors.NewNotFound("like tidak ditemukan")
		}
		return fmt.Errorf("failed to remove like: %w", err)
	}
	return nil
}

func (s *Storage) GetLikeByOwnerAndComment(owner domain.UserId, commentId domain.CommentId) (*domain.Like, error) {
	var like domain.Like
	err := s.db.QueryRow(`
        SELECT id, owner, comment_id, date
        FROM likes
        WHERE owner = $1 AND comment_id = $2
    `, owner, commentId).Scan(&like.Id, &like.Owner, &like.CommentId, &like.Date)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to fetch like: %w", err)
	}
	return &like, nil
}

func (s *Storage) CountLikesByComment(ids []domain.CommentId) (map[domain.CommentId]int, error) {
	rows, err := s.db.Query(`
        SELECT comment_id, COUNT(*)
        FROM likes
        WHERE comment_id = ANY($1)
        GROUP BY comment_id
    `, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("failed to count likes: %w", err)
	}
	defer rows.Close()

	counts := make(map[domain.CommentId]int, len(ids))
	for rows.Next() {
		var id domain.CommentId
		var count int
		if err := rows.Scan(&id, &count); err != nil {
			return nil, fmt.Errorf("failed to scan like count: %w", err)
		}
		counts[id] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}
	return counts, nil
}
