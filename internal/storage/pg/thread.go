package pg

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/diskusi-dev/diskusi/internal/domain"
	internal_errors "github.com/diskusi-dev/diskusi/internal/errors"
)

func (s *Storage) AddThread(thread domain.NewThread) (domain.AddedThread, error) {
	id := "thread-" + s.newId()

	var added domain.AddedThread
	err := s.db.QueryRow(`
        INSERT INTO threads (id, title, body, owner)
        VALUES ($1, $2, $3, $4)
        RETURNING id, title, owner
    `, id, thread.Title, thread.Body, thread.Owner).Scan(&added.Id, &added.Title, &added.Owner)
	if err != nil {
		return domain.AddedThread{}, fmt.Errorf("failed to insert thread: %w", err)
	}
	return added, nil
}

func (s *Storage) VerifyAvailableThread(id domain.ThreadId) error {
	var found domain.ThreadId
	err := s.db.QueryRow("SELECT id FROM threads WHERE id = $1", id).Scan(&found)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return internal_errors.NewNotFound("thread tidak ditemukan")
		}
		return fmt.Errorf("failed to verify thread: %w", err)
	}
	return nil
}

// ThreadDetailRows returns the flattened thread -> comments -> replies
// join, sorted by comment date then reply date. A missing thread yields
// zero rows; the service layer maps that to not-found.
func (s *Storage) ThreadDetailRows(id domain.ThreadId) ([]domain.ThreadRow, error) {
	rows, err := s.db.Query(`
        SELECT
            t.id, t.title, t.body, t.date, tu.username,
            c.id, c.content, c.date, cu.username, c.is_deleted,
            r.id, r.content, r.date, ru.username, r.is_deleted
        FROM threads t
        JOIN users tu ON tu.id = t.owner
        LEFT JOIN comments c ON c.thread_id = t.id
        LEFT JOIN users cu ON cu.id = c.owner
        LEFT JOIN replies r ON r.comment_id = c.id
        LEFT JOIN users ru ON ru.id = r.owner
        WHERE t.id = $1
        ORDER BY c.date ASC, r.date ASC
    `, id)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch thread rows: %w", err)
	}
	defer rows.Close()

	var result []domain.ThreadRow
	for rows.Next() {
		var row domain.ThreadRow
		if err := rows.Scan(
			&row.ThreadId, &row.Title, &row.Body, &row.ThreadDate, &row.ThreadUsername,
			&row.CommentId, &row.CommentContent, &row.CommentDate, &row.CommentUsername, &row.CommentIsDeleted,
			&row.ReplyId, &row.ReplyContent, &row.ReplyDate, &row.ReplyUsername, &row.ReplyIsDeleted,
		); err != nil {
			return nil, fmt.Errorf("failed to scan thread row: %w", err)
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return result, nil
}
