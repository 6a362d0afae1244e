package service

import (
	"github.com/diskusi-dev/diskusi/internal/domain"
	"github.com/diskusi-dev/diskusi/internal/errors"
)

type ThreadService interface {
	Create(payload map[string]any) (domain.AddedThread, error)
	GetDetail(id domain.ThreadId) (domain.ThreadDetail, error)
}

type Thread struct {
	threads ThreadStorage
	likes   LikeStorage
}

type ThreadStorage interface {
	AddThread(thread domain.NewThread) (domain.AddedThread, error)
	VerifyAvailableThread(id domain.ThreadId) error
	ThreadDetailRows(id domain.ThreadId) ([]domain.ThreadRow, error)
}

func NewThread(threads ThreadStorage, likes LikeStorage) *Thread {
	return &Thread{threads, likes}
}

func (s *Thread) Create(payload map[string]any) (domain.AddedThread, error) {
	thread, err := domain.MakeNewThread(payload)
	if err != nil {
		return domain.AddedThread{}, err
	}

	return s.threads.AddThread(thread)
}

// GetDetail reconstructs the nested thread view from the flattened join
// row-set and attaches per-comment like counts.
func (s *Thread) GetDetail(id domain.ThreadId) (domain.ThreadDetail, error) {
	rows, err := s.threads.ThreadDetailRows(id)
	if err != nil {
		return domain.ThreadDetail{}, err
	}
	if len(rows) == 0 {
		return domain.ThreadDetail{}, errors.NewNotFound("thread tidak ditemukan")
	}

	detail := foldThreadRows(rows)

	if len(detail.Comments) > 0 {
		ids := make([]domain.CommentId, len(detail.Comments))
		for i, c := range detail.Comments {
			ids[i] = c.Id
		}
		counts, err := s.likes.CountLikesByComment(ids)
		if err != nil {
			return domain.ThreadDetail{}, err
		}
		for i := range detail.Comments {
			detail.Comments[i].LikeCount = counts[detail.Comments[i].Id]
		}
	}

	return detail, nil
}

// foldThreadRows groups the pre-sorted rows by comment id, preserving
// first-seen order, and appends replies in encounter order. Soft-deleted
// content is replaced by its placeholder, the original text never leaves
// this function.
func foldThreadRows(rows []domain.ThreadRow) domain.ThreadDetail {
	first := rows[0]
	detail := domain.ThreadDetail{
		Id:       first.ThreadId,
		Title:    first.Title,
		Body:     first.Body,
		Date:     first.ThreadDate,
		Username: first.ThreadUsername,
		Comments: []domain.CommentDetail{},
	}

	index := make(map[domain.CommentId]int)
	for _, row := range rows {
		if !row.CommentId.Valid {
			continue
		}

		commentId := row.CommentId.String
		i, seen := index[commentId]
		if !seen {
			content := row.CommentContent.String
			if row.CommentIsDeleted.Bool {
				content = domain.DeletedCommentPlaceholder
			}
			detail.Comments = append(detail.Comments, domain.CommentDetail{
				Id:        commentId,
				Content:   content,
				Date:      row.CommentDate.Time,
				Username:  row.CommentUsername.String,
				IsDeleted: row.CommentIsDeleted.Bool,
				Replies:   []domain.ReplyDetail{},
			})
			i = len(detail.Comments) - 1
			index[commentId] = i
		}

		if !row.ReplyId.Valid {
			continue
		}

		content := row.ReplyContent.String
		if row.ReplyIsDeleted.Bool {
			content = domain.DeletedReplyPlaceholder
		}
		detail.Comments[i].Replies = append(detail.Comments[i].Replies, domain.ReplyDetail{
			Id:        row.ReplyId.String,
			Content:   content,
			Date:      row.ReplyDate.Time,
			Username:  row.ReplyUsername.String,
			IsDeleted: row.ReplyIsDeleted.Bool,
		})
	}

	return detail
}
