package domain

import (
	"database/sql"
	"time"
)

// NewThread is the validated payload for thread creation.
type NewThread struct {
	Title string
	Body  string
	Owner UserId
}

// AddedThread is what creation reports back to the client.
type AddedThread struct {
	Id    ThreadId `json:"id"`
	Title string   `json:"title"`
	Owner UserId   `json:"owner"`
}

func MakeNewThread(payload map[string]any) (NewThread, error) {
	fields, err := requireStrings(payload, "NEW_THREAD", "title", "owner")
	if err != nil {
		return NewThread{}, err
	}
	body, err := optionalString(payload, "NEW_THREAD", "body", "")
	if err != nil {
		return NewThread{}, err
	}

	return NewThread{
		Title: fields["title"],
		Body:  body,
		Owner: fields["owner"],
	}, nil
}

// ThreadRow is one row of the flattened thread -> comments -> replies
// left join. Comment and reply columns are null for threads without
// comments and comments without replies respectively.
type ThreadRow struct {
	ThreadId       ThreadId
	Title          string
	Body           string
	ThreadDate     time.Time
	ThreadUsername string

	CommentId        sql.NullString
	CommentContent   sql.NullString
	CommentDate      sql.NullTime
	CommentUsername  sql.NullString
	CommentIsDeleted sql.NullBool

	ReplyId        sql.NullString
	ReplyContent   sql.NullString
	ReplyDate      sql.NullTime
	ReplyUsername  sql.NullString
	ReplyIsDeleted sql.NullBool
}

// ThreadDetail is the assembled read model for a single thread.
type ThreadDetail struct {
	Id       ThreadId        `json:"id"`
	Title    string          `json:"title"`
	Body     string          `json:"body"`
	Date     time.Time       `json:"date"`
	Username string          `json:"username"`
	Comments []CommentDetail `json:"comments"`
}

type CommentDetail struct {
	Id        CommentId     `json:"id"`
	Content   string        `json:"content"`
	Date      time.Time     `json:"date"`
	Username  string        `json:"username"`
	IsDeleted bool          `json:"isDeleted"`
	LikeCount int           `json:"likeCount"`
	Replies   []ReplyDetail `json:"replies"`
}

type ReplyDetail struct {
	Id        ReplyId   `json:"id"`
	Content   string    `json:"content"`
	Date      time.Time `json:"date"`
	Username  string    `json:"username"`
	IsDeleted bool      `json:"isDeleted"`
}
