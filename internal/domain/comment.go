package domain

import "time"

// NewComment is the validated payload for commenting on a thread.
type NewComment struct {
	Content  string
	Owner    UserId
	ThreadId ThreadId
}

type AddedComment struct {
	Id      CommentId `json:"id"`
	Content string    `json:"content"`
	Owner   UserId    `json:"owner"`
}

// Comment is the stored record. ThreadId never changes after creation.
type Comment struct {
	Id        CommentId
	Content   string
	Date      time.Time
	Owner     UserId
	ThreadId  ThreadId
	IsDeleted bool
}

func MakeNewComment(payload map[string]any) (NewComment, error) {
	fields, err := requireStrings(payload, "NEW_COMMENT", "content", "owner", "threadId")
	if err != nil {
		return NewComment{}, err
	}

	return NewComment{
		Content:  fields["content"],
		Owner:    fields["owner"],
		ThreadId: fields["threadId"],
	}, nil
}
