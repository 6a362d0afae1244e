package domain

import "time"

// NewReply carries both the thread and the comment reference. The pair is
// redundant on purpose: use cases cross-check that the referenced comment
// actually belongs to the referenced thread before persisting.
type NewReply struct {
	Content   string
	Owner     UserId
	ThreadId  ThreadId
	CommentId CommentId
}

type AddedReply struct {
	Id      ReplyId `json:"id"`
	Content string  `json:"content"`
	Owner   UserId  `json:"owner"`
}

type Reply struct {
	Id        ReplyId
	Content   string
	Date      time.Time
	Owner     UserId
	ThreadId  ThreadId
	CommentId CommentId
	IsDeleted bool
}

func MakeNewReply(payload map[string]any) (NewReply, error) {
	fields, err := requireStrings(payload, "NEW_REPLY", "content", "owner", "threadId", "commentId")
	if err != nil {
		return NewReply{}, err
	}

	return NewReply{
		Content:   fields["content"],
		Owner:     fields["owner"],
		ThreadId:  fields["threadId"],
		CommentId: fields["commentId"],
	}, nil
}
