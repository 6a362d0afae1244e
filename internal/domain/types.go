package domain

type (
	UserId    = string
	ThreadId  = string
	CommentId = string
	ReplyId   = string
	LikeId    = string
)

// Placeholder content shown instead of the original once a record is
// soft-deleted. Read-path only, stored content is never rewritten.
const (
	DeletedCommentPlaceholder = "**komentar telah dihapus**"
	DeletedReplyPlaceholder   = "**balasan telah dihapus**"
)
