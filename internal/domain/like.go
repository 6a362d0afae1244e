package domain

import "time"

// NewLike is the validated payload for liking a comment. Date is an
// RFC 3339 string supplied by the use case, not the client.
type NewLike struct {
	Owner     UserId
	CommentId CommentId
	Date      string
}

// Like is the stored record. Its existence is the "liked" state; there is
// at most one row per (owner, comment) pair.
type Like struct {
	Id        LikeId
	Owner     UserId
	CommentId CommentId
	Date      time.Time
}

func MakeNewLike(payload map[string]any) (NewLike, error) {
	fields, err := requireStrings(payload, "NEW_LIKE", "owner", "commentId", "date")
	if err != nil {
		return NewLike{}, err
	}

	return NewLike{
		Owner:     fields["owner"],
		CommentId: fields["commentId"],
		Date:      fields["date"],
	}, nil
}
