package pg

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/diskusi-dev/diskusi/internal/domain"
	internal_errors "github.com/diskusi-dev/diskusi/internal/errors"
)

func TestAddComment(t *testing.T) {
	cleanTables(t)
	user := mustAddUser(t, "dicoding")
	thread := mustAddThread(t, user.Id)

	t.Run("Success", func(t *testing.T) {
		added, err := storage.AddComment(domain.NewComment{Content: "sebuah komentar", Owner: user.Id, ThreadId: thread.Id})

		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(added.Id), "comment-"))
		assert.Equal(t, "sebuah komentar", added.Content)
		assert.Equal(t, user.Id, added.Owner)
	})

	t.Run("Unknown thread fails on the foreign key", func(t *testing.T) {
		_, err := storage.AddComment(domain.NewComment{Content: "isi", Owner: user.Id, ThreadId: "thread-ghost"})

		assert.Error(t, err)
	})
}

func TestGetCommentById(t *testing.T) {
	cleanTables(t)
	user := mustAddUser(t, "dicoding")
	thread := mustAddThread(t, user.Id)
	added := mustAddComment(t, user.Id, thread.Id, "sebuah komentar")

	t.Run("Success", func(t *testing.T) {
		comment, err := storage.GetCommentById(added.Id)

		require.NoError(t, err)
		assert.Equal(t, added.Id, comment.Id)
		assert.Equal(t, "sebuah komentar", comment.Content)
		assert.Equal(t, thread.Id, comment.ThreadId)
		assert.Equal(t, user.Id, comment.Owner)
		assert.False(t, comment.IsDeleted)
		assert.False(t, comment.Date.IsZero())
	})

	t.Run("Missing comment is not-found", func(t *testing.T) {
		_, err := storage.GetCommentById("comment-ghost")

		require.Error(t, err)
		assert.True(t, internal_errors.IsNotFound(err))
	})
}

func TestVerifyCommentOwner(t *testing.T) {
	cleanTables(t)
	owner := mustAddUser(t, "dicoding")
	other := mustAddUser(t, "johndoe")
	thread := mustAddThread(t, owner.Id)
	comment := mustAddComment(t, owner.Id, thread.Id, "milik dicoding")

	t.Run("Owner passes", func(t *testing.T) {
		assert.NoError(t, storage.VerifyCommentOwner(comment.Id, owner.Id))
	})

	t.Run("Someone else is forbidden", func(t *testing.T) {
		err := storage.VerifyCommentOwner(comment.Id, other.Id)

		require.Error(t, err)
		var statusErr *internal_errors.ErrorWithStatusCode
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, 403, statusErr.StatusCode)
	})

	t.Run("Missing comment is not-found, not forbidden", func(t *testing.T) {
		err := storage.VerifyCommentOwner("comment-ghost", owner.Id)

		require.Error(t, err)
		assert.True(t, internal_errors.IsNotFound(err))
	})
}

func TestSoftDeleteComment(t *testing.T) {
	cleanTables(t)
	user := mustAddUser(t, "dicoding")
	thread := mustAddThread(t, user.Id)
	comment := mustAddComment(t, user.Id, thread.Id, "akan dihapus")

	t.Run("Marks the row without removing it", func(t *testing.T) {
		require.NoError(t, storage.SoftDeleteComment(comment.Id))

		stored, err := storage.GetCommentById(comment.Id)
		require.NoError(t, err)
		assert.True(t, stored.IsDeleted)
		assert.Equal(t, "akan dihapus", stored.Content, "content stays in place")
	})

	t.Run("Missing comment is not-found", func(t *testing.T) {
		err := storage.SoftDeleteComment("comment-ghost")

		require.Error(t, err)
		assert.True(t, internal_errors.IsNotFound(err))
	})
}
