package service

import (
	"sync" // Used for tracking calls in mocks safely in parallel tests

	"github.com/diskusi-dev/diskusi/internal/domain"
)

// --- Mocks ---

// MockThreadStorage mocks the ThreadStorage interface.
type MockThreadStorage struct {
	addThreadFunc             func(thread domain.NewThread) (domain.AddedThread, error)
	verifyAvailableThreadFunc func(id domain.ThreadId) error
	threadDetailRowsFunc      func(id domain.ThreadId) ([]domain.ThreadRow, error)

	mu                 sync.Mutex
	addThreadCalled    bool
	verifyThreadCalled bool
	verifyThreadArg    domain.ThreadId
}

func (m *MockThreadStorage) AddThread(thread domain.NewThread) (domain.AddedThread, error) {
	m.mu.Lock()
	m.addThreadCalled = true
	m.mu.Unlock()

	if m.addThreadFunc != nil {
		return m.addThreadFunc(thread)
	}
	return domain.AddedThread{Id: "thread-default", Title: thread.Title, Owner: thread.Owner}, nil
}

func (m *MockThreadStorage) VerifyAvailableThread(id domain.ThreadId) error {
	m.mu.Lock()
	m.verifyThreadCalled = true
	m.verifyThreadArg = id
	m.mu.Unlock()

	if m.verifyAvailableThreadFunc != nil {
		return m.verifyAvailableThreadFunc(id)
	}
	return nil // Default: thread exists
}

func (m *MockThreadStorage) ThreadDetailRows(id domain.ThreadId) ([]domain.ThreadRow, error) {
	if m.threadDetailRowsFunc != nil {
		return m.threadDetailRowsFunc(id)
	}
	return nil, nil
}

// MockCommentStorage mocks the CommentStorage interface.
type MockCommentStorage struct {
	addCommentFunc          func(comment domain.NewComment) (domain.AddedComment, error)
	getCommentByIdFunc      func(id domain.CommentId) (domain.Comment, error)
	verifyCommentExistsFunc func(id domain.CommentId) error
	verifyCommentOwnerFunc  func(id domain.CommentId, owner domain.UserId) error
	softDeleteCommentFunc   func(id domain.CommentId) error

	mu                 sync.Mutex
	addCommentCalled   bool
	getCommentCalled   bool
	verifyExistsCalled bool
	verifyOwnerCalled  bool
	softDeleteCalled   bool
	softDeleteArg      domain.CommentId
}

func (m *MockCommentStorage) AddComment(comment domain.NewComment) (domain.AddedComment, error) {
	m.mu.Lock()
	m.addCommentCalled = true
	m.mu.Unlock()

	if m.addCommentFunc != nil {
		return m.addCommentFunc(comment)
	}
	return domain.AddedComment{Id: "comment-default", Content: comment.Content, Owner: comment.Owner}, nil
}

func (m *MockCommentStorage) GetCommentById(id domain.CommentId) (domain.Comment, error) {
	m.mu.Lock()
	m.getCommentCalled = true
	m.mu.Unlock()

	if m.getCommentByIdFunc != nil {
		return m.getCommentByIdFunc(id)
	}
	return domain.Comment{Id: id}, nil
}

func (m *MockCommentStorage) VerifyCommentExists(id domain.CommentId) error {
	m.mu.Lock()
	m.verifyExistsCalled = true
	m.mu.Unlock()

	if m.verifyCommentExistsFunc != nil {
		return m.verifyCommentExistsFunc(id)
	}
	return nil
}

func (m *MockCommentStorage) VerifyCommentOwner(id domain.CommentId, owner domain.UserId) error {
	m.mu.Lock()
	m.verifyOwnerCalled = true
	m.mu.Unlock()

	if m.verifyCommentOwnerFunc != nil {
		return m.verifyCommentOwnerFunc(id, owner)
	}
	return nil
}

func (m *MockCommentStorage) SoftDeleteComment(id domain.CommentId) error {
	m.mu.Lock()
	m.softDeleteCalled = true
	m.softDeleteArg = id
	m.mu.Unlock()

	if m.softDeleteCommentFunc != nil {
		return m.softDeleteCommentFunc(id)
	}
	return nil
}

// MockReplyStorage mocks the ReplyStorage interface.
type MockReplyStorage struct {
	addReplyFunc        func(reply domain.NewReply) (domain.AddedReply, error)
	getReplyByIdFunc    func(id domain.ReplyId) (domain.Reply, error)
	softDeleteReplyFunc func(id domain.ReplyId) error

	mu               sync.Mutex
	addReplyCalled   bool
	getReplyCalled   bool
	softDeleteCalled bool
	softDeleteArg    domain.ReplyId
}

func (m *MockReplyStorage) AddReply(reply domain.NewReply) (domain.AddedReply, error) {
	m.mu.Lock()
	m.addReplyCalled = true
	m.mu.Unlock()

	if m.addReplyFunc != nil {
		return m.addReplyFunc(reply)
	}
	return domain.AddedReply{Id: "reply-default", Content: reply.Content, Owner: reply.Owner}, nil
}

func (m *MockReplyStorage) GetReplyById(id domain.ReplyId) (domain.Reply, error) {
	m.mu.Lock()
	m.getReplyCalled = true
	m.mu.Unlock()

	if m.getReplyByIdFunc != nil {
		return m.getReplyByIdFunc(id)
	}
	return domain.Reply{Id: id}, nil
}

func (m *MockReplyStorage) SoftDeleteReply(id domain.ReplyId) error {
	m.mu.Lock()
	m.softDeleteCalled = true
	m.softDeleteArg = id
	m.mu.Unlock()

	if m.softDeleteReplyFunc != nil {
		return m.softDeleteReplyFunc(id)
	}
	return nil
}

// MockLikeStorage mocks the LikeStorage interface.
type MockLikeStorage struct {
	addLikeFunc                  func(like domain.NewLike) (domain.Like, error)
	removeLikeFunc               func(id domain.LikeId) error
	getLikeByOwnerAndCommentFunc func(owner domain.UserId, commentId domain.CommentId) (*domain.Like, error)
	countLikesByCommentFunc      func(ids []domain.CommentId) (map[domain.CommentId]int, error)

	mu               sync.Mutex
	addLikeCalled    bool
	removeLikeCalled bool
	removeLikeArg    domain.LikeId
}

func (m *MockLikeStorage) AddLike(like domain.NewLike) (domain.Like, error) {
	m.mu.Lock()
	m.addLikeCalled = true
	m.mu.Unlock()

	if m.addLikeFunc != nil {
		return m.addLikeFunc(like)
	}
	return domain.Like{Id: "like-default", Owner: like.Owner, CommentId: like.CommentId}, nil
}

func (m *MockLikeStorage) RemoveLike(id domain.LikeId) error {
	m.mu.Lock()
	m.removeLikeCalled = true
	m.removeLikeArg = id
	m.mu.Unlock()

	if m.removeLikeFunc != nil {
		return m.removeLikeFunc(id)
	}
	return nil
}

func (m *MockLikeStorage) GetLikeByOwnerAndComment(owner domain.UserId, commentId domain.CommentId) (*domain.Like, error) {
	if m.getLikeByOwnerAndCommentFunc != nil {
		return m.getLikeByOwnerAndCommentFunc(owner, commentId)
	}
	return nil, nil // Default: no existing like
}

func (m *MockLikeStorage) CountLikesByComment(ids []domain.CommentId) (map[domain.CommentId]int, error) {
	if m.countLikesByCommentFunc != nil {
		return m.countLikesByCommentFunc(ids)
	}
	return map[domain.CommentId]int{}, nil
}
