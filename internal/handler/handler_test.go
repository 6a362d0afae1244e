package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/diskusi-dev/diskusi/internal/api"
	"github.com/diskusi-dev/diskusi/internal/domain"
	"github.com/diskusi-dev/diskusi/internal/markdown"
	"github.com/diskusi-dev/diskusi/internal/middleware"
)

// --- Service mocks ---

type MockAuthService struct {
	MockRegister func(payload map[string]any) (domain.RegisteredUser, error)
	MockLogin    func(creds api.LoginRequest) (api.NewAuthentication, error)
	MockRefresh  func(refreshToken string) (api.RefreshedAuthentication, error)
	MockLogout   func(refreshToken string) error
}

func (m *MockAuthService) Register(payload map[string]any) (domain.RegisteredUser, error) {
	if m.MockRegister != nil {
		return m.MockRegister(payload)
	}
	return domain.RegisteredUser{}, nil
}

func (m *MockAuthService) Login(creds api.LoginRequest) (api.NewAuthentication, error) {
	if m.MockLogin != nil {
		return m.MockLogin(creds)
	}
	return api.NewAuthentication{}, nil
}

func (m *MockAuthService) Refresh(refreshToken string) (api.RefreshedAuthentication, error) {
	if m.MockRefresh != nil {
		return m.MockRefresh(refreshToken)
	}
	return api.RefreshedAuthentication{}, nil
}

func (m *MockAuthService) Logout(refreshToken string) error {
	if m.MockLogout != nil {
		return m.MockLogout(refreshToken)
	}
	return nil
}

type MockThreadService struct {
	MockCreate    func(payload map[string]any) (domain.AddedThread, error)
	MockGetDetail func(id domain.ThreadId) (domain.ThreadDetail, error)
}

func (m *MockThreadService) Create(payload map[string]any) (domain.AddedThread, error) {
	if m.MockCreate != nil {
		return m.MockCreate(payload)
	}
	return domain.AddedThread{}, nil
}

func (m *MockThreadService) GetDetail(id domain.ThreadId) (domain.ThreadDetail, error) {
	if m.MockGetDetail != nil {
		return m.MockGetDetail(id)
	}
	return domain.ThreadDetail{}, nil
}

type MockCommentService struct {
	MockCreate func(payload map[string]any) (domain.AddedComment, error)
	MockDelete func(threadId domain.ThreadId, commentId domain.CommentId, userId domain.UserId) error
}

func (m *MockCommentService) Create(payload map[string]any) (domain.AddedComment, error) {
	if m.MockCreate != nil {
		return m.MockCreate(payload)
	}
	return domain.AddedComment{}, nil
}

func (m *MockCommentService) Delete(threadId domain.ThreadId, commentId domain.CommentId, userId domain.UserId) error {
	if m.MockDelete != nil {
		return m.MockDelete(threadId, commentId, userId)
	}
	return nil
}

type MockReplyService struct {
	MockCreate func(payload map[string]any) (domain.AddedReply, error)
	MockDelete func(threadId domain.ThreadId, commentId domain.CommentId, replyId domain.ReplyId, userId domain.UserId) error
}

func (m *MockReplyService) Create(payload map[string]any) (domain.AddedReply, error) {
	if m.MockCreate != nil {
		return m.MockCreate(payload)
	}
	return domain.AddedReply{}, nil
}

func (m *MockReplyService) Delete(threadId domain.ThreadId, commentId domain.CommentId, replyId domain.ReplyId, userId domain.UserId) error {
	if m.MockDelete != nil {
		return m.MockDelete(threadId, commentId, replyId, userId)
	}
	return nil
}

type MockLikeService struct {
	MockToggle func(threadId domain.ThreadId, commentId domain.CommentId, owner domain.UserId) error
}

func (m *MockLikeService) Toggle(threadId domain.ThreadId, commentId domain.CommentId, owner domain.UserId) error {
	if m.MockToggle != nil {
		return m.MockToggle(threadId, commentId, owner)
	}
	return nil
}

// --- Helpers ---

type testDeps struct {
	auth     *MockAuthService
	threads  *MockThreadService
	comments *MockCommentService
	replies  *MockReplyService
	likes    *MockLikeService
}

// newTestRouter mounts the handler on the real route layout so URL
// parameters resolve the same way they do in production.
func newTestRouter() (*chi.Mux, *testDeps) {
	deps := &testDeps{
		auth:     &MockAuthService{},
		threads:  &MockThreadService{},
		comments: &MockCommentService{},
		replies:  &MockReplyService{},
		likes:    &MockLikeService{},
	}
	h := New(deps.auth, deps.threads, deps.comments, deps.replies, deps.likes, markdown.New())

	r := chi.NewRouter()
	r.Post("/users", h.Register)
	r.Post("/authentications", h.Login)
	r.Put("/authentications", h.RefreshAuthentication)
	r.Delete("/authentications", h.Logout)
	r.Post("/threads", h.CreateThread)
	r.Get("/threads/{threadId}", h.GetThread)
	r.Post("/threads/{threadId}/comments", h.CreateComment)
	r.Delete("/threads/{threadId}/comments/{commentId}", h.DeleteComment)
	r.Put("/threads/{threadId}/comments/{commentId}/likes", h.ToggleLike)
	r.Post("/threads/{threadId}/comments/{commentId}/replies", h.CreateReply)
	r.Delete("/threads/{threadId}/comments/{commentId}/replies/{replyId}", h.DeleteReply)
	return r, deps
}

func asUser(req *http.Request, id domain.UserId) *http.Request {
	ctx := context.WithValue(req.Context(), middleware.UserClaimsKey, &domain.User{Id: id, Username: "dicoding"})
	return req.WithContext(ctx)
}

func decodeEnvelope(t *testing.T, body io.Reader) api.Envelope {
	t.Helper()
	var env api.Envelope
	require.NoError(t, json.NewDecoder(body).Decode(&env))
	return env
}

func doRequest(r *chi.Mux, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}
