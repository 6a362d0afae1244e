package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/diskusi-dev/diskusi/internal/api"
	"github.com/diskusi-dev/diskusi/internal/middleware"
	"github.com/diskusi-dev/diskusi/internal/utils"
)

// ToggleLike likes the comment when no like exists and removes the like
// otherwise. There is no separate unlike endpoint.
func (h *Handler) ToggleLike(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)
	if user == nil {
		utils.WriteError(w, noUserInContext())
		return
	}

	threadId := chi.URLParam(r, "threadId")
	commentId := chi.URLParam(r, "commentId")

	if err := h.likes.Toggle(threadId, commentId, user.Id); err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, api.Success(nil))
}
