package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/diskusi-dev/diskusi/internal/api"
	"github.com/diskusi-dev/diskusi/internal/middleware"
	"github.com/diskusi-dev/diskusi/internal/utils"
)

func (h *Handler) CreateReply(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)
	if user == nil {
		utils.WriteError(w, noUserInContext())
		return
	}

	payload, err := utils.DecodeMap(r.Body)
	if err != nil {
		utils.WriteError(w, err)
		return
	}
	payload["owner"] = user.Id
	payload["threadId"] = chi.URLParam(r, "threadId")
	payload["commentId"] = chi.URLParam(r, "commentId")

	addedReply, err := h.replies.Create(payload)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, api.Success(map[string]any{"addedReply": addedReply}))
}

func (h *Handler) DeleteReply(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)
	if user == nil {
		utils.WriteError(w, noUserInContext())
		return
	}

	threadId := chi.URLParam(r, "threadId")
	commentId := chi.URLParam(r, "commentId")
	replyId := chi.URLParam(r, "replyId")

	if err := h.replies.Delete(threadId, commentId, replyId, user.Id); err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, api.Success(nil))
}
