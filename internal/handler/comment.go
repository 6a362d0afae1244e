package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/diskusi-dev/diskusi/internal/api"
	"github.com/diskusi-dev/diskusi/internal/errors"
	"github.com/diskusi-dev/diskusi/internal/middleware"
	"github.com/diskusi-dev/diskusi/internal/utils"
)

func noUserInContext() error {
	return errors.NewAuthentication("Missing authentication")
}

func (h *Handler) CreateComment(w http.ResponseWriter, r *http.Request) {
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

	addedComment, err := h.comments.Create(payload)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, api.Success(map[string]any{"addedComment": addedComment}))
}

func (h *Handler) DeleteComment(w http.ResponseWriter, r *http.Request) {
	user := middleware.GetUserFromContext(r)
	if user == nil {
		utils.WriteError(w, noUserInContext())
		return
	}

	threadId := chi.URLParam(r, "threadId")
	commentId := chi.URLParam(r, "commentId")

	if err := h.comments.Delete(threadId, commentId, user.Id); err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, api.Success(nil))
}
