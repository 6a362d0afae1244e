package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/diskusi-dev/diskusi/internal/api"
	"github.com/diskusi-dev/diskusi/internal/domain"
	"github.com/diskusi-dev/diskusi/internal/middleware"
	"github.com/diskusi-dev/diskusi/internal/utils"
)

func (h *Handler) CreateThread(w http.ResponseWriter, r *http.Request) {
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

	addedThread, err := h.threads.Create(payload)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, api.Success(map[string]any{"addedThread": addedThread}))
}

func (h *Handler) GetThread(w http.ResponseWriter, r *http.Request) {
	threadId := chi.URLParam(r, "threadId")

	thread, err := h.threads.GetDetail(threadId)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	if r.URL.Query().Get("format") == "html" {
		if err := h.renderThread(&thread); err != nil {
			utils.WriteError(w, err)
			return
		}
	}

	utils.WriteJSON(w, http.StatusOK, api.Success(map[string]any{"thread": thread}))
}

// renderThread converts the body and every visible content field to
// sanitized HTML in place. Redaction placeholders render like any other
// markdown, their double asterisks become emphasis.
func (h *Handler) renderThread(thread *domain.ThreadDetail) error {
	body, err := h.renderer.RenderSafe(thread.Body)
	if err != nil {
		return err
	}
	thread.Body = body

	for i := range thread.Comments {
		content, err := h.renderer.RenderSafe(thread.Comments[i].Content)
		if err != nil {
			return err
		}
		thread.Comments[i].Content = content

		for j := range thread.Comments[i].Replies {
			content, err := h.renderer.RenderSafe(thread.Comments[i].Replies[j].Content)
			if err != nil {
				return err
			}
			thread.Comments[i].Replies[j].Content = content
		}
	}
	return nil
}
