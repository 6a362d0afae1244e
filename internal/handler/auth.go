package handler

import (
	"net/http"

	"github.com/diskusi-dev/diskusi/internal/api"
	"github.com/diskusi-dev/diskusi/internal/utils"
)

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	payload, err := utils.DecodeMap(r.Body)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	addedUser, err := h.auth.Register(payload)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, api.Success(map[string]any{"addedUser": addedUser}))
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var body api.LoginRequest
	if err := utils.DecodeValidate(r.Body, &body,
		"USER_LOGIN.NOT_CONTAIN_NEEDED_PROPERTY",
		"USER_LOGIN.NOT_MEET_DATA_TYPE_SPECIFICATION"); err != nil {
		utils.WriteError(w, err)
		return
	}

	auth, err := h.auth.Login(body)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusCreated, api.Success(auth))
}

func (h *Handler) RefreshAuthentication(w http.ResponseWriter, r *http.Request) {
	var body api.RefreshAuthenticationRequest
	if err := utils.DecodeValidate(r.Body, &body,
		"REFRESH_AUTHENTICATION_USE_CASE.NOT_CONTAIN_REFRESH_TOKEN",
		"REFRESH_AUTHENTICATION_USE_CASE.PAYLOAD_NOT_MEET_DATA_TYPE_SPECIFICATION"); err != nil {
		utils.WriteError(w, err)
		return
	}

	refreshed, err := h.auth.Refresh(body.RefreshToken)
	if err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, api.Success(refreshed))
}

func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	var body api.DeleteAuthenticationRequest
	if err := utils.DecodeValidate(r.Body, &body,
		"DELETE_AUTHENTICATION_USE_CASE.NOT_CONTAIN_REFRESH_TOKEN",
		"DELETE_AUTHENTICATION_USE_CASE.PAYLOAD_NOT_MEET_DATA_TYPE_SPECIFICATION"); err != nil {
		utils.WriteError(w, err)
		return
	}

	if err := h.auth.Logout(body.RefreshToken); err != nil {
		utils.WriteError(w, err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, api.Success(nil))
}
