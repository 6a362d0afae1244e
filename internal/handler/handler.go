package handler

import (
	"github.com/diskusi-dev/diskusi/internal/markdown"
	"github.com/diskusi-dev/diskusi/internal/service"
)

type Handler struct {
	auth     service.AuthService
	threads  service.ThreadService
	comments service.CommentService
	replies  service.ReplyService
	likes    service.LikeService
	renderer *markdown.Renderer
}

func New(auth service.AuthService, threads service.ThreadService, comments service.CommentService, replies service.ReplyService, likes service.LikeService, renderer *markdown.Renderer) *Handler {
	return &Handler{auth, threads, comments, replies, likes, renderer}
}
