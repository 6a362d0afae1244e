package setup

import (
	"time"

	"github.com/google/uuid"

	"github.com/diskusi-dev/diskusi/internal/config"
	"github.com/diskusi-dev/diskusi/internal/handler"
	"github.com/diskusi-dev/diskusi/internal/jwt"
	"github.com/diskusi-dev/diskusi/internal/markdown"
	"github.com/diskusi-dev/diskusi/internal/middleware"
	"github.com/diskusi-dev/diskusi/internal/service"
	"github.com/diskusi-dev/diskusi/internal/storage/pg"
)

// Dependencies struct to hold all initialized dependencies.
type Dependencies struct {
	Config         *config.Config
	Storage        *pg.Storage
	Handler        *handler.Handler
	Jwt            jwt.TokenService
	AuthMiddleware *middleware.Auth
}

// SetupDependencies initializes all dependencies required for the application.
func SetupDependencies(cfg *config.Config) (*Dependencies, error) {
	storage, err := pg.New(cfg, uuid.NewString)
	if err != nil {
		return nil, err
	}

	tokens := jwt.New(cfg.Private.AccessTokenKey, cfg.Private.RefreshTokenKey, cfg.Public.AccessTokenTTL, cfg.Public.RefreshTokenTTL)

	auth := service.NewAuth(storage, tokens)
	threads := service.NewThread(storage, storage)
	comments := service.NewComment(storage, storage)
	replies := service.NewReply(storage, storage, storage)
	likes := service.NewLike(storage, storage, storage, time.Now)

	h := handler.New(auth, threads, comments, replies, likes, markdown.New())

	return &Dependencies{
		Config:         cfg,
		Storage:        storage,
		Handler:        h,
		Jwt:            tokens,
		AuthMiddleware: middleware.NewAuth(tokens),
	}, nil
}
