package setup

import (
	"github.com/inkwell-dev/inkwell/internal/config"
	"github.com/inkwell-dev/inkwell/internal/handler"
	"github.com/inkwell-dev/inkwell/internal/jwt"
	"github.com/inkwell-dev/inkwell/internal/middleware"
	"github.com/inkwell-dev/inkwell/internal/service"
	"github.com/inkwell-dev/inkwell/internal/storage/pg"
)

// Dependencies holds all initialized application dependencies.
type Dependencies struct {
	Storage        *pg.Storage
	Handler        *handler.Handler
	AuthMiddleware *middleware.Auth
	Jwt            *jwt.Jwt
	Config         *config.Config
}

// SetupDependencies wires storage, services, middleware and handlers.
func SetupDependencies(cfg *config.Config) (*Dependencies, error) {
	storage, err := pg.New(cfg)
	if err != nil {
		return nil, err
	}

	tokens := jwt.New(cfg.JwtKey(), cfg.JwtTTL())

	auth := service.NewAuth(storage, tokens)
	users := service.NewUsers(storage)
	posts := service.NewPosts(storage, &cfg.Public)
	votes := service.NewVotes(storage)

	h := handler.New(auth, users, posts, votes, storage)

	return &Dependencies{
		Storage:        storage,
		Handler:        h,
		AuthMiddleware: middleware.NewAuth(tokens),
		Jwt:            tokens,
		Config:         cfg,
	}, nil
}
