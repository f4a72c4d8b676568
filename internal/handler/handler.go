package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/inkwell-dev/inkwell/internal/logger"
	"github.com/inkwell-dev/inkwell/internal/service"
)

// HealthChecker is the piece of storage the readiness probe needs.
type HealthChecker interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	auth   service.AuthService
	users  service.UserService
	posts  service.PostService
	votes  service.VoteService
	health HealthChecker
}

func New(auth service.AuthService, users service.UserService, posts service.PostService, votes service.VoteService, health HealthChecker) *Handler {
	return &Handler{auth, users, posts, votes, health}
}

func writeJSON(w http.ResponseWriter, statusCode int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Log.Error("failed to encode response", "error", err)
	}
}
