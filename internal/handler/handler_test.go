package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/inkwell-dev/inkwell/internal/domain"
	mw "github.com/inkwell-dev/inkwell/internal/middleware"
)

// --- Shared test helpers and service mocks ---

func createRequest(t *testing.T, method, path string, body []byte) *http.Request {
	t.Helper()
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

// withUser injects an authenticated user the same way the auth middleware does.
func withUser(userId domain.UserId) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := &domain.User{Id: userId}
			ctx := context.WithValue(r.Context(), mw.UserClaimsKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func newTestRouter(h *Handler, userId domain.UserId) *chi.Mux {
	router := chi.NewRouter()

	router.Post("/login", h.Login)
	router.Post("/users", h.CreateUser)
	router.Get("/users/{userId}", h.GetUser)

	router.Route("/posts", func(r chi.Router) {
		r.Get("/", h.ListPosts)
		r.Get("/{postId}", h.GetPost)

		r.Group(func(r chi.Router) {
			r.Use(withUser(userId))
			r.Post("/", h.CreatePost)
			r.Put("/{postId}", h.UpdatePost)
			r.Delete("/{postId}", h.DeletePost)
		})
	})

	router.With(withUser(userId)).Post("/vote", h.Vote)

	return router
}

type MockAuthService struct {
	MockLogin func(creds domain.Credentials) (string, error)
}

func (m *MockAuthService) Login(creds domain.Credentials) (string, error) {
	if m.MockLogin != nil {
		return m.MockLogin(creds)
	}
	return "", nil
}

type MockUserService struct {
	MockCreate func(creds domain.Credentials) (domain.User, error)
	MockGet    func(id domain.UserId) (domain.User, error)
}

func (m *MockUserService) Create(creds domain.Credentials) (domain.User, error) {
	if m.MockCreate != nil {
		return m.MockCreate(creds)
	}
	return domain.User{}, nil
}

func (m *MockUserService) Get(id domain.UserId) (domain.User, error) {
	if m.MockGet != nil {
		return m.MockGet(id)
	}
	return domain.User{}, nil
}

type MockPostService struct {
	MockList   func(limit, offset int, search string) ([]domain.PostWithVotes, error)
	MockGet    func(id domain.PostId) (domain.PostWithVotes, error)
	MockCreate func(ownerId domain.UserId, title, content string, published bool) (domain.Post, error)
	MockUpdate func(id domain.PostId, requesterId domain.UserId, title, content string, published bool) (domain.Post, error)
	MockDelete func(id domain.PostId, requesterId domain.UserId) error
}

func (m *MockPostService) List(limit, offset int, search string) ([]domain.PostWithVotes, error) {
	if m.MockList != nil {
		return m.MockList(limit, offset, search)
	}
	return nil, nil
}

func (m *MockPostService) Get(id domain.PostId) (domain.PostWithVotes, error) {
	if m.MockGet != nil {
		return m.MockGet(id)
	}
	return domain.PostWithVotes{}, nil
}

func (m *MockPostService) Create(ownerId domain.UserId, title, content string, published bool) (domain.Post, error) {
	if m.MockCreate != nil {
		return m.MockCreate(ownerId, title, content, published)
	}
	return domain.Post{}, nil
}

func (m *MockPostService) Update(id domain.PostId, requesterId domain.UserId, title, content string, published bool) (domain.Post, error) {
	if m.MockUpdate != nil {
		return m.MockUpdate(id, requesterId, title, content, published)
	}
	return domain.Post{}, nil
}

func (m *MockPostService) Delete(id domain.PostId, requesterId domain.UserId) error {
	if m.MockDelete != nil {
		return m.MockDelete(id, requesterId)
	}
	return nil
}

type MockVoteService struct {
	MockCast    func(userId domain.UserId, postId domain.PostId) error
	MockRetract func(userId domain.UserId, postId domain.PostId) error
}

func (m *MockVoteService) Cast(userId domain.UserId, postId domain.PostId) error {
	if m.MockCast != nil {
		return m.MockCast(userId, postId)
	}
	return nil
}

func (m *MockVoteService) Retract(userId domain.UserId, postId domain.PostId) error {
	if m.MockRetract != nil {
		return m.MockRetract(userId, postId)
	}
	return nil
}
