package service

import (
	"github.com/microcosm-cc/bluemonday"

	"github.com/inkwell-dev/inkwell/internal/config"
	"github.com/inkwell-dev/inkwell/internal/domain"
)

type PostService interface {
	List(limit, offset int, search string) ([]domain.PostWithVotes, error)
	Get(id domain.PostId) (domain.PostWithVotes, error)
	Create(ownerId domain.UserId, title, content string, published bool) (domain.Post, error)
	Update(id domain.PostId, requesterId domain.UserId, title, content string, published bool) (domain.Post, error)
	Delete(id domain.PostId, requesterId domain.UserId) error
}

type Posts struct {
	storage PostStorage

	titlePolicy   *bluemonday.Policy
	contentPolicy *bluemonday.Policy

	defaultPageSize int
	maxPageSize     int
}

type PostStorage interface {
	Posts(limit, offset int, search string) ([]domain.PostWithVotes, error)
	Post(id domain.PostId) (domain.PostWithVotes, error)
	CreatePost(ownerId domain.UserId, title, content string, published bool) (domain.Post, error)
	UpdatePost(id domain.PostId, requesterId domain.UserId, title, content string, published bool) (domain.Post, error)
	DeletePost(id domain.PostId, requesterId domain.UserId) error
}

func NewPosts(storage PostStorage, cfg *config.Public) *Posts {
	return &Posts{
		storage:         storage,
		titlePolicy:     bluemonday.StrictPolicy(),
		contentPolicy:   bluemonday.UGCPolicy(),
		defaultPageSize: cfg.DefaultPageSize,
		maxPageSize:     cfg.MaxPageSize,
	}
}

// List returns vote-aggregated posts. The limit is clamped to the
// configured maximum so a single request can't drain the table.
func (p *Posts) List(limit, offset int, search string) ([]domain.PostWithVotes, error) {
	if limit <= 0 {
		limit = p.defaultPageSize
	}
	if limit > p.maxPageSize {
		limit = p.maxPageSize
	}
	if offset < 0 {
		offset = 0
	}
	return p.storage.Posts(limit, offset, search)
}

func (p *Posts) Get(id domain.PostId) (domain.PostWithVotes, error) {
	return p.storage.Post(id)
}

func (p *Posts) Create(ownerId domain.UserId, title, content string, published bool) (domain.Post, error) {
	return p.storage.CreatePost(ownerId, p.titlePolicy.Sanitize(title), p.contentPolicy.Sanitize(content), published)
}

func (p *Posts) Update(id domain.PostId, requesterId domain.UserId, title, content string, published bool) (domain.Post, error) {
	return p.storage.UpdatePost(id, requesterId, p.titlePolicy.Sanitize(title), p.contentPolicy.Sanitize(content), published)
}

func (p *Posts) Delete(id domain.PostId, requesterId domain.UserId) error {
	return p.storage.DeletePost(id, requesterId)
}
