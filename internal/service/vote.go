package service

import (
	"github.com/inkwell-dev/inkwell/internal/domain"
)

type VoteService interface {
	Cast(userId domain.UserId, postId domain.PostId) error
	Retract(userId domain.UserId, postId domain.PostId) error
}

type Votes struct {
	storage VoteStorage
}

type VoteStorage interface {
	SaveVote(vote domain.Vote) error
	DeleteVote(vote domain.Vote) error
}

func NewVotes(storage VoteStorage) *Votes {
	return &Votes{storage: storage}
}

// Cast records a vote. The storage layer rejects a second vote by the
// same user on the same post with a conflict.
func (v *Votes) Cast(userId domain.UserId, postId domain.PostId) error {
	return v.storage.SaveVote(domain.Vote{UserId: userId, PostId: postId})
}

// Retract removes an existing vote; retracting a vote that was never
// cast is reported as not found.
func (v *Votes) Retract(userId domain.UserId, postId domain.PostId) error {
	return v.storage.DeleteVote(domain.Vote{UserId: userId, PostId: postId})
}
