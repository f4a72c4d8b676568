package domain

import "time"

// Owner is the public projection of a user embedded in post responses.
// The password hash never leaves the storage layer through this type.
type Owner struct {
	Id    UserId `json:"id"`
	Email Email  `json:"email"`
}

type Post struct {
	Id        PostId    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Published bool      `json:"published"`
	CreatedAt time.Time `json:"created_at"`
	Owner     Owner     `json:"owner"`
}

// PostWithVotes pairs a post with the number of votes cast on it.
// Individual vote rows are never exposed, only this aggregate.
type PostWithVotes struct {
	Post  Post  `json:"post"`
	Votes int64 `json:"votes"`
}
