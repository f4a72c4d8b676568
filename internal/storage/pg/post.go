package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"github.com/inkwell-dev/inkwell/internal/domain"
	internal_errors "github.com/inkwell-dev/inkwell/internal/errors"
)

// postWithVotesSelect is the vote-aggregation query shared by Posts and Post:
// posts outer-joined against votes, grouped, with a per-post count. Posts
// without votes stay in the result with a count of 0.
const postWithVotesSelect = `
    SELECT p.id, p.title, p.content, p.published, p.created_at,
           u.id, u.email,
           COUNT(v.post_id) AS votes
    FROM posts p
    JOIN users u ON u.id = p.owner_id
    LEFT JOIN votes v ON v.post_id = p.id`

// Posts lists vote-aggregated posts whose title contains search as a
// case-sensitive substring (empty string matches everything). Ordered by
// id so pagination is stable.
func (s *Storage) Posts(limit, offset int, search string) ([]domain.PostWithVotes, error) {
	rows, err := s.db.Query(postWithVotesSelect+`
        WHERE position($1 in p.title) > 0
        GROUP BY p.id, u.id
        ORDER BY p.id
        LIMIT $2 OFFSET $3`,
		search, limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query posts: %w", err)
	}
	defer rows.Close()

	posts := make([]domain.PostWithVotes, 0)
	for rows.Next() {
		var pwv domain.PostWithVotes
		if err := scanPostWithVotes(rows.Scan, &pwv); err != nil {
			return nil, fmt.Errorf("failed to scan post row: %w", err)
		}
		posts = append(posts, pwv)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return posts, nil
}

// Post is the single-row form of the same aggregation.
func (s *Storage) Post(id domain.PostId) (domain.PostWithVotes, error) {
	var pwv domain.PostWithVotes
	row := s.db.QueryRow(postWithVotesSelect+`
        WHERE p.id = $1
        GROUP BY p.id, u.id`,
		id,
	)
	if err := scanPostWithVotes(row.Scan, &pwv); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.PostWithVotes{}, postNotFound(id)
		}
		return domain.PostWithVotes{}, fmt.Errorf("failed to query post: %w", err)
	}
	return pwv, nil
}

// CreatePost inserts a post owned by ownerId and returns the stored row,
// including the server-assigned id and timestamp.
func (s *Storage) CreatePost(ownerId domain.UserId, title, content string, published bool) (domain.Post, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	post := domain.Post{Title: title, Content: content, Published: published}
	err := WithTx(ctx, s.db, func(tx *sql.Tx) error {
		err := tx.QueryRow(
			"INSERT INTO posts(title, content, published, owner_id) VALUES($1, $2, $3, $4) RETURNING id, created_at",
			title, content, published, ownerId,
		).Scan(&post.Id, &post.CreatedAt)
		if err != nil {
			return fmt.Errorf("failed to insert post: %w", err)
		}

		post.Owner, err = s.owner(tx, ownerId)
		return err
	})
	if err != nil {
		return domain.Post{}, err
	}
	return post, nil
}

// DeletePost removes a post. Existence is checked before ownership, so a
// non-owner probing a nonexistent id sees 404, not 403. Votes on the post
// are removed by the schema's cascade.
func (s *Storage) DeletePost(id domain.PostId, requesterId domain.UserId) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	return WithTx(ctx, s.db, func(tx *sql.Tx) error {
		if err := s.checkPostOwnership(tx, id, requesterId); err != nil {
			return err
		}

		if _, err := tx.Exec("DELETE FROM posts WHERE id = $1", id); err != nil {
			return fmt.Errorf("failed to delete post: %w", err)
		}
		return nil
	})
}

// UpdatePost overwrites the three mutable fields and returns the updated
// row. Same guard order as DeletePost.
func (s *Storage) UpdatePost(id domain.PostId, requesterId domain.UserId, title, content string, published bool) (domain.Post, error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	post := domain.Post{Id: id, Title: title, Content: content, Published: published}
	err := WithTx(ctx, s.db, func(tx *sql.Tx) error {
		if err := s.checkPostOwnership(tx, id, requesterId); err != nil {
			return err
		}

		err := tx.QueryRow(
			"UPDATE posts SET title = $1, content = $2, published = $3 WHERE id = $4 RETURNING created_at",
			title, content, published, id,
		).Scan(&post.CreatedAt)
		if err != nil {
			return fmt.Errorf("failed to update post: %w", err)
		}

		post.Owner, err = s.owner(tx, requesterId)
		return err
	})
	if err != nil {
		return domain.Post{}, err
	}
	return post, nil
}

// checkPostOwnership verifies, in order, that the post exists and that it
// belongs to requesterId. Two sequential guard clauses: the 404/403
// precedence is observable behavior and must not collapse into one check.
func (s *Storage) checkPostOwnership(q Querier, id domain.PostId, requesterId domain.UserId) error {
	var ownerId domain.UserId
	err := q.QueryRow("SELECT owner_id FROM posts WHERE id = $1", id).Scan(&ownerId)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return postNotFound(id)
		}
		return fmt.Errorf("failed to query post owner: %w", err)
	}

	if ownerId != requesterId {
		return &internal_errors.ErrorWithStatusCode{
			Message:    "You are not the owner of this post",
			StatusCode: http.StatusForbidden,
		}
	}

	return nil
}

func (s *Storage) owner(q Querier, id domain.UserId) (domain.Owner, error) {
	var owner domain.Owner
	err := q.QueryRow("SELECT id, email FROM users WHERE id = $1", id).Scan(&owner.Id, &owner.Email)
	if err != nil {
		return domain.Owner{}, fmt.Errorf("failed to query post owner: %w", err)
	}
	return owner, nil
}

func scanPostWithVotes(scan func(...interface{}) error, pwv *domain.PostWithVotes) error {
	return scan(
		&pwv.Post.Id, &pwv.Post.Title, &pwv.Post.Content, &pwv.Post.Published, &pwv.Post.CreatedAt,
		&pwv.Post.Owner.Id, &pwv.Post.Owner.Email,
		&pwv.Votes,
	)
}

func postNotFound(id domain.PostId) error {
	return &internal_errors.ErrorWithStatusCode{
		Message:    fmt.Sprintf("Post with id %d not found", id),
		StatusCode: http.StatusNotFound,
	}
}
