package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"

	"github.com/lib/pq"

	"github.com/inkwell-dev/inkwell/internal/domain"
	internal_errors "github.com/inkwell-dev/inkwell/internal/errors"
)

// SaveVote records a user's vote on a post. The constraints on the votes
// table do the policing: the composite primary key turns a second cast into
// a conflict, the post foreign key turns a vote on a missing post into not
// found. No pre-checks, so a post deleted concurrently is classified the
// same way.
func (s *Storage) SaveVote(vote domain.Vote) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	_, err := s.db.ExecContext(ctx, "INSERT INTO votes(user_id, post_id) VALUES($1, $2)", vote.UserId, vote.PostId)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) {
			switch {
			case pqErr.Code == uniqueViolation:
				return &internal_errors.ErrorWithStatusCode{
					Message:    fmt.Sprintf("User %d has already voted on post %d", vote.UserId, vote.PostId),
					StatusCode: http.StatusConflict,
				}
			case pqErr.Code == foreignKeyViolation && pqErr.Constraint == "votes_post_id_fkey":
				return postNotFound(vote.PostId)
			}
		}
		return fmt.Errorf("failed to insert vote: %w", err)
	}
	return nil
}

// DeleteVote removes a user's vote on a post; deleting a vote that does
// not exist is not found.
func (s *Storage) DeleteVote(vote domain.Vote) error {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()

	return WithTx(ctx, s.db, func(tx *sql.Tx) error {
		result, err := tx.Exec("DELETE FROM votes WHERE user_id = $1 AND post_id = $2", vote.UserId, vote.PostId)
		if err != nil {
			return fmt.Errorf("failed to delete vote: %w", err)
		}
		rowsDeleted, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to check affected rows for vote deletion: %w", err)
		}
		if rowsDeleted == 0 {
			return &internal_errors.ErrorWithStatusCode{Message: "Vote does not exist", StatusCode: http.StatusNotFound}
		}
		return nil
	})
}
