package api

import "github.com/inkwell-dev/inkwell/internal/domain"

// VoteRequest carries the direction as a pointer so that an explicit 0
// (retract) survives the required check.
type VoteRequest struct {
	PostId domain.PostId `json:"post_id" validate:"required"`
	Dir    *int          `json:"dir" validate:"required,gte=0,lte=1"`
}

type VoteResponse struct {
	Message string `json:"message"`
}
