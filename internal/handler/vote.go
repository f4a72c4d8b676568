package handler

import (
	"net/http"

	"github.com/inkwell-dev/inkwell/internal/api"
	"github.com/inkwell-dev/inkwell/internal/domain"
	mw "github.com/inkwell-dev/inkwell/internal/middleware"
	"github.com/inkwell-dev/inkwell/internal/utils"
)

// Vote routes the direction to the cast/retract repository operations:
// dir=1 records a vote, dir=0 removes one.
func (h *Handler) Vote(w http.ResponseWriter, r *http.Request) {
	user := mw.GetUserFromContext(r)
	if user == nil {
		http.Error(w, "Not authorized", http.StatusUnauthorized)
		return
	}

	var body api.VoteRequest
	if err := utils.DecodeValidate(r.Body, &body); err != nil {
		utils.WriteErrorAndStatusCode(w, err)
		return
	}

	switch *body.Dir {
	case domain.DirCast:
		if err := h.votes.Cast(user.Id, body.PostId); err != nil {
			utils.WriteErrorAndStatusCode(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, api.VoteResponse{Message: "successfully added vote"})
	case domain.DirRetract:
		if err := h.votes.Retract(user.Id, body.PostId); err != nil {
			utils.WriteErrorAndStatusCode(w, err)
			return
		}
		writeJSON(w, http.StatusCreated, api.VoteResponse{Message: "successfully deleted vote"})
	}
}
