package dto

import (
	"time"

	"awardshub/internal/microservices/http-api/models"
)

// CastVoteRequest for POST /api/votes
type CastVoteRequest struct {
	NomineeID int64 `json:"nominee_id" binding:"required,gt=0"`
}

type VoteResponse struct {
	CategoryID   int64     `json:"category_id"`
	CategoryName string    `json:"category_name,omitempty"`
	NomineeID    int64     `json:"nominee_id"`
	NomineeName  string    `json:"nominee_name,omitempty"`
	Changed      bool      `json:"changed,omitempty"`
	VotedAt      time.Time `json:"voted_at"`
}

func VoteFromModel(v models.Vote) VoteResponse {
	resp := VoteResponse{
		CategoryID: v.CategoryID,
		NomineeID:  v.NomineeID,
		VotedAt:    v.UpdatedAt,
	}
	if v.Category != nil {
		resp.CategoryName = v.Category.Name
	}
	if v.Nominee != nil {
		resp.NomineeName = v.Nominee.Name
	}
	return resp
}
