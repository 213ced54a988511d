package dto

import (
	"time"

	"awardshub/internal/microservices/http-api/service"
)

// UpdateVotingConfigDTO for PUT /api/admin/voting/config. clear_window removes
// both window bounds before starts_at/ends_at are applied.
type UpdateVotingConfigDTO struct {
	IsOpen          *bool      `json:"is_open"`
	StartsAt        *time.Time `json:"starts_at"`
	EndsAt          *time.Time `json:"ends_at"`
	ClearWindow     bool       `json:"clear_window"`
	AllowVoteChange *bool      `json:"allow_vote_change"`
	ShowResults     *bool      `json:"show_results"`
}

func (d UpdateVotingConfigDTO) ToPatch() service.VotingConfigPatch {
	return service.VotingConfigPatch{
		IsOpen:          d.IsOpen,
		StartsAt:        d.StartsAt,
		EndsAt:          d.EndsAt,
		ClearWindow:     d.ClearWindow,
		AllowVoteChange: d.AllowVoteChange,
		ShowResults:     d.ShowResults,
	}
}
