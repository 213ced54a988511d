package models

import "time"

// VotingConfigID is the primary key of the single voting_config row.
const VotingConfigID = 1

type VotingConfig struct {
	ID              int16      `json:"-" gorm:"primaryKey"`
	IsOpen          bool       `json:"is_open" gorm:"not null;default:false"`
	StartsAt        *time.Time `json:"starts_at,omitempty"`
	EndsAt          *time.Time `json:"ends_at,omitempty"`
	AllowVoteChange bool       `json:"allow_vote_change" gorm:"not null"`
	ShowResults     bool       `json:"show_results" gorm:"not null;default:false"`
	UpdatedAt       time.Time  `json:"updated_at" gorm:"autoUpdateTime"`
}

func (VotingConfig) TableName() string {
	return "voting_config"
}

// DefaultVotingConfig is the row inserted when none exists: closed, changes allowed, results hidden.
func DefaultVotingConfig() VotingConfig {
	return VotingConfig{ID: VotingConfigID, AllowVoteChange: true}
}

// AcceptingVotes reports whether a vote cast at now is inside the configured window.
func (v *VotingConfig) AcceptingVotes(now time.Time) bool {
	if !v.IsOpen {
		return false
	}
	if v.StartsAt != nil && now.Before(*v.StartsAt) {
		return false
	}
	if v.EndsAt != nil && now.After(*v.EndsAt) {
		return false
	}
	return true
}
