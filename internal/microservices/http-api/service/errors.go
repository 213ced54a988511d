package service

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrInvalidInput = errors.New("invalid input")

	ErrSlugTaken           = errors.New("slug already in use")
	ErrCategoryNotFound    = errors.New("category not found")
	ErrCategoryHasNominees = errors.New("category still has nominees")
	ErrCategoryInactive    = errors.New("category is not accepting votes")
	ErrNomineeHasVotes     = errors.New("nominee already has votes in its category")
	ErrGenreNotFound       = errors.New("genre not found")
	ErrGenreHasMembers     = errors.New("genre still has members")

	ErrVotingClosed = errors.New("voting is closed")
	ErrAlreadyVoted = errors.New("already voted in this category")
	ErrVoteLocked   = errors.New("votes cannot be changed")

	ErrPredefinedSection = errors.New("predefined content sections cannot be deleted")
	ErrResultsHidden     = errors.New("results are not public")
	ErrSelfDemotion      = errors.New("admins cannot remove their own admin role")
)

// invalid wraps ErrInvalidInput with a field-level message.
func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// notFoundAs replaces a missing-row error with sentinel, leaving other errors untouched.
func notFoundAs(err, sentinel error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return sentinel
	}
	return err
}
