package models

import "errors"

// Custom errors
var (
	ErrEmptyCohort     = errors.New("cohort has no players")
	ErrDuplicatePlayer = errors.New("duplicate player id in cohort")
	ErrInvalidOdds     = errors.New("invalid American odds")
	ErrNoSnapshot      = errors.New("no simulation snapshot available")
)
