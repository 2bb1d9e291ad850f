package eigenrank

import (
	"errors"
	"fmt"
)

var (
	// ErrSourceUnavailable means the results source could not be opened or read.
	ErrSourceUnavailable = errors.New("match source unavailable")

	// ErrNameTooLong means a well-formed line carried a team name over the configured bound.
	ErrNameTooLong = errors.New("team name too long")

	// ErrIncompleteTeamSet means fewer than the required number of distinct teams appear in the matches.
	ErrIncompleteTeamSet = errors.New("incomplete team set")

	// ErrUnknownTeam means a match references a team that is not part of the resolved team set.
	ErrUnknownTeam = errors.New("unknown team")

	// ErrSelfMatch means a match lists the same team on both sides.
	ErrSelfMatch = errors.New("team cannot play itself")

	// ErrDegenerateVector means a zero-magnitude or zero-sum vector was produced, so the matrix has no
	// usable dominant mode.
	ErrDegenerateVector = errors.New("degenerate vector")

	// ErrNotSquare means the solver was handed a non-square matrix.
	ErrNotSquare = errors.New("matrix is not square")
)

// Pipeline stage names reported by StageError.
const (
	StageParse       = "parse"
	StageTeams       = "teams"
	StageMatrix      = "matrix"
	StageEigen       = "eigen"
	StagePercentages = "percentages"
)

// StageError records which pipeline stage failed.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return fmt.Sprintf("%s stage failed: %v", e.Stage, e.Err)
}

func (e *StageError) Unwrap() error { return e.Err }

func stageError(stage string, err error) *StageError {
	return &StageError{Stage: stage, Err: err}
}
