package main

import (
	"errors"
	"log/slog"

	"github.com/jicksta/eigenrank"
	"github.com/jicksta/eigenrank/internal/config"
)

// Process exit codes. Only zero versus non-zero is meaningful to callers; the values tell failures apart.
const (
	exitOK = iota
	exitConfig
	exitSourceUnavailable
	exitParse
	exitIncompleteTeamSet
	exitMatrix
	exitDegenerate
	exitOutput
	exitUnknown
)

func rankingFromFile(filename string, cfg *config.Config, log *slog.Logger) (*eigenrank.Ranking, error) {
	ranker := eigenrank.NewRanker(cfg.RankerOptions(log)...)
	return ranker.RankFile(filename)
}

func exitCode(err error) int {
	switch {
	case errors.Is(err, eigenrank.ErrSourceUnavailable):
		return exitSourceUnavailable
	case errors.Is(err, eigenrank.ErrNameTooLong):
		return exitParse
	case errors.Is(err, eigenrank.ErrIncompleteTeamSet):
		return exitIncompleteTeamSet
	case errors.Is(err, eigenrank.ErrUnknownTeam), errors.Is(err, eigenrank.ErrSelfMatch):
		return exitMatrix
	case errors.Is(err, eigenrank.ErrDegenerateVector), errors.Is(err, eigenrank.ErrNotSquare):
		return exitDegenerate
	default:
		return exitUnknown
	}
}
