package eigenrank

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Points credited to a team's row for each result against the column team.
const (
	winPoints  = 3.0
	drawPoints = 1.0
)

// BuildRankMatrix tallies matches into a square matrix where entry (i, j) is the evidence that teams[i]
// outranks teams[j]. A win credits the winner's row in the loser's column; a draw credits both teams.
func BuildRankMatrix(teams Teams, matches []*Match) (*mat.Dense, error) {
	n := len(teams)
	if n == 0 {
		return nil, ErrIncompleteTeamSet
	}
	matrix := mat.NewDense(n, n, nil)

	for _, match := range matches {
		t1, t2 := teams.Index(match.Team1), teams.Index(match.Team2)
		if t1 == -1 {
			return nil, fmt.Errorf("%w: %s", ErrUnknownTeam, match.Team1)
		}
		if t2 == -1 {
			return nil, fmt.Errorf("%w: %s", ErrUnknownTeam, match.Team2)
		}
		if t1 == t2 {
			return nil, fmt.Errorf("%w: %s", ErrSelfMatch, match.Team1)
		}

		switch {
		case match.Score1 > match.Score2:
			credit(matrix, t1, t2, winPoints)
		case match.Score1 < match.Score2:
			credit(matrix, t2, t1, winPoints)
		default:
			credit(matrix, t1, t2, drawPoints)
			credit(matrix, t2, t1, drawPoints)
		}
	}

	return matrix, nil
}

func credit(matrix *mat.Dense, winner, loser int, points float64) {
	matrix.Set(winner, loser, matrix.At(winner, loser)+points)
}
