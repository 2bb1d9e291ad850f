package eigenrank

import (
	mapset "github.com/deckarep/golang-set"
)

// Teams is the ordered set of participants. A team's position is its row and column in the rank matrix.
type Teams []string

// FindTeams assigns indices to distinct team names in the order they first appear, looking at Team1 then
// Team2 of each match. It stops once n names have been found, so later newcomers are not indexed. Callers
// must check that the result has exactly n entries.
func FindTeams(matches []*Match, n int) Teams {
	teams := make(Teams, 0, n)
	seen := mapset.NewThreadUnsafeSet()

	for _, match := range matches {
		for _, name := range []string{match.Team1, match.Team2} {
			if len(teams) == n {
				return teams
			}
			if seen.Add(name) {
				teams = append(teams, name)
			}
		}
	}
	return teams
}

// Index returns the index of name, or -1 when name is not one of the teams.
func (teams Teams) Index(name string) int {
	for i, team := range teams {
		if team == name {
			return i
		}
	}
	return -1
}
