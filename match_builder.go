package eigenrank

// MatchBuilder exposes a simple builder-pattern DSL for building up a list of matches progressively.
type MatchBuilder struct {
	RankingID string
	matches   []*Match
}

func NewMatchBuilder(optionalRankingID ...string) *MatchBuilder {
	var rankingID string
	if len(optionalRankingID) == 1 {
		rankingID = optionalRankingID[0]
	} else {
		rankingID = "Ranking"
	}
	return &MatchBuilder{RankingID: rankingID, matches: []*Match{}}
}

// Match records team1 scoring score1 against team2 scoring score2.
func (builder *MatchBuilder) Match(team1, team2 string, score1, score2 uint) *MatchBuilder {
	builder.matches = append(builder.matches, &Match{
		Team1:  team1,
		Team2:  team2,
		Score1: score1,
		Score2: score2,
	})
	return builder
}

// Win is shorthand for a 1-0 win of winner over loser.
func (builder *MatchBuilder) Win(winner, loser string) *MatchBuilder {
	return builder.Match(winner, loser, 1, 0)
}

// Draw is shorthand for a 0-0 draw.
func (builder *MatchBuilder) Draw(team1, team2 string) *MatchBuilder {
	return builder.Match(team1, team2, 0, 0)
}

func (builder *MatchBuilder) Matches() []*Match {
	return builder.matches
}

// Rank is simply a shorthand for ranker.Rank(builder.RankingID, builder.Matches())
func (builder *MatchBuilder) Rank(ranker *Ranker) (*Ranking, error) {
	return ranker.Rank(builder.RankingID, builder.matches)
}
