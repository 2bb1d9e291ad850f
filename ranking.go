package eigenrank

import (
	"fmt"
	"io"
	"log/slog"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// Ranking holds every intermediate result of one run so that reports can show how the percentages were
// reached.
type Ranking struct {
	ID          string
	Teams       Teams
	Matches     []*Match
	Matrix      *mat.Dense
	Eigen       *Eigenpair
	Percentages []float64

	// Components lists groups of teams connected by matches. More than one group means the percentages
	// do not compare teams across groups.
	Components [][]string
}

// Standing pairs a team with its share of the overall strength.
type Standing struct {
	Team       string  `json:"team"`
	Percentage float64 `json:"percentage"`
}

// Standings returns one Standing per team in the order the teams were discovered.
func (r *Ranking) Standings() []Standing {
	standings := make([]Standing, len(r.Teams))
	for i, team := range r.Teams {
		standings[i] = Standing{Team: team, Percentage: r.Percentages[i]}
	}
	return standings
}

// Sorted returns the standings strongest first. Equal percentages keep discovery order.
func (r *Ranking) Sorted() []Standing {
	standings := r.Standings()
	sort.SliceStable(standings, func(i, j int) bool {
		return standings[i].Percentage > standings[j].Percentage
	})
	return standings
}

// Ranker runs the ranking pipeline: teams, rank matrix, dominant eigenvector, percentages.
type Ranker struct {
	TeamCount int
	Parser    ParserConfig
	Solver    PowerIteration

	logger *slog.Logger
}

// Option configures a Ranker.
type Option func(*Ranker)

// WithLogger sets the logger used for pipeline diagnostics. A nil logger keeps the default, which discards.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Ranker) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithTeamCount sets how many distinct teams a results source must contain.
func WithTeamCount(n int) Option {
	return func(r *Ranker) { r.TeamCount = n }
}

// WithParserConfig sets the bounds used when reading results.
func WithParserConfig(cfg ParserConfig) Option {
	return func(r *Ranker) { r.Parser = cfg }
}

// WithSolver sets the power iteration parameters.
func WithSolver(solver PowerIteration) Option {
	return func(r *Ranker) { r.Solver = solver }
}

// NewRanker returns a Ranker for four teams with the default parser and solver settings.
func NewRanker(opts ...Option) *Ranker {
	r := &Ranker{
		TeamCount: 4,
		Parser:    DefaultParserConfig(),
		Solver:    DefaultPowerIteration(),
		logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// RankReader reads matches from reader and ranks them.
func (r *Ranker) RankReader(id string, reader io.Reader) (*Ranking, error) {
	matches, err := ReadMatches(reader, r.Parser)
	if err != nil {
		return nil, stageError(StageParse, err)
	}
	return r.Rank(id, matches)
}

// RankFile reads matches from filename and ranks them.
func (r *Ranker) RankFile(filename string) (*Ranking, error) {
	matches, err := ReadMatchesFile(filename, r.Parser)
	if err != nil {
		return nil, stageError(StageParse, err)
	}
	return r.Rank(filename, matches)
}

// Rank runs every stage in order and stops at the first failure, returning a *StageError. No partial
// Ranking is returned.
func (r *Ranker) Rank(id string, matches []*Match) (*Ranking, error) {
	log := r.logger.With(slog.String("ranking", id))

	teams := FindTeams(matches, r.TeamCount)
	if len(teams) != r.TeamCount {
		err := fmt.Errorf("%w: found %d of %d teams", ErrIncompleteTeamSet, len(teams), r.TeamCount)
		return nil, stageError(StageTeams, err)
	}
	log.Debug("teams indexed", slog.Any("teams", []string(teams)), slog.Int("matches", len(matches)))

	matrix, err := BuildRankMatrix(teams, matches)
	if err != nil {
		return nil, stageError(StageMatrix, err)
	}

	components := MatchComponents(teams, matches)
	if len(components) > 1 {
		log.Warn("match schedule is disconnected; percentages only compare teams within a group",
			slog.Any("groups", components))
	}

	eigen, err := r.Solver.Solve(matrix)
	if err != nil {
		return nil, stageError(StageEigen, err)
	}
	if !eigen.Converged {
		log.Warn("power iteration reached its cap without converging",
			slog.Int("iterations", eigen.Iterations), slog.Float64("eigenvalue", eigen.Value))
	}
	log.Debug("eigenpair found", slog.Float64("eigenvalue", eigen.Value),
		slog.Int("iterations", eigen.Iterations), slog.Any("eigenvector", eigen.Vector))

	percentages, err := Percentages(eigen.Vector)
	if err != nil {
		return nil, stageError(StagePercentages, err)
	}

	return &Ranking{
		ID:          id,
		Teams:       teams,
		Matches:     matches,
		Matrix:      matrix,
		Eigen:       eigen,
		Percentages: percentages,
		Components:  components,
	}, nil
}
