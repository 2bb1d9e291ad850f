package report

import (
	"fmt"
	"io"

	"github.com/olekukonko/tablewriter"

	"github.com/jicksta/eigenrank"
)

type RankingReport struct {
	Ranking *eigenrank.Ranking
}

func NewRankingReport(ranking *eigenrank.Ranking) *RankingReport {
	return &RankingReport{
		Ranking: ranking,
	}
}

// PrintStandings writes one "<team>: <percentage>%" line per team in discovery order.
func (rr *RankingReport) PrintStandings(writer io.Writer) error {
	for _, standing := range rr.Ranking.Standings() {
		if _, err := fmt.Fprintf(writer, "%s: %.2f%%\n", standing.Team, standing.Percentage); err != nil {
			return err
		}
	}
	return nil
}

// PrintMatrixTable renders the rank matrix. A cell in row A and column B holds the points A earned
// against B.
func (rr *RankingReport) PrintMatrixTable(writer io.Writer) {
	teams := rr.Ranking.Teams
	matrix := rr.Ranking.Matrix
	table := newMarkdownTable(writer)

	var headingsWithPrefixes = []string{"A"}
	for _, team := range teams {
		headingsWithPrefixes = append(headingsWithPrefixes, "B="+team)
	}
	table.SetHeader(headingsWithPrefixes)

	for i, rowTeam := range teams {
		var cells = []string{"A=" + rowTeam}
		for j := range teams {
			if i == j {
				cells = append(cells, "")
				continue
			}
			cells = append(cells, fmt.Sprintf("%g", matrix.At(i, j)))
		}
		table.Append(cells)
	}

	table.Render()
}

// PrintStandingsTable renders the standings strongest first along with the eigenvector components.
func (rr *RankingReport) PrintStandingsTable(writer io.Writer) {
	ranking := rr.Ranking
	table := newMarkdownTable(writer)
	table.SetHeader([]string{"Rank", "Team", "Strength", "Eigenvector"})
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT,
	})

	for i, standing := range ranking.Sorted() {
		component := ranking.Eigen.Vector[ranking.Teams.Index(standing.Team)]
		table.Append([]string{
			fmt.Sprint(i + 1),
			standing.Team,
			fmt.Sprintf("%.2f%%", standing.Percentage),
			fmt.Sprintf("%.6f", component),
		})
	}

	table.Render()
}

// PrintSummary describes how the solver finished.
func (rr *RankingReport) PrintSummary(writer io.Writer) {
	eigen := rr.Ranking.Eigen
	fmt.Fprintf(writer, `
Number of teams:   %d
Number of matches: %d
Eigenvalue:        %.6f
Iterations:        %d
Converged:         %t
Match groups:      %d
`,
		len(rr.Ranking.Teams),
		len(rr.Ranking.Matches),
		eigen.Value,
		eigen.Iterations,
		eigen.Converged,
		len(rr.Ranking.Components))
}

// Configure for Markdown table formatting
func newMarkdownTable(writer io.Writer) *tablewriter.Table {
	table := tablewriter.NewWriter(writer)
	table.SetBorders(tablewriter.Border{Left: true, Top: false, Right: true, Bottom: false})
	table.SetCenterSeparator("|")
	table.SetAutoFormatHeaders(false)
	return table
}
