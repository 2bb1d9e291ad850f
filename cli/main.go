package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/jicksta/eigenrank/internal/config"
	"github.com/jicksta/eigenrank/internal/logger"
	"github.com/jicksta/eigenrank/report"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// run ranks the results file named by args[0], or the configured input path, and returns the exit code.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	cfg, err := config.Load(ctx)
	if err != nil {
		fmt.Fprintf(stderr, "failed to load config: %v\n", err)
		return exitConfig
	}

	log, err := logger.New(stderr, cfg.LogLevel)
	if err != nil {
		log.Warn("invalid log_level; falling back to info", "log_level", cfg.LogLevel)
	}

	filename := cfg.InputPath
	if len(args) > 0 {
		filename = args[0]
	}

	ranking, err := rankingFromFile(filename, cfg, log)
	if err != nil {
		log.Error("ranking failed", "file", filename, "error", err)
		return exitCode(err)
	}

	rr := report.NewRankingReport(ranking)
	if err := rr.PrintStandings(stdout); err != nil {
		log.Error("writing standings failed", "error", err)
		return exitOutput
	}

	if cfg.Report {
		fmt.Fprint(stdout, "\n\nRank Matrix:\n\n")
		rr.PrintMatrixTable(stdout)

		fmt.Fprint(stdout, "\n\nStandings:\n\n")
		rr.PrintStandingsTable(stdout)

		rr.PrintSummary(stdout)

		fmt.Fprintln(stdout, `
A cell in row A=X and column B=Y holds the points X earned against Y: 3 for each win and 1 for each draw.
Strength is X's share of the dominant eigenvector of this matrix.`)
	}

	return exitOK
}
