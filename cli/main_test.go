package main

import (
	"bytes"
	"context"
	"fmt"
	"os"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/ginkgo/extensions/table"
	. "github.com/onsi/gomega"

	"github.com/jicksta/eigenrank"
)

var _ = Describe("run", func() {

	var stdout, stderr bytes.Buffer

	BeforeEach(func() {
		stdout.Reset()
		stderr.Reset()
	})

	AfterEach(func() {
		_ = os.Unsetenv("RANKER_REPORT")
		_ = os.Unsetenv("RANKER_MAX_ITERATIONS")
	})

	It("prints the percentage of every team in discovery order", func() {
		code := run(context.Background(), []string{"../fixtures/scenario.txt"}, &stdout, &stderr)
		Expect(code).To(Equal(exitOK))
		Expect(stdout.String()).To(Equal("A: 37.50%\nB: 0.00%\nC: 50.00%\nD: 12.50%\n"))
	})

	It("adds tables when the report is enabled", func() {
		_ = os.Setenv("RANKER_REPORT", "true")
		code := run(context.Background(), []string{"../fixtures/round_robin.txt"}, &stdout, &stderr)
		Expect(code).To(Equal(exitOK))
		Expect(stdout.String()).To(HavePrefix("Lions: 23.81%\nBears: 20.62%\nEagles: 26.31%\nWolves: 29.26%\n"))
		Expect(stdout.String()).To(ContainSubstring("Rank Matrix:"))
		Expect(stdout.String()).To(ContainSubstring("Converged:         true"))
	})

	It("fails on invalid configuration without printing standings", func() {
		_ = os.Setenv("RANKER_MAX_ITERATIONS", "0")
		code := run(context.Background(), []string{"../fixtures/scenario.txt"}, &stdout, &stderr)
		Expect(code).To(Equal(exitConfig))
		Expect(stdout.String()).To(BeEmpty())
		Expect(stderr.String()).To(ContainSubstring("failed to load config"))
	})

	DescribeTable("exits with a distinct code per failure and prints nothing",
		func(filename string, expected int) {
			code := run(context.Background(), []string{filename}, &stdout, &stderr)
			Expect(code).To(Equal(expected))
			Expect(stdout.String()).To(BeEmpty())
			Expect(stderr.String()).To(ContainSubstring("ranking failed"))
		},
		Entry("missing file", "../fixtures/missing.txt", exitSourceUnavailable),
		Entry("too few teams", "../fixtures/truncated.txt", exitIncompleteTeamSet),
	)

	DescribeTable("exitCode",
		func(err error, expected int) {
			Expect(exitCode(err)).To(Equal(expected))
		},
		Entry("source", fmt.Errorf("%w: gone", eigenrank.ErrSourceUnavailable), exitSourceUnavailable),
		Entry("parse", &eigenrank.StageError{Stage: eigenrank.StageParse, Err: eigenrank.ErrNameTooLong}, exitParse),
		Entry("teams", &eigenrank.StageError{Stage: eigenrank.StageTeams, Err: eigenrank.ErrIncompleteTeamSet}, exitIncompleteTeamSet),
		Entry("unknown team", eigenrank.ErrUnknownTeam, exitMatrix),
		Entry("self match", eigenrank.ErrSelfMatch, exitMatrix),
		Entry("degenerate", eigenrank.ErrDegenerateVector, exitDegenerate),
		Entry("anything else", fmt.Errorf("boom"), exitUnknown),
	)

})
