package eigenrank

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Match is a single result between two teams.
type Match struct {
	Team1  string
	Team2  string
	Score1 uint
	Score2 uint
}

// ParserConfig bounds how much of a results source is consumed.
type ParserConfig struct {
	MaxMatches    int
	MaxNameLength int
}

// DefaultParserConfig reads at most 12 matches with team names of up to 20 characters.
func DefaultParserConfig() ParserConfig {
	return ParserConfig{MaxMatches: 12, MaxNameLength: 20}
}

var matchLine = regexp.MustCompile(`^([^-\s]+)-([^-\s]+) ([0-9]+)-([0-9]+)$`)

// ReadMatches deserializes matches from a Reader using the following format, one match per line:
//
//	<team1>-<team2> <score1>-<score2>
//
// For example:
//
//	Lions-Tigers 3-1
//
// Reading stops at the first line that does not have this shape, or once cfg.MaxMatches matches have
// been read. Anything after that is ignored, so a malformed first line yields no matches and no error.
func ReadMatches(reader io.Reader, cfg ParserConfig) ([]*Match, error) {
	var matches []*Match
	scanner := bufio.NewScanner(reader)
	for len(matches) < cfg.MaxMatches && scanner.Scan() {
		match, ok, err := parseMatch(strings.TrimSuffix(scanner.Text(), "\r"), cfg)
		if err != nil {
			return nil, err
		}
		if !ok {
			return matches, nil
		}
		matches = append(matches, match)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	return matches, nil
}

// ReadMatchesFile opens filename and reads its matches with ReadMatches.
func ReadMatchesFile(filename string, cfg ParserConfig) ([]*Match, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}
	defer f.Close()
	return ReadMatches(f, cfg)
}

// parseMatch reports ok=false for lines that do not match the expected structure.
func parseMatch(line string, cfg ParserConfig) (*Match, bool, error) {
	tokens := matchLine.FindStringSubmatch(line)
	if tokens == nil {
		return nil, false, nil
	}

	for _, name := range tokens[1:3] {
		if utf8.RuneCountInString(name) > cfg.MaxNameLength {
			return nil, false, fmt.Errorf("%w: %q exceeds %d characters", ErrNameTooLong, name, cfg.MaxNameLength)
		}
	}

	// Digits-only scores can still overflow uint.
	score1, err := strconv.ParseUint(tokens[3], 10, 0)
	if err != nil {
		return nil, false, nil
	}
	score2, err := strconv.ParseUint(tokens[4], 10, 0)
	if err != nil {
		return nil, false, nil
	}

	return &Match{
		Team1:  tokens[1],
		Team2:  tokens[2],
		Score1: uint(score1),
		Score2: uint(score2),
	}, true, nil
}
