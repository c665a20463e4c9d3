package service

import (
	"fmt"
	"strings"

	"github.com/jjenkins/resume/internal/model"
	"golang.org/x/text/unicode/norm"
)

const (
	MatchExact      = "exact"
	MatchNormalized = "normalized"
)

// Matcher joins a catalog definition to the achievements extracted from a page
type Matcher interface {
	// Match returns the completion time for def, if the character has earned it
	Match(def model.AchievementDefinition, achieved map[string]int64) (int64, bool)
}

// NewMatcher returns the matcher registered under mode
func NewMatcher(mode string) (Matcher, error) {
	switch mode {
	case "", MatchExact:
		return ExactTitleMatcher{}, nil
	case MatchNormalized:
		return NewNormalizedTitleMatcher(), nil
	default:
		return nil, fmt.Errorf("unknown match mode %q", mode)
	}
}

// ExactTitleMatcher matches page text to catalog titles byte for byte
type ExactTitleMatcher struct{}

func (ExactTitleMatcher) Match(def model.AchievementDefinition, achieved map[string]int64) (int64, bool) {
	ts, ok := achieved[def.Title]
	return ts, ok
}

// NormalizedTitleMatcher compares titles after NFKC normalisation and whitespace
// trimming, so full-width/half-width variants on the page still match.
type NormalizedTitleMatcher struct{}

func NewNormalizedTitleMatcher() NormalizedTitleMatcher {
	return NormalizedTitleMatcher{}
}

func (NormalizedTitleMatcher) Match(def model.AchievementDefinition, achieved map[string]int64) (int64, bool) {
	if ts, ok := achieved[def.Title]; ok {
		return ts, true
	}

	want := normalizeTitle(def.Title)
	var (
		found bool
		best  string
		ts    int64
	)
	// pick the lexically smallest raw key among normalised collisions so the result
	// does not depend on map iteration order
	for title, t := range achieved {
		if normalizeTitle(title) != want {
			continue
		}
		if !found || title < best {
			found, best, ts = true, title, t
		}
	}
	return ts, found
}

func normalizeTitle(s string) string {
	return strings.Join(strings.Fields(norm.NFKC.String(s)), " ")
}
