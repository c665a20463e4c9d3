package service

import (
	"sort"

	"github.com/jjenkins/resume/internal/catalog"
	"github.com/jjenkins/resume/internal/model"
)

const secondsPerDay = 24 * 60 * 60

// Composer joins extracted profiles against the catalog and renders reports
type Composer struct {
	catalog *catalog.Catalog
	matcher Matcher
}

// NewComposer creates a new Composer. A nil matcher means exact title matching.
func NewComposer(c *catalog.Catalog, matcher Matcher) *Composer {
	if matcher == nil {
		matcher = ExactTitleMatcher{}
	}
	return &Composer{catalog: c, matcher: matcher}
}

// Compose builds the report for the given categories. Tracked achievements the
// character has not earned are left out; unknown categories select nothing.
func (c *Composer) Compose(profile *model.ExtractedProfile, categories []model.CategoryID) *model.Report {
	defs := c.catalog.Resolve(categories)

	entries := make([]model.ResumeEntry, 0, len(defs))
	for _, def := range defs {
		achievedAt, ok := c.matcher.Match(def, profile.Achieved)
		if !ok {
			continue
		}
		entries = append(entries, NewResumeEntry(def, achievedAt))
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].SortIndex < entries[j].SortIndex
	})

	return &model.Report{
		CharacterName: profile.CharacterName,
		HomeWorld:     profile.HomeWorld,
		Header:        model.RenderHeader(profile.CharacterName, profile.HomeWorld),
		Body:          model.RenderBody(entries),
		Entries:       entries,
	}
}

// NewResumeEntry computes the timing metrics for one earned achievement.
// Deadlines are inclusive; an achievement earned before release gives a negative day count.
func NewResumeEntry(def model.AchievementDefinition, achievedAt int64) model.ResumeEntry {
	days := DaysBetween(def.ReleaseTime, achievedAt)
	return model.ResumeEntry{
		SortIndex:     def.SortIndex,
		Title:         def.Label(),
		DaysToAchieve: days,
		PassedStrict:  days <= DaysBetween(def.ReleaseTime, def.StrictDeadline),
		PassedLenient: days <= DaysBetween(def.ReleaseTime, def.LenientDeadline),
	}
}

// DaysBetween returns the whole days from start to end, truncated toward zero
func DaysBetween(start, end int64) int64 {
	return (end - start) / secondsPerDay
}

// Tracked returns how many catalog achievements the given categories cover
func (c *Composer) Tracked(categories []model.CategoryID) int {
	return len(c.catalog.Resolve(categories))
}
