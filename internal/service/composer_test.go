package service

import (
	"strings"
	"testing"

	"github.com/jjenkins/resume/internal/catalog"
	"github.com/jjenkins/resume/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const day = 86400

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	c, err := catalog.New([]catalog.Category{
		{
			ID:   model.CategoryUltimate,
			Name: "Ultimate",
			Achievements: []model.AchievementDefinition{
				{SortIndex: 1, Title: "Example", ReleaseTime: 1000, StrictDeadline: 1000 + day, LenientDeadline: 1000 + 2*day},
				{SortIndex: 3, Title: "Later", DisplayName: "Later Raid", ReleaseTime: 0, StrictDeadline: 10 * day, LenientDeadline: 20 * day},
			},
		},
		{
			ID:   model.CategorySavage,
			Name: "Savage",
			Achievements: []model.AchievementDefinition{
				{SortIndex: 2, Title: "Middle", ReleaseTime: 0, StrictDeadline: 5 * day, LenientDeadline: 5 * day},
				{SortIndex: 4, Title: "Unearned", ReleaseTime: 0, StrictDeadline: day, LenientDeadline: day},
			},
		},
	})
	require.NoError(t, err)
	return c
}

func profile(achieved map[string]int64) *model.ExtractedProfile {
	return &model.ExtractedProfile{CharacterName: "Hoge Fuga", HomeWorld: "Tiamat", Achieved: achieved}
}

func TestComposeScenarios(t *testing.T) {
	tests := []struct {
		name        string
		achievedAt  int64
		wantDays    int64
		wantStrict  bool
		wantLenient bool
		wantLine    string
	}{
		{
			name:        "one day in passes both",
			achievedAt:  1000 + day,
			wantDays:    1,
			wantStrict:  true,
			wantLenient: true,
			wantLine:    "Example: 1 days (in minor patch: ○/in major patch: ○)\n",
		},
		{
			name:        "past strict window",
			achievedAt:  1000 + 200000,
			wantDays:    2,
			wantStrict:  false,
			wantLenient: true,
			wantLine:    "Example: 2 days (in minor patch: ×/in major patch: ○)\n",
		},
		{
			name:        "exactly on lenient deadline",
			achievedAt:  1000 + 2*day,
			wantDays:    2,
			wantStrict:  false,
			wantLenient: true,
			wantLine:    "Example: 2 days (in minor patch: ×/in major patch: ○)\n",
		},
		{
			name:        "past both windows",
			achievedAt:  1000 + 3*day,
			wantDays:    3,
			wantLine:    "Example: 3 days (in minor patch: ×/in major patch: ×)\n",
		},
		{
			name:        "before release is reported as-is",
			achievedAt:  1000 - 2*day,
			wantDays:    -2,
			wantStrict:  true,
			wantLenient: true,
			wantLine:    "Example: -2 days (in minor patch: ○/in major patch: ○)\n",
		},
	}

	c := NewComposer(testCatalog(t), nil)

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := c.Compose(profile(map[string]int64{"Example": tt.achievedAt}), []model.CategoryID{model.CategoryUltimate})

			require.Len(t, report.Entries, 1)
			e := report.Entries[0]
			assert.Equal(t, int64(1), e.SortIndex)
			assert.Equal(t, tt.wantDays, e.DaysToAchieve)
			assert.Equal(t, tt.wantStrict, e.PassedStrict)
			assert.Equal(t, tt.wantLenient, e.PassedLenient)
			assert.Equal(t, tt.wantLine, report.Body)
			assert.Equal(t, "Hoge Fuga @ Tiamat", report.Header)
		})
	}
}

func TestComposeStrictDeadlineIsInclusive(t *testing.T) {
	c := NewComposer(testCatalog(t), nil)

	report := c.Compose(profile(map[string]int64{"Example": 1000 + day}), []model.CategoryID{model.CategoryUltimate})

	require.Len(t, report.Entries, 1)
	assert.True(t, report.Entries[0].PassedStrict)
}

func TestComposeOrdersBySortIndexAndOmitsUnearned(t *testing.T) {
	c := NewComposer(testCatalog(t), nil)

	report := c.Compose(profile(map[string]int64{
		"Later":     3 * day,
		"Middle":    6 * day,
		"Example":   1000,
		"Untracked": 0,
	}), catalog.AllCategories())

	require.Len(t, report.Entries, 3)
	for i := 1; i < len(report.Entries); i++ {
		assert.LessOrEqual(t, report.Entries[i-1].SortIndex, report.Entries[i].SortIndex)
	}

	assert.Equal(t, ""+
		"Example: 0 days (in minor patch: ○/in major patch: ○)\n"+
		"Middle: 6 days (in minor patch: ×/in major patch: ×)\n"+
		"Later Raid: 3 days (in minor patch: ○/in major patch: ○)\n",
		report.Body)
	assert.NotContains(t, report.Body, "Unearned")
	assert.NotContains(t, report.Body, "Untracked")
}

func TestComposeUnknownCategory(t *testing.T) {
	c := NewComposer(testCatalog(t), nil)

	report := c.Compose(profile(map[string]int64{"Example": 1000}), catalog.ParseSelector("zz"))

	assert.Empty(t, report.Body)
	assert.Empty(t, report.Entries)
	assert.Equal(t, "Hoge Fuga @ Tiamat", report.Header)
}

func TestComposeIsIdempotent(t *testing.T) {
	c := NewComposer(testCatalog(t), nil)
	p := profile(map[string]int64{"Example": 1000, "Middle": 0, "Later": day})

	first := c.Compose(p, catalog.AllCategories())
	second := c.Compose(p, catalog.AllCategories())

	assert.Equal(t, first.Header, second.Header)
	assert.Equal(t, first.Body, second.Body)
	assert.Equal(t, 3, strings.Count(first.Body, "\n"))
}

func TestComposeEmptyProfile(t *testing.T) {
	c := NewComposer(testCatalog(t), nil)

	report := c.Compose(&model.ExtractedProfile{}, catalog.AllCategories())

	assert.Equal(t, " @ ", report.Header)
	assert.Empty(t, report.Body)
}

func TestDaysBetweenTruncates(t *testing.T) {
	assert.Equal(t, int64(0), DaysBetween(0, day-1))
	assert.Equal(t, int64(1), DaysBetween(0, day))
	assert.Equal(t, int64(0), DaysBetween(day, 1))
	assert.Equal(t, int64(-1), DaysBetween(day, -1))
}

func TestSummarize(t *testing.T) {
	c := NewComposer(testCatalog(t), nil)

	report := c.Compose(profile(map[string]int64{
		"Example": 1000 + 3*day,
		"Middle":  day,
	}), catalog.AllCategories())

	s := Summarize(report, c.Tracked(catalog.AllCategories()))

	assert.Equal(t, 4, s.Tracked)
	assert.Equal(t, 2, s.Earned)
	assert.Equal(t, 1, s.PassedStrict)
	assert.Equal(t, 1, s.PassedLenient)
	assert.InDelta(t, 2.0, s.AverageDays, 0.001)
	assert.Equal(t, "Middle", s.FastestTitle)
	assert.Equal(t, int64(1), s.FastestDays)
}
