package model

// CategoryID identifies a group of tracked achievements (e.g. "u" for ultimate raids)
type CategoryID string

const (
	CategoryUltimate CategoryID = "u"
	CategorySavage   CategoryID = "s"
	CategoryBlueMage CategoryID = "bm"
	CategoryAnother  CategoryID = "ad"
	CategoryPublic   CategoryID = "pd"
	CategoryDeep     CategoryID = "dd"
)

// AchievementDefinition represents one tracked achievement in the catalog.
// Times are epoch seconds; release <= strict deadline <= lenient deadline.
type AchievementDefinition struct {
	SortIndex       int64
	Title           string // text as printed on the character's achievement page
	DisplayName     string
	ReleaseTime     int64
	StrictDeadline  int64
	LenientDeadline int64
}

// Label returns the name shown in reports
func (d AchievementDefinition) Label() string {
	if d.DisplayName != "" {
		return d.DisplayName
	}
	return d.Title
}

// ExtractedProfile represents the data recovered from one achievement page
type ExtractedProfile struct {
	CharacterName string
	HomeWorld     string
	Achieved      map[string]int64 // title text -> completion time (epoch seconds)
}

// ResumeEntry represents one completed, tracked achievement in a report
type ResumeEntry struct {
	SortIndex     int64  `json:"sort_index"`
	Title         string `json:"title"`
	DaysToAchieve int64  `json:"days_to_achieve"`
	PassedStrict  bool   `json:"passed_strict"`
	PassedLenient bool   `json:"passed_lenient"`
}
