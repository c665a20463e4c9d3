package service

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/jjenkins/resume/internal/model"
	"go.uber.org/zap"
	"golang.org/x/net/html"
)

// Lodestone page selectors
const (
	selCharacterName = "p.frame__chara__name"
	selHomeWorld     = "p.frame__chara__world"
	selEntry         = "li.entry"
	selEntryText     = "p.entry__activity__txt"
	selEntryTime     = "time.entry__activity__time script"
)

var (
	// the page renders completion times client-side: ldst_strftime(1700000000, 'YMD')
	timestampPattern = regexp.MustCompile(`ldst_strftime\((\d+),`)

	// world text follows a decorative icon: <i class="xiv-lds-home-world"></i>Tiamat [Gaia]
	homeWorldPattern = regexp.MustCompile(`<i[^>]*></i>([^<]+)`)
)

// Extractor recovers character and achievement data from an achievement page
type Extractor struct {
	logger *zap.Logger
}

// NewExtractor creates a new Extractor
func NewExtractor(logger *zap.Logger) *Extractor {
	return &Extractor{logger: logger}
}

// Extract parses markup into an ExtractedProfile. Missing elements yield empty values;
// only blank input, text without any tags, or a parse error fails, with ErrMalformedDocument.
func (e *Extractor) Extract(markup string) (*model.ExtractedProfile, error) {
	if strings.TrimSpace(markup) == "" {
		return nil, ErrMalformedDocument
	}

	// html.Parse accepts anything, so plain text without a single tag is rejected up front
	if !hasTags(markup) {
		return nil, ErrMalformedDocument
	}

	root, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		return nil, ErrMalformedDocument
	}
	doc := goquery.NewDocumentFromNode(root)

	profile := &model.ExtractedProfile{
		CharacterName: doc.Find(selCharacterName).First().Text(),
		HomeWorld:     extractHomeWorld(doc.Find(selHomeWorld).First()),
		Achieved:      make(map[string]int64),
	}

	skipped := 0
	doc.Find(selEntry).Each(func(_ int, entry *goquery.Selection) {
		title, ts, ok := extractEntry(entry)
		if !ok {
			skipped++
			return
		}
		// last write wins for repeated titles
		profile.Achieved[title] = ts
	})

	e.logger.Debug("extracted profile",
		zap.String("character", profile.CharacterName),
		zap.String("world", profile.HomeWorld),
		zap.Int("achievements", len(profile.Achieved)),
		zap.Int("skipped_entries", skipped))

	return profile, nil
}

// hasTags reports whether markup contains at least one doctype or element tag
func hasTags(markup string) bool {
	z := html.NewTokenizer(strings.NewReader(markup))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return false
		case html.StartTagToken, html.SelfClosingTagToken, html.EndTagToken, html.DoctypeToken:
			return true
		}
	}
}

func extractHomeWorld(sel *goquery.Selection) string {
	if sel.Length() == 0 {
		return ""
	}
	outer, err := goquery.OuterHtml(sel)
	if err != nil {
		return ""
	}
	m := homeWorldPattern.FindStringSubmatch(outer)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(html.UnescapeString(m[1]))
}

func extractEntry(entry *goquery.Selection) (string, int64, bool) {
	text := entry.Find(selEntryText).First()
	if text.Length() == 0 {
		return "", 0, false
	}

	script := entry.Find(selEntryTime).First()
	if script.Length() == 0 {
		return "", 0, false
	}
	m := timestampPattern.FindStringSubmatch(script.Text())
	if m == nil {
		return "", 0, false
	}
	ts, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return "", 0, false
	}

	return text.Text(), ts, true
}
