// Package catalog holds the curated table of tracked achievements.
//
// A Catalog is built once at startup, validated, and then shared read-only
// between requests.
package catalog

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/jjenkins/resume/internal/model"
	"gopkg.in/yaml.v3"
)

//go:embed data/achievements.yaml
var embeddedData []byte

// SelectorAll selects every category
const SelectorAll = "all"

var (
	ErrEmptyTitle     = errors.New("achievement title is empty")
	ErrDuplicateTitle = errors.New("achievement title appears more than once")
	ErrInvalidWindow  = errors.New("achievement deadlines out of order")
	ErrMissingTime    = errors.New("achievement release or deadline missing")
)

// allCategories is the order categories are reported in for an "all" request
var allCategories = []model.CategoryID{
	model.CategoryUltimate,
	model.CategorySavage,
	model.CategoryBlueMage,
	model.CategoryAnother,
	model.CategoryPublic,
	model.CategoryDeep,
}

// Category represents a named group of tracked achievements
type Category struct {
	ID           model.CategoryID
	Name         string
	Achievements []model.AchievementDefinition
}

// Catalog is an immutable, validated set of categories
type Catalog struct {
	categories []Category
	byID       map[model.CategoryID]int
}

// file mirrors the YAML layout of the catalog data
type file struct {
	Categories []struct {
		ID           string `yaml:"id"`
		Name         string `yaml:"name"`
		Achievements []struct {
			SortIndex       int64     `yaml:"sort_index"`
			Title           string    `yaml:"title"`
			DisplayName     string    `yaml:"display_name"`
			Release         time.Time `yaml:"release"`
			StrictDeadline  time.Time `yaml:"strict_deadline"`
			LenientDeadline time.Time `yaml:"lenient_deadline"`
		} `yaml:"achievements"`
	} `yaml:"categories"`
}

// New validates the given categories and returns a Catalog holding a private copy of them
func New(categories []Category) (*Catalog, error) {
	if err := Validate(categories); err != nil {
		return nil, err
	}

	c := &Catalog{
		categories: make([]Category, len(categories)),
		byID:       make(map[model.CategoryID]int, len(categories)),
	}
	for i, cat := range categories {
		if _, dup := c.byID[cat.ID]; dup {
			return nil, fmt.Errorf("category %q defined twice", cat.ID)
		}
		defs := make([]model.AchievementDefinition, len(cat.Achievements))
		copy(defs, cat.Achievements)
		c.categories[i] = Category{ID: cat.ID, Name: cat.Name, Achievements: defs}
		c.byID[cat.ID] = i
	}

	return c, nil
}

// Default returns the catalog compiled into the binary
func Default() (*Catalog, error) {
	return Parse(embeddedData)
}

// LoadFile reads a catalog from a YAML file on disk
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML catalog data. Unknown keys and missing times are errors.
func Parse(data []byte) (*Catalog, error) {
	var f file
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}

	categories := make([]Category, 0, len(f.Categories))
	for _, fc := range f.Categories {
		cat := Category{ID: model.CategoryID(fc.ID), Name: fc.Name}
		for _, a := range fc.Achievements {
			// an absent key decodes to the zero time, which would pass the window check
			if a.Release.IsZero() || a.StrictDeadline.IsZero() || a.LenientDeadline.IsZero() {
				return nil, fmt.Errorf("category %q, %q: %w", fc.ID, a.Title, ErrMissingTime)
			}
			cat.Achievements = append(cat.Achievements, model.AchievementDefinition{
				SortIndex:       a.SortIndex,
				Title:           a.Title,
				DisplayName:     a.DisplayName,
				ReleaseTime:     a.Release.Unix(),
				StrictDeadline:  a.StrictDeadline.Unix(),
				LenientDeadline: a.LenientDeadline.Unix(),
			})
		}
		categories = append(categories, cat)
	}

	return New(categories)
}

// Validate checks that every title is non-empty and unique across all categories,
// and that release <= strict deadline <= lenient deadline
func Validate(categories []Category) error {
	seen := make(map[string]model.CategoryID)
	for _, cat := range categories {
		for _, def := range cat.Achievements {
			if def.Title == "" {
				return fmt.Errorf("category %q, sort index %d: %w", cat.ID, def.SortIndex, ErrEmptyTitle)
			}
			if prev, ok := seen[def.Title]; ok {
				return fmt.Errorf("%q in categories %q and %q: %w", def.Title, prev, cat.ID, ErrDuplicateTitle)
			}
			seen[def.Title] = cat.ID

			if def.ReleaseTime > def.StrictDeadline || def.StrictDeadline > def.LenientDeadline {
				return fmt.Errorf("%q: release %d, strict %d, lenient %d: %w",
					def.Title, def.ReleaseTime, def.StrictDeadline, def.LenientDeadline, ErrInvalidWindow)
			}
		}
	}
	return nil
}

// Categories returns a copy of the catalog's categories in their defined order
func (c *Catalog) Categories() []Category {
	out := make([]Category, len(c.categories))
	for i, cat := range c.categories {
		defs := make([]model.AchievementDefinition, len(cat.Achievements))
		copy(defs, cat.Achievements)
		out[i] = Category{ID: cat.ID, Name: cat.Name, Achievements: defs}
	}
	return out
}

// Category looks up a single category
func (c *Catalog) Category(id model.CategoryID) (Category, bool) {
	idx, ok := c.byID[id]
	if !ok {
		return Category{}, false
	}
	return c.Categories()[idx], true
}

// Resolve returns the union of the given categories' definitions in catalog enumeration
// order. Unknown and repeated ids contribute nothing.
func (c *Catalog) Resolve(ids []model.CategoryID) []model.AchievementDefinition {
	var defs []model.AchievementDefinition
	used := make(map[model.CategoryID]bool, len(ids))
	for _, id := range ids {
		idx, ok := c.byID[id]
		if !ok || used[id] {
			continue
		}
		used[id] = true
		defs = append(defs, c.categories[idx].Achievements...)
	}
	return defs
}

// Len returns the total number of tracked achievements
func (c *Catalog) Len() int {
	n := 0
	for _, cat := range c.categories {
		n += len(cat.Achievements)
	}
	return n
}

// ParseSelector turns a résumé type token into category ids.
// "all" selects every category; any other token, including "", is taken as a
// single category id, which may not exist.
func ParseSelector(token string) []model.CategoryID {
	if token == SelectorAll {
		return AllCategories()
	}
	return []model.CategoryID{model.CategoryID(token)}
}

// AllCategories returns the ids selected by "all", in report order
func AllCategories() []model.CategoryID {
	out := make([]model.CategoryID, len(allCategories))
	copy(out, allCategories)
	return out
}
