package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jjenkins/resume/internal/catalog"
)

type catalogEntry struct {
	SortIndex       int64     `json:"sort_index"`
	Title           string    `json:"title"`
	DisplayName     string    `json:"display_name,omitempty"`
	Release         time.Time `json:"release"`
	StrictDeadline  time.Time `json:"strict_deadline"`
	LenientDeadline time.Time `json:"lenient_deadline"`
}

type catalogCategory struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	Achievements []catalogEntry `json:"achievements"`
}

// CatalogHandler lists the tracked achievements, optionally for one category
func CatalogHandler(c *catalog.Catalog) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		selected := make(map[string]bool)
		for _, id := range catalog.ParseSelector(ctx.Query("type", catalog.SelectorAll)) {
			selected[string(id)] = true
		}

		out := []catalogCategory{}
		for _, cat := range c.Categories() {
			if !selected[string(cat.ID)] {
				continue
			}
			cc := catalogCategory{ID: string(cat.ID), Name: cat.Name, Achievements: []catalogEntry{}}
			for _, d := range cat.Achievements {
				cc.Achievements = append(cc.Achievements, catalogEntry{
					SortIndex:       d.SortIndex,
					Title:           d.Title,
					DisplayName:     d.DisplayName,
					Release:         time.Unix(d.ReleaseTime, 0).UTC(),
					StrictDeadline:  time.Unix(d.StrictDeadline, 0).UTC(),
					LenientDeadline: time.Unix(d.LenientDeadline, 0).UTC(),
				})
			}
			out = append(out, cc)
		}

		return ctx.JSON(fiber.Map{"categories": out})
	}
}

// HealthHandler reports liveness
func HealthHandler() fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.SendString("ok")
	}
}
