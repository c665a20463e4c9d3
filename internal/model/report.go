package model

import (
	"fmt"
	"strings"
)

const (
	PassMark = "○"
	FailMark = "×"
)

// Report represents a rendered résumé: a header line and one body line per entry
type Report struct {
	CharacterName string        `json:"character_name"`
	HomeWorld     string        `json:"home_world"`
	Header        string        `json:"header"`
	Body          string        `json:"body"`
	Entries       []ResumeEntry `json:"entries"`
}

// Text formats the report the way the chat front end posts it
func (r *Report) Text() string {
	return fmt.Sprintf("résumé: %s\n%s", r.Header, r.Body)
}

// Mark returns the pass/fail glyph for a window result
func Mark(passed bool) string {
	if passed {
		return PassMark
	}
	return FailMark
}

// Line renders a single entry as a report body line (without trailing newline)
func (e ResumeEntry) Line() string {
	return fmt.Sprintf("%s: %d days (in minor patch: %s/in major patch: %s)",
		e.Title, e.DaysToAchieve, Mark(e.PassedStrict), Mark(e.PassedLenient))
}

// RenderBody joins entry lines, each terminated by a newline
func RenderBody(entries []ResumeEntry) string {
	var sb strings.Builder
	for _, e := range entries {
		sb.WriteString(e.Line())
		sb.WriteString("\n")
	}
	return sb.String()
}

// RenderHeader renders "<name> @ <world>"
func RenderHeader(name, world string) string {
	return name + " @ " + world
}
