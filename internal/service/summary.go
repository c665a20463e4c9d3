package service

import (
	"github.com/jjenkins/resume/internal/model"
)

// Summary represents aggregate figures for one report
type Summary struct {
	Tracked       int     `json:"tracked"`
	Earned        int     `json:"earned"`
	PassedStrict  int     `json:"passed_strict"`
	PassedLenient int     `json:"passed_lenient"`
	AverageDays   float64 `json:"average_days"`
	FastestTitle  string  `json:"fastest_title,omitempty"`
	FastestDays   int64   `json:"fastest_days"`
}

// Summarize calculates aggregate figures for a report drawn from tracked definitions
func Summarize(report *model.Report, tracked int) Summary {
	s := Summary{Tracked: tracked, Earned: len(report.Entries)}

	var totalDays int64
	for i, e := range report.Entries {
		totalDays += e.DaysToAchieve
		if e.PassedStrict {
			s.PassedStrict++
		}
		if e.PassedLenient {
			s.PassedLenient++
		}
		if i == 0 || e.DaysToAchieve < s.FastestDays {
			s.FastestTitle = e.Title
			s.FastestDays = e.DaysToAchieve
		}
	}

	if s.Earned > 0 {
		s.AverageDays = float64(totalDays) / float64(s.Earned)
	}

	return s
}
