// Package templates holds the HTML views served by the web front end.
//
// Views are written in templ; run `templ generate` after editing a .templ file.
package templates

import "github.com/jjenkins/resume/internal/model"

// ResumePage is the data for the HTML résumé view
type ResumePage struct {
	CharacterID string
	ResumeType  string
	Report      *model.Report
	Tracked     int
}
