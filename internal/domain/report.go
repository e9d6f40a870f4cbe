package domain

import "time"

type Section struct {
	Title string
	Icon  string
	Body  string
}

// NewSection substitutes placeholder when body is blank.
func NewSection(title, icon, body, placeholder string) Section {
	if body == "" {
		body = placeholder
	}

	return Section{Title: title, Icon: icon, Body: body}
}

// Report is the presentational model shared by daily briefings and meeting
// briefs.
type Report struct {
	Title       string
	Subtitle    string
	Date        string
	GeneratedAt time.Time
	Sections    []Section
}

const ReportDateLayout = "Monday, January 2, 2006"

func FormatReportDate(t time.Time) string {
	return t.Format(ReportDateLayout)
}
