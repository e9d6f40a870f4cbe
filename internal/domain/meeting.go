package domain

import (
	"regexp"
	"strings"
)

type Meeting struct {
	Title        string
	Time         string
	Participants []string
	Details      string
}

const (
	timeMarker         = "Time:"
	participantsMarker = "Participants:"
)

var meetingStartPattern = regexp.MustCompile(`^\d*\.`)

// ParseMeetings extracts meetings from a numbered free-text answer. A line
// starting with digits and a period opens a record titled by the rest of the
// line; "Time:" and "Participants:" lines inside it fill the time and the
// comma-separated participant list.
//
// It is a heuristic over natural-language output and never fails: lines before
// the first numbered line are dropped, and lines inside a record that are not
// field lines are kept as details. The second result is false when anything had
// to be skipped or guessed.
func ParseMeetings(text string) ([]Meeting, bool) {
	meetings := make([]Meeting, 0)
	complete := true

	var current *Meeting
	var details []string

	flush := func() {
		if current == nil {
			return
		}
		current.Details = strings.Join(details, "\n")
		if current.Title == "" {
			complete = false
		} else {
			meetings = append(meetings, *current)
		}
		current = nil
		details = nil
	}

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, "\r")
		trimmed := strings.TrimSpace(line)

		if loc := meetingStartPattern.FindStringIndex(line); loc != nil {
			flush()
			current = &Meeting{
				Title:        strings.TrimSpace(line[loc[1]:]),
				Participants: []string{},
			}
			continue
		}

		if current == nil {
			if trimmed != "" {
				complete = false
			}
			continue
		}

		switch {
		case strings.Contains(line, timeMarker):
			current.Time = afterMarker(line, timeMarker)
		case strings.Contains(line, participantsMarker):
			current.Participants = splitNames(afterMarker(line, participantsMarker))
		case trimmed != "":
			details = append(details, trimmed)
			complete = false
		}
	}
	flush()

	return meetings, complete
}

func afterMarker(line, marker string) string {
	idx := strings.LastIndex(line, marker)
	return strings.TrimSpace(line[idx+len(marker):])
}

func splitNames(raw string) []string {
	names := []string{}
	for _, name := range strings.Split(raw, ",") {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		names = append(names, name)
	}

	return names
}
