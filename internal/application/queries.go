package application

import "github.com/bnema/workiq-automation/internal/domain"

// MeetingContext is the background gathered for one meeting. Fields are empty
// when the corresponding question failed or came back blank.
type MeetingContext struct {
	Meeting           domain.Meeting
	PreviousMeetings  string
	RelatedEmails     string
	RelevantDocuments string
	ParticipantInfo   string
	ActionItems       string
}

type MeetingBrief struct {
	Meeting domain.Meeting
	Report  domain.Report
}

type ContextItem struct {
	Label  string
	Result domain.QueryResult
}

// ContextReport groups answers about one meeting or project in a fixed order.
type ContextReport struct {
	Subject string
	Items   []ContextItem
}

// Answer returns the answer recorded under label, or "" when absent or failed.
func (r ContextReport) Answer(label string) string {
	for _, item := range r.Items {
		if item.Label == label {
			return item.Result.AnswerOr("")
		}
	}

	return ""
}
