package application

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/bnema/workiq-automation/internal/domain"
	"github.com/bnema/workiq-automation/internal/ports"
	"github.com/google/uuid"
)

const (
	MeetingBriefTitle = "Meeting Preparation Brief"

	// maxParticipantLookups caps how many names go into the participant question.
	maxParticipantLookups = 3
)

// PrepService finds upcoming meetings and gathers background for each.
type PrepService struct {
	queries *QueryService
	clock   ports.Clock
	logger  *slog.Logger
}

func NewPrepService(queries *QueryService, clock ports.Clock, logger *slog.Logger) *PrepService {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &PrepService{
		queries: queries,
		clock:   clock,
		logger:  logger,
	}
}

func upcomingMeetingsQuestion(cmd PrepCommand) string {
	if cmd.Window == PrepWindowNextHours {
		return fmt.Sprintf("What meetings do I have in the next %d hours?", cmd.Hours)
	}

	timeframe := strings.TrimSpace(cmd.Timeframe)
	if timeframe == "" {
		timeframe = DefaultPrepTimeframe
	}
	return fmt.Sprintf("What meetings do I have %s? Include time, participants, and subject.", timeframe)
}

// UpcomingMeetings asks for the meetings in the command's window and parses
// the answer. A failed lookup is returned as an error.
func (s *PrepService) UpcomingMeetings(ctx context.Context, cmd PrepCommand) ([]domain.Meeting, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	answer, err := s.queries.Ask(ctx, upcomingMeetingsQuestion(cmd), cmd.askOptions()...)
	if err != nil {
		return nil, fmt.Errorf("list upcoming meetings: %w", err)
	}

	meetings, complete := domain.ParseMeetings(answer)
	if !complete {
		s.logger.Debug("meeting list only partially understood", "meetings", len(meetings))
	}

	return meetings, nil
}

// PrepareContext asks the follow-up questions for one meeting. Each question is
// independent; a failure leaves its field empty.
func (s *PrepService) PrepareContext(ctx context.Context, meeting domain.Meeting, opts ...AskOption) MeetingContext {
	mc := MeetingContext{Meeting: meeting}

	ask := func(what, question string) string {
		answer, err := s.queries.Ask(ctx, question, opts...)
		if err != nil {
			s.logger.Warn("could not fetch "+what, "meeting", meeting.Title, "error", err)
			return ""
		}
		return answer
	}

	mc.PreviousMeetings = ask("previous meetings",
		fmt.Sprintf(`What were previous meetings about "%s" or similar topics?`, meeting.Title))
	mc.RelatedEmails = ask("related emails",
		fmt.Sprintf(`Summarize recent emails related to "%s"`, meeting.Title))
	mc.RelevantDocuments = ask("relevant documents",
		fmt.Sprintf(`Find documents related to "%s"`, meeting.Title))
	if len(meeting.Participants) > 0 {
		names := meeting.Participants[:min(len(meeting.Participants), maxParticipantLookups)]
		mc.ParticipantInfo = ask("participant info",
			fmt.Sprintf("What recent work have %s been involved in?", strings.Join(names, ", ")))
	}
	mc.ActionItems = ask("action items",
		fmt.Sprintf(`What action items or commitments are related to "%s"?`, meeting.Title))

	return mc
}

// BuildBrief turns gathered context into a report. Empty context sections are
// left out; the participant list is always present.
func BuildBrief(mc MeetingContext, generatedAt time.Time) domain.Report {
	participants := "Not specified"
	if len(mc.Meeting.Participants) > 0 {
		lines := make([]string, 0, len(mc.Meeting.Participants))
		for _, p := range mc.Meeting.Participants {
			lines = append(lines, "• "+p)
		}
		participants = strings.Join(lines, "\n")
	}

	report := domain.Report{
		Title:       MeetingBriefTitle,
		Subtitle:    mc.Meeting.Title,
		Date:        mc.Meeting.Time,
		GeneratedAt: generatedAt,
		Sections:    []domain.Section{{Title: "Participants", Icon: "📋", Body: participants}},
	}

	optional := []domain.Section{
		{Title: "Previous Meetings", Icon: "📅", Body: mc.PreviousMeetings},
		{Title: "Related Email Discussions", Icon: "📧", Body: mc.RelatedEmails},
		{Title: "Relevant Documents", Icon: "📄", Body: mc.RelevantDocuments},
		{Title: "Participant Context", Icon: "👥", Body: mc.ParticipantInfo},
		{Title: "Pending Action Items", Icon: "✅", Body: mc.ActionItems},
	}
	for _, section := range optional {
		if section.Body != "" {
			report.Sections = append(report.Sections, section)
		}
	}

	return report
}

// Prepare builds a brief for every meeting in the command's window.
func (s *PrepService) Prepare(ctx context.Context, cmd PrepCommand) ([]MeetingBrief, error) {
	logger := s.logger.With("run_id", uuid.NewString())

	meetings, err := s.UpcomingMeetings(ctx, cmd)
	if err != nil {
		return nil, err
	}
	if len(meetings) == 0 {
		logger.Info("no meetings found", "window", upcomingMeetingsQuestion(cmd))
		return []MeetingBrief{}, nil
	}

	logger.Info("preparing meetings", "count", len(meetings))
	briefs := make([]MeetingBrief, 0, len(meetings))
	cmd.Progress.report(0, len(meetings))
	for _, meeting := range meetings {
		if err := ctx.Err(); err != nil {
			return briefs, fmt.Errorf("prepare meetings: %w", err)
		}

		mc := s.PrepareContext(ctx, meeting, cmd.askOptions()...)
		briefs = append(briefs, MeetingBrief{
			Meeting: meeting,
			Report:  BuildBrief(mc, s.clock.Now()),
		})
		cmd.Progress.report(len(briefs), len(meetings))
	}

	return briefs, nil
}
