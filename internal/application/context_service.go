package application

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bnema/workiq-automation/internal/domain"
)

type contextQuestion struct {
	label  string
	format string
}

var meetingContextQuestions = []contextQuestion{
	{label: "details", format: "Get details for meeting ID: %s"},
	{label: "participants", format: "Who participated in meeting %s?"},
	{label: "decisions", format: "What decisions were made in meeting %s?"},
	{label: "actionItems", format: "What action items came from meeting %s?"},
	{label: "documents", format: "What documents were shared in meeting %s?"},
}

var projectContextQuestions = []contextQuestion{
	{label: "meetings", format: "Find meetings about %s from the last month"},
	{label: "emails", format: "Summarize emails about %s from the last week"},
	{label: "documents", format: "Find documents related to %s"},
	{label: "decisions", format: "What decisions were made about %s?"},
	{label: "team", format: "Who is working on %s?"},
}

var expertQuestions = []string{
	"Who has written documents about %s?",
	"Who has led meetings about %s?",
	"Who frequently discusses %s in emails?",
}

var expertEmptyMarkers = []string{"not found", "no results"}

// ContextService answers grouped questions about a meeting, a project or a
// topic.
type ContextService struct {
	queries *QueryService
	logger  *slog.Logger
}

func NewContextService(queries *QueryService, logger *slog.Logger) *ContextService {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &ContextService{queries: queries, logger: logger}
}

func (s *ContextService) MeetingContext(ctx context.Context, meetingID string, opts ...AskOption) (ContextReport, error) {
	return s.gather(ctx, "meeting", meetingID, meetingContextQuestions, opts)
}

func (s *ContextService) ProjectContext(ctx context.Context, project string, opts ...AskOption) (ContextReport, error) {
	return s.gather(ctx, "project", project, projectContextQuestions, opts)
}

func (s *ContextService) gather(ctx context.Context, kind, subject string, questions []contextQuestion, opts []AskOption) (ContextReport, error) {
	subject = strings.TrimSpace(subject)
	if subject == "" {
		return ContextReport{}, fmt.Errorf("%s is required", kind)
	}

	report := ContextReport{Subject: subject, Items: make([]ContextItem, 0, len(questions))}
	for _, q := range questions {
		question := fmt.Sprintf(q.format, subject)
		answer, err := s.queries.Ask(ctx, question, opts...)
		if err != nil {
			s.logger.Warn("context question failed", kind, subject, "item", q.label, "error", err)
		}
		report.Items = append(report.Items, ContextItem{
			Label:  q.label,
			Result: domain.QueryResult{Question: question, Answer: answer, Err: err},
		})
	}

	if err := firstFatal(resultsOf(report.Items)); err != nil {
		return report, fmt.Errorf("gather %s context: %w", kind, err)
	}

	return report, nil
}

// FindExpert combines the useful answers to the expert questions. The result
// is empty when nobody was found.
func (s *ContextService) FindExpert(ctx context.Context, topic string, opts ...AskOption) (string, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return "", fmt.Errorf("topic is required")
	}

	var found []string
	for _, format := range expertQuestions {
		answer, err := s.queries.Ask(ctx, fmt.Sprintf(format, topic), opts...)
		if err != nil {
			if fatal := firstFatal([]domain.QueryResult{{Err: err}}); fatal != nil {
				return "", fmt.Errorf("find expert: %w", fatal)
			}
			s.logger.Debug("expert question failed", "topic", topic, "error", err)
			continue
		}
		if domain.HasUsefulContent(answer, expertEmptyMarkers...) {
			found = append(found, answer)
		}
	}

	return strings.Join(found, "\n\n"), nil
}

func resultsOf(items []ContextItem) []domain.QueryResult {
	results := make([]domain.QueryResult, 0, len(items))
	for _, item := range items {
		results = append(results, item.Result)
	}

	return results
}
