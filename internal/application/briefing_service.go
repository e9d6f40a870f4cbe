package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/bnema/workiq-automation/internal/domain"
	"github.com/bnema/workiq-automation/internal/ports"
	"github.com/google/uuid"
)

const DailyBriefingTitle = "Daily Briefing"

type briefingSection struct {
	title        string
	icon         string
	questions    []string
	emptyMarkers []string
	separator    string
	placeholder  string
}

var dailyBriefingSections = []briefingSection{
	{
		title:       "Meetings",
		icon:        "📅",
		questions:   []string{"What meetings do I have today? Include time, participants, and join links."},
		placeholder: "No meetings found",
	},
	{
		title: "Important Emails",
		icon:  "📧",
		questions: []string{
			"Show unread emails from my manager",
			"Show emails marked as important from today",
			"Show emails that mention action items",
		},
		emptyMarkers: []string{"no emails", "not found"},
		separator:    "\n\n---\n\n",
		placeholder:  "No important emails",
	},
	{
		title:       "Documents",
		icon:        "📄",
		questions:   []string{"What documents did I work on yesterday? What files were shared with me today?"},
		placeholder: "No recent documents",
	},
	{
		title: "Action Items",
		icon:  "✅",
		questions: []string{
			"What action items were mentioned in yesterday's meetings?",
			"What tasks do I need to follow up on?",
			"What commitments did I make in recent emails?",
		},
		emptyMarkers: []string{"no action items", "not found"},
		separator:    "\n\n",
		placeholder:  "No pending action items",
	},
	{
		title:       "Team Updates",
		icon:        "👥",
		questions:   []string{"Summarize important messages in my Teams channels from yesterday and today"},
		placeholder: "No recent team updates",
	},
}

// BriefingService assembles the daily briefing from a fixed set of questions.
type BriefingService struct {
	queries *QueryService
	clock   ports.Clock
	logger  *slog.Logger
}

func NewBriefingService(queries *QueryService, clock ports.Clock, logger *slog.Logger) *BriefingService {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &BriefingService{
		queries: queries,
		clock:   clock,
		logger:  logger,
	}
}

// Generate asks every briefing question and folds the answers into sections.
// Individual failures become placeholders; only a missing tool aborts the run.
func (s *BriefingService) Generate(ctx context.Context, cmd BriefingCommand) (domain.Report, error) {
	logger := s.logger.With("run_id", uuid.NewString())
	now := s.clock.Now()

	var questions []string
	for _, section := range dailyBriefingSections {
		questions = append(questions, section.questions...)
	}

	logger.Info("generating daily briefing", "questions", len(questions), "concurrency", cmd.Concurrency)
	results := s.queries.Batch(ctx, questions, BatchOptions{
		Concurrency: cmd.Concurrency,
		Ask:         cmd.askOptions(),
		Progress:    cmd.Progress,
	})

	if err := ctx.Err(); err != nil {
		return domain.Report{}, fmt.Errorf("generate daily briefing: %w", err)
	}
	if err := firstFatal(results); err != nil {
		return domain.Report{}, fmt.Errorf("generate daily briefing: %w", err)
	}

	report := domain.Report{
		Title:       DailyBriefingTitle,
		Date:        domain.FormatReportDate(now),
		GeneratedAt: now,
	}

	offset := 0
	for _, section := range dailyBriefingSections {
		sectionResults := results[offset : offset+len(section.questions)]
		offset += len(section.questions)
		report.Sections = append(report.Sections, section.build(sectionResults))
	}

	logger.Info("daily briefing ready", "sections", len(report.Sections))
	return report, nil
}

func (b briefingSection) build(results []domain.QueryResult) domain.Section {
	if len(b.questions) == 1 {
		return domain.NewSection(b.title, b.icon, results[0].AnswerOr(""), b.placeholder)
	}

	var parts []string
	for _, result := range results {
		if result.OK() && domain.HasUsefulContent(result.Answer, b.emptyMarkers...) {
			parts = append(parts, result.Answer)
		}
	}

	return domain.NewSection(b.title, b.icon, strings.Join(parts, b.separator), b.placeholder)
}

// firstFatal reports errors that make every other answer meaningless.
func firstFatal(results []domain.QueryResult) error {
	for _, result := range results {
		if errors.Is(result.Err, domain.ErrToolMissing) {
			return result.Err
		}
	}

	return nil
}
