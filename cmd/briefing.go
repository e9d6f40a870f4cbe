package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/workiq-automation/internal/adapters/render/report"
	"github.com/bnema/workiq-automation/internal/application"
	"github.com/bnema/workiq-automation/internal/domain"
	"github.com/bnema/workiq-automation/internal/ports"
	"github.com/spf13/cobra"
)

func newBriefingCmd(app *app) *cobra.Command {
	var flags queryFlags
	var formatFlag string
	var emailFlag string
	var concurrency int

	cmd := &cobra.Command{
		Use:   "briefing [tenant] [format] [recipient]",
		Short: "Generate today's briefing and save it to the output directory",
		Args:  cobra.MaximumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			tenant := flags.tenantOr(argAt(args, 0))

			formatName := argAt(args, 1)
			if cmd.Flags().Changed("format") {
				formatName = formatFlag
			}
			format, err := report.ParseFormat(formatName)
			if err != nil {
				return err
			}

			recipient := argAt(args, 2)
			if emailFlag != "" {
				recipient = emailFlag
			}

			if concurrency <= 0 {
				concurrency = app.cfg.BriefingConcurrency
			}

			var briefing domain.Report
			err = runWithProgress(cmd.Context(), cmd.ErrOrStderr(), "Generating daily briefing...", "questions answered", func(ctx context.Context, progress application.ProgressFunc) error {
				var genErr error
				briefing, genErr = app.briefing.Generate(ctx, application.BriefingCommand{
					Tenant:      tenant,
					Concurrency: concurrency,
					NoCache:     flags.noCache,
					Progress:    progress,
				})
				return genErr
			})
			if err != nil {
				return fmt.Errorf("generate briefing: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, report.Text(briefing))

			rendered, err := report.Render(format, briefing)
			if err != nil {
				return err
			}
			path, err := report.WriteArtifact(app.cfg.OutputDir, report.BriefingFilename(briefing.GeneratedAt, format), rendered)
			if err != nil {
				return fmt.Errorf("save briefing: %w", err)
			}
			fmt.Fprintf(out, "✅ Briefing saved: %s\n", path)

			if recipient != "" {
				if err := emailBriefing(cmd, app, briefing, recipient); err != nil {
					return err
				}
			}

			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&formatFlag, "format", "text", "Output format: text, markdown or html")
	cmd.Flags().StringVar(&emailFlag, "email", "", "Email the HTML briefing to this address")
	cmd.Flags().IntVar(&concurrency, "concurrency", 0, "Questions in flight at once (default from configuration)")

	return cmd
}

// emailBriefing sends the HTML rendering. Missing SMTP settings only warn.
func emailBriefing(cmd *cobra.Command, app *app, briefing domain.Report, recipient string) error {
	mailer, err := app.newMailer(cmd.Context())
	if errors.Is(err, domain.ErrMailNotConfigured) {
		fmt.Fprintln(cmd.ErrOrStderr(), "⚠️  Email not configured. Set smtp.host and smtp.username (or SMTP_* variables).")
		return nil
	}
	if err != nil {
		return err
	}

	html, err := report.HTML(briefing)
	if err != nil {
		return err
	}

	err = mailer.Send(cmd.Context(), ports.Message{
		To:       recipient,
		Subject:  fmt.Sprintf("%s - %s", briefing.Title, briefing.Date),
		HTMLBody: html,
	})
	if errors.Is(err, domain.ErrMailNotConfigured) {
		fmt.Fprintln(cmd.ErrOrStderr(), "⚠️  Email not configured. Set smtp.host and smtp.username (or SMTP_* variables).")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "✅ Briefing emailed to: %s\n", recipient)
	return nil
}
