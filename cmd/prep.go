package cmd

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bnema/workiq-automation/internal/adapters/render/report"
	"github.com/bnema/workiq-automation/internal/application"
	"github.com/spf13/cobra"
)

func newPrepCmd(app *app) *cobra.Command {
	var flags queryFlags
	var formatFlag string

	cmd := &cobra.Command{
		Use:   "prep [tenant] [timeframe|next] [hours]",
		Short: "Prepare briefs for upcoming meetings",
		Long:  "Looks up meetings for a timeframe (today, tomorrow, this week) or, with \"next <hours>\", the coming hours, gathers context for each and saves one brief per meeting.",
		Args:  cobra.MaximumNArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := report.ParseFormat(formatFlag)
			if err != nil {
				return err
			}

			prepCmd, err := parsePrepArgs(args)
			if err != nil {
				return err
			}
			prepCmd.Tenant = flags.tenantOr(prepCmd.Tenant)
			prepCmd.NoCache = flags.noCache

			var briefs []application.MeetingBrief
			err = runWithProgress(cmd.Context(), cmd.ErrOrStderr(), "Preparing meetings...", "meetings prepared", func(ctx context.Context, progress application.ProgressFunc) error {
				var prepErr error
				prepCmd.Progress = progress
				briefs, prepErr = app.prep.Prepare(ctx, prepCmd)
				return prepErr
			})
			if err != nil {
				return fmt.Errorf("prepare meetings: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(briefs) == 0 {
				fmt.Fprintln(out, "No meetings found.")
				return nil
			}

			dir := filepath.Join(app.cfg.OutputDir, report.MeetingBriefsDir)
			seen := map[string]int{}
			for _, brief := range briefs {
				fmt.Fprintln(out, report.Text(brief.Report))

				rendered, err := report.Render(format, brief.Report)
				if err != nil {
					return err
				}
				name := uniqueName(seen, report.MeetingBriefFilename(brief.Report.GeneratedAt, brief.Meeting.Title, format))
				path, err := report.WriteArtifact(dir, name, rendered)
				if err != nil {
					return fmt.Errorf("save brief for %q: %w", brief.Meeting.Title, err)
				}
				fmt.Fprintf(out, "✅ Brief saved: %s\n\n", path)
			}

			fmt.Fprintf(out, "Prepared %d meeting(s).\n", len(briefs))
			return nil
		},
	}

	flags.register(cmd)
	cmd.Flags().StringVar(&formatFlag, "format", "text", "Brief format: text, markdown or html")

	return cmd
}

func parsePrepArgs(args []string) (application.PrepCommand, error) {
	cmd := application.PrepCommand{
		Tenant:    argAt(args, 0),
		Window:    application.PrepWindowTimeframe,
		Timeframe: application.DefaultPrepTimeframe,
	}

	window := strings.TrimSpace(argAt(args, 1))
	switch {
	case window == "":
	case window == string(application.PrepWindowNextHours) && argAt(args, 2) != "":
		hours, err := strconv.Atoi(argAt(args, 2))
		if err != nil {
			return cmd, fmt.Errorf("hours must be a number, got %q", argAt(args, 2))
		}
		cmd.Window = application.PrepWindowNextHours
		cmd.Hours = hours
	default:
		cmd.Timeframe = window
	}

	return cmd, cmd.Validate()
}

// uniqueName suffixes repeated names with "-2", "-3" and so on before the
// extension, so same-titled meetings on one day keep separate briefs.
func uniqueName(seen map[string]int, name string) string {
	seen[name]++
	n := seen[name]
	if n == 1 {
		return name
	}

	ext := filepath.Ext(name)
	candidate := fmt.Sprintf("%s-%d%s", strings.TrimSuffix(name, ext), n, ext)
	if seen[candidate] > 0 {
		return uniqueName(seen, name)
	}
	seen[candidate]++
	return candidate
}
