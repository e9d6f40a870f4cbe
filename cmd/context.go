package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/bnema/workiq-automation/internal/application"
	"github.com/spf13/cobra"
)

func newContextCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "context",
		Short: "Gather context about a meeting or a project",
	}

	cmd.AddCommand(
		newContextMeetingCmd(app),
		newContextProjectCmd(app),
	)

	return cmd
}

func newContextMeetingCmd(app *app) *cobra.Command {
	var flags queryFlags

	cmd := &cobra.Command{
		Use:   "meeting <meeting-id>",
		Short: "Show details, participants, decisions, action items and documents of a meeting",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rep, err := app.context.MeetingContext(cmd.Context(), args[0], flags.askOptions("")...)
			if err != nil {
				return err
			}

			writeContextReport(cmd.OutOrStdout(), "Meeting "+rep.Subject, rep)
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

func newContextProjectCmd(app *app) *cobra.Command {
	var flags queryFlags

	cmd := &cobra.Command{
		Use:   "project <name...>",
		Short: "Summarize meetings, emails, documents, decisions and people of a project",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rep, err := app.context.ProjectContext(cmd.Context(), strings.Join(args, " "), flags.askOptions("")...)
			if err != nil {
				return err
			}

			writeContextReport(cmd.OutOrStdout(), "Project "+rep.Subject, rep)
			return nil
		},
	}

	flags.register(cmd)
	return cmd
}

func writeContextReport(out io.Writer, heading string, rep application.ContextReport) {
	fmt.Fprintln(out, heading)
	fmt.Fprintln(out, strings.Repeat("═", 70))

	for _, item := range rep.Items {
		fmt.Fprintf(out, "\n%s\n%s\n", item.Label, strings.Repeat("─", 70))
		fmt.Fprintln(out, item.Result.AnswerOr("(unavailable)"))
	}
}
