package cmd

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/bnema/workiq-automation/internal/application"
	"github.com/bnema/workiq-automation/internal/catalog"
	"github.com/bnema/workiq-automation/internal/domain"
	"github.com/spf13/cobra"
)

func newQueriesCmd(app *app) *cobra.Command {
	var flags queryFlags

	cmd := &cobra.Command{
		Use:   "queries [category...]",
		Short: "Run the sample questions of one or more categories",
		Long:  "Runs the sample questions of the given categories (calendar, email, documents, teams, people, context or all) and prints a preview of each answer. Without arguments only calendar questions run.",
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := app.catalog()
			if err != nil {
				return err
			}
			categories, err := c.Select(args...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Work IQ CLI - Sample Queries")
			fmt.Fprintln(out, strings.Repeat("=", 50))

			for _, category := range categories {
				fmt.Fprintf(out, "\n%s %s\n%s\n", category.Icon, strings.ToUpper(category.Title), strings.Repeat("=", 50))

				results := app.queries.Batch(cmd.Context(), category.Questions, application.BatchOptions{
					Ask: flags.askOptions(""),
				})
				for _, result := range results {
					if errors.Is(result.Err, domain.ErrToolMissing) {
						return fmt.Errorf("%w: install with npm install -g @microsoft/workiq, then run workiq accept-eula", result.Err)
					}
					writeQueryResult(out, result)
				}
			}

			fmt.Fprintln(out, "\nTips:")
			fmt.Fprintf(out, "- Results are cached for %s\n", app.cfg.Cache.TTL)
			fmt.Fprintln(out, "- Pick categories: wq queries email people")
			fmt.Fprintln(out, "- Clear cache: wq cache clear")
			return nil
		},
	}

	flags.register(cmd)

	return cmd
}

func writeQueryResult(out io.Writer, result domain.QueryResult) {
	fmt.Fprintf(out, "\nQ: %s\n", result.Question)
	if !result.OK() {
		fmt.Fprintf(out, "   (failed: %v)\n", result.Err)
		return
	}
	if result.Answer != "" {
		fmt.Fprintf(out, "A: %s\n", catalog.Preview(result.Answer))
	}
}
