package cmd

import (
	"errors"
	"fmt"

	checksadapter "github.com/bnema/workiq-automation/internal/adapters/render/checks"
	"github.com/bnema/workiq-automation/internal/domain"
	"github.com/spf13/cobra"
)

var errSetupIncomplete = errors.New("setup incomplete")

func newVerifyCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Check that Work IQ and wq are ready to use",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			results := app.verifier.Verify(cmd.Context())

			rendered := app.checkRenderer(results, checksadapter.RenderOptions{})
			if _, err := fmt.Fprintln(cmd.OutOrStdout(), rendered); err != nil {
				return err
			}

			if summary := domain.Summarize(results); !summary.OK() {
				return fmt.Errorf("%w: %d check(s) failed", errSetupIncomplete, summary.Failed)
			}

			return nil
		},
	}
}
