package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/bnema/workiq-automation/internal/application"
	"github.com/bnema/workiq-automation/internal/domain"
	"github.com/spf13/cobra"
)

type queryFlags struct {
	tenant  string
	noCache bool
}

func (f *queryFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.tenant, "tenant", "", "Tenant ID (overrides configuration)")
	cmd.Flags().BoolVar(&f.noCache, "no-cache", false, "Bypass the answer cache")
}

// askOptions applies tenant precedence: flag, then positional, then config.
func (f queryFlags) askOptions(positionalTenant string) []application.AskOption {
	tenant := positionalTenant
	if f.tenant != "" {
		tenant = f.tenant
	}

	opts := []application.AskOption{application.WithTenant(tenant)}
	if f.noCache {
		opts = append(opts, application.WithoutCache())
	}

	return opts
}

func (f queryFlags) tenantOr(positionalTenant string) string {
	if f.tenant != "" {
		return f.tenant
	}

	return positionalTenant
}

func newAskCmd(app *app) *cobra.Command {
	var flags queryFlags
	var timeout time.Duration
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "ask <question...>",
		Short: "Ask Work IQ a single question",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts := flags.askOptions("")
			if timeout > 0 {
				opts = append(opts, application.WithTimeout(timeout))
			}

			answer, err := app.queries.Ask(cmd.Context(), strings.Join(args, " "), opts...)
			if err != nil {
				return err
			}
			if asJSON {
				return writeAnswerJSON(cmd.OutOrStdout(), answer)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), answer)
			return err
		},
	}

	flags.register(cmd)
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "Per-question timeout (default from configuration)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Extract the JSON embedded in the answer and pretty-print it")

	return cmd
}

func writeAnswerJSON(out io.Writer, answer string) error {
	var value any
	if err := domain.ExtractJSON(answer, &value); err != nil {
		return err
	}

	pretty, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return fmt.Errorf("format json answer: %w", err)
	}

	_, err = fmt.Fprintln(out, string(pretty))
	return err
}

func argAt(args []string, i int) string {
	if i < len(args) {
		return args[i]
	}

	return ""
}
