package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newExpertCmd(app *app) *cobra.Command {
	var flags queryFlags

	cmd := &cobra.Command{
		Use:   "expert <topic...>",
		Short: "Find people who know about a topic",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			topic := strings.Join(args, " ")
			experts, err := app.context.FindExpert(cmd.Context(), topic, flags.askOptions("")...)
			if err != nil {
				return err
			}

			if experts == "" {
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "No experts found for %s\n", topic)
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), experts)
			return err
		},
	}

	flags.register(cmd)
	return cmd
}
