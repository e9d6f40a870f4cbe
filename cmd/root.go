package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	app, err := wireApp(defaultLogOutput())
	return buildRootCmd(app, err)
}

// buildRootCmd attaches the subcommands to app. When wiring failed, every
// invocation reports wireErr instead.
func buildRootCmd(app *app, wireErr error) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "wq",
		Short:         "Work IQ automations (wq): briefings, meeting prep and cached queries",
		Long:          "wq asks the Work IQ CLI about your calendar, email, documents and chats, caches the answers, and turns them into daily briefings and meeting preparation briefs.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	if wireErr != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return wireErr
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newAskCmd(app),
		newQueriesCmd(app),
		newBriefingCmd(app),
		newPrepCmd(app),
		newContextCmd(app),
		newExpertCmd(app),
		newCacheCmd(app),
		newVerifyCmd(app),
	)

	return rootCmd
}
