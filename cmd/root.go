package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "pl",
		Short:         "PaperLens (pl): analyze research papers and ask questions about them",
		Long:          "pl (PaperLens) uploads a document to the PaperLens service, generates structured notes for it, and answers questions about its contents from the terminal.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	app, err := wireApp()
	if err != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.PersistentPostRunE = func(_ *cobra.Command, _ []string) error {
		return app.close()
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newUploadCmd(app),
		newAnalyzeCmd(app),
		newAskCmd(app),
		newChatCmd(app),
		newPingCmd(app),
		newConfigCmd(app),
	)

	return rootCmd
}
