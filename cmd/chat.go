package cmd

import (
	"github.com/shloksachdev/PaperLens/internal/adapters/tui"
	"github.com/spf13/cobra"
)

func newChatCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "chat [file]",
		Short: "Open an interactive session, optionally uploading a document first",
		Long: "chat opens an interactive session. Type a question and press enter to ask it. " +
			"Commands: /upload <path>, /analyze, /save <path>, /quit.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctrl, stop, err := app.startSession(cmd.Context())
			if err != nil {
				return err
			}
			defer stop()

			opts := tui.Options{
				Loader: app.loader,
				Writer: app.writer,
				Input:  cmd.InOrStdin(),
				Output: cmd.OutOrStdout(),
			}
			if len(args) == 1 {
				opts.InitialPath = args[0]
			}

			return tui.Run(cmd.Context(), ctrl, opts)
		},
	}
}
