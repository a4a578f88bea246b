package cmd

import (
	"fmt"
	"strings"

	sessionrender "github.com/shloksachdev/PaperLens/internal/adapters/render/session"
	"github.com/shloksachdev/PaperLens/internal/domain"
	"github.com/spf13/cobra"
)

type askOutput struct {
	DocID    string `json:"doc_id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

func newAskCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "ask <file> <question...>",
		Short: "Upload a document and ask one question about it",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			question := strings.Join(args[1:], " ")

			session, err := startOneShot(cmd, app, asJSON)
			if err != nil {
				return err
			}
			defer session.close()

			if _, err := session.upload(cmd, app, args[0]); err != nil {
				return err
			}

			if err := session.ctrl.Ask(question); err != nil {
				return err
			}
			if err := session.wait(cmd, "Waiting for an answer..."); err != nil {
				return err
			}
			if failure := session.failure(domain.EventMessageAppended); failure != nil {
				return fmt.Errorf("%w: %w", errAnswerFailed, failure)
			}

			snapshot, err := session.ctrl.Snapshot()
			if err != nil {
				return err
			}

			if asJSON {
				var answer string
				if n := len(snapshot.Messages); n > 0 {
					answer = snapshot.Messages[n-1].Content
				}
				return writeJSON(cmd, askOutput{
					DocID:    string(snapshot.Handle),
					Question: question,
					Answer:   answer,
				})
			}

			out := cmd.OutOrStdout()
			rendered := app.renderer(snapshot, sessionrender.RenderOptions{Width: terminalWidth(out), HideHeader: true, HideAnalysis: true})
			_, err = fmt.Fprintln(out, rendered)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}
