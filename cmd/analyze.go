package cmd

import (
	"fmt"

	sessionrender "github.com/shloksachdev/PaperLens/internal/adapters/render/session"
	"github.com/shloksachdev/PaperLens/internal/domain"
	"github.com/spf13/cobra"
)

type analyzeOutput struct {
	Filename string                 `json:"filename"`
	DocID    string                 `json:"doc_id"`
	Analysis *domain.AnalysisResult `json:"analysis"`
}

func newAnalyzeCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "analyze <file>",
		Short: "Upload a document and print its structured notes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := startOneShot(cmd, app, asJSON)
			if err != nil {
				return err
			}
			defer session.close()

			if _, err := session.upload(cmd, app, args[0]); err != nil {
				return err
			}

			if err := session.ctrl.GenerateAnalysis(); err != nil {
				return err
			}
			if err := session.wait(cmd, "Generating notes..."); err != nil {
				return err
			}
			if failure := session.failure(domain.EventAnalysisFailed); failure != nil {
				return fmt.Errorf("%s: %w", domain.NoticeAnalysisFailed, failure)
			}

			snapshot, err := session.ctrl.Snapshot()
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, analyzeOutput{
					Filename: snapshot.DocumentName,
					DocID:    string(snapshot.Handle),
					Analysis: snapshot.Analysis,
				})
			}

			out := cmd.OutOrStdout()
			rendered := app.renderer(snapshot, sessionrender.RenderOptions{Width: terminalWidth(out), HideConversation: true})
			_, err = fmt.Fprintln(out, rendered)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}
