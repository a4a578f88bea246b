package cmd

import (
	"fmt"

	"github.com/shloksachdev/PaperLens/internal/domain"
	"github.com/spf13/cobra"
)

type uploadOutput struct {
	Filename string `json:"filename"`
	DocID    string `json:"doc_id"`
	Message  string `json:"message"`
}

func newUploadCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "upload <file>",
		Short: "Upload a document and print the id the service assigned",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := startOneShot(cmd, app, asJSON)
			if err != nil {
				return err
			}
			defer session.close()

			snapshot, err := session.upload(cmd, app, args[0])
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, uploadOutput{
					Filename: snapshot.DocumentName,
					DocID:    string(snapshot.Handle),
					Message:  domain.NoticeUploadSucceeded,
				})
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s\ndoc_id: %s\n", domain.NoticeUploadSucceeded, snapshot.Handle)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}
