package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/diogo/askweb/internal/api"
	"github.com/diogo/askweb/internal/tui"
)

func newPDFCmd(deps *Dependencies, opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "pdf <file>",
		Short: "Summarize a PDF document",
		Long: `Upload a PDF to the service's /pdf endpoint and print the summary.

The file is sent as the multipart field "pdf" under its base name.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]
			client, err := deps.NewClient(opts.cfg)
			if err != nil {
				return fmt.Errorf("failed to create client: %w", err)
			}
			defer client.Close()

			decorated := deps.IsTTY != nil && deps.IsTTY()
			var spin *spinner
			if decorated {
				spin = newSpinner(deps.Stderr, "Summarizing "+filepath.Base(path))
				spin.start()
			}

			resp, err := api.SummarizePDFFile(cmd.Context(), client, path)
			if err != nil {
				if spin != nil {
					spin.stopWithError()
				}
				fmt.Fprintln(deps.Stderr, tui.FormatError(err))
				return fmt.Errorf("summary failed: %w", err)
			}
			if spin != nil {
				spin.stopWithSuccess("Done")
			}

			return writeReply(deps, opts, resp.Text(), decorated)
		},
	}
}
