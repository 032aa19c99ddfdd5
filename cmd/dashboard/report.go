package main

import (
	"fmt"
	"os"

	pdfexport "hours-dashboard/lib/export/pdf"
	xlsexport "hours-dashboard/lib/export/xls"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

func (a *app) reportCmd() *cobra.Command {
	var format, output string
	cmd := &cobra.Command{
		Use:   "report <project-id>",
		Short: "Export a project summary as a spreadsheet or PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "xlsx" && format != "pdf" {
				return errors.Errorf("format must be xlsx or pdf, got %q", format)
			}
			if err := a.requireAuth(); err != nil {
				return err
			}
			if !a.client.Auth.Permissions().CanViewReports {
				return errors.New("your role cannot export reports")
			}
			project, summary, err := a.loadProject(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			var content []byte
			switch format {
			case "xlsx":
				buf, err := xlsexport.NewInstance().ExportProject(*project, summary)
				if err != nil {
					return err
				}
				content = buf.Bytes()
			case "pdf":
				if content, err = pdfexport.ProjectSummary(*project, summary); err != nil {
					return err
				}
			}
			if output == "" {
				output = fmt.Sprintf("project-%s.%s", project.ID, format)
			}
			if err := os.WriteFile(output, content, 0o644); err != nil {
				return errors.Wrap(err, "unable to write report")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "xlsx", "xlsx or pdf")
	cmd.Flags().StringVarP(&output, "out", "o", "", "output file (default project-<id>.<format>)")
	return cmd
}
