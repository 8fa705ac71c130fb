package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vpstudios/backlot/internal/domain/submission"
)

func newListCommand(client *apiClient) *cobra.Command {
	var status, pkg, date string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List submissions, optionally filtered",
		RunE: func(cmd *cobra.Command, args []string) error {
			subs, err := client.listSubmissions(status, pkg, date)
			if err != nil {
				return err
			}

			rows := make([][]string, 0, len(subs))
			for _, sub := range subs {
				rows = append(rows, []string{
					sub.ID,
					sub.ProjectName,
					sub.BrandName,
					sub.PackageType,
					string(sub.Status),
					sub.SubmissionDate.UTC().Format(time.RFC3339),
				})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"ID", "Project", "Brand", "Package", "Status", "Submitted"}, rows))
			return nil
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "Filter by status (received, in-production, delivered)")
	cmd.Flags().StringVar(&pkg, "package", "", "Filter by package type")
	cmd.Flags().StringVar(&date, "date", "", "Filter by submission day (YYYY-MM-DD)")

	return cmd
}

func newShowCommand(client *apiClient) *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one submission",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sub, err := client.getSubmission(args[0])
			if err != nil {
				return err
			}
			printSubmission(cmd, sub)
			return nil
		},
	}
}

func newSetStatusCommand(client *apiClient) *cobra.Command {
	return &cobra.Command{
		Use:   "set-status <id> <status>",
		Short: "Advance a submission through the workflow",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			sub, err := client.setStatus(args[0], args[1])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s is now %s\n", sub.ID, sub.Status)
			return nil
		},
	}
}

func newExportCommand(client *apiClient) *cobra.Command {
	var status, pkg, date, output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export submissions as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := client.exportCSV(status, pkg, date)
			if err != nil {
				return err
			}
			if output == "" || output == "-" {
				fmt.Fprint(cmd.OutOrStdout(), doc)
				return nil
			}
			return os.WriteFile(output, []byte(doc), 0o644)
		},
	}

	cmd.Flags().StringVar(&status, "status", "", "Filter by status")
	cmd.Flags().StringVar(&pkg, "package", "", "Filter by package type")
	cmd.Flags().StringVar(&date, "date", "", "Filter by submission day (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Write CSV to file instead of stdout")

	return cmd
}

func printSubmission(cmd *cobra.Command, sub *submission.Submission) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "ID:        %s\n", sub.ID)
	fmt.Fprintf(out, "Project:   %s\n", sub.ProjectName)
	if sub.BrandName != "" {
		fmt.Fprintf(out, "Brand:     %s\n", sub.BrandName)
	}
	fmt.Fprintf(out, "Goals:     %s\n", sub.ProjectGoals)
	fmt.Fprintf(out, "Package:   %s\n", sub.PackageType)
	if sub.Timeline != "" {
		fmt.Fprintf(out, "Timeline:  %s\n", sub.Timeline)
	}
	fmt.Fprintf(out, "Status:    %s\n", sub.Status)
	fmt.Fprintf(out, "Submitted: %s\n", sub.SubmissionDate.UTC().Format(time.RFC3339))
	for _, file := range sub.Files {
		fmt.Fprintf(out, "File:      %s (%d bytes, %s)\n", file.Name, file.Size, file.Type)
	}
}
