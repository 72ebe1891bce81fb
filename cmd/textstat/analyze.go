package main

import (
	"github.com/spf13/cobra"

	"textstat/internal/report"
)

func newAnalyzeCmd(root *rootOptions) *cobra.Command {
	var format string
	var withSummary bool
	cmd := &cobra.Command{
		Use:   "analyze [file|glob ...]",
		Short: "Print statistics for text files or standard input",
		Example: `  textstat analyze notes.txt
  textstat analyze --summary --format json 'docs/**/*.txt'
  cat essay.txt | textstat analyze`,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := report.ParseFormat(format)
			if err != nil {
				return err
			}
			a, err := buildApp(cmd, root)
			if err != nil {
				return err
			}
			reports, err := a.collect(cmd, args, withSummary)
			if err != nil {
				a.log.Error("analyze failed", "err", err)
				return err
			}
			return report.Write(cmd.OutOrStdout(), f, reports)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "text", "Output format: text, json or yaml")
	cmd.Flags().BoolVarP(&withSummary, "summary", "s", false, "Include an extractive summary")
	return cmd
}
