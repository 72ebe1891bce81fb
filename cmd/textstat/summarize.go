package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newSummarizeCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "summarize [file|glob ...]",
		Short: "Print an extractive summary of text files or standard input",
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildApp(cmd, root)
			if err != nil {
				return err
			}
			reports, err := a.collect(cmd, args, true)
			if err != nil {
				a.log.Error("summarize failed", "err", err)
				return err
			}
			out := cmd.OutOrStdout()
			for i, r := range reports {
				if len(reports) > 1 {
					if i > 0 {
						fmt.Fprintln(out)
					}
					fmt.Fprintf(out, "%s:\n", r.Document.Path)
				}
				fmt.Fprintln(out, r.Summary)
			}
			return nil
		},
	}
}
