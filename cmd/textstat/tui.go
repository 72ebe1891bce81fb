package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"textstat/internal/tui"
)

func newTUICmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "tui [file]",
		Short: "Open the interactive analyzer, optionally preloaded with a file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := buildApp(cmd, root)
			if err != nil {
				return err
			}
			initial := ""
			if len(args) == 1 {
				doc, err := a.loader.Load(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				initial = doc.Content
			}
			m := tui.New(a.service, initial)
			_, err = tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(cmd.Context())).Run()
			return err
		},
	}
}
