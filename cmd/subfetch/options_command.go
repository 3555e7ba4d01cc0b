package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/Belphemur/SubtitleFetcher/internal/models"
)

func newOptionsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "options",
		Short: "List the subtitle types and output formats",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintln(cmd.OutOrStdout(), renderOptions())
			return nil
		},
	}
}

func renderOptions() string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Option", "Value", "Default", "Description"})

	for _, t := range models.AllSubtitleTypes {
		tw.AppendRow(table.Row{"--type", t.String(), defaultMark(t == models.SubtitleTypeAuto), t.Description()})
	}
	tw.AppendSeparator()
	for _, f := range models.AllFormats {
		tw.AppendRow(table.Row{"--format", f.String(), defaultMark(f == models.FormatTXT), f.Description()})
	}

	return tw.Render()
}

func defaultMark(isDefault bool) string {
	if isDefault {
		return "yes"
	}
	return ""
}
