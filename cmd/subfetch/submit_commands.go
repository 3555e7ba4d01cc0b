package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/Belphemur/SubtitleFetcher/internal/orchestrator"
)

func newGetCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "get <video-url>",
		Short: "Download subtitles for a YouTube video URL",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.run(cmd.Context(), cmd.OutOrStdout(), func(runCtx context.Context, o *orchestrator.Orchestrator, sel orchestrator.Selection) orchestrator.Attempt {
				return o.Submit(runCtx, args[0], sel)
			})
		},
	}
}

func newPasteCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "paste",
		Short: "Read a YouTube video URL from the clipboard and download its subtitles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.run(cmd.Context(), cmd.OutOrStdout(), func(runCtx context.Context, o *orchestrator.Orchestrator, sel orchestrator.Selection) orchestrator.Attempt {
				return o.PasteAndSubmit(runCtx, sel)
			})
		},
	}
}
