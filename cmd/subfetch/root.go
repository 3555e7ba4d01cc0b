package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand(ctx *commandContext) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "subfetch",
		Short:         "Download YouTube subtitles through the extraction backend",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&ctx.backendFlag, "backend", "", "Extraction backend base URL (overrides backend_url)")
	flags.StringVarP(&ctx.typeFlag, "type", "t", "", "Subtitle type: auto or manual")
	flags.StringVarP(&ctx.formatFlag, "format", "f", "", "Output format: txt, srt or vtt")
	flags.StringVarP(&ctx.outFlag, "out", "o", "", "Directory the subtitle file is saved to")
	flags.BoolVar(&ctx.overwriteFlag, "overwrite", false, "Replace an existing file instead of numbering the new one")
	flags.BoolVar(&ctx.metricsFlag, "metrics", false, "Serve Prometheus metrics while the command runs")

	rootCmd.AddCommand(newGetCommand(ctx))
	rootCmd.AddCommand(newPasteCommand(ctx))
	rootCmd.AddCommand(newOptionsCommand())

	return rootCmd
}
