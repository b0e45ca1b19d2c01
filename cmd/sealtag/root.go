package main

import (
	"strings"

	"github.com/sethvargo/go-envconfig"
	"github.com/spf13/cobra"
	"github.com/wansing/sealtag/log"
	"github.com/wansing/sealtag/markdown"
)

func newRootCmd() *cobra.Command {
	return newRootCmdWith(envconfig.OsLookuper())
}

// newRootCmdWith reads the environment from lookuper. Flags override it.
func newRootCmdWith(lookuper envconfig.Lookuper) *cobra.Command {
	var cfg = &Config{}

	root := &cobra.Command{
		Use:           "sealtag",
		Short:         "Serve a directory of Markdown and HTML pages with Liquid-style tags",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := LoadConfig(cmd.Context(), lookuper)
			if err != nil {
				return err
			}
			flags := cmd.Flags()
			if flags.Changed("dir") {
				loaded.Dir, _ = flags.GetString("dir")
			}
			if flags.Changed("markdown") {
				loaded.Markdown, _ = flags.GetString("markdown")
			}
			if flags.Changed("sanitize") {
				loaded.Sanitize, _ = flags.GetBool("sanitize")
			}
			*cfg = *loaded
			cmd.SetContext(log.NewContext(cmd.Context(), "sealtag"))
			return nil
		},
	}

	root.PersistentFlags().String("dir", ".", "content directory")
	root.PersistentFlags().String("markdown", "commonmark", "markdown engine, one of "+strings.Join(markdown.Engines(), ", "))
	root.PersistentFlags().Bool("sanitize", false, "sanitize converted html")

	root.AddCommand(newServeCmd(cfg), newRenderCmd(cfg))
	return root
}
