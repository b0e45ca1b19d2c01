package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/wansing/sealtag/content"
)

func newRenderCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "render [file]",
		Short: "Render a Markdown file, or stdin, to HTML",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var src []byte
			var err error
			if len(args) == 1 && args[0] != "-" {
				src, err = os.ReadFile(args[0])
			} else {
				src, err = io.ReadAll(cmd.InOrStdin())
			}
			if err != nil {
				return err
			}

			site, err := cfg.Site()
			if err != nil {
				return err
			}
			_, html, err := content.Markdown{Site: site}.Render(src)
			if err != nil {
				return err
			}
			_, err = io.WriteString(cmd.OutOrStdout(), html)
			return err
		},
	}
}
