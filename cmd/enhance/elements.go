package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/3-lines-studio/enhance/internal/adapters/fs"
	"github.com/3-lines-studio/enhance/internal/usecase"
)

func newElementsCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "elements",
		Short: "List the element registry without rendering",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := opts.load(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			svc := usecase.NewRegistryService(fs.NewOSFileSystem(), logger)
			out := svc.Scan(usecase.ScanInput{Root: cfg.ElementsDir})
			if out.Error != nil {
				return out.Error
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			for _, e := range out.Elements {
				fmt.Fprintf(tw, "%s\t%s\t%s\n", e.Key, e.Kind, e.Path)
			}
			return tw.Flush()
		},
	}
}
