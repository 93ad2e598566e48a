package main

import (
	"github.com/spf13/cobra"

	"github.com/3-lines-studio/enhance"
	"github.com/3-lines-studio/enhance/internal/adapters/cli"
	"github.com/3-lines-studio/enhance/internal/adapters/fs"
	"github.com/3-lines-studio/enhance/internal/usecase"
)

func newExportCmd(opts *rootOptions, output *cli.Output) *cobra.Command {
	var outDir string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render the pages once and write them as static HTML files",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := opts.load(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			output.PrintHeader("Enhance Export")

			app, err := enhance.New(cfg, enhance.WithLogger(logger))
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()

			svc := usecase.NewExportService(fs.NewOSFileSystem(), output)
			res := svc.ExportPages(usecase.ExportInput{OutDir: outDir, Pages: app.Pages()})
			if res.Error != nil {
				return res.Error
			}

			output.PrintDone("Export completed")
			return nil
		},
	}

	cmd.Flags().StringVarP(&outDir, "out", "o", "dist", "output directory")
	return cmd
}
