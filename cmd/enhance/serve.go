package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/3-lines-studio/enhance"
	"github.com/3-lines-studio/enhance/internal/adapters/cli"
	adhttp "github.com/3-lines-studio/enhance/internal/adapters/http"
)

func newServeCmd(opts *rootOptions, output *cli.Output) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Render the pages and serve them over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, logger, err := opts.load(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			output.PrintHeader("Enhance")

			app, err := enhance.New(cfg, enhance.WithLogger(logger))
			if err != nil {
				return err
			}
			defer func() { _ = app.Close() }()
			output.PrintSuccess("Rendered %d elements", len(app.Elements()))
			if app.Pages().Primary() == "" {
				output.PrintWarning("Renderer returned no document; %s will be empty", "/hello/world")
			}

			srv, err := adhttp.Listen(cfg.Addr, app.Handler())
			if err != nil {
				return err
			}

			base := "http://" + srv.Addr()
			output.PrintSuccess("Listening on %s", base)
			output.PrintStep("", "Enhanced page at %s/hello/world", base)
			output.PrintStep("", "Constructed page at %s/hello/constructed", base)
			output.PrintStep("", "Static assets from %s at %s/static/", cfg.StaticDir, base)

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			if err := srv.Serve(ctx); err != nil {
				return err
			}
			output.PrintDone("Server stopped")
			return nil
		},
	}
}
