package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"

	"github.com/3-lines-studio/enhance"
	"github.com/3-lines-studio/enhance/internal/adapters/cli"
)

type rootOptions struct {
	configPath string
	logLevel   string
	logFormat  string
}

func newRootCmd(output *cli.Output) *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:           "enhance",
		Short:         "Render custom elements once and serve the resulting pages",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "path to a YAML config file")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	cmd.PersistentFlags().StringVar(&opts.logFormat, "log-format", "text", "log format: text or json")

	cmd.AddCommand(
		newServeCmd(opts, output),
		newExportCmd(opts, output),
		newElementsCmd(opts),
	)

	return cmd
}

func (o *rootOptions) load(stderr io.Writer) (enhance.Config, *slog.Logger, error) {
	logger, err := newLogger(stderr, o.logLevel, o.logFormat)
	if err != nil {
		return enhance.Config{}, nil, err
	}

	cfg, err := enhance.LoadConfig(o.configPath)
	if err != nil {
		return enhance.Config{}, nil, err
	}

	return cfg, logger, nil
}

func newLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, fmt.Errorf("invalid log level %q", level)
	}

	handlerOpts := &slog.HandlerOptions{Level: lvl}
	switch strings.ToLower(format) {
	case "text":
		return slog.New(slog.NewTextHandler(w, handlerOpts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, handlerOpts)), nil
	default:
		return nil, fmt.Errorf("invalid log format %q", format)
	}
}
