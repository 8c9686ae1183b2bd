package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-formfield/internal/server"
	"github.com/goliatone/go-formfield/pkg/render/page"
)

var (
	serveFile      string
	serveOpenAPI   string
	serveSchema    string
	serveAddress   string
	serveTemplates string
)

var serveCmd = &cobra.Command{
	Use:     "serve",
	Short:   "Serve a live preview of a fields file.",
	Long:    "Serve the rendered page over HTTP, re-reading the source on every request. Metrics are exposed on /metrics.",
	Example: "fieldgen serve -f profile.yaml --address :3003",
	Args:    cobra.NoArgs,
	RunE:    serveRun,
}

func init() {
	serveCmd.Flags().StringVarP(&serveFile, "file", "f", "", "fields file path or URL (YAML or JSON)")
	serveCmd.Flags().StringVar(&serveOpenAPI, "openapi", "", "OpenAPI document to preview instead of a fields file")
	serveCmd.Flags().StringVarP(&serveSchema, "schema", "s", "", "component schema name or operationId used with --openapi")
	serveCmd.Flags().StringVar(&serveAddress, "address", "", "listen address (overrides FIELDGEN_HTTP_ADDRESS)")
	serveCmd.Flags().StringVar(&serveTemplates, "templates", "", "directory holding a custom page.tmpl")
	serveCmd.MarkFlagsMutuallyExclusive("file", "openapi")
	serveCmd.MarkFlagsOneRequired("file", "openapi")
	serveCmd.MarkFlagsRequiredTogether("openapi", "schema")
}

func serveRun(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	renderer, err := page.New(page.WithTemplatesDir(serveTemplates))
	if err != nil {
		return errors.WithStack(err)
	}

	source := func(ctx context.Context) (page.Document, error) {
		if serveOpenAPI != "" {
			return loadOpenAPIDocument(ctx, serveOpenAPI, serveSchema)
		}
		return loadFieldsDocument(ctx, serveFile)
	}
	if _, err := source(ctx); err != nil {
		return err
	}

	httpLogger := slog.Default()
	opts := []server.OptionFunc{
		server.WithAddress(firstNonEmpty(serveAddress, conf.HTTP.Address)),
		server.WithShutdownTimeout(conf.HTTP.ShutdownTimeout),
		server.WithLogger(httpLogger),
	}

	var metrics *server.Metrics
	if conf.HTTP.Metrics {
		metrics = server.NewMetrics()
		opts = append(opts, server.WithMount("/metrics", metrics.Handler()))
	}
	opts = append(opts, server.WithMount("/", server.NewPreviewHandler(source, renderer, metrics, httpLogger)))

	logger.Info("use ctrl+c to interrupt")
	if err := server.NewServer(opts...).Run(ctx); err != nil {
		return errors.Wrap(err, "could not run server")
	}
	logger.Info("server stopped")
	return nil
}
