package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/goliatone/go-formfield/internal/config"
	"github.com/goliatone/go-formfield/pkg/theme"
)

var (
	envFile       string
	themeManifest string
	themeName     string
	themeVariant  string
	verbose       bool

	conf   *config.Config
	logger *log.Logger
)

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Version:       os.Getenv("VERSION"),
		Use:           "fieldgen",
		Short:         "Render themed form fields from YAML or OpenAPI.",
		Long:          "fieldgen renders labelled, validated form fields into standalone HTML and serves live previews.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&envFile, "env-file", "", "dotenv file to load before reading FIELDGEN_ variables")
	flags.StringVar(&themeManifest, "theme-manifest", "", "YAML theme manifest (overrides FIELDGEN_THEME_MANIFEST)")
	flags.StringVar(&themeName, "theme", "", "theme name (overrides FIELDGEN_THEME_NAME)")
	flags.StringVar(&themeVariant, "variant", "", "theme variant (overrides FIELDGEN_THEME_VARIANT)")
	flags.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(renderCmd, openapiCmd, promptCmd, serveCmd)
	return rootCmd
}

// Execute runs the CLI.
func Execute() error {
	return newRootCmd().ExecuteContext(context.Background())
}

func setup() error {
	var files []string
	if envFile != "" {
		files = append(files, envFile)
	}
	loaded, err := config.Load(files...)
	if err != nil {
		return errors.Wrap(err, "could not load configuration")
	}
	conf = loaded

	level := log.Level(conf.Logger.Level)
	if verbose {
		level = log.DebugLevel
	}
	logger = log.NewWithOptions(os.Stderr, log.Options{
		Level:           level,
		Prefix:          "fieldgen",
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
	})
	log.SetDefault(logger)
	slog.SetDefault(slog.New(logger))

	logger.Debug("using configuration", "config", conf)
	return nil
}

// resolveTheme applies flags over configuration and loads the manifest when
// one is given. fileTheme and fileVariant come from a fields document.
func resolveTheme(fileTheme, fileVariant string) (*theme.Theme, error) {
	manifestPath := firstNonEmpty(themeManifest, conf.Theme.Manifest)
	if manifestPath == "" {
		return theme.Default(), nil
	}

	data, err := os.ReadFile(manifestPath)
	if err != nil {
		return nil, errors.Wrapf(err, "could not read theme manifest %q", manifestPath)
	}
	manifest, err := theme.LoadManifest(data)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	resolver := theme.NewResolver(theme.NewSelector(manifest), manifest.Name, conf.Theme.Variant)
	name := firstNonEmpty(themeName, fileTheme)
	if name == "" && conf.Theme.Name != theme.DefaultName {
		name = conf.Theme.Name
	}
	th, err := resolver.Resolve(name, firstNonEmpty(themeVariant, fileVariant))
	if err != nil {
		return nil, errors.WithStack(err)
	}
	logger.Debug("resolved theme", "name", th.Name, "variant", th.Variant, "grid", th.GridSize)
	return th, nil
}

func firstNonEmpty(values ...string) string {
	for _, value := range values {
		if value != "" {
			return value
		}
	}
	return ""
}
