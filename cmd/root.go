// Package cmd defines and implements the CLI commands for the sitegen executable.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/JakeFAU/sitegen/internal/app"
	"github.com/JakeFAU/sitegen/internal/config"
	"github.com/JakeFAU/sitegen/internal/generator"
	"github.com/JakeFAU/sitegen/internal/logging"
)

// appKeyType is the key for storing the App in the context.
type appKeyType string

const appKey appKeyType = "app"

// App defines the services commands use. Tests may inject their own.
type App interface {
	Close()
	Logger() *zap.Logger
	Engine() *generator.Engine
}

// newApp is the application factory. It's a variable so tests can swap it.
var newApp = func(ctx context.Context, cfg config.Config, logger *zap.Logger, dryRun bool) (App, error) {
	return app.New(ctx, cfg, logger, app.Options{DryRun: dryRun})
}

// rootFlags holds the persistent flag values of one root command.
type rootFlags struct {
	configPath   string
	outputDir    string
	includeLegal bool
	dryRun       bool
}

// newRootCmd creates and configures the root command.
func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	cmd := &cobra.Command{
		Use:   "sitegen",
		Short: "Generates sitemap.xml, llms.txt and robots.txt for a localized site.",
		Long: `sitegen discovers the routes of a localized marketing site (a static route
table, product directories on disk and case-study params from the build), expands
them across every supported locale and writes crawler-facing artifacts: a
search-engine sitemap, a descriptive llms.txt manifest and robots.txt.`,
		SilenceUsage:  true,
		SilenceErrors: true,

		// Config is loaded and validated before any subcommand runs; a bad base
		// URL or locale set never reaches generation.
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, flags)
			if err != nil {
				return err
			}
			logger, err := logging.New(cfg.Logging.Development)
			if err != nil {
				return fmt.Errorf("init logger: %w", err)
			}
			appInstance, err := newApp(cmd.Context(), cfg, logger, flags.dryRun)
			if err != nil {
				return fmt.Errorf("failed to initialize application services: %w", err)
			}
			cmd.SetContext(context.WithValue(cmd.Context(), appKey, appInstance))
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&flags.configPath, "config", "", "config file (YAML, JSON or TOML)")
	cmd.PersistentFlags().StringVar(&flags.outputDir, "output-dir", "", "directory artifacts are written to (overrides output.dir)")
	cmd.PersistentFlags().BoolVar(&flags.includeLegal, "include-legal", false,
		"include legal pages in the sitemap (overrides "+config.LegalEnvVar+")")

	cmd.PersistentFlags().BoolVar(&flags.dryRun, "dry-run", false, "assemble artifacts without writing or publishing them")

	cmd.AddCommand(
		newArtifactCmd(generator.ArtifactSitemap, "sitemap", "Generates sitemap.xml"),
		newArtifactCmd(generator.ArtifactManifest, "manifest", "Generates the llms.txt content manifest"),
		newArtifactCmd(generator.ArtifactRobots, "robots", "Generates robots.txt"),
		newAllCmd(),
	)
	return cmd
}

// loadConfig loads the config file and environment, then applies flags that
// were set explicitly.
func loadConfig(cmd *cobra.Command, flags *rootFlags) (config.Config, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return config.Config{}, fmt.Errorf("load config: %w", err)
	}
	changed := false
	if cmd.Flags().Changed("output-dir") {
		cfg.Output.Dir = flags.outputDir
		changed = true
	}
	if cmd.Flags().Changed("include-legal") {
		cfg.Sitemap.IncludeLegal = flags.includeLegal
		changed = true
	}
	if changed {
		if err := cfg.Validate(); err != nil {
			return config.Config{}, fmt.Errorf("load config: %w", err)
		}
	}
	return cfg, nil
}

func resolveApp(ctx context.Context) (App, error) {
	appInstance, ok := ctx.Value(appKey).(App)
	if !ok || appInstance == nil {
		return nil, errors.New("application services not initialized")
	}
	return appInstance, nil
}

// run executes root and closes the App the executed command initialized, on
// success and failure alike. Cobra skips PersistentPostRun when RunE fails.
func run(ctx context.Context, root *cobra.Command) (App, error) {
	executed, err := root.ExecuteContextC(ctx)
	if executed == nil || executed.Context() == nil {
		return nil, err
	}
	appInstance, ok := executed.Context().Value(appKey).(App)
	if !ok || appInstance == nil {
		return nil, err
	}
	appInstance.Close()
	_ = appInstance.Logger().Sync()
	return appInstance, err
}

// Execute is the main entry point. It exits non-zero on any error.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	appInstance, err := run(ctx, newRootCmd())
	if err != nil {
		stop()
		if appInstance != nil {
			appInstance.Logger().Fatal("command execution failed", zap.Error(err))
		}
		fmt.Fprintf(os.Stderr, "sitegen: %v\n", err)
		os.Exit(1)
	}
}
