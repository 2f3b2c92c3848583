package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/JakeFAU/sitegen/internal/generator"
)

// newArtifactCmd creates a subcommand that regenerates a single artifact.
func newArtifactCmd(artifact generator.Artifact, use, short string) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			appInstance, err := resolveApp(cmd.Context())
			if err != nil {
				return err
			}
			ev, err := appInstance.Engine().Generate(cmd.Context(), artifact)
			if err != nil {
				return fmt.Errorf("generate %s: %w", artifact, err)
			}
			report(cmd, appInstance.Logger(), ev)
			return nil
		},
	}
}

// newAllCmd creates the 'all' subcommand, which regenerates every artifact
// concurrently under one run ID.
func newAllCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "all",
		Short: "Generates every artifact",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			appInstance, err := resolveApp(cmd.Context())
			if err != nil {
				return err
			}
			events, err := appInstance.Engine().GenerateAll(cmd.Context())
			if err != nil {
				return fmt.Errorf("generate: %w", err)
			}
			for _, ev := range events {
				report(cmd, appInstance.Logger(), ev)
			}
			return nil
		},
	}
}

// report prints one line per artifact for humans and logs the run summary.
func report(cmd *cobra.Command, logger *zap.Logger, ev generator.Event) {
	fmt.Fprintf(cmd.OutOrStdout(), "%s: %s (%d entries, sha256 %s)\n", ev.Artifact, ev.URI, ev.Entries, shortDigest(ev.SHA256))
	logger.Info("generation finished",
		zap.String("run_id", ev.RunID),
		zap.String("artifact", string(ev.Artifact)),
		zap.Strings("mirrors", ev.Mirrors),
	)
}

func shortDigest(digest string) string {
	if len(digest) > 12 {
		return digest[:12]
	}
	return digest
}
