package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	logpkg "github.com/kailas-cloud/huddle/internal/logger"
	"github.com/kailas-cloud/huddle/internal/version"
	huddle "github.com/kailas-cloud/huddle/pkg/sdk"
)

type rootOptions struct {
	seedPath string
	jsonOut  bool
	logLevel string
	logger   *zap.Logger
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{logger: zap.NewNop()}

	cmd := &cobra.Command{
		Use:          "huddlectl",
		Short:        "Search and map the huddle mock catalog from the command line",
		Version:      fmt.Sprintf("%s (%s, %s)", version.Version, version.Commit, version.Date),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			l, err := logpkg.NewLogger(logpkg.EnvDev, opts.logLevel)
			if err != nil {
				return err
			}
			opts.logger = l
			cmd.SetContext(logpkg.ContextWithLogger(cmd.Context(), l))
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			_ = opts.logger.Sync()
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.seedPath, "seed", "s", "data/seed.yaml", "seed dataset to load")
	cmd.PersistentFlags().BoolVar(&opts.jsonOut, "json", false, "print JSON instead of a table")
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "warn", "log level: debug, info, warn, error")

	cmd.AddCommand(
		newSearchCmd(opts),
		newPinsCmd(opts),
		newValidateCmd(opts),
		newPushCmd(opts),
	)
	return cmd
}

// openLocal loads the seed file into an in-memory client.
func (o *rootOptions) openLocal(ctx context.Context) (*huddle.Client, error) {
	return huddle.New(ctx,
		huddle.WithMemory(),
		huddle.WithSeedFile(o.seedPath),
		huddle.WithLogger(o.logger),
	)
}

func parseKinds(values []string) []huddle.Kind {
	out := make([]huddle.Kind, len(values))
	for i, v := range values {
		out[i] = huddle.Kind(v)
	}
	return out
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
