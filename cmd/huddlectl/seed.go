package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	huddle "github.com/kailas-cloud/huddle/pkg/sdk"
)

var allKinds = []huddle.Kind{huddle.People, huddle.Posts, huddle.Communities, huddle.Events}

func newValidateCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Check the seed file and print per-kind counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := root.openLocal(cmd.Context())
			if err != nil {
				return err
			}
			defer client.Close()

			h := client.Health(cmd.Context())
			w := cmd.OutOrStdout()
			for _, k := range allKinds {
				fmt.Fprintf(w, "%-12s %d\n", k, h.Entities[k])
			}
			return nil
		},
	}
}

func newPushCmd(root *rootOptions) *cobra.Command {
	var (
		addr     string
		password string
		prefix   string
		timeout  time.Duration
	)

	cmd := &cobra.Command{
		Use:   "push",
		Short: "Write the seed dataset into a Valkey store",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := huddle.New(cmd.Context(),
				huddle.WithValkey(addr, password),
				huddle.WithKeyPrefix(prefix),
				huddle.WithReadinessTimeout(timeout),
				huddle.WithSeedFile(root.seedPath),
				huddle.WithLogger(root.logger),
			)
			if err != nil {
				return err
			}
			defer client.Close()

			h := client.Health(cmd.Context())
			total := 0
			for _, n := range h.Entities {
				total += n
			}
			root.logger.Info("seed pushed",
				zap.String("addr", addr), zap.String("prefix", prefix), zap.Int("entities", total))
			fmt.Fprintf(cmd.OutOrStdout(), "%s now holds %d entities under %q\n", addr, total, prefix)
			return nil
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "localhost:6379", "valkey address")
	cmd.Flags().StringVar(&password, "password", "", "valkey password")
	cmd.Flags().StringVar(&prefix, "prefix", "huddle:", "key prefix")
	cmd.Flags().DurationVar(&timeout, "timeout", 10*time.Second, "readiness timeout")
	return cmd
}
