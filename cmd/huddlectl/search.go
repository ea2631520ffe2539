package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	huddle "github.com/kailas-cloud/huddle/pkg/sdk"
)

type searchResult struct {
	Kind   string   `json:"kind"`
	IDs    []string `json:"ids"`
	Labels []string `json:"labels"`
}

func newSearchCmd(root *rootOptions) *cobra.Command {
	var kinds []string

	cmd := &cobra.Command{
		Use:   "search [query...]",
		Short: "Filter people, posts and communities by subsequence match",
		Example: `  huddlectl search al
  huddlectl search "bay cl" --kind communities`,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := root.openLocal(cmd.Context())
			if err != nil {
				return err
			}
			defer client.Close()

			groups, err := client.Search(cmd.Context(), strings.Join(args, " "), parseKinds(kinds)...)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if root.jsonOut {
				results := make([]searchResult, len(groups))
				for i, g := range groups {
					results[i] = searchResult{Kind: string(g.Kind), IDs: []string{}, Labels: []string{}}
					for _, e := range g.Entities {
						results[i].IDs = append(results[i].IDs, e.ID)
						results[i].Labels = append(results[i].Labels, e.Label)
					}
				}
				return writeJSON(out, results)
			}

			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "KIND\tID\tLABEL")
			for _, g := range groups {
				for _, e := range g.Entities {
					fmt.Fprintf(tw, "%s\t%s\t%s\n", g.Kind, e.ID, e.Label)
				}
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringSliceVarP(&kinds, "kind", "k", nil,
		fmt.Sprintf("kinds to search (default %s, %s, %s)", huddle.People, huddle.Posts, huddle.Communities))
	return cmd
}
