package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	huddle "github.com/kailas-cloud/huddle/pkg/sdk"
)

type pinRow struct {
	Kind    string `json:"kind"`
	ID      string `json:"id"`
	Label   string `json:"label"`
	Top     string `json:"top"`
	Left    string `json:"left"`
	Visible bool   `json:"visible"`
}

type pinsOutput struct {
	LatMin   float64  `json:"lat_min"`
	LatMax   float64  `json:"lat_max"`
	LonMin   float64  `json:"lon_min"`
	LonMax   float64  `json:"lon_max"`
	Radius   float64  `json:"radius_meters"`
	Fallback bool     `json:"fallback"`
	Pins     []pinRow `json:"pins"`
}

func newPinsCmd(root *rootOptions) *cobra.Command {
	var (
		kinds   []string
		visible bool
	)

	cmd := &cobra.Command{
		Use:   "pins",
		Short: "Project geotagged entities onto the map image",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			client, err := root.openLocal(cmd.Context())
			if err != nil {
				return err
			}
			defer client.Close()

			view, err := client.Pins(cmd.Context(), parseKinds(kinds)...)
			if err != nil {
				return err
			}

			pins := view.Pins
			if visible {
				pins = view.Visible()
			}
			out := pinsOutput{
				LatMin:   view.Bounds.LatMin,
				LatMax:   view.Bounds.LatMax,
				LonMin:   view.Bounds.LonMin,
				LonMax:   view.Bounds.LonMax,
				Radius:   view.RadiusMeters,
				Fallback: view.Fallback,
				Pins:     make([]pinRow, len(pins)),
			}
			for i, p := range pins {
				out.Pins[i] = pinRow{
					Kind:    string(p.Entity.Kind),
					ID:      p.Entity.ID,
					Label:   p.Entity.Label,
					Top:     p.Top,
					Left:    p.Left,
					Visible: p.Visible,
				}
			}

			w := cmd.OutOrStdout()
			if root.jsonOut {
				return writeJSON(w, out)
			}

			fmt.Fprintf(w, "bounds lat %.4f..%.4f lon %.4f..%.4f radius %.0fm",
				out.LatMin, out.LatMax, out.LonMin, out.LonMax, out.Radius)
			if out.Fallback {
				fmt.Fprint(w, " (fallback)")
			}
			fmt.Fprintln(w)

			tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "KIND\tID\tTOP\tLEFT\tLABEL")
			for _, p := range out.Pins {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n", p.Kind, p.ID, p.Top, p.Left, p.Label)
			}
			return tw.Flush()
		},
	}

	cmd.Flags().StringSliceVarP(&kinds, "kind", "k", nil,
		fmt.Sprintf("kinds to place (default %s, %s, %s)", huddle.People, huddle.Communities, huddle.Events))
	cmd.Flags().BoolVar(&visible, "visible", false, "only print pins inside the viewport")
	return cmd
}
