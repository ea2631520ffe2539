// Package huddle embeds the huddle view model in a Go program.
//
// The client loads the mock social catalog into a store (in memory by default,
// or Valkey) and answers the same questions as the HTTP API: subsequence
// search over people, posts and communities, and map pin placement for
// geotagged entities.
//
//	client, _ := huddle.New(ctx, huddle.WithSeedFile("data/seed.yaml"))
//	defer client.Close()
//
//	groups, _ := client.Search(ctx, "al", huddle.People)
//	view, _ := client.Pins(ctx)
//	for _, p := range view.Visible() {
//	    fmt.Println(p.Entity.Label, p.Top, p.Left)
//	}
package huddle
