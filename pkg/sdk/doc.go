// Package multisearch embeds the federated search pipeline in a Go program
// without running the HTTP server.
//
// The client queries a Typesense-compatible engine for ranked ids and
// hydrates them from a Valkey, Redis or PostgreSQL record store.
//
//	client, _ := multisearch.New(ctx,
//	    multisearch.WithEngine("http://localhost:8108", "xyz"),
//	    multisearch.WithValkey("localhost:6379", ""),
//	)
//	defer client.Close()
//
//	movies, _ := client.Search(ctx, multisearch.Movie, multisearch.Params{
//	    Query:  "alien",
//	    Ranges: map[string]multisearch.Range{"year": {Min: ptr(1979.0)}},
//	})
//	agg, _ := client.BestResults(ctx, "alien", multisearch.MultiOptions{})
package multisearch
