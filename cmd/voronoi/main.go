// Command voronoi labels a grid with its nearest seeds and renders the
// result as an image.
//
// Usage:
//
//	voronoi INPUT [-m] [-d] [-i] [--preview] [--config voronoi.yaml]
//
// INPUT is looked up in the data directory ("data" by default). The image is
// written to <output>/INPUT.png and, unless -i is given, the id matrix is
// printed to stdout.
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()
	if err != nil {
		os.Exit(1)
	}
}
