// Command ratingserver runs the screenplay content-rating HTTP service:
// the scoring pipeline, modification engine, what-if parser, advisor, job
// coordinator, and persistence layer wired behind a fiber/v3 API.
package main

import (
	"context"
	"log"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"

	"github.com/openreel/ratingcore/internal/httpapi"
	"github.com/openreel/ratingcore/pkg/config"
	"github.com/openreel/ratingcore/pkg/embed"
	"github.com/openreel/ratingcore/pkg/jobqueue"
	"github.com/openreel/ratingcore/pkg/modify"
	"github.com/openreel/ratingcore/pkg/rating"
	"github.com/openreel/ratingcore/pkg/store"
	"github.com/openreel/ratingcore/pkg/whatif"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.NewDefaultConfig()
	log.Printf("ratingserver: starting on port %d, profile=%s", cfg.Port, cfg.RatingProfile)

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("ratingserver: connect postgres: %v", err)
	}
	defer pool.Close()

	opts, err := redis.ParseURL(cfg.QueueURL)
	if err != nil {
		log.Fatalf("ratingserver: parse queue url: %v", err)
	}
	rdb := redis.NewClient(opts)
	defer rdb.Close()

	pipeline := rating.NewPipeline(cfg.RatingProfile, "ratingcore-1")
	registry := modify.NewDefaultRegistry(nil)
	queue := jobqueue.NewQueue(rdb)
	persistence := store.NewPGStore(pool)
	embedProvider := embed.NewHashEmbedder(64)

	if err := whatif.LoadExampleOverrides(cfg.ExampleSetsDir); err != nil {
		log.Printf("ratingserver: loading example set overrides: %v", err)
	}

	srv := &httpapi.Server{
		Pipeline:      pipeline,
		Registry:      registry,
		Queue:         queue,
		Store:         persistence,
		EmbedProvider: embedProvider,
		Profile:       pipeline.Profile,
	}

	app := srv.New()
	go func() {
		<-ctx.Done()
		log.Printf("ratingserver: shutting down")
		_ = app.Shutdown()
	}()

	addr := ":" + strconv.Itoa(cfg.Port)
	if err := app.Listen(addr); err != nil {
		log.Fatalf("ratingserver: listen: %v", err)
	}
}
