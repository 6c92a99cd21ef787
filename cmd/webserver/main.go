package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"

	"github.com/xtaxx12/snake-game/pkg/config"
	"github.com/xtaxx12/snake-game/pkg/scores"
)

func main() {
	var (
		addr    = flag.String("addr", ":8080", "listen address")
		envFile = flag.String("env", ".env", "settings file with SNAKE_* variables")
		static  = flag.String("static", "web/static", "directory with the browser client")
	)
	flag.Parse()

	cfg, err := config.Load(*envFile)
	if err != nil {
		log.Fatalf("Error loading config: %v", err)
	}

	store, err := scores.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("Error opening score database: %v", err)
	}
	defer store.Close()

	keeper, err := scores.NewKeeper(context.Background(), store, cfg.RankingSize)
	if err != nil {
		log.Fatalf("Error loading scores: %v", err)
	}
	defer keeper.Close()

	server := NewServer(cfg, keeper, *static)

	fmt.Printf("🚀 Snake Game Web Server starting on http://localhost%s\n", *addr)
	fmt.Printf("💾 Scores stored in %s\n", cfg.DBPath)

	if err := http.ListenAndServe(*addr, server.Routes()); err != nil {
		log.Printf("Server stopped: %v", err)
	}
}
