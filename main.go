package main

import (
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/cbaxter/domainfolio/internal/catalog"
	"github.com/cbaxter/domainfolio/internal/chat"
	"github.com/cbaxter/domainfolio/internal/config"
	"github.com/cbaxter/domainfolio/internal/server"
)

func main() {
	cfg := config.Load()

	store := catalog.NewStore(catalog.Seed())
	log.Printf("Catalog loaded: %d listings, %d categories", store.Len(), len(store.Categories()))

	responder := chat.NewResponder(
		chat.DefaultRules(),
		chat.DefaultFallbacks(),
		rand.New(rand.NewSource(time.Now().UnixNano())),
	)
	chats := chat.NewManager(responder, cfg.ChatReplyDelay, cfg.ChatIdleTTL)

	srv, err := server.New(store, chats, cfg.ContactEmail)
	if err != nil {
		log.Printf("Failed to create server: %v", err)
		os.Exit(1)
	}
	defer srv.Stop()

	if err := srv.Start(cfg.ListenAddr); err != nil {
		log.Printf("Server error: %v", err)
		os.Exit(1)
	}
}
