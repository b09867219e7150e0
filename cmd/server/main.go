package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/zeustriton/iso-42001-eval-madurez/internal/catalog"
	"github.com/zeustriton/iso-42001-eval-madurez/internal/config"
	"github.com/zeustriton/iso-42001-eval-madurez/internal/httpapi"
)

func main() {
	cfg := config.Load()

	var (
		cat *catalog.Catalog
		err error
	)
	if cfg.CatalogDir != "" {
		cat, err = catalog.LoadDir(cfg.CatalogDir)
	} else {
		cat, err = catalog.Default()
	}
	if err != nil {
		log.Fatalf("catalog load error: %v", err)
	}

	srv := &http.Server{
		Addr:    cfg.ListenAddr,
		Handler: httpapi.New(cat).Routes(),
	}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	log.Printf("listening on %s (env=%s)", cfg.ListenAddr, cfg.Env)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	select {
	case sig := <-sigCh:
		log.Printf("shutting down on %s", sig)
		ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Printf("shutdown error: %v", err)
		}
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}
}
