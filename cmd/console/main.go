package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/cors"

	"github.com/LBGeo/gestion-repuestos/internal/api"
	"github.com/LBGeo/gestion-repuestos/internal/config"
	"github.com/LBGeo/gestion-repuestos/internal/consola"
	"github.com/LBGeo/gestion-repuestos/internal/middleware"
)

func main() {
	cfg := config.Load()

	client := api.NewClient(cfg.Console.StoreAPIURL, cfg.Console.Timeout)
	h := consola.NewHandler(api.New(client))

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.Console.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", middleware.HeaderRequestID},
		ExposedHeaders: []string{middleware.HeaderRequestID},
	})

	server := &http.Server{
		Addr:         ":" + cfg.Console.Port,
		Handler:      c.Handler(consola.NewRouter(h)),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.Console.Timeout + 15*time.Second,
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("console: escuchando en :%s (almacén %s)", cfg.Console.Port, cfg.Console.StoreAPIURL)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("console: servidor: %v", err)
		}
	}()

	sig := <-shutdown
	log.Printf("console: señal %v, cerrando", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("console: shutdown: %v", err)
	}
}
