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

	"github.com/LBGeo/gestion-repuestos/internal/config"
	"github.com/LBGeo/gestion-repuestos/internal/middleware"
	"github.com/LBGeo/gestion-repuestos/internal/store"
	"github.com/LBGeo/gestion-repuestos/internal/utils/db"
)

func main() {
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	database, err := db.GetDB(ctx, cfg)
	cancel()
	if err != nil {
		log.Fatal("store: conectar base de datos: ", err)
	}

	// AutoMigrate para las siete colecciones
	if err := database.AutoMigrate(store.Modelos...); err != nil {
		log.Fatal("store: AutoMigrate: ", err)
	}

	r := store.NewRouter(database.DB)
	r.Use(middleware.RequestID, middleware.Logger("store"))

	c := cors.New(cors.Options{
		AllowedOrigins: cfg.Store.CORSOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type", middleware.HeaderRequestID},
		ExposedHeaders: []string{middleware.HeaderRequestID},
	})

	server := &http.Server{
		Addr:         ":" + cfg.Store.Port,
		Handler:      c.Handler(r),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("store: escuchando en :%s", cfg.Store.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("store: servidor: %v", err)
		}
	}()

	sig := <-shutdown
	log.Printf("store: señal %v, cerrando", sig)

	ctx, cancel = context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		log.Printf("store: shutdown: %v", err)
	}
	// También detiene el PostgreSQL embebido si lo hay.
	if err := database.Close(); err != nil {
		log.Printf("store: cerrar base de datos: %v", err)
	}
}
