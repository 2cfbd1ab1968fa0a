package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"rental-backoffice/internal/config"
	"rental-backoffice/internal/database"
	"rental-backoffice/internal/router"
	"rental-backoffice/internal/session"
)

func main() {
	// load configuration
	cfg, err := config.Load("config.yaml")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	if cfg.Log.File != "" {
		if err := ensureDir(filepath.Dir(cfg.Log.File)); err != nil {
			log.Fatalf("create log dir: %v", err)
		}
		f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			log.Fatalf("open log file: %v", err)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	db, err := database.Init(cfg.Database)
	if err != nil {
		log.Fatalf("init database: %v", err)
	}
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("migrate database: %v", err)
	}
	if err := database.SeedAdmin(db, cfg.Admin, cfg.Security.BcryptCost); err != nil {
		log.Fatalf("seed admin: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// sessions live in redis when configured, otherwise in the database
	var sessions session.Store
	if cfg.Redis.Addr != "" {
		rdb, err := session.NewRedisClient(ctx, cfg.Redis)
		if err != nil {
			log.Fatalf("init redis: %v", err)
		}
		defer rdb.Close()
		log.Printf("sessions stored in redis at %s", cfg.Redis.Addr)
		sessions = session.NewRedisStore(rdb)
	} else {
		dbSessions := session.NewDBStore(db)
		if n, err := dbSessions.Purge(ctx); err != nil {
			log.Printf("purge sessions: %v", err)
		} else if n > 0 {
			log.Printf("purged %d stale sessions", n)
		}
		sessions = dbSessions
	}

	r, err := router.SetupRouter(cfg, db, sessions)
	if err != nil {
		log.Fatalf("setup router: %v", err)
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Address, cfg.Server.Port)
	srv := &http.Server{
		Addr:              addr,
		Handler:           router.WithCORS(cfg.CORS, r),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Printf("server listening on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Println("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("shutdown: %v", err)
		}
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("run server: %v", err)
		}
	}
}

func ensureDir(dir string) error {
	if dir == "" || dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
