package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	httpctx "github.com/notekeeper/server/internal/api/http/context"
	"github.com/notekeeper/server/internal/api/http/router"
	httpserver "github.com/notekeeper/server/internal/api/http/server"
	"github.com/notekeeper/server/internal/config"
	"github.com/notekeeper/server/internal/logger"
	"github.com/notekeeper/server/internal/model"
	"github.com/notekeeper/server/internal/password"
	"github.com/notekeeper/server/internal/repository/postgres"
	"github.com/notekeeper/server/internal/server"
	"github.com/notekeeper/server/internal/service"
	"github.com/notekeeper/server/internal/token"
)

var (
	buildVersion = "N/A" // set by ldflags
	buildDate    = "N/A" // set by ldflags
	buildCommit  = "N/A" // set by ldflags
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT, os.Interrupt)
	defer stop()

	// .env is optional, real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}
	logger := logger.New(cfg.LogLevel)

	db, err := postgres.NewConnection(ctx, cfg.Database.DSN)
	if err != nil {
		logger.Fatal("failed to initialize storage", "error", err)
	}
	defer db.Close()

	userRepo := postgres.NewUserRepository(db)
	noteRepo := postgres.NewNoteRepository(db)

	hasher := password.NewHasher()
	tokenManager, err := token.NewJWT(cfg.JWT.Secret, cfg.JWT.Algorithm, time.Duration(cfg.JWT.TTLMinutes)*time.Minute)
	if err != nil {
		logger.Fatal("failed to initialize token manager", "error", err)
	}

	authService := service.NewAuth(userRepo, hasher, tokenManager, logger)
	noteService := service.NewNotes(noteRepo, logger)
	userService := service.NewUsers(userRepo, hasher, logger)
	ctxMgr := httpctx.NewManager()

	r := router.New(authService, noteService, userService, ctxMgr, logger)
	httpServer := httpserver.NewHTTPServer(r.Register(), fmt.Sprintf(":%s", cfg.HTTP.Port))

	var sl model.SecurityLayer

	if cfg.HTTP.EnableHTTPS {
		sl = server.NewTLSListener(cfg.HTTP.CertFileName, cfg.HTTP.PrivateKeyFileName)
	} else {
		sl = server.NewPlainListener()
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func(s model.Server) {
		defer wg.Done()
		logger.Info("Starting server on", "address", s.Address())
		err := s.Start(sl)
		if err != nil {
			logger.Error("failed to start server", "error", err)
		}
	}(httpServer)

	logAppVersion()

	<-ctx.Done()
	logger.Info("received interruption signal, shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := httpServer.Stop(shutdownCtx); err != nil {
		logger.Error("error during server shutdown", "error", err, "address", httpServer.Address())
	}

	wg.Wait()
	logger.Info("shutdown complete")
}

func logAppVersion() {
	tmpl := `
Build version: %s
Build date: %s
Build commit: %s
`

	fmt.Printf(tmpl, buildVersion, buildDate, buildCommit)
}
