package main

import (
	"context"
	"os"
	"os/signal"
	"strings"

	"github.com/benbeisheim/chess-backend/internal/config"
	"github.com/benbeisheim/chess-backend/internal/controller"
	"github.com/benbeisheim/chess-backend/internal/service"
	"github.com/gofiber/fiber/v2/log"
	"github.com/pkg/profile"
)

var logLevels = map[string]log.Level{
	"trace": log.LevelTrace,
	"debug": log.LevelDebug,
	"info":  log.LevelInfo,
	"warn":  log.LevelWarn,
	"error": log.LevelError,
}

func main() {
	cfg, err := config.Load(os.Args[1:], os.Getenv)
	if err != nil {
		log.Fatal(err)
	}
	log.SetLevel(logLevels[strings.ToLower(cfg.LogLevel)])

	switch cfg.Profile {
	case config.ProfileCPU:
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	case config.ProfileMem:
		defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
	}

	gameManager := service.NewGameManager()
	gameService := service.NewGameService(gameManager)
	app := controller.NewApp(gameService, cfg.Origins())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	go func() {
		<-ctx.Done()
		log.Info("shutting down")
		if err := app.Shutdown(); err != nil {
			log.Errorf("shutdown: %v", err)
		}
	}()

	log.Infof("listening on %s", cfg.Addr)
	if err := app.Listen(cfg.Addr); err != nil {
		log.Errorf("listen: %v", err)
	}
}
