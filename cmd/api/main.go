package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	_ "speaker_bureau/docs"
	"speaker_bureau/internal/adapter/http/routes"
	"speaker_bureau/internal/infrastructure/config"
	"speaker_bureau/internal/infrastructure/logger"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Speaker Bureau Firm Offer API
// @version         1.0
// @description     Firm offer lifecycle: staff creation, client completion and speaker confirmation.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.New(logger.Config{})
		bootLog.Fatal().Err(err).Msg("invalid configuration")
	}

	log := logger.New(logger.Config{
		Level:       cfg.LogLevel,
		Development: cfg.Development(),
		ServiceName: "speaker-bureau-firm-offers",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := routes.Run(ctx, cfg, log); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
