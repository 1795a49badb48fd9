package main

import (
	"context"
	"fmt"

	"github.com/aws/aws-lambda-go/lambda"
	"github.com/tracker-tv/commit-sentinel/internal/app"
	"github.com/tracker-tv/commit-sentinel/internal/config"
	"github.com/tracker-tv/commit-sentinel/internal/logger"
)

func main() {
	cfg, err := config.LoadInspector()
	if err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}

	log := logger.New(logger.Options{Level: cfg.LogLevel, Format: cfg.LogFormat, Service: "inspector"})

	svc, err := app.Inspector(context.Background(), cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("building inspector")
	}

	lambda.Start(app.InspectHandler(svc))
}
