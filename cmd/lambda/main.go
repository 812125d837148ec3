package main

import (
	"log"
	"os"

	"github.com/aws/aws-lambda-go/lambda"

	"github.com/osse101/MixCalc_Go/internal/bootstrap"
	"github.com/osse101/MixCalc_Go/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	bootstrap.SetupLogger(cfg, os.Stdout)

	svc, err := bootstrap.InitializeServices(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize services: %v", err)
	}

	fn := newFunction(svc.Mixing, svc.Names, cfg.MaxRequestBytes)
	lambda.Start(fn.handle)
}
