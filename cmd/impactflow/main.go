package main

import (
	"log"

	"ImpactFlow/internal/bootstrap"
	"ImpactFlow/pkg/routes"

	"go.uber.org/fx"
	"go.uber.org/zap"
)

func main() {
	envLoaded, err := bootstrap.Loadenv()
	if err != nil {
		log.Fatal(err)
	}

	app := fx.New(
		fx.Provide(bootstrap.NewLogger),
		fx.WithLogger(bootstrap.FxLogger),
		fx.Invoke(func(logger *zap.Logger) {
			if !envLoaded {
				logger.Info("no .env file found, using system environment variables")
			}
		}),
		routes.EchoModules,
	)

	app.Run()
}
